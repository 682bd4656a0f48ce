package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/Sadman-26/Metro-Rail-Project/internal/api/handler"
	"github.com/Sadman-26/Metro-Rail-Project/internal/auth"
	"github.com/Sadman-26/Metro-Rail-Project/internal/config"
	"github.com/Sadman-26/Metro-Rail-Project/internal/lostfound"
	"github.com/Sadman-26/Metro-Rail-Project/internal/models"
	"github.com/Sadman-26/Metro-Rail-Project/internal/records"
	"github.com/Sadman-26/Metro-Rail-Project/internal/storage"
	"github.com/Sadman-26/Metro-Rail-Project/internal/trips"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupDependencies(cfg config.Config) (*gorm.DB, *redis.Client) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Payment{},
		&models.Journey{},
		&models.LostItem{},
		&models.UserLostReport{},
		&models.Feedback{},
		&models.Complaint{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database and Redis connections established, migrations complete.")
	return db, rdb
}

func main() {
	log.Println("Starting Metro Rail Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}
	cfg := config.Load()

	db, rdb := setupDependencies(cfg)
	s := storage.NewStorageService(db, rdb)

	authSvc := auth.NewService(s, cfg.JWTSecret)
	lostFoundSvc := lostfound.NewService(s)
	recordsSvc := records.NewService(s)
	tripsSvc := trips.NewService(s)

	r := gin.Default()
	r.Use(handler.CORS())
	r.Static("/images", "./"+config.MediaDir)

	h := handler.NewHandler(authSvc, lostFoundSvc, recordsSvc, tripsSvc)
	h.RegisterRoutes(r)

	server := &http.Server{
		Addr:           cfg.Addr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
