package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Sadman-26/Metro-Rail-Project/internal/auth"
	"github.com/Sadman-26/Metro-Rail-Project/internal/config"
	"github.com/Sadman-26/Metro-Rail-Project/internal/models"
	"github.com/Sadman-26/Metro-Rail-Project/internal/storage"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	storageSvc := storage.NewStorageService(db, nil) // No redis needed for admin CLI

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		fmt.Println("Commands: make-admin <email> | seed | add-lost-item [flags]")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "make-admin":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin make-admin <email>")
			os.Exit(1)
		}
		email := os.Args[2]
		if err := makeAdmin(storageSvc, email); err != nil {
			log.Fatalf("Error promoting user: %v", err)
		}
		fmt.Printf("User %s is now an admin.\n", email)
	case "seed":
		if err := seed(storageSvc); err != nil {
			log.Fatalf("Error seeding data: %v", err)
		}
		fmt.Println("Sample data creation complete.")
	case "add-lost-item":
		if err := addLostItem(storageSvc, os.Args[2:]); err != nil {
			log.Fatalf("Error adding lost item: %v", err)
		}
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}

func makeAdmin(s storage.Storage, email string) error {
	user, err := s.GetUserByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("no user found with email: %s", email)
	}
	user.IsAdmin = true
	return s.UpdateUser(user)
}

func addLostItem(s storage.Storage, args []string) error {
	fs := flag.NewFlagSet("add-lost-item", flag.ExitOnError)
	title := fs.String("title", "", "Title of the lost item")
	description := fs.String("description", "", "Description of the lost item")
	location := fs.String("location", "", "Location where the item was found")
	status := fs.String("status", models.StatusUnclaimed, "claimed or unclaimed")
	imageURL := fs.String("image-url", "", "URL or filename of the item image")
	adminEmail := fs.String("admin-email", "", "Email of the user to post the item as")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *title == "" || *description == "" || *location == "" || *adminEmail == "" {
		return fmt.Errorf("title, description, location and admin-email are required")
	}
	if !models.ValidLostItemStatus(*status) {
		return fmt.Errorf("status must be claimed or unclaimed")
	}

	poster, err := s.GetUserByEmail(*adminEmail)
	if err != nil {
		return err
	}
	if poster == nil {
		return fmt.Errorf("no user found with email: %s", *adminEmail)
	}

	item := &models.LostItem{
		Title:       *title,
		Description: *description,
		Location:    *location,
		Status:      *status,
		PostedByID:  poster.ID,
	}
	if *imageURL != "" {
		item.ImageURL = imageURL
	}
	if err := s.CreateLostItem(item); err != nil {
		return err
	}
	fmt.Printf("Successfully added lost item: %s (id %d, posted by %s)\n", item.Title, item.ID, poster.Email)
	return nil
}

// seed creates a demo rider with journeys, payments, feedback,
// complaints, and a couple of lost items, so a fresh database has
// something to show.
func seed(s storage.Storage) error {
	user, err := s.GetUserByEmail("testuser@example.com")
	if err != nil {
		return err
	}
	if user == nil {
		hash, herr := auth.HashPassword("testpass123")
		if herr != nil {
			return herr
		}
		user = &models.User{
			Name:         "Test User",
			Username:     "testuser",
			Email:        "testuser@example.com",
			PasswordHash: hash,
		}
		if err := s.CreateUser(user); err != nil {
			return err
		}
	}

	routes := []string{
		"Uttara North to Motijheel",
		"Uttara North to Agargaon",
		"Agargaon to Motijheel",
		"Farmgate to Uttara South",
	}
	fares := []float64{100, 60, 60, 80}
	methods := []string{models.MethodBkash, models.MethodNagad, models.MethodRocket, models.MethodCard}

	for i, route := range routes {
		payment := &models.Payment{
			UserID:    user.ID,
			Method:    methods[i%len(methods)],
			Reference: fmt.Sprintf("TXN%06d", i+1),
			Amount:    fares[i],
		}
		if err := s.CreatePayment(payment); err != nil {
			return err
		}
		journey := &models.Journey{
			UserID:    user.ID,
			Route:     route,
			Date:      time.Now().AddDate(0, 0, -i),
			Fare:      fares[i],
			PaymentID: &payment.ID,
		}
		if err := s.CreateJourney(journey); err != nil {
			return err
		}
	}

	feedbacks := []models.Feedback{
		{UserID: user.ID, Rating: 5, Comment: "The metro service is excellent! Always on time and clean."},
		{UserID: user.ID, Rating: 4, Comment: "[Suggestion] Could use more frequent trains during peak hours."},
	}
	for i := range feedbacks {
		if err := s.CreateFeedback(&feedbacks[i]); err != nil {
			return err
		}
	}

	complaint := &models.Complaint{
		UserID:      user.ID,
		Title:       "Broken ticket machine",
		Description: "The ticket machine at Agargaon station is out of order.",
		Urgency:     models.UrgencyMedium,
	}
	if err := s.CreateComplaint(complaint); err != nil {
		return err
	}

	wallet := "https://images.unsplash.com/photo-1627123424574-724758594e93"
	items := []models.LostItem{
		{
			Title:       "Black Leather Wallet",
			Description: "Leather wallet with ID card and bank cards found on a seat",
			Location:    "Uttara North Station",
			ImageURL:    &wallet,
			PostedByID:  user.ID,
		},
		{
			Title:       "Blue Umbrella",
			Description: "Folding umbrella left near the exit gates",
			Location:    "Motijheel Station",
			PostedByID:  user.ID,
		},
	}
	for i := range items {
		if err := s.CreateLostItem(&items[i]); err != nil {
			return err
		}
	}
	return nil
}
