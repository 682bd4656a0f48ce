// Package auth implements the authentication boundary: registration,
// login, logout, and token issue/verification. Tokens are HS256 JWTs
// whose jti must also be present in the redis session allowlist, so a
// logout revokes the token before its exp claim runs out.
package auth

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Sadman-26/Metro-Rail-Project/internal/apperr"
	"github.com/Sadman-26/Metro-Rail-Project/internal/config"
	"github.com/Sadman-26/Metro-Rail-Project/internal/models"
	"github.com/Sadman-26/Metro-Rail-Project/internal/storage"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	Storage storage.Storage
	Secret  []byte
}

func NewService(s storage.Storage, secret string) *Service {
	return &Service{Storage: s, Secret: []byte(secret)}
}

type RegisterInput struct {
	Name     string
	Username string
	Email    string
	Password string
}

// Register creates a user with a bcrypt-hashed password and issues a
// session token for it.
func (s *Service) Register(input RegisterInput) (*models.User, string, error) {
	fields := map[string]string{}
	if strings.TrimSpace(input.Username) == "" {
		fields["username"] = "this field is required"
	}
	if strings.TrimSpace(input.Email) == "" {
		fields["email"] = "this field is required"
	} else if !strings.Contains(input.Email, "@") {
		fields["email"] = "enter a valid email address"
	}
	if input.Password == "" {
		fields["password"] = "this field is required"
	}
	if len(fields) > 0 {
		return nil, "", apperr.Validation(fields)
	}

	if existing, err := s.Storage.GetUserByEmail(input.Email); err != nil {
		return nil, "", apperr.Internal(err)
	} else if existing != nil {
		return nil, "", apperr.ValidationField("email", "a user with this email already exists")
	}
	if existing, err := s.Storage.GetUserByUsername(input.Username); err != nil {
		return nil, "", apperr.Internal(err)
	} else if existing != nil {
		return nil, "", apperr.ValidationField("username", "a user with this username already exists")
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, "", apperr.Internal(err)
	}
	user := &models.User{
		Name:         input.Name,
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
	}
	if err := s.Storage.CreateUser(user); err != nil {
		return nil, "", apperr.Internal(err)
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	log.Printf("INFO: Registration successful for user %d (%s)", user.ID, user.Username)
	return user, token, nil
}

// Login verifies an email/password pair and issues a session token.
// When no user matches the email, the value is retried as a username,
// matching the original login behavior.
func (s *Service) Login(email, password string) (*models.User, string, error) {
	fields := map[string]string{}
	if strings.TrimSpace(email) == "" {
		fields["email"] = "this field is required"
	}
	if password == "" {
		fields["password"] = "this field is required"
	}
	if len(fields) > 0 {
		return nil, "", apperr.Validation(fields)
	}

	user, err := s.Storage.GetUserByEmail(email)
	if err != nil {
		return nil, "", apperr.Internal(err)
	}
	if user == nil {
		user, err = s.Storage.GetUserByUsername(email)
		if err != nil {
			return nil, "", apperr.Internal(err)
		}
	}
	if user == nil || !CheckPassword(user.PasswordHash, password) {
		log.Printf("INFO: Login failed for %s", email)
		return nil, "", apperr.Unauthorized("incorrect credentials")
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	log.Printf("INFO: Login successful for user %d (%s)", user.ID, user.Username)
	return user, token, nil
}

// Logout revokes the session identified by the token's jti.
func (s *Service) Logout(tokenString string) error {
	_, jti, err := s.ParseToken(tokenString)
	if err != nil {
		return err
	}
	if err := s.Storage.DeleteSession(jti); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// IssueToken signs a new JWT for the user and records its jti in the
// session allowlist with a matching TTL.
func (s *Service) IssueToken(userID uint) (string, error) {
	jti := uuid.New().String()
	claims := jwt.MapClaims{
		"user_id": userID,
		"jti":     jti,
		"exp":     time.Now().Add(config.TokenTTL).Unix(),
		"iss":     config.JWTIssuer,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return "", apperr.Internal(err)
	}
	if err := s.Storage.StoreSession(jti, userID, config.TokenTTL); err != nil {
		return "", apperr.Internal(err)
	}
	return signed, nil
}

// ParseToken validates the signature and expiry, then checks that the
// session has not been revoked. Returns the user id and jti.
func (s *Service) ParseToken(tokenString string) (uint, string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.Secret, nil
	})
	if err != nil || !token.Valid {
		return 0, "", apperr.Unauthorized("invalid token or expired")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", apperr.Unauthorized("invalid token claims")
	}
	rawID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, "", apperr.Unauthorized("invalid token claims")
	}
	jti, _ := claims["jti"].(string)

	userID, found, err := s.Storage.GetSessionUserID(jti)
	if err != nil {
		return 0, "", apperr.Internal(err)
	}
	if !found || userID != uint(rawID) {
		return 0, "", apperr.Unauthorized("session revoked")
	}
	return uint(rawID), jti, nil
}

// Authenticate resolves a bearer token to a fresh User row, so the
// admin flag reflects the database rather than the token.
func (s *Service) Authenticate(tokenString string) (*models.User, error) {
	userID, _, err := s.ParseToken(tokenString)
	if err != nil {
		return nil, err
	}
	user, err := s.Storage.GetUserByID(userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if user == nil {
		return nil, apperr.Unauthorized("user no longer exists")
	}
	return user, nil
}

// HashPassword hashes a plain-text password with bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plain-text password matches the hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
