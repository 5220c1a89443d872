package types

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User represents the core identity record.
type User struct {
	ID        string    `json:"id" bson:"id" example:"d290f1ee-6c54-4b01-90e6-d701748f0851"` // Unique identifier (UUID).
	Email     string    `json:"email" bson:"email" example:"jane@example.com"`               // Unique email address used for login.
	FullName  string    `json:"full_name" bson:"full_name" example:"Jane Doe"`
	Password  string    `json:"-" bson:"password"` // Hashed password (never exposed).
	IsAdmin   bool      `json:"is_admin" bson:"is_admin"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Claims is the JWT payload carried by access tokens.
type Claims struct {
	jwt.RegisteredClaims
}

// RegisterRequest is the expected JSON body for user registration.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

// LoginRequest is the expected JSON body for user login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is returned by register and login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}
