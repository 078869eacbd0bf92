package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a platform account stored in MongoDB. Accounts created
// through Google sign-in carry no password hash and have GoogleAccount set.
type User struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Username      string             `json:"username" bson:"username"`
	Email         string             `json:"email" bson:"email"`
	Password      string             `json:"-" bson:"password,omitempty"`
	Photo         string             `json:"photo,omitempty" bson:"photo,omitempty"`
	GoogleAccount bool               `json:"google_account,omitempty" bson:"google_account,omitempty"`
	Followers     []string           `json:"followers" bson:"followers"`
	Following     []string           `json:"following" bson:"following"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
}

// IsFollowing reports whether the user follows the given user ID.
func (u *User) IsFollowing(userID string) bool {
	for _, id := range u.Following {
		if id == userID {
			return true
		}
	}
	return false
}

// UserDTO is the external projection of a User, without credentials.
type UserDTO struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Photo     string    `json:"photo,omitempty"`
	Followers []string  `json:"followers"`
	Following []string  `json:"following"`
	CreatedAt time.Time `json:"created_at"`
}

// ToDTO converts a User to its external projection.
func (u *User) ToDTO() UserDTO {
	return UserDTO{
		ID:        u.ID.Hex(),
		Username:  u.Username,
		Email:     u.Email,
		Photo:     u.Photo,
		Followers: u.Followers,
		Following: u.Following,
		CreatedAt: u.CreatedAt,
	}
}

// RegisterRequest defines the request body for local registration
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest defines the request body for local login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GoogleLoginRequest defines the request body for Google sign-in
type GoogleLoginRequest struct {
	Token string `json:"token" validate:"required"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims.
// Subject carries the user's email; handlers resolve the account from it.
type JwtCustomClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}
