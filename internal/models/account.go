package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account is a staff login account, separate from the staff master record.
type Account struct {
	ID                 primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email              string             `json:"email" bson:"email"`
	Password           string             `json:"-" bson:"password"` // Never send password to client
	Name               string             `json:"name" bson:"name"`
	Picture            string             `json:"picture,omitempty" bson:"picture,omitempty"`
	Provider           string             `json:"provider" bson:"provider"` // "email" or "google"
	GoogleID           string             `json:"-" bson:"googleId,omitempty"`
	RefreshToken       string             `json:"-" bson:"refreshToken,omitempty"`
	GoogleAccessToken  string             `json:"-" bson:"googleAccessToken,omitempty"`
	GoogleRefreshToken string             `json:"-" bson:"googleRefreshToken,omitempty"`
	GoogleTokenExpiry  time.Time          `json:"-" bson:"googleTokenExpiry,omitempty"`
	CreatedAt          time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
}

type GoogleAuthRequest struct {
	Code string `json:"code" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type AuthResponse struct {
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	Account      *Account `json:"account"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
