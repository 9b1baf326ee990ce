package user

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateUserRequest - POST /users
// Credentials are per user; the upstream design of a single shared
// login secret was a placeholder, not something to keep.
type CreateUserRequest struct {
	Username      string `json:"username"`
	FavoriteGenre string `json:"favorite_genre"`
	Password      string `json:"password"`
}

func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Length(3, 100),
		),
		validation.Field(&r.FavoriteGenre,
			validation.Required.Error("favorite_genre is required"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(6, 128).Error("password must be 6-128 characters"),
		),
	)
}

// LoginRequest - POST /login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// TokenResponse - the signed bearer token issued by login
type TokenResponse struct {
	Token string `json:"token"`
}
