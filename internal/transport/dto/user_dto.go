// internal/transport/dto/user_dto.go
package dto

import "time"

// CreateUserRequest defines the structure for registering a new user.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest defines the structure for logging in.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest defines the structure for rotating a refresh token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LogoutRequest defines the structure for revoking a refresh token.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// GetUserByIDRequest defines the structure for fetching a user by id.
type GetUserByIDRequest struct {
	ID int64 `json:"-" validate:"required"`
}

// GetUserByEmailRequest defines the structure for fetching a user by email.
type GetUserByEmailRequest struct {
	Email string `json:"-" validate:"required,email"`
}

// UserResponse defines the user data returned to the client.
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthResponse carries a freshly issued token pair.
type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
