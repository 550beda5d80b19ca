// file: model/request.go

package model

import "github.com/google/uuid"

// CreateUserRequest defines the payload for creating a new user.
// It includes validation tags to ensure data integrity at the entry point.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest defines the payload for user authentication.
// ExpiresInSeconds optionally asks for a shorter access token lifetime;
// the auth service treats the configured default as a ceiling.
type LoginRequest struct {
	Email            string `json:"email" validate:"required"`
	Password         string `json:"password" validate:"required"`
	ExpiresInSeconds int    `json:"expires_in_seconds" validate:"omitempty"`
}

// UpdateUserRequest defines the payload for changing the authenticated
// user's email and password.
type UpdateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// CreateChirpRequest defines the payload for posting a chirp. The
// 140-character rule lives in the service so it can answer with the
// canonical error message.
type CreateChirpRequest struct {
	Body string `json:"body" validate:"required"`
}

// PolkaWebhookRequest defines the payload delivered by the Polka
// payment provider.
type PolkaWebhookRequest struct {
	Event string `json:"event" validate:"required"`
	Data  struct {
		UserID uuid.UUID `json:"user_id"`
	} `json:"data"`
}
