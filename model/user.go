package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Email     string    `json:"email"`
	// The password hash is never exposed in JSON responses and is never
	// compared by equality, only through the auth service.
	HashedPassword string `json:"-"`
	IsChirpyRed    bool   `json:"is_chirpy_red"`
}
