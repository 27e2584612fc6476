// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account entity, representing a unique person in the system.
type User struct {
	ID           uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the user.
	Email        string    `json:"email"`      // The user's primary contact email, used as the login identifier.
	Name         string    `json:"name"`       // The user's display name.
	Role         Role      `json:"role"`       // The user's role: customer, agent, or admin.
	PasswordHash string    `json:"-"`          // Bcrypt hash of the user's password, never serialized.
	CreatedAt    time.Time `json:"created_at"` // Timestamp of when this account was created.
	UpdatedAt    time.Time `json:"updated_at"` // Timestamp of the last modification.
}
