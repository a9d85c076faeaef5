package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the storage shape of a row in the users table.
type User struct {
	ID           uuid.UUID `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	RegisteredAt time.Time `db:"registered_at"`
	ModifiedAt   time.Time `db:"modified_at"`
	DateOfBirth  time.Time `db:"date_of_birth"`
	ProfileImage string    `db:"profile_image"`
}
