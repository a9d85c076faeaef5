package models

import "github.com/google/uuid"

// UserCredentials is the storage shape of a row in the user_credentials table.
type UserCredentials struct {
	ID           uuid.UUID `db:"id"`
	UserID       uuid.UUID `db:"user_id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
}
