package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/SscSPs/finances_app/internal/apperrors"
	"github.com/google/uuid"
)

const (
	maxUserNameLength  = 100
	maxUserEmailLength = 50
	minUserAge         = 16
	maxUserAge         = 120
)

// User is a registered person. The zero value is the empty sentinel.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registeredAt"`
	ModifiedAt   time.Time `json:"modifiedAt"`
	DateOfBirth  time.Time `json:"dateOfBirth"`
	ProfileImage string    `json:"profileImage"`
}

// NewUser registers a user, enforcing the name, email and age rules.
func NewUser(name, email string, dateOfBirth time.Time, profileImage string) (*User, error) {
	if err := validateUserName(name); err != nil {
		return nil, err
	}
	if err := validateUserEmail(email); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if dateOfBirth.After(now) {
		return nil, apperrors.NewValidationError("Date of birth cannot be in the future.")
	}

	age := ageAt(dateOfBirth, now)
	if age > maxUserAge {
		return nil, apperrors.NewValidationError("You're not that old buddy.")
	}
	if age < minUserAge {
		return nil, apperrors.NewValidationError("You're too young buddy.")
	}

	return &User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		RegisteredAt: now,
		ModifiedAt:   now,
		DateOfBirth:  dateOfBirth,
		ProfileImage: profileImage,
	}, nil
}

// ReconstructUser rebuilds a stored user without validation.
func ReconstructUser(id uuid.UUID, name, email string, registeredAt, modifiedAt, dateOfBirth time.Time, profileImage string) *User {
	return &User{
		ID:           id,
		Name:         name,
		Email:        email,
		RegisteredAt: registeredAt,
		ModifiedAt:   modifiedAt,
		DateOfBirth:  dateOfBirth,
		ProfileImage: profileImage,
	}
}

// ReplaceUser carries the editable fields of an existing user for an update.
// It is not validated and stamps ModifiedAt with the current time.
func ReplaceUser(id uuid.UUID, name, email string, dateOfBirth time.Time, profileImage string) *User {
	return &User{
		ID:           id,
		Name:         name,
		Email:        email,
		DateOfBirth:  dateOfBirth,
		ProfileImage: profileImage,
		ModifiedAt:   time.Now().UTC(),
	}
}

// IsEmpty reports whether u is the empty sentinel.
func (u User) IsEmpty() bool {
	return u.ID == uuid.Nil
}

// Age is the number of full years since DateOfBirth, as of now (UTC).
func (u User) Age() int {
	return u.AgeAt(time.Now().UTC())
}

// AgeAt is Age evaluated at t.
func (u User) AgeAt(t time.Time) int {
	return ageAt(u.DateOfBirth, t)
}

// ageAt counts a birthday as reached only once the month/day is reached, so a
// 29 February birthday is reached on 1 March in common years. The birth date
// is read in its own offset; t is read in UTC.
func ageAt(dob, t time.Time) int {
	by, bm, bd := dob.Date()
	ty, tm, td := t.UTC().Date()
	age := ty - by
	if tm < bm || (tm == bm && td < bd) {
		age--
	}
	return age
}

func validateUserName(name string) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.NewValidationError("Name cannot be empty.")
	}
	if utf8.RuneCountInString(name) > maxUserNameLength {
		return apperrors.NewValidationError("Name cannot be longer than 100 characters.")
	}
	return nil
}

func validateUserEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return apperrors.NewValidationError("Email cannot be empty.")
	}
	if !strings.Contains(email, "@") {
		return apperrors.NewValidationError("Email must contain '@' symbol.")
	}
	if utf8.RuneCountInString(email) > maxUserEmailLength {
		return apperrors.NewValidationError("Email cannot be longer than 50 characters.")
	}
	return nil
}
