package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/SscSPs/finances_app/internal/apperrors"
	"github.com/google/uuid"
)

const (
	minLoginLength    = 3
	minPasswordLength = 8
)

var loginPattern = regexp.MustCompile(`^[a-zA-Z0-9._@]+$`)

// PasswordHasher produces and checks one-way password hashes.
type PasswordHasher interface {
	Hash(plainPassword string) (string, error)
	Verify(plainPassword, hash string) bool
}

// SymmetricCipher encrypts short secrets with a base64 encoded key.
type SymmetricCipher interface {
	Encrypt(plainText, key string) (string, error)
	Decrypt(cipherText, key string) (string, error)
}

// UserCredentials holds a user's login and password hash. The plaintext
// password is never stored. The zero value is the empty sentinel.
type UserCredentials struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"userId"`
	Login    string    `json:"login"`
	Password string    `json:"-"`
}

// NewUserCredentials validates login then password and stores the hash.
func NewUserCredentials(userID uuid.UUID, login, plainPassword string, hasher PasswordHasher) (*UserCredentials, error) {
	if err := ValidateLogin(login); err != nil {
		return nil, err
	}
	c := &UserCredentials{
		ID:     uuid.New(),
		UserID: userID,
		Login:  login,
	}
	if err := c.SetPassword(plainPassword, hasher); err != nil {
		return nil, err
	}
	return c, nil
}

// ReconstructUserCredentials rebuilds stored credentials without validation.
func ReconstructUserCredentials(id, userID uuid.UUID, login, passwordHash string) *UserCredentials {
	return &UserCredentials{
		ID:       id,
		UserID:   userID,
		Login:    login,
		Password: passwordHash,
	}
}

// IsEmpty reports whether c is the empty sentinel.
func (c UserCredentials) IsEmpty() bool {
	return c.ID == uuid.Nil
}

// SetPassword validates plainPassword and replaces the stored hash.
func (c *UserCredentials) SetPassword(plainPassword string, hasher PasswordHasher) error {
	if err := ValidatePassword(plainPassword); err != nil {
		return err
	}
	hash, err := hasher.Hash(plainPassword)
	if err != nil {
		return err
	}
	c.Password = hash
	return nil
}

// VerifyPassword checks plainPassword against the stored hash.
func (c UserCredentials) VerifyPassword(plainPassword string, hasher PasswordHasher) bool {
	if c.Password == "" {
		return false
	}
	return hasher.Verify(plainPassword, c.Password)
}

// ValidateLogin enforces the login policy.
func ValidateLogin(login string) error {
	if strings.TrimSpace(login) == "" {
		return apperrors.NewValidationError("Login cannot be empty.")
	}
	if utf8.RuneCountInString(login) < minLoginLength {
		return apperrors.NewValidationError("Login must be at least 3 characters.")
	}
	if !loginPattern.MatchString(login) {
		return apperrors.NewValidationError("Login contains invalid characters.")
	}
	return nil
}

// ValidatePassword enforces the plaintext password policy.
func ValidatePassword(plainPassword string) error {
	if strings.TrimSpace(plainPassword) == "" {
		return apperrors.NewValidationError("Password cannot be empty.")
	}
	if utf8.RuneCountInString(plainPassword) < minPasswordLength {
		return apperrors.NewValidationError("Password must be at least 8 characters.")
	}
	return nil
}

// Encrypt encrypts plainText with key using c. It does not depend on any
// credentials instance.
func Encrypt(c SymmetricCipher, plainText, key string) (string, error) {
	return c.Encrypt(plainText, key)
}

// Decrypt reverses Encrypt. A wrong key is an error.
func Decrypt(c SymmetricCipher, cipherText, key string) (string, error) {
	return c.Decrypt(cipherText, key)
}
