package dto

import "github.com/SscSPs/finances_app/internal/core/domain"

// RegisterCredentialsRequest creates a login for an existing user.
type RegisterCredentialsRequest struct {
	UserID   string `json:"userId" binding:"required,uuid"`
	Login    string `json:"login"`
	Password string `json:"password"`
}

// UpdateCredentialsRequest replaces a user's password.
type UpdateCredentialsRequest struct {
	Password string `json:"password"`
}

// VerifyCredentialsRequest checks a login/password pair.
type VerifyCredentialsRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// VerifyCredentialsResponse reports whether the password matched.
type VerifyCredentialsResponse struct {
	Valid bool `json:"valid"`
}

// CredentialsResponse never carries the password hash.
type CredentialsResponse struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Login  string `json:"login"`
}

// ToCredentialsResponse converts domain.UserCredentials to CredentialsResponse DTO
func ToCredentialsResponse(c domain.UserCredentials) CredentialsResponse {
	return CredentialsResponse{
		ID:     c.ID.String(),
		UserID: c.UserID.String(),
		Login:  c.Login,
	}
}
