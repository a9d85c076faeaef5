package dto

import (
	"time"

	"github.com/SscSPs/finances_app/internal/core/domain"
)

// CreateUserRequest defines the data needed to register a user.
type CreateUserRequest struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	DateOfBirth  time.Time `json:"dateOfBirth" binding:"required"`
	ProfileImage string    `json:"profileImage"`
}

// UpdateUserRequest replaces the editable fields of a user. The values are
// stored as sent.
type UpdateUserRequest struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	DateOfBirth  time.Time `json:"dateOfBirth" binding:"required"`
	ProfileImage string    `json:"profileImage"`
}

// ListUsersParams defines query parameters for listing users.
// RegisteredAfter is an RFC 3339 timestamp.
type ListUsersParams struct {
	RegisteredAfter string `form:"registeredAfter"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Age          int       `json:"age"`
	DateOfBirth  time.Time `json:"dateOfBirth"`
	ProfileImage string    `json:"profileImage,omitempty"`
	RegisteredAt time.Time `json:"registeredAt"`
	ModifiedAt   time.Time `json:"modifiedAt"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:           u.ID.String(),
		Name:         u.Name,
		Email:        u.Email,
		Age:          u.Age(),
		DateOfBirth:  u.DateOfBirth,
		ProfileImage: u.ProfileImage,
		RegisteredAt: u.RegisteredAt,
		ModifiedAt:   u.ModifiedAt,
	}
}

// ToListUserResponse converts a slice of domain.User to ListUsersResponse DTO
func ToListUserResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = ToUserResponse(user)
	}
	return ListUsersResponse{
		Users: userResponses,
	}
}
