package mapping

import (
	"github.com/SscSPs/finances_app/internal/core/domain"
	"github.com/SscSPs/finances_app/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		ID:           d.ID,
		Name:         d.Name,
		Email:        d.Email,
		RegisteredAt: d.RegisteredAt,
		ModifiedAt:   d.ModifiedAt,
		DateOfBirth:  d.DateOfBirth,
		ProfileImage: d.ProfileImage,
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return *domain.ReconstructUser(m.ID, m.Name, m.Email, m.RegisteredAt, m.ModifiedAt, m.DateOfBirth, m.ProfileImage)
}

// ToDomainUserSlice converts a slice of model Users to a slice of domain Users
func ToDomainUserSlice(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUser(m)
	}
	return ds
}
