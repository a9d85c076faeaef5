package mapping

import (
	"github.com/SscSPs/finances_app/internal/core/domain"
	"github.com/SscSPs/finances_app/internal/models"
)

func ToModelUserCredentials(d domain.UserCredentials) models.UserCredentials {
	return models.UserCredentials{
		ID:           d.ID,
		UserID:       d.UserID,
		Login:        d.Login,
		PasswordHash: d.Password,
	}
}

func ToDomainUserCredentials(m models.UserCredentials) domain.UserCredentials {
	return *domain.ReconstructUserCredentials(m.ID, m.UserID, m.Login, m.PasswordHash)
}
