package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/finances_app/internal/apperrors"
	"github.com/SscSPs/finances_app/internal/core/domain"
	portsrepo "github.com/SscSPs/finances_app/internal/core/ports/repositories"
	"github.com/SscSPs/finances_app/internal/models"
	"github.com/SscSPs/finances_app/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PgxUserCredentialsRepository struct {
	BaseRepository
}

func newPgxUserCredentialsRepository(db DB) *PgxUserCredentialsRepository {
	return &PgxUserCredentialsRepository{BaseRepository{db: db}}
}

var _ portsrepo.UserCredentialsRepositoryFacade = (*PgxUserCredentialsRepository)(nil)

func (r *PgxUserCredentialsRepository) CreateUserCredentials(ctx context.Context, credentials domain.UserCredentials) (uuid.UUID, error) {
	m := mapping.ToModelUserCredentials(credentials)
	query := `
        INSERT INTO user_credentials (id, user_id, login, password_hash)
        VALUES ($1, $2, $3, $4)
        RETURNING id;
    `
	var id uuid.UUID
	err := r.db.QueryRow(ctx, query, m.ID, m.UserID, m.Login, m.PasswordHash).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, fmt.Errorf("credentials for login %s: %w", m.Login, apperrors.ErrDuplicate)
		}
		return uuid.Nil, fmt.Errorf("failed to save credentials: %w", err)
	}
	return id, nil
}

func (r *PgxUserCredentialsRepository) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `UPDATE user_credentials SET password_hash = $1 WHERE user_id = $2;`, passwordHash, userID)
	if err != nil {
		return false, fmt.Errorf("failed to update password for user %s: %w", userID, err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

func (r *PgxUserCredentialsRepository) DeleteUserCredentials(ctx context.Context, userID uuid.UUID) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM user_credentials WHERE user_id = $1;`, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete credentials for user %s: %w", userID, err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

func (r *PgxUserCredentialsRepository) FindByLogin(ctx context.Context, login string) (*domain.UserCredentials, error) {
	return r.findOne(ctx, `SELECT id, user_id, login, password_hash FROM user_credentials WHERE login = $1;`, login)
}

func (r *PgxUserCredentialsRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserCredentials, error) {
	return r.findOne(ctx, `SELECT id, user_id, login, password_hash FROM user_credentials WHERE user_id = $1;`, userID)
}

func (r *PgxUserCredentialsRepository) findOne(ctx context.Context, query string, arg any) (*domain.UserCredentials, error) {
	var m models.UserCredentials
	err := r.db.QueryRow(ctx, query, arg).Scan(&m.ID, &m.UserID, &m.Login, &m.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find credentials by %v: %w", arg, err)
	}
	creds := mapping.ToDomainUserCredentials(m)
	return &creds, nil
}
