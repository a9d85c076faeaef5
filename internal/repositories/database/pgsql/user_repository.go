package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/finances_app/internal/apperrors"
	"github.com/SscSPs/finances_app/internal/core/domain"
	portsrepo "github.com/SscSPs/finances_app/internal/core/ports/repositories"
	"github.com/SscSPs/finances_app/internal/models"
	"github.com/SscSPs/finances_app/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, name, email, registered_at, modified_at, date_of_birth, profile_image`

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db DB) *PgxUserRepository {
	return &PgxUserRepository{BaseRepository{db: db}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func scanUser(row pgx.Row) (models.User, error) {
	var m models.User
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Email,
		&m.RegisteredAt,
		&m.ModifiedAt,
		&m.DateOfBirth,
		&m.ProfileImage,
	)
	return m, err
}

func (r *PgxUserRepository) CreateUser(ctx context.Context, user domain.User) (uuid.UUID, error) {
	m := mapping.ToModelUser(user)
	query := `
        INSERT INTO users (` + userColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id;
    `
	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		m.ID,
		m.Name,
		m.Email,
		m.RegisteredAt,
		m.ModifiedAt,
		m.DateOfBirth,
		m.ProfileImage,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, fmt.Errorf("user with email %s: %w", m.Email, apperrors.ErrDuplicate)
		}
		return uuid.Nil, fmt.Errorf("failed to save user: %w", err)
	}
	return id, nil
}

// UpdateUser stores the editable fields. registered_at is never touched.
func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) (bool, error) {
	m := mapping.ToModelUser(user)
	query := `
        UPDATE users
        SET name = $1, email = $2, date_of_birth = $3, profile_image = $4, modified_at = $5
        WHERE id = $6;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.Name,
		m.Email,
		m.DateOfBirth,
		m.ProfileImage,
		m.ModifiedAt,
		m.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return false, fmt.Errorf("user with email %s: %w", m.Email, apperrors.ErrDuplicate)
		}
		return false, fmt.Errorf("failed to execute update user query: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

func (r *PgxUserRepository) DeleteUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1;`, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete user %s: %w", userID, err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1;`
	return r.findOne(ctx, query, userID)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1);`
	return r.findOne(ctx, query, email)
}

func (r *PgxUserRepository) findOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	m, err := scanUser(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by %v: %w", arg, err)
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}

func (r *PgxUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY registered_at DESC;`
	return r.queryUsers(ctx, query)
}

func (r *PgxUserRepository) ListUsersRegisteredAfter(ctx context.Context, t time.Time) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE registered_at > $1 ORDER BY registered_at ASC;`
	return r.queryUsers(ctx, query, t)
}

func (r *PgxUserRepository) queryUsers(ctx context.Context, query string, args ...any) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	modelUsers := []models.User{}
	for rows.Next() {
		m, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		modelUsers = append(modelUsers, m)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", rows.Err())
	}

	return mapping.ToDomainUserSlice(modelUsers), nil
}
