package pgsql

import (
	portsrepo "github.com/SscSPs/finances_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx repository onto db (normally a *pgxpool.Pool).
func NewRepositoryProvider(db DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     newPgxAccountRepository(db),
		UserRepo:        newPgxUserRepository(db),
		CredentialsRepo: newPgxUserCredentialsRepository(db),
	}
}
