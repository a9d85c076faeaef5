package services

import (
	portsrepo "github.com/SscSPs/finances_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finances_app/internal/core/ports/services"
	"github.com/SscSPs/finances_app/internal/platform/config"
	"github.com/SscSPs/finances_app/internal/utils"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:     NewAccountService(repos.AccountRepo),
		User:        NewUserService(repos.UserRepo),
		Credentials: NewCredentialsService(repos.CredentialsRepo, utils.NewBcryptHasher(cfg.BcryptCost)),
	}
}
