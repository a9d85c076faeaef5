package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/finances_app/internal/apperrors"
	"github.com/SscSPs/finances_app/internal/core/domain"
	portsrepo "github.com/SscSPs/finances_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finances_app/internal/core/ports/services"
	"github.com/google/uuid"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

func NewUserService(repo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: repo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) CreateUser(ctx context.Context, cmd portssvc.CreateUserCommand) (uuid.UUID, error) {
	user, err := domain.NewUser(cmd.Name, cmd.Email, cmd.DateOfBirth, cmd.ProfileImage)
	if err != nil {
		s.LogWarn(ctx, err, "User registration rejected")
		return uuid.Nil, err
	}

	id, err := s.userRepo.CreateUser(ctx, *user)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogWarn(ctx, err, "User email already registered")
			return uuid.Nil, fmt.Errorf("email already registered: %w", apperrors.ErrDuplicate)
		}
		s.LogError(ctx, err, "Failed to create user", slog.String("user_id", user.ID.String()))
		return uuid.Nil, nil
	}

	s.LogInfo(ctx, "User created", slog.String("user_id", id.String()))
	return id, nil
}

func (s *userService) UpdateUser(ctx context.Context, cmd portssvc.UpdateUserCommand) bool {
	user := domain.ReplaceUser(cmd.UserID, cmd.Name, cmd.Email, cmd.DateOfBirth, cmd.ProfileImage)

	ok, err := s.userRepo.UpdateUser(ctx, *user)
	if err != nil {
		s.LogError(ctx, err, "Failed to update user", slog.String("user_id", cmd.UserID.String()))
		return false
	}
	return ok
}

func (s *userService) DeleteUser(ctx context.Context, userID uuid.UUID) bool {
	ok, err := s.userRepo.DeleteUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete user", slog.String("user_id", userID.String()))
		return false
	}
	return ok
}

func (s *userService) GetUserByID(ctx context.Context, userID uuid.UUID) domain.User {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	return s.userOrEmpty(ctx, user, err, slog.String("user_id", userID.String()))
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) domain.User {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	return s.userOrEmpty(ctx, user, err, slog.String("email", email))
}

func (s *userService) userOrEmpty(ctx context.Context, user *domain.User, err error, attr slog.Attr) domain.User {
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get user", attr)
		}
		return domain.User{}
	}
	return *user
}

func (s *userService) GetUsers(ctx context.Context) []domain.User {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return []domain.User{}
	}
	if users == nil {
		return []domain.User{}
	}
	return users
}

func (s *userService) GetUsersRegisteredAfter(ctx context.Context, t time.Time) []domain.User {
	users, err := s.userRepo.ListUsersRegisteredAfter(ctx, t)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users registered after date", slog.Time("after", t))
		return []domain.User{}
	}
	if users == nil {
		return []domain.User{}
	}
	return users
}
