package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/finances_app/internal/apperrors"
	"github.com/SscSPs/finances_app/internal/core/domain"
	portsrepo "github.com/SscSPs/finances_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finances_app/internal/core/ports/services"
	"github.com/google/uuid"
)

type credentialsService struct {
	BaseService
	credentialsRepo portsrepo.UserCredentialsRepositoryFacade
	hasher          domain.PasswordHasher
}

func NewCredentialsService(repo portsrepo.UserCredentialsRepositoryFacade, hasher domain.PasswordHasher) portssvc.CredentialsSvcFacade {
	return &credentialsService{
		credentialsRepo: repo,
		hasher:          hasher,
	}
}

var _ portssvc.CredentialsSvcFacade = (*credentialsService)(nil)

func (s *credentialsService) RegisterUserCredentials(ctx context.Context, cmd portssvc.RegisterUserCredentialsCommand) (uuid.UUID, error) {
	creds, err := domain.NewUserCredentials(cmd.UserID, cmd.Login, cmd.PlainPassword, s.hasher)
	if err != nil {
		if apperrors.IsDomainError(err) {
			s.LogWarn(ctx, err, "Credentials registration rejected", slog.String("user_id", cmd.UserID.String()))
			return uuid.Nil, err
		}
		s.LogError(ctx, err, "Failed to hash password", slog.String("user_id", cmd.UserID.String()))
		return uuid.Nil, nil
	}

	id, err := s.credentialsRepo.CreateUserCredentials(ctx, *creds)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogWarn(ctx, err, "Login or user already has credentials", slog.String("user_id", cmd.UserID.String()))
			return uuid.Nil, fmt.Errorf("credentials already exist: %w", apperrors.ErrDuplicate)
		}
		s.LogError(ctx, err, "Failed to create credentials", slog.String("user_id", cmd.UserID.String()))
		return uuid.Nil, nil
	}

	s.LogInfo(ctx, "Credentials registered", slog.String("user_id", cmd.UserID.String()))
	return id, nil
}

func (s *credentialsService) UpdateUserCredentials(ctx context.Context, cmd portssvc.UpdateUserCredentialsCommand) (bool, error) {
	var creds domain.UserCredentials
	if err := creds.SetPassword(cmd.NewPlainPassword, s.hasher); err != nil {
		if apperrors.IsDomainError(err) {
			s.LogWarn(ctx, err, "Password update rejected", slog.String("user_id", cmd.UserID.String()))
			return false, err
		}
		s.LogError(ctx, err, "Failed to hash password", slog.String("user_id", cmd.UserID.String()))
		return false, nil
	}

	ok, err := s.credentialsRepo.UpdatePassword(ctx, cmd.UserID, creds.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to update password", slog.String("user_id", cmd.UserID.String()))
		return false, nil
	}
	return ok, nil
}

func (s *credentialsService) DeleteUserCredentials(ctx context.Context, userID uuid.UUID) bool {
	ok, err := s.credentialsRepo.DeleteUserCredentials(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete credentials", slog.String("user_id", userID.String()))
		return false
	}
	return ok
}

func (s *credentialsService) GetUserCredentialsByUserID(ctx context.Context, userID uuid.UUID) domain.UserCredentials {
	creds, err := s.credentialsRepo.FindByUserID(ctx, userID)
	return s.credentialsOrEmpty(ctx, creds, err, slog.String("user_id", userID.String()))
}

func (s *credentialsService) GetUserCredentialsByLogin(ctx context.Context, login string) domain.UserCredentials {
	creds, err := s.credentialsRepo.FindByLogin(ctx, login)
	return s.credentialsOrEmpty(ctx, creds, err, slog.String("login", login))
}

func (s *credentialsService) VerifyUserCredentials(ctx context.Context, login, password string) bool {
	creds := s.GetUserCredentialsByLogin(ctx, login)
	if creds.IsEmpty() {
		return false
	}
	return creds.VerifyPassword(password, s.hasher)
}

func (s *credentialsService) credentialsOrEmpty(ctx context.Context, creds *domain.UserCredentials, err error, attr slog.Attr) domain.UserCredentials {
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get credentials", attr)
		}
		return domain.UserCredentials{}
	}
	return *creds
}
