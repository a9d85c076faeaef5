package services_test

import (
	"context"
	"strings"
	"time"

	"github.com/SscSPs/finances_app/internal/core/domain"
	portsrepo "github.com/SscSPs/finances_app/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID uuid.UUID) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	var account *domain.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*domain.Account)
	}
	return account, args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	var accounts []domain.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).([]domain.Account)
	}
	return accounts, args.Error(1)
}

func (m *MockAccountRepository) ListActiveAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	var accounts []domain.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).([]domain.Account)
	}
	return accounts, args.Error(1)
}

func (m *MockAccountRepository) ListAccountsByType(ctx context.Context, accountType domain.AccountType) ([]domain.Account, error) {
	args := m.Called(ctx, accountType)
	var accounts []domain.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).([]domain.Account)
	}
	return accounts, args.Error(1)
}

func (m *MockAccountRepository) CreateAccount(ctx context.Context, account domain.Account) (bool, error) {
	args := m.Called(ctx, account)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) (bool, error) {
	args := m.Called(ctx, account)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountID uuid.UUID) (bool, error) {
	args := m.Called(ctx, accountID)
	return args.Bool(0), args.Error(1)
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) ListUsersRegisteredAfter(ctx context.Context, t time.Time) ([]domain.User, error) {
	args := m.Called(ctx, t)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user domain.User) (uuid.UUID, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) (bool, error) {
	args := m.Called(ctx, user)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

// --- Mock UserCredentialsRepository ---
type MockCredentialsRepository struct {
	mock.Mock
}

func (m *MockCredentialsRepository) FindByLogin(ctx context.Context, login string) (*domain.UserCredentials, error) {
	args := m.Called(ctx, login)
	var creds *domain.UserCredentials
	if args.Get(0) != nil {
		creds = args.Get(0).(*domain.UserCredentials)
	}
	return creds, args.Error(1)
}

func (m *MockCredentialsRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserCredentials, error) {
	args := m.Called(ctx, userID)
	var creds *domain.UserCredentials
	if args.Get(0) != nil {
		creds = args.Get(0).(*domain.UserCredentials)
	}
	return creds, args.Error(1)
}

func (m *MockCredentialsRepository) CreateUserCredentials(ctx context.Context, credentials domain.UserCredentials) (uuid.UUID, error) {
	args := m.Called(ctx, credentials)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockCredentialsRepository) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) (bool, error) {
	args := m.Called(ctx, userID, passwordHash)
	return args.Bool(0), args.Error(1)
}

func (m *MockCredentialsRepository) DeleteUserCredentials(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

var _ portsrepo.UserCredentialsRepositoryFacade = (*MockCredentialsRepository)(nil)

// fakeHasher hashes by prefixing, so tests can assert on stored values.
type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }

func (fakeHasher) Verify(plain, hash string) bool {
	return strings.TrimPrefix(hash, "hashed:") == plain && strings.HasPrefix(hash, "hashed:")
}
