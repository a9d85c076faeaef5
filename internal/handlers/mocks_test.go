package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/finances_app/internal/core/domain"
	portssvc "github.com/SscSPs/finances_app/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// mockCtx matches the request context passed to every service call.
const mockCtx = mock.Anything

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID uuid.UUID) domain.Account {
	return m.Called(ctx, accountID).Get(0).(domain.Account)
}
func (m *MockAccountService) GetAccounts(ctx context.Context) []domain.Account {
	return m.Called(ctx).Get(0).([]domain.Account)
}
func (m *MockAccountService) GetActiveAccounts(ctx context.Context) []domain.Account {
	return m.Called(ctx).Get(0).([]domain.Account)
}
func (m *MockAccountService) GetAccountsByType(ctx context.Context, accountType domain.AccountType) []domain.Account {
	return m.Called(ctx, accountType).Get(0).([]domain.Account)
}
func (m *MockAccountService) CreateAccount(ctx context.Context, cmd portssvc.CreateAccountCommand) (uuid.UUID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(uuid.UUID), args.Error(1)
}
func (m *MockAccountService) RenameAccount(ctx context.Context, cmd portssvc.RenameAccountCommand) (bool, error) {
	args := m.Called(ctx, cmd)
	return args.Bool(0), args.Error(1)
}
func (m *MockAccountService) ApplyAccountDelta(ctx context.Context, cmd portssvc.ApplyAccountDeltaCommand) (bool, error) {
	args := m.Called(ctx, cmd)
	return args.Bool(0), args.Error(1)
}
func (m *MockAccountService) ScheduleAccountPayment(ctx context.Context, cmd portssvc.ScheduleAccountPaymentCommand) (bool, error) {
	args := m.Called(ctx, cmd)
	return args.Bool(0), args.Error(1)
}
func (m *MockAccountService) CloseAccount(ctx context.Context, accountID uuid.UUID) (bool, error) {
	args := m.Called(ctx, accountID)
	return args.Bool(0), args.Error(1)
}
func (m *MockAccountService) DeleteAccount(ctx context.Context, accountID uuid.UUID) bool {
	return m.Called(ctx, accountID).Bool(0)
}

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

func (m *MockUserService) GetUserByID(ctx context.Context, userID uuid.UUID) domain.User {
	return m.Called(ctx, userID).Get(0).(domain.User)
}
func (m *MockUserService) GetUserByEmail(ctx context.Context, email string) domain.User {
	return m.Called(ctx, email).Get(0).(domain.User)
}
func (m *MockUserService) GetUsers(ctx context.Context) []domain.User {
	return m.Called(ctx).Get(0).([]domain.User)
}
func (m *MockUserService) GetUsersRegisteredAfter(ctx context.Context, t time.Time) []domain.User {
	return m.Called(ctx, t).Get(0).([]domain.User)
}
func (m *MockUserService) CreateUser(ctx context.Context, cmd portssvc.CreateUserCommand) (uuid.UUID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(uuid.UUID), args.Error(1)
}
func (m *MockUserService) UpdateUser(ctx context.Context, cmd portssvc.UpdateUserCommand) bool {
	return m.Called(ctx, cmd).Bool(0)
}
func (m *MockUserService) DeleteUser(ctx context.Context, userID uuid.UUID) bool {
	return m.Called(ctx, userID).Bool(0)
}

// --- Mock CredentialsService ---
type MockCredentialsService struct {
	mock.Mock
}

var _ portssvc.CredentialsSvcFacade = (*MockCredentialsService)(nil)

func (m *MockCredentialsService) GetUserCredentialsByUserID(ctx context.Context, userID uuid.UUID) domain.UserCredentials {
	return m.Called(ctx, userID).Get(0).(domain.UserCredentials)
}
func (m *MockCredentialsService) GetUserCredentialsByLogin(ctx context.Context, login string) domain.UserCredentials {
	return m.Called(ctx, login).Get(0).(domain.UserCredentials)
}
func (m *MockCredentialsService) VerifyUserCredentials(ctx context.Context, login, password string) bool {
	return m.Called(ctx, login, password).Bool(0)
}
func (m *MockCredentialsService) RegisterUserCredentials(ctx context.Context, cmd portssvc.RegisterUserCredentialsCommand) (uuid.UUID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(uuid.UUID), args.Error(1)
}
func (m *MockCredentialsService) UpdateUserCredentials(ctx context.Context, cmd portssvc.UpdateUserCredentialsCommand) (bool, error) {
	args := m.Called(ctx, cmd)
	return args.Bool(0), args.Error(1)
}
func (m *MockCredentialsService) DeleteUserCredentials(ctx context.Context, userID uuid.UUID) bool {
	return m.Called(ctx, userID).Bool(0)
}
