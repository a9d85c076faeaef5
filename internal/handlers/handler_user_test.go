package handlers_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/finances_app/internal/apperrors"
	"github.com/SscSPs/finances_app/internal/core/domain"
	portssvc "github.com/SscSPs/finances_app/internal/core/ports/services"
	"github.com/SscSPs/finances_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func (s *HandlerTestSuite) TestCreateUser_Success() {
	id := uuid.New()
	dob := time.Date(1990, 5, 10, 0, 0, 0, 0, time.UTC)
	s.users.On("CreateUser", mockCtx, mock.MatchedBy(func(cmd portssvc.CreateUserCommand) bool {
		return cmd.Email == "ada@example.com" && cmd.DateOfBirth.Equal(dob)
	})).Return(id, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/users", dto.CreateUserRequest{Name: "Ada", Email: "ada@example.com", DateOfBirth: dob})

	s.Equal(http.StatusCreated, w.Code)
	var resp dto.IDResponse
	s.decode(w, &resp)
	s.Equal(id.String(), resp.ID)
}

func (s *HandlerTestSuite) TestCreateUser_TooYoung() {
	s.users.On("CreateUser", mockCtx, mock.Anything).
		Return(uuid.Nil, apperrors.NewValidationError("You're too young buddy.")).Once()

	w := s.do(http.MethodPost, "/api/v1/users", dto.CreateUserRequest{Name: "Kid", Email: "kid@example.com", DateOfBirth: time.Now().UTC()})

	s.Equal(http.StatusBadRequest, w.Code)
	var resp dto.ErrorResponse
	s.decode(w, &resp)
	s.Equal("You're too young buddy.", resp.Error)
}

func (s *HandlerTestSuite) TestCreateUser_DuplicateEmail() {
	s.users.On("CreateUser", mockCtx, mock.Anything).
		Return(uuid.Nil, fmt.Errorf("email taken: %w", apperrors.ErrDuplicate)).Once()

	w := s.do(http.MethodPost, "/api/v1/users", dto.CreateUserRequest{Name: "Ada", Email: "ada@example.com", DateOfBirth: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)})

	s.Equal(http.StatusConflict, w.Code)
}

func (s *HandlerTestSuite) TestCreateUser_MissingDateOfBirth() {
	w := s.do(http.MethodPost, "/api/v1/users", `{"name":"Ada","email":"ada@example.com"}`)

	s.Equal(http.StatusBadRequest, w.Code)
	var resp dto.ErrorResponse
	s.decode(w, &resp)
	s.Equal("is required", resp.Details["dateOfBirth"])
}

func (s *HandlerTestSuite) TestGetUser() {
	user, err := domain.NewUser("Ada", "ada@example.com", time.Date(1990, 5, 10, 0, 0, 0, 0, time.UTC), "")
	s.Require().NoError(err)
	s.users.On("GetUserByID", mockCtx, user.ID).Return(*user).Once()

	w := s.do(http.MethodGet, "/api/v1/users/"+user.ID.String(), nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.UserResponse
	s.decode(w, &resp)
	s.Equal("ada@example.com", resp.Email)
	s.Equal(user.Age(), resp.Age)
}

func (s *HandlerTestSuite) TestGetUserByEmail_NotFound() {
	s.users.On("GetUserByEmail", mockCtx, "nobody@example.com").Return(domain.User{}).Once()

	w := s.do(http.MethodGet, "/api/v1/users/by-email/nobody@example.com", nil)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlerTestSuite) TestListUsers_RegisteredAfter() {
	after := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.users.On("GetUsersRegisteredAfter", mockCtx, mock.MatchedBy(func(t time.Time) bool {
		return t.Equal(after)
	})).Return([]domain.User{}).Once()

	w := s.do(http.MethodGet, "/api/v1/users?registeredAfter=2024-01-01T00:00:00Z", nil)

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"users":[]}`, w.Body.String())
}

func (s *HandlerTestSuite) TestListUsers_BadTimestamp() {
	w := s.do(http.MethodGet, "/api/v1/users?registeredAfter=yesterday", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestUpdateUser() {
	id := uuid.New()
	s.users.On("UpdateUser", mockCtx, mock.MatchedBy(func(cmd portssvc.UpdateUserCommand) bool {
		return cmd.UserID == id && cmd.Name == "Ada L."
	})).Return(true).Once()

	w := s.do(http.MethodPut, "/api/v1/users/"+id.String(), dto.UpdateUserRequest{
		Name:        "Ada L.",
		Email:       "ada@example.com",
		DateOfBirth: time.Date(1990, 5, 10, 0, 0, 0, 0, time.UTC),
	})

	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlerTestSuite) TestUpdateUser_Failure() {
	id := uuid.New()
	s.users.On("UpdateUser", mockCtx, mock.Anything).Return(false).Once()

	w := s.do(http.MethodPut, "/api/v1/users/"+id.String(), dto.UpdateUserRequest{DateOfBirth: time.Date(1990, 5, 10, 0, 0, 0, 0, time.UTC)})

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestDeleteUser() {
	id := uuid.New()
	s.users.On("DeleteUser", mockCtx, id).Return(true).Once()

	w := s.do(http.MethodDelete, "/api/v1/users/"+id.String(), nil)

	s.Equal(http.StatusNoContent, w.Code)
}
