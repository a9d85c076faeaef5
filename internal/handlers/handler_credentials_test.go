package handlers_test

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/finances_app/internal/apperrors"
	"github.com/SscSPs/finances_app/internal/core/domain"
	portssvc "github.com/SscSPs/finances_app/internal/core/ports/services"
	"github.com/SscSPs/finances_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func (s *HandlerTestSuite) TestRegisterCredentials() {
	userID, credID := uuid.New(), uuid.New()
	s.credentials.On("RegisterUserCredentials", mockCtx, portssvc.RegisterUserCredentialsCommand{
		UserID:        userID,
		Login:         "ada.l",
		PlainPassword: "correct-horse",
	}).Return(credID, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/credentials", dto.RegisterCredentialsRequest{UserID: userID.String(), Login: "ada.l", Password: "correct-horse"})

	s.Equal(http.StatusCreated, w.Code)
	var resp dto.IDResponse
	s.decode(w, &resp)
	s.Equal(credID.String(), resp.ID)
}

func (s *HandlerTestSuite) TestRegisterCredentials_InvalidUserID() {
	w := s.do(http.MethodPost, "/api/v1/credentials", `{"userId":"nope","login":"ada.l","password":"correct-horse"}`)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestRegisterCredentials_PolicyViolation() {
	s.credentials.On("RegisterUserCredentials", mockCtx, mock.Anything).
		Return(uuid.Nil, apperrors.NewValidationError("Password must be at least 8 characters.")).Once()

	w := s.do(http.MethodPost, "/api/v1/credentials", dto.RegisterCredentialsRequest{UserID: uuid.NewString(), Login: "ada.l", Password: "short"})

	s.Equal(http.StatusBadRequest, w.Code)
	var resp dto.ErrorResponse
	s.decode(w, &resp)
	s.Equal("Password must be at least 8 characters.", resp.Error)
}

func (s *HandlerTestSuite) TestRegisterCredentials_LoginTaken() {
	s.credentials.On("RegisterUserCredentials", mockCtx, mock.Anything).
		Return(uuid.Nil, fmt.Errorf("credentials already exist: %w", apperrors.ErrDuplicate)).Once()

	w := s.do(http.MethodPost, "/api/v1/credentials", dto.RegisterCredentialsRequest{UserID: uuid.NewString(), Login: "ada.l", Password: "correct-horse"})

	s.Equal(http.StatusConflict, w.Code)
}

func (s *HandlerTestSuite) TestGetCredentialsByLogin_NeverExposesHash() {
	creds := domain.ReconstructUserCredentials(uuid.New(), uuid.New(), "ada.l", "$2a$10$secret")
	s.credentials.On("GetUserCredentialsByLogin", mockCtx, "ada.l").Return(*creds).Once()

	w := s.do(http.MethodGet, "/api/v1/credentials/login/ada.l", nil)

	s.Equal(http.StatusOK, w.Code)
	s.NotContains(w.Body.String(), "secret")
	var resp dto.CredentialsResponse
	s.decode(w, &resp)
	s.Equal(creds.UserID.String(), resp.UserID)
}

func (s *HandlerTestSuite) TestGetCredentialsByUserID_NotFound() {
	userID := uuid.New()
	s.credentials.On("GetUserCredentialsByUserID", mockCtx, userID).Return(domain.UserCredentials{}).Once()

	w := s.do(http.MethodGet, "/api/v1/credentials/user/"+userID.String(), nil)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlerTestSuite) TestVerifyCredentials() {
	s.credentials.On("VerifyUserCredentials", mockCtx, "ada.l", "wrong-pass").Return(false).Once()

	w := s.do(http.MethodPost, "/api/v1/credentials/verify", dto.VerifyCredentialsRequest{Login: "ada.l", Password: "wrong-pass"})

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"valid":false}`, w.Body.String())
}

func (s *HandlerTestSuite) TestUpdatePassword() {
	userID := uuid.New()
	s.credentials.On("UpdateUserCredentials", mockCtx, portssvc.UpdateUserCredentialsCommand{
		UserID:           userID,
		NewPlainPassword: "new-password",
	}).Return(true, nil).Once()

	w := s.do(http.MethodPut, "/api/v1/credentials/"+userID.String(), dto.UpdateCredentialsRequest{Password: "new-password"})

	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlerTestSuite) TestDeleteCredentials() {
	userID := uuid.New()
	s.credentials.On("DeleteUserCredentials", mockCtx, userID).Return(true).Once()

	w := s.do(http.MethodDelete, "/api/v1/credentials/"+userID.String(), nil)

	s.Equal(http.StatusNoContent, w.Code)
}
