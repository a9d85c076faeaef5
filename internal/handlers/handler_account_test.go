package handlers_test

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/finances_app/internal/apperrors"
	"github.com/SscSPs/finances_app/internal/core/domain"
	portssvc "github.com/SscSPs/finances_app/internal/core/ports/services"
	"github.com/SscSPs/finances_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func (s *HandlerTestSuite) TestCreateAccount_Success() {
	id := uuid.New()
	s.accounts.On("CreateAccount", mockCtx, mock.MatchedBy(func(cmd portssvc.CreateAccountCommand) bool {
		return cmd.Name == "Wallet" &&
			cmd.Type == domain.AccountTypeCash &&
			cmd.UserID == nil &&
			cmd.Balance.Equal(domain.MustMoney("100", "USD"))
	})).Return(id, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/accounts", `{"name":"Wallet","balance":{"amount":"100","currency":"usd"},"type":"cash"}`)

	s.Equal(http.StatusCreated, w.Code)
	var resp dto.IDResponse
	s.decode(w, &resp)
	s.Equal(id.String(), resp.ID)
}

func (s *HandlerTestSuite) TestCreateAccount_WithOwner() {
	owner := uuid.New()
	s.accounts.On("CreateAccount", mockCtx, mock.MatchedBy(func(cmd portssvc.CreateAccountCommand) bool {
		return cmd.UserID != nil && *cmd.UserID == owner
	})).Return(uuid.New(), nil).Once()

	body := fmt.Sprintf(`{"userId":%q,"name":"Visa","balance":{"amount":"0","currency":"EUR"},"type":"CREDIT_CARD"}`, owner)
	w := s.do(http.MethodPost, "/api/v1/accounts", body)

	s.Equal(http.StatusCreated, w.Code)
}

func (s *HandlerTestSuite) TestCreateAccount_LongName() {
	name := strings.Repeat("n", 150)
	s.accounts.On("CreateAccount", mockCtx, mock.MatchedBy(func(cmd portssvc.CreateAccountCommand) bool {
		return cmd.Name == name
	})).Return(uuid.New(), nil).Once()

	body := fmt.Sprintf(`{"name":%q,"balance":{"amount":"10","currency":"USD"},"type":"CASH"}`, name)
	w := s.do(http.MethodPost, "/api/v1/accounts", body)

	s.Equal(http.StatusCreated, w.Code)
}

func (s *HandlerTestSuite) TestCreateAccount_MissingName() {
	w := s.do(http.MethodPost, "/api/v1/accounts", `{"balance":{"amount":"1","currency":"USD"},"type":"CASH"}`)

	s.Equal(http.StatusBadRequest, w.Code)
	var resp dto.ErrorResponse
	s.decode(w, &resp)
	s.Equal("is required", resp.Details["name"])
}

func (s *HandlerTestSuite) TestCreateAccount_UnknownType() {
	w := s.do(http.MethodPost, "/api/v1/accounts", `{"name":"Box","balance":{"amount":"1","currency":"USD"},"type":"SAVINGS"}`)

	s.Equal(http.StatusBadRequest, w.Code)
	var resp dto.ErrorResponse
	s.decode(w, &resp)
	s.Equal("Unknown account type.", resp.Error)
}

func (s *HandlerTestSuite) TestCreateAccount_DomainViolation() {
	s.accounts.On("CreateAccount", mockCtx, mock.Anything).
		Return(uuid.Nil, apperrors.NewInvalidOperationError("Initial balance cannot be negative for non credit-card accounts.")).Once()

	w := s.do(http.MethodPost, "/api/v1/accounts", `{"name":"Wallet","balance":{"amount":"-5","currency":"USD"},"type":"CASH"}`)

	s.Equal(http.StatusBadRequest, w.Code)
	var resp dto.ErrorResponse
	s.decode(w, &resp)
	s.Equal("Initial balance cannot be negative for non credit-card accounts.", resp.Error)
}

func (s *HandlerTestSuite) TestCreateAccount_StorageFailure() {
	s.accounts.On("CreateAccount", mockCtx, mock.Anything).Return(uuid.Nil, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/accounts", `{"name":"Wallet","balance":{"amount":"5","currency":"USD"},"type":"CASH"}`)

	s.Equal(http.StatusInternalServerError, w.Code)
}

func (s *HandlerTestSuite) TestGetAccount_Found() {
	account, err := domain.NewAccount(nil, "Bank", domain.MustMoney("400", "BRL"), domain.AccountTypeChecking)
	s.Require().NoError(err)
	s.accounts.On("GetAccountByID", mockCtx, account.ID).Return(*account).Once()

	w := s.do(http.MethodGet, "/api/v1/accounts/"+account.ID.String(), nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.AccountResponse
	s.decode(w, &resp)
	s.Equal("Bank", resp.Name)
	s.Equal("400.00", resp.Balance.Amount)
	s.Equal("800.00", resp.CreditLimit.Amount)
	s.Equal("ACTIVE", resp.Status)
	s.Nil(resp.UserID)
}

func (s *HandlerTestSuite) TestGetAccount_EmptySentinelIs404() {
	id := uuid.New()
	s.accounts.On("GetAccountByID", mockCtx, id).Return(domain.Account{}).Once()

	w := s.do(http.MethodGet, "/api/v1/accounts/"+id.String(), nil)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlerTestSuite) TestGetAccount_InvalidID() {
	w := s.do(http.MethodGet, "/api/v1/accounts/not-a-uuid", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestListAccounts() {
	s.accounts.On("GetAccounts", mockCtx).Return([]domain.Account{}).Once()

	w := s.do(http.MethodGet, "/api/v1/accounts", nil)

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"accounts":[]}`, w.Body.String())
}

func (s *HandlerTestSuite) TestListAccounts_ByType() {
	card, err := domain.NewAccount(nil, "Visa", domain.MustMoney("0", "USD"), domain.AccountTypeCreditCard)
	s.Require().NoError(err)
	s.accounts.On("GetAccountsByType", mockCtx, domain.AccountTypeCreditCard).Return([]domain.Account{*card}).Once()

	w := s.do(http.MethodGet, "/api/v1/accounts?type=credit_card", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.ListAccountsResponse
	s.decode(w, &resp)
	s.Len(resp.Accounts, 1)
	s.Equal("4500.00", resp.Accounts[0].CreditLimit.Amount)
}

func (s *HandlerTestSuite) TestListAccounts_UnknownType() {
	w := s.do(http.MethodGet, "/api/v1/accounts?type=gold", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestRenameAccount_NotStored() {
	id := uuid.New()
	s.accounts.On("RenameAccount", mockCtx, portssvc.RenameAccountCommand{AccountID: id, Name: "Main"}).Return(false, nil).Once()

	w := s.do(http.MethodPatch, "/api/v1/accounts/"+id.String()+"/name", `{"name":"Main"}`)

	s.Equal(http.StatusBadRequest, w.Code)
	var resp dto.ErrorResponse
	s.decode(w, &resp)
	s.Equal("Failed to rename account", resp.Error)
}

func (s *HandlerTestSuite) TestApplyDelta_Payment() {
	id := uuid.New()
	s.accounts.On("ApplyAccountDelta", mockCtx, mock.MatchedBy(func(cmd portssvc.ApplyAccountDeltaCommand) bool {
		return cmd.AccountID == id &&
			cmd.Operation == domain.OperationPayment &&
			cmd.Delta.Equal(domain.MustMoney("25.005", "USD"))
	})).Return(true, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/accounts/"+id.String()+"/transactions", `{"amount":"25.005","currency":"USD","operation":"PAYMENT"}`)

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"success":true}`, w.Body.String())
}

func (s *HandlerTestSuite) TestApplyDelta_DefaultsToMoneyTransaction() {
	id := uuid.New()
	s.accounts.On("ApplyAccountDelta", mockCtx, mock.MatchedBy(func(cmd portssvc.ApplyAccountDeltaCommand) bool {
		return cmd.Operation == domain.OperationMoneyTransaction
	})).Return(true, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/accounts/"+id.String()+"/transactions", `{"amount":10,"currency":"USD"}`)

	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlerTestSuite) TestApplyDelta_MissingCurrency() {
	id := uuid.New()
	w := s.do(http.MethodPost, "/api/v1/accounts/"+id.String()+"/transactions", `{"amount":"10"}`)

	s.Equal(http.StatusBadRequest, w.Code)
	var resp dto.ErrorResponse
	s.decode(w, &resp)
	s.Equal("Currency is required.", resp.Error)
}

func (s *HandlerTestSuite) TestApplyDelta_AccountNotFound() {
	id := uuid.New()
	s.accounts.On("ApplyAccountDelta", mockCtx, mock.Anything).
		Return(false, fmt.Errorf("account %s: %w", id, apperrors.ErrNotFound)).Once()

	w := s.do(http.MethodPost, "/api/v1/accounts/"+id.String()+"/transactions", `{"amount":"10","currency":"USD"}`)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlerTestSuite) TestApplyDelta_CreditLimitExceeded() {
	id := uuid.New()
	s.accounts.On("ApplyAccountDelta", mockCtx, mock.Anything).
		Return(false, apperrors.NewInvalidOperationError("Credit limit exceeded.")).Once()

	w := s.do(http.MethodPost, "/api/v1/accounts/"+id.String()+"/transactions", `{"amount":"5000","currency":"USD","operation":"CREDIT_PURCHASE"}`)

	s.Equal(http.StatusBadRequest, w.Code)
	var resp dto.ErrorResponse
	s.decode(w, &resp)
	s.Equal("Credit limit exceeded.", resp.Error)
}

func (s *HandlerTestSuite) TestSchedulePayment() {
	id := uuid.New()
	pay := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	due := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)
	s.accounts.On("ScheduleAccountPayment", mockCtx, mock.MatchedBy(func(cmd portssvc.ScheduleAccountPaymentCommand) bool {
		return cmd.AccountID == id && cmd.PaymentDate.Equal(pay) && cmd.DueDate.Equal(due)
	})).Return(true, nil).Once()

	w := s.do(http.MethodPut, "/api/v1/accounts/"+id.String()+"/schedule", dto.SchedulePaymentRequest{PaymentDate: &pay, DueDate: &due})

	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlerTestSuite) TestCloseAccount_NonZeroBalance() {
	id := uuid.New()
	s.accounts.On("CloseAccount", mockCtx, id).
		Return(false, apperrors.NewInvalidOperationError("Account must have zero balance before closing.")).Once()

	w := s.do(http.MethodPost, "/api/v1/accounts/"+id.String()+"/close", nil)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestDeleteAccount() {
	id := uuid.New()
	s.accounts.On("DeleteAccount", mockCtx, id).Return(true).Once()

	w := s.do(http.MethodDelete, "/api/v1/accounts/"+id.String(), nil)

	s.Equal(http.StatusNoContent, w.Code)
}

func (s *HandlerTestSuite) TestDeleteAccount_Unknown() {
	id := uuid.New()
	s.accounts.On("DeleteAccount", mockCtx, id).Return(false).Once()

	w := s.do(http.MethodDelete, "/api/v1/accounts/"+id.String(), nil)

	s.Equal(http.StatusNotFound, w.Code)
}
