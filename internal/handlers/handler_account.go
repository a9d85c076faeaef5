package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/finances_app/internal/core/domain"
	portssvc "github.com/SscSPs/finances_app/internal/core/ports/services"
	"github.com/SscSPs/finances_app/internal/dto"
	"github.com/SscSPs/finances_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{
		accountService: as,
	}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/active", h.listActiveAccounts)
		accounts.GET("/:id", h.getAccount)
		accounts.PATCH("/:id/name", h.renameAccount)
		accounts.POST("/:id/transactions", h.applyDelta)
		accounts.PUT("/:id/schedule", h.schedulePayment)
		accounts.POST("/:id/close", h.closeAccount)
		accounts.DELETE("/:id", h.deleteAccount)
	}
}

// createAccount godoc
// @Summary Open a new account
// @Description Creates a cash, checking or credit-card account
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or rule violation"
// @Failure 500 {object} dto.ErrorResponse "Failed to create account"
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	accountType, err := domain.ParseAccountType(req.Type)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create account")
		return
	}
	balance, err := domain.NewMoney(req.Balance.Amount, req.Balance.Currency)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create account")
		return
	}

	var userID *uuid.UUID
	if req.UserID != nil && *req.UserID != "" {
		parsed, err := uuid.Parse(*req.UserID)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid userId"})
			return
		}
		userID = &parsed
	}

	logger.Info("Received request to create account", slog.String("account_name", req.Name), slog.String("account_type", string(accountType)))

	id, err := h.accountService.CreateAccount(c.Request.Context(), portssvc.CreateAccountCommand{
		UserID:  userID,
		Name:    req.Name,
		Balance: balance,
		Type:    accountType,
	})
	if err != nil {
		respondWithError(c, logger, err, "Failed to create account")
		return
	}
	if id == uuid.Nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create account"})
		return
	}

	c.JSON(http.StatusCreated, dto.IDResponse{ID: id.String()})
}

// getAccount godoc
// @Summary Get an account by ID
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Router /accounts/{id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := parseUUIDParam(c, logger, "id")
	if !ok {
		return
	}

	account := h.accountService.GetAccountByID(c.Request.Context(), accountID)
	if account.IsEmpty() {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Account not found"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List accounts
// @Description Lists every account, optionally only those of one type
// @Tags accounts
// @Produce  json
// @Param   type query string false "CASH, CHECKING or CREDIT_CARD"
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 400 {object} dto.ErrorResponse "Unknown account type"
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	if params.Type == "" {
		c.JSON(http.StatusOK, dto.ToListAccountResponse(h.accountService.GetAccounts(c.Request.Context())))
		return
	}

	accountType, err := domain.ParseAccountType(params.Type)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAccountResponse(h.accountService.GetAccountsByType(c.Request.Context(), accountType)))
}

// listActiveAccounts godoc
// @Summary List active accounts
// @Tags accounts
// @Produce  json
// @Success 200 {object} dto.ListAccountsResponse
// @Router /accounts/active [get]
func (h *accountHandler) listActiveAccounts(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToListAccountResponse(h.accountService.GetActiveAccounts(c.Request.Context())))
}

// renameAccount godoc
// @Summary Rename an account
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   id path string true "Account ID"
// @Param   body body dto.RenameAccountRequest true "New name"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or account closed"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Router /accounts/{id}/name [patch]
func (h *accountHandler) renameAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := parseUUIDParam(c, logger, "id")
	if !ok {
		return
	}
	var req dto.RenameAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	ok, err := h.accountService.RenameAccount(c.Request.Context(), portssvc.RenameAccountCommand{
		AccountID: accountID,
		Name:      req.Name,
	})
	respondWithWriteResult(c, logger, ok, err, "Failed to rename account")
}

// applyDelta godoc
// @Summary Apply a money movement
// @Description Adds a signed amount to the balance, or to the debt for credit cards and credit purchases
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   id path string true "Account ID"
// @Param   body body dto.ApplyDeltaRequest true "Delta"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse "Rule violation"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Router /accounts/{id}/transactions [post]
func (h *accountHandler) applyDelta(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := parseUUIDParam(c, logger, "id")
	if !ok {
		return
	}
	var req dto.ApplyDeltaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	op, err := domain.ParseOperationType(req.Operation)
	if err != nil {
		respondWithError(c, logger, err, "Failed to apply transaction")
		return
	}
	delta, err := domain.NewMoney(req.Amount, req.Currency)
	if err != nil {
		respondWithError(c, logger, err, "Failed to apply transaction")
		return
	}

	ok, err = h.accountService.ApplyAccountDelta(c.Request.Context(), portssvc.ApplyAccountDeltaCommand{
		AccountID: accountID,
		Delta:     delta,
		Operation: op,
	})
	respondWithWriteResult(c, logger, ok, err, "Failed to apply transaction")
}

// schedulePayment godoc
// @Summary Set payment and due dates
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   id path string true "Account ID"
// @Param   body body dto.SchedulePaymentRequest true "Schedule"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse "Rule violation"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Router /accounts/{id}/schedule [put]
func (h *accountHandler) schedulePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := parseUUIDParam(c, logger, "id")
	if !ok {
		return
	}
	var req dto.SchedulePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	ok, err := h.accountService.ScheduleAccountPayment(c.Request.Context(), portssvc.ScheduleAccountPaymentCommand{
		AccountID:   accountID,
		PaymentDate: req.PaymentDate,
		DueDate:     req.DueDate,
	})
	respondWithWriteResult(c, logger, ok, err, "Failed to schedule payment")
}

// closeAccount godoc
// @Summary Close an account
// @Description Only zero-balance active accounts can be closed
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse "Rule violation"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Router /accounts/{id}/close [post]
func (h *accountHandler) closeAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := parseUUIDParam(c, logger, "id")
	if !ok {
		return
	}

	ok, err := h.accountService.CloseAccount(c.Request.Context(), accountID)
	respondWithWriteResult(c, logger, ok, err, "Failed to close account")
}

// deleteAccount godoc
// @Summary Delete an account
// @Tags accounts
// @Param   id path string true "Account ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Router /accounts/{id} [delete]
func (h *accountHandler) deleteAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := parseUUIDParam(c, logger, "id")
	if !ok {
		return
	}

	if !h.accountService.DeleteAccount(c.Request.Context(), accountID) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Failed to delete account"})
		return
	}
	logger.Info("Account deleted", slog.String("account_id", accountID.String()))
	c.Status(http.StatusNoContent)
}
