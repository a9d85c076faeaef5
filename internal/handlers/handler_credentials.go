package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/finances_app/internal/core/ports/services"
	"github.com/SscSPs/finances_app/internal/dto"
	"github.com/SscSPs/finances_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type credentialsHandler struct {
	credentialsService portssvc.CredentialsSvcFacade
}

func newCredentialsHandler(cs portssvc.CredentialsSvcFacade) *credentialsHandler {
	return &credentialsHandler{credentialsService: cs}
}

func registerCredentialsRoutes(rg *gin.RouterGroup, credentialsService portssvc.CredentialsSvcFacade) {
	h := newCredentialsHandler(credentialsService)

	creds := rg.Group("/credentials")
	{
		creds.POST("", h.registerCredentials)
		creds.POST("/verify", h.verifyCredentials)
		creds.GET("/user/:userId", h.getByUserID)
		creds.GET("/login/:login", h.getByLogin)
		creds.PUT("/:userId", h.updatePassword)
		creds.DELETE("/:userId", h.deleteCredentials)
	}
}

// registerCredentials godoc
// @Summary Create a login for a user
// @Tags credentials
// @Accept  json
// @Produce  json
// @Param   body body dto.RegisterCredentialsRequest true "Credentials"
// @Success 201 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse "Login or password policy violated"
// @Failure 409 {object} dto.ErrorResponse "Login already taken"
// @Router /credentials [post]
func (h *credentialsHandler) registerCredentials(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid userId"})
		return
	}

	id, err := h.credentialsService.RegisterUserCredentials(c.Request.Context(), portssvc.RegisterUserCredentialsCommand{
		UserID:        userID,
		Login:         req.Login,
		PlainPassword: req.Password,
	})
	if err != nil {
		respondWithError(c, logger, err, "Failed to register credentials")
		return
	}
	if id == uuid.Nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to register credentials"})
		return
	}

	logger.Info("Credentials registered", slog.String("user_id", userID.String()))
	c.JSON(http.StatusCreated, dto.IDResponse{ID: id.String()})
}

// verifyCredentials godoc
// @Summary Check a login and password
// @Tags credentials
// @Accept  json
// @Produce  json
// @Param   body body dto.VerifyCredentialsRequest true "Login and password"
// @Success 200 {object} dto.VerifyCredentialsResponse
// @Router /credentials/verify [post]
func (h *credentialsHandler) verifyCredentials(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.VerifyCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	valid := h.credentialsService.VerifyUserCredentials(c.Request.Context(), req.Login, req.Password)
	c.JSON(http.StatusOK, dto.VerifyCredentialsResponse{Valid: valid})
}

// getByUserID godoc
// @Summary Get the credentials of a user
// @Tags credentials
// @Produce  json
// @Param   userId path string true "User ID"
// @Success 200 {object} dto.CredentialsResponse
// @Failure 404 {object} dto.ErrorResponse "Credentials not found"
// @Router /credentials/user/{userId} [get]
func (h *credentialsHandler) getByUserID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := parseUUIDParam(c, logger, "userId")
	if !ok {
		return
	}

	creds := h.credentialsService.GetUserCredentialsByUserID(c.Request.Context(), userID)
	if creds.IsEmpty() {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Credentials not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToCredentialsResponse(creds))
}

// getByLogin godoc
// @Summary Get credentials by login
// @Tags credentials
// @Produce  json
// @Param   login path string true "Login"
// @Success 200 {object} dto.CredentialsResponse
// @Failure 404 {object} dto.ErrorResponse "Credentials not found"
// @Router /credentials/login/{login} [get]
func (h *credentialsHandler) getByLogin(c *gin.Context) {
	creds := h.credentialsService.GetUserCredentialsByLogin(c.Request.Context(), c.Param("login"))
	if creds.IsEmpty() {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Credentials not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToCredentialsResponse(creds))
}

// updatePassword godoc
// @Summary Replace a user's password
// @Tags credentials
// @Accept  json
// @Produce  json
// @Param   userId path string true "User ID"
// @Param   body body dto.UpdateCredentialsRequest true "New password"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse "Password policy violated"
// @Router /credentials/{userId} [put]
func (h *credentialsHandler) updatePassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := parseUUIDParam(c, logger, "userId")
	if !ok {
		return
	}
	var req dto.UpdateCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	ok, err := h.credentialsService.UpdateUserCredentials(c.Request.Context(), portssvc.UpdateUserCredentialsCommand{
		UserID:           userID,
		NewPlainPassword: req.Password,
	})
	respondWithWriteResult(c, logger, ok, err, "Failed to update password")
}

// deleteCredentials godoc
// @Summary Delete a user's credentials
// @Tags credentials
// @Param   userId path string true "User ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Credentials not found"
// @Router /credentials/{userId} [delete]
func (h *credentialsHandler) deleteCredentials(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := parseUUIDParam(c, logger, "userId")
	if !ok {
		return
	}

	if !h.credentialsService.DeleteUserCredentials(c.Request.Context(), userID) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Failed to delete credentials"})
		return
	}
	c.Status(http.StatusNoContent)
}
