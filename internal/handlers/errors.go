package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/finances_app/internal/apperrors"
	"github.com/SscSPs/finances_app/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondWithError maps a service error onto a status code.
// Domain rule violations carry their exact message to the client.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	var de *apperrors.DomainError
	switch {
	case errors.As(err, &de):
		logger.Warn("Request rejected by domain rule", slog.String("error", de.Message))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: de.Message})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: fallback})
	}
}

// respondWithBindError reports a malformed body or query string.
func respondWithBindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	resp := dto.ErrorResponse{Error: "Invalid request format"}
	if details := validationDetails(err); len(details) > 0 {
		resp.Details = details
	}
	c.JSON(http.StatusBadRequest, resp)
}

// parseUUIDParam reads a UUID path parameter, responding 400 when malformed.
func parseUUIDParam(c *gin.Context, logger *slog.Logger, name string) (uuid.UUID, bool) {
	raw := c.Param(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		logger.Warn("Invalid UUID path parameter", slog.String("param", name), slog.String("value", raw))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: fmt.Sprintf("Invalid %s", name)})
		return uuid.Nil, false
	}
	return id, true
}

// respondWithWriteResult answers a command that reported (ok, err).
func respondWithWriteResult(c *gin.Context, logger *slog.Logger, ok bool, err error, failure string) {
	if err != nil {
		respondWithError(c, logger, err, failure)
		return
	}
	if !ok {
		logger.Warn(failure)
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: failure})
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
