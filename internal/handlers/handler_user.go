package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/finances_app/internal/core/ports/services"
	"github.com/SscSPs/finances_app/internal/dto"
	"github.com/SscSPs/finances_app/internal/middleware"
	"github.com/google/uuid"

	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests related to users.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

// newUserHandler creates a new userHandler.
func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{
		userService: us,
	}
}

// registerUserRoutes registers all user-related routes.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.POST("", h.createUser)
		users.GET("", h.listUsers)
		users.GET("/by-email/:email", h.getUserByEmail)
		users.GET("/:id", h.getUser)
		users.PUT("/:id", h.updateUser)
		users.DELETE("/:id", h.deleteUser)
	}
}

// createUser godoc
// @Summary Register a user
// @Description Users must be between 16 and 120 years old
// @Tags users
// @Accept  json
// @Produce  json
// @Param   user body dto.CreateUserRequest true "User details"
// @Success 201 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Failure 500 {object} dto.ErrorResponse "Failed to create user"
// @Router /users [post]
func (h *userHandler) createUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	logger.Info("Received request to create user", slog.String("user_name", req.Name))

	id, err := h.userService.CreateUser(c.Request.Context(), portssvc.CreateUserCommand{
		Name:         req.Name,
		Email:        req.Email,
		DateOfBirth:  req.DateOfBirth,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		respondWithError(c, logger, err, "Failed to create user")
		return
	}
	if id == uuid.Nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create user"})
		return
	}

	logger.Info("User created successfully", slog.String("new_user_id", id.String()))
	c.JSON(http.StatusCreated, dto.IDResponse{ID: id.String()})
}

// getUser godoc
// @Summary Get a user by ID
// @Tags users
// @Produce  json
// @Param   id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id} [get]
func (h *userHandler) getUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := parseUUIDParam(c, logger, "id")
	if !ok {
		return
	}

	user := h.userService.GetUserByID(c.Request.Context(), userID)
	if user.IsEmpty() {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "User not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// getUserByEmail godoc
// @Summary Get a user by email
// @Tags users
// @Produce  json
// @Param   email path string true "Email"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/by-email/{email} [get]
func (h *userHandler) getUserByEmail(c *gin.Context) {
	user := h.userService.GetUserByEmail(c.Request.Context(), c.Param("email"))
	if user.IsEmpty() {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "User not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// listUsers godoc
// @Summary List users
// @Tags users
// @Produce  json
// @Param   registeredAfter query string false "RFC 3339 timestamp"
// @Success 200 {object} dto.ListUsersResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid timestamp"
// @Router /users [get]
func (h *userHandler) listUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	if params.RegisteredAfter == "" {
		c.JSON(http.StatusOK, dto.ToListUserResponse(h.userService.GetUsers(c.Request.Context())))
		return
	}

	after, err := time.Parse(time.RFC3339, params.RegisteredAfter)
	if err != nil {
		logger.Warn("Invalid registeredAfter", slog.String("value", params.RegisteredAfter))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "registeredAfter must be an RFC 3339 timestamp"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListUserResponse(h.userService.GetUsersRegisteredAfter(c.Request.Context(), after)))
}

// updateUser godoc
// @Summary Replace a user's details
// @Tags users
// @Accept  json
// @Produce  json
// @Param   id path string true "User ID"
// @Param   user body dto.UpdateUserRequest true "User details"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse "Failed to update user"
// @Router /users/{id} [put]
func (h *userHandler) updateUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := parseUUIDParam(c, logger, "id")
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	ok = h.userService.UpdateUser(c.Request.Context(), portssvc.UpdateUserCommand{
		UserID:       userID,
		Name:         req.Name,
		Email:        req.Email,
		DateOfBirth:  req.DateOfBirth,
		ProfileImage: req.ProfileImage,
	})
	respondWithWriteResult(c, logger, ok, nil, "Failed to update user")
}

// deleteUser godoc
// @Summary Delete a user
// @Tags users
// @Param   id path string true "User ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id} [delete]
func (h *userHandler) deleteUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := parseUUIDParam(c, logger, "id")
	if !ok {
		return
	}

	if !h.userService.DeleteUser(c.Request.Context(), userID) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Failed to delete user"})
		return
	}
	logger.Info("User deleted", slog.String("user_id", userID.String()))
	c.Status(http.StatusNoContent)
}
