package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-backend/internal/domains/user"
	"library-backend/internal/shared/middleware"
	"library-backend/internal/shared/response"
	"library-backend/internal/shared/utils"
	"library-backend/pkg/logger"
)

// UserHandler translates HTTP requests into user.Service calls.
type UserHandler struct {
	service user.Service
}

// NewUserHandler creates handler instance (constructor injection)
func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req user.CreateUserRequest
	if err := utils.StrictBindJSON(c, &req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		// The duplicate-username failure carries the offending
		// arguments back to the caller
		if errors.Is(err, user.ErrUsernameTaken) {
			response.ErrorWithDetails(c, http.StatusConflict, "CONFLICT", err.Error(), gin.H{
				"username":       req.Username,
				"favorite_genre": req.FavoriteGenre,
			})
			return
		}
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// Login handles POST /login
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := utils.StrictBindJSON(c, &req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			// Uniform message, no detail leakage
			response.Unauthorized(c, user.ErrInvalidCredentials.Error())
			return
		}
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, token)
}

// Me handles GET /me
// Unauthenticated requests get a null payload, not an error: resolving
// the identity is optional at this layer.
func (h *UserHandler) Me(c *gin.Context) {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		response.Success(c, http.StatusOK, nil)
		return
	}
	response.Success(c, http.StatusOK, current)
}

// handleError maps domain errors to HTTP responses
func (h *UserHandler) handleError(c *gin.Context, err error) {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.ValidationError(c, "invalid arguments", vErrs)
		return
	}

	logger.Error("user handler", err)
	response.InternalServerError(c, err.Error())
}
