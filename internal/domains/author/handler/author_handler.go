package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-backend/internal/domains/author"
	"library-backend/internal/shared/response"
	"library-backend/internal/shared/utils"
	"library-backend/pkg/logger"
)

// AuthorHandler translates HTTP requests into author.Service calls.
// Stateless - only holds dependencies.
type AuthorHandler struct {
	service author.Service
}

// NewAuthorHandler creates handler instance (constructor injection)
func NewAuthorHandler(service author.Service) *AuthorHandler {
	return &AuthorHandler{service: service}
}

// AllAuthors handles GET /authors
// Every author carries its derived book count.
func (h *AuthorHandler) AllAuthors(c *gin.Context) {
	authors, err := h.service.AllAuthors(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, authors)
}

// Count handles GET /authors/count
func (h *AuthorHandler) Count(c *gin.Context) {
	count, err := h.service.Count(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"author_count": count})
}

// EditAuthor handles PATCH /authors
// A name nobody has is a success with a null payload, not a 404: the
// mutation's contract is "set the year if such an author exists".
func (h *AuthorHandler) EditAuthor(c *gin.Context) {
	var req author.EditAuthorRequest
	if err := utils.StrictBindJSON(c, &req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.EditAuthor(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if updated == nil {
		response.Success(c, http.StatusOK, nil)
		return
	}
	response.Success(c, http.StatusOK, updated)
}

// handleError maps domain errors to HTTP responses
func (h *AuthorHandler) handleError(c *gin.Context, err error) {
	// ozzo validation errors carry the failing field names; surface them
	// as the details payload
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.ValidationError(c, "invalid arguments", vErrs)
		return
	}

	if errors.Is(err, author.ErrNilAuthor) {
		response.BadRequest(c, err.Error())
		return
	}

	logger.Error("author handler", err)
	response.InternalServerError(c, err.Error())
}
