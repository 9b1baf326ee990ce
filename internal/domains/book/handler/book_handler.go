package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-backend/internal/domains/book"
	"library-backend/internal/shared/response"
	"library-backend/internal/shared/utils"
	"library-backend/pkg/logger"
)

// BookHandler translates HTTP requests into book.Service calls.
type BookHandler struct {
	service book.Service
}

// NewBookHandler creates handler instance (constructor injection)
func NewBookHandler(service book.Service) *BookHandler {
	return &BookHandler{service: service}
}

// AllBooks handles GET /books?author=&genre=
// The declared filter set is exactly {author, genre}; anything else is
// rejected by name before the service (and therefore the store) runs.
func (h *BookHandler) AllBooks(c *gin.Context) {
	if unsupported := utils.AllowedQueryParams(c, "author", "genre"); len(unsupported) > 0 {
		response.ValidationError(c, "too many arguments",
			gin.H{"unsupported": strings.Join(unsupported, ", ")})
		return
	}

	var filter book.BookFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	books, err := h.service.AllBooks(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, books)
}

// Count handles GET /books/count
func (h *BookHandler) Count(c *gin.Context) {
	count, err := h.service.Count(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"book_count": count})
}

// AddBook handles POST /books
func (h *BookHandler) AddBook(c *gin.Context) {
	// Strict decode: undeclared fields are "too many arguments", missing
	// ones fall out of Validate() inside the service
	var req book.AddBookRequest
	if err := utils.StrictBindJSON(c, &req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.AddBook(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// handleError maps domain errors to HTTP responses
func (h *BookHandler) handleError(c *gin.Context, err error) {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.ValidationError(c, "invalid arguments", vErrs)
		return
	}

	// Everything else (store failures, the post-write consistency error)
	// is a server-side fault
	logger.Error("book handler", err)
	response.InternalServerError(c, err.Error())
}
