package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookRepo "library-backend/internal/domains/book/repository"
	bookService "library-backend/internal/domains/book/service"

	authorRepo "library-backend/internal/domains/author/repository"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	books := bookRepo.NewMemoryRepository()
	authors := authorRepo.NewMemoryRepository()
	h := NewBookHandler(bookService.NewBookService(books, authors))

	router := gin.New()
	router.GET("/books", h.AllBooks)
	router.GET("/books/count", h.Count)
	router.POST("/books", h.AddBook)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w, envelope
}

func TestAddBookEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w, envelope := doJSON(t, router, http.MethodPost, "/books",
		`{"title":"Clean Code","published":2008,"author":"Robert Martin","genres":["refactoring"]}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, envelope["success"])

	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "Clean Code", data["title"])
	owner := data["author"].(map[string]interface{})
	assert.Equal(t, "Robert Martin", owner["name"])
	assert.Nil(t, owner["born"])
}

func TestAddBookRejectsUndeclaredField(t *testing.T) {
	router := newTestRouter(t)

	w, envelope := doJSON(t, router, http.MethodPost, "/books",
		`{"title":"Clean Code","published":2008,"author":"Robert Martin","genres":["refactoring"],"publisher":"x"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	errObj := envelope["error"].(map[string]interface{})
	assert.Contains(t, errObj["message"], "too many arguments")
	assert.Contains(t, errObj["message"], "publisher")

	// Nothing was written
	_, listEnvelope := doJSON(t, router, http.MethodGet, "/books/count", "")
	data := listEnvelope["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["book_count"])
}

func TestAddBookValidationNamesArguments(t *testing.T) {
	router := newTestRouter(t)

	w, envelope := doJSON(t, router, http.MethodPost, "/books",
		`{"title":"Clean Code","published":2008,"author":"Bob","genres":["refactoring"]}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	errObj := envelope["error"].(map[string]interface{})
	details := errObj["details"].(map[string]interface{})
	assert.Contains(t, details, "author")
}

func TestAllBooksRejectsUnsupportedQueryParam(t *testing.T) {
	router := newTestRouter(t)

	w, envelope := doJSON(t, router, http.MethodGet, "/books?author=Robert+Martin&year=2008", "")

	require.Equal(t, http.StatusBadRequest, w.Code)
	errObj := envelope["error"].(map[string]interface{})
	assert.Contains(t, errObj["message"], "too many arguments")
	details := errObj["details"].(map[string]interface{})
	assert.Contains(t, details["unsupported"], "year")
}

func TestAllBooksUnknownAuthorIsEmptyListing(t *testing.T) {
	router := newTestRouter(t)

	w, envelope := doJSON(t, router, http.MethodGet, "/books?author=Nobody+At+All", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, envelope["success"])
	data, ok := envelope["data"].([]interface{})
	require.True(t, ok)
	assert.Empty(t, data)
}
