package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krowne/krownebase/internal/apperr"
)

func respond(t *testing.T, err error) (int, APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/v1/products/KR-1", nil)
	AppErrorResponse(c, err)

	var body APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestAppErrorResponseStatus(t *testing.T) {
	tests := []struct {
		err  error
		code int
		kind string
	}{
		{apperr.New(apperr.KindParse, "parse_csv", "CSV parsing error"), http.StatusBadRequest, "PARSE_ERROR"},
		{apperr.New(apperr.KindEmptyInput, "import", "No data found in CSV"), http.StatusBadRequest, "EMPTY_INPUT"},
		{apperr.Validation("create", "validation failed", nil), http.StatusBadRequest, "VALIDATION_ERROR"},
		{apperr.NotFound("get", "KR-1"), http.StatusNotFound, "NOT_FOUND"},
		{apperr.New(apperr.KindConflict, "create", "exists"), http.StatusConflict, "CONFLICT"},
		{apperr.New(apperr.KindUnavailable, "ping", "down"), http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE"},
		{apperr.New(apperr.KindDatabase, "import", "boom"), http.StatusInternalServerError, "DATABASE_ERROR"},
		{errors.New("plain"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		code, body := respond(t, tt.err)
		assert.Equal(t, tt.code, code, tt.kind)
		assert.False(t, body.Success)
		require.NotNil(t, body.Error)
		assert.Equal(t, tt.kind, body.Error.Code)
	}
}

func TestAppErrorResponseHidesStorageDetails(t *testing.T) {
	cause := errors.New(`pq: relation "products" does not exist`)
	err := fmt.Errorf("list: %w", apperr.Wrap(apperr.KindDatabase, "list_products", cause))

	_, body := respond(t, err)
	assert.NotContains(t, body.Error.Message, "relation")
}

func TestAppErrorResponseKeepsRowDetails(t *testing.T) {
	details := []map[string]interface{}{{"row": 3, "message": "SKU is required"}}
	_, body := respond(t, apperr.Validation("import", "2 row(s) are missing a SKU", details))

	assert.Equal(t, "2 row(s) are missing a SKU", body.Error.Message)
	rows, ok := body.Error.Details.([]interface{})
	require.True(t, ok)
	assert.Len(t, rows, 1)
}
