package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"expense-manager/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanicRecovery_ConvertsPanicToErrorResponse(t *testing.T) {
	e := echo.New()

	handler := PanicRecovery()(func(c echo.Context) error {
		panic("unexpected failure")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/expenses", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(TraceIDContextKey, "test-trace-id")

	assert.NotPanics(t, func() {
		_ = handler(c)
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var response errors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, string(errors.SystemInternalError), response.Error.Code)
	assert.Equal(t, "test-trace-id", response.Error.TraceID)
}

func TestPanicRecovery_PassesThroughNormalRequests(t *testing.T) {
	e := echo.New()

	handler := PanicRecovery()(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
