package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hatynka/storefront/internal/pkg/apperrors"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	return e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec), rec
}

func TestSuccessResponse(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, SuccessResponse(c, http.StatusOK, "Transaction found", map[string]string{"status": "pending"}))
	assert.Equal(t, http.StatusOK, rec.Code)

	var response Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, "Transaction found", response.Message)
	assert.Equal(t, map[string]interface{}{"status": "pending"}, response.Data)
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name     string
		call     func(c echo.Context) error
		wantCode int
		wantMsg  string
	}{
		{"bad request", func(c echo.Context) error { return BadRequestResponse(c, "invalid body") }, http.StatusBadRequest, "invalid body"},
		{"unauthorized default", func(c echo.Context) error { return UnauthorizedResponse(c, "") }, http.StatusUnauthorized, "Unauthorized"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()
			require.NoError(t, tt.call(c))
			assert.Equal(t, tt.wantCode, rec.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.False(t, response.Success)
			assert.Equal(t, tt.wantMsg, response.Error)
			assert.Equal(t, tt.wantCode, response.Code)
		})
	}
}

func TestAppErrorResponse(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantCode  int
		wantKind  string
		wantCause string
		wantMsg   string
	}{
		{
			name:     "not confirmed",
			err:      apperrors.NotConfirmed("payment is not confirmed yet"),
			wantCode: http.StatusConflict,
			wantKind: "not_confirmed",
			wantMsg:  "payment is not confirmed yet",
		},
		{
			name:      "out of stock",
			err:       fmt.Errorf("initiate: %w", apperrors.OutOfStock("p1")),
			wantCode:  http.StatusBadRequest,
			wantKind:  "validation",
			wantCause: "out_of_stock",
			wantMsg:   "product p1 is out of stock",
		},
		{
			name:     "internal hides details",
			err:      apperrors.Internal("failed to insert", errors.New("pq: password authentication failed")),
			wantCode: http.StatusInternalServerError,
			wantKind: "internal",
			wantMsg:  "Internal Server Error",
		},
		{
			name:     "foreign error",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantKind: "internal",
			wantMsg:  "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()
			require.NoError(t, AppErrorResponse(c, tt.err))
			assert.Equal(t, tt.wantCode, rec.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.False(t, response.Success)
			assert.Equal(t, tt.wantKind, response.Kind)
			assert.Equal(t, tt.wantCause, response.Cause)
			assert.Equal(t, tt.wantMsg, response.Error)
		})
	}
}
