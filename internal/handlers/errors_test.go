package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sbilibin2017/currency-converter-api/internal/handlers"
	"github.com/sbilibin2017/currency-converter-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestErrorHandlers(t *testing.T) {
	tests := []struct {
		name        string
		handler     http.HandlerFunc
		method      string
		path        string
		wantCode    int
		wantError   string
		wantMessage string
	}{
		{
			name:        "not_found",
			handler:     handlers.NewNotFoundHandler(),
			method:      http.MethodGet,
			path:        "/api/usd/eur",
			wantCode:    http.StatusNotFound,
			wantError:   "Not found",
			wantMessage: "No route for GET /api/usd/eur",
		},
		{
			name:        "method_not_allowed",
			handler:     handlers.NewMethodNotAllowedHandler(),
			method:      http.MethodDelete,
			path:        "/api/health",
			wantCode:    http.StatusMethodNotAllowed,
			wantError:   "Method not allowed",
			wantMessage: "Method DELETE is not allowed for /api/health",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tt.handler(w, httptest.NewRequest(tt.method, tt.path, nil))

			require.Equal(t, tt.wantCode, w.Code)

			var body models.ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tt.wantError, body.Error)
			assert.Equal(t, tt.wantMessage, body.Message)
			assert.Empty(t, body.SupportedCurrencies)
		})
	}
}

func TestSwaggerRedirectHandler(t *testing.T) {
	w := httptest.NewRecorder()
	handlers.NewSwaggerRedirectHandler()(w, httptest.NewRequest(http.MethodGet, "/swagger", nil))

	assert.Equal(t, http.StatusMovedPermanently, w.Code)
	assert.Equal(t, "/swagger/index.html", w.Header().Get("Location"))
}

func TestAPIDocsHandler_NotRegistered(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)

	w := httptest.NewRecorder()
	handlers.NewAPIDocsHandler(zap.New(core).Sugar())(w, httptest.NewRequest(http.MethodGet, "/api-docs", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "OpenAPI specification not found")
	assert.Equal(t, 1, logs.FilterMessage("failed to read OpenAPI document").Len())
}
