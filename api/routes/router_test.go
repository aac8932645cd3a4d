package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiprakart/seller-backend/pkg/config"
	"github.com/shiprakart/seller-backend/pkg/logger"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := &config.Config{}
	cfg.App.CORSOrigins = []string{"http://localhost:3000"}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.Issuer = "test"
	cfg.JWT.ExpirationMinutes = 60
	cfg.BulkUpload.MaxUploadMB = 5

	return NewRouter(Deps{
		Config: cfg,
		Logger: logger.New(logger.Options{ServiceName: "test", Output: io.Discard}),
	})
}

func TestRouterUnknownEndpointIs404(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nope", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Endpoint not found. Check your URL.", body.Message)
}

func TestRouterLivenessIsPublic(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	for _, route := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/orders/my-orders"},
		{http.MethodGet, "/api/auth/onboarding-status"},
		{http.MethodPost, "/api/products/"},
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(route.method, route.path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, route.path)
	}
}
