package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	pkgauth "github.com/shiprakart/seller-backend/pkg/auth"
	"github.com/shiprakart/seller-backend/pkg/config"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "shipra-seller-api",
		ExpirationMinutes: 60,
	}
}

func okHandler(t *testing.T, wantSeller uuid.UUID) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok := SellerIDFromContext(r.Context())
		require.True(t, ok)
		require.Equal(t, wantSeller, got)
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthAcceptsValidBearerToken(t *testing.T) {
	cfg := testJWTConfig()
	sellerID := uuid.New()
	phone := "9876543210"
	token, err := pkgauth.MintToken(cfg, time.Now(), pkgauth.TokenPayload{SellerID: sellerID, Phone: &phone})
	require.NoError(t, err)

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	Auth(cfg, nil)(okHandler(t, sellerID)).ServeHTTP(w, r)
	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestAuthMissingTokenIs401(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	Auth(testJWTConfig(), nil)(okHandler(t, uuid.Nil)).ServeHTTP(w, r)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthBadTokenIs403(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()

	Auth(testJWTConfig(), nil)(okHandler(t, uuid.Nil)).ServeHTTP(w, r)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthExpiredTokenIs403(t *testing.T) {
	cfg := testJWTConfig()
	token, err := pkgauth.MintToken(cfg, time.Now().Add(-48*time.Hour), pkgauth.TokenPayload{SellerID: uuid.New()})
	require.NoError(t, err)

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	Auth(cfg, nil)(okHandler(t, uuid.Nil)).ServeHTTP(w, r)
	require.Equal(t, http.StatusForbidden, w.Code)
}
