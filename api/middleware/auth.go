package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/shiprakart/seller-backend/api/responses"
	pkgauth "github.com/shiprakart/seller-backend/pkg/auth"
	"github.com/shiprakart/seller-backend/pkg/config"
	pkgerrors "github.com/shiprakart/seller-backend/pkg/errors"
	"github.com/shiprakart/seller-backend/pkg/logger"
)

// Auth validates a bearer token and seeds the request context with the
// seller identity. A missing token is 401, a bad or expired one is 403.
func Auth(cfg config.JWTConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthenticated, "Access Denied: No token provided"))
				return
			}

			token := raw
			if strings.HasPrefix(strings.ToLower(token), "bearer ") {
				token = strings.TrimSpace(token[7:])
			}
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthenticated, "Access Denied: No token provided"))
				return
			}

			claims, err := pkgauth.ParseToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInvalidToken, err, "Invalid Token"))
				return
			}
			if claims.SellerID == uuid.Nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInvalidToken, "Invalid Token"))
				return
			}

			ctx := WithSellerID(r.Context(), claims.SellerID)
			if claims.Phone != nil {
				ctx = withPhone(ctx, *claims.Phone)
			}
			if logg != nil {
				ctx = logg.WithSellerID(ctx, claims.SellerID.String())
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
