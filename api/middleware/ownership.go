package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/shiprakart/seller-backend/api/responses"
	pkgerrors "github.com/shiprakart/seller-backend/pkg/errors"
	"github.com/shiprakart/seller-backend/pkg/logger"
)

// ProductAuthorizer reports whether a seller owns a product. NotFound and
// Forbidden come back as typed errors and are written through unchanged.
type ProductAuthorizer interface {
	AuthorizeOwnership(ctx context.Context, productID, sellerID uuid.UUID) error
}

// ProductOwner guards routes carrying a {productId} path parameter.
func ProductOwner(authorizer ProductAuthorizer, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sellerID, ok := SellerIDFromContext(r.Context())
			if !ok {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthenticated, "Access Denied: No token provided"))
				return
			}

			productID, err := uuid.Parse(chi.URLParam(r, "productId"))
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid product id"))
				return
			}

			if err := authorizer.AuthorizeOwnership(r.Context(), productID, sellerID); err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
