package middleware

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	ctxSellerID contextKey = "seller_id"
	ctxPhone    contextKey = "seller_phone"
)

func SellerIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	if ctx == nil {
		return uuid.Nil, false
	}
	if v, ok := ctx.Value(ctxSellerID).(uuid.UUID); ok {
		return v, true
	}
	return uuid.Nil, false
}

func PhoneFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxPhone).(string); ok {
		return v
	}
	return ""
}

// WithSellerID injects the authenticated seller into the context. Exposed
// for handler tests that bypass the auth middleware.
func WithSellerID(ctx context.Context, sellerID uuid.UUID) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxSellerID, sellerID)
}

func withPhone(ctx context.Context, phone string) context.Context {
	return context.WithValue(ctx, ctxPhone, phone)
}
