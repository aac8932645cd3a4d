package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenPayload captures the data available when minting a seller token.
type TokenPayload struct {
	SellerID uuid.UUID
	Phone    *string
	Email    *string
}

// SellerClaims represents the typed JWT issued to sellers.
type SellerClaims struct {
	SellerID uuid.UUID `json:"seller_id"`
	Phone    *string   `json:"phone,omitempty"`
	Email    *string   `json:"email,omitempty"`
	jwt.RegisteredClaims
}
