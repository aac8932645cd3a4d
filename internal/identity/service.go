package identity

import (
	"context"
	"fmt"
	"time"

	"github.com/shiprakart/seller-backend/pkg/auth"
	"github.com/shiprakart/seller-backend/pkg/config"
	"github.com/shiprakart/seller-backend/pkg/db"
	"github.com/shiprakart/seller-backend/pkg/db/models"
	pkgerrors "github.com/shiprakart/seller-backend/pkg/errors"
	"github.com/shiprakart/seller-backend/pkg/security"
)

// Service exposes seller authentication operations.
type Service interface {
	LoginWithOTP(ctx context.Context, phone, code string) (string, *SellerDTO, error)
	LoginWithEmail(ctx context.Context, email, password string) (string, *EmailSellerDTO, error)
}

type sellerStore interface {
	UpsertByPhone(ctx context.Context, phone string) (*models.Seller, error)
	FindByEmail(ctx context.Context, email string) (*models.Seller, error)
}

type codeVerifier interface {
	Verify(ctx context.Context, phone, code string) (bool, error)
}

type service struct {
	repo   sellerStore
	codes  codeVerifier
	jwtCfg config.JWTConfig
	now    func() time.Time
}

// NewService constructs the identity service.
func NewService(repo sellerStore, codes codeVerifier, jwtCfg config.JWTConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("seller repository required")
	}
	if codes == nil {
		return nil, fmt.Errorf("otp verifier required")
	}
	return &service{repo: repo, codes: codes, jwtCfg: jwtCfg, now: time.Now}, nil
}

// LoginWithOTP verifies the code, upserts the seller keyed by phone, and
// mints a bearer token. Calling it twice with the same phone yields the
// same seller id.
func (s *service) LoginWithOTP(ctx context.Context, phone, code string) (string, *SellerDTO, error) {
	if phone == "" || code == "" {
		return "", nil, pkgerrors.New(pkgerrors.CodeValidation, "Phone number and OTP are required")
	}

	ok, err := s.codes.Verify(ctx, phone, code)
	if err != nil {
		return "", nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify otp")
	}
	if !ok {
		return "", nil, pkgerrors.New(pkgerrors.CodeUnauthenticated, "Invalid OTP")
	}

	seller, err := s.repo.UpsertByPhone(ctx, phone)
	if err != nil {
		return "", nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "upsert seller")
	}

	token, err := auth.MintToken(s.jwtCfg, s.now(), auth.TokenPayload{
		SellerID: seller.ID,
		Phone:    seller.PhoneNumber,
	})
	if err != nil {
		return "", nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint token")
	}

	return token, toSellerDTO(seller), nil
}

// LoginWithEmail matches organization or owner email and compares the
// bcrypt hash. Unknown email and wrong password are indistinguishable to
// the caller.
func (s *service) LoginWithEmail(ctx context.Context, email, password string) (string, *EmailSellerDTO, error) {
	if email == "" || password == "" {
		return "", nil, pkgerrors.New(pkgerrors.CodeValidation, "Email and password are required")
	}

	seller, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if db.IsNotFound(err) {
			return "", nil, pkgerrors.New(pkgerrors.CodeUnauthenticated, "Invalid email or password")
		}
		return "", nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "find seller by email")
	}

	if seller.PasswordHash == nil || !security.VerifyPassword(password, *seller.PasswordHash) {
		return "", nil, pkgerrors.New(pkgerrors.CodeUnauthenticated, "Invalid email or password")
	}

	token, err := auth.MintToken(s.jwtCfg, s.now(), auth.TokenPayload{
		SellerID: seller.ID,
		Email:    &email,
	})
	if err != nil {
		return "", nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint token")
	}

	return token, toEmailSellerDTO(seller, email), nil
}
