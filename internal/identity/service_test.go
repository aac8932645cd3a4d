package identity

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shiprakart/seller-backend/pkg/config"
	"github.com/shiprakart/seller-backend/pkg/db/models"
	pkgerrors "github.com/shiprakart/seller-backend/pkg/errors"
	"github.com/shiprakart/seller-backend/pkg/security"
)

type stubSellerStore struct {
	byPhone map[string]*models.Seller
	byEmail map[string]*models.Seller
}

func (s *stubSellerStore) UpsertByPhone(_ context.Context, phone string) (*models.Seller, error) {
	if seller, ok := s.byPhone[phone]; ok {
		return seller, nil
	}
	seller := &models.Seller{ID: uuid.New(), PhoneNumber: &phone, CurrentStep: 1}
	if s.byPhone == nil {
		s.byPhone = map[string]*models.Seller{}
	}
	s.byPhone[phone] = seller
	return seller, nil
}

func (s *stubSellerStore) FindByEmail(_ context.Context, email string) (*models.Seller, error) {
	if seller, ok := s.byEmail[email]; ok {
		return seller, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type stubVerifier struct{ accept string }

func (v stubVerifier) Verify(_ context.Context, _, code string) (bool, error) {
	return code == v.accept, nil
}

func testJWT() config.JWTConfig {
	return config.JWTConfig{Secret: "secret", Issuer: "shipra-seller-api", ExpirationMinutes: 60}
}

func TestLoginWithOTPIsIdempotentByPhone(t *testing.T) {
	store := &stubSellerStore{}
	svc, err := NewService(store, stubVerifier{accept: "123456"}, testJWT())
	require.NoError(t, err)

	token1, seller1, err := svc.LoginWithOTP(context.Background(), "9876543210", "123456")
	require.NoError(t, err)
	require.NotEmpty(t, token1)

	_, seller2, err := svc.LoginWithOTP(context.Background(), "9876543210", "123456")
	require.NoError(t, err)
	require.Equal(t, seller1.ID, seller2.ID)
}

func TestLoginWithOTPRejectsWrongCode(t *testing.T) {
	svc, err := NewService(&stubSellerStore{}, stubVerifier{accept: "123456"}, testJWT())
	require.NoError(t, err)

	_, _, err = svc.LoginWithOTP(context.Background(), "9876543210", "000000")
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeUnauthenticated))
}

func TestLoginWithOTPRequiresPhoneAndCode(t *testing.T) {
	svc, err := NewService(&stubSellerStore{}, stubVerifier{accept: "123456"}, testJWT())
	require.NoError(t, err)

	_, _, err = svc.LoginWithOTP(context.Background(), "", "123456")
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))

	_, _, err = svc.LoginWithOTP(context.Background(), "9876543210", "")
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestLoginWithEmailMatchesEitherEmailColumn(t *testing.T) {
	hash, err := security.HashPassword("s3cret")
	require.NoError(t, err)

	orgEmail := "ops@brand.example"
	ownerEmail := "owner@brand.example"
	seller := &models.Seller{
		ID:                uuid.New(),
		OrganizationEmail: &orgEmail,
		OwnerEmailID:      &ownerEmail,
		PasswordHash:      &hash,
		CurrentStep:       5,
	}
	store := &stubSellerStore{byEmail: map[string]*models.Seller{
		orgEmail:   seller,
		ownerEmail: seller,
	}}

	svc, err := NewService(store, stubVerifier{accept: "123456"}, testJWT())
	require.NoError(t, err)

	token, dto, err := svc.LoginWithEmail(context.Background(), ownerEmail, "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, seller.ID, dto.ID)
	require.Equal(t, ownerEmail, dto.Email)
	require.Equal(t, 5, dto.CurrentStep)
}

func TestLoginWithEmailRejectsUnknownEmailAndWrongPassword(t *testing.T) {
	hash, err := security.HashPassword("s3cret")
	require.NoError(t, err)

	email := "ops@brand.example"
	store := &stubSellerStore{byEmail: map[string]*models.Seller{
		email: {ID: uuid.New(), OrganizationEmail: &email, PasswordHash: &hash},
	}}

	svc, err := NewService(store, stubVerifier{accept: "123456"}, testJWT())
	require.NoError(t, err)

	_, _, err = svc.LoginWithEmail(context.Background(), "nobody@brand.example", "s3cret")
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeUnauthenticated))

	_, _, err = svc.LoginWithEmail(context.Background(), email, "wrong")
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeUnauthenticated))
}
