package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/shiprakart/seller-backend/pkg/db/models"
)

// SellerDTO is the seller payload returned alongside a freshly minted token.
type SellerDTO struct {
	ID          uuid.UUID `json:"id"`
	PhoneNumber *string   `json:"phone_number,omitempty"`
	CurrentStep int       `json:"current_step"`
	IsOnboarded bool      `json:"is_onboarded"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EmailSellerDTO is the trimmed seller summary for the email login response.
type EmailSellerDTO struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	CurrentStep int       `json:"current_step"`
	IsOnboarded bool      `json:"is_onboarded"`
}

func toSellerDTO(seller *models.Seller) *SellerDTO {
	return &SellerDTO{
		ID:          seller.ID,
		PhoneNumber: seller.PhoneNumber,
		CurrentStep: seller.CurrentStep,
		IsOnboarded: seller.IsOnboarded,
		CreatedAt:   seller.CreatedAt,
		UpdatedAt:   seller.UpdatedAt,
	}
}

func toEmailSellerDTO(seller *models.Seller, email string) *EmailSellerDTO {
	return &EmailSellerDTO{
		ID:          seller.ID,
		Email:       email,
		CurrentStep: seller.CurrentStep,
		IsOnboarded: seller.IsOnboarded,
	}
}
