package models

import (
	"time"

	"github.com/google/uuid"
)

// Seller is the canonical identity row plus its onboarding progress. Each
// onboarding section updates only its own columns and bumps CurrentStep.
type Seller struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	PhoneNumber *string   `gorm:"column:phone_number;uniqueIndex"`

	PasswordHash *string `gorm:"column:password_hash"`

	// GST / PAN section.
	GSTNumber         *string `gorm:"column:gst_number;uniqueIndex"`
	PANNumber         *string `gorm:"column:pan_number;uniqueIndex"`
	HasGST            bool    `gorm:"column:has_gst;not null;default:false"`
	LegalBusinessName *string `gorm:"column:legal_business_name"`

	// Basic information section.
	OrganizationEmail   *string `gorm:"column:organization_email"`
	PrimaryContactName  *string `gorm:"column:primary_contact_name"`
	PrimaryContactPhone *string `gorm:"column:primary_contact_phone"`
	PrimaryContactEmail *string `gorm:"column:primary_contact_email"`
	BusinessOwnerName   *string `gorm:"column:business_owner_name"`
	OwnerContactNumber  *string `gorm:"column:owner_contact_number"`
	OwnerEmailID        *string `gorm:"column:owner_email_id"`
	IsExistingPartner   bool    `gorm:"column:is_existing_partner;not null;default:false"`
	EntityType          *string `gorm:"column:entity_type"`
	MarketplaceInvoice  bool    `gorm:"column:marketplace_invoice;not null;default:false"`
	NeedsTDSBenefits    bool    `gorm:"column:needs_tds_benefits;not null;default:false"`
	TANNumber           *string `gorm:"column:tan_number"`
	TANDocumentURL      *string `gorm:"column:tan_document_url"`
	SignatureURL        *string `gorm:"column:signature_url"`

	// Bank section.
	AccountHolderName  *string `gorm:"column:account_holder_name"`
	AccountNumber      *string `gorm:"column:account_number"`
	IFSCCode           *string `gorm:"column:ifsc_code"`
	BankName           *string `gorm:"column:bank_name"`
	AccountType        *string `gorm:"column:account_type"`
	CancelledChequeURL *string `gorm:"column:cancelled_cheque_url"`
	BankVerified       bool    `gorm:"column:bank_verified;not null;default:false"`

	// CurrentStep is a coarse progress cursor, not an authoritative state
	// machine. Completeness is derived from the row values instead.
	CurrentStep int  `gorm:"column:current_step;not null;default:1"`
	IsOnboarded bool `gorm:"column:is_onboarded;not null;default:false"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Seller) TableName() string { return "sellers" }
