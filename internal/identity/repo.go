package identity

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shiprakart/seller-backend/pkg/db/models"
)

// Repository handles seller identity persistence.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// UpsertByPhone inserts a seller keyed by phone number, or touches
// updated_at when the row already exists. Returns the stored row either way.
func (r *Repository) UpsertByPhone(ctx context.Context, phone string) (*models.Seller, error) {
	seller := models.Seller{PhoneNumber: &phone}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "phone_number"}},
			DoUpdates: clause.Assignments(map[string]any{"updated_at": time.Now()}),
		}, clause.Returning{}).
		Create(&seller).Error
	if err != nil {
		return nil, err
	}
	return &seller, nil
}

// FindByEmail matches either the organization or the owner email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.Seller, error) {
	var seller models.Seller
	err := r.db.WithContext(ctx).
		Where("organization_email = ? OR owner_email_id = ?", email, email).
		First(&seller).Error
	if err != nil {
		return nil, err
	}
	return &seller, nil
}
