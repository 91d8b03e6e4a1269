package repositories

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storefront/internal/models"
)

// GORMCartRepository is a GORM implementation of CartRepository. The
// cart's items are stored as a JSON column so order and quantities
// survive the round trip untouched.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// GetByUserID retrieves a user's cart, or an empty record when none
// exists yet.
func (r *GORMCartRepository) GetByUserID(userID string) (*models.CartRecord, error) {
	var record models.CartRecord
	if err := r.db.First(&record, "user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return &models.CartRecord{UserID: userID}, nil
		}
		return nil, fmt.Errorf("failed to get cart for user %s: %w", userID, err)
	}
	return &record, nil
}

// Save upserts the cart record for its user.
func (r *GORMCartRepository) Save(record *models.CartRecord) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(record).Error
	if err != nil {
		return fmt.Errorf("failed to save cart for user %s: %w", record.UserID, err)
	}
	return nil
}

// Delete removes a user's stored cart. Missing carts are a no-op.
func (r *GORMCartRepository) Delete(userID string) error {
	if err := r.db.Delete(&models.CartRecord{}, "user_id = ?", userID).Error; err != nil {
		return fmt.Errorf("failed to delete cart for user %s: %w", userID, err)
	}
	return nil
}
