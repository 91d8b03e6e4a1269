package repositories

import "storefront/internal/models"

// CartRepository defines the interface for cart persistence. The
// contract is load-at-first-use, save-after-mutation: Save must store
// the items without altering their order or quantities, and GetByUserID
// must hand them back exactly as saved. A missing cart is returned as
// an empty record, not an error, since every shopper starts empty.
type CartRepository interface {
	GetByUserID(userID string) (*models.CartRecord, error)
	Save(record *models.CartRecord) error
	Delete(userID string) error
}
