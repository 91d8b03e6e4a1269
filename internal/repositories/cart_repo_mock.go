package repositories

import (
	"sync"

	"storefront/internal/models"
)

// MockCartRepository is an in-memory implementation of CartRepository.
type MockCartRepository struct {
	carts map[string]models.CartRecord
	mu    sync.RWMutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{
		carts: make(map[string]models.CartRecord),
	}
}

// GetByUserID returns the stored cart for a user, or an empty record
// when none has been saved yet.
func (r *MockCartRepository) GetByUserID(userID string) (*models.CartRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.carts[userID]
	if !ok {
		return &models.CartRecord{UserID: userID}, nil
	}
	return &record, nil
}

// Save stores the cart record, replacing any previous one.
func (r *MockCartRepository) Save(record *models.CartRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[record.UserID] = *record
	return nil
}

// Delete removes a user's stored cart. Missing carts are a no-op.
func (r *MockCartRepository) Delete(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, userID)
	return nil
}
