package repositories

import (
	"storefront/internal/models"
)

// ProductRepository defines the interface for product data access.
// GetAll must return products in a stable catalog order, since the
// query engine resolves sort ties by original catalog position.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}
