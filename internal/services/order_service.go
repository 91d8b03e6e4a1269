package services

import (
	"fmt"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// OrderService handles business logic related to placed orders.
type OrderService struct {
	orderRepo repositories.OrderRepository
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
	}
}

// GetOrdersByUser retrieves a user's order history, newest first.
func (s *OrderService) GetOrdersByUser(userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUserID(userID)
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// UpdateOrderStatus updates the status of an existing order.
func (s *OrderService) UpdateOrderStatus(id string, status string) error {
	validStatuses := map[string]bool{"pending": true, "shipped": true, "delivered": true, "cancelled": true}
	if _, ok := validStatuses[status]; !ok {
		return fmt.Errorf("invalid order status: %s", status)
	}

	err := s.orderRepo.UpdateStatus(id, status)
	if err != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}

	return nil
}
