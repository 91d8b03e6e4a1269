package services

import (
	"fmt"
	"log"
	"sync"
	"time"

	"storefront/internal/cart"
	"storefront/internal/models"
	"storefront/internal/repositories"
)

// CheckoutPublisher publishes checkout events to a message broker.
type CheckoutPublisher interface {
	PublishCheckoutEvent(event map[string]interface{}) error
}

// CartSummary is the order-summary view of a cart: the derived
// subtotal, a flat tax, free shipping, and the grand total.
type CartSummary struct {
	Items     []models.CartItem `json:"items"`
	ItemCount int               `json:"itemCount"`
	Subtotal  float64           `json:"subtotal"`
	Shipping  float64           `json:"shipping"`
	Tax       float64           `json:"tax"`
	Total     float64           `json:"total"`
}

// CartService handles business logic for shopping carts. The cart
// engine itself assumes a single sequential actor, so the service
// serializes mutations per user; carts are loaded from the repository
// on first use and saved after every mutation.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
	orderRepo   repositories.OrderRepository
	publisher   CheckoutPublisher

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewCartService creates a new CartService. publisher may be nil, in
// which case checkout events are skipped.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository, orderRepo repositories.OrderRepository, publisher CheckoutPublisher) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		publisher:   publisher,
		locks:       make(map[string]*sync.Mutex),
	}
}

// userLock returns the mutex serializing mutations for one user's cart.
func (s *CartService) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	return lock
}

func (s *CartService) load(userID string) (*cart.Cart, error) {
	record, err := s.cartRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart for user %s: %w", userID, err)
	}
	return cart.Restore(record.Items), nil
}

func (s *CartService) save(userID string, c *cart.Cart) error {
	record := &models.CartRecord{
		UserID: userID,
		Items:  c.Items(),
	}
	if err := s.cartRepo.Save(record); err != nil {
		return fmt.Errorf("failed to save cart for user %s: %w", userID, err)
	}
	return nil
}

func summarize(c *cart.Cart) *CartSummary {
	subtotal := c.Total()
	tax := subtotal * cart.TaxRate
	return &CartSummary{
		Items:     c.Items(),
		ItemCount: c.ItemCount(),
		Subtotal:  subtotal,
		Shipping:  0, // free shipping
		Tax:       tax,
		Total:     subtotal + tax,
	}
}

// GetCart returns the current cart summary for a user.
func (s *CartService) GetCart(userID string) (*CartSummary, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	c, err := s.load(userID)
	if err != nil {
		return nil, err
	}
	return summarize(c), nil
}

// AddItem adds quantity units of a product to the user's cart. The
// product is fetched fresh so stock status and price are current.
// Returns cart.ErrOutOfStock when the product cannot be added.
func (s *CartService) AddItem(userID, productID string, quantity int) (*CartSummary, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, fmt.Errorf("product %s not found: %w", productID, err)
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	c, err := s.load(userID)
	if err != nil {
		return nil, err
	}
	if err := c.AddItem(*product, quantity); err != nil {
		return nil, err
	}
	if err := s.save(userID, c); err != nil {
		return nil, err
	}
	return summarize(c), nil
}

// UpdateQuantity sets the exact quantity of a cart line. Quantities
// below 1 remove the line; stale product IDs are tolerated as no-ops.
func (s *CartService) UpdateQuantity(userID, productID string, quantity int) (*CartSummary, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	c, err := s.load(userID)
	if err != nil {
		return nil, err
	}
	c.UpdateQuantity(productID, quantity)
	if err := s.save(userID, c); err != nil {
		return nil, err
	}
	return summarize(c), nil
}

// RemoveItem removes a cart line. Stale product IDs are a no-op.
func (s *CartService) RemoveItem(userID, productID string) (*CartSummary, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	c, err := s.load(userID)
	if err != nil {
		return nil, err
	}
	c.RemoveItem(productID)
	if err := s.save(userID, c); err != nil {
		return nil, err
	}
	return summarize(c), nil
}

// ClearCart empties the user's cart.
func (s *CartService) ClearCart(userID string) error {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.cartRepo.Delete(userID); err != nil {
		return fmt.Errorf("failed to clear cart for user %s: %w", userID, err)
	}
	return nil
}

// Checkout snapshots the user's cart into a pending order, clears the
// cart, and publishes a checkout event. An empty cart cannot be
// checked out.
func (s *CartService) Checkout(userID string) (*models.Order, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	c, err := s.load(userID)
	if err != nil {
		return nil, err
	}
	if c.LineCount() == 0 {
		return nil, fmt.Errorf("cart for user %s is empty", userID)
	}

	summary := summarize(c)
	items := make([]models.OrderItem, 0, len(summary.Items))
	for _, item := range summary.Items {
		items = append(items, models.OrderItem{
			ProductID: item.Product.ID,
			Quantity:  item.Quantity,
			Price:     item.Product.Price, // Price at the time of checkout
		})
	}

	order := &models.Order{
		UserID:    userID,
		Items:     items,
		Subtotal:  summary.Subtotal,
		Tax:       summary.Tax,
		Total:     summary.Total,
		Status:    "pending",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order from cart: %w", err)
	}

	if err := s.cartRepo.Delete(userID); err != nil {
		return nil, fmt.Errorf("failed to clear cart after checkout: %w", err)
	}

	if s.publisher != nil {
		event := map[string]interface{}{
			"orderID": order.ID,
			"userID":  order.UserID,
			"status":  order.Status,
			"total":   order.Total,
		}
		if err := s.publisher.PublishCheckoutEvent(event); err != nil {
			log.Printf("Warning: Failed to publish checkout event for order %s: %v", order.ID, err)
		} else {
			log.Printf("Successfully published checkout event for order %s", order.ID)
		}
	} else {
		log.Println("Checkout publisher is not configured. Skipping event publication.")
	}

	return order, nil
}
