package models

import "time"

// OrderItem represents a single item within an order.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"` // Price at the time of order
}

// Order represents a placed order, snapshotted from a cart at checkout.
type Order struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	Items     []OrderItem `json:"items" gorm:"serializer:json"`
	Subtotal  float64     `json:"subtotal"`
	Tax       float64     `json:"tax"`
	Total     float64     `json:"total"`
	Status    string      `json:"status"` // "pending", "shipped", "delivered", "cancelled"
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}
