package models

// CartItem is one product's accumulated quantity within a cart.
// A cart holds at most one CartItem per product ID, and a stored
// quantity is always at least 1.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity" validate:"gte=1"`
}

// CartRecord is the persisted form of a shopper's cart. Items keep
// their insertion order and quantities exactly as the cart last saved
// them.
type CartRecord struct {
	UserID    string     `json:"userId" gorm:"primaryKey;type:varchar(36)"`
	Items     []CartItem `json:"items" gorm:"serializer:json"`
	UpdatedAt int64      `json:"updatedAt" gorm:"autoUpdateTime"`
}
