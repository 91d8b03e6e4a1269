// Package cart implements the in-memory cart state engine: the
// authoritative model of what a shopper intends to buy, its mutation
// rules, and its derived totals.
package cart

import (
	"errors"

	"storefront/internal/models"
)

// ErrOutOfStock is returned by AddItem when the target product is not
// in stock. It is the only domain-level rejection the cart signals;
// stale-ID conditions on update/remove degrade to no-ops instead.
var ErrOutOfStock = errors.New("product is out of stock")

// Business constants for the order summary. Shipping is free and tax
// is a flat rate applied to the subtotal.
const TaxRate = 0.08

// Cart holds the line items for a single shopper session. Mutations
// are expected to arrive sequentially from one actor; callers exposing
// a Cart to concurrent requests must serialize access themselves.
type Cart struct {
	items []models.CartItem
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{}
}

// Restore creates a cart from previously persisted items, preserving
// their order and quantities. The store is not trusted to uphold the
// cart invariants: items with a non-positive quantity are dropped, and
// duplicate product IDs are merged into the first-seen line so each
// product keeps exactly one line.
func Restore(items []models.CartItem) *Cart {
	c := &Cart{}
	for _, item := range items {
		if item.Quantity < 1 {
			continue
		}
		merged := false
		for i := range c.items {
			if c.items[i].Product.ID == item.Product.ID {
				c.items[i].Quantity += item.Quantity
				merged = true
				break
			}
		}
		if !merged {
			c.items = append(c.items, item)
		}
	}
	return c
}

// AddItem adds quantity units of a product to the cart. If a line for
// the product already exists its quantity is incremented; otherwise a
// new line is appended, preserving first-seen order. Returns
// ErrOutOfStock without modifying the cart when the product is not in
// stock.
func (c *Cart) AddItem(product models.Product, quantity int) error {
	if !product.InStock {
		return ErrOutOfStock
	}
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.items {
		if c.items[i].Product.ID == product.ID {
			c.items[i].Quantity += quantity
			return nil
		}
	}
	c.items = append(c.items, models.CartItem{Product: product, Quantity: quantity})
	return nil
}

// UpdateQuantity sets the quantity of the line for productID to
// exactly quantity. A quantity below 1 removes the line. Unknown IDs
// are a no-op.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity < 1 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem deletes the line for productID. Unknown IDs are a no-op.
func (c *Cart) RemoveItem(productID string) {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}

// Total returns the cart subtotal, recomputed from the lines on every
// call. It is derived state and never stored.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// ItemCount returns the sum of quantities across all lines.
func (c *Cart) ItemCount() int {
	var count int
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// LineCount returns the number of distinct lines.
func (c *Cart) LineCount() int {
	return len(c.items)
}

// Items returns a copy of the cart lines in insertion order.
func (c *Cart) Items() []models.CartItem {
	items := make([]models.CartItem, len(c.items))
	copy(items, c.items)
	return items
}
