package cart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront/internal/cart"
	"storefront/internal/models"
)

func testProduct(id string, price float64) models.Product {
	return models.Product{
		ID:       id,
		Name:     "Product " + id,
		Price:    price,
		Category: "Electronics",
		InStock:  true,
	}
}

func TestCart_AddItemMergesLines(t *testing.T) {
	c := cart.New()
	p := testProduct("prod-1", 199.99)

	assert.NoError(t, c.AddItem(p, 2))
	assert.NoError(t, c.AddItem(p, 3))

	items := c.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, "prod-1", items[0].Product.ID)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestCart_AddItemPreservesInsertionOrder(t *testing.T) {
	c := cart.New()
	assert.NoError(t, c.AddItem(testProduct("prod-1", 10), 1))
	assert.NoError(t, c.AddItem(testProduct("prod-2", 20), 1))
	assert.NoError(t, c.AddItem(testProduct("prod-1", 10), 1)) // merge, no reorder

	items := c.Items()
	assert.Len(t, items, 2)
	assert.Equal(t, "prod-1", items[0].Product.ID)
	assert.Equal(t, "prod-2", items[1].Product.ID)
}

func TestCart_AddItemOutOfStock(t *testing.T) {
	c := cart.New()
	p := testProduct("prod-1", 159.99)
	p.InStock = false

	err := c.AddItem(p, 1)
	assert.ErrorIs(t, err, cart.ErrOutOfStock)
	assert.Equal(t, 0, c.LineCount())
	assert.Equal(t, 0.0, c.Total())
}

func TestCart_UpdateQuantitySetsExactValue(t *testing.T) {
	c := cart.New()
	assert.NoError(t, c.AddItem(testProduct("prod-1", 10), 4))

	c.UpdateQuantity("prod-1", 2)
	assert.Equal(t, 2, c.ItemCount())

	// Unknown IDs are a no-op, not an error.
	c.UpdateQuantity("prod-99", 7)
	assert.Equal(t, 1, c.LineCount())
	assert.Equal(t, 2, c.ItemCount())
}

func TestCart_UpdateQuantityToZeroRemovesLine(t *testing.T) {
	a := cart.New()
	b := cart.New()
	p := testProduct("prod-1", 10)
	assert.NoError(t, a.AddItem(p, 3))
	assert.NoError(t, b.AddItem(p, 3))

	a.UpdateQuantity("prod-1", 0)
	b.RemoveItem("prod-1")

	assert.Equal(t, b.Items(), a.Items())
	assert.Equal(t, 0, a.LineCount())
}

func TestCart_RemoveItemUnknownIDIsNoOp(t *testing.T) {
	c := cart.New()
	assert.NoError(t, c.AddItem(testProduct("prod-1", 10), 1))

	c.RemoveItem("prod-99")
	assert.Equal(t, 1, c.LineCount())
}

func TestCart_TotalRecomputedFromLines(t *testing.T) {
	c := cart.New()
	assert.NoError(t, c.AddItem(testProduct("prod-1", 199.99), 1))
	assert.NoError(t, c.AddItem(testProduct("prod-2", 49.99), 2))

	var expected float64
	for _, item := range c.Items() {
		expected += item.Product.Price * float64(item.Quantity)
	}
	assert.InDelta(t, expected, c.Total(), 1e-9)

	c.UpdateQuantity("prod-2", 1)
	assert.InDelta(t, 199.99+49.99, c.Total(), 1e-9)

	c.Clear()
	assert.Equal(t, 0.0, c.Total())
	assert.Equal(t, 0, c.ItemCount())
}

func TestCart_QuantityInvariantUnderMixedMutations(t *testing.T) {
	c := cart.New()
	products := []models.Product{
		testProduct("prod-1", 10),
		testProduct("prod-2", 20),
		testProduct("prod-3", 30),
	}

	for i := 0; i < 50; i++ {
		p := products[i%len(products)]
		switch i % 5 {
		case 0, 1:
			assert.NoError(t, c.AddItem(p, 1+i%3))
		case 2:
			c.UpdateQuantity(p.ID, i%4) // sometimes 0, forcing removal
		case 3:
			c.RemoveItem(p.ID)
		case 4:
			c.UpdateQuantity("stale-id", 5)
		}

		seen := make(map[string]bool)
		for _, item := range c.Items() {
			assert.GreaterOrEqual(t, item.Quantity, 1)
			assert.False(t, seen[item.Product.ID], "duplicate line for %s", item.Product.ID)
			seen[item.Product.ID] = true
		}
	}
}

func TestRestore_DropsCorruptQuantities(t *testing.T) {
	items := []models.CartItem{
		{Product: testProduct("prod-1", 10), Quantity: 2},
		{Product: testProduct("prod-2", 20), Quantity: 0},
		{Product: testProduct("prod-3", 30), Quantity: 1},
	}

	c := cart.Restore(items)
	assert.Equal(t, 2, c.LineCount())
	assert.Equal(t, "prod-1", c.Items()[0].Product.ID)
	assert.Equal(t, "prod-3", c.Items()[1].Product.ID)
}

func TestRestore_MergesDuplicateLines(t *testing.T) {
	items := []models.CartItem{
		{Product: testProduct("prod-1", 10), Quantity: 2},
		{Product: testProduct("prod-2", 20), Quantity: 1},
		{Product: testProduct("prod-1", 10), Quantity: 3},
	}

	c := cart.Restore(items)
	assert.Equal(t, 2, c.LineCount())
	assert.Equal(t, "prod-1", c.Items()[0].Product.ID)
	assert.Equal(t, 5, c.Items()[0].Quantity)
	assert.Equal(t, "prod-2", c.Items()[1].Product.ID)
	assert.InDelta(t, 70.0, c.Total(), 1e-9)
}
