package catalog

import (
	"math"
	"sort"

	"storefront/internal/models"
)

// Facets summarizes a catalog for building filter controls.
type Facets struct {
	Categories []string `json:"categories"`
	Tags       []string `json:"tags"`
	MaxPrice   float64  `json:"maxPrice"`
}

// Categories returns the distinct category values in the catalog,
// sorted for a stable control layout.
func Categories(products []models.Product) []string {
	return distinct(products, func(p models.Product) []string {
		return []string{p.Category}
	})
}

// Tags returns the distinct tag strings appearing across all products,
// sorted.
func Tags(products []models.Product) []string {
	return distinct(products, func(p models.Product) []string {
		return p.Tags
	})
}

// MaxPrice returns the highest price in the catalog, or fallback when
// the catalog is empty.
func MaxPrice(products []models.Product, fallback float64) float64 {
	if len(products) == 0 {
		return fallback
	}
	max := products[0].Price
	for _, p := range products[1:] {
		if p.Price > max {
			max = p.Price
		}
	}
	return max
}

// DiscountPercent derives the display discount for a product: the
// rounded percentage off the original price when one is set and
// exceeds the current price, else 0. Never negative.
func DiscountPercent(p models.Product) int {
	if p.OriginalPrice <= p.Price {
		return 0
	}
	return int(math.Round((p.OriginalPrice - p.Price) / p.OriginalPrice * 100))
}

func distinct(products []models.Product, extract func(models.Product) []string) []string {
	seen := make(map[string]struct{})
	var values []string
	for _, p := range products {
		for _, v := range extract(p) {
			if v == "" {
				continue
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			values = append(values, v)
		}
	}
	sort.Strings(values)
	return values
}
