// Package catalog implements the catalog query engine: a pure
// transformation of a product snapshot into a filtered, ordered result
// set, plus the facet summaries used to build filter controls.
package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"storefront/internal/models"
)

// SortKey selects the ordering applied to a filtered result set.
type SortKey string

const (
	SortRecommended SortKey = "recommended"
	SortPriceLow    SortKey = "price-low"
	SortPriceHigh   SortKey = "price-high"
	SortRating      SortKey = "rating"
	SortName        SortKey = "name"
	SortNewest      SortKey = "newest"
)

// FilterSpec declares which products to include and how to order them.
// Empty Categories/Tags mean no constraint; MinRating 0 means no
// constraint. PriceRange is inclusive on both ends.
type FilterSpec struct {
	Categories  []string   `json:"categories"`
	PriceRange  [2]float64 `json:"priceRange"`
	MinRating   float64    `json:"rating" validate:"gte=0,lte=5"`
	InStockOnly bool       `json:"inStock"`
	Tags        []string   `json:"tags"`
	SortBy      SortKey    `json:"sortBy"`
}

// DefaultFilterSpec returns the unconstrained spec the UI starts from:
// all categories and tags, prices from zero to maxPrice, any rating,
// out-of-stock included, recommended ordering.
func DefaultFilterSpec(maxPrice float64) FilterSpec {
	return FilterSpec{
		PriceRange: [2]float64{0, maxPrice},
		SortBy:     SortRecommended,
	}
}

// nameCollator compares product names with locale-aware,
// case-insensitive ordering.
var nameCollator = collate.New(language.English, collate.IgnoreCase)

// Apply filters products against spec and returns them in the order
// spec.SortBy dictates. The input slice is never modified. A product
// passes when every active predicate group passes; within a
// multi-value group (categories, tags) any match suffices. Records
// missing required fields are excluded rather than failing the whole
// query. Ties beyond the stated sort keys keep their original catalog
// order.
func Apply(products []models.Product, spec FilterSpec) []models.Product {
	result := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !wellFormed(p) {
			continue
		}
		if !matches(p, spec) {
			continue
		}
		result = append(result, p)
	}

	sortProducts(result, spec.SortBy)
	return result
}

// wellFormed reports whether a record carries the fields the engine
// depends on. One bad record should not blank the catalog, so callers
// skip it instead of erroring.
func wellFormed(p models.Product) bool {
	return p.ID != "" && p.Category != "" && p.Price >= 0
}

func matches(p models.Product, spec FilterSpec) bool {
	if len(spec.Categories) > 0 && !contains(spec.Categories, p.Category) {
		return false
	}
	if p.Price < spec.PriceRange[0] || p.Price > spec.PriceRange[1] {
		return false
	}
	if spec.MinRating > 0 && p.Rating < spec.MinRating {
		return false
	}
	if spec.InStockOnly && !p.InStock {
		return false
	}
	if len(spec.Tags) > 0 && !containsAny(spec.Tags, p.Tags) {
		return false
	}
	return true
}

func sortProducts(products []models.Product, key SortKey) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case SortName:
		sort.SliceStable(products, func(i, j int) bool {
			return nameCollator.CompareString(products[i].Name, products[j].Name) < 0
		})
	case SortNewest:
		// Lexical ID compare as the newest-first proxy. Only correct
		// while IDs are assigned monotonically; revisit if creation
		// timestamps become available.
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ID > products[j].ID
		})
	case SortRecommended:
		fallthrough
	default:
		sort.SliceStable(products, func(i, j int) bool {
			if products[i].Recommended != products[j].Recommended {
				return products[i].Recommended
			}
			return products[i].Rating > products[j].Rating
		})
	}
}

// Search returns the products whose name, description, category, or
// any tag contains query, case-insensitively. An empty query matches
// nothing.
func Search(products []models.Product, query string) []models.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var result []models.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Description), query) ||
			strings.Contains(strings.ToLower(p.Category), query) ||
			tagMatch(p.Tags, query) {
			result = append(result, p)
		}
	}
	return result
}

// Trending returns the products flagged as trending, in catalog order.
func Trending(products []models.Product) []models.Product {
	var result []models.Product
	for _, p := range products {
		if p.Trending {
			result = append(result, p)
		}
	}
	return result
}

// Recommended returns the products flagged as recommended, in catalog
// order.
func Recommended(products []models.Product) []models.Product {
	var result []models.Product
	for _, p := range products {
		if p.Recommended {
			result = append(result, p)
		}
	}
	return result
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func containsAny(values, candidates []string) bool {
	for _, c := range candidates {
		if contains(values, c) {
			return true
		}
	}
	return false
}

func tagMatch(tags []string, query string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}
