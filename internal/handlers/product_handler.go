package handlers

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"storefront/internal/catalog"
	"storefront/internal/models"
	"storefront/internal/services"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the public browsing routes with the Fiber
// app. Static paths are registered before the :id route so Fiber does
// not swallow them as IDs.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/search", h.HandleSearchProducts)
	productRoutes.Get("/trending", h.HandleGetTrendingProducts)
	productRoutes.Get("/recommended", h.HandleGetRecommendedProducts)
	productRoutes.Get("/facets", h.HandleGetFacets)
	productRoutes.Post("/query", h.HandleQueryProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
}

// RegisterAdminRoutes registers the catalog mutation routes, meant to
// sit behind the auth middleware.
func (h *ProductHandler) RegisterAdminRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts retrieves the full catalog in catalog order.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		log.Printf("Error getting all products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	productID := c.Params("id")
	product, err := h.service.GetProductByID(productID)
	if err != nil {
		log.Printf("Error getting product by ID %s: %v", productID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %s not found", productID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve product",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"product":         product,
		"discountPercent": catalog.DiscountPercent(*product),
	})
}

// HandleSearchProducts runs a free-text search over the catalog.
func (h *ProductHandler) HandleSearchProducts(c *fiber.Ctx) error {
	query := c.Query("q")
	products, err := h.service.SearchProducts(query)
	if err != nil {
		log.Printf("Error searching products for %q: %v", query, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not search products",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"query":   query,
		"count":   len(products),
		"results": products,
	})
}

// HandleGetTrendingProducts returns the products flagged as trending.
func (h *ProductHandler) HandleGetTrendingProducts(c *fiber.Ctx) error {
	products, err := h.service.GetTrendingProducts()
	if err != nil {
		log.Printf("Error getting trending products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve trending products",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"data": products})
}

// HandleGetRecommendedProducts returns the products flagged as recommended.
func (h *ProductHandler) HandleGetRecommendedProducts(c *fiber.Ctx) error {
	products, err := h.service.GetRecommendedProducts()
	if err != nil {
		log.Printf("Error getting recommended products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve recommended products",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"data": products})
}

// HandleGetFacets returns the filter-control summaries for the catalog.
func (h *ProductHandler) HandleGetFacets(c *fiber.Ctx) error {
	facets, err := h.service.GetFacets()
	if err != nil {
		log.Printf("Error deriving catalog facets: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not derive catalog facets",
			"error":   err.Error(),
		})
	}
	return c.JSON(facets)
}

// HandleQueryProducts applies a declarative filter/sort spec to the
// catalog and returns the visible, ordered subset.
func (h *ProductHandler) HandleQueryProducts(c *fiber.Ctx) error {
	var spec catalog.FilterSpec
	if err := c.BodyParser(&spec); err != nil {
		log.Printf("Error parsing filter spec: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid filter specification",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(spec); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Filter specification validation failed",
			"error":   err.Error(),
		})
	}

	// An unset upper bound means no price ceiling.
	if spec.PriceRange[1] == 0 {
		facets, err := h.service.GetFacets()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not derive catalog facets",
				"error":   err.Error(),
			})
		}
		spec.PriceRange[1] = facets.MaxPrice
	}

	products, err := h.service.QueryProducts(spec)
	if err != nil {
		log.Printf("Error querying products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not query products",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"count":   len(products),
		"results": products,
	})
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing product body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(product); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	if err := h.service.CreateProduct(&product); err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create product",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct updates an existing product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing product body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	product.ID = c.Params("id")

	if err := h.service.UpdateProduct(&product); err != nil {
		log.Printf("Error updating product %s: %v", product.ID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %s not found", product.ID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update product",
			"error":   err.Error(),
		})
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes a product by its ID.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	if err := h.service.DeleteProduct(productID); err != nil {
		log.Printf("Error deleting product %s: %v", productID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %s not found", productID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete product",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Product %s deleted successfully", productID),
	})
}
