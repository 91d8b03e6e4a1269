package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"storefront/internal/cart"
	"storefront/internal/services"
)

// CartHandler handles HTTP requests for the authenticated shopper's cart.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app. All
// routes resolve the user from the JWT claims set by the auth
// middleware.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Patch("/items/:productId", h.HandleUpdateQuantity)
	cartRoutes.Delete("/items/:productId", h.HandleRemoveItem)
	cartRoutes.Delete("/", h.HandleClearCart)
	cartRoutes.Post("/checkout", h.HandleCheckout)
}

func userIDFromContext(c *fiber.Ctx) (string, error) {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return "", errors.New("missing user identity in request context")
	}
	return userID, nil
}

// AddItemRequest represents the request body for adding a cart item.
type AddItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=1"`
}

// UpdateQuantityRequest represents the request body for setting a
// line's quantity. Zero is allowed and removes the line.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

// HandleGetCart returns the current cart summary.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": err.Error()})
	}

	summary, err := h.service.GetCart(userID)
	if err != nil {
		log.Printf("Error getting cart for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(summary)
}

// HandleAddItem adds a product to the cart.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": err.Error()})
	}

	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add-item body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	summary, err := h.service.AddItem(userID, req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, cart.ErrOutOfStock) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Product is out of stock",
			})
		}
		log.Printf("Error adding item %s to cart for user %s: %v", req.ProductID, userID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not add item to cart",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(summary)
}

// HandleUpdateQuantity sets a cart line's quantity exactly. A quantity
// of zero removes the line; stale product IDs leave the cart unchanged.
func (h *CartHandler) HandleUpdateQuantity(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": err.Error()})
	}

	var req UpdateQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update-quantity body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	summary, err := h.service.UpdateQuantity(userID, c.Params("productId"), req.Quantity)
	if err != nil {
		log.Printf("Error updating cart quantity for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(summary)
}

// HandleRemoveItem removes a cart line.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": err.Error()})
	}

	summary, err := h.service.RemoveItem(userID, c.Params("productId"))
	if err != nil {
		log.Printf("Error removing cart item for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not remove item from cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(summary)
}

// HandleClearCart empties the cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": err.Error()})
	}

	if err := h.service.ClearCart(userID); err != nil {
		log.Printf("Error clearing cart for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not clear cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Cart cleared",
	})
}

// HandleCheckout snapshots the cart into a pending order and clears it.
func (h *CartHandler) HandleCheckout(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": err.Error()})
	}

	order, err := h.service.Checkout(userID)
	if err != nil {
		log.Printf("Error checking out cart for user %s: %v", userID, err)
		if strings.Contains(err.Error(), "empty") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Cannot check out an empty cart",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not complete checkout",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}
