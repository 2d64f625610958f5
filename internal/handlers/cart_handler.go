package handlers

import (
	"fmt"

	"shopcart/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartItemRequest adds a product to the cart.
type CartItemRequest struct {
	ProductID int64 `json:"productId" validate:"gt=0"`
	Quantity  int   `json:"quantity" validate:"gt=0,lte=10000"`
}

// QuantityRequest changes the quantity of a cart item.
type QuantityRequest struct {
	Quantity int `json:"quantity" validate:"gt=0,lte=10000"`
}

// CartHandler handles the cart of the authenticated customer.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the cart routes on the /cart group guarded by
// middleware.AuthRequired.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/items")
	cartRoutes.Get("/", h.HandleGetCartItems)
	cartRoutes.Post("/", h.HandleAddCartItem)
	cartRoutes.Patch("/:id", h.HandleUpdateQuantity)
	cartRoutes.Delete("/:id", h.HandleDeleteCartItem)
}

func (h *CartHandler) HandleGetCartItems(c *fiber.Ctx) error {
	customer, err := principal(c)
	if err != nil {
		return err
	}
	items, err := h.service.FindCartItems(c.UserContext(), customer.ID)
	if err != nil {
		return err
	}
	return c.JSON(items)
}

func (h *CartHandler) HandleAddCartItem(c *fiber.Ctx) error {
	customer, err := principal(c)
	if err != nil {
		return err
	}
	var req CartItemRequest
	if err := parseAndValidate(c, h.validate, &req); err != nil {
		return err
	}

	id, err := h.service.AddCartItem(c.UserContext(), customer.ID, req.ProductID, req.Quantity)
	if err != nil {
		return err
	}
	c.Location(fmt.Sprintf("/cart/items/%d", id))
	return c.SendStatus(fiber.StatusCreated)
}

func (h *CartHandler) HandleUpdateQuantity(c *fiber.Ctx) error {
	customer, err := principal(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req QuantityRequest
	if err := parseAndValidate(c, h.validate, &req); err != nil {
		return err
	}

	if err := h.service.UpdateCartItemQuantity(c.UserContext(), customer.ID, id, req.Quantity); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CartHandler) HandleDeleteCartItem(c *fiber.Ctx) error {
	customer, err := principal(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteCartItem(c.UserContext(), customer.ID, id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
