package handlers

import (
	"shopcart/internal/services"

	"github.com/gofiber/fiber/v2"
)

// PageHandler renders the server-side product listings.
type PageHandler struct {
	service *services.ProductService
}

func NewPageHandler(service *services.ProductService) *PageHandler {
	return &PageHandler{service: service}
}

func (h *PageHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.render("index"))
	router.Get("/admin", h.render("admin"))
}

func (h *PageHandler) render(view string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		products, err := h.service.FindAll(c.UserContext())
		if err != nil {
			return err
		}
		return c.Render(view, fiber.Map{
			"products": products,
		})
	}
}
