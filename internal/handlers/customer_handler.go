package handlers

import (
	"shopcart/internal/apperrors"
	"shopcart/internal/middleware"
	"shopcart/internal/models"
	"shopcart/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// SignUpRequest is the body of a registration request. Password rules are enforced
// by models.NewPassword.
type SignUpRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ProfileImageURL string `json:"profileImageUrl"`
	Terms           bool   `json:"terms"`
}

// CustomerUpdateRequest is the body of a profile update.
type CustomerUpdateRequest struct {
	Password        string `json:"password" validate:"required"`
	ProfileImageURL string `json:"profileImageUrl"`
	Terms           bool   `json:"terms"`
}

// CustomerHandler handles registration and the profile of the logged-in customer.
type CustomerHandler struct {
	service  *services.CustomerService
	validate *validator.Validate
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(service *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the public customer routes.
func (h *CustomerHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/customers", h.HandleSignUp)
	router.Get("/customers/email-check", h.HandleEmailCheck)
}

// RegisterProtectedRoutes registers routes that act on the authenticated customer.
// router is the /customers/me group guarded by middleware.AuthRequired.
func (h *CustomerHandler) RegisterProtectedRoutes(router fiber.Router) {
	router.Get("/", h.HandleGetMe)
	router.Put("/", h.HandleUpdateMe)
	router.Delete("/", h.HandleDeleteMe)
}

func (h *CustomerHandler) HandleSignUp(c *fiber.Ctx) error {
	var req SignUpRequest
	if err := parseAndValidate(c, h.validate, &req); err != nil {
		return err
	}

	_, err := h.service.SignUp(c.UserContext(), services.SignUp{
		Email:           req.Email,
		Password:        req.Password,
		ProfileImageURL: req.ProfileImageURL,
		Terms:           req.Terms,
	})
	if err != nil {
		return err
	}

	c.Location("/customers/me")
	return c.SendStatus(fiber.StatusCreated)
}

func (h *CustomerHandler) HandleEmailCheck(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return apperrors.NewValidationError("email must not be blank")
	}
	taken, err := h.service.IsEmailTaken(c.UserContext(), email)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"exists": taken})
}

func (h *CustomerHandler) HandleGetMe(c *fiber.Ctx) error {
	customer, err := principal(c)
	if err != nil {
		return err
	}
	return c.JSON(customer)
}

func (h *CustomerHandler) HandleUpdateMe(c *fiber.Ctx) error {
	customer, err := principal(c)
	if err != nil {
		return err
	}
	var req CustomerUpdateRequest
	if err := parseAndValidate(c, h.validate, &req); err != nil {
		return err
	}

	err = h.service.UpdateCustomer(c.UserContext(), customer.ID, services.CustomerUpdate{
		Password:        req.Password,
		ProfileImageURL: req.ProfileImageURL,
		Terms:           req.Terms,
	})
	if err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CustomerHandler) HandleDeleteMe(c *fiber.Ctx) error {
	customer, err := principal(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteCustomer(c.UserContext(), customer.ID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// principal is only reachable behind middleware.AuthRequired; a missing value means
// the route was registered without it.
func principal(c *fiber.Ctx) (models.Customer, error) {
	customer, ok := middleware.Principal(c)
	if !ok {
		return models.Customer{}, apperrors.NewAuthenticationError("authentication required", nil)
	}
	return customer, nil
}
