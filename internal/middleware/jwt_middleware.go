package middleware

import (
	"context"
	"log"
	"strings"

	"shopcart/internal/apperrors"
	"shopcart/internal/models"

	"github.com/gofiber/fiber/v2"
)

const principalKey = "principal"

// TokenParser turns a bearer token into the identity it was issued for.
type TokenParser interface {
	GetPayload(token string) (string, error)
}

// LoginCustomerFinder looks up the customer behind an identity.
type LoginCustomerFinder interface {
	FindLoginCustomer(ctx context.Context, email string) (models.Customer, error)
}

// AuthRequired resolves the bearer token of every request to a customer and stores it
// for the handler. Failures are returned to the app's error handler.
func AuthRequired(tokens TokenParser, customers LoginCustomerFinder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := ExtractBearerToken(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return err
		}

		email, err := tokens.GetPayload(token)
		if err != nil {
			log.Printf("JWT validation failed: %v", err)
			return err
		}

		customer, err := customers.FindLoginCustomer(c.UserContext(), email)
		if err != nil {
			return err
		}

		c.Locals(principalKey, customer)
		return c.Next()
	}
}

// ExtractBearerToken returns the token of an "Authorization: Bearer <token>" header value.
func ExtractBearerToken(header string) (string, error) {
	if header == "" {
		return "", apperrors.NewAuthenticationError("Authorization header is required", nil)
	}
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", apperrors.NewAuthenticationError("Authorization header format must be 'Bearer <token>'", nil)
	}
	return strings.TrimSpace(parts[1]), nil
}

// Principal returns the customer resolved by AuthRequired.
func Principal(c *fiber.Ctx) (models.Customer, bool) {
	customer, ok := c.Locals(principalKey).(models.Customer)
	return customer, ok
}
