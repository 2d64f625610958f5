package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"shopcart/internal/apperrors"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandler(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"validation", apperrors.NewValidationError("name must not be blank", "price must be 0 or greater"), fiber.StatusBadRequest, "name must not be blank, price must be 0 or greater"},
		{"domain", apperrors.NewDomainError("product does not exist"), fiber.StatusBadRequest, "product does not exist"},
		{"wrapped not found", fmt.Errorf("lookup: %w", apperrors.NewNotFoundError("product with ID %d not found", 7)), fiber.StatusNotFound, "product with ID 7 not found"},
		{"authentication", apperrors.NewAuthenticationError("invalid token", errors.New("signature is invalid")), fiber.StatusUnauthorized, "invalid token"},
		{"fiber", fiber.ErrMethodNotAllowed, fiber.StatusMethodNotAllowed, "Method Not Allowed"},
		{"unknown", errors.New("connection refused"), fiber.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
			app.Get("/", func(c *fiber.Ctx) error { return tc.err })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
			require.NoError(t, err)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, tc.body, string(body))
			assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/plain")
		})
	}
}

func TestParamIDRejectsNonPositive(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/items/:id", func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return err
		}
		return c.SendString(fmt.Sprint(id))
	})

	for path, status := range map[string]int{"/items/3": 200, "/items/0": 400, "/items/-2": 400, "/items/x": 400} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil), -1)
		require.NoError(t, err)
		assert.Equal(t, status, resp.StatusCode, path)
	}
}
