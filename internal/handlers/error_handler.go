package handlers

import (
	"errors"
	"log"

	"shopcart/internal/apperrors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler translates errors returned by handlers and middleware into plain-text
// responses. Unrecognised errors become 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()

	var (
		validationErr *apperrors.ValidationError
		domainErr     *apperrors.DomainError
		notFoundErr   *apperrors.NotFoundError
		authErr       *apperrors.AuthenticationError
		fiberErr      *fiber.Error
	)
	switch {
	case errors.As(err, &validationErr):
		code = fiber.StatusBadRequest
		message = validationErr.Error()
	case errors.As(err, &domainErr):
		code = fiber.StatusBadRequest
		message = domainErr.Message
	case errors.As(err, &notFoundErr):
		code = fiber.StatusNotFound
		message = notFoundErr.Message
	case errors.As(err, &authErr):
		code = fiber.StatusUnauthorized
		message = authErr.Message
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message
	default:
		log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
		message = "Internal Server Error"
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(code).SendString(message)
}
