package middleware_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"shopcart/internal/apperrors"
	"shopcart/internal/middleware"
	"shopcart/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTokenParser struct {
	mock.Mock
}

func (m *MockTokenParser) GetPayload(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

type MockCustomerFinder struct {
	mock.Mock
}

func (m *MockCustomerFinder) FindLoginCustomer(ctx context.Context, email string) (models.Customer, error) {
	args := m.Called(email)
	return args.Get(0).(models.Customer), args.Error(1)
}

// newApp maps error types to distinct codes so the tests can tell them apart.
func newApp(tokens middleware.TokenParser, customers middleware.LoginCustomerFinder) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var authErr *apperrors.AuthenticationError
			var notFound *apperrors.NotFoundError
			switch {
			case errors.As(err, &authErr):
				return c.Status(fiber.StatusUnauthorized).SendString(err.Error())
			case errors.As(err, &notFound):
				return c.Status(fiber.StatusNotFound).SendString(err.Error())
			}
			return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
		},
	})
	app.Get("/me", middleware.AuthRequired(tokens, customers), func(c *fiber.Ctx) error {
		customer, ok := middleware.Principal(c)
		if !ok {
			return errors.New("no principal")
		}
		return c.SendString(customer.Email)
	})
	return app
}

func doGet(t *testing.T, app *fiber.App, authorization string) (int, string) {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestAuthRequired_ResolvesCustomer(t *testing.T) {
	tokens := new(MockTokenParser)
	customers := new(MockCustomerFinder)
	tokens.On("GetPayload", "good-token").Return("alice@example.com", nil).Once()
	customers.On("FindLoginCustomer", "alice@example.com").Return(models.Customer{ID: 1, Email: "alice@example.com"}, nil).Once()

	status, body := doGet(t, newApp(tokens, customers), "Bearer good-token")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "alice@example.com", body)
	tokens.AssertExpectations(t)
	customers.AssertExpectations(t)
}

func TestAuthRequired_RejectsMissingOrMalformedHeader(t *testing.T) {
	tokens := new(MockTokenParser)
	customers := new(MockCustomerFinder)
	app := newApp(tokens, customers)

	for _, header := range []string{"", "good-token", "Basic abc", "Bearer "} {
		status, _ := doGet(t, app, header)
		assert.Equal(t, http.StatusUnauthorized, status, header)
	}
	tokens.AssertNotCalled(t, "GetPayload", mock.Anything)
}

func TestAuthRequired_InvalidToken(t *testing.T) {
	tokens := new(MockTokenParser)
	customers := new(MockCustomerFinder)
	tokens.On("GetPayload", "bad-token").Return("", apperrors.NewAuthenticationError("invalid token", nil)).Once()

	status, body := doGet(t, newApp(tokens, customers), "Bearer bad-token")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Contains(t, body, "invalid token")
	customers.AssertNotCalled(t, "FindLoginCustomer", mock.Anything)
}

func TestAuthRequired_UnknownCustomer(t *testing.T) {
	tokens := new(MockTokenParser)
	customers := new(MockCustomerFinder)
	tokens.On("GetPayload", "orphan-token").Return("gone@example.com", nil).Once()
	customers.On("FindLoginCustomer", "gone@example.com").Return(models.Customer{}, apperrors.NewNotFoundError("customer gone@example.com does not exist")).Once()

	status, _ := doGet(t, newApp(tokens, customers), "bearer orphan-token")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := middleware.ExtractBearerToken("Bearer abc.def.ghi")
	assert.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = middleware.ExtractBearerToken("Token abc")
	var authErr *apperrors.AuthenticationError
	assert.True(t, errors.As(err, &authErr))
}
