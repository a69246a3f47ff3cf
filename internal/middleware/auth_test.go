package middleware_test

import (
	"net/http/httptest"
	"testing"

	"campus-booking/internal/domain"
	"campus-booking/internal/middleware"
	"campus-booking/internal/service/auth"
	"campus-booking/tests/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestApp(authSvc auth.Service) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})
	app.Get("/protected", middleware.AuthRequired(authSvc), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func TestAuthRequired(t *testing.T) {
	userID := uuid.New()
	claims := &auth.Claims{UserID: userID, Email: "alice@campus.edu", Role: "student"}

	t.Run("Missing Header", func(t *testing.T) {
		app := newTestApp(new(mocks.AuthService))

		resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Invalid Token", func(t *testing.T) {
		authSvc := new(mocks.AuthService)
		authSvc.On("ValidateToken", "bad-token").Return(nil, auth.ErrInvalidToken).Once()
		app := newTestApp(authSvc)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Deleted User", func(t *testing.T) {
		authSvc := new(mocks.AuthService)
		authSvc.On("ValidateToken", "stale-token").Return(claims, nil).Once()
		authSvc.On("GetUserByID", mock.Anything, userID).Return(nil, nil).Once()
		app := newTestApp(authSvc)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer stale-token")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Store Failure Is Not An Auth Failure", func(t *testing.T) {
		authSvc := new(mocks.AuthService)
		authSvc.On("ValidateToken", "good-token").Return(claims, nil).Once()
		authSvc.On("GetUserByID", mock.Anything, userID).Return(nil, assert.AnError).Once()
		app := newTestApp(authSvc)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})

	t.Run("Success", func(t *testing.T) {
		authSvc := new(mocks.AuthService)
		authSvc.On("ValidateToken", "good-token").Return(claims, nil).Once()
		authSvc.On("GetUserByID", mock.Anything, userID).Return(&domain.User{
			ID: userID, Role: "student",
		}, nil).Once()
		app := newTestApp(authSvc)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		authSvc.AssertExpectations(t)
	})
}
