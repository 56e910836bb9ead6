package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestWithBodyLimit(t *testing.T) {
	app := fiber.New()
	app.Post("/upload", WithBodyLimit(16), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	t.Run("under the limit", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodPost, "/upload", strings.NewReader("small"))
		resp, err := app.Test(req)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("over the limit", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodPost, "/upload", strings.NewReader(strings.Repeat("x", 64)))
		resp, err := app.Test(req)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusRequestEntityTooLarge, resp.StatusCode)
	})

	t.Run("no content length", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodPost, "/upload", nil)
		resp, err := app.Test(req)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
