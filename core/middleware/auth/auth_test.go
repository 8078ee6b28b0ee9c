package auth_test

import (
	"net/http/httptest"
	"testing"

	"status-notifier/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(key string) *fiber.App {
	app := fiber.New()
	app.Use(auth.New(auth.Config{ApiKey: key}))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })
	return app
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		sent       string
		want       int
	}{
		{"Disabled", "", "", fiber.StatusNoContent},
		{"Valid Key", "secret", "secret", fiber.StatusNoContent},
		{"Wrong Key", "secret", "guess", fiber.StatusUnauthorized},
		{"Missing Key", "secret", "", fiber.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.sent != "" {
				req.Header.Set(auth.Header, tt.sent)
			}
			resp, err := newApp(tt.configured).Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
