package rayid

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// Header carries the RayID on requests and responses.
	Header = "X-Ray-ID"
	// LocalsKey is where handlers find the RayID via c.Locals.
	LocalsKey = "ray_id"
)

// New returns a middleware that assigns every request a RayID. A RayID sent
// by the caller is kept.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(Header)
		if id == "" {
			id = uuid.NewString()
		} else {
			// Header values point into a buffer fiber reuses.
			id = strings.Clone(id)
		}
		c.Locals(LocalsKey, id)
		c.Set(Header, id)
		return c.Next()
	}
}
