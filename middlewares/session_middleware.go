package middlewares

import (
	"randevu.link/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// SessionMiddleware session deposunu Locals'a koyar; flash ve sihirbaz yardımcıları buradan okur.
func SessionMiddleware(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(utils.SessionStoreKey, store)
		return c.Next()
	}
}
