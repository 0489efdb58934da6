package middlewares

import (
	"io"
	"net/http/httptest"
	"testing"

	"randevu.link/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleMiddlewareSetsActor(t *testing.T) {
	app := fiber.New()
	echo := func(c *fiber.Ctx) error {
		return c.SendString(string(ActorFromCtx(c)) + "|" + c.Locals(RoleLocalsKey).(string))
	}
	app.Get("/birim", RoleMiddleware(RoleUnit), echo)
	app.Get("/akademisyen", RoleMiddleware(RoleAcademic), echo)
	app.Get("/serbest", func(c *fiber.Ctx) error {
		return c.SendString(string(ActorFromCtx(c)))
	})

	cases := map[string]string{
		"/birim":       string(services.ActorUnit) + "|" + RoleUnit,
		"/akademisyen": string(services.ActorAcademic) + "|" + RoleAcademic,
		"/serbest":     string(services.ActorStudent),
	}
	for path, want := range cases {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, want, string(body), path)
	}
}

func TestRoleMiddlewarePanicsOnUnknownRole(t *testing.T) {
	assert.Panics(t, func() { RoleMiddleware("yonetici") })
}
