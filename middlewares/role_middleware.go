package middlewares

import (
	"randevu.link/services"

	"github.com/gofiber/fiber/v2"
)

// Rol alanları. Kimlik doğrulama yoktur; rol URL'nin ait olduğu bölümden gelir.
const (
	RoleStudent  = "ogrenci"
	RoleAcademic = "akademisyen"
	RoleUnit     = "birim"
)

const (
	RoleLocalsKey  = "role"
	actorLocalsKey = "actor"
)

var roleActors = map[string]services.Actor{
	RoleStudent:  services.ActorStudent,
	RoleAcademic: services.ActorAcademic,
	RoleUnit:     services.ActorUnit,
}

// RoleMiddleware grubun rolünü ve servis aktörünü Locals'a yazar.
func RoleMiddleware(role string) fiber.Handler {
	actor, ok := roleActors[role]
	if !ok {
		panic("bilinmeyen rol: " + role)
	}
	return func(c *fiber.Ctx) error {
		c.Locals(RoleLocalsKey, role)
		c.Locals(actorLocalsKey, actor)
		return c.Next()
	}
}

// ActorFromCtx rol ara katmanı çalışmadıysa öğrenci döner.
func ActorFromCtx(c *fiber.Ctx) services.Actor {
	if actor, ok := c.Locals(actorLocalsKey).(services.Actor); ok {
		return actor
	}
	return services.ActorStudent
}
