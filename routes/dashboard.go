package routes

import (
	handlers "randevu.link/handlers/dashboard"
	"randevu.link/middlewares"
	"randevu.link/services"

	"github.com/gofiber/fiber/v2"
)

// registerDashboardRoutes birim yetkilisi ekranı (/birim). Yalnızca BRM randevuları görünür.
func registerDashboardRoutes(app *fiber.App, svc *appServices) {
	unitHandler := handlers.NewUnitAppointmentHandler(svc.appointments)

	unitGroup := app.Group("/birim", middlewares.RoleMiddleware(middlewares.RoleUnit))
	unitGroup.Get("/", unitHandler.ListAppointments)
	unitGroup.Post("/randevular/:id/onayla", unitHandler.Transition(services.ActionConfirm))
	unitGroup.Post("/randevular/:id/reddet", unitHandler.Transition(services.ActionReject))
	unitGroup.Post("/randevular/:id/iptal", unitHandler.Transition(services.ActionCancel))
	unitGroup.Post("/randevular/:id/tamamla", unitHandler.Transition(services.ActionComplete))
}
