package routes

import (
	panel_handlers "randevu.link/handlers/panel"
	"randevu.link/middlewares"
	"randevu.link/services"

	"github.com/gofiber/fiber/v2"
)

// registerPanelRoutes öğrenci (/ogrenci) ve akademisyen (/akademisyen) panelleri.
func registerPanelRoutes(app *fiber.App, svc *appServices) {
	studentHandler := panel_handlers.NewStudentHandler(svc.appointments)
	academicHandler := panel_handlers.NewAcademicHandler(svc.appointments)

	studentGroup := app.Group("/ogrenci", middlewares.RoleMiddleware(middlewares.RoleStudent))
	studentGroup.Get("/", studentHandler.Home)
	studentGroup.Get("/randevular", studentHandler.ListAppointments)
	studentGroup.Get("/randevular/:id", studentHandler.ShowAppointment)
	studentGroup.Post("/randevular/:id/iptal", studentHandler.CancelAppointment)

	academicGroup := app.Group("/akademisyen", middlewares.RoleMiddleware(middlewares.RoleAcademic))
	academicGroup.Get("/", academicHandler.Home)
	academicGroup.Get("/randevular", academicHandler.ListAppointments)
	academicGroup.Post("/randevular/:id/onayla", academicHandler.Transition(services.ActionConfirm))
	academicGroup.Post("/randevular/:id/reddet", academicHandler.Transition(services.ActionReject))
	academicGroup.Post("/randevular/:id/iptal", academicHandler.Transition(services.ActionCancel))
	academicGroup.Post("/randevular/:id/tamamla", academicHandler.Transition(services.ActionComplete))
}
