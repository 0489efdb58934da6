package routes

import (
	booking_handlers "randevu.link/handlers/booking"

	"github.com/gofiber/fiber/v2"
)

// registerBookingRoutes randevu sihirbazı ve onay sayfası.
// Sihirbazın her etkileşimi POST + 303 yönlendirmesidir; durum session'da tutulur.
func registerBookingRoutes(app *fiber.App, svc *appServices) {
	wizardHandler := booking_handlers.NewWizardHandler(svc.catalog)
	confirmationHandler := booking_handlers.NewConfirmationHandler(svc.appointments)

	wizardGroup := app.Group(booking_handlers.WizardPath)
	wizardGroup.Get("/", wizardHandler.ShowWizard)
	wizardGroup.Post("/tur", wizardHandler.SelectType)
	wizardGroup.Post("/akademisyen", wizardHandler.SelectAcademic)
	wizardGroup.Post("/tarih", wizardHandler.SelectDate)
	wizardGroup.Post("/saat", wizardHandler.SelectTime)
	wizardGroup.Post("/ileri", wizardHandler.Next)
	wizardGroup.Post("/geri", wizardHandler.Prev)
	wizardGroup.Post("/ay/onceki", wizardHandler.PrevMonth)
	wizardGroup.Post("/ay/sonraki", wizardHandler.NextMonth)
	wizardGroup.Post("/gonder", wizardHandler.Submit)

	app.Get(booking_handlers.ConfirmationPath, confirmationHandler.ShowConfirmation)
}
