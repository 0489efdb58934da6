package routes

import (
	"randevu.link/configs"
	public_handlers "randevu.link/handlers/public"

	"github.com/gofiber/fiber/v2"
)

// registerPublicRoutes ana sayfa, listeler, birim randevusu ve iletişim.
func registerPublicRoutes(app *fiber.App, svc *appServices, cfg *configs.AppConfig) {
	homeHandler := public_handlers.NewHomeHandler(svc.catalog, svc.teaser)
	academicHandler := public_handlers.NewAcademicHandler(svc.catalog, cfg.SearchDebounce)
	announcementHandler := public_handlers.NewAnnouncementHandler(svc.catalog, cfg.SearchDebounce)
	unitHandler := public_handlers.NewUnitHandler(svc.catalog)
	contactHandler := public_handlers.NewContactHandler(svc.contact)

	app.Get("/", homeHandler.Home)
	app.Get("/arama", homeHandler.Search)
	app.Get("/health", homeHandler.Health)

	app.Get("/akademisyenler", academicHandler.ListAcademics)
	app.Get("/akademisyenler/sonuclar", academicHandler.AcademicResults) // filtre parçası
	app.Get("/akademisyenler/:slug/randevu", academicHandler.BookAcademic)

	app.Get("/duyurular", announcementHandler.ListAnnouncements)
	app.Get("/duyurular/sonuclar", announcementHandler.AnnouncementResults)
	app.Get("/api/duyurular", announcementHandler.Feed)

	app.Get("/birimler", unitHandler.ListUnits)
	app.Get("/birimler/:id/randevu", unitHandler.ShowUnitBooking)
	app.Post("/birimler/:id/randevu", unitHandler.SubmitUnitBooking)

	app.Get("/iletisim", contactHandler.ShowContact)
	app.Post("/iletisim", contactHandler.SubmitContact)
}
