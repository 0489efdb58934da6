package routes

import (
	"errors"
	"net/http"

	"randevu.link/configs"
	"randevu.link/configs/configslog"
	"randevu.link/middlewares"
	"randevu.link/repositories"
	"randevu.link/services"
	"randevu.link/views"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// appServices rota gruplarının paylaştığı servisler.
type appServices struct {
	appointments services.IAppointmentService
	catalog      services.ICatalogService
	teaser       services.ITeaserService
	contact      services.IContactService
}

func newAppServices(db *gorm.DB, cfg *configs.AppConfig) *appServices {
	slotStore := repositories.NewGormSlotStore(db)
	appointmentRepo := repositories.NewAppointmentRepository(slotStore, cfg.StorageQuotaBytes)
	return &appServices{
		appointments: services.NewAppointmentService(appointmentRepo, cfg.StudentName, cfg.StudentDepartment),
		catalog:      services.NewCatalogService(repositories.NewCatalogRepository(db)),
		teaser:       services.NewTeaserService(cfg.AnnouncementFeedURL, cfg.TeaserTimeout, cfg.TeaserLimit),
		contact:      services.NewContactService(repositories.NewContactRepository(db)),
	}
}

// NewApp şablon motoru ve hata sayfalarıyla yapılandırılmış uygulamayı kurar.
func NewApp(cfg *configs.AppConfig, db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		Views:        views.NewEngine(),
		ErrorHandler: ErrorHandler,
	})
	SetupRoutes(app, db, cfg)
	return app
}

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configs.AppConfig) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())

	app.Use("/static", filesystem.New(filesystem.Config{
		Root:       http.FS(views.Static),
		PathPrefix: "static",
		MaxAge:     3600,
	}))

	store := configs.SetupSession(cfg)
	app.Use(middlewares.SessionMiddleware(store))
	if cfg.CSRFEnabled {
		app.Use(configs.SetupCSRF(cfg, store))
	}

	svc := newAppServices(db, cfg)

	registerPublicRoutes(app, svc, cfg)
	registerBookingRoutes(app, svc)
	registerPanelRoutes(app, svc)
	registerDashboardRoutes(app, svc)

	app.Use(notFoundHandler)
}

// ErrorHandler handler hatalarını JSON ya da hata sayfası olarak döner.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Beklenmeyen bir hata oluştu."
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}
	if code >= fiber.StatusInternalServerError {
		configslog.Log.Error("İstek işlenemedi",
			zap.String("method", c.Method()), zap.String("path", c.Path()), zap.Error(err))
	}

	if c.Accepts("application/json", "text/html") == "application/json" {
		return c.Status(code).JSON(fiber.Map{"error": message})
	}
	template := "errors/500"
	if code == fiber.StatusNotFound {
		template = "errors/404"
	}
	if renderErr := c.Status(code).Render(template, fiber.Map{
		"Title":   "Hata",
		"Message": message,
		"Code":    code,
	}, "layouts/error"); renderErr != nil {
		return c.Status(code).SendString(message)
	}
	return nil
}

func notFoundHandler(c *fiber.Ctx) error {
	accepts := c.Accepts("application/json", "text/html")
	switch accepts {
	case "application/json":
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kaynak bulunamadı"})
	default:
		return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{"Title": "Sayfa Bulunamadı"}, "layouts/error")
	}
}
