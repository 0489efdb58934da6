package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"randevu.link/configs/configslog"
	"randevu.link/middlewares"
	"randevu.link/pkg/renderer"
	"randevu.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const academicListPath = "/akademisyen/randevular"

// AcademicHandler akademisyen paneli. Yalnızca RND randevuları görünür.
type AcademicHandler struct {
	service services.IAppointmentService
}

func NewAcademicHandler(service services.IAppointmentService) *AcademicHandler {
	return &AcademicHandler{service: service}
}

// Home toplam sayı, bugünün onaylı randevuları (saate göre) ve son üç bekleyen talep.
func (h *AcademicHandler) Home(c *fiber.Ctx) error {
	dashboard, err := h.service.StaffDashboard(c.UserContext(), middlewares.ActorFromCtx(c))
	renderData := fiber.Map{
		"Title":      "Akademisyen Paneli",
		"Dashboard":  dashboard,
		"ActionBase": academicListPath,
	}
	if err != nil {
		configslog.Log.Error("Panel - AcademicHome Error", zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "Randevular okunurken bir hata oluştu."
		renderData["Dashboard"] = &services.StaffDashboard{}
	}
	return renderer.Render(c, "panel/academic/home", "layouts/panel", renderData, http.StatusOK)
}

func (h *AcademicHandler) ListAppointments(c *fiber.Ctx) error {
	return listAppointments(c, h.service, "Randevu Talepleri", "panel/academic/appointments")
}

// Transition verilen işlem için POST handler'ı üretir.
func (h *AcademicHandler) Transition(action services.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return applyAction(c, h.service, action, redirectBack(c, academicListPath))
	}
}

// redirectBack form "redirect" alanı yalnızca site içi yol ise kullanılır.
// Tarayıcılar "\" karakterini "/" gibi okuduğundan ters bölü içeren hedefler reddedilir.
func redirectBack(c *fiber.Ctx, fallback string) string {
	target := c.FormValue("redirect")
	if target == "" || strings.Contains(target, `\`) {
		return fallback
	}
	u, err := url.Parse(target)
	if err != nil || u.Scheme != "" || u.Host != "" || u.User != nil {
		return fallback
	}
	if !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") || strings.Contains(u.Path, `\`) {
		return fallback
	}
	return target
}
