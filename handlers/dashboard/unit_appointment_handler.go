package handlers

import (
	"errors"
	"net/http"

	"randevu.link/configs/configslog"
	"randevu.link/middlewares"
	"randevu.link/models"
	"randevu.link/pkg/flashmessages"
	"randevu.link/pkg/queryparams"
	"randevu.link/pkg/renderer"
	"randevu.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const unitDashboardPath = "/birim"

// UnitAppointmentHandler birim yetkilisinin BRM randevularını yönettiği ekran.
type UnitAppointmentHandler struct {
	service services.IAppointmentService
}

func NewUnitAppointmentHandler(service services.IAppointmentService) *UnitAppointmentHandler {
	return &UnitAppointmentHandler{service: service}
}

// ListAppointments özet kartları ve durum sekmeli liste tek sayfada.
func (h *UnitAppointmentHandler) ListAppointments(c *fiber.Ctx) error {
	params := queryparams.DefaultListParams("created_at")
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("Dashboard - liste parametreleri okunamadı", zap.Error(err))
	}
	params.Validate()

	ctx := c.UserContext()
	actor := middlewares.ActorFromCtx(c)
	renderData := fiber.Map{
		"Title":  "Birim Randevuları",
		"Params": params,
	}

	result, err := h.service.ListForActor(ctx, actor, params)
	if err != nil {
		configslog.Log.Error("Dashboard - ListAppointments Error", zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "Randevular listelenirken hata oluştu."
		result = &queryparams.PaginatedResult{Data: []models.Appointment{}, Meta: queryparams.PaginationMeta{}}
	}
	counts, err := h.service.StatusCounts(ctx, actor)
	if err != nil {
		configslog.Log.Error("Dashboard - StatusCounts Error", zap.Error(err))
	}
	dashboard, err := h.service.StaffDashboard(ctx, actor)
	if err != nil {
		dashboard = &services.StaffDashboard{}
	}

	status, _ := models.ParseStatus(params.Status)
	renderData["Result"] = result
	renderData["Tabs"] = models.StatusTabs(counts, params.Status)
	renderData["EmptyText"] = status.EmptyText()
	renderData["Dashboard"] = dashboard
	return renderer.Render(c, "dashboard/unit_appointments", "layouts/panel", renderData, http.StatusOK)
}

func (h *UnitAppointmentHandler) Transition(action services.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := h.service.Apply(c.UserContext(), middlewares.ActorFromCtx(c), action, id); err != nil {
			if !errors.Is(err, services.ErrInvalidTransition) && !errors.Is(err, services.ErrAppointmentNotFound) {
				configslog.Log.Error("Dashboard - Transition Error",
					zap.String("id", id), zap.String("action", string(action)), zap.Error(err))
			}
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, services.ActionErrorMessage(err))
			return c.Redirect(unitDashboardPath, fiber.StatusSeeOther)
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, action.SuccessMessage())
		return c.Redirect(unitDashboardPath, fiber.StatusSeeOther)
	}
}
