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

// StudentHandler öğrenci paneli: özet, randevu listesi, detay ve iptal.
type StudentHandler struct {
	service services.IAppointmentService
}

func NewStudentHandler(service services.IAppointmentService) *StudentHandler {
	return &StudentHandler{service: service}
}

func (h *StudentHandler) Home(c *fiber.Ctx) error {
	dashboard, err := h.service.StudentDashboard(c.UserContext())
	renderData := fiber.Map{
		"Title":     "Öğrenci Paneli",
		"Dashboard": dashboard,
	}
	if err != nil {
		configslog.Log.Error("Panel - StudentHome Error", zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "Randevularınız okunurken bir hata oluştu."
		renderData["Dashboard"] = &services.StudentDashboard{}
	}
	return renderer.Render(c, "panel/student/home", "layouts/panel", renderData, http.StatusOK)
}

// ListAppointments ?status= sekmesine göre filtreler; "all" ya da boş değer hepsini gösterir.
func (h *StudentHandler) ListAppointments(c *fiber.Ctx) error {
	return listAppointments(c, h.service, "Randevularım", "panel/student/appointments")
}

func (h *StudentHandler) ShowAppointment(c *fiber.Ctx) error {
	appointment, err := h.service.GetAppointment(c.UserContext(), middlewares.ActorFromCtx(c), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrAppointmentNotFound) {
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Randevu bulunamadı.")
		} else {
			configslog.Log.Error("Panel - ShowAppointment Error", zap.String("id", c.Params("id")), zap.Error(err))
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Randevu bilgileri alınırken bir hata oluştu.")
		}
		return c.Redirect("/ogrenci/randevular", fiber.StatusSeeOther)
	}
	return renderer.Render(c, "panel/student/appointment", "layouts/panel", fiber.Map{
		"Title":       "Randevu Detayı",
		"Appointment": appointment,
		"CanCancel":   !appointment.Status.IsFinal(),
	})
}

func (h *StudentHandler) CancelAppointment(c *fiber.Ctx) error {
	return applyAction(c, h.service, services.ActionCancel, "/ogrenci/randevular")
}

// listAppointments akademisyen ve öğrenci listelerinin ortak gövdesi; aktör rol ara katmanından gelir.
func listAppointments(c *fiber.Ctx, service services.IAppointmentService, title, view string) error {
	actor := middlewares.ActorFromCtx(c)
	params := queryparams.DefaultListParams("created_at")
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("Liste parametreleri okunamadı", zap.Error(err))
	}
	params.Validate()

	ctx := c.UserContext()
	result, err := service.ListForActor(ctx, actor, params)
	counts, countErr := service.StatusCounts(ctx, actor)
	if err == nil {
		err = countErr
	}

	status, _ := models.ParseStatus(params.Status)
	renderData := fiber.Map{
		"Title":     title,
		"Result":    result,
		"Params":    params,
		"Tabs":      models.StatusTabs(counts, params.Status),
		"EmptyText": status.EmptyText(),
	}
	if err != nil {
		configslog.Log.Error("Panel - ListAppointments Error", zap.String("actor", string(actor)), zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "Randevular listelenirken bir hata oluştu."
		renderData["Result"] = &queryparams.PaginatedResult{Data: []models.Appointment{}, Meta: queryparams.PaginationMeta{}}
	}
	return renderer.Render(c, view, "layouts/panel", renderData, http.StatusOK)
}

// applyAction durum geçişini uygular ve sonucu flash mesajıyla bildirir.
func applyAction(c *fiber.Ctx, service services.IAppointmentService, action services.Action, redirectPath string) error {
	id := c.Params("id")
	if _, err := service.Apply(c.UserContext(), middlewares.ActorFromCtx(c), action, id); err != nil {
		if !errors.Is(err, services.ErrInvalidTransition) && !errors.Is(err, services.ErrAppointmentNotFound) {
			configslog.Log.Error("Panel - ApplyAction Error",
				zap.String("id", id), zap.String("action", string(action)), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, services.ActionErrorMessage(err))
		return c.Redirect(redirectPath, fiber.StatusSeeOther)
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, action.SuccessMessage())
	return c.Redirect(redirectPath, fiber.StatusSeeOther)
}
