package handlers

import (
	"errors"

	"randevu.link/configs/configslog"
	"randevu.link/pkg/renderer"
	"randevu.link/repositories"
	"randevu.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const ConfirmationPath = "/onay"

const (
	msgStorageFull  = "Randevunuz kaydedilemedi: depolama alanı dolu. Lütfen daha sonra tekrar deneyin."
	msgConfirmError = "Randevunuz kaydedilirken bir hata oluştu. Lütfen daha sonra tekrar deneyin."
)

type ConfirmationHandler struct {
	service services.IAppointmentService
}

func NewConfirmationHandler(service services.IAppointmentService) *ConfirmationHandler {
	return &ConfirmationHandler{service: service}
}

// ShowConfirmation sorgu parametrelerini olduğu gibi gösterir ve beklemede bir kayıt ekler.
// Kayıt başarısız olursa sayfa yine çizilir, üstte engelleyici bir uyarı çıkar.
func (h *ConfirmationHandler) ShowConfirmation(c *fiber.Ctx) error {
	var input services.ConfirmationInput
	if err := c.QueryParser(&input); err != nil {
		configslog.Log.Warn("Onay parametreleri okunamadı", zap.Error(err))
	}

	data := fiber.Map{
		"Title": "Randevu Onayı",
		"Input": input.WithDefaults(),
	}

	appointment, created, err := h.service.Confirm(c.UserContext(), input)
	if err != nil {
		message := msgConfirmError
		if errors.Is(err, repositories.ErrStorageQuotaExceeded) {
			message = msgStorageFull
		}
		configslog.Log.Error("Onay sayfası randevuyu kaydedemedi", zap.String("id", input.ID), zap.Error(err))
		data[renderer.FlashErrorKeyView] = message
		data["Failed"] = true
		return renderer.Render(c, "booking/confirmation", "layouts/main", data, fiber.StatusOK)
	}

	data["Appointment"] = appointment
	data["Created"] = created
	return renderer.Render(c, "booking/confirmation", "layouts/main", data)
}
