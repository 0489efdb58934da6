package handlers

import (
	"errors"
	"net/url"
	"slices"
	"strings"
	"time"

	"randevu.link/configs/configslog"
	"randevu.link/models"
	"randevu.link/pkg/flashmessages"
	"randevu.link/pkg/renderer"
	"randevu.link/pkg/turkishdate"
	"randevu.link/pkg/wizard"
	"randevu.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// UnitBookingForm birim randevu formu.
type UnitBookingForm struct {
	Type  string `form:"type" json:"type"`
	Date  string `form:"date" json:"date"`
	Time  string `form:"time" json:"time"`
	Notes string `form:"notes" json:"notes"`
}

type UnitHandler struct {
	catalog services.ICatalogService
	now     func() time.Time
}

func NewUnitHandler(catalog services.ICatalogService) *UnitHandler {
	return &UnitHandler{catalog: catalog, now: time.Now}
}

func (h *UnitHandler) ListUnits(c *fiber.Ctx) error {
	units, err := h.catalog.Units(c.UserContext())
	if err != nil {
		configslog.Log.Error("Birimler okunamadı", zap.Error(err))
		return err
	}
	return renderer.Render(c, "public/units", "layouts/main", fiber.Map{
		"Title": "Birimler",
		"Units": units,
	})
}

func (h *UnitHandler) unit(c *fiber.Ctx) (*models.Unit, error) {
	unit, err := h.catalog.GetUnit(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrUnitNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Birim bulunamadı")
		}
		return nil, err
	}
	return unit, nil
}

func (h *UnitHandler) ShowUnitBooking(c *fiber.Ctx) error {
	unit, err := h.unit(c)
	if err != nil {
		return err
	}
	types, err := h.catalog.AppointmentTypes(c.UserContext(), true)
	if err != nil {
		configslog.Log.Error("Birim randevu türleri okunamadı", zap.Error(err))
	}
	return renderer.Render(c, "public/unit_booking", "layouts/main", fiber.Map{
		"Title":    unit.Name + " Randevusu",
		"Unit":     unit,
		"Types":    types,
		"Slots":    unit.Slots(),
		"MinDate":  turkishdate.FromTime(h.now()).ISO(),
		"FormData": flashmessages.GetFlashFormData(c),
	})
}

// validate sihirbazla aynı kurallar: geçmiş gün ve hafta sonu seçilemez, saat listeden olmalı.
func (h *UnitHandler) validate(c *fiber.Ctx, unit *models.Unit, form UnitBookingForm) (*models.AppointmentType, *turkishdate.Date, []string) {
	var messages []string
	var appointmentType *models.AppointmentType
	if form.Type == "" {
		messages = append(messages, wizard.MsgTypeRequired)
	} else if t, err := h.catalog.GetAppointmentType(c.UserContext(), form.Type); err != nil {
		messages = append(messages, wizard.MsgTypeRequired)
	} else {
		appointmentType = t
	}

	var date *turkishdate.Date
	if form.Date == "" {
		messages = append(messages, wizard.MsgDateRequired)
	} else if d, err := turkishdate.ParseISO(form.Date); err != nil || d.Before(turkishdate.FromTime(h.now())) || d.IsWeekend() {
		messages = append(messages, "Geçmiş tarihler ve hafta sonları seçilemez.")
	} else {
		date = &d
	}

	if form.Time == "" {
		messages = append(messages, wizard.MsgTimeRequired)
	} else if !slices.Contains(unit.Slots(), form.Time) {
		messages = append(messages, "Seçilen saat uygun değil. Lütfen listeden bir saat seçiniz.")
	}
	return appointmentType, date, messages
}

// SubmitUnitBooking geçerli formu BRM kimliğiyle onay sayfasına taşır.
func (h *UnitHandler) SubmitUnitBooking(c *fiber.Ctx) error {
	unit, err := h.unit(c)
	if err != nil {
		return err
	}
	formPath := "/birimler/" + unit.Slug + "/randevu"

	var form UnitBookingForm
	if err := c.BodyParser(&form); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz form verisi.")
		return c.Redirect(formPath, fiber.StatusSeeOther)
	}
	form.Notes = strings.TrimSpace(form.Notes)

	appointmentType, date, messages := h.validate(c, unit, form)
	if len(messages) > 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, strings.Join(messages, "\n"))
		_ = flashmessages.SetFlashFormData(c, form)
		return c.Redirect(formPath, fiber.StatusSeeOther)
	}

	query := url.Values{}
	query.Set("id", services.NewAppointmentID(models.KindUnit, h.now()))
	query.Set("type", appointmentType.Label())
	query.Set("birim", unit.Name)
	query.Set("date", date.String())
	query.Set("time", form.Time)
	if form.Notes != "" {
		query.Set("notes", form.Notes)
	}
	return c.Redirect("/onay?"+query.Encode(), fiber.StatusSeeOther)
}
