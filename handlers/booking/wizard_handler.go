package handlers

import (
	"errors"
	"fmt"
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
	"randevu.link/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/zap"
)

const (
	wizardSessionKey = "wizard"
	WizardPath       = "/randevu-al"
)

// Sihirbaz işlem mesajları.
const (
	msgTypeNotFound     = "Seçilen randevu türü bulunamadı."
	msgAcademicNotFound = "Seçilen akademisyen bulunamadı."
	msgDateUnavailable  = "Geçmiş tarihler ve hafta sonları seçilemez."
	msgTimeUnavailable  = "Seçilen saat uygun değil. Lütfen listeden bir saat seçiniz."
	msgWizardFailed     = "İşleminiz sırasında bir sorun oluştu. Lütfen tekrar deneyin."
)

type WizardHandler struct {
	catalog services.ICatalogService
	now     func() time.Time
}

func NewWizardHandler(catalog services.ICatalogService) *WizardHandler {
	return &WizardHandler{catalog: catalog, now: time.Now}
}

// userError kullanıcıya gösterilecek mesajla sarılmış sihirbaz hatası.
type userError struct {
	message string
	err     error
}

func (e *userError) Error() string { return e.message }
func (e *userError) Unwrap() error { return e.err }

func newUserError(message string, err error) error {
	return &userError{message: message, err: err}
}

func academicOption(a *models.Academic) wizard.AcademicOption {
	return wizard.AcademicOption{Slug: a.Slug, Name: a.FullName(), Department: a.Department}
}

// stateFrom session'daki durumu okur; yoksa ya da bozuksa yeni bir sihirbaz başlatır.
func (h *WizardHandler) stateFrom(sess *session.Session) *wizard.State {
	today := h.now()
	var state wizard.State
	found, err := utils.SessionGetJSON(sess, wizardSessionKey, &state)
	if err != nil {
		configslog.Log.Warn("Sihirbaz durumu okunamadı, sıfırlanıyor", zap.Error(err))
	}
	if !found || err != nil {
		return wizard.New(today)
	}
	state.Normalize(today)
	return &state
}

func saveState(sess *session.Session, state *wizard.State) error {
	if err := utils.SessionSetJSON(sess, wizardSessionKey, state); err != nil {
		return err
	}
	return sess.Save()
}

// slotsFor seçili akademisyenin saatleri; akademisyen yoksa varsayılanlar.
func (h *WizardHandler) slotsFor(c *fiber.Ctx, state *wizard.State) []string {
	if state.Academic == nil {
		return models.DefaultTimeSlots
	}
	academic, err := h.catalog.ResolveAcademic(c.UserContext(), state.Academic.Slug)
	if err != nil {
		return models.DefaultTimeSlots
	}
	return academic.Slots()
}

// ShowWizard sihirbazı mevcut durumuyla çizer. ?academic=<kimlik> ya da session'daki
// devir kaydı varsa sihirbaz o akademisyen seçili olarak yeniden başlar.
func (h *WizardHandler) ShowWizard(c *fiber.Ctx) error {
	ctx := c.UserContext()
	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	state := h.stateFrom(sess)

	slug := c.Query("academic")
	if slug == "" {
		slug, _ = sess.Get(utils.SelectedAcademicKey).(string)
	}
	if slug != "" {
		sess.Delete(utils.SelectedAcademicKey)
		academic, err := h.catalog.ResolveAcademic(ctx, slug)
		if err == nil {
			state = wizard.New(h.now())
			state.Preselect(academicOption(academic))
		} else {
			configslog.Log.Warn("Ön seçim akademisyeni bulunamadı", zap.String("slug", slug), zap.Error(err))
		}
	}
	if err := saveState(sess, state); err != nil {
		configslog.Log.Error("Sihirbaz durumu kaydedilemedi", zap.Error(err))
		return err
	}

	types, err := h.catalog.AppointmentTypes(ctx, false)
	if err != nil {
		configslog.Log.Error("Randevu türleri okunamadı", zap.Error(err))
	}
	academics, err := h.catalog.Academics(ctx)
	if err != nil {
		configslog.Log.Error("Akademisyenler okunamadı", zap.Error(err))
	}

	dateInfo := "Görüşmek istediğiniz tarihi ve saati seçin"
	if state.Academic != nil {
		dateInfo = fmt.Sprintf("%s ile görüşmek istediğiniz tarihi ve saati seçin", state.Academic.Name)
	}
	slotTitle := ""
	if state.Date != nil {
		slotTitle = fmt.Sprintf("%s için Uygun Saatler", state.Date.String())
	}

	return renderer.Render(c, "booking/wizard", "layouts/main", fiber.Map{
		"Title":     "Randevu Al",
		"Wizard":    state,
		"Steps":     state.Indicator(),
		"Types":     types,
		"Academics": academics,
		"Calendar":  state.Calendar(h.now()),
		"Slots":     h.slotsFor(c, state),
		"DateInfo":  dateInfo,
		"SlotTitle": slotTitle,
		"Summary":   state.Summary(),
	})
}

// update durumu değiştirir, kaydeder ve sihirbaza döner. Hata durumunda durum kaydedilmez.
func (h *WizardHandler) update(c *fiber.Ctx, apply func(state *wizard.State) error) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	state := h.stateFrom(sess)

	if applyErr := apply(state); applyErr != nil {
		message := msgWizardFailed
		var uerr *userError
		if errors.As(applyErr, &uerr) {
			message = uerr.message
		} else {
			configslog.Log.Error("Sihirbaz güncellenemedi", zap.String("path", c.Path()), zap.Error(applyErr))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, message)
		return c.Redirect(WizardPath, fiber.StatusSeeOther)
	}

	if err := saveState(sess, state); err != nil {
		configslog.Log.Error("Sihirbaz durumu kaydedilemedi", zap.Error(err))
		return err
	}
	return c.Redirect(WizardPath, fiber.StatusSeeOther)
}

func (h *WizardHandler) SelectType(c *fiber.Ctx) error {
	return h.update(c, func(state *wizard.State) error {
		t, err := h.catalog.GetAppointmentType(c.UserContext(), c.FormValue("type"))
		if err != nil {
			if errors.Is(err, services.ErrTypeNotFound) {
				return newUserError(msgTypeNotFound, err)
			}
			return err
		}
		state.SelectType(wizard.TypeOption{Slug: t.Slug, Name: t.Name, DurationMinutes: t.DurationMinutes})
		return nil
	})
}

func (h *WizardHandler) SelectAcademic(c *fiber.Ctx) error {
	return h.update(c, func(state *wizard.State) error {
		academic, err := h.catalog.ResolveAcademic(c.UserContext(), c.FormValue("academic"))
		if err != nil {
			if errors.Is(err, services.ErrAcademicNotFound) {
				return newUserError(msgAcademicNotFound, err)
			}
			return err
		}
		state.SelectAcademic(academicOption(academic))
		return nil
	})
}

// SelectDate "2023-05-22" biçiminde tarih bekler.
func (h *WizardHandler) SelectDate(c *fiber.Ctx) error {
	return h.update(c, func(state *wizard.State) error {
		date, err := turkishdate.ParseISO(c.FormValue("date"))
		if err != nil {
			return newUserError(msgDateUnavailable, err)
		}
		if err := state.SelectDate(date, h.now()); err != nil {
			return newUserError(msgDateUnavailable, err)
		}
		return nil
	})
}

// SelectTime yalnızca listelenen saatleri kabul eder.
func (h *WizardHandler) SelectTime(c *fiber.Ctx) error {
	return h.update(c, func(state *wizard.State) error {
		slot := strings.TrimSpace(c.FormValue("time"))
		if !slices.Contains(h.slotsFor(c, state), slot) {
			return newUserError(msgTimeUnavailable, wizard.ErrTimeUnavailable)
		}
		return state.SelectTime(slot)
	})
}

// Next ve Prev doğrulama yapmaz; eksik seçimler gönderimde raporlanır.
func (h *WizardHandler) Next(c *fiber.Ctx) error {
	return h.update(c, func(state *wizard.State) error {
		state.Next()
		return nil
	})
}

func (h *WizardHandler) Prev(c *fiber.Ctx) error {
	return h.update(c, func(state *wizard.State) error {
		state.Prev()
		return nil
	})
}

func (h *WizardHandler) PrevMonth(c *fiber.Ctx) error {
	return h.update(c, func(state *wizard.State) error {
		state.PrevMonth()
		return nil
	})
}

func (h *WizardHandler) NextMonth(c *fiber.Ctx) error {
	return h.update(c, func(state *wizard.State) error {
		state.NextMonth()
		return nil
	})
}

// Submit seçimler tamamsa sihirbazı temizleyip onay sayfasına yönlendirir.
// Eksik her seçim için ayrı mesaj gösterilir ve hiçbir şey kaydedilmez.
func (h *WizardHandler) Submit(c *fiber.Ctx) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	state := h.stateFrom(sess)
	state.SetNotes(c.FormValue("notes"))
	// session'daki saat akademisyenin güncel saatleri arasında değilse eksik sayılır
	if state.Time != "" && !slices.Contains(h.slotsFor(c, state), state.Time) {
		state.Time = ""
	}

	submission, err := state.Submit(services.NewAppointmentID(models.KindAcademic, h.now()))
	if err != nil {
		var verr *wizard.ValidationError
		if !errors.As(err, &verr) {
			return err
		}
		if err := saveState(sess, state); err != nil {
			return err
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, strings.Join(verr.Messages, "\n"))
		return c.Redirect(WizardPath, fiber.StatusSeeOther)
	}

	sess.Delete(wizardSessionKey)
	if err := sess.Save(); err != nil {
		configslog.Log.Warn("Sihirbaz durumu temizlenemedi", zap.Error(err))
	}

	query := url.Values{}
	query.Set("id", submission.ID)
	query.Set("type", submission.Type)
	query.Set("academic", submission.Academic)
	query.Set("date", submission.Date)
	query.Set("time", submission.Time)
	if submission.Notes != "" {
		query.Set("notes", submission.Notes)
	}
	return c.Redirect(ConfirmationPath+"?"+query.Encode(), fiber.StatusSeeOther)
}
