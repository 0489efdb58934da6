package handlers

import (
	"errors"
	"time"

	"randevu.link/configs/configslog"
	"randevu.link/pkg/filter"
	"randevu.link/pkg/flashmessages"
	"randevu.link/pkg/renderer"
	"randevu.link/services"
	"randevu.link/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AcademicHandler akademisyen listesi, filtre parçası ve randevu devri.
type AcademicHandler struct {
	catalog  services.ICatalogService
	debounce time.Duration
}

func NewAcademicHandler(catalog services.ICatalogService, debounce time.Duration) *AcademicHandler {
	return &AcademicHandler{catalog: catalog, debounce: debounce}
}

func (h *AcademicHandler) results(c *fiber.Ctx) (fiber.Map, error) {
	var criteria filter.AcademicCriteria
	if err := c.QueryParser(&criteria); err != nil {
		configslog.Log.Warn("Akademisyen filtre parametreleri okunamadı", zap.Error(err))
	}
	result, err := h.catalog.FilterAcademics(c.UserContext(), criteria)
	if err != nil {
		return nil, err
	}
	return fiber.Map{
		"Criteria": criteria,
		"Result":   result,
	}, nil
}

// ListAcademics filtre kontrolleri ve ilk sonuçlarla tam sayfa.
func (h *AcademicHandler) ListAcademics(c *fiber.Ctx) error {
	data, err := h.results(c)
	if err != nil {
		return err
	}
	ctx := c.UserContext()
	departments, err := h.catalog.Departments(ctx)
	if err != nil {
		configslog.Log.Error("Bölümler okunamadı", zap.Error(err))
	}
	faculties, err := h.catalog.Faculties(ctx)
	if err != nil {
		configslog.Log.Error("Fakülteler okunamadı", zap.Error(err))
	}

	data["Title"] = "Akademisyenler"
	data["Departments"] = departments
	data["Faculties"] = faculties
	data["AllDepartments"] = filter.AllDepartments
	data["DebounceMs"] = h.debounce.Milliseconds()
	return renderer.Render(c, "public/academics", "layouts/main", data)
}

// AcademicResults yalnızca sonuç listesini döner; sayfa betiği bekleme süresinden sonra çağırır.
func (h *AcademicHandler) AcademicResults(c *fiber.Ctx) error {
	data, err := h.results(c)
	if err != nil {
		return err
	}
	return renderer.RenderPartial(c, "partials/academic_results", data)
}

// BookAcademic seçilen akademisyeni session'a bırakıp sihirbaza yönlendirir.
func (h *AcademicHandler) BookAcademic(c *fiber.Ctx) error {
	academic, err := h.catalog.ResolveAcademic(c.UserContext(), c.Params("slug"))
	if err != nil {
		if errors.Is(err, services.ErrAcademicNotFound) {
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Akademisyen bulunamadı.")
			return c.Redirect("/akademisyenler", fiber.StatusSeeOther)
		}
		return err
	}

	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	sess.Set(utils.SelectedAcademicKey, academic.Slug)
	if err := sess.Save(); err != nil {
		configslog.Log.Error("Akademisyen seçimi session'a yazılamadı", zap.String("slug", academic.Slug), zap.Error(err))
		return err
	}
	return c.Redirect("/randevu-al", fiber.StatusSeeOther)
}
