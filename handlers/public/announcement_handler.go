package handlers

import (
	"time"

	"randevu.link/configs/configslog"
	"randevu.link/models"
	"randevu.link/pkg/filter"
	"randevu.link/pkg/renderer"
	"randevu.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AnnouncementHandler struct {
	catalog  services.ICatalogService
	debounce time.Duration
}

func NewAnnouncementHandler(catalog services.ICatalogService, debounce time.Duration) *AnnouncementHandler {
	return &AnnouncementHandler{catalog: catalog, debounce: debounce}
}

func (h *AnnouncementHandler) results(c *fiber.Ctx) (fiber.Map, error) {
	var criteria filter.AnnouncementCriteria
	if err := c.QueryParser(&criteria); err != nil {
		configslog.Log.Warn("Duyuru filtre parametreleri okunamadı", zap.Error(err))
	}
	result, err := h.catalog.FilterAnnouncements(c.UserContext(), criteria)
	if err != nil {
		return nil, err
	}
	return fiber.Map{"Criteria": criteria, "Result": result}, nil
}

func (h *AnnouncementHandler) ListAnnouncements(c *fiber.Ctx) error {
	data, err := h.results(c)
	if err != nil {
		return err
	}
	departments, err := h.catalog.Departments(c.UserContext())
	if err != nil {
		configslog.Log.Error("Bölümler okunamadı", zap.Error(err))
	}
	data["Title"] = "Duyurular"
	data["Categories"] = models.AnnouncementCategories
	data["Departments"] = departments
	data["DebounceMs"] = h.debounce.Milliseconds()
	return renderer.Render(c, "public/announcements", "layouts/main", data)
}

func (h *AnnouncementHandler) AnnouncementResults(c *fiber.Ctx) error {
	data, err := h.results(c)
	if err != nil {
		return err
	}
	return renderer.RenderPartial(c, "partials/announcement_results", data)
}

// Feed ana sayfa özetinin okuduğu JSON akışı, en yeni duyuru önce.
func (h *AnnouncementHandler) Feed(c *fiber.Ctx) error {
	announcements, err := h.catalog.LatestAnnouncements(c.UserContext(), 0)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Duyurular okunamadı"})
	}
	items := make([]services.FeedItem, 0, len(announcements))
	for _, a := range announcements {
		items = append(items, services.NewFeedItem(a))
	}
	return c.JSON(items)
}
