package handlers

import (
	"strings"

	"randevu.link/configs/configslog"
	"randevu.link/pkg/flashmessages"
	"randevu.link/pkg/renderer"
	"randevu.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const msgSearchTermRequired = "Lütfen bir arama terimi girin."

// HomeHandler ana sayfa ve genel arama.
type HomeHandler struct {
	catalog services.ICatalogService
	teaser  services.ITeaserService
}

func NewHomeHandler(catalog services.ICatalogService, teaser services.ITeaserService) *HomeHandler {
	return &HomeHandler{catalog: catalog, teaser: teaser}
}

// Home duyuru özetini akıştan çeker; akış hatası sayfayı düşürmez.
func (h *HomeHandler) Home(c *fiber.Ctx) error {
	units, err := h.catalog.Units(c.UserContext())
	if err != nil {
		configslog.Log.Error("Birimler okunamadı", zap.Error(err))
	}
	return renderer.Render(c, "public/home", "layouts/main", fiber.Map{
		"Title":  "Ana Sayfa",
		"Teaser": h.teaser.Load(c.UserContext()),
		"Units":  units,
	})
}

// Search boş terimde ana sayfaya döner.
func (h *HomeHandler) Search(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, msgSearchTermRequired)
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	results, err := h.catalog.Search(c.UserContext(), query)
	if err != nil {
		configslog.Log.Error("Genel arama başarısız", zap.String("q", query), zap.Error(err))
		return err
	}
	return renderer.Render(c, "public/search", "layouts/main", fiber.Map{
		"Title":        "Arama Sonuçları",
		"Results":      results,
		"EmptySection": services.SearchEmptySection,
	})
}

func (h *HomeHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
