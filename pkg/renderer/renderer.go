package renderer

import (
	"net/http"

	"randevu.link/configs"
	"randevu.link/configs/configslog"
	"randevu.link/pkg/flashmessages"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Şablonlarda kullanılan flash anahtarları.
const (
	FlashSuccessKeyView = "Success"
	FlashErrorKeyView   = "Error"
	FlashInfoKeyView    = "Info"
)

// SetFlashMessages flash mesajlarını render verisine ekler; handler'ın kendi hata mesajını ezmez.
func SetFlashMessages(data fiber.Map, messages flashmessages.FlashMessages) {
	if messages.Success != "" {
		data[FlashSuccessKeyView] = messages.Success
	}
	if messages.Error != "" {
		if _, exists := data[FlashErrorKeyView]; !exists {
			data[FlashErrorKeyView] = messages.Error
		}
	}
	if messages.Info != "" {
		data[FlashInfoKeyView] = messages.Info
	}
}

// Render ortak verileri (CSRF token, aktif yol, flash mesajları) ekleyip şablonu işler.
func Render(c *fiber.Ctx, template string, layout string, data fiber.Map, statusCode ...int) error {
	if data == nil {
		data = fiber.Map{}
	}
	if token, ok := c.Locals(configs.CSRFContextKey).(string); ok {
		data["CsrfToken"] = token
	}
	data["CurrentPath"] = c.Path()
	if role, ok := c.Locals("role").(string); ok {
		data["Role"] = role
	}
	if _, ok := data["AppName"]; !ok {
		data["AppName"] = configs.GetConfig().AppName
	}

	messages, err := flashmessages.GetFlashMessages(c)
	if err == nil {
		SetFlashMessages(data, messages)
	}

	status := http.StatusOK
	if len(statusCode) > 0 {
		status = statusCode[0]
	}

	var renderErr error
	if layout == "" {
		renderErr = c.Status(status).Render(template, data)
	} else {
		renderErr = c.Status(status).Render(template, data, layout)
	}
	if renderErr != nil {
		configslog.Log.Error("Şablon işlenemedi",
			zap.String("template", template), zap.String("layout", layout), zap.Error(renderErr))
	}
	return renderErr
}

// RenderPartial layout olmadan bir parça döner (arama sonuçları gibi).
func RenderPartial(c *fiber.Ctx, template string, data fiber.Map) error {
	return Render(c, template, "", data)
}
