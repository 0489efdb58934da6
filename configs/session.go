package configs

import (
	"time"

	"randevu.link/configs/configslog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/fiber/v2/utils"
)

// CSRFContextKey şablonların token'ı okuduğu Locals anahtarı.
const CSRFContextKey = "csrf"

// SetupSession sihirbaz durumu ve flash mesajları için cookie tabanlı session deposu kurar.
func SetupSession(cfg *AppConfig) *session.Store {
	store := session.New(session.Config{
		Expiration:     cfg.SessionExpiration,
		KeyLookup:      "cookie:" + cfg.SessionCookieName,
		CookieHTTPOnly: true,
		CookieSecure:   cfg.IsProduction(),
		CookieSameSite: "Lax",
	})
	configslog.SLog.Infof("Session deposu hazır (cookie: %s, süre: %s)", cfg.SessionCookieName, cfg.SessionExpiration)
	return store
}

// SetupCSRF form gönderimlerini session'a bağlı token ile korur.
func SetupCSRF(cfg *AppConfig, store *session.Store) fiber.Handler {
	return csrf.New(csrf.Config{
		KeyLookup:      "form:_csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   cfg.IsProduction(),
		Expiration:     1 * time.Hour,
		KeyGenerator:   utils.UUIDv4,
		ContextKey:     CSRFContextKey,
		Session:        store,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			configslog.SLog.Warnf("CSRF doğrulaması başarısız: %s %s (%v)", c.Method(), c.Path(), err)
			return fiber.NewError(fiber.StatusForbidden, "Form oturumu geçersiz, lütfen sayfayı yenileyip tekrar deneyin.")
		},
	})
}
