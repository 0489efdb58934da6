package utils

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// SessionStoreKey session deposunun Locals anahtarı.
const SessionStoreKey = "session_store"

// SelectedAcademicKey akademisyen listesindeki "Randevu Al" bağlantısının bıraktığı kimlik.
// Randevu sihirbazı ilk açılışta okur ve siler.
const SelectedAcademicKey = "selected_academic"

var ErrSessionStoreMissing = errors.New("session deposu bulunamadı")

// SessionStart istek için session'ı açar.
func SessionStart(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals(SessionStoreKey).(*session.Store)
	if !ok || store == nil {
		return nil, ErrSessionStoreMissing
	}
	return store.Get(c)
}

// SessionGetJSON session'daki JSON değeri hedefe çözer; anahtar yoksa found=false döner.
func SessionGetJSON(sess *session.Session, key string, target interface{}) (bool, error) {
	raw, ok := sess.Get(key).(string)
	if !ok || raw == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), target); err != nil {
		return false, err
	}
	return true, nil
}

// SessionSetJSON değeri JSON metni olarak session'a yazar (kaydetmez).
func SessionSetJSON(sess *session.Session, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	sess.Set(key, string(data))
	return nil
}
