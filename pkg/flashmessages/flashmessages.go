package flashmessages

import (
	"randevu.link/configs/configslog"
	"randevu.link/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	FlashSuccessKey = "flash_success"
	FlashErrorKey   = "flash_error"
	FlashInfoKey    = "flash_info"
	flashFormKey    = "flash_form"
)

// FlashMessages bir sonraki sayfada bir kez gösterilecek mesajlar.
type FlashMessages struct {
	Success string
	Error   string
	Info    string
}

// SetFlashMessage mesajı session'a yazar; yönlendirme sonrası GetFlashMessages ile okunur.
func SetFlashMessage(c *fiber.Ctx, key, message string) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		configslog.Log.Warn("Flash mesajı için session açılamadı", zap.String("key", key), zap.Error(err))
		return err
	}
	sess.Set(key, message)
	return sess.Save()
}

// GetFlashMessages mesajları okur ve session'dan siler.
func GetFlashMessages(c *fiber.Ctx) (FlashMessages, error) {
	var messages FlashMessages
	sess, err := utils.SessionStart(c)
	if err != nil {
		return messages, err
	}

	changed := false
	take := func(key string) string {
		value, ok := sess.Get(key).(string)
		if !ok {
			return ""
		}
		sess.Delete(key)
		changed = true
		return value
	}
	messages.Success = take(FlashSuccessKey)
	messages.Error = take(FlashErrorKey)
	messages.Info = take(FlashInfoKey)

	if changed {
		if err := sess.Save(); err != nil {
			configslog.Log.Warn("Flash mesajları temizlenemedi", zap.Error(err))
			return messages, err
		}
	}
	return messages, nil
}

// SetFlashFormData hatalı form verisini bir sonraki istekte yeniden doldurmak için saklar.
func SetFlashFormData(c *fiber.Ctx, data interface{}) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	if err := utils.SessionSetJSON(sess, flashFormKey, data); err != nil {
		return err
	}
	return sess.Save()
}

// GetFlashFormData saklanan form verisini map olarak döner ve siler.
func GetFlashFormData(c *fiber.Ctx) map[string]interface{} {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return nil
	}
	data := map[string]interface{}{}
	found, err := utils.SessionGetJSON(sess, flashFormKey, &data)
	if !found || err != nil {
		return nil
	}
	sess.Delete(flashFormKey)
	_ = sess.Save()
	return data
}
