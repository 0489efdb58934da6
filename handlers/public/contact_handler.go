package handlers

import (
	"errors"

	"randevu.link/models"
	"randevu.link/pkg/flashmessages"
	"randevu.link/pkg/renderer"
	"randevu.link/services"

	"github.com/gofiber/fiber/v2"
)

const contactPath = "/iletisim"

type ContactHandler struct {
	service services.IContactService
}

func NewContactHandler(service services.IContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// contactFormData hatalı formu alan mesajlarıyla birlikte yeniden doldurmak için.
type contactFormData struct {
	Name    string            `json:"name"`
	Email   string            `json:"email"`
	Subject string            `json:"subject"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

func (h *ContactHandler) ShowContact(c *fiber.Ctx) error {
	return renderer.Render(c, "public/contact", "layouts/main", fiber.Map{
		"Title":    "İletişim",
		"FormData": flashmessages.GetFlashFormData(c),
	})
}

func (h *ContactHandler) SubmitContact(c *fiber.Ctx) error {
	var msg models.ContactMessage
	if err := c.BodyParser(&msg); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz form verisi.")
		return c.Redirect(contactPath, fiber.StatusSeeOther)
	}

	err := h.service.Submit(c.UserContext(), &msg)
	var verr *services.ContactValidationError
	switch {
	case errors.As(err, &verr):
		_ = flashmessages.SetFlashFormData(c, contactFormData{
			Name: msg.Name, Email: msg.Email, Subject: msg.Subject, Message: msg.Message,
			Errors: verr.Fields,
		})
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Lütfen formdaki hataları düzeltin.")
	case err != nil:
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Mesajınız gönderilemedi. Lütfen daha sonra tekrar deneyin.")
	default:
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Mesajınız başarıyla gönderildi. En kısa sürede size dönüş yapacağız.")
	}
	return c.Redirect(contactPath, fiber.StatusSeeOther)
}
