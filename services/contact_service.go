package services

import (
	"context"
	"net/mail"
	"strings"

	"randevu.link/configs/configslog"
	"randevu.link/models"
	"randevu.link/repositories"

	"go.uber.org/zap"
)

type ContactServiceError string

func (e ContactServiceError) Error() string { return string(e) }

const ErrContactSaveFailed ContactServiceError = "mesajınız kaydedilemedi"

// İletişim formu alan mesajları.
const (
	MsgContactNameRequired    = "Lütfen adınızı girin."
	MsgContactEmailRequired   = "Lütfen e-posta adresinizi girin."
	MsgContactEmailInvalid    = "Lütfen geçerli bir e-posta adresi girin."
	MsgContactSubjectRequired = "Lütfen konu girin."
	MsgContactMessageRequired = "Lütfen mesajınızı girin."
)

// ContactValidationError alan adına göre hata mesajları.
type ContactValidationError struct {
	Fields map[string]string
}

func (e *ContactValidationError) Error() string {
	return "iletişim formu geçersiz"
}

// ValidateContact boşlukları kırpar ve alan bazlı hataları toplar.
func ValidateContact(msg *models.ContactMessage) error {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Subject = strings.TrimSpace(msg.Subject)
	msg.Message = strings.TrimSpace(msg.Message)

	fields := map[string]string{}
	if msg.Name == "" {
		fields["name"] = MsgContactNameRequired
	}
	if msg.Email == "" {
		fields["email"] = MsgContactEmailRequired
	} else if addr, err := mail.ParseAddress(msg.Email); err != nil || addr.Address != msg.Email {
		fields["email"] = MsgContactEmailInvalid
	}
	if msg.Subject == "" {
		fields["subject"] = MsgContactSubjectRequired
	}
	if msg.Message == "" {
		fields["message"] = MsgContactMessageRequired
	}
	if len(fields) > 0 {
		return &ContactValidationError{Fields: fields}
	}
	return nil
}

type IContactService interface {
	Submit(ctx context.Context, msg *models.ContactMessage) error
}

type ContactService struct {
	repo repositories.IContactRepository
}

func NewContactService(repo repositories.IContactRepository) *ContactService {
	return &ContactService{repo: repo}
}

// Submit doğrulama hatasında hiçbir şey kaydedilmez.
func (s *ContactService) Submit(ctx context.Context, msg *models.ContactMessage) error {
	if err := ValidateContact(msg); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return ErrContactSaveFailed
	}
	configslog.Log.Info("İletişim mesajı alındı", zap.String("id", msg.ID.String()), zap.String("subject", msg.Subject))
	return nil
}

var _ IContactService = (*ContactService)(nil)
