package wizard

import "strings"

// WizardError sihirbazın sabit hataları.
type WizardError string

func (e WizardError) Error() string { return string(e) }

const (
	ErrDateUnavailable WizardError = "seçilen tarih randevuya uygun değil"
	ErrTimeUnavailable WizardError = "seçilen saat randevuya uygun değil"
)

// ValidationError gönderimde eksik seçimlerin mesajları.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, " ")
}
