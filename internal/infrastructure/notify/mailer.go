package notify

import (
	"fmt"

	"github.com/tu-usuario/sastre-api/pkg/config"
	"gopkg.in/gomail.v2"
)

var _ Mailer = (*SMTPMailer)(nil)

// SMTPMailer salida de correo vía SMTP con gomail. Sin host configurado los
// envíos se vuelven no-op silencioso (entornos de desarrollo).
type SMTPMailer struct {
	cfg config.SMTPConfig
}

// NewSMTPMailer construye el mailer con la configuración SMTP.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send compone y envía un correo de texto plano.
func (m *SMTPMailer) Send(to, subject, body string) error {
	if m.cfg.Host == "" {
		return nil
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Pass)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
