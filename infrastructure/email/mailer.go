package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"vibes-backend/domain/model"
	"vibes-backend/domain/repository"
	"vibes-backend/infrastructure/logger"
)

// Config represents SMTP configuration. An empty Host disables sending.
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	From     string
	To       string
}

// Mailer sends contact notifications over SMTP.
type Mailer struct {
	config Config
}

// NewMailer creates an SMTP mailer. With no host configured the mailer is a
// logging no-op, so contact handling works without a mail server.
func NewMailer(config Config) repository.IMailer {
	if config.Port == "" {
		config.Port = "587"
	}
	return &Mailer{config: config}
}

// SendContactNotification mails the site owners about a new submission.
func (m *Mailer) SendContactNotification(ctx context.Context, contact *model.Contact) error {
	if m.config.Host == "" {
		logger.GetLogger().WithField("contactId", contact.ID.Hex()).Debug("Mailer disabled, skipping notification")
		return nil
	}

	var body strings.Builder
	fmt.Fprintf(&body, "From: %s\r\n", m.config.From)
	fmt.Fprintf(&body, "To: %s\r\n", m.config.To)
	fmt.Fprintf(&body, "Subject: [%s] %s\r\n", strings.ToUpper(contact.Priority), contact.Subject)
	body.WriteString("\r\n")
	fmt.Fprintf(&body, "Name: %s\r\nEmail: %s\r\nPhone: %s\r\nSource: %s\r\n\r\n%s\r\n",
		contact.Name, contact.Email, contact.Phone, contact.Source, contact.Message)

	addr := m.config.Host + ":" + m.config.Port
	var auth smtp.Auth
	if m.config.User != "" {
		auth = smtp.PlainAuth("", m.config.User, m.config.Password, m.config.Host)
	}
	if err := smtp.SendMail(addr, auth, m.config.From, strings.Split(m.config.To, ","), []byte(body.String())); err != nil {
		return fmt.Errorf("failed to send notification email: %w", err)
	}
	return nil
}
