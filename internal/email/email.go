// Package email sends optional plain-text notifications to the moderator
// inbox. It is a no-op unless SMTP is configured.
package email

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"faqbot/internal/config"
)

// Service handles sending email notifications.
type Service struct {
	cfg     *config.Config
	enabled bool
}

// NewService creates a new email service.
func NewService(cfg *config.Config) *Service {
	s := &Service{
		cfg:     cfg,
		enabled: cfg.IsEmailEnabled(),
	}

	if s.enabled {
		log.Printf("Email notifications enabled (SMTP: %s:%d)", cfg.SMTPHost, cfg.SMTPPort)
	} else {
		log.Println("Email notifications disabled (SMTP not configured)")
	}

	return s
}

// IsEnabled returns true if email is enabled.
func (s *Service) IsEnabled() bool {
	return s.enabled
}

// Send sends a plain-text email to the moderator inbox.
func (s *Service) Send(subject, body string) error {
	if !s.enabled {
		return nil
	}

	msg := buildMessage(s.cfg.SMTPFrom, s.cfg.ModeratorEmail, subject, body)

	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)
	var auth smtp.Auth
	if s.cfg.SMTPUsername != "" && s.cfg.SMTPPassword != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	}

	return smtp.SendMail(addr, auth, s.cfg.SMTPFrom, []string{s.cfg.ModeratorEmail}, []byte(msg))
}

// SendAsync sends an email asynchronously (fire and forget with logging).
func (s *Service) SendAsync(subject, body string) {
	if !s.enabled {
		return
	}

	go func() {
		if err := s.Send(subject, body); err != nil {
			log.Printf("Failed to send email %q: %v", subject, err)
		}
	}()
}

// buildMessage assembles a minimal RFC 5322 plain-text message.
func buildMessage(from, to, subject, body string) string {
	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s\r\n", from))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)
	msg.WriteString("\r\n")
	return msg.String()
}
