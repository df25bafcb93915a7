package notification

import (
	"fmt"
	"strings"

	"codabs/config"

	"gopkg.in/gomail.v2"
)

// SMTPNotificationService implements NotificationService over SMTP.
type SMTPNotificationService struct {
	dialer   *gomail.Dialer
	from     string
	operator string
}

// NewSMTPNotificationService builds a mailer from the application config.
func NewSMTPNotificationService() *SMTPNotificationService {
	cfg := config.AppConfig
	operator := cfg.OperatorMail
	if operator == "" {
		operator = cfg.SMTPUser
	}
	return &SMTPNotificationService{
		dialer:   gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:     cfg.SMTPUser,
		operator: operator,
	}
}

// Send delivers a message to the given recipient.
func (s *SMTPNotificationService) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from, "Codabs Constructions")
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	m.AddAlternative("text/html", wrapHTML(body))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

// SendToOperator delivers a message to the site operator's inbox.
func (s *SMTPNotificationService) SendToOperator(replyTo, subject, body string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from, "Codabs Constructions")
	m.SetHeader("To", s.operator)
	if replyTo != "" {
		m.SetHeader("Reply-To", replyTo)
	}
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	m.AddAlternative("text/html", wrapHTML(body))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to operator: %w", err)
	}
	return nil
}

// wrapHTML renders the plain-text body inside the branded email shell.
func wrapHTML(body string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="margin:0;font-family:'Segoe UI',Tahoma,Geneva,Verdana,sans-serif;">
  <div style="background:linear-gradient(45deg,#2563eb,#3b82f6);padding:2rem;text-align:center;">
    <div style="color:white;font-size:2rem;font-weight:bold;">Codabs Construction</div>
  </div>
  <div style="padding:0.75rem;background:#f8fafc;">
    <div style="background:white;padding:0.75rem;border-radius:8px;font-size:1.125rem;">%s</div>
  </div>
  <div style="text-align:center;padding:1rem;color:#64748b;font-size:0.9rem;">
    &copy; Codabs Constructions. All rights reserved.
  </div>
</body>
</html>`, strings.ReplaceAll(body, "\n", "<br>"))
}
