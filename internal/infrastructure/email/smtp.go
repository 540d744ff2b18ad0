package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"helpdesk/internal/shared/config"
)

type SMTPNotifier struct {
	cfg    *config.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPNotifier(cfg *config.EmailConfig) *SMTPNotifier {
	return &SMTPNotifier{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
	}
}

// NotifyAssignment emails the assignee about a newly assigned ticket.
func (s *SMTPNotifier) NotifyAssignment(to string, ticketID uint, title, priority string) error {
	subject := fmt.Sprintf("New ticket assigned: #%d %s", ticketID, title)
	body := fmt.Sprintf(`A new ticket has been assigned to you.

Ticket:   #%d
Title:    %s
Priority: %s

Sign in to the helpdesk to view it.
`, ticketID, title, priority)

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", s.cfg.FromAddress, s.cfg.FromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send assignment email: %w", err)
	}
	return nil
}
