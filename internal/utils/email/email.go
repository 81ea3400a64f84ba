package email

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/Dan9191/finance-planner/internal/config"
	"github.com/Dan9191/finance-planner/internal/models"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
	send   func(e *email.Email, addr string, auth smtp.Auth) error
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
		send: func(e *email.Email, addr string, auth smtp.Auth) error {
			return e.Send(addr, auth)
		},
	}
}

// SendPaymentReminder reminds a user about an unpaid payment
func (s *Sender) SendPaymentReminder(to, username string, p models.Payment, now time.Time) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}

	isOverdue := p.PaymentDate.Before(now)
	if isOverdue {
		e.Subject = fmt.Sprintf("Overdue payment: %s", p.Category)
	} else {
		e.Subject = fmt.Sprintf("Upcoming payment: %s", p.Category)
	}
	e.Text = []byte(reminderBody(username, p, isOverdue))

	return s.deliver(e, to)
}

// SendPasswordReset sends a password reset token
func (s *Sender) SendPasswordReset(to, username, token string) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = "Password reset"

	body := fmt.Sprintf("Hello %s,\n\n", greetingName(username, to))
	body += "A password reset was requested for your account.\n" +
		"Use the token below to set a new password. If you did not ask for this, ignore this message.\n\n"
	body += token + "\n"
	body += "\nBest regards,\nFinance Planner"
	e.Text = []byte(body)

	return s.deliver(e, to)
}

func (s *Sender) deliver(e *email.Email, to string) error {
	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	var auth smtp.Auth
	if s.cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	}
	if err := s.send(e, addr, auth); err != nil {
		s.logger.Errorf("Failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}

func reminderBody(username string, p models.Payment, isOverdue bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", username)
	if isOverdue {
		fmt.Fprintf(&b, "Your payment \"%s\" of %.2f was due on %s and is not marked as paid.\n",
			p.Category, p.Amount, p.PaymentDate.Format("2006-01-02"))
	} else {
		fmt.Fprintf(&b, "This is a reminder that your payment \"%s\" of %.2f is due on %s.\n",
			p.Category, p.Amount, p.PaymentDate.Format("2006-01-02"))
	}
	b.WriteString("\nBest regards,\nFinance Planner")
	return b.String()
}

func greetingName(username, emailAddr string) string {
	if username != "" {
		return username
	}
	return emailAddr
}
