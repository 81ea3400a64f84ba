package service

import (
	"context"
)

// SendReminders emails every owner of an unpaid payment due within the configured
// number of days. Individual send failures are logged and skipped.
func (s *Service) SendReminders(ctx context.Context) (int, error) {
	if s.mailer == nil {
		s.log.Debug("Mail disabled, skipping payment reminders")
		return 0, nil
	}
	now := s.now()
	due, err := s.store.DueReminders(ctx, now, now.AddDate(0, 0, s.config.ReminderDays))
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, r := range due {
		name := r.UserName
		if name == "" {
			name = r.Email
		}
		if err := s.mailer.SendPaymentReminder(r.Email, name, r.Payment, now); err != nil {
			s.log.Errorf("Failed to remind %s about payment %s: %v", r.Email, r.Payment.ID, err)
			continue
		}
		sent++
	}
	s.log.Infof("Payment reminders sent: %d of %d", sent, len(due))
	return sent, nil
}
