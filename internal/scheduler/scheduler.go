// Package scheduler runs the periodic background jobs of the planner.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/Dan9191/finance-planner/internal/config"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const jobTimeout = 5 * time.Minute

// Jobs is the work the scheduler triggers
type Jobs interface {
	CleanupSessions(ctx context.Context) (int64, error)
	SendReminders(ctx context.Context) (int, error)
}

type Scheduler struct {
	cron *cron.Cron
	jobs Jobs
	log  *logrus.Logger
}

// New registers the session cleanup and payment reminder jobs on their configured schedules
func New(cfg *config.Config, jobs Jobs, log *logrus.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron: cron.New(cron.WithLogger(cronLogger{log}), cron.WithChain(cron.Recover(cronLogger{log}))),
		jobs: jobs,
		log:  log,
	}
	if _, err := s.cron.AddFunc(cfg.SessionCleanupSchedule, s.cleanupSessions); err != nil {
		return nil, fmt.Errorf("failed to schedule session cleanup %q: %w", cfg.SessionCleanupSchedule, err)
	}
	if _, err := s.cron.AddFunc(cfg.ReminderSchedule, s.sendReminders); err != nil {
		return nil, fmt.Errorf("failed to schedule payment reminders %q: %w", cfg.ReminderSchedule, err)
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Infof("Scheduler started with %d jobs", len(s.cron.Entries()))
}

// Stop prevents new runs and waits for running jobs to finish or ctx to expire
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.log.Warn("Scheduler stop timed out")
	}
}

func (s *Scheduler) cleanupSessions() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()
	if _, err := s.jobs.CleanupSessions(ctx); err != nil {
		s.log.Errorf("Session cleanup failed: %v", err)
	}
}

func (s *Scheduler) sendReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()
	if _, err := s.jobs.SendReminders(ctx); err != nil {
		s.log.Errorf("Payment reminders failed: %v", err)
	}
}

// cronLogger adapts logrus to cron.Logger
type cronLogger struct {
	log *logrus.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.WithFields(fields(keysAndValues)).Debug(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.WithFields(fields(keysAndValues)).WithError(err).Error(msg)
}

func fields(kv []interface{}) logrus.Fields {
	f := logrus.Fields{}
	for i := 0; i+1 < len(kv); i += 2 {
		f[fmt.Sprint(kv[i])] = kv[i+1]
	}
	return f
}
