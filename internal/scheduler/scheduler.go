package scheduler

import (
	"time"

	"taskhive-backend/internal/config"
	"taskhive-backend/internal/jobs"
	"taskhive-backend/internal/logger"

	"github.com/robfig/cron/v3"
)

// Scheduler manages cron job scheduling.
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

func NewScheduler(jobRunner *jobs.JobRunner, cfg config.SchedulerConfig) *Scheduler {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	s.registerJobs(cfg)
	return s
}

func (s *Scheduler) registerJobs(cfg config.SchedulerConfig) {
	if _, err := s.cron.AddFunc(cfg.ExpireInvitations, s.jobs.ExpireInvitations); err != nil {
		logger.Error("Failed to register ExpireInvitations job", "error", err)
	}
	if _, err := s.cron.AddFunc(cfg.PurgeEmailRecords, s.jobs.PurgeEmailRecords); err != nil {
		logger.Error("Failed to register PurgeEmailRecords job", "error", err)
	}
	logger.Info("Cron jobs registered")
}

// Start begins the cron scheduler.
func (s *Scheduler) Start() {
	logger.Info("Starting cron scheduler...")
	s.cron.Start()
}

// Stop gracefully stops the cron scheduler, waiting for running jobs.
func (s *Scheduler) Stop() {
	logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Cron scheduler stopped")
}
