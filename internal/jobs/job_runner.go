package jobs

import (
	"context"
	"time"

	"taskhive-backend/internal/logger"
	"taskhive-backend/internal/repository"
)

// JobRunner coordinates the scheduled maintenance jobs.
type JobRunner struct {
	invitations    repository.InvitationRepository
	emailRecords   repository.EmailRecordRepository
	emailRetention time.Duration
}

func NewJobRunner(
	invitations repository.InvitationRepository,
	emailRecords repository.EmailRecordRepository,
	emailRetention time.Duration,
) *JobRunner {
	return &JobRunner{
		invitations:    invitations,
		emailRecords:   emailRecords,
		emailRetention: emailRetention,
	}
}

// runWithRecovery wraps job execution with panic recovery so one bad
// job cannot take the scheduler down.
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// ExpireInvitations stores EXPIRED on pending invitations already past
// their expiry. The read path derives expiry on its own; this sweep
// only keeps stored statuses from drifting ever further from reality.
func (jr *JobRunner) ExpireInvitations() {
	jr.runWithRecovery("ExpireInvitations", func() {
		ctx := context.Background()
		n, err := jr.invitations.MarkExpired(ctx, time.Now().UTC())
		if err != nil {
			logger.Error("Failed to mark expired invitations", "error", err)
			return
		}
		logger.Info("Expired invitations marked", "count", n)
	})
}

// PurgeEmailRecords deletes audit rows past the retention window.
func (jr *JobRunner) PurgeEmailRecords() {
	jr.runWithRecovery("PurgeEmailRecords", func() {
		ctx := context.Background()
		cutoff := time.Now().UTC().Add(-jr.emailRetention)
		n, err := jr.emailRecords.DeleteOlderThan(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to purge email records", "error", err)
			return
		}
		logger.Info("Email records purged", "count", n, "cutoff", cutoff)
	})
}

// RunAll runs every job once, for manual execution.
func (jr *JobRunner) RunAll() {
	jr.ExpireInvitations()
	jr.PurgeEmailRecords()
}
