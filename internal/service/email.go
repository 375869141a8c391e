package service

import (
	"context"
	"sync"
	"time"

	"taskhive-backend/internal/domain"
	"taskhive-backend/internal/email"
	"taskhive-backend/internal/logger"
	"taskhive-backend/internal/repository"

	"github.com/google/uuid"
)

const sendTimeout = 30 * time.Second

type emailDispatcher struct {
	records  repository.EmailRecordRepository
	provider email.Provider
	wg       sync.WaitGroup
}

func NewEmailDispatcher(records repository.EmailRecordRepository, provider email.Provider) EmailDispatcher {
	return &emailDispatcher{
		records:  records,
		provider: provider,
	}
}

// Dispatch writes the audit record, then performs the delivery attempt
// in the background. The caller's mutation has already committed by the
// time this runs; nothing here can fail it.
func (d *emailDispatcher) Dispatch(ctx context.Context, to, toName string, tpl *email.Template, triggeredBy string) {
	rec := &domain.EmailRecord{
		ID:           uuid.NewString(),
		Recipient:    to,
		Subject:      tpl.Subject,
		Html:         tpl.Html,
		Text:         tpl.Text,
		TemplateType: tpl.TemplateType,
		Provider:     d.provider.Name(),
		Status:       domain.EmailStatusPending,
		TriggeredBy:  triggeredBy,
	}
	if err := d.records.Create(ctx, rec); err != nil {
		// The audit row is best effort like the send itself; still
		// attempt delivery.
		logger.Error("Failed to create email record", "recipient", to, "error", err)
	}

	msg := &email.Message{
		To:      to,
		ToName:  toName,
		Subject: tpl.Subject,
		Html:    tpl.Html,
		Text:    tpl.Text,
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.send(rec.ID, msg, tpl.TemplateType)
	}()
}

func (d *emailDispatcher) send(recordID string, msg *email.Message, templateType string) {
	// Detached from the request context: the send outlives the request.
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	err := d.provider.Send(ctx, msg)
	now := time.Now().UTC()
	if err != nil {
		logger.Error("Failed to send email", "template", templateType, "recipient", msg.To, "error", err)
		if markErr := d.records.MarkFailed(ctx, recordID, err.Error(), now); markErr != nil {
			logger.Error("Failed to mark email record failed", "record_id", recordID, "error", markErr)
		}
		return
	}

	if markErr := d.records.MarkSent(ctx, recordID, now); markErr != nil {
		logger.Error("Failed to mark email record sent", "record_id", recordID, "error", markErr)
	}
	logger.Debug("Email sent", "template", templateType, "recipient", msg.To)
}

func (d *emailDispatcher) Wait() {
	d.wg.Wait()
}
