package postgres

import (
	"context"
	"database/sql"
	"time"

	"taskhive-backend/internal/domain"
	"taskhive-backend/internal/repository"
)

type emailRecordRepository struct {
	db *sql.DB
}

func NewEmailRecordRepository(db *sql.DB) repository.EmailRecordRepository {
	return &emailRecordRepository{db: db}
}

func (r *emailRecordRepository) Create(ctx context.Context, rec *domain.EmailRecord) error {
	query := `INSERT INTO email_records (id, recipient, subject, html, text, template_type, provider, status, error, triggered_by, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	rec.CreatedOn = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.Recipient, rec.Subject, rec.Html, rec.Text, rec.TemplateType,
		rec.Provider, rec.Status, rec.Error, rec.TriggeredBy, rec.CreatedOn)
	return err
}

func (r *emailRecordRepository) MarkSent(ctx context.Context, id string, completedOn time.Time) error {
	query := `UPDATE email_records SET status = $1, completed_on = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, domain.EmailStatusSent, completedOn, id)
	return err
}

func (r *emailRecordRepository) MarkFailed(ctx context.Context, id string, errMsg string, completedOn time.Time) error {
	query := `UPDATE email_records SET status = $1, error = $2, completed_on = $3 WHERE id = $4`
	_, err := r.db.ExecContext(ctx, query, domain.EmailStatusFailed, errMsg, completedOn, id)
	return err
}

func (r *emailRecordRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM email_records WHERE created_on < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
