package domain

import "time"

type EmailStatus string

const (
	EmailStatusPending EmailStatus = "PENDING"
	EmailStatusSent    EmailStatus = "SENT"
	EmailStatusFailed  EmailStatus = "FAILED"
)

// EmailRecord is one row of the outbound email audit trail. Rows are
// append-only; only the delivery status and error are updated after the
// send attempt completes.
type EmailRecord struct {
	ID           string      `json:"id"`
	Recipient    string      `json:"recipient"`
	Subject      string      `json:"subject"`
	Html         string      `json:"html"`
	Text         string      `json:"text"`
	TemplateType string      `json:"template_type"`
	Provider     string      `json:"provider"`
	Status       EmailStatus `json:"status"`
	Error        string      `json:"error,omitempty"`
	TriggeredBy  string      `json:"triggered_by,omitempty"`
	CreatedOn    time.Time   `json:"created_on"`
	CompletedOn  *time.Time  `json:"completed_on,omitempty"`
}
