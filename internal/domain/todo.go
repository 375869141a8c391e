package domain

import "time"

type Todo struct {
	ID        string    `json:"id"`
	OrgID     string    `json:"org_id"`
	CreatedBy string    `json:"created_by"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedOn time.Time `json:"created_on"`
}
