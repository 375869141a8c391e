package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"taskhive-backend/internal/domain"
	"taskhive-backend/internal/repository"
)

type invitationRepository struct {
	db *sql.DB
}

func NewInvitationRepository(db *sql.DB) repository.InvitationRepository {
	return &invitationRepository{db: db}
}

func (r *invitationRepository) Create(ctx context.Context, inv *domain.Invitation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create invitation: %w", err)
	}
	defer tx.Rollback()

	// Supersede: at most one pending invitation per (org, email).
	_, err = tx.ExecContext(ctx,
		`UPDATE invitations SET status = $1 WHERE org_id = $2 AND email = $3 AND status = $4`,
		domain.InvitationStatusCanceled, inv.OrgID, inv.Email, domain.InvitationStatusPending)
	if err != nil {
		return err
	}

	inv.CreatedOn = time.Now().UTC()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO invitations (id, org_id, email, role, status, inviter_id, expires_on, created_on)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		inv.ID, inv.OrgID, inv.Email, inv.Role, inv.Status, inv.InviterID, inv.ExpiresOn, inv.CreatedOn)
	if err != nil {
		return uniqueViolation(err)
	}

	return tx.Commit()
}

func (r *invitationRepository) GetByID(ctx context.Context, id string) (*domain.Invitation, error) {
	inv := &domain.Invitation{}
	query := `SELECT id, org_id, email, role, status, inviter_id, expires_on, created_on FROM invitations WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&inv.ID, &inv.OrgID, &inv.Email, &inv.Role, &inv.Status, &inv.InviterID, &inv.ExpiresOn, &inv.CreatedOn)
	if err != nil {
		return nil, notFound(err)
	}
	return inv, nil
}

func (r *invitationRepository) ListPendingByOrg(ctx context.Context, orgID string, now time.Time) ([]domain.Invitation, error) {
	query := `SELECT id, org_id, email, role, status, inviter_id, expires_on, created_on
	          FROM invitations
	          WHERE org_id = $1 AND status = $2 AND expires_on > $3
	          ORDER BY created_on ASC`
	rows, err := r.db.QueryContext(ctx, query, orgID, domain.InvitationStatusPending, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invs []domain.Invitation
	for rows.Next() {
		var inv domain.Invitation
		if err := rows.Scan(&inv.ID, &inv.OrgID, &inv.Email, &inv.Role, &inv.Status, &inv.InviterID, &inv.ExpiresOn, &inv.CreatedOn); err != nil {
			return nil, err
		}
		invs = append(invs, inv)
	}
	return invs, rows.Err()
}

func (r *invitationRepository) UpdateStatus(ctx context.Context, id string, status domain.InvitationStatus) error {
	query := `UPDATE invitations SET status = $1 WHERE id = $2`
	res, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *invitationRepository) Accept(ctx context.Context, inv *domain.Invitation, m *domain.Membership) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin accept invitation: %w", err)
	}
	defer tx.Rollback()

	// The membership insert tolerates an existing row so a retried
	// accept cannot duplicate the membership.
	m.CreatedOn = time.Now().UTC()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO memberships (id, org_id, user_id, role, created_on) VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (org_id, user_id) DO NOTHING`,
		m.ID, m.OrgID, m.UserID, m.Role, m.CreatedOn)
	if err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE invitations SET status = $1 WHERE id = $2 AND status = $3`,
		domain.InvitationStatusAccepted, inv.ID, domain.InvitationStatusPending)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrAlreadyProcessed
	}

	return tx.Commit()
}

func (r *invitationRepository) MarkExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `UPDATE invitations SET status = $1 WHERE status = $2 AND expires_on < $3`
	res, err := r.db.ExecContext(ctx, query, domain.InvitationStatusExpired, domain.InvitationStatusPending, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
