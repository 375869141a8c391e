package postgres

import (
	"context"
	"database/sql"

	"taskhive-backend/internal/domain"
	"taskhive-backend/internal/repository"
)

type membershipRepository struct {
	db *sql.DB
}

func NewMembershipRepository(db *sql.DB) repository.MembershipRepository {
	return &membershipRepository{db: db}
}

func (r *membershipRepository) Get(ctx context.Context, userID, orgID string) (*domain.Membership, error) {
	m := &domain.Membership{}
	query := `SELECT id, org_id, user_id, role, created_on FROM memberships WHERE user_id = $1 AND org_id = $2`
	err := r.db.QueryRowContext(ctx, query, userID, orgID).
		Scan(&m.ID, &m.OrgID, &m.UserID, &m.Role, &m.CreatedOn)
	if err != nil {
		return nil, notFound(err)
	}
	return m, nil
}

func (r *membershipRepository) ListOrgsForUser(ctx context.Context, userID string) ([]domain.Organization, error) {
	query := `SELECT o.id, o.name, o.slug, o.logo, o.created_on
	          FROM organizations o
	          JOIN memberships m ON m.org_id = o.id
	          WHERE m.user_id = $1
	          ORDER BY m.created_on ASC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orgs []domain.Organization
	for rows.Next() {
		var o domain.Organization
		if err := rows.Scan(&o.ID, &o.Name, &o.Slug, &o.Logo, &o.CreatedOn); err != nil {
			return nil, err
		}
		orgs = append(orgs, o)
	}
	return orgs, rows.Err()
}

func (r *membershipRepository) ListMembers(ctx context.Context, orgID string) ([]domain.Member, error) {
	query := `SELECT m.id, m.org_id, m.user_id, m.role, m.created_on, u.name, u.email
	          FROM memberships m
	          JOIN users u ON u.id = m.user_id
	          WHERE m.org_id = $1
	          ORDER BY m.created_on ASC`
	rows, err := r.db.QueryContext(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		var m domain.Member
		if err := rows.Scan(&m.ID, &m.OrgID, &m.UserID, &m.Role, &m.CreatedOn, &m.Name, &m.Email); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *membershipRepository) UpdateRole(ctx context.Context, userID, orgID string, role domain.Role) error {
	query := `UPDATE memberships SET role = $1 WHERE user_id = $2 AND org_id = $3`
	res, err := r.db.ExecContext(ctx, query, role, userID, orgID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *membershipRepository) Delete(ctx context.Context, userID, orgID string) error {
	query := `DELETE FROM memberships WHERE user_id = $1 AND org_id = $2`
	res, err := r.db.ExecContext(ctx, query, userID, orgID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *membershipRepository) CountByRole(ctx context.Context, orgID string, role domain.Role) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM memberships WHERE org_id = $1 AND role = $2`
	if err := r.db.QueryRowContext(ctx, query, orgID, role).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
