package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"taskhive-backend/internal/domain"
	"taskhive-backend/internal/repository"
)

type organizationRepository struct {
	db *sql.DB
}

func NewOrganizationRepository(db *sql.DB) repository.OrganizationRepository {
	return &organizationRepository{db: db}
}

func (r *organizationRepository) Create(ctx context.Context, org *domain.Organization, owner *domain.Membership) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create organization: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	org.CreatedOn = now
	_, err = tx.ExecContext(ctx,
		`INSERT INTO organizations (id, name, slug, logo, created_on) VALUES ($1, $2, $3, $4, $5)`,
		org.ID, org.Name, org.Slug, org.Logo, now)
	if err != nil {
		return uniqueViolation(err)
	}

	owner.CreatedOn = now
	_, err = tx.ExecContext(ctx,
		`INSERT INTO memberships (id, org_id, user_id, role, created_on) VALUES ($1, $2, $3, $4, $5)`,
		owner.ID, owner.OrgID, owner.UserID, owner.Role, now)
	if err != nil {
		return uniqueViolation(err)
	}

	return tx.Commit()
}

func (r *organizationRepository) GetByID(ctx context.Context, id string) (*domain.Organization, error) {
	o := &domain.Organization{}
	query := `SELECT id, name, slug, logo, created_on FROM organizations WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&o.ID, &o.Name, &o.Slug, &o.Logo, &o.CreatedOn)
	if err != nil {
		return nil, notFound(err)
	}
	return o, nil
}

func (r *organizationRepository) GetBySlug(ctx context.Context, slug string) (*domain.Organization, error) {
	o := &domain.Organization{}
	query := `SELECT id, name, slug, logo, created_on FROM organizations WHERE slug = $1`
	err := r.db.QueryRowContext(ctx, query, slug).Scan(&o.ID, &o.Name, &o.Slug, &o.Logo, &o.CreatedOn)
	if err != nil {
		return nil, notFound(err)
	}
	return o, nil
}

func (r *organizationRepository) IsSlugAvailable(ctx context.Context, slug string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM organizations WHERE slug = $1)`
	if err := r.db.QueryRowContext(ctx, query, slug).Scan(&exists); err != nil {
		return false, err
	}
	return !exists, nil
}

func (r *organizationRepository) Update(ctx context.Context, org *domain.Organization) error {
	query := `UPDATE organizations SET name = $1, logo = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, org.Name, org.Logo, org.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *organizationRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete organization: %w", err)
	}
	defer tx.Rollback()

	for _, query := range []string{
		`DELETE FROM todos WHERE org_id = $1`,
		`DELETE FROM invitations WHERE org_id = $1`,
		`DELETE FROM memberships WHERE org_id = $1`,
	} {
		if _, err := tx.ExecContext(ctx, query, id); err != nil {
			return err
		}
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM organizations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}

	return tx.Commit()
}
