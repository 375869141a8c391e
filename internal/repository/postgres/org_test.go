package postgres

import (
	"context"
	"testing"

	"taskhive-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestOrganizationRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewOrganizationRepository(db)
	ctx := context.Background()

	org := &domain.Organization{ID: "o1", Name: "Acme", Slug: "acme"}
	owner := &domain.Membership{ID: "m1", OrgID: "o1", UserID: "u1", Role: domain.RoleOwner}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO organizations").
			WithArgs(org.ID, org.Name, org.Slug, org.Logo, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO memberships").
			WithArgs(owner.ID, owner.OrgID, owner.UserID, owner.Role, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := repo.Create(ctx, org, owner)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("SlugConflict", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO organizations").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "organizations_slug_key"})
		mock.ExpectRollback()

		err := repo.Create(ctx, org, owner)
		assert.ErrorIs(t, err, domain.ErrSlugConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrganizationRepository_IsSlugAvailable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewOrganizationRepository(db)
	ctx := context.Background()

	t.Run("Taken", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("acme").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		available, err := repo.IsSlugAvailable(ctx, "acme")
		assert.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("Free", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("acme-x9k2").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		available, err := repo.IsSlugAvailable(ctx, "acme-x9k2")
		assert.NoError(t, err)
		assert.True(t, available)
	})
}

func TestOrganizationRepository_GetBySlug(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewOrganizationRepository(db)
	ctx := context.Background()

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, slug, logo, created_on FROM organizations WHERE slug").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "logo", "created_on"}))

		_, err := repo.GetBySlug(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestOrganizationRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewOrganizationRepository(db)
	ctx := context.Background()

	t.Run("CascadesChildRowsFirst", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM todos WHERE org_id").
			WithArgs("o1").WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec("DELETE FROM invitations WHERE org_id").
			WithArgs("o1").WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec("DELETE FROM memberships WHERE org_id").
			WithArgs("o1").WillReturnResult(sqlmock.NewResult(0, 4))
		mock.ExpectExec("DELETE FROM organizations WHERE id").
			WithArgs("o1").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Delete(ctx, "o1")
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("MissingOrg", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM todos WHERE org_id").
			WithArgs("gone").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("DELETE FROM invitations WHERE org_id").
			WithArgs("gone").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("DELETE FROM memberships WHERE org_id").
			WithArgs("gone").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("DELETE FROM organizations WHERE id").
			WithArgs("gone").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Delete(ctx, "gone")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
