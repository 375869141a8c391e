package postgres

import (
	"context"
	"database/sql"
	"time"

	"taskhive-backend/internal/domain"
	"taskhive-backend/internal/repository"
)

type todoRepository struct {
	db *sql.DB
}

func NewTodoRepository(db *sql.DB) repository.TodoRepository {
	return &todoRepository{db: db}
}

func (r *todoRepository) Create(ctx context.Context, t *domain.Todo) error {
	query := `INSERT INTO todos (id, org_id, created_by, title, completed, created_on) VALUES ($1, $2, $3, $4, $5, $6)`
	t.CreatedOn = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query, t.ID, t.OrgID, t.CreatedBy, t.Title, t.Completed, t.CreatedOn)
	return err
}

func (r *todoRepository) GetByID(ctx context.Context, id string) (*domain.Todo, error) {
	t := &domain.Todo{}
	query := `SELECT id, org_id, created_by, title, completed, created_on FROM todos WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&t.ID, &t.OrgID, &t.CreatedBy, &t.Title, &t.Completed, &t.CreatedOn)
	if err != nil {
		return nil, notFound(err)
	}
	return t, nil
}

func (r *todoRepository) ListByOrg(ctx context.Context, orgID string) ([]domain.Todo, error) {
	query := `SELECT id, org_id, created_by, title, completed, created_on FROM todos WHERE org_id = $1 ORDER BY created_on ASC`
	rows, err := r.db.QueryContext(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var todos []domain.Todo
	for rows.Next() {
		var t domain.Todo
		if err := rows.Scan(&t.ID, &t.OrgID, &t.CreatedBy, &t.Title, &t.Completed, &t.CreatedOn); err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

func (r *todoRepository) Update(ctx context.Context, t *domain.Todo) error {
	query := `UPDATE todos SET title = $1, completed = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, t.Title, t.Completed, t.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *todoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
