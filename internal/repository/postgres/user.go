package postgres

import (
	"context"
	"database/sql"
	"time"

	"taskhive-backend/internal/domain"
	"taskhive-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (id, email, name, is_anonymous, password_hash, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $6)`
	now := time.Now().UTC()
	u.CreatedOn = now
	u.UpdatedOn = now
	_, err := r.db.ExecContext(ctx, query, u.ID, u.Email, u.Name, u.IsAnonymous, u.PasswordHash, now)
	return uniqueViolation(err)
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, email, name, is_anonymous, password_hash, created_on, updated_on FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&u.ID, &u.Email, &u.Name, &u.IsAnonymous, &u.PasswordHash, &u.CreatedOn, &u.UpdatedOn)
	if err != nil {
		return nil, notFound(err)
	}
	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, email, name, is_anonymous, password_hash, created_on, updated_on FROM users WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&u.ID, &u.Email, &u.Name, &u.IsAnonymous, &u.PasswordHash, &u.CreatedOn, &u.UpdatedOn)
	if err != nil {
		return nil, notFound(err)
	}
	return u, nil
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET email = $1, name = $2, password_hash = $3, updated_on = $4 WHERE id = $5`
	u.UpdatedOn = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query, u.Email, u.Name, u.PasswordHash, u.UpdatedOn, u.ID)
	return uniqueViolation(err)
}
