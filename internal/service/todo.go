package service

import (
	"context"

	"taskhive-backend/internal/domain"
	"taskhive-backend/internal/permission"
	"taskhive-backend/internal/repository"

	"github.com/google/uuid"
)

type todoService struct {
	todoRepo repository.TodoRepository
	guard    *Guard
}

func NewTodoService(todoRepo repository.TodoRepository, guard *Guard) TodoService {
	return &todoService{todoRepo: todoRepo, guard: guard}
}

func (s *todoService) List(ctx context.Context, userID, orgID string) ([]domain.Todo, error) {
	if _, err := s.guard.EnsureMember(ctx, userID, orgID); err != nil {
		return nil, err
	}
	return s.todoRepo.ListByOrg(ctx, orgID)
}

func (s *todoService) Create(ctx context.Context, userID, orgID, title string) (*domain.Todo, error) {
	if _, err := s.guard.EnsurePermission(ctx, userID, orgID, permission.TodoCreate); err != nil {
		return nil, err
	}

	todo := &domain.Todo{
		ID:        uuid.NewString(),
		OrgID:     orgID,
		CreatedBy: userID,
		Title:     title,
	}
	if err := s.todoRepo.Create(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

func (s *todoService) Toggle(ctx context.Context, userID, orgID, todoID string) (*domain.Todo, error) {
	if _, err := s.guard.EnsurePermission(ctx, userID, orgID, permission.TodoUpdate); err != nil {
		return nil, err
	}

	todo, err := s.todoRepo.GetByID(ctx, todoID)
	if err != nil {
		return nil, err
	}
	if todo.OrgID != orgID {
		return nil, domain.ErrNotFound
	}

	todo.Completed = !todo.Completed
	if err := s.todoRepo.Update(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

func (s *todoService) Delete(ctx context.Context, userID, orgID, todoID string) error {
	if _, err := s.guard.EnsurePermission(ctx, userID, orgID, permission.TodoDelete); err != nil {
		return err
	}

	todo, err := s.todoRepo.GetByID(ctx, todoID)
	if err != nil {
		return err
	}
	if todo.OrgID != orgID {
		return domain.ErrNotFound
	}

	return s.todoRepo.Delete(ctx, todoID)
}
