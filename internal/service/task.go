package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/avlasov-dev/user-task-api/internal/model"
	"github.com/avlasov-dev/user-task-api/internal/repo"
)

type TaskService struct {
	repo  repo.TaskRepository
	users repo.UserRepository
}

func NewTaskService(taskRepo repo.TaskRepository, userRepo repo.UserRepository) *TaskService {
	return &TaskService{repo: taskRepo, users: userRepo}
}

func (s *TaskService) Create(ctx context.Context, in model.TaskInput) (model.Task, error) {
	if in.Title == nil || strings.TrimSpace(*in.Title) == "" {
		return model.Task{}, fmt.Errorf("%w: missing required field: title", ErrValidation)
	}
	if in.UserID == nil {
		return model.Task{}, fmt.Errorf("%w: missing required field: user_id", ErrValidation)
	}

	if err := s.checkUserRef(ctx, *in.UserID); err != nil {
		return model.Task{}, err
	}

	t := model.Task{Title: *in.Title, UserID: *in.UserID}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Completed != nil {
		t.Completed = *in.Completed
	}
	return s.repo.Create(ctx, t)
}

func (s *TaskService) Get(ctx context.Context, id int64) (model.Task, error) {
	return s.repo.Get(ctx, id)
}

func (s *TaskService) List(ctx context.Context) ([]model.Task, error) {
	return s.repo.List(ctx)
}

// Update checks the target task before anything else, so a missing task
// reports not-found even when the payload also carries a bad user_id.
func (s *TaskService) Update(ctx context.Context, id int64, in model.TaskInput) (model.Task, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return model.Task{}, err
	}
	if in.UserID != nil {
		if err := s.checkUserRef(ctx, *in.UserID); err != nil {
			return model.Task{}, err
		}
	}
	return s.repo.Update(ctx, id, in)
}

func (s *TaskService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// ListByUser returns the tasks owned by the given user, or not-found when
// the user itself does not exist.
func (s *TaskService) ListByUser(ctx context.Context, userID int64) ([]model.Task, error) {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, repo.ErrorNotFound
	}
	return s.repo.ListByUser(ctx, userID)
}

func (s *TaskService) checkUserRef(ctx context.Context, userID int64) error {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: user with id %d does not exist", ErrUserReference, userID)
	}
	return nil
}
