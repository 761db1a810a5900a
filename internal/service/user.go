package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avlasov-dev/user-task-api/internal/model"
	"github.com/avlasov-dev/user-task-api/internal/repo"
)

var (
	ErrValidation    = errors.New("validation error")
	ErrUserReference = errors.New("invalid user reference")
)

type UserService struct {
	repo repo.UserRepository
}

func NewUserService(repo repo.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Create(ctx context.Context, in model.UserInput) (model.User, error) {
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		return model.User{}, fmt.Errorf("%w: missing required field: name", ErrValidation)
	}

	u := model.User{Name: *in.Name}
	if in.Age != nil {
		u.Age = *in.Age
	}
	return s.repo.Create(ctx, u)
}

func (s *UserService) Get(ctx context.Context, id int64) (model.User, error) {
	return s.repo.Get(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

// Update applies only the fields present in the input; omitted fields keep
// their previous values.
func (s *UserService) Update(ctx context.Context, id int64, in model.UserInput) (model.User, error) {
	return s.repo.Update(ctx, id, in)
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
