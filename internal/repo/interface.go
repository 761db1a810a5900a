package repo

import (
	"context"

	"github.com/avlasov-dev/user-task-api/internal/model"
)

// UserRepository is the storage contract for users. Exists backs the
// referential check performed before task mutations.
type UserRepository interface {
	List(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id int64) (model.User, error)
	Create(ctx context.Context, u model.User) (model.User, error)
	Update(ctx context.Context, id int64, in model.UserInput) (model.User, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

// TaskRepository is the storage contract for tasks.
type TaskRepository interface {
	List(ctx context.Context) ([]model.Task, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Task, error)
	Get(ctx context.Context, id int64) (model.Task, error)
	Create(ctx context.Context, t model.Task) (model.Task, error)
	Update(ctx context.Context, id int64, in model.TaskInput) (model.Task, error)
	Delete(ctx context.Context, id int64) error
}
