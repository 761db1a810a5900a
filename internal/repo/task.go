package repo

import (
	"context"
	"sync"

	"github.com/avlasov-dev/user-task-api/internal/model"
)

// TaskRepo mirrors UserRepo: ordered slice, one mutex, monotonic ids.
// Referential checks against users happen a layer up; the repo itself
// stores whatever user_id it is given.
type TaskRepo struct {
	mu     sync.Mutex
	tasks  []model.Task
	nextID int64
}

func NewTaskRepo(seed []model.Task) *TaskRepo {
	r := &TaskRepo{
		tasks:  append([]model.Task(nil), seed...),
		nextID: 1,
	}
	for _, t := range seed {
		if t.ID >= r.nextID {
			r.nextID = t.ID + 1
		}
	}
	return r
}

// SeedTasks returns the initial dataset the service starts with.
func SeedTasks() []model.Task {
	return []model.Task{
		{ID: 1, Title: "Learn REST", Description: "Study REST principles", UserID: 1, Completed: true},
		{ID: 2, Title: "Build API", Description: "Complete the assignment", UserID: 2, Completed: false},
	}
}

// List returns a copy of the store. The slice is never nil so an empty
// store still serializes as a JSON array.
func (r *TaskRepo) List(ctx context.Context) ([]model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Task, 0, len(r.tasks))
	return append(out, r.tasks...), nil
}

func (r *TaskRepo) ListByUser(ctx context.Context, userID int64) ([]model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Task, 0)
	for _, t := range r.tasks {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *TaskRepo) Get(ctx context.Context, id int64) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Task{}, ErrorNotFound
}

func (r *TaskRepo) Create(ctx context.Context, t model.Task) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t.ID = r.nextID
	r.nextID++
	r.tasks = append(r.tasks, t)
	return t, nil
}

func (r *TaskRepo) Update(ctx context.Context, id int64, in model.TaskInput) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tasks {
		if r.tasks[i].ID != id {
			continue
		}
		if in.Title != nil {
			r.tasks[i].Title = *in.Title
		}
		if in.Description != nil {
			r.tasks[i].Description = *in.Description
		}
		if in.UserID != nil {
			r.tasks[i].UserID = *in.UserID
		}
		if in.Completed != nil {
			r.tasks[i].Completed = *in.Completed
		}
		return r.tasks[i], nil
	}
	return model.Task{}, ErrorNotFound
}

// Delete removes the matching task. Unlike users, deleting an absent task
// is an error: the public contract returns 404 here.
func (r *TaskRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.tasks {
		if t.ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return nil
		}
	}
	return ErrorNotFound
}
