package repo

import (
	"context"
	"errors"
	"sync"

	"github.com/avlasov-dev/user-task-api/internal/model"
)

var ErrorNotFound = errors.New("not found")

// UserRepo keeps users in an ordered in-process slice. All mutations run
// under a single mutex so id assignment stays race-free; ids come from a
// monotonic counter and are never reused after a delete.
type UserRepo struct {
	mu     sync.Mutex
	users  []model.User
	nextID int64
}

func NewUserRepo(seed []model.User) *UserRepo {
	r := &UserRepo{
		users:  append([]model.User(nil), seed...),
		nextID: 1,
	}
	for _, u := range seed {
		if u.ID >= r.nextID {
			r.nextID = u.ID + 1
		}
	}
	return r
}

// SeedUsers returns the initial dataset the service starts with.
func SeedUsers() []model.User {
	return []model.User{
		{ID: 1, Name: "Alice", Age: 25},
		{ID: 2, Name: "Bob", Age: 30},
	}
}

// List returns a copy of the store. The slice is never nil so an empty
// store still serializes as a JSON array.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.User, 0, len(r.users))
	return append(out, r.users...), nil
}

func (r *UserRepo) Get(ctx context.Context, id int64) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, ErrorNotFound
}

func (r *UserRepo) Create(ctx context.Context, u model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u.ID = r.nextID
	r.nextID++
	r.users = append(r.users, u)
	return u, nil
}

func (r *UserRepo) Update(ctx context.Context, id int64, in model.UserInput) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID != id {
			continue
		}
		if in.Name != nil {
			r.users[i].Name = *in.Name
		}
		if in.Age != nil {
			r.users[i].Age = *in.Age
		}
		return r.users[i], nil
	}
	return model.User{}, ErrorNotFound
}

// Delete removes the matching user if present. It is idempotent: deleting
// an absent id is not an error.
func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.users[:0]
	for _, u := range r.users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	r.users = kept
	return nil
}

func (r *UserRepo) Exists(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ID == id {
			return true, nil
		}
	}
	return false, nil
}
