package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/avlasov-dev/user-task-api/internal/model"
	"github.com/avlasov-dev/user-task-api/internal/repo"
)

// MockUserRepository - мок репозитория
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) Get(ctx context.Context, id int64) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, u model.User) (model.User, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id int64, in model.UserInput) (model.User, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestUserService_Create(t *testing.T) {
	tests := []struct {
		name      string
		in        model.UserInput
		setupMock func(*MockUserRepository)
		wantErr   error
	}{
		{
			name: "successful creation",
			in:   model.UserInput{Name: strPtr("Carol"), Age: intPtr(22)},
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, model.User{Name: "Carol", Age: 22}).
					Return(model.User{ID: 3, Name: "Carol", Age: 22}, nil)
			},
		},
		{
			name: "age defaults to zero",
			in:   model.UserInput{Name: strPtr("Carol")},
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, model.User{Name: "Carol", Age: 0}).
					Return(model.User{ID: 3, Name: "Carol", Age: 0}, nil)
			},
		},
		{
			name:      "missing name",
			in:        model.UserInput{Age: intPtr(22)},
			setupMock: func(m *MockUserRepository) {},
			wantErr:   ErrValidation,
		},
		{
			name:      "whitespace name",
			in:        model.UserInput{Name: strPtr("   ")},
			setupMock: func(m *MockUserRepository) {},
			wantErr:   ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := NewUserService(mockRepo)
			result, err := service.Create(context.Background(), tt.in)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), "name")
			} else {
				require.NoError(t, err)
				assert.NotZero(t, result.ID)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_Update(t *testing.T) {
	mockRepo := new(MockUserRepository)
	in := model.UserInput{Age: intPtr(40)}
	mockRepo.On("Update", mock.Anything, int64(1), in).
		Return(model.User{ID: 1, Name: "Alice", Age: 40}, nil)

	service := NewUserService(mockRepo)
	result, err := service.Update(context.Background(), 1, in)

	require.NoError(t, err)
	assert.Equal(t, "Alice", result.Name)
	assert.Equal(t, 40, result.Age)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Update_NotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("Update", mock.Anything, int64(99), mock.Anything).
		Return(model.User{}, repo.ErrorNotFound)

	service := NewUserService(mockRepo)
	_, err := service.Update(context.Background(), 99, model.UserInput{Age: intPtr(40)})

	assert.ErrorIs(t, err, repo.ErrorNotFound)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Delete(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("Delete", mock.Anything, int64(99)).Return(nil)

	service := NewUserService(mockRepo)
	assert.NoError(t, service.Delete(context.Background(), 99))
	mockRepo.AssertExpectations(t)
}
