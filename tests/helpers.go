package tests

import (
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/avlasov-dev/user-task-api/internal/handler"
	"github.com/avlasov-dev/user-task-api/internal/repo"
	"github.com/avlasov-dev/user-task-api/internal/service"
)

// SetupTestServer starts the fully wired HTTP server backed by freshly
// seeded in-memory stores.
func SetupTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	userRepo := repo.NewUserRepo(repo.SeedUsers())
	taskRepo := repo.NewTaskRepo(repo.SeedTasks())

	logger := zap.NewNop()
	userHandler := handler.NewUserHandler(service.NewUserService(userRepo), logger)
	taskHandler := handler.NewTaskHandler(service.NewTaskService(taskRepo, userRepo), logger)

	server := httptest.NewServer(handler.NewRouter(userHandler, taskHandler))
	t.Cleanup(server.Close)
	return server
}

// SetupServices wires the service layer over seeded stores without HTTP,
// for tests that hammer the stores directly.
func SetupServices(t *testing.T) (*service.UserService, *service.TaskService) {
	t.Helper()

	userRepo := repo.NewUserRepo(repo.SeedUsers())
	taskRepo := repo.NewTaskRepo(repo.SeedTasks())
	return service.NewUserService(userRepo), service.NewTaskService(taskRepo, userRepo)
}
