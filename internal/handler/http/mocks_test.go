package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mkaraca/go-task-keeper/internal/logger"
	"github.com/mkaraca/go-task-keeper/internal/service"
	"github.com/mkaraca/go-task-keeper/internal/utils"
	"github.com/mkaraca/go-task-keeper/models"
)

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	signupFn          func(ctx context.Context, user models.User) (models.User, models.Token, error)
	loginFn           func(ctx context.Context, email, password string) (models.User, models.Token, error)
	validateTokenFn   func(ctx context.Context, tokenString string) (models.User, error)
	revokeTokenFn     func(ctx context.Context, user models.User, tokenString string) error
	revokeAllTokensFn func(ctx context.Context, user models.User) error
}

func (m *mockAuthService) Signup(ctx context.Context, user models.User) (models.User, models.Token, error) {
	return m.signupFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, models.Token, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) ValidateToken(ctx context.Context, tokenString string) (models.User, error) {
	return m.validateTokenFn(ctx, tokenString)
}

func (m *mockAuthService) RevokeToken(ctx context.Context, user models.User, tokenString string) error {
	return m.revokeTokenFn(ctx, user, tokenString)
}

func (m *mockAuthService) RevokeAllTokens(ctx context.Context, user models.User) error {
	return m.revokeAllTokensFn(ctx, user)
}

// mockUserService implements service.UserService for unit tests.
type mockUserService struct {
	updateUserFn func(ctx context.Context, user models.User, fields map[string]json.RawMessage) (models.User, error)
	deleteUserFn func(ctx context.Context, user models.User) (models.User, error)
}

func (m *mockUserService) UpdateUser(ctx context.Context, user models.User, fields map[string]json.RawMessage) (models.User, error) {
	return m.updateUserFn(ctx, user, fields)
}

func (m *mockUserService) DeleteUser(ctx context.Context, user models.User) (models.User, error) {
	return m.deleteUserFn(ctx, user)
}

// mockTaskService implements service.TaskService for unit tests.
type mockTaskService struct {
	createTaskFn func(ctx context.Context, user models.User, description string) (models.Task, error)
	listTasksFn  func(ctx context.Context, user models.User) ([]models.Task, error)
	getTaskFn    func(ctx context.Context, user models.User, taskID string) (models.Task, error)
	updateTaskFn func(ctx context.Context, user models.User, taskID string, fields map[string]json.RawMessage) (models.Task, error)
	deleteTaskFn func(ctx context.Context, user models.User, taskID string) (models.Task, error)
}

func (m *mockTaskService) CreateTask(ctx context.Context, user models.User, description string) (models.Task, error) {
	return m.createTaskFn(ctx, user, description)
}

func (m *mockTaskService) ListTasks(ctx context.Context, user models.User) ([]models.Task, error) {
	return m.listTasksFn(ctx, user)
}

func (m *mockTaskService) GetTask(ctx context.Context, user models.User, taskID string) (models.Task, error) {
	return m.getTaskFn(ctx, user, taskID)
}

func (m *mockTaskService) UpdateTask(ctx context.Context, user models.User, taskID string, fields map[string]json.RawMessage) (models.Task, error) {
	return m.updateTaskFn(ctx, user, taskID, fields)
}

func (m *mockTaskService) DeleteTask(ctx context.Context, user models.User, taskID string) (models.Task, error) {
	return m.deleteTaskFn(ctx, user, taskID)
}

// newTestHandler builds a Handler over the given mocks with a nop logger.
func newTestHandler(svcs *service.Services) *Handler {
	return &Handler{
		services: svcs,
		logger:   logger.Nop(),
	}
}

// injectNopLogger puts a nop logger into the request context so handlers that
// call logger.FromRequest stay silent in tests.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

// asAuthenticated attaches the user and raw token to the request context the
// same way the auth middleware does.
func asAuthenticated(r *http.Request, user models.User, token string) *http.Request {
	ctx := context.WithValue(r.Context(), utils.UserCtxKey, user)
	ctx = context.WithValue(ctx, utils.TokenCtxKey, token)
	return r.WithContext(ctx)
}
