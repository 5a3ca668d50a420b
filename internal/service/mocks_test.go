package service

import (
	"context"

	"github.com/mkaraca/go-task-keeper/models"
)

// fakeUserRepository implements store.UserRepository for unit tests.
// Each method field can be overridden per test case.
type fakeUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFn func(ctx context.Context, email string) (models.User, error)
	findUserByIDFn    func(ctx context.Context, userID int64) (models.User, error)
	updateUserFn      func(ctx context.Context, user models.User) (models.User, error)
	deleteUserFn      func(ctx context.Context, userID int64) error
}

func (f *fakeUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return f.createUserFn(ctx, user)
}

func (f *fakeUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return f.findUserByEmailFn(ctx, email)
}

func (f *fakeUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return f.findUserByIDFn(ctx, userID)
}

func (f *fakeUserRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	return f.updateUserFn(ctx, user)
}

func (f *fakeUserRepository) DeleteUser(ctx context.Context, userID int64) error {
	return f.deleteUserFn(ctx, userID)
}

// fakeTokenRepository implements store.TokenRepository for unit tests.
type fakeTokenRepository struct {
	saveTokenFn       func(ctx context.Context, userID int64, token string) error
	tokenExistsFn     func(ctx context.Context, userID int64, token string) (bool, error)
	deleteTokenFn     func(ctx context.Context, userID int64, token string) error
	deleteAllTokensFn func(ctx context.Context, userID int64) error
}

func (f *fakeTokenRepository) SaveToken(ctx context.Context, userID int64, token string) error {
	return f.saveTokenFn(ctx, userID, token)
}

func (f *fakeTokenRepository) TokenExists(ctx context.Context, userID int64, token string) (bool, error) {
	return f.tokenExistsFn(ctx, userID, token)
}

func (f *fakeTokenRepository) DeleteToken(ctx context.Context, userID int64, token string) error {
	return f.deleteTokenFn(ctx, userID, token)
}

func (f *fakeTokenRepository) DeleteAllTokens(ctx context.Context, userID int64) error {
	return f.deleteAllTokensFn(ctx, userID)
}

// fakeTaskRepository implements store.TaskRepository for unit tests.
type fakeTaskRepository struct {
	createTaskFn         func(ctx context.Context, task models.Task) (models.Task, error)
	getTasksFn           func(ctx context.Context, ownerID int64) ([]models.Task, error)
	getTaskFn            func(ctx context.Context, ownerID int64, taskID string) (models.Task, error)
	updateTaskFn         func(ctx context.Context, task models.Task) (models.Task, error)
	deleteTaskFn         func(ctx context.Context, ownerID int64, taskID string) (models.Task, error)
	deleteTasksByOwnerFn func(ctx context.Context, ownerID int64) error
}

func (f *fakeTaskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	return f.createTaskFn(ctx, task)
}

func (f *fakeTaskRepository) GetTasks(ctx context.Context, ownerID int64) ([]models.Task, error) {
	return f.getTasksFn(ctx, ownerID)
}

func (f *fakeTaskRepository) GetTask(ctx context.Context, ownerID int64, taskID string) (models.Task, error) {
	return f.getTaskFn(ctx, ownerID, taskID)
}

func (f *fakeTaskRepository) UpdateTask(ctx context.Context, task models.Task) (models.Task, error) {
	return f.updateTaskFn(ctx, task)
}

func (f *fakeTaskRepository) DeleteTask(ctx context.Context, ownerID int64, taskID string) (models.Task, error) {
	return f.deleteTaskFn(ctx, ownerID, taskID)
}

func (f *fakeTaskRepository) DeleteTasksByOwner(ctx context.Context, ownerID int64) error {
	return f.deleteTasksByOwnerFn(ctx, ownerID)
}
