package store

import (
	"context"

	"github.com/mkaraca/go-task-keeper/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// TokenRepository persists the per-user session allow-list. A session token
// is live only while its row exists here.
type TokenRepository interface {
	SaveToken(ctx context.Context, userID int64, token string) error
	TokenExists(ctx context.Context, userID int64, token string) (bool, error)
	DeleteToken(ctx context.Context, userID int64, token string) error
	DeleteAllTokens(ctx context.Context, userID int64) error
}

// TaskRepository persists tasks. Every read and mutation is scoped by the
// owner identifier; there are no unscoped accessors.
type TaskRepository interface {
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	GetTasks(ctx context.Context, ownerID int64) ([]models.Task, error)
	GetTask(ctx context.Context, ownerID int64, taskID string) (models.Task, error)
	UpdateTask(ctx context.Context, task models.Task) (models.Task, error)
	DeleteTask(ctx context.Context, ownerID int64, taskID string) (models.Task, error)
	DeleteTasksByOwner(ctx context.Context, ownerID int64) error
}
