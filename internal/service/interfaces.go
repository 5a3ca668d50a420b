package service

import (
	"context"
	"encoding/json"

	"github.com/mkaraca/go-task-keeper/models"
)

type AuthService interface {
	// Signup registers a new account and issues its first session token.
	Signup(ctx context.Context, user models.User) (models.User, models.Token, error)

	// Login verifies credentials and issues a new session token. Unknown
	// email and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, email, password string) (models.User, models.Token, error)

	// ValidateToken resolves a raw bearer token to the owning user. The token
	// must both carry a valid signature and still be present in the user's
	// session allow-list.
	ValidateToken(ctx context.Context, tokenString string) (models.User, error)

	// RevokeToken removes exactly one token from the user's allow-list.
	RevokeToken(ctx context.Context, user models.User, tokenString string) error

	// RevokeAllTokens clears the user's entire allow-list.
	RevokeAllTokens(ctx context.Context, user models.User) error
}

type UserService interface {
	// UpdateUser applies a partial update. Allowed keys: name, email,
	// password. Any other key rejects the whole update. Setting password
	// re-hashes it before persistence.
	UpdateUser(ctx context.Context, user models.User, fields map[string]json.RawMessage) (models.User, error)

	// DeleteUser removes the account together with everything it owns:
	// tasks first, then session tokens, then the user record itself.
	DeleteUser(ctx context.Context, user models.User) (models.User, error)
}

type TaskService interface {
	// CreateTask creates a task owned by the given user. The owner is never
	// taken from client input.
	CreateTask(ctx context.Context, user models.User, description string) (models.Task, error)

	// ListTasks returns only the tasks owned by the given user.
	ListTasks(ctx context.Context, user models.User) ([]models.Task, error)

	// GetTask returns the task with the given id if the user owns it.
	GetTask(ctx context.Context, user models.User, taskID string) (models.Task, error)

	// UpdateTask applies a partial update. Allowed keys: description.
	UpdateTask(ctx context.Context, user models.User, taskID string, fields map[string]json.RawMessage) (models.Task, error)

	// DeleteTask removes the task with the given id if the user owns it and
	// returns the deleted record.
	DeleteTask(ctx context.Context, user models.User, taskID string) (models.Task, error)
}
