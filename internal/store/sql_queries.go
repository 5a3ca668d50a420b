// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Murat Karaca

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/mkaraca/go-task-keeper/models"
)

const (
	createUser = `INSERT INTO users (name, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, name, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, name, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, name, email, password_hash, created_at
    FROM users
    WHERE user_id = $1;`

	deleteUser = `DELETE FROM users
    WHERE user_id = $1;`

	saveToken = `INSERT INTO tokens (user_id, token)
    VALUES ($1, $2)
    ON CONFLICT (user_id, token) DO NOTHING;`

	tokenExists = `SELECT EXISTS (
        SELECT 1 FROM tokens WHERE user_id = $1 AND token = $2
    );`

	deleteToken = `DELETE FROM tokens
    WHERE user_id = $1 AND token = $2;`

	deleteAllTokens = `DELETE FROM tokens
    WHERE user_id = $1;`

	createTask = `INSERT INTO tasks (id, owner_id, description)
    VALUES ($1, $2, $3)
    RETURNING id, owner_id, description, created_at, updated_at;`

	findTaskByIDAndOwner = `SELECT id, owner_id, description, created_at, updated_at
    FROM tasks
    WHERE id = $1 AND owner_id = $2;`

	deleteTaskByIDAndOwner = `DELETE FROM tasks
    WHERE id = $1 AND owner_id = $2
    RETURNING id, owner_id, description, created_at, updated_at;`

	deleteTasksByOwner = `DELETE FROM tasks
    WHERE owner_id = $1;`
)

// psql is the shared squirrel builder configured for Postgres placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildSelectTasksQuery builds the owner-scoped task listing query.
// Filtering by owner_id is mandatory; there is no unscoped variant.
func buildSelectTasksQuery(ownerID int64) (string, []any, error) {
	return psql.
		Select("id", "owner_id", "description", "created_at", "updated_at").
		From("tasks").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at").
		ToSql()
}

// buildUpdateTaskQuery builds the partial task update. The WHERE clause
// always carries both id and owner_id so a foreign task can never be touched.
func buildUpdateTaskQuery(task models.Task) (string, []any, error) {
	return psql.
		Update("tasks").
		Set("description", task.Description).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": task.ID, "owner_id": task.OwnerID}).
		Suffix("RETURNING id, owner_id, description, created_at, updated_at").
		ToSql()
}

// buildUpdateUserQuery builds the profile update query. All mutable columns
// are written from the already-merged user value.
func buildUpdateUserQuery(user models.User) (string, []any, error) {
	return psql.
		Update("users").
		Set("name", user.Name).
		Set("email", user.Email).
		Set("password_hash", user.PasswordHash).
		Where(sq.Eq{"user_id": user.UserID}).
		Suffix("RETURNING user_id, name, email, password_hash, created_at").
		ToSql()
}
