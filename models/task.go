package models

import "time"

// Task is a single to-do item owned by exactly one user.
//
// OwnerID is assigned by the server from the authenticated request and is
// immutable after creation. Only Description may change afterwards.
type Task struct {
	// ID is the server-generated UUID of the task.
	ID string `json:"id"`

	// OwnerID references the user that owns this task.
	OwnerID int64 `json:"owner_id"`

	// Description is the task text. Required, stored trimmed.
	Description string `json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}
