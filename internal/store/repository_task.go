package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mkaraca/go-task-keeper/internal/logger"
	"github.com/mkaraca/go-task-keeper/models"
)

// taskRepository is the PostgreSQL-backed implementation of [TaskRepository].
// Every query carries an owner_id filter, so a task belonging to another user
// behaves exactly like a missing task.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (owner_id, task id).
type taskRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTaskRepository constructs a [TaskRepository] backed by the provided
// database connection and logger.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTask persists a new task and returns the canonical stored record
// with server-assigned timestamps.
func (r *taskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createTask, task.ID, task.OwnerID, task.Description)

	if err := row.Scan(&task.ID, &task.OwnerID, &task.Description, &task.CreatedAt, &task.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*taskRepository.CreateTask").Int64("owner_id", task.OwnerID).Msg("error: creating task")
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return task, nil
}

// GetTasks retrieves every task owned by the given user, oldest first.
// Returns an empty slice when the user has no tasks.
func (r *taskRepository) GetTasks(ctx context.Context, ownerID int64) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectTasksQuery(ownerID)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.GetTasks").Int64("owner_id", ownerID).Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.GetTasks").Int64("owner_id", ownerID).Msg("failed to execute query for listing tasks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0, 16)

	for rows.Next() {
		var task models.Task

		if scanErr := rows.Scan(&task.ID, &task.OwnerID, &task.Description, &task.CreatedAt, &task.UpdatedAt); scanErr != nil {
			log.Err(scanErr).Str("func", "*taskRepository.GetTasks").Int64("owner_id", ownerID).Msg("failed to scan task row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		tasks = append(tasks, task)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*taskRepository.GetTasks").Int64("owner_id", ownerID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return tasks, nil
}

// GetTask retrieves a single task by id, filtered by owner. A task that
// exists but belongs to another user yields [ErrTaskNotFound].
func (r *taskRepository) GetTask(ctx context.Context, ownerID int64, taskID string) (models.Task, error) {
	log := logger.FromContext(ctx)

	var task models.Task
	row := r.db.QueryRowContext(ctx, findTaskByIDAndOwner, taskID, ownerID)

	if err := row.Scan(&task.ID, &task.OwnerID, &task.Description, &task.CreatedAt, &task.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}

		log.Err(err).Str("func", "*taskRepository.GetTask").Int64("owner_id", ownerID).Str("task_id", taskID).Msg("error: finding task")
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return task, nil
}

// UpdateTask writes the mutable columns of the task. The underlying query is
// always scoped by id and owner_id; a missing or foreign task yields
// [ErrTaskNotFound] and nothing is mutated.
func (r *taskRepository) UpdateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateTaskQuery(task)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.UpdateTask").Int64("owner_id", task.OwnerID).Msg("failed to build update query")
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Task
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Scan(&updated.ID, &updated.OwnerID, &updated.Description, &updated.CreatedAt, &updated.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}

		log.Err(err).Str("func", "*taskRepository.UpdateTask").Int64("owner_id", task.OwnerID).Str("task_id", task.ID).Msg("error: updating task")
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteTask removes a single task by id, filtered by owner, and returns the
// deleted record. A missing or foreign task yields [ErrTaskNotFound].
func (r *taskRepository) DeleteTask(ctx context.Context, ownerID int64, taskID string) (models.Task, error) {
	log := logger.FromContext(ctx)

	var deleted models.Task
	row := r.db.QueryRowContext(ctx, deleteTaskByIDAndOwner, taskID, ownerID)

	if err := row.Scan(&deleted.ID, &deleted.OwnerID, &deleted.Description, &deleted.CreatedAt, &deleted.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}

		log.Err(err).Str("func", "*taskRepository.DeleteTask").Int64("owner_id", ownerID).Str("task_id", taskID).Msg("error: deleting task")
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return deleted, nil
}

// DeleteTasksByOwner removes every task owned by the given user. Deleting
// zero rows is not an error; a user may simply have no tasks.
func (r *taskRepository) DeleteTasksByOwner(ctx context.Context, ownerID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteTasksByOwner, ownerID); err != nil {
		log.Err(err).Str("func", "*taskRepository.DeleteTasksByOwner").Int64("owner_id", ownerID).Msg("error: deleting tasks by owner")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
