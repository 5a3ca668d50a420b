package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mkaraca/go-task-keeper/internal/logger"
	"github.com/mkaraca/go-task-keeper/internal/store"
	"github.com/mkaraca/go-task-keeper/internal/utils"
	"github.com/mkaraca/go-task-keeper/models"
)

// allowedTaskFields is the full set of keys a task update may carry.
var allowedTaskFields = map[string]struct{}{
	"description": {},
}

// taskService is the concrete implementation of TaskService. The owner of
// every operation is the authenticated user passed in by the caller; client
// input never chooses an owner.
type taskService struct {
	taskRepository store.TaskRepository
	uuidGenerator  *utils.UUIDGenerator
	logger         *logger.Logger
}

// NewTaskService constructs a TaskService wired to the given repository.
func NewTaskService(taskRepository store.TaskRepository, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		uuidGenerator:  utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// CreateTask creates a task owned by the authenticated user.
//
// The description is trimmed and must be non-empty; the task id is generated
// server-side.
func (s *taskService) CreateTask(ctx context.Context, user models.User, description string) (models.Task, error) {
	log := logger.FromContext(ctx)

	description = strings.TrimSpace(description)
	if description == "" {
		return models.Task{}, ErrInvalidDataProvided
	}

	task := models.Task{
		ID:          s.uuidGenerator.Generate(),
		OwnerID:     user.UserID,
		Description: description,
	}

	createdTask, err := s.taskRepository.CreateTask(ctx, task)
	if err != nil {
		log.Err(err).Int64("owner_id", user.UserID).Msg("task creation ended with error")
		return models.Task{}, fmt.Errorf("task creation ended with error: %w", err)
	}

	return createdTask, nil
}

// ListTasks returns every task owned by the authenticated user. The result is
// never a global scan; the owner filter is applied at the query level.
func (s *taskService) ListTasks(ctx context.Context, user models.User) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	tasks, err := s.taskRepository.GetTasks(ctx, user.UserID)
	if err != nil {
		log.Err(err).Int64("owner_id", user.UserID).Msg("task listing ended with error")
		return nil, fmt.Errorf("task listing ended with error: %w", err)
	}

	return tasks, nil
}

// GetTask returns the task with the given id if the authenticated user owns
// it. A task owned by someone else is reported as not found, never as
// forbidden, so foreign task ids cannot be probed.
func (s *taskService) GetTask(ctx context.Context, user models.User, taskID string) (models.Task, error) {
	log := logger.FromContext(ctx)

	task, err := s.taskRepository.GetTask(ctx, user.UserID, taskID)
	if err != nil {
		log.Debug().Err(err).Int64("owner_id", user.UserID).Str("task_id", taskID).Msg("task lookup failed")
		return models.Task{}, fmt.Errorf("task lookup failed: %w", err)
	}

	return task, nil
}

// UpdateTask applies a partial update to an owned task.
//
// Any key outside {description} → ErrDisallowedField and nothing is applied.
// The description passes the same trimming and non-empty validation as
// creation. The persistence-level query is owner-scoped, so a foreign task
// yields store.ErrTaskNotFound without being mutated.
func (s *taskService) UpdateTask(ctx context.Context, user models.User, taskID string, fields map[string]json.RawMessage) (models.Task, error) {
	log := logger.FromContext(ctx)

	if len(fields) == 0 {
		return models.Task{}, ErrInvalidDataProvided
	}

	for key := range fields {
		if _, ok := allowedTaskFields[key]; !ok {
			log.Debug().Int64("owner_id", user.UserID).Str("field", key).Msg("disallowed task update field")
			return models.Task{}, fmt.Errorf("%w: %q", ErrDisallowedField, key)
		}
	}

	description, err := decodeStringField(fields["description"])
	if err != nil {
		return models.Task{}, ErrInvalidDataProvided
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return models.Task{}, ErrInvalidDataProvided
	}

	task := models.Task{
		ID:          taskID,
		OwnerID:     user.UserID,
		Description: description,
	}

	updatedTask, err := s.taskRepository.UpdateTask(ctx, task)
	if err != nil {
		log.Debug().Err(err).Int64("owner_id", user.UserID).Str("task_id", taskID).Msg("task update failed")
		return models.Task{}, fmt.Errorf("task update failed: %w", err)
	}

	return updatedTask, nil
}

// DeleteTask removes an owned task and returns the deleted record. Ownership
// is enforced by the same id+owner filter as reads.
func (s *taskService) DeleteTask(ctx context.Context, user models.User, taskID string) (models.Task, error) {
	log := logger.FromContext(ctx)

	deletedTask, err := s.taskRepository.DeleteTask(ctx, user.UserID, taskID)
	if err != nil {
		log.Debug().Err(err).Int64("owner_id", user.UserID).Str("task_id", taskID).Msg("task deletion failed")
		return models.Task{}, fmt.Errorf("task deletion failed: %w", err)
	}

	return deletedTask, nil
}
