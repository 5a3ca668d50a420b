package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mkaraca/go-task-keeper/internal/logger"
	"github.com/mkaraca/go-task-keeper/internal/utils"
)

// createTaskRequest is the body accepted by the task creation endpoint.
// Any owner information supplied by the client is ignored: ownership always
// comes from the authenticated request context.
type createTaskRequest struct {
	Description string `json:"description"`
}

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		h.writeErrorMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeErrorMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	task, err := h.services.TaskService.CreateTask(ctx, user, req.Description)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("task creation ended with error")
		h.writeError(w, err)
		return
	}

	utils.WriteJSON(w, task, http.StatusCreated)
}

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		h.writeErrorMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	tasks, err := h.services.TaskService.ListTasks(ctx, user)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("task listing ended with error")
		h.writeError(w, err)
		return
	}

	utils.WriteJSON(w, tasks, http.StatusOK)
}

func (h *Handler) getTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		h.writeErrorMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	taskID := chi.URLParam(r, "id")

	task, err := h.services.TaskService.GetTask(ctx, user, taskID)
	if err != nil {
		log.Debug().Err(err).Int64("user_id", user.UserID).Str("task_id", taskID).Msg("task lookup ended with error")
		h.writeError(w, err)
		return
	}

	utils.WriteJSON(w, task, http.StatusOK)
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		h.writeErrorMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	taskID := chi.URLParam(r, "id")

	var fields map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeErrorMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	task, err := h.services.TaskService.UpdateTask(ctx, user, taskID, fields)
	if err != nil {
		log.Debug().Err(err).Int64("user_id", user.UserID).Str("task_id", taskID).Msg("task update ended with error")
		h.writeError(w, err)
		return
	}

	utils.WriteJSON(w, task, http.StatusOK)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		h.writeErrorMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	taskID := chi.URLParam(r, "id")

	task, err := h.services.TaskService.DeleteTask(ctx, user, taskID)
	if err != nil {
		log.Debug().Err(err).Int64("user_id", user.UserID).Str("task_id", taskID).Msg("task deletion ended with error")
		h.writeError(w, err)
		return
	}

	utils.WriteJSON(w, task, http.StatusOK)
}
