package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mkaraca/go-task-keeper/internal/logger"
	"github.com/mkaraca/go-task-keeper/internal/store"
	"github.com/mkaraca/go-task-keeper/internal/utils"
	"github.com/mkaraca/go-task-keeper/models"
)

// signupRequest is the body accepted by the signup endpoint.
type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginRequest is the body accepted by the login endpoint.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeErrorMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user := models.User{
		Name:  req.Name,
		Email: req.Email,
		// carries the plaintext only until the service hashes it
		PasswordHash: req.Password,
	}

	registeredUser, token, err := h.services.AuthService.Signup(ctx, user)
	if err != nil {
		log.Err(err).Msg("user signup ended with error")
		h.writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{User: registeredUser, Token: token.SignedString}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeErrorMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, token, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		// all credential failures produce the same status and body
		log.Err(err).Msg("user login ended with error")
		h.writeError(w, err)
		return
	}

	log.Debug().Int64("user_id", foundUser.UserID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.AuthResponse{User: foundUser, Token: token.SignedString}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		h.writeErrorMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		h.writeErrorMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var fields map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeErrorMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updatedUser, err := h.services.UserService.UpdateUser(ctx, user, fields)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("user update ended with error")
		h.writeError(w, err)
		return
	}

	utils.WriteJSON(w, updatedUser, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		h.writeErrorMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	deletedUser, err := h.services.UserService.DeleteUser(ctx, user)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("user deletion ended with error")
		h.writeError(w, err)
		return
	}

	utils.WriteJSON(w, deletedUser, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, okUser := utils.GetUserFromContext(ctx)
	token, okToken := utils.GetTokenFromContext(ctx)
	if !okUser || !okToken {
		h.writeErrorMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err := h.services.AuthService.RevokeToken(ctx, user, token); err != nil {
		// a concurrent logout may have removed the token already;
		// logout is idempotent
		if !errors.Is(err, store.ErrTokenNotFound) {
			log.Err(err).Int64("user_id", user.UserID).Msg("logout ended with error")
			h.writeError(w, err)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) logoutAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		h.writeErrorMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err := h.services.AuthService.RevokeAllTokens(ctx, user); err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("logout of all sessions ended with error")
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// writeError translates err into the wire contract via [statusFromError] and
// writes a uniform JSON error body. The body text is the matched sentinel's
// message, so wrapped internal context never leaks to the client.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	message := http.StatusText(status)
	for target := range errorStatusMap {
		if errors.Is(err, target) {
			message = target.Error()
			break
		}
	}
	if status == http.StatusInternalServerError {
		message = http.StatusText(http.StatusInternalServerError)
	}

	h.writeErrorMessage(w, message, status)
}

func (h *Handler) writeErrorMessage(w http.ResponseWriter, message string, status int) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
