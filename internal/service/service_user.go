package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mkaraca/go-task-keeper/internal/auth"
	"github.com/mkaraca/go-task-keeper/internal/logger"
	"github.com/mkaraca/go-task-keeper/internal/store"
	"github.com/mkaraca/go-task-keeper/models"
)

// allowedUserFields is the full set of keys a profile update may carry.
// A single unknown key rejects the whole update.
var allowedUserFields = map[string]struct{}{
	"name":     {},
	"email":    {},
	"password": {},
}

// userService is the concrete implementation of UserService. It owns the
// profile-update allow-list and the cascading account deletion sequence.
type userService struct {
	userRepository  store.UserRepository
	tokenRepository store.TokenRepository
	taskRepository  store.TaskRepository
	hasher          auth.PasswordHasher
	logger          *logger.Logger
}

// NewUserService constructs a UserService wired to the given repositories.
func NewUserService(userRepository store.UserRepository, tokenRepository store.TokenRepository, taskRepository store.TaskRepository, hasher auth.PasswordHasher, logger *logger.Logger) UserService {
	return &userService{
		userRepository:  userRepository,
		tokenRepository: tokenRepository,
		taskRepository:  taskRepository,
		hasher:          hasher,
		logger:          logger,
	}
}

// UpdateUser applies a partial profile update to the authenticated user.
//
// Behavior:
//   - Any key outside {name, email, password} → ErrDisallowedField; nothing
//     is applied.
//   - name: trimmed, must stay non-empty.
//   - email: normalized (lower-cased) and format-validated; a duplicate
//     surfaces as store.ErrEmailAlreadyExists.
//   - password: re-hashed before persistence. The hash is recomputed only
//     when the body actually carries a password key, so unrelated updates
//     never re-hash an already-hashed value.
func (s *userService) UpdateUser(ctx context.Context, user models.User, fields map[string]json.RawMessage) (models.User, error) {
	log := logger.FromContext(ctx)

	if len(fields) == 0 {
		return models.User{}, ErrInvalidDataProvided
	}

	for key := range fields {
		if _, ok := allowedUserFields[key]; !ok {
			log.Debug().Int64("user_id", user.UserID).Str("field", key).Msg("disallowed user update field")
			return models.User{}, fmt.Errorf("%w: %q", ErrDisallowedField, key)
		}
	}

	if raw, ok := fields["name"]; ok {
		name, err := decodeStringField(raw)
		if err != nil || strings.TrimSpace(name) == "" {
			return models.User{}, ErrInvalidDataProvided
		}
		user.Name = strings.TrimSpace(name)
	}

	if raw, ok := fields["email"]; ok {
		email, err := decodeStringField(raw)
		if err != nil {
			return models.User{}, ErrInvalidDataProvided
		}
		normalized, err := NormalizeEmail(email)
		if err != nil {
			return models.User{}, ErrInvalidDataProvided
		}
		user.Email = normalized
	}

	if raw, ok := fields["password"]; ok {
		password, err := decodeStringField(raw)
		if err != nil || strings.TrimSpace(password) == "" {
			return models.User{}, ErrInvalidDataProvided
		}

		hash, err := s.hasher.Hash(strings.TrimSpace(password))
		if err != nil {
			log.Err(err).Int64("user_id", user.UserID).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("password hashing failed: %w", err)
		}
		user.PasswordHash = hash
	}

	updatedUser, err := s.userRepository.UpdateUser(ctx, user)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updatedUser, nil
}

// DeleteUser removes the account and everything it owns. The sequence is a
// required invariant, not a caller convenience: owned tasks go first, then
// the session allow-list, then the user record itself. Steps are best-effort
// sequential; the schema FKs cascade as a backstop if the process dies
// mid-sequence.
func (s *userService) DeleteUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.taskRepository.DeleteTasksByOwner(ctx, user.UserID); err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("cascade deletion of tasks failed")
		return models.User{}, fmt.Errorf("cascade deletion of tasks failed: %w", err)
	}

	if err := s.tokenRepository.DeleteAllTokens(ctx, user.UserID); err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("cascade deletion of tokens failed")
		return models.User{}, fmt.Errorf("cascade deletion of tokens failed: %w", err)
	}

	if err := s.userRepository.DeleteUser(ctx, user.UserID); err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("user deletion ended with error")
		return models.User{}, fmt.Errorf("user deletion ended with error: %w", err)
	}

	return user, nil
}

// decodeStringField unmarshals a JSON value that must be a string.
func decodeStringField(raw json.RawMessage) (string, error) {
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return value, nil
}
