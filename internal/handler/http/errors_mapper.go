package http

import (
	"errors"
	"net/http"

	"github.com/mkaraca/go-task-keeper/internal/service"
	"github.com/mkaraca/go-task-keeper/internal/store"
)

// errorStatusMap fixes the wire contract of the API:
//   - validation failures, disallowed update keys, duplicate emails and bad
//     credentials → 400 (bad credentials are deliberately not 401 so that the
//     login endpoint leaks nothing beyond "unable to login");
//   - authentication failures on protected routes → 401;
//   - missing or not-owned resources → 404, indistinguishable from each other;
//   - anything else → 500.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrDisallowedField:     http.StatusBadRequest,
	service.ErrUnableToLogin:       http.StatusBadRequest,

	service.ErrInvalidToken:        http.StatusUnauthorized,
	service.ErrTokenRevoked:        http.StatusUnauthorized,
	service.ErrTokenCreationFailed: http.StatusInternalServerError,

	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrTaskNotFound:       http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
