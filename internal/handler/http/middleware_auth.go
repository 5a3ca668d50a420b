package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/mkaraca/go-task-keeper/internal/logger"
	"github.com/mkaraca/go-task-keeper/internal/service"
	"github.com/mkaraca/go-task-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
// It is the single enforcement point: every protected route sits behind it
// and no handler resolves tokens on its own.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// resolves it via [service.AuthService.ValidateToken], and — on success —
// stores both the authenticated user and the raw token string in the request
// context before delegating to the next handler. The raw token is kept so
// that logout can revoke exactly the current session.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value cannot be parsed as a bearer token
//     ([utils.ErrInvalidAuthorizationHeader] or [utils.ErrEmptyToken]).
//   - The token signature is invalid ([service.ErrInvalidToken]).
//   - The token has been revoked from the user's session allow-list
//     ([service.ErrTokenRevoked]).
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.ValidateToken(ctx, tokenString)

		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidToken) || errors.Is(err, service.ErrTokenRevoked):
				log.Err(err).Msg("authentication rejected")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			default:
				log.Err(err).Msg("error occurred during token validation")
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
		}

		// Store the authenticated user and the raw token in the context so
		// that downstream handlers can retrieve them without re-parsing.
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)
		ctx = context.WithValue(ctx, utils.TokenCtxKey, tokenString)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
