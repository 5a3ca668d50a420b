package store

import (
	"context"
	"fmt"

	"github.com/mkaraca/go-task-keeper/internal/logger"
)

// tokenRepository is the PostgreSQL-backed implementation of
// [TokenRepository]. The "tokens" table is the per-user session allow-list:
// a signed token that is absent from it is treated as revoked regardless of
// its cryptographic validity.
type tokenRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTokenRepository constructs a [TokenRepository] backed by the provided
// database connection and logger.
func NewTokenRepository(db *DB, logger *logger.Logger) TokenRepository {
	logger.Debug().Msg("creating token repository")
	return &tokenRepository{
		db:     db,
		logger: logger,
	}
}

// SaveToken appends a freshly issued token to the user's allow-list.
// Multiple live sessions per user are expected. Two logins within the same
// second yield byte-identical signed tokens (second-granularity iat), so the
// insert tolerates an already-present row: either way the token ends up in
// the allow-list and issuance succeeds.
func (r *tokenRepository) SaveToken(ctx context.Context, userID int64, token string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, saveToken, userID, token); err != nil {
		log.Err(err).Str("func", "*tokenRepository.SaveToken").Int64("user_id", userID).Msg("error: saving token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// TokenExists reports whether the given token is present in the user's
// allow-list.
func (r *tokenRepository) TokenExists(ctx context.Context, userID int64, token string) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	row := r.db.QueryRowContext(ctx, tokenExists, userID, token)
	if err := row.Scan(&exists); err != nil {
		log.Err(err).Str("func", "*tokenRepository.TokenExists").Int64("user_id", userID).Msg("error: checking token presence")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}

// DeleteToken removes exactly one token from the user's allow-list (logout of
// the current session). Returns [ErrTokenNotFound] when the token is not in
// the list.
func (r *tokenRepository) DeleteToken(ctx context.Context, userID int64, token string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteToken, userID, token)
	if err != nil {
		log.Err(err).Str("func", "*tokenRepository.DeleteToken").Int64("user_id", userID).Msg("error: deleting token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrTokenNotFound
	}

	return nil
}

// DeleteAllTokens clears the user's entire allow-list (logout of all
// sessions).
func (r *tokenRepository) DeleteAllTokens(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteAllTokens, userID); err != nil {
		log.Err(err).Str("func", "*tokenRepository.DeleteAllTokens").Int64("user_id", userID).Msg("error: deleting all tokens")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
