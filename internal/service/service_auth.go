package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/mkaraca/go-task-keeper/internal/auth"
	"github.com/mkaraca/go-task-keeper/internal/config"
	"github.com/mkaraca/go-task-keeper/internal/logger"
	"github.com/mkaraca/go-task-keeper/internal/store"
	"github.com/mkaraca/go-task-keeper/internal/utils"
	"github.com/mkaraca/go-task-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and the session
// token lifecycle: every issued token is appended to the owning user's
// allow-list, and a token stays valid only while it remains there.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenRepository holds the per-user session allow-list.
	tokenRepository store.TokenRepository

	// hasher produces and verifies the bcrypt password hashes.
	hasher auth.PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration optionally limits token lifetime; zero means no expiry
	// claim, leaving revocation entirely to the allow-list.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, tokenRepository store.TokenRepository, hasher auth.PasswordHasher, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  userRepository,
		tokenRepository: tokenRepository,
		hasher:          hasher,
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		tokenDuration:   cfg.TokenDuration,
		logger:          logger,
	}
}

// Signup creates a new user account and issues its first session token.
//
// It validates and trims the name, normalizes and validates the email, hashes
// the password with the configured hasher, and delegates persistence to the
// UserRepository.
//
// Returns the persisted user (with a server-assigned UserID) and a token, or:
//   - ErrInvalidDataProvided if any required field is missing or malformed.
//   - A wrapped storage error if the repository call fails (e.g. email
//     already taken — see store.ErrEmailAlreadyExists).
func (a *authService) Signup(ctx context.Context, user models.User) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	user.Name = strings.TrimSpace(user.Name)
	password := strings.TrimSpace(user.PasswordHash)
	if user.Name == "" || password == "" {
		log.Error().Str("email", user.Email).Msg("invalid user data provided")
		return models.User{}, models.Token{}, ErrInvalidDataProvided
	}

	email, err := NormalizeEmail(user.Email)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("invalid email provided")
		return models.User{}, models.Token{}, ErrInvalidDataProvided
	}
	user.Email = email

	hash, err := a.hasher.Hash(password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, models.Token{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.PasswordHash = hash

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.issueToken(ctx, registeredUser)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return registeredUser, token, nil
}

// Login authenticates an existing user and issues a new session token.
//
// Both failure paths — unknown email and password mismatch — collapse to
// ErrUnableToLogin so that login responses never reveal whether an email is
// registered.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return models.User{}, models.Token{}, ErrUnableToLogin
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("email", email).Msg("login attempt for unknown email")
			return models.User{}, models.Token{}, ErrUnableToLogin
		}

		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Verify(password, foundUser.PasswordHash) {
		log.Debug().Int64("user_id", foundUser.UserID).Msg("login attempt with wrong password")
		return models.User{}, models.Token{}, ErrUnableToLogin
	}

	token, err := a.issueToken(ctx, foundUser)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return foundUser, token, nil
}

// ValidateToken validates and resolves a raw session token string.
//
// Validation is two-step: the HS256 signature and issuer claim are checked
// first, then the token must still be present in the owning user's allow-list.
// The second step is how logout takes effect without signature-based expiry.
//
// Returns:
//   - ErrInvalidToken if the token is malformed or its signature is invalid.
//   - ErrTokenRevoked if the signature is valid but the token is no longer in
//     the allow-list, or the owning user no longer exists.
func (a *authService) ValidateToken(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.User{}, ErrInvalidToken
	}

	exists, err := a.tokenRepository.TokenExists(ctx, token.UserID, tokenString)
	if err != nil {
		log.Err(err).Int64("user_id", token.UserID).Msg("token allow-list lookup failed")
		return models.User{}, fmt.Errorf("token allow-list lookup failed: %w", err)
	}
	if !exists {
		return models.User{}, ErrTokenRevoked
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrTokenRevoked
		}

		log.Err(err).Int64("user_id", token.UserID).Msg("user lookup by token subject failed")
		return models.User{}, fmt.Errorf("user lookup by token subject failed: %w", err)
	}

	return user, nil
}

// RevokeToken removes exactly one token from the user's allow-list (logout of
// the current session). Other sessions of the same user stay valid.
func (a *authService) RevokeToken(ctx context.Context, user models.User, tokenString string) error {
	log := logger.FromContext(ctx)

	if err := a.tokenRepository.DeleteToken(ctx, user.UserID, tokenString); err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("token revocation failed")
		return fmt.Errorf("token revocation failed: %w", err)
	}

	return nil
}

// RevokeAllTokens clears the user's entire allow-list (logout of all
// sessions).
func (a *authService) RevokeAllTokens(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	if err := a.tokenRepository.DeleteAllTokens(ctx, user.UserID); err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("revocation of all tokens failed")
		return fmt.Errorf("revocation of all tokens failed: %w", err)
	}

	return nil
}

// issueToken signs a new session token for the user and appends it to the
// allow-list. Multiple live tokens per user coexist; nothing is deduplicated.
func (a *authService) issueToken(ctx context.Context, user models.User) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("token signing failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	if err := a.tokenRepository.SaveToken(ctx, user.UserID, token.SignedString); err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("saving issued token failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// NormalizeEmail lower-cases, trims and format-validates an email address.
// Addresses with a display name part ("John <j@test.com>") are rejected.
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	address, err := mail.ParseAddress(email)
	if err != nil || address.Address != email {
		return "", ErrInvalidDataProvided
	}

	return email, nil
}
