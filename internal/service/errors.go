package service

import "errors"

var (
	// ErrInvalidDataProvided signals a malformed or missing required field.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrUnableToLogin is the single credential-failure signal. An unknown
	// email and a wrong password produce this same error so that callers
	// cannot enumerate registered accounts.
	ErrUnableToLogin = errors.New("unable to login")

	// ErrInvalidToken signals a token whose signature is invalid or which
	// cannot be parsed at all.
	ErrInvalidToken = errors.New("token is invalid")

	// ErrTokenRevoked signals a well-signed token that is no longer present
	// in the owning user's session allow-list.
	ErrTokenRevoked = errors.New("token has been revoked")

	// ErrTokenCreationFailed signals a failure while signing a new token.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrDisallowedField signals an update body containing a key outside the
	// allowed mutable set. The whole update is rejected; no field is applied.
	ErrDisallowedField = errors.New("disallowed update field")
)
