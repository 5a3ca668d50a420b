package models

// AuthResponse is the body returned by signup and login: the public view of
// the user plus the freshly issued session token.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// ErrorResponse is the uniform error body for non-2xx replies.
type ErrorResponse struct {
	Error string `json:"error"`
}
