package auth

// LoginRequest represents the request payload for logging in.
type LoginRequest struct {
	Email    string
	Password string
}

// LoginResponse represents the response payload after a successful login.
// SessionKey is the opaque token identifying the new session.
type LoginResponse struct {
	Message    string
	SessionKey string
}

// LogoutRequest represents the request payload for logging out.
type LogoutRequest struct {
	SessionKey string
}

// LogoutResponse represents the response payload after a successful logout.
type LogoutResponse struct {
	Message string
}
