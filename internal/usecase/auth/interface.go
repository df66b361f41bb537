package auth

import "context"

// Usecase defines the interface for session authentication operations.
type Usecase interface {
	Login(ctx context.Context, in LoginRequest) (*LoginResponse, error)
	Logout(ctx context.Context, in LogoutRequest) (*LogoutResponse, error)
	IsAuthenticated(ctx context.Context, sessionKey string) (bool, error)
}
