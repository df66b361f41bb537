package auth

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"user-directory-service/internal/adapter/session"
	domain "user-directory-service/internal/domain/user"
	apperrors "user-directory-service/pkg/errors"
	"user-directory-service/pkg/security"
)

// UserSource provides the user records login scans for a credential match.
type UserSource interface {
	List(ctx context.Context) ([]domain.User, error)
}

// Service implements session-based login and logout over a Registry.
type Service struct {
	users    UserSource                  // Source of user records
	sessions session.Registry            // Active session tokens
	compare  security.CredentialComparer // Password comparison strategy
	log      *zap.Logger                 // Logger for structured logging
}

// New creates a new Service with the provided user source, session registry
// and credential comparer.
func New(users UserSource, sessions session.Registry, compare security.CredentialComparer, log *zap.Logger) *Service {
	return &Service{users: users, sessions: sessions, compare: compare, log: log}
}

// Login scans the store for a user whose email and password both match the
// supplied credentials. On a match it registers a fresh session token,
// unique among currently active tokens, and returns it. A user may hold any
// number of concurrent sessions.
func (s *Service) Login(ctx context.Context, in LoginRequest) (*LoginResponse, error) {
	s.log.Info("login attempt", zap.String("email", in.Email))

	users, err := s.users.List(ctx)
	if err != nil {
		s.log.Error("failed to scan users for login", zap.Error(err))
		return nil, err
	}

	var matched *domain.User
	for i := range users {
		if users[i].Email == in.Email && s.compare.Matches(users[i].Password, in.Password) {
			matched = &users[i]
			break
		}
	}
	if matched == nil {
		s.log.Warn("login failed", zap.String("email", in.Email))
		return nil, apperrors.NewUnauthorizedError("invalid email or password")
	}

	token, err := s.newToken(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Put(ctx, token, matched.ID); err != nil {
		s.log.Error("failed to record session", zap.Int64("user_id", matched.ID), zap.Error(err))
		return nil, err
	}

	s.log.Info("login succeeded", zap.Int64("user_id", matched.ID))
	return &LoginResponse{
		Message:    "login successful",
		SessionKey: token,
	}, nil
}

// newToken generates a session token guaranteed unique among active ones.
// UUIDs make a collision vanishingly unlikely; the check keeps the
// uniqueness guarantee unconditional.
func (s *Service) newToken(ctx context.Context) (string, error) {
	for {
		token := uuid.New().String()
		active, err := s.sessions.Contains(ctx, token)
		if err != nil {
			s.log.Error("failed to check token uniqueness", zap.Error(err))
			return "", err
		}
		if !active {
			return token, nil
		}
	}
}

// Logout removes the session token from the registry. Unknown tokens,
// including ones already logged out, are rejected as unauthorized.
func (s *Service) Logout(ctx context.Context, in LogoutRequest) (*LogoutResponse, error) {
	removed, err := s.sessions.Remove(ctx, in.SessionKey)
	if err != nil {
		s.log.Error("failed to remove session", zap.Error(err))
		return nil, err
	}
	if !removed {
		s.log.Warn("logout with unknown session key")
		return nil, apperrors.NewUnauthorizedError("invalid session key")
	}

	s.log.Info("logout succeeded")
	return &LogoutResponse{Message: "logout successful"}, nil
}

// IsAuthenticated reports whether the session key identifies an active
// session. It exposes no owner identity.
func (s *Service) IsAuthenticated(ctx context.Context, sessionKey string) (bool, error) {
	return s.sessions.Contains(ctx, sessionKey)
}
