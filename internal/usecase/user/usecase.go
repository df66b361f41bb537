package user

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	domain "user-directory-service/internal/domain/user"
	apperrors "user-directory-service/pkg/errors"

	"github.com/go-playground/validator/v10"
)

// Repository defines the interface for user data access operations.
// It abstracts the storage layer; the shipped implementation is the
// in-memory store, but anything honoring the id-assignment policy fits.
type Repository interface {
	// Create inserts a new user, assigning its id.
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	// GetByID retrieves a user by id, (nil, nil) on miss.
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	// Update overwrites name and email, (nil, nil) on miss.
	Update(ctx context.Context, id int64, name, email string) (*domain.User, error)
	// Delete removes a user by id, false on miss.
	Delete(ctx context.Context, id int64) (bool, error)
	// List returns users in insertion order.
	List(ctx context.Context) ([]domain.User, error)
}

// Service implements the business logic for user directory operations.
type Service struct {
	repo     Repository          // Repository for data access
	log      *zap.Logger         // Logger for structured logging
	validate *validator.Validate // Validator for create requests
}

// New creates a new Service with the provided repository and logger.
func New(r Repository, log *zap.Logger) *Service {
	return &Service{repo: r, log: log, validate: validator.New()}
}

// formatValidationError converts validator.ValidationErrors into a
// field→messages validation error.
func formatValidationError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	out := &apperrors.ValidationError{}
	for _, e := range validationErrors {
		switch e.Tag() {
		case "required":
			out.Add(e.Field(), fmt.Sprintf("%s is required", e.Field()))
		case "email":
			out.Add(e.Field(), fmt.Sprintf("%s must be a valid email", e.Field()))
		case "min":
			out.Add(e.Field(), fmt.Sprintf("%s must be at least %s characters", e.Field(), e.Param()))
		case "max":
			out.Add(e.Field(), fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param()))
		default:
			out.Add(e.Field(), fmt.Sprintf("%s is invalid", e.Field()))
		}
	}
	return out
}

// CreateUser validates the candidate, stores it with a freshly assigned id
// and returns the stored record with its canonical location.
func (s *Service) CreateUser(ctx context.Context, in CreateUserRequest) (*CreateUserResponse, error) {
	s.log.Info("creating user", zap.String("name", in.Name), zap.String("email", in.Email))

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	stored, err := s.repo.Create(ctx, &domain.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
	})
	if err != nil {
		s.log.Error("failed to create user", zap.Error(err))
		return nil, err
	}

	return &CreateUserResponse{
		User:     toDTO(stored),
		Location: fmt.Sprintf("/users/%d", stored.ID),
	}, nil
}

// UpdateUser overwrites name and email of an existing user. The patch is
// applied as-is: only create validates fields, update never does.
func (s *Service) UpdateUser(ctx context.Context, in UpdateUserRequest) (*UpdateUserResponse, error) {
	s.log.Info("updating user", zap.Int64("id", in.ID), zap.String("name", in.Name), zap.String("email", in.Email))

	updated, err := s.repo.Update(ctx, in.ID, in.Name, in.Email)
	if err != nil {
		s.log.Error("failed to update user", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}
	if updated == nil {
		s.log.Warn("user not found for update", zap.Int64("id", in.ID))
		return nil, apperrors.NewNotFoundError("user", fmt.Sprintf("user not found: id=%d", in.ID))
	}

	return &UpdateUserResponse{User: toDTO(updated)}, nil
}

// DeleteUser removes a user by id.
func (s *Service) DeleteUser(ctx context.Context, in DeleteUserRequest) error {
	s.log.Info("deleting user", zap.Int64("id", in.ID))

	deleted, err := s.repo.Delete(ctx, in.ID)
	if err != nil {
		s.log.Error("failed to delete user", zap.Int64("id", in.ID), zap.Error(err))
		return err
	}
	if !deleted {
		s.log.Warn("user not found for delete", zap.Int64("id", in.ID))
		return apperrors.NewNotFoundError("user", fmt.Sprintf("user not found: id=%d", in.ID))
	}

	return nil
}

// GetUser retrieves a user by id.
func (s *Service) GetUser(ctx context.Context, in GetUserRequest) (*GetUserResponse, error) {
	u, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		s.log.Error("failed to get user", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}
	if u == nil {
		s.log.Warn("user not found", zap.Int64("id", in.ID))
		return nil, apperrors.NewNotFoundError("user", fmt.Sprintf("user not found: id=%d", in.ID))
	}

	return &GetUserResponse{User: toDTO(u)}, nil
}

// ListUsers returns all users in insertion order.
func (s *Service) ListUsers(ctx context.Context) (*ListUsersResponse, error) {
	domainUsers, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list users", zap.Error(err))
		return nil, err
	}

	users := make([]User, len(domainUsers))
	for i, du := range domainUsers {
		users[i] = toDTO(&du)
	}

	return &ListUsersResponse{Users: users}, nil
}

func toDTO(u *domain.User) User {
	return User{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}
