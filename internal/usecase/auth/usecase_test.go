package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"user-directory-service/internal/adapter/session"
	domain "user-directory-service/internal/domain/user"
	apperrors "user-directory-service/pkg/errors"
	"user-directory-service/pkg/security"
)

// MockUserSource is a mock implementation of the UserSource interface
type MockUserSource struct {
	mock.Mock
}

func (m *MockUserSource) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

func setupTestService(t *testing.T, users ...domain.User) (*Service, *MockUserSource) {
	source := new(MockUserSource)
	source.On("List", mock.Anything).Return(users, nil).Maybe()
	logger := zaptest.NewLogger(t)
	svc := New(source, session.NewMemoryRegistry(logger), security.NewPlaintextComparer(), logger)
	return svc, source
}

func TestLogin_Success(t *testing.T) {
	svc, _ := setupTestService(t,
		domain.User{ID: 1, Name: "Alice", Email: "alice@example.com", Password: "wonderland"},
	)
	ctx := context.Background()

	resp, err := svc.Login(ctx, LoginRequest{Email: "alice@example.com", Password: "wonderland"})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.SessionKey)
	assert.Equal(t, "login successful", resp.Message)

	ok, err := svc.IsAuthenticated(ctx, resp.SessionKey)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := setupTestService(t,
		domain.User{ID: 1, Name: "Alice", Email: "alice@example.com", Password: "wonderland"},
	)

	resp, err := svc.Login(context.Background(), LoginRequest{Email: "alice@example.com", Password: "Wonderland"})

	require.Error(t, err)
	assert.Nil(t, resp)

	var ua *apperrors.UnauthorizedError
	assert.ErrorAs(t, err, &ua)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _ := setupTestService(t,
		domain.User{ID: 1, Name: "Alice", Email: "alice@example.com", Password: "wonderland"},
	)

	resp, err := svc.Login(context.Background(), LoginRequest{Email: "mallory@example.com", Password: "wonderland"})

	require.Error(t, err)
	assert.Nil(t, resp)

	var ua *apperrors.UnauthorizedError
	assert.ErrorAs(t, err, &ua)
}

func TestLogin_TwoSessionsForSameUser(t *testing.T) {
	svc, _ := setupTestService(t,
		domain.User{ID: 1, Name: "Alice", Email: "alice@example.com", Password: "wonderland"},
	)
	ctx := context.Background()
	creds := LoginRequest{Email: "alice@example.com", Password: "wonderland"}

	first, err := svc.Login(ctx, creds)
	require.NoError(t, err)
	second, err := svc.Login(ctx, creds)
	require.NoError(t, err)

	assert.NotEqual(t, first.SessionKey, second.SessionKey)

	// Each token stays valid until individually logged out.
	_, err = svc.Logout(ctx, LogoutRequest{SessionKey: first.SessionKey})
	require.NoError(t, err)

	ok, err := svc.IsAuthenticated(ctx, second.SessionKey)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLogout_Success(t *testing.T) {
	svc, _ := setupTestService(t,
		domain.User{ID: 1, Name: "Alice", Email: "alice@example.com", Password: "wonderland"},
	)
	ctx := context.Background()

	login, err := svc.Login(ctx, LoginRequest{Email: "alice@example.com", Password: "wonderland"})
	require.NoError(t, err)

	resp, err := svc.Logout(ctx, LogoutRequest{SessionKey: login.SessionKey})
	require.NoError(t, err)
	assert.Equal(t, "logout successful", resp.Message)

	ok, err := svc.IsAuthenticated(ctx, login.SessionKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLogout_TwiceRejectsSecondCall(t *testing.T) {
	svc, _ := setupTestService(t,
		domain.User{ID: 1, Name: "Alice", Email: "alice@example.com", Password: "wonderland"},
	)
	ctx := context.Background()

	login, err := svc.Login(ctx, LoginRequest{Email: "alice@example.com", Password: "wonderland"})
	require.NoError(t, err)

	_, err = svc.Logout(ctx, LogoutRequest{SessionKey: login.SessionKey})
	require.NoError(t, err)

	_, err = svc.Logout(ctx, LogoutRequest{SessionKey: login.SessionKey})
	require.Error(t, err)

	var ua *apperrors.UnauthorizedError
	assert.ErrorAs(t, err, &ua)
}

func TestLogout_UnknownToken(t *testing.T) {
	svc, _ := setupTestService(t)

	_, err := svc.Logout(context.Background(), LogoutRequest{SessionKey: "never-issued"})

	require.Error(t, err)
	var ua *apperrors.UnauthorizedError
	assert.ErrorAs(t, err, &ua)
}

func TestIsAuthenticated_UnknownToken(t *testing.T) {
	svc, _ := setupTestService(t)

	ok, err := svc.IsAuthenticated(context.Background(), "never-issued")
	require.NoError(t, err)
	assert.False(t, ok)
}
