package di

import (
	"fmt"

	"user-directory-service/cmd/api/infrastructure"
	ginhandler "user-directory-service/internal/adapter/gin/handler"
	"user-directory-service/internal/adapter/memory"
	"user-directory-service/internal/adapter/session"
	"user-directory-service/internal/config"
	domain "user-directory-service/internal/domain/user"
	authuc "user-directory-service/internal/usecase/auth"
	useruc "user-directory-service/internal/usecase/user"
	redisclient "user-directory-service/pkg/redis"
	"user-directory-service/pkg/security"

	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	RedisClient *redisclient.Client // nil when the memory session backend is used
	UserRepo    *memory.UserRepoMem
	Registry    session.Registry
	UserUC      useruc.Usecase
	AuthUC      authuc.Usecase
	UserHandler *ginhandler.UserHandler
	AuthHandler *ginhandler.AuthHandler
}

// seedUsers are the demonstration records loaded when STORE_SEED is on.
var seedUsers = []domain.User{
	{ID: 1, Name: "Alice", Email: "alice@example.com", Password: "password123"},
	{ID: 2, Name: "Bob", Email: "bob@example.com", Password: "password123"},
}

// NewContainer creates and initializes all application dependencies
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	// Validate configuration before initializing any dependencies
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Initialize user store
	var seed []domain.User
	if cfg.Store.Seed {
		seed = seedUsers
	}
	repo := memory.NewUserRepoMem(l, seed...)

	// Initialize session registry
	var rdb *redisclient.Client
	var registry session.Registry
	switch cfg.Session.Backend {
	case config.SessionBackendRedis:
		var err error
		rdb, err = infrastructure.NewRedisClient(cfg, l)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Redis: %w", err)
		}
		registry = session.NewRedisRegistry(rdb.Client, l)
	default:
		registry = session.NewMemoryRegistry(l)
	}

	// Initialize use cases
	userUC := useruc.New(repo, l)
	authUC := authuc.New(repo, registry, security.NewPlaintextComparer(), l)

	// Initialize Gin handlers
	userHandler := ginhandler.NewUserHandler(userUC, l)
	authHandler := ginhandler.NewAuthHandler(authUC, l)

	return &Container{
		Config:      cfg,
		Logger:      l,
		RedisClient: rdb,
		UserRepo:    repo,
		Registry:    registry,
		UserUC:      userUC,
		AuthUC:      authUC,
		UserHandler: userHandler,
		AuthHandler: authHandler,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			return fmt.Errorf("failed to close Redis: %w", err)
		}
	}
	return nil
}
