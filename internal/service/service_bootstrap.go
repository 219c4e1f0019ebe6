package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-circuit-records/internal/config"
	"github.com/MKhiriev/go-circuit-records/internal/logger"
	"github.com/MKhiriev/go-circuit-records/internal/store"
	"github.com/MKhiriev/go-circuit-records/internal/workers"
	"github.com/MKhiriev/go-circuit-records/models"
)

const (
	// DefaultAdminUsername is the reserved name of the administrator created
	// at first start.
	DefaultAdminUsername = "admin"

	defaultAdminFullName = "System Administrator"
)

type bootstrapService struct {
	userRepository store.UserRepository
	hasher         workers.PasswordHasher
	ids            IDGenerator

	adminPassword string
	now           func() time.Time

	logger *logger.Logger
}

func NewBootstrapService(
	userRepository store.UserRepository,
	hasher workers.PasswordHasher,
	ids IDGenerator,
	cfg config.App,
	logger *logger.Logger,
) BootstrapService {
	return &bootstrapService{
		userRepository: userRepository,
		hasher:         hasher,
		ids:            ids,
		adminPassword:  cfg.DefaultAdminPassword,
		now:            time.Now,
		logger:         logger,
	}
}

// EnsureDefaultAdmin creates the "admin" account unless a user with that name
// already exists. Running it again, or from two instances at once, leaves
// exactly one such account.
func (b *bootstrapService) EnsureDefaultAdmin(ctx context.Context) error {
	_, err := b.userRepository.FindUserByUsername(ctx, DefaultAdminUsername)
	if err == nil {
		b.logger.Debug().Msg("default admin already exists")
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("admin lookup failed: %w", err)
	}

	hash, err := b.hasher.Hash(ctx, b.adminPassword)
	if err != nil {
		return fmt.Errorf("password hashing failed: %w", err)
	}

	admin := models.User{
		ID:           b.ids.Generate(),
		Username:     DefaultAdminUsername,
		PasswordHash: hash,
		FullName:     defaultAdminFullName,
		Role:         models.RoleAdmin,
		CreatedAt:    b.now().UTC(),
		IsActive:     true,
	}

	if _, err = b.userRepository.CreateUser(ctx, admin); err != nil {
		if errors.Is(err, store.ErrUsernameAlreadyExists) {
			return nil
		}
		return fmt.Errorf("admin creation failed: %w", err)
	}

	b.logger.Warn().Str("username", DefaultAdminUsername).Msg("default admin created")
	return nil
}
