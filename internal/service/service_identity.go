package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-circuit-records/internal/config"
	"github.com/MKhiriev/go-circuit-records/internal/logger"
	"github.com/MKhiriev/go-circuit-records/internal/store"
	"github.com/MKhiriev/go-circuit-records/internal/utils"
	"github.com/MKhiriev/go-circuit-records/models"
)

type identityResolver struct {
	userRepository store.UserRepository

	tokenSignKey string
	tokenIssuer  string
	now          func() time.Time

	logger *logger.Logger
}

func NewIdentityResolver(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) IdentityResolver {
	return &identityResolver{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		now:            time.Now,
		logger:         logger,
	}
}

// Resolve validates token and re-reads its user on every call, so a
// deactivation takes effect on the next request even though the token itself
// stays valid until it expires.
//
// Errors:
//   - utils.ErrTokenExpired, utils.ErrTokenMalformed, utils.ErrTokenMissingClaims
//     when the token itself is rejected.
//   - ErrUserNotFound when the user was deleted.
//   - ErrInactiveAccount when the user was deactivated.
func (r *identityResolver) Resolve(ctx context.Context, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	claims, err := utils.ValidateToken(token, r.tokenSignKey, r.tokenIssuer, r.now())
	if err != nil {
		log.Debug().Err(err).Str("func", "*identityResolver.Resolve").Msg("token rejected")
		return models.User{}, err
	}

	user, err := r.userRepository.FindUserByID(ctx, claims.UserID)
	if errors.Is(err, store.ErrNotFound) {
		log.Info().Str("func", "*identityResolver.Resolve").Str("user_id", claims.UserID).Msg("token for unknown user")
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	if !user.IsActive {
		log.Info().Str("func", "*identityResolver.Resolve").Str("user_id", user.ID).Msg("token for inactive user")
		return models.User{}, ErrInactiveAccount
	}

	return user, nil
}
