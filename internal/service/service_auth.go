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
	"github.com/MKhiriev/go-circuit-records/internal/validators"
	"github.com/MKhiriev/go-circuit-records/internal/workers"
	"github.com/MKhiriev/go-circuit-records/models"
)

// IDGenerator produces identifiers for new records.
type IDGenerator interface {
	Generate() string
}

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification and token issuance
// using a UserRepository for persistence and bcrypt through the hashing pool.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher runs bcrypt on the bounded worker pool.
	hasher workers.PasswordHasher

	validator validators.Validator
	ids       IDGenerator

	// tokenSignKey is the HMAC secret used to sign access tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	tokenIssuer string

	// now is the clock used for created_at and token issuance.
	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	hasher workers.PasswordHasher,
	validator validators.Validator,
	ids IDGenerator,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validator,
		ids:            ids,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		now:            time.Now,
		logger:         logger,
	}
}

// Register creates a new active account.
//
// The username is checked first so that a taken name is reported without
// spending a bcrypt hash. The unique index still decides concurrent races.
//
// Returns the persisted user or:
//   - an error wrapping validators.ErrValidation for a malformed request.
//   - ErrDuplicateUsername if the username is taken.
//   - a wrapped storage or hashing error otherwise.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}

	_, err := a.userRepository.FindUserByUsername(ctx, req.Username)
	switch {
	case err == nil:
		log.Info().Str("func", "*authService.Register").Str("username", req.Username).Msg("username already taken")
		return models.User{}, ErrDuplicateUsername
	case !errors.Is(err, store.ErrNotFound):
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	hash, err := a.hasher.Hash(ctx, req.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		ID:           a.ids.Generate(),
		Username:     req.Username,
		PasswordHash: hash,
		FullName:     req.FullName,
		Role:         req.Role,
		Society:      req.Society,
		Organization: req.Organization,
		CreatedAt:    a.now().UTC(),
		IsActive:     true,
	}

	created, err := a.userRepository.CreateUser(ctx, user)
	if errors.Is(err, store.ErrUsernameAlreadyExists) {
		return models.User{}, ErrDuplicateUsername
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user registered")
	return created, nil
}

// Login verifies the credentials and issues an access token.
//
// An unknown username still costs one bcrypt comparison against a dummy hash.
// Every credential failure returns ErrInvalidCredentials; an inactive account
// additionally wraps ErrInactiveAccount for the logs.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.LoginResponse{}, err
	}

	user, err := a.userRepository.FindUserByUsername(ctx, req.Username)
	if errors.Is(err, store.ErrNotFound) {
		if dummyErr := a.hasher.CheckDummy(ctx, req.Password); dummyErr != nil {
			return models.LoginResponse{}, dummyErr
		}
		log.Info().Str("func", "*authService.Login").Msg("login for unknown username")
		return models.LoginResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("user search by username failed: %w", err)
	}

	ok, err := a.hasher.Check(ctx, req.Password, user.PasswordHash)
	if err != nil {
		return models.LoginResponse{}, err
	}
	if !ok {
		log.Info().Str("func", "*authService.Login").Str("user_id", user.ID).Msg("wrong password")
		return models.LoginResponse{}, ErrInvalidCredentials
	}

	if !user.IsActive {
		log.Info().Str("func", "*authService.Login").Str("user_id", user.ID).Msg("login to inactive account")
		return models.LoginResponse{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, ErrInactiveAccount)
	}

	token, err := utils.IssueToken(user.ID, user.Username, user.Role, a.tokenIssuer, a.tokenSignKey, a.now())
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.LoginResponse{
		AccessToken: token.String(),
		TokenType:   models.TokenType,
		User:        user.Public(),
	}, nil
}
