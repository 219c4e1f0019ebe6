package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-circuit-records/internal/logger"
	"github.com/MKhiriev/go-circuit-records/internal/store"
	"github.com/MKhiriev/go-circuit-records/models"
)

type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("user listing failed: %w", err)
	}
	return users, nil
}

// SetActive activates or deactivates an account. A deactivated user is
// refused on the very next request.
func (s *userService) SetActive(ctx context.Context, id string, active bool) (models.User, error) {
	user, err := s.userRepository.SetUserActive(ctx, id, active)
	if err != nil {
		return models.User{}, fmt.Errorf("user activation change failed: %w", err)
	}
	return user, nil
}
