package services

import (
	"context"

	"github.com/ozan/alumnisphere/internal/app/repositories"
)

// UserService exposes the narrow user lookup surface
type UserService interface {
	GetNameByID(ctx context.Context, id int64) (string, error)
}

type userServiceImpl struct {
	userRepo repositories.IUserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.IUserRepository) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
	}
}

// GetNameByID returns only the user's display name
func (s *userServiceImpl) GetNameByID(ctx context.Context, id int64) (string, error) {
	return s.userRepo.GetNameByID(ctx, id)
}
