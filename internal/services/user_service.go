// internal/services/user_service.go
// Organizer profile management

package services

import (
	"context"
	"fmt"

	"badminton-court-engine/internal/models"
	"badminton-court-engine/internal/repositories"
	"badminton-court-engine/internal/utils"
)

// UserService handles organizer profile business logic
type UserService struct {
	userRepo *repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo *repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetByID retrieves an organizer by ID
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""

	return user, nil
}

// UpdateProfile updates the organizer's display name
func (s *UserService) UpdateProfile(ctx context.Context, userID string, fullName string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if fullName != "" {
		user.FullName = utils.SanitizeString(fullName)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	user.PasswordHash = ""

	return user, nil
}
