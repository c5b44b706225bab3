// internal/services/auth_service.go
// Organizer authentication and authorization service

package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"badminton-court-engine/internal/config"
	"badminton-court-engine/internal/models"
	"badminton-court-engine/internal/repositories"
	"badminton-court-engine/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles organizer authentication and authorization
type AuthService struct {
	userRepo *repositories.UserRepository
	config   config.AuthConfig
	cache    *CacheService
	logger   *log.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo *repositories.UserRepository,
	config config.AuthConfig,
	cache *CacheService,
	logger *log.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		config:   config,
		cache:    cache,
		logger:   logger,
	}
}

// Register creates a new organizer account
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, *models.TokenPair, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.config.BCryptCost)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           utils.GenerateUUID(),
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		FullName:     req.FullName,
		Role:         models.RoleOrganizer,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, nil, fmt.Errorf("failed to create user: %w", err)
	}

	tokenPair, err := s.generateTokenPair(user)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	user.PasswordHash = ""

	return user, tokenPair, nil
}

// Login authenticates an organizer and returns tokens
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, *models.TokenPair, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	tokenPair, err := s.generateTokenPair(user)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	user.PasswordHash = ""

	return user, tokenPair, nil
}

// RefreshToken generates new tokens using a refresh token
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	cacheKey := fmt.Sprintf("refresh_token_%s", refreshToken)
	var userID string
	if err := s.cache.Get(cacheKey, &userID); err != nil {
		return nil, ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	s.cache.Delete(cacheKey)

	return s.generateTokenPair(user)
}

// generateTokenPair creates access and refresh tokens
func (s *AuthService) generateTokenPair(user *models.User) (*models.TokenPair, error) {
	accessToken, err := utils.GenerateJWT(user.ID, string(user.Role), s.config.JWTSecret, s.config.JWTExpiration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := utils.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	cacheKey := fmt.Sprintf("refresh_token_%s", refreshToken)
	if err := s.cache.Set(cacheKey, user.ID, s.config.RefreshTokenExpiry); err != nil {
		return nil, fmt.Errorf("failed to cache refresh token: %w", err)
	}

	return &models.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(s.config.JWTExpiration),
	}, nil
}

// ValidateToken validates a JWT token and returns the user ID and role
func (s *AuthService) ValidateToken(token string) (string, string, error) {
	userID, role, err := utils.ValidateJWT(token, s.config.JWTSecret)
	if err != nil {
		return "", "", ErrInvalidToken
	}

	return userID, role, nil
}

// Logout invalidates a refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken != "" {
		cacheKey := fmt.Sprintf("refresh_token_%s", refreshToken)
		s.cache.Delete(cacheKey)
	}
	return nil
}

// ChangePassword changes an organizer's password
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.config.BCryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, string(hashedPassword)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
