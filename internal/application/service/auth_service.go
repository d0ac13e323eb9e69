package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/alavista-lab/cotizador-api/internal/domain/catalog"
	"github.com/alavista-lab/cotizador-api/internal/domain/entity"
	"github.com/alavista-lab/cotizador-api/internal/domain/repository"
	"github.com/alavista-lab/cotizador-api/pkg/apperror"
	"github.com/alavista-lab/cotizador-api/pkg/utils"
)

// AuthService handles authentication-related operations
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

// LoginInput represents the login input. The area selects which business
// area the session operates under and tags every operation saved with it.
type LoginInput struct {
	Username string
	Password string
	Area     string
}

// LoginOutput represents the login output
type LoginOutput struct {
	User         *entity.User
	Area         string
	AccessToken  string
	RefreshToken string
}

// Login authenticates a user against username, password and area
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	if !catalog.ValidArea(input.Area) {
		return nil, apperror.ErrInvalidArea
	}

	user, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Username, user.Role, input.Area)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID, input.Area)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		User:         user,
		Area:         input.Area,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshToken issues a new token pair from a valid refresh token. The area
// of the original session is preserved.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*LoginOutput, error) {
	userID, area, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidToken
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Username, user.Role, area)
	if err != nil {
		return nil, err
	}

	newRefreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID, area)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		User:         user,
		Area:         area,
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// GetProfile returns the authenticated user's record
func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// Areas lists the areas a user can log into
func (s *AuthService) Areas() []string {
	return catalog.Areas
}
