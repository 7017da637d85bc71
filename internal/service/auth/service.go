package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/fournilsoft/backoffice-go/internal/domain/auth"
	"github.com/fournilsoft/backoffice-go/internal/domain/user"
	"github.com/fournilsoft/backoffice-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	userRepo   user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// Same error as a bad password, so login failures never reveal
			// which emails exist.
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	if u.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(u)
}

func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	if refreshToken == "" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return auth.TokenResponse{}, auth.ErrTokenRevoked
	}

	userID, err := s.jwtService.DecodeRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("%w: %v", auth.ErrInvalidToken, err)
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, err
	}

	// Rotate: the old refresh token dies with the new pair.
	s.jwtService.RevokeToken(refreshToken)

	return s.issueTokens(u)
}

func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken != "" {
		s.jwtService.RevokeToken(refreshToken)
	}
	return nil
}

func (s *AuthServiceImpl) issueTokens(u user.User) (auth.TokenResponse, error) {
	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExpiresAt,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExpiresAt,
		UserID:                u.ID,
		Email:                 u.Email,
		FullName:              u.FullName,
		Role:                  string(u.Role),
	}, nil
}
