package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hangerline/hangerline-backend-go/internal/domain/auth"
	"github.com/hangerline/hangerline-backend-go/internal/domain/user"
	"github.com/hangerline/hangerline-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwt.Service
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepository,
		Service:        jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest) (auth.AccessTokenResponse, error) {
	if err := loginReq.Validate(); err != nil {
		return auth.AccessTokenResponse{}, err
	}

	userData, err := a.UserRepository.GetByUsername(ctx, loginReq.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.AccessTokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if userData.PasswordHash == "" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(loginReq.Password)); err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidCredentials
	}
	if !userData.IsActive {
		return auth.AccessTokenResponse{}, auth.ErrAccountInactive
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(userData.ID, userData.Username, userData.IsStaff)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	if err := a.UserRepository.UpdateLastLogin(ctx, userData.ID); err != nil {
		slog.Warn("Failed to record last login", "user_id", userData.ID, "error", err)
	}

	slog.Info("User logged in", "user_id", userData.ID, "is_staff", userData.IsStaff)
	return auth.AccessTokenResponse{
		AccessToken:          token,
		AccessTokenExpiresIn: expiresAt,
		Username:             userData.Username,
		IsStaff:              userData.IsStaff,
	}, nil
}
