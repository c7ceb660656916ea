package service

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"warga-be-svc/internal/config"
	"warga-be-svc/internal/models/response"
	"warga-be-svc/pkg/logger"
)

// ErrInvalidCredentials is returned when the login credentials do not match
var ErrInvalidCredentials = errors.New("invalid credentials")

// RoleAdmin is the role claim granting full access to mutating endpoints
const RoleAdmin = "admin"

// AuthService interface defines session token operations
type AuthService interface {
	Login(username, password string) (*response.LoginResponse, error)
}

// authService implements AuthService interface
type authService struct {
	cfg    config.AuthConfig
	logger *logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(cfg config.AuthConfig, logger *logger.Logger) AuthService {
	return &authService{
		cfg:    cfg,
		logger: logger,
	}
}

// Login exchanges the configured admin credentials for a signed session token
// with an explicit expiry. There is no persisted session state to revoke; the
// expiry claim is the revalidation policy.
func (s *authService) Login(username, password string) (*response.LoginResponse, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword)) == 1
	if !userOK || !passOK {
		s.logger.WithField("username", username).Info("Login rejected")
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	expiresAt := now.Add(s.cfg.TokenTTL)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  username,
		"role": RoleAdmin,
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	})

	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		s.logger.WithError(err).Error("Failed to sign session token")
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	s.logger.WithField("username", username).Info("Login successful")

	return &response.LoginResponse{
		Token:     signed,
		Role:      RoleAdmin,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}
