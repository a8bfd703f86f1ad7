package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/classtrack/attendance-api/internal/core/domain"
	"github.com/classtrack/attendance-api/internal/core/ports"
)

// AuthService implements registration and login with stateless JWT issuance.
type AuthService struct {
	repo      ports.AuthRepository
	jwtSecret string
	method    jwt.SigningMethod
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

// NewAuthService builds an AuthService signing tokens with the given HMAC
// algorithm identifier (HS256 when empty or unknown).
func NewAuthService(repo ports.AuthRepository, jwtSecret, algorithm string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 15 * time.Minute
	}
	method := jwt.GetSigningMethod(algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		method = jwt.SigningMethodHS256
	}
	return &AuthService{
		repo:      repo,
		jwtSecret: jwtSecret,
		method:    method,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Register creates a new user with a bcrypt-hashed password. The username is
// checked first; a duplicate email is left to the store's unique constraint.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidData
	}

	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", username).Msg("user registered")
	return user, nil
}

// Login verifies the credentials and returns a signed bearer token. An
// unknown username and a wrong password produce the identical error so the
// response never reveals which one it was.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user.Username)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("username", username).Msg("login succeeded")
	return token, nil
}

func (s *AuthService) generateToken(username string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenTTL)),
	}

	t := jwt.NewWithClaims(s.method, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
