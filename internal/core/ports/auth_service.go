package ports

import (
	"context"

	"github.com/classtrack/attendance-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, error)
}
