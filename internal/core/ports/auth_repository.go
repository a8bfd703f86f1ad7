package ports

import (
	"context"

	"github.com/classtrack/attendance-api/internal/core/domain"
)

// AuthRepository defines the interface for user credential persistence.
type AuthRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
