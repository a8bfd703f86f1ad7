package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/classtrack/attendance-api/internal/core/domain"
)

// AuthRepository persists User records in the users table.
type AuthRepository struct {
	db *sql.DB
}

func NewAuthRepository(s *Storage) *AuthRepository {
	return &AuthRepository{db: s.DB()}
}

func (r *AuthRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (username, email, password_hash, is_active, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.IsActive,
		user.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: users.username") {
			return domain.ErrUsernameTaken
		}
		// Any other integrity violation (duplicate email) surfaces as a
		// generic invalid-data failure.
		if strings.Contains(err.Error(), "constraint failed") {
			return domain.ErrInvalidData
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *AuthRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT username, email, password_hash, is_active, created_at
		FROM users
		WHERE username = ?
	`

	user := &domain.User{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.IsActive,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return user, nil
}
