package ports

import (
	"context"

	"github.com/classtrack/attendance-api/internal/core/domain"
)

// StudentRepository defines the interface for attendance record persistence.
// Create reports domain.ErrStudentExists when the studentID is already
// taken; Update and Delete report domain.ErrStudentNotFound when it is not.
type StudentRepository interface {
	Create(ctx context.Context, student *domain.Student) error
	FindByID(ctx context.Context, id string) (*domain.Student, error)
	FindAll(ctx context.Context) ([]domain.Student, error)
	Update(ctx context.Context, student *domain.Student) error
	Delete(ctx context.Context, id string) error
}
