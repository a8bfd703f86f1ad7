package ports

import (
	"context"

	"github.com/classtrack/attendance-api/internal/core/domain"
)

// StudentInput carries the raw payload of a create or full-replace update.
// Date is the textual DD/MM/YYYY form; the service owns its validation.
type StudentInput struct {
	StudentID   string
	StudentName string
	CourseName  string
	Date        string
}

type StudentService interface {
	Create(ctx context.Context, input StudentInput) (*domain.Student, error)
	Get(ctx context.Context, id string) (*domain.Student, error)
	List(ctx context.Context) ([]domain.Student, error)
	Update(ctx context.Context, id string, input StudentInput) (*domain.Student, error)
	Delete(ctx context.Context, id string) error
}
