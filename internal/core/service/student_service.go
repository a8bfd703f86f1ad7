package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/classtrack/attendance-api/internal/core/domain"
	"github.com/classtrack/attendance-api/internal/core/ports"
)

// StudentService implements attendance record CRUD with conflict and
// not-found semantics.
type StudentService struct {
	repo   ports.StudentRepository
	logger zerolog.Logger
}

func NewStudentService(repo ports.StudentRepository, logger zerolog.Logger) *StudentService {
	return &StudentService{repo: repo, logger: logger}
}

// Create inserts a new record. A record with the same studentID must not
// exist; the conflict check is delegated to the repository's key constraint
// so that check-and-insert stays atomic under concurrent requests.
func (s *StudentService) Create(ctx context.Context, input ports.StudentInput) (*domain.Student, error) {
	if input.StudentID == "" {
		return nil, domain.ErrInvalidData
	}

	date, err := domain.ParseDate(input.Date)
	if err != nil {
		return nil, err
	}

	student := &domain.Student{
		StudentID:   input.StudentID,
		StudentName: input.StudentName,
		CourseName:  input.CourseName,
		Date:        date,
	}

	if err := s.repo.Create(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().Str("student_id", student.StudentID).Str("course", student.CourseName).Msg("student created")
	return student, nil
}

func (s *StudentService) Get(ctx context.Context, id string) (*domain.Student, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *StudentService) List(ctx context.Context) ([]domain.Student, error) {
	return s.repo.FindAll(ctx)
}

// Update performs a full replace of every field except the key itself: the
// payload's studentID is accepted but only the path id identifies the
// record, so updates never rename.
func (s *StudentService) Update(ctx context.Context, id string, input ports.StudentInput) (*domain.Student, error) {
	date, err := domain.ParseDate(input.Date)
	if err != nil {
		return nil, err
	}

	student := &domain.Student{
		StudentID:   id,
		StudentName: input.StudentName,
		CourseName:  input.CourseName,
		Date:        date,
	}

	if err := s.repo.Update(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().Str("student_id", id).Msg("student updated")
	return student, nil
}

func (s *StudentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("student_id", id).Msg("student deleted")
	return nil
}
