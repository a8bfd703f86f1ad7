package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/classtrack/attendance-api/internal/core/domain"
)

// StudentRepository persists attendance records in the students table. The
// primary key constraint is the single serialization point for conflict
// detection, and RowsAffected carries the not-found signal for update and
// delete, so no operation needs a separate existence read.
type StudentRepository struct {
	db *sql.DB
}

func NewStudentRepository(s *Storage) *StudentRepository {
	return &StudentRepository{db: s.DB()}
}

func (r *StudentRepository) Create(ctx context.Context, student *domain.Student) error {
	query := `
		INSERT INTO students (student_id, student_name, course_name, date)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		student.StudentID,
		student.StudentName,
		student.CourseName,
		student.Date.ISO(),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: students.student_id") {
			return domain.ErrStudentExists
		}
		return fmt.Errorf("insert student: %w", err)
	}

	return nil
}

func (r *StudentRepository) FindByID(ctx context.Context, id string) (*domain.Student, error) {
	query := `
		SELECT student_id, student_name, course_name, date
		FROM students
		WHERE student_id = ?
	`

	return scanStudent(r.db.QueryRowContext(ctx, query, id))
}

func (r *StudentRepository) FindAll(ctx context.Context) ([]domain.Student, error) {
	query := `
		SELECT student_id, student_name, course_name, date
		FROM students
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer rows.Close()

	students := []domain.Student{}
	for rows.Next() {
		var s domain.Student
		var iso string
		if err := rows.Scan(&s.StudentID, &s.StudentName, &s.CourseName, &iso); err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		if s.Date, err = domain.ParseISODate(iso); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}

	return students, nil
}

func (r *StudentRepository) Update(ctx context.Context, student *domain.Student) error {
	query := `
		UPDATE students
		SET student_name = ?, course_name = ?, date = ?
		WHERE student_id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		student.StudentName,
		student.CourseName,
		student.Date.ISO(),
		student.StudentID,
	)
	if err != nil {
		return fmt.Errorf("update student: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update student: %w", err)
	}
	if rows == 0 {
		return domain.ErrStudentNotFound
	}

	return nil
}

func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM students WHERE student_id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	if rows == 0 {
		return domain.ErrStudentNotFound
	}

	return nil
}

func scanStudent(row *sql.Row) (*domain.Student, error) {
	var s domain.Student
	var iso string
	err := row.Scan(&s.StudentID, &s.StudentName, &s.CourseName, &iso)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, fmt.Errorf("find student: %w", err)
	}
	if s.Date, err = domain.ParseISODate(iso); err != nil {
		return nil, err
	}
	return &s, nil
}
