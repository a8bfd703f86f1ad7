package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/classtrack/attendance-api/internal/core/domain"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	store, err := Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("open storage: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleStudent(id string) *domain.Student {
	return &domain.Student{
		StudentID:   id,
		StudentName: "Alice",
		CourseName:  "Math",
		Date:        domain.NewDate(2024, time.March, 15),
	}
}

func TestStudentRepository_CreateAndFind(t *testing.T) {
	repo := NewStudentRepository(newTestStorage(t))
	ctx := context.Background()

	if err := repo.Create(ctx, sampleStudent("S1")); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.FindByID(ctx, "S1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.StudentName != "Alice" || got.CourseName != "Math" {
		t.Fatalf("unexpected record: %+v", got)
	}
	// The calendar date must round-trip through the store representation.
	if got.Date.Year() != 2024 || got.Date.Month() != time.March || got.Date.Day() != 15 {
		t.Fatalf("date did not round-trip: %v", got.Date)
	}
}

func TestStudentRepository_CreateConflictLeavesOriginal(t *testing.T) {
	repo := NewStudentRepository(newTestStorage(t))
	ctx := context.Background()

	if err := repo.Create(ctx, sampleStudent("S1")); err != nil {
		t.Fatalf("create: %v", err)
	}

	dup := sampleStudent("S1")
	dup.StudentName = "Impostor"
	if err := repo.Create(ctx, dup); err != domain.ErrStudentExists {
		t.Fatalf("expected ErrStudentExists, got %v", err)
	}

	got, err := repo.FindByID(ctx, "S1")
	if err != nil {
		t.Fatalf("find after conflict: %v", err)
	}
	if got.StudentName != "Alice" {
		t.Fatalf("conflict overwrote the original: %+v", got)
	}
}

func TestStudentRepository_FindByID_NotFound(t *testing.T) {
	repo := NewStudentRepository(newTestStorage(t))

	if _, err := repo.FindByID(context.Background(), "missing"); err != domain.ErrStudentNotFound {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}

func TestStudentRepository_FindAll(t *testing.T) {
	repo := NewStudentRepository(newTestStorage(t))
	ctx := context.Background()

	students, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("find all on empty store: %v", err)
	}
	if len(students) != 0 {
		t.Fatalf("expected empty slice, got %d", len(students))
	}

	for _, id := range []string{"S1", "S2", "S3"} {
		if err := repo.Create(ctx, sampleStudent(id)); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	students, err = repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(students) != 3 {
		t.Fatalf("expected 3 students, got %d", len(students))
	}
}

func TestStudentRepository_Update(t *testing.T) {
	repo := NewStudentRepository(newTestStorage(t))
	ctx := context.Background()

	if err := repo.Create(ctx, sampleStudent("S1")); err != nil {
		t.Fatalf("create: %v", err)
	}

	updated := &domain.Student{
		StudentID:   "S1",
		StudentName: "Alice B",
		CourseName:  "Physics",
		Date:        domain.NewDate(2024, time.June, 2),
	}
	if err := repo.Update(ctx, updated); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, _ := repo.FindByID(ctx, "S1")
	if got.CourseName != "Physics" || got.Date.Day() != 2 {
		t.Fatalf("update not applied: %+v", got)
	}
}

func TestStudentRepository_Update_NotFound(t *testing.T) {
	repo := NewStudentRepository(newTestStorage(t))

	if err := repo.Update(context.Background(), sampleStudent("missing")); err != domain.ErrStudentNotFound {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}

func TestStudentRepository_Delete(t *testing.T) {
	repo := NewStudentRepository(newTestStorage(t))
	ctx := context.Background()

	if err := repo.Create(ctx, sampleStudent("S1")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Delete(ctx, "S1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, "S1"); err != domain.ErrStudentNotFound {
		t.Fatalf("expected ErrStudentNotFound on second delete, got %v", err)
	}
	if _, err := repo.FindByID(ctx, "S1"); err != domain.ErrStudentNotFound {
		t.Fatalf("record still present after delete: %v", err)
	}
}
