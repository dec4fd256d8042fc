package service

import (
	"context"
	"testing"
	"time"

	"github.com/jasimjamil/course-feedbig-system/internal/model"
	"github.com/jasimjamil/course-feedbig-system/internal/repository"
	"github.com/pashagolub/pgxmock/v4"
)

func TestFeedbackLifecycle(t *testing.T) {
	svc, mock := newTestServices(t)
	ctx := context.Background()
	now := time.Now().UTC()
	columns := []string{"id", "course_id", "student_id", "content", "rating", "created_at"}

	mock.ExpectQuery("INSERT INTO feedback").
		WithArgs(int64(7), int64(3), "Great class", model.DefaultRating).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectQuery("FROM feedback").
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows(columns).AddRow(int64(1), int64(7), int64(3), "Great class", 3, now))
	mock.ExpectExec("DELETE FROM feedback").
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectQuery("FROM feedback").
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows(columns))

	id, err := svc.Feedback.Submit(ctx, 7, 3, "Great class", model.DefaultRating)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	before, err := svc.Feedback.ListByCourse(ctx, 7)
	if err != nil {
		t.Fatalf("ListByCourse: %v", err)
	}
	if len(before) != 1 || before[0].ID != id || before[0].CreatedAt.IsZero() {
		t.Fatalf("unexpected feedback: %+v", before)
	}

	deleted, err := svc.Feedback.Delete(ctx, id)
	if err != nil || !deleted {
		t.Fatalf("Delete = %v, %v", deleted, err)
	}

	after, err := svc.Feedback.ListByCourse(ctx, 7)
	if err != nil {
		t.Fatalf("ListByCourse: %v", err)
	}
	if len(after) != 0 {
		t.Errorf("deleted feedback still listed: %+v", after)
	}
}

func TestCourseSeedDefaults(t *testing.T) {
	svc, mock := newTestServices(t)

	mock.ExpectBegin()
	mock.ExpectExec("pg_advisory_xact_lock").
		WithArgs(repository.SeedLockKey).
		WillReturnResult(pgxmock.NewResult("SELECT", 1))
	mock.ExpectExec("WHERE NOT EXISTS").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))
	mock.ExpectCommit()

	inserted, err := svc.Courses.SeedDefaults(context.Background())
	if err != nil {
		t.Fatalf("SeedDefaults: %v", err)
	}
	if inserted != 0 {
		t.Errorf("a populated catalogue should not be seeded, inserted %d", inserted)
	}
}
