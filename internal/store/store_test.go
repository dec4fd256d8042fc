package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jasimjamil/course-feedbig-system/internal/config"
	"github.com/jasimjamil/course-feedbig-system/internal/errs"
	"github.com/jasimjamil/course-feedbig-system/internal/model"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
)

func newMockStore(t *testing.T) (*Store, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
		mock.Close()
	})

	cfg, err := config.ForURL("test", "postgres://feedback@localhost:5432/feedback")
	if err != nil {
		t.Fatalf("ForURL: %v", err)
	}
	cfg.Password = config.PasswordConfig{Memory: 1024, Iterations: 1, Parallelism: 1}

	log := zerolog.Nop()
	return newStore(cfg, &log, mock), mock
}

func TestOpenRejectsMalformedURL(t *testing.T) {
	log := zerolog.Nop()

	_, err := Open(context.Background(), "postgres://%zz", &log)
	if !errors.Is(err, errs.ErrUnavailable) {
		t.Fatalf("expected UNAVAILABLE, got %v", err)
	}

	_, err = Open(context.Background(), "", &log)
	if !errors.Is(err, errs.ErrUnavailable) {
		t.Fatalf("expected UNAVAILABLE for an empty URL, got %v", err)
	}
}

func TestLoginValidatesBeforeQuerying(t *testing.T) {
	s, _ := newMockStore(t)

	_, err := s.Login(context.Background(), model.LoginRequest{Username: "ada"})
	if !errors.Is(err, errs.ErrInvalid) {
		t.Fatalf("expected INVALID, got %v", err)
	}
}

func TestRegisterValidatesRequest(t *testing.T) {
	s, _ := newMockStore(t)

	_, err := s.Register(context.Background(), model.RegisterRequest{Username: "ada", Password: "short", Role: "student"})

	var storeErr *errs.Error
	if !errors.As(err, &storeErr) || storeErr.Kind != errs.KindInvalid {
		t.Fatalf("expected INVALID, got %v", err)
	}
	if len(storeErr.Errors) != 1 || storeErr.Errors[0].Field != "password" {
		t.Errorf("unexpected field errors: %+v", storeErr.Errors)
	}
}

func TestSubmitFeedbackRequest(t *testing.T) {
	s, mock := newMockStore(t)
	rating := 5

	mock.ExpectQuery("INSERT INTO feedback").
		WithArgs(int64(7), int64(3), "Great class", 5).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(12)))

	id, err := s.SubmitFeedbackRequest(context.Background(), 3, model.FeedbackSubmission{
		CourseID: 7,
		Content:  "Great class",
		Rating:   &rating,
	})
	if err != nil {
		t.Fatalf("SubmitFeedbackRequest: %v", err)
	}
	if id != 12 {
		t.Errorf("id = %d, want 12", id)
	}

	_, err = s.SubmitFeedbackRequest(context.Background(), 3, model.FeedbackSubmission{CourseID: 7, Content: " "})
	if !errors.Is(err, errs.ErrInvalid) {
		t.Errorf("blank content should be INVALID, got %v", err)
	}
}

func TestSubmitFeedbackUsesDefaultRating(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery("INSERT INTO feedback").
		WithArgs(int64(7), int64(3), "Great class", model.DefaultRating).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))

	if _, err := s.SubmitFeedback(context.Background(), 7, 3, "Great class"); err != nil {
		t.Fatalf("SubmitFeedback: %v", err)
	}
}

func TestGetCoursesForInstructorEmpty(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery("WHERE instructor_id").
		WithArgs(int64(8)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "description", "instructor_id"}))

	courses, err := s.GetCoursesForInstructor(context.Background(), 8)
	if err != nil {
		t.Fatalf("GetCoursesForInstructor: %v", err)
	}
	if len(courses) != 0 {
		t.Errorf("expected no courses, got %+v", courses)
	}
}

func TestGetCourseFeedbackWithAuthors(t *testing.T) {
	s, mock := newMockStore(t)
	author := "grace"

	mock.ExpectQuery("LEFT JOIN users").
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "course_id", "student_id", "content", "rating", "created_at", "username"}).
			AddRow(int64(4), int64(7), int64(3), "Great class", 3, time.Now(), &author))

	feedback, err := s.GetCourseFeedbackWithAuthors(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetCourseFeedbackWithAuthors: %v", err)
	}
	if len(feedback) != 1 || feedback[0].Content != "Great class" || feedback[0].Author == nil || *feedback[0].Author != "grace" {
		t.Errorf("unexpected feedback: %+v", feedback)
	}
}

func TestHealth(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectPing()
	if h := s.Health(context.Background()); h.Status != StatusHealthy || h.Environment != "test" {
		t.Errorf("unexpected health: %+v", h)
	}

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	h := s.Health(context.Background())
	if h.Healthy() || h.Error != "connection refused" {
		t.Errorf("unexpected health: %+v", h)
	}

	s.Config.Observability.HealthChecks.Enabled = false
	if h := s.Health(context.Background()); h.Status != StatusDisabled || !h.Healthy() {
		t.Errorf("disabled check should report disabled, got %+v", h)
	}
}
