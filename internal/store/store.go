// Package store is the course feedback data store: a handle on the
// connection pool exposing user, feedback and course operations plus
// password hashing and verification.
//
// A *Store is built once at startup with New or Open and passed by pointer
// to every caller; it is safe for concurrent use. Each operation is a single
// statement with no retries, so cancelling ctx leaves the database in
// whatever state that one statement reached.
//
// Every failure is an *errs.Error; use errors.Is with the errs sentinels
// (errs.ErrNotFound, errs.ErrUnauthorized, ...) to tell them apart.
package store

import (
	"context"
	"fmt"

	"github.com/jasimjamil/course-feedbig-system/internal/config"
	"github.com/jasimjamil/course-feedbig-system/internal/database"
	"github.com/jasimjamil/course-feedbig-system/internal/errs"
	"github.com/jasimjamil/course-feedbig-system/internal/lib/password"
	loggerPkg "github.com/jasimjamil/course-feedbig-system/internal/logger"
	"github.com/jasimjamil/course-feedbig-system/internal/model"
	"github.com/jasimjamil/course-feedbig-system/internal/repository"
	"github.com/jasimjamil/course-feedbig-system/internal/service"
	"github.com/jasimjamil/course-feedbig-system/internal/validation"
	"github.com/rs/zerolog"
)

// pool is what the store needs from *pgxpool.Pool.
type pool interface {
	repository.DBTX
	Ping(ctx context.Context) error
}

// Store owns the database pool and the services built on it.
type Store struct {
	Config        *config.Config
	Logger        *zerolog.Logger
	LoggerService *loggerPkg.LoggerService
	DB            *database.Database

	pool     pool
	services *service.Services
}

// New connects to the database described by cfg. Failures to parse the DSN
// or reach the database are UNAVAILABLE.
func New(ctx context.Context, cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Store, error) {
	db, err := database.New(ctx, cfg, logger, loggerService)
	if err != nil {
		return nil, errs.NewUnavailableError(fmt.Errorf("failed to initialize database: %w", err))
	}

	s := newStore(cfg, logger, db.Pool)
	s.DB = db
	s.LoggerService = loggerService
	return s, nil
}

// Open connects to connURL with default settings. A nil logger gets the
// default JSON logger.
func Open(ctx context.Context, connURL string, logger *zerolog.Logger) (*Store, error) {
	cfg, err := config.ForURL("development", connURL)
	if err != nil {
		return nil, errs.NewUnavailableError(err)
	}

	if logger == nil {
		l := loggerPkg.NewLogger(cfg.Observability)
		logger = &l
	}

	return New(ctx, cfg, logger, nil)
}

func newStore(cfg *config.Config, logger *zerolog.Logger, p pool) *Store {
	repos := repository.NewRepositories(p)
	hasher := password.NewHasher(cfg.Password)

	return &Store{
		Config:   cfg,
		Logger:   logger,
		pool:     p,
		services: service.NewServices(repos, hasher, logger, cfg.Observability.Logging.SlowQueryThreshold),
	}
}

// Close releases the pool and flushes telemetry.
func (s *Store) Close() error {
	if s.DB != nil {
		if err := s.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database connection: %w", err)
		}
	}
	s.LoggerService.Shutdown()
	return nil
}

// RegisterUser stores a new user with a salted argon2id hash of plaintext and
// returns the new id. A taken username is CONFLICT.
func (s *Store) RegisterUser(ctx context.Context, username, plaintext, role string) (int64, error) {
	return s.services.Auth.RegisterUser(ctx, username, plaintext, role)
}

// AuthenticateUser returns the user whose stored hash matches plaintext.
// Unknown usernames are NOT_FOUND, wrong passwords UNAUTHORIZED and a
// malformed stored hash INTERNAL. The returned PasswordHash is the hash,
// never the plaintext, and is omitted from JSON.
func (s *Store) AuthenticateUser(ctx context.Context, username, plaintext string) (*model.User, error) {
	return s.services.Auth.AuthenticateUser(ctx, username, plaintext)
}

// SubmitFeedback inserts feedback with the default rating and returns its id.
func (s *Store) SubmitFeedback(ctx context.Context, courseID, studentID int64, content string) (int64, error) {
	return s.services.Feedback.Submit(ctx, courseID, studentID, content, model.DefaultRating)
}

// GetCourseFeedback returns the course's feedback in insertion order. No
// feedback is an empty slice, not an error.
func (s *Store) GetCourseFeedback(ctx context.Context, courseID int64) ([]model.Feedback, error) {
	return s.services.Feedback.ListByCourse(ctx, courseID)
}

// GetCourseFeedbackWithAuthors is GetCourseFeedback with each row's author
// username, nil for feedback whose student id matches no user.
func (s *Store) GetCourseFeedbackWithAuthors(ctx context.Context, courseID int64) ([]model.FeedbackWithAuthor, error) {
	return s.services.Feedback.ListByCourseWithAuthors(ctx, courseID)
}

// DeleteFeedback reports whether a row with feedbackID existed and was removed.
func (s *Store) DeleteFeedback(ctx context.Context, feedbackID int64) (bool, error) {
	return s.services.Feedback.Delete(ctx, feedbackID)
}

// GetCoursesForInstructor returns the courses assigned to instructorID in
// insertion order.
func (s *Store) GetCoursesForInstructor(ctx context.Context, instructorID int64) ([]model.Course, error) {
	return s.services.Courses.ListForInstructor(ctx, instructorID)
}

// ListCourses returns every course; missing descriptions read
// model.DefaultCourseDescription.
func (s *Store) ListCourses(ctx context.Context) ([]model.Course, error) {
	return s.services.Courses.List(ctx)
}

// CreateCourse adds a course; instructorID may be nil.
func (s *Store) CreateCourse(ctx context.Context, name string, description *string, instructorID *int64) (int64, error) {
	return s.services.Courses.Create(ctx, name, description, instructorID)
}

// SeedDefaultCourses inserts model.DefaultCourses when no course exists yet.
func (s *Store) SeedDefaultCourses(ctx context.Context) (int64, error) {
	return s.services.Courses.SeedDefaults(ctx)
}

// Login validates req and authenticates it.
func (s *Store) Login(ctx context.Context, req model.LoginRequest) (*model.User, error) {
	if err := validation.Validate(&req); err != nil {
		return nil, err
	}
	return s.AuthenticateUser(ctx, req.Username, req.Password)
}

// Register validates req and registers the user.
func (s *Store) Register(ctx context.Context, req model.RegisterRequest) (int64, error) {
	if err := validation.Validate(&req); err != nil {
		return 0, err
	}
	return s.RegisterUser(ctx, req.Username, req.Password, req.Role)
}

// SubmitFeedbackRequest validates req and stores it for studentID.
func (s *Store) SubmitFeedbackRequest(ctx context.Context, studentID int64, req model.FeedbackSubmission) (int64, error) {
	if err := validation.Validate(&req); err != nil {
		return 0, err
	}
	return s.services.Feedback.Submit(ctx, req.CourseID, studentID, req.Content, req.RatingOrDefault())
}
