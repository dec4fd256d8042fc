package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jasimjamil/course-feedbig-system/internal/model"
	"github.com/jasimjamil/course-feedbig-system/internal/sqlerr"
)

type CourseRepository struct {
	db DBTX
}

func NewCourseRepository(db DBTX) *CourseRepository {
	return &CourseRepository{db: db}
}

func scanCourse(row pgx.CollectableRow) (model.Course, error) {
	var c model.Course
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.InstructorID,
	)
	return c, err
}

func (r *CourseRepository) collect(ctx context.Context, query string, args ...any) ([]model.Course, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	courses, err := pgx.CollectRows(rows, scanCourse)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return courses, nil
}

// ListByInstructor returns the instructor's courses in insertion order.
func (r *CourseRepository) ListByInstructor(ctx context.Context, instructorID int64) ([]model.Course, error) {
	const query = `
		SELECT id, name, description, instructor_id
		FROM courses
		WHERE instructor_id = $1
		ORDER BY id
	`
	return r.collect(ctx, query, instructorID)
}

// List returns every course, with a placeholder for missing descriptions.
func (r *CourseRepository) List(ctx context.Context) ([]model.Course, error) {
	const query = `
		SELECT id, name, COALESCE(description, $1), instructor_id
		FROM courses
		ORDER BY id
	`
	return r.collect(ctx, query, model.DefaultCourseDescription)
}

// Create inserts a course and returns its id.
func (r *CourseRepository) Create(ctx context.Context, name string, description *string, instructorID *int64) (int64, error) {
	const query = `
		INSERT INTO courses (name, description, instructor_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	if err := r.db.QueryRow(ctx, query, name, description, instructorID).Scan(&id); err != nil {
		return 0, sqlerr.HandleError(err)
	}
	return id, nil
}

// SeedLockKey is the advisory lock key taken while seeding courses.
const SeedLockKey int64 = 0x636f7572736573

// SeedIfEmpty inserts courses only when the table has no rows and returns how
// many were inserted. Seeding runs under a transaction-scoped advisory lock;
// the insert is a separate statement, so under READ COMMITTED a second
// seeder waiting on the lock sees the first one's rows and inserts nothing.
func (r *CourseRepository) SeedIfEmpty(ctx context.Context, courses []model.Course) (int64, error) {
	const query = `
		INSERT INTO courses (name, description)
		SELECT name, description
		FROM unnest($1::text[], $2::text[]) AS seed(name, description)
		WHERE NOT EXISTS (SELECT 1 FROM courses)
	`

	names := make([]string, 0, len(courses))
	descriptions := make([]*string, 0, len(courses))
	for _, c := range courses {
		names = append(names, c.Name)
		descriptions = append(descriptions, c.Description)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, sqlerr.HandleError(err)
	}

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, SeedLockKey); err != nil {
		_ = tx.Rollback(ctx)
		return 0, sqlerr.HandleError(err)
	}

	tag, err := tx.Exec(ctx, query, names, descriptions)
	if err != nil {
		_ = tx.Rollback(ctx)
		return 0, sqlerr.HandleError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, sqlerr.HandleError(err)
	}
	return tag.RowsAffected(), nil
}
