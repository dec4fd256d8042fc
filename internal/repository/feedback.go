package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jasimjamil/course-feedbig-system/internal/model"
	"github.com/jasimjamil/course-feedbig-system/internal/sqlerr"
)

type FeedbackRepository struct {
	db DBTX
}

func NewFeedbackRepository(db DBTX) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// Create inserts a feedback row; id and created_at are assigned by the database.
func (r *FeedbackRepository) Create(ctx context.Context, courseID, studentID int64, content string, rating int) (int64, error) {
	const query = `
		INSERT INTO feedback (course_id, student_id, content, rating)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	if err := r.db.QueryRow(ctx, query, courseID, studentID, content, rating).Scan(&id); err != nil {
		return 0, sqlerr.HandleError(err)
	}
	return id, nil
}

// ListByCourse returns the course's feedback in insertion order; empty when
// there is none.
func (r *FeedbackRepository) ListByCourse(ctx context.Context, courseID int64) ([]model.Feedback, error) {
	const query = `
		SELECT id, course_id, student_id, content, rating, created_at
		FROM feedback
		WHERE course_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	feedback, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Feedback, error) {
		var f model.Feedback
		err := row.Scan(
			&f.ID,
			&f.CourseID,
			&f.StudentID,
			&f.Content,
			&f.Rating,
			&f.CreatedAt,
		)
		return f, err
	})
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return feedback, nil
}

// ListByCourseWithAuthors is ListByCourse joined with the author's username.
func (r *FeedbackRepository) ListByCourseWithAuthors(ctx context.Context, courseID int64) ([]model.FeedbackWithAuthor, error) {
	const query = `
		SELECT f.id, f.course_id, f.student_id, f.content, f.rating, f.created_at, u.username
		FROM feedback f
		LEFT JOIN users u ON u.id = f.student_id
		WHERE f.course_id = $1
		ORDER BY f.id
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	feedback, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.FeedbackWithAuthor, error) {
		var f model.FeedbackWithAuthor
		err := row.Scan(
			&f.ID,
			&f.CourseID,
			&f.StudentID,
			&f.Content,
			&f.Rating,
			&f.CreatedAt,
			&f.Author,
		)
		return f, err
	})
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return feedback, nil
}

// Delete removes a feedback row and reports whether one existed.
func (r *FeedbackRepository) Delete(ctx context.Context, feedbackID int64) (bool, error) {
	const query = `DELETE FROM feedback WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, feedbackID)
	if err != nil {
		return false, sqlerr.HandleError(err)
	}
	return tag.RowsAffected() > 0, nil
}
