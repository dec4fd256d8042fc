package model

import (
	"strings"
	"time"

	"github.com/jasimjamil/course-feedbig-system/internal/validation"
)

// Feedback is a student's comment on a course. ID and CreatedAt are assigned
// by the store on insert.
type Feedback struct {
	ID        int64     `db:"id" json:"id"`
	CourseID  int64     `db:"course_id" json:"course_id"`
	StudentID int64     `db:"student_id" json:"student_id"`
	Content   string    `db:"content" json:"content"`
	Rating    int       `db:"rating" json:"rating"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// FeedbackWithAuthor is a feedback row with the author's username. Author is
// nil when no user has the feedback's student id.
type FeedbackWithAuthor struct {
	Feedback
	Author *string `db:"username" json:"author"`
}

// FeedbackSubmission is what a student sends. The student id comes from the
// caller's authentication context, not the payload.
type FeedbackSubmission struct {
	CourseID int64  `json:"course_id" validate:"required,gt=0"`
	Content  string `json:"content" validate:"required,max=5000"`
	Rating   *int   `json:"rating" validate:"omitempty,min=1,max=5"`
}

func (s *FeedbackSubmission) Validate() error {
	if err := validate.Struct(s); err != nil {
		return err
	}
	if strings.TrimSpace(s.Content) == "" {
		return validation.CustomValidationErrors{
			{Field: "content", Message: "cannot be empty"},
		}
	}
	return nil
}

// RatingOrDefault returns the submitted rating or DefaultRating.
func (s *FeedbackSubmission) RatingOrDefault() int {
	if s.Rating == nil {
		return DefaultRating
	}
	return *s.Rating
}
