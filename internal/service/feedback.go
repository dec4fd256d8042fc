package service

import (
	"context"
	"time"

	"github.com/jasimjamil/course-feedbig-system/internal/model"
	"github.com/jasimjamil/course-feedbig-system/internal/repository"
)

type FeedbackService struct {
	feedback *repository.FeedbackRepository
	obs      observer
}

func newFeedbackService(feedback *repository.FeedbackRepository, obs observer) *FeedbackService {
	return &FeedbackService{
		feedback: feedback,
		obs:      obs,
	}
}

// Submit stores feedback. Course and student ids are not checked here.
func (s *FeedbackService) Submit(ctx context.Context, courseID, studentID int64, content string, rating int) (id int64, err error) {
	defer func(start time.Time) { s.obs.done(ctx, "submit_feedback", start, err) }(time.Now())

	id, err = s.feedback.Create(ctx, courseID, studentID, content, rating)
	if err != nil {
		return 0, err
	}

	s.obs.log.Info().
		Int64("feedback_id", id).
		Int64("course_id", courseID).
		Int64("student_id", studentID).
		Msg("feedback submitted")
	return id, nil
}

func (s *FeedbackService) ListByCourse(ctx context.Context, courseID int64) (feedback []model.Feedback, err error) {
	defer func(start time.Time) { s.obs.done(ctx, "get_course_feedback", start, err) }(time.Now())

	return s.feedback.ListByCourse(ctx, courseID)
}

func (s *FeedbackService) ListByCourseWithAuthors(ctx context.Context, courseID int64) (feedback []model.FeedbackWithAuthor, err error) {
	defer func(start time.Time) { s.obs.done(ctx, "get_course_feedback_with_authors", start, err) }(time.Now())

	return s.feedback.ListByCourseWithAuthors(ctx, courseID)
}

// Delete reports false, not an error, when no row has feedbackID.
func (s *FeedbackService) Delete(ctx context.Context, feedbackID int64) (deleted bool, err error) {
	defer func(start time.Time) { s.obs.done(ctx, "delete_feedback", start, err) }(time.Now())

	deleted, err = s.feedback.Delete(ctx, feedbackID)
	if err != nil {
		return false, err
	}

	if deleted {
		s.obs.log.Info().Int64("feedback_id", feedbackID).Msg("feedback deleted")
	}
	return deleted, nil
}
