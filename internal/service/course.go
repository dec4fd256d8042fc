package service

import (
	"context"
	"time"

	"github.com/jasimjamil/course-feedbig-system/internal/model"
	"github.com/jasimjamil/course-feedbig-system/internal/repository"
)

type CourseService struct {
	courses *repository.CourseRepository
	obs     observer
}

func newCourseService(courses *repository.CourseRepository, obs observer) *CourseService {
	return &CourseService{
		courses: courses,
		obs:     obs,
	}
}

func (s *CourseService) ListForInstructor(ctx context.Context, instructorID int64) (courses []model.Course, err error) {
	defer func(start time.Time) { s.obs.done(ctx, "get_courses_for_instructor", start, err) }(time.Now())

	return s.courses.ListByInstructor(ctx, instructorID)
}

func (s *CourseService) List(ctx context.Context) (courses []model.Course, err error) {
	defer func(start time.Time) { s.obs.done(ctx, "list_courses", start, err) }(time.Now())

	return s.courses.List(ctx)
}

func (s *CourseService) Create(ctx context.Context, name string, description *string, instructorID *int64) (id int64, err error) {
	defer func(start time.Time) { s.obs.done(ctx, "create_course", start, err) }(time.Now())

	id, err = s.courses.Create(ctx, name, description, instructorID)
	if err != nil {
		return 0, err
	}

	s.obs.log.Info().Int64("course_id", id).Str("name", name).Msg("course created")
	return id, nil
}

// SeedDefaults fills an empty catalogue with model.DefaultCourses.
func (s *CourseService) SeedDefaults(ctx context.Context) (inserted int64, err error) {
	defer func(start time.Time) { s.obs.done(ctx, "seed_default_courses", start, err) }(time.Now())

	inserted, err = s.courses.SeedIfEmpty(ctx, model.DefaultCourses)
	if err != nil {
		return 0, err
	}

	if inserted > 0 {
		s.obs.log.Info().Int64("inserted", inserted).Msg("seeded default courses")
	}
	return inserted, nil
}
