package service

import (
	"time"

	"github.com/jasimjamil/course-feedbig-system/internal/lib/password"
	"github.com/jasimjamil/course-feedbig-system/internal/repository"
	"github.com/rs/zerolog"
)

type Services struct {
	Auth     *AuthService
	Feedback *FeedbackService
	Courses  *CourseService
}

// NewServices wires every service onto the repositories. Calls slower than
// slowThreshold are logged as warnings; zero disables that.
func NewServices(repos *repository.Repositories, hasher *password.Hasher, log *zerolog.Logger, slowThreshold time.Duration) *Services {
	obs := observer{log: log, slowThreshold: slowThreshold}

	return &Services{
		Auth:     newAuthService(repos.Users, hasher, obs),
		Feedback: newFeedbackService(repos.Feedback, obs),
		Courses:  newCourseService(repos.Courses, obs),
	}
}
