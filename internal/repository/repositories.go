package repository

// Repositories is a container for all repository instances.
type Repositories struct {
	Users    *UserRepository
	Feedback *FeedbackRepository
	Courses  *CourseRepository
}

// NewRepositories builds every repository on the shared pool.
func NewRepositories(db DBTX) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(db),
		Feedback: NewFeedbackRepository(db),
		Courses:  NewCourseRepository(db),
	}
}
