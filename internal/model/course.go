package model

// Course is read-mostly; InstructorID is nil for unassigned courses.
type Course struct {
	ID           int64   `db:"id" json:"id"`
	Name         string  `db:"name" json:"name"`
	Description  *string `db:"description" json:"description"`
	InstructorID *int64  `db:"instructor_id" json:"instructor_id"`
}

// DefaultCourseDescription replaces a missing description in course listings.
const DefaultCourseDescription = "No description available"

// DefaultCourses seed an empty catalogue.
var DefaultCourses = []Course{
	{Name: "Introduction to Computer Science", Description: ptr("Foundational course covering basic programming concepts and computational thinking.")},
	{Name: "Data Structures and Algorithms", Description: ptr("In-depth exploration of fundamental data structures and algorithm design.")},
	{Name: "Web Development Fundamentals", Description: ptr("Comprehensive introduction to modern web development technologies.")},
	{Name: "Machine Learning Basics", Description: ptr("Introductory course to machine learning principles and practical applications.")},
}

func ptr[T any](v T) *T {
	return &v
}
