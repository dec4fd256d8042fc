package model

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/jasimjamil/course-feedbig-system/internal/validation"
)

func TestUserJSONOmitsHash(t *testing.T) {
	u := User{ID: 1, Username: "ada", PasswordHash: "$argon2id$v=19$secret", Role: RoleStudent}

	b, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(b), "argon2id") || strings.Contains(string(b), "password") {
		t.Errorf("password hash leaked into JSON: %s", b)
	}
}

func TestFeedbackSubmissionValidate(t *testing.T) {
	five, six := 5, 6

	tests := []struct {
		name    string
		in      FeedbackSubmission
		wantErr bool
	}{
		{"valid", FeedbackSubmission{CourseID: 7, Content: "Great class"}, false},
		{"valid with rating", FeedbackSubmission{CourseID: 7, Content: "Great class", Rating: &five}, false},
		{"missing course", FeedbackSubmission{Content: "Great class"}, true},
		{"blank content", FeedbackSubmission{CourseID: 7, Content: "   "}, true},
		{"rating out of range", FeedbackSubmission{CourseID: 7, Content: "ok", Rating: &six}, true},
	}

	for _, tt := range tests {
		err := validation.Validate(&tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: err = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestRatingOrDefault(t *testing.T) {
	s := FeedbackSubmission{}
	if s.RatingOrDefault() != DefaultRating {
		t.Errorf("RatingOrDefault() = %d, want %d", s.RatingOrDefault(), DefaultRating)
	}

	one := 1
	s.Rating = &one
	if s.RatingOrDefault() != 1 {
		t.Errorf("RatingOrDefault() = %d, want 1", s.RatingOrDefault())
	}
}

func TestRegisterRequestValidate(t *testing.T) {
	req := RegisterRequest{Username: "  ada  ", Password: "longpassword", Role: " Instructor "}
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Username != "ada" || req.Role != RoleInstructor {
		t.Errorf("request not normalized: %+v", req)
	}

	bad := RegisterRequest{Username: "ada", Password: "short", Role: "janitor"}
	if err := bad.Validate(); err == nil {
		t.Errorf("expected short password and unknown role to fail")
	}
}

func TestLoginRequestValidate(t *testing.T) {
	if err := (&LoginRequest{Username: "ada"}).Validate(); err == nil {
		t.Errorf("missing password should fail")
	}
	if err := (&LoginRequest{Username: "ada", Password: "x"}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
