package service

import (
	"fmt"
	"strings"

	"github.com/lshigami/ExamPortal/internal/apperror"
	"github.com/lshigami/ExamPortal/internal/auth"
	"github.com/lshigami/ExamPortal/internal/model"
)

// CatalogScope decides which exams a caller may see or change. Admins see
// everything; faculty only exams of their assigned course; students never touch
// the authoring catalogue.
type CatalogScope struct{}

// ListFilter returns the course the caller's listing is restricted to ("" = all).
func (CatalogScope) ListFilter(c auth.Caller) (string, error) {
	switch {
	case c.IsAdmin():
		return "", nil
	case c.IsFaculty():
		if c.Course == "" {
			return "", fmt.Errorf("faculty account has no assigned course: %w", apperror.ErrForbidden)
		}
		return c.Course, nil
	default:
		return "", fmt.Errorf("role %q cannot list exams: %w", c.Role, apperror.ErrForbidden)
	}
}

// CheckManage rejects read/update/delete of exam by a caller outside its scope.
func (CatalogScope) CheckManage(c auth.Caller, exam *model.Exam) error {
	switch {
	case c.IsAdmin():
		return nil
	case c.IsFaculty():
		if c.Course != "" && exam.Course == c.Course {
			return nil
		}
		return fmt.Errorf("exam %d belongs to course %q: %w", exam.ID, exam.Course, apperror.ErrForbidden)
	default:
		return fmt.Errorf("role %q cannot manage exams: %w", c.Role, apperror.ErrForbidden)
	}
}

// ResolveCreateCourse returns the course a new exam is filed under. Faculty
// default to, and may only use, their own course; admins must name one.
func (CatalogScope) ResolveCreateCourse(c auth.Caller, requested string) (string, error) {
	requested = strings.TrimSpace(requested)
	switch {
	case c.IsAdmin():
		if requested == "" {
			return "", fmt.Errorf("course is required: %w", apperror.ErrValidation)
		}
		return requested, nil
	case c.IsFaculty():
		if c.Course == "" {
			return "", fmt.Errorf("faculty account has no assigned course: %w", apperror.ErrForbidden)
		}
		if requested != "" && requested != c.Course {
			return "", fmt.Errorf("cannot create exams for course %q: %w", requested, apperror.ErrForbidden)
		}
		return c.Course, nil
	default:
		return "", fmt.Errorf("role %q cannot create exams: %w", c.Role, apperror.ErrForbidden)
	}
}
