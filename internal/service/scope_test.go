package service

import (
	"errors"
	"testing"

	"github.com/lshigami/ExamPortal/internal/apperror"
	"github.com/lshigami/ExamPortal/internal/auth"
	"github.com/lshigami/ExamPortal/internal/model"
)

var (
	adminCaller    = auth.Caller{UserID: 1, Role: auth.RoleAdmin}
	mathFaculty    = auth.Caller{UserID: 2, Role: auth.RoleFaculty, Course: "MATH"}
	scienceFaculty = auth.Caller{UserID: 3, Role: auth.RoleFaculty, Course: "SCI"}
	orphanFaculty  = auth.Caller{UserID: 4, Role: auth.RoleFaculty}
	studentCaller  = auth.Caller{UserID: 100, Role: auth.RoleStudent}
)

func TestCatalogScopeListFilter(t *testing.T) {
	tests := []struct {
		name    string
		caller  auth.Caller
		want    string
		wantErr error
	}{
		{"admin sees all", adminCaller, "", nil},
		{"faculty sees own course", mathFaculty, "MATH", nil},
		{"faculty without course", orphanFaculty, "", apperror.ErrForbidden},
		{"student", studentCaller, "", apperror.ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CatalogScope{}.ListFilter(tt.caller)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("course = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCatalogScopeCheckManage(t *testing.T) {
	exam := &model.Exam{ID: 9, Course: "MATH"}
	tests := []struct {
		name    string
		caller  auth.Caller
		wantErr error
	}{
		{"admin", adminCaller, nil},
		{"faculty of the course", mathFaculty, nil},
		{"faculty of another course", scienceFaculty, apperror.ErrForbidden},
		{"faculty without course", orphanFaculty, apperror.ErrForbidden},
		{"student", studentCaller, apperror.ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := (CatalogScope{}).CheckManage(tt.caller, exam); !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCatalogScopeResolveCreateCourse(t *testing.T) {
	tests := []struct {
		name      string
		caller    auth.Caller
		requested string
		want      string
		wantErr   error
	}{
		{"faculty defaults to own course", mathFaculty, "", "MATH", nil},
		{"faculty names own course", mathFaculty, " MATH ", "MATH", nil},
		{"faculty names foreign course", mathFaculty, "SCI", "", apperror.ErrForbidden},
		{"admin names course", adminCaller, "HIST", "HIST", nil},
		{"admin omits course", adminCaller, "", "", apperror.ErrValidation},
		{"student", studentCaller, "MATH", "", apperror.ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CatalogScope{}.ResolveCreateCourse(tt.caller, tt.requested)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("course = %q, want %q", got, tt.want)
			}
		})
	}
}
