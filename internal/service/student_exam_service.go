package service

import (
	"fmt"
	"strings"

	"github.com/lshigami/ExamPortal/internal/apperror"
	"github.com/lshigami/ExamPortal/internal/auth"
	"github.com/lshigami/ExamPortal/internal/dto"
	"github.com/lshigami/ExamPortal/internal/model"
	"github.com/lshigami/ExamPortal/internal/repository"
)

// StudentExamService is the examinee side: joining by code, opening the exam
// and reading one's own attempt. Correct answers never leave this service.
type StudentExamService interface {
	FindByJoinCode(code string) (*dto.StudentExamDTO, error)
	GetExamForStudent(examID uint) (*dto.StudentExamDTO, error)
	StartAttempt(caller auth.Caller, examID uint) (*dto.StartAttemptResponseDTO, error)
	// GetMyAttempt reports state not_started when the caller has no attempt yet.
	GetMyAttempt(caller auth.Caller, examID uint) (*dto.AttemptDTO, error)
}

type studentExamService struct {
	examRepo repository.ExamRepository
	attempts AttemptService
}

func NewStudentExamService(examRepo repository.ExamRepository, attempts AttemptService) StudentExamService {
	return &studentExamService{examRepo: examRepo, attempts: attempts}
}

func (s *studentExamService) FindByJoinCode(code string) (*dto.StudentExamDTO, error) {
	code = strings.TrimSpace(code)
	if !dto.ValidJoinCode(code) {
		return nil, fmt.Errorf("join code %q: %w", code, apperror.ErrValidation)
	}
	exam, err := s.examRepo.FindByJoinCode(code)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, fmt.Errorf("no exam with join code %q: %w", code, apperror.ErrNotFound)
		}
		return nil, fmt.Errorf("find exam by join code: %v: %w", err, apperror.ErrInternal)
	}
	return s.GetExamForStudent(exam.ID)
}

func (s *studentExamService) GetExamForStudent(examID uint) (*dto.StudentExamDTO, error) {
	exam, err := s.loadExam(examID)
	if err != nil {
		return nil, err
	}
	return toStudentExam(exam)
}

func (s *studentExamService) StartAttempt(caller auth.Caller, examID uint) (*dto.StartAttemptResponseDTO, error) {
	if !caller.IsStudent() {
		return nil, fmt.Errorf("only students take exams: %w", apperror.ErrForbidden)
	}
	exam, err := s.loadExam(examID)
	if err != nil {
		return nil, err
	}
	attempt, err := s.attempts.StartOrResume(caller.UserID, examID)
	if err != nil {
		if apperror.IsClientError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("%v: %w", err, apperror.ErrInternal)
	}
	view, err := toStudentExam(exam)
	if err != nil {
		return nil, err
	}
	return &dto.StartAttemptResponseDTO{
		Attempt: toAttemptDTO(attempt, exam.DurationMinutes),
		Exam:    *view,
	}, nil
}

func (s *studentExamService) GetMyAttempt(caller auth.Caller, examID uint) (*dto.AttemptDTO, error) {
	if !caller.IsStudent() {
		return nil, fmt.Errorf("only students have attempts: %w", apperror.ErrForbidden)
	}
	exam, err := s.examRepo.FindByID(examID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, fmt.Errorf("exam %d: %w", examID, apperror.ErrNotFound)
		}
		return nil, fmt.Errorf("load exam %d: %v: %w", examID, err, apperror.ErrInternal)
	}
	attempt, found, err := s.attempts.GetAttempt(caller.UserID, examID)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, apperror.ErrInternal)
	}
	if !found {
		return &dto.AttemptDTO{
			StudentID: caller.UserID,
			ExamID:    examID,
			State:     string(model.AttemptNotStarted),
		}, nil
	}
	out := toAttemptDTO(attempt, exam.DurationMinutes)
	return &out, nil
}

func (s *studentExamService) loadExam(examID uint) (*model.Exam, error) {
	exam, err := s.examRepo.FindByIDWithQuestions(examID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, fmt.Errorf("exam %d: %w", examID, apperror.ErrNotFound)
		}
		return nil, fmt.Errorf("load exam %d: %v: %w", examID, err, apperror.ErrInternal)
	}
	return exam, nil
}
