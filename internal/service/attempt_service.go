package service

import (
	"fmt"
	"time"

	"github.com/lshigami/ExamPortal/internal/apperror"
	"github.com/lshigami/ExamPortal/internal/dto"
	"github.com/lshigami/ExamPortal/internal/model"
	"github.com/lshigami/ExamPortal/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AttemptService owns the NotStarted → InProgress → Completed lifecycle of a
// (student, exam) attempt. All progress is persisted; nothing is held in memory.
type AttemptService interface {
	WithTx(tx *gorm.DB) AttemptService
	// StartOrResume returns the student's attempt for the exam, creating it on
	// first access. Repeated and concurrent calls yield the same attempt.
	StartOrResume(studentID, examID uint) (*model.Attempt, error)
	// GetAttempt and GetAttemptByID report found=false instead of an error when absent.
	GetAttempt(studentID, examID uint) (attempt *model.Attempt, found bool, err error)
	GetAttemptByID(id uint) (attempt *model.Attempt, found bool, err error)
	// MarkCompleted returns false when the attempt was already completed.
	MarkCompleted(studentID, examID uint) (bool, error)
	// DeleteAttemptsForExam removes every attempt of the exam with its results and answers.
	DeleteAttemptsForExam(examID uint) error
}

type attemptService struct {
	db          *gorm.DB
	examRepo    repository.ExamRepository
	attemptRepo repository.AttemptRepository
	resultRepo  repository.ResultRepository
	answerRepo  repository.AnswerRepository
	now         func() time.Time
}

func NewAttemptService(
	db *gorm.DB,
	examRepo repository.ExamRepository,
	attemptRepo repository.AttemptRepository,
	resultRepo repository.ResultRepository,
	answerRepo repository.AnswerRepository,
) AttemptService {
	return &attemptService{
		db:          db,
		examRepo:    examRepo,
		attemptRepo: attemptRepo,
		resultRepo:  resultRepo,
		answerRepo:  answerRepo,
		now:         time.Now,
	}
}

func (s *attemptService) WithTx(tx *gorm.DB) AttemptService {
	return &attemptService{
		db:          tx,
		examRepo:    s.examRepo.WithTx(tx),
		attemptRepo: s.attemptRepo.WithTx(tx),
		resultRepo:  s.resultRepo.WithTx(tx),
		answerRepo:  s.answerRepo.WithTx(tx),
		now:         s.now,
	}
}

func (s *attemptService) StartOrResume(studentID, examID uint) (*model.Attempt, error) {
	if studentID == 0 || examID == 0 {
		return nil, fmt.Errorf("student and exam are required: %w", apperror.ErrValidation)
	}
	if _, err := s.examRepo.FindByID(examID); err != nil {
		if apperror.IsNotFound(err) {
			return nil, fmt.Errorf("exam %d: %w", examID, apperror.ErrNotFound)
		}
		return nil, fmt.Errorf("load exam %d: %w", examID, err)
	}

	existing, found, err := s.GetAttempt(studentID, examID)
	if err != nil {
		return nil, err
	}
	if found {
		return existing, nil
	}

	attempt := &model.Attempt{StudentID: studentID, ExamID: examID, Completed: false}
	created, err := s.attemptRepo.CreateIfAbsent(attempt)
	if err != nil && !apperror.IsUniqueViolation(err) {
		log.Error().Err(err).Uint("studentID", studentID).Uint("examID", examID).Msg("StartOrResume: failed to create attempt")
		return nil, fmt.Errorf("create attempt: %w", err)
	}
	if created {
		log.Info().Uint("attemptID", attempt.ID).Uint("studentID", studentID).Uint("examID", examID).Msg("Attempt started")
		return attempt, nil
	}

	// Lost the race to a concurrent first start; the unique index kept one row.
	winner, found, err := s.GetAttempt(studentID, examID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("attempt for student %d exam %d vanished after conflict: %w", studentID, examID, apperror.ErrInternal)
	}
	return winner, nil
}

func (s *attemptService) GetAttempt(studentID, examID uint) (*model.Attempt, bool, error) {
	attempt, err := s.attemptRepo.FindByStudentAndExam(studentID, examID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("load attempt: %w", err)
	}
	return attempt, true, nil
}

func (s *attemptService) GetAttemptByID(id uint) (*model.Attempt, bool, error) {
	attempt, err := s.attemptRepo.FindByID(id)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("load attempt %d: %w", id, err)
	}
	return attempt, true, nil
}

func (s *attemptService) MarkCompleted(studentID, examID uint) (bool, error) {
	rows, err := s.attemptRepo.MarkCompleted(studentID, examID, s.now())
	if err != nil {
		return false, fmt.Errorf("mark attempt completed: %w", err)
	}
	return rows > 0, nil
}

func (s *attemptService) DeleteAttemptsForExam(examID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		attempts := s.attemptRepo.WithTx(tx)
		ids, err := attempts.FindIDsByExamID(examID)
		if err != nil {
			return fmt.Errorf("list attempts of exam %d: %w", examID, err)
		}
		if len(ids) == 0 {
			return nil
		}
		if err := s.answerRepo.WithTx(tx).DeleteByAttemptIDs(ids); err != nil {
			return fmt.Errorf("delete answers: %w", err)
		}
		if err := s.resultRepo.WithTx(tx).DeleteByAttemptIDs(ids); err != nil {
			return fmt.Errorf("delete results: %w", err)
		}
		if err := attempts.DeleteByIDs(ids); err != nil {
			return fmt.Errorf("delete attempts: %w", err)
		}
		log.Info().Uint("examID", examID).Int("attempts", len(ids)).Msg("Attempts deleted for exam")
		return nil
	})
}

// toAttemptDTO maps an attempt onto its response form; durationMinutes <= 0
// means the exam is untimed.
func toAttemptDTO(a *model.Attempt, durationMinutes int) dto.AttemptDTO {
	out := dto.AttemptDTO{
		ID:          a.ID,
		StudentID:   a.StudentID,
		ExamID:      a.ExamID,
		State:       string(a.State()),
		Completed:   a.Completed,
		StartedAt:   a.StartedAt,
		CompletedAt: a.CompletedAt,
	}
	if durationMinutes > 0 && !a.StartedAt.IsZero() {
		deadline := a.StartedAt.Add(time.Duration(durationMinutes) * time.Minute)
		out.Deadline = &deadline
	}
	return out
}
