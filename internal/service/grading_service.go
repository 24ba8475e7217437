package service

import (
	"fmt"

	"github.com/lshigami/ExamPortal/internal/apperror"
	"github.com/lshigami/ExamPortal/internal/auth"
	"github.com/lshigami/ExamPortal/internal/dto"
	"github.com/lshigami/ExamPortal/internal/model"
	"github.com/lshigami/ExamPortal/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// GradingService turns a submission into a persisted result. Grading is atomic:
// the result, every graded answer and the completion flag are written together
// or not at all.
type GradingService interface {
	// SubmitAndGrade grades answers (question id → text) against the exam's key.
	// forcedEmpty grades the attempt as if nothing was answered.
	SubmitAndGrade(attemptID uint, answers map[uint]string, forcedEmpty bool) (*dto.GradeResultDTO, error)
	GetResult(attemptID uint) (*dto.AttemptResultDTO, error)

	// SubmitOwn and GetOwnResult are the student entry points; they reject
	// attempts that belong to someone else.
	SubmitOwn(caller auth.Caller, attemptID uint, req dto.SubmitAttemptRequest) (*dto.GradeResultDTO, error)
	GetOwnResult(caller auth.Caller, attemptID uint) (*dto.AttemptResultDTO, error)
}

type gradingService struct {
	db          *gorm.DB
	attempts    AttemptService
	answerKeys  AnswerKeyService
	examRepo    repository.ExamRepository
	attemptRepo repository.AttemptRepository
	resultRepo  repository.ResultRepository
	answerRepo  repository.AnswerRepository
	converter   ScoreConverterService
}

func NewGradingService(
	db *gorm.DB,
	attempts AttemptService,
	answerKeys AnswerKeyService,
	examRepo repository.ExamRepository,
	attemptRepo repository.AttemptRepository,
	resultRepo repository.ResultRepository,
	answerRepo repository.AnswerRepository,
	converter ScoreConverterService,
) GradingService {
	return &gradingService{
		db:          db,
		attempts:    attempts,
		answerKeys:  answerKeys,
		examRepo:    examRepo,
		attemptRepo: attemptRepo,
		resultRepo:  resultRepo,
		answerRepo:  answerRepo,
		converter:   converter,
	}
}

func (s *gradingService) SubmitAndGrade(attemptID uint, answers map[uint]string, forcedEmpty bool) (*dto.GradeResultDTO, error) {
	var sheet ScoreSheet
	err := s.db.Transaction(func(tx *gorm.DB) error {
		attempts := s.attempts.WithTx(tx)
		attempt, found, err := attempts.GetAttemptByID(attemptID)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("attempt %d: %w", attemptID, apperror.ErrNotFound)
		}
		if attempt.Completed {
			return fmt.Errorf("attempt %d is already completed: %w", attemptID, apperror.ErrConflict)
		}

		key, err := s.answerKeys.WithTx(tx).AnswerKey(attempt.ExamID)
		if err != nil {
			return err
		}
		submitted := answers
		if forcedEmpty || submitted == nil {
			submitted = map[uint]string{}
		}
		sheet = Score(key, submitted)

		result := model.Result{AttemptID: attempt.ID, Score: sheet.Score, MaxScore: sheet.MaxScore}
		if err := s.resultRepo.WithTx(tx).Create(&result); err != nil {
			if apperror.IsUniqueViolation(err) {
				return fmt.Errorf("attempt %d already has a result: %w", attemptID, apperror.ErrConflict)
			}
			return fmt.Errorf("create result: %w", err)
		}

		rows := make([]model.Answer, 0, len(sheet.Grades))
		for _, g := range sheet.Grades {
			rows = append(rows, model.Answer{
				AttemptID:    attempt.ID,
				QuestionID:   g.QuestionID,
				AnswerText:   g.Submitted,
				IsCorrect:    g.Correct,
				PointsEarned: g.Points,
			})
		}
		if err := s.answerRepo.WithTx(tx).CreateBatch(rows); err != nil {
			return fmt.Errorf("create answers: %w", err)
		}

		marked, err := attempts.MarkCompleted(attempt.StudentID, attempt.ExamID)
		if err != nil {
			return err
		}
		if !marked {
			// A concurrent submission completed the attempt first.
			return fmt.Errorf("attempt %d was completed concurrently: %w", attemptID, apperror.ErrConflict)
		}
		return nil
	})
	if err != nil {
		if apperror.IsClientError(err) {
			log.Warn().Err(err).Uint("attemptID", attemptID).Msg("SubmitAndGrade: rejected")
			return nil, err
		}
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("SubmitAndGrade: rolled back")
		return nil, fmt.Errorf("grade attempt %d: %v: %w", attemptID, err, apperror.ErrInternal)
	}

	log.Info().Uint("attemptID", attemptID).Float64("score", sheet.Score).Float64("maxScore", sheet.MaxScore).
		Bool("forcedEmpty", forcedEmpty).Msg("Attempt graded")
	return s.gradeDTO(attemptID, sheet.Score, sheet.MaxScore)
}

func (s *gradingService) GetResult(attemptID uint) (*dto.AttemptResultDTO, error) {
	attempt, err := s.attemptRepo.FindByIDWithDetails(attemptID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, fmt.Errorf("attempt %d: %w", attemptID, apperror.ErrNotFound)
		}
		return nil, fmt.Errorf("load attempt %d: %v: %w", attemptID, err, apperror.ErrInternal)
	}
	if !attempt.Completed || attempt.Result == nil {
		return nil, fmt.Errorf("attempt %d has not been graded: %w", attemptID, apperror.ErrNotFound)
	}

	grade, err := s.gradeDTO(attempt.ID, attempt.Result.Score, attempt.Result.MaxScore)
	if err != nil {
		return nil, err
	}
	resp := &dto.AttemptResultDTO{
		Attempt: toAttemptDTO(attempt, s.examDuration(attempt.ExamID)),
		Grade:   *grade,
		Answers: make([]dto.AnswerResponseDTO, 0, len(attempt.Answers)),
	}
	for _, a := range attempt.Answers {
		resp.Answers = append(resp.Answers, dto.AnswerResponseDTO{
			QuestionID:   a.QuestionID,
			AnswerText:   a.AnswerText,
			IsCorrect:    a.IsCorrect,
			PointsEarned: a.PointsEarned,
		})
	}
	return resp, nil
}

func (s *gradingService) SubmitOwn(caller auth.Caller, attemptID uint, req dto.SubmitAttemptRequest) (*dto.GradeResultDTO, error) {
	if err := s.checkOwner(caller, attemptID); err != nil {
		return nil, err
	}
	return s.SubmitAndGrade(attemptID, req.Answers, req.ForcedEmpty)
}

func (s *gradingService) GetOwnResult(caller auth.Caller, attemptID uint) (*dto.AttemptResultDTO, error) {
	if err := s.checkOwner(caller, attemptID); err != nil {
		return nil, err
	}
	return s.GetResult(attemptID)
}

func (s *gradingService) checkOwner(caller auth.Caller, attemptID uint) error {
	attempt, found, err := s.attempts.GetAttemptByID(attemptID)
	if err != nil {
		return fmt.Errorf("%v: %w", err, apperror.ErrInternal)
	}
	if !found {
		return fmt.Errorf("attempt %d: %w", attemptID, apperror.ErrNotFound)
	}
	if !caller.IsStudent() || attempt.StudentID != caller.UserID {
		return fmt.Errorf("attempt %d belongs to another student: %w", attemptID, apperror.ErrForbidden)
	}
	return nil
}

func (s *gradingService) gradeDTO(attemptID uint, score, maxScore float64) (*dto.GradeResultDTO, error) {
	scaled, err := s.converter.Convert(score, maxScore)
	if err != nil {
		return nil, fmt.Errorf("attempt %d: %v: %w", attemptID, err, apperror.ErrInternal)
	}
	return &dto.GradeResultDTO{
		AttemptID:  attemptID,
		Score:      score,
		MaxScore:   maxScore,
		Percentage: scaled.Percentage,
		Letter:     scaled.Letter,
	}, nil
}

// examDuration returns 0 (untimed) when the exam cannot be read.
func (s *gradingService) examDuration(examID uint) int {
	exam, err := s.examRepo.FindByID(examID)
	if err != nil {
		log.Warn().Err(err).Uint("examID", examID).Msg("Could not load exam duration")
		return 0
	}
	return exam.DurationMinutes
}
