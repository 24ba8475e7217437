package service

import (
	"context"
	"fmt"

	"github.com/lshigami/ExamPortal/internal/apperror"
	"github.com/lshigami/ExamPortal/internal/auth"
	"github.com/lshigami/ExamPortal/internal/dto"
	"github.com/lshigami/ExamPortal/internal/model"
	"github.com/lshigami/ExamPortal/internal/repository"
	"github.com/rs/zerolog/log"
)

// ReviewService gives faculty a graded attempt side by side with the answer key.
type ReviewService interface {
	ReviewAttempt(ctx context.Context, caller auth.Caller, attemptID uint) (*dto.AttemptReviewDTO, error)
}

type reviewService struct {
	attemptRepo  repository.AttemptRepository
	examRepo     repository.ExamRepository
	questionRepo repository.QuestionRepository
	converter    ScoreConverterService
	feedback     FeedbackGenerator
	scope        CatalogScope
}

func NewReviewService(
	attemptRepo repository.AttemptRepository,
	examRepo repository.ExamRepository,
	questionRepo repository.QuestionRepository,
	converter ScoreConverterService,
	feedback FeedbackGenerator,
) ReviewService {
	return &reviewService{
		attemptRepo:  attemptRepo,
		examRepo:     examRepo,
		questionRepo: questionRepo,
		converter:    converter,
		feedback:     feedback,
	}
}

func (s *reviewService) ReviewAttempt(ctx context.Context, caller auth.Caller, attemptID uint) (*dto.AttemptReviewDTO, error) {
	attempt, err := s.attemptRepo.FindByIDWithDetails(attemptID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, fmt.Errorf("attempt %d: %w", attemptID, apperror.ErrNotFound)
		}
		return nil, fmt.Errorf("load attempt %d: %v: %w", attemptID, err, apperror.ErrInternal)
	}
	exam, err := s.examRepo.FindByID(attempt.ExamID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, fmt.Errorf("exam %d: %w", attempt.ExamID, apperror.ErrNotFound)
		}
		return nil, fmt.Errorf("load exam %d: %v: %w", attempt.ExamID, err, apperror.ErrInternal)
	}
	if err := s.scope.CheckManage(caller, exam); err != nil {
		return nil, err
	}
	if !attempt.Completed || attempt.Result == nil {
		return nil, fmt.Errorf("attempt %d has not been graded: %w", attemptID, apperror.ErrNotFound)
	}

	questions, err := s.questionRepo.FindByExamID(exam.ID)
	if err != nil {
		return nil, fmt.Errorf("load questions of exam %d: %v: %w", exam.ID, err, apperror.ErrInternal)
	}
	byID := make(map[uint]model.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	scaled, err := s.converter.Convert(attempt.Result.Score, attempt.Result.MaxScore)
	if err != nil {
		return nil, fmt.Errorf("attempt %d: %v: %w", attemptID, err, apperror.ErrInternal)
	}
	review := &dto.AttemptReviewDTO{
		Attempt: toAttemptDTO(attempt, exam.DurationMinutes),
		Grade: dto.GradeResultDTO{
			AttemptID:  attempt.ID,
			Score:      attempt.Result.Score,
			MaxScore:   attempt.Result.MaxScore,
			Percentage: scaled.Percentage,
			Letter:     scaled.Letter,
		},
		Answers: make([]dto.ReviewedAnswerDTO, 0, len(attempt.Answers)),
	}

	for _, a := range attempt.Answers {
		item := dto.ReviewedAnswerDTO{
			QuestionID:   a.QuestionID,
			AnswerText:   a.AnswerText,
			IsCorrect:    a.IsCorrect,
			PointsEarned: a.PointsEarned,
		}
		q, ok := byID[a.QuestionID]
		if !ok {
			// Question was removed by a later edit.
			review.Warnings = append(review.Warnings, fmt.Sprintf("question %d no longer exists", a.QuestionID))
			review.Answers = append(review.Answers, item)
			continue
		}
		item.QuestionText = q.Text
		item.CorrectAnswer = q.CorrectAnswer

		if !a.IsCorrect && s.feedback != nil && s.feedback.Enabled() {
			text, ferr := s.feedback.ExplainAnswer(ctx, q.Text, q.CorrectAnswer, a.AnswerText)
			if ferr != nil {
				log.Warn().Err(ferr).Uint("attemptID", attempt.ID).Uint("questionID", q.ID).Msg("Review feedback failed")
				review.Warnings = append(review.Warnings, fmt.Sprintf("feedback unavailable for question %d", q.ID))
			} else {
				item.Feedback = text
			}
		}
		review.Answers = append(review.Answers, item)
	}
	return review, nil
}
