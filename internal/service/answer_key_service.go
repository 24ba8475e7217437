package service

import (
	"fmt"

	"github.com/lshigami/ExamPortal/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AnswerKeyService resolves an exam's question → correct answer mapping. The
// mapping feeds grading and faculty review only and never reaches an examinee.
type AnswerKeyService interface {
	WithTx(tx *gorm.DB) AnswerKeyService
	// AnswerKey returns an empty map for an unknown exam or one without questions.
	AnswerKey(examID uint) (map[uint]string, error)
}

type answerKeyService struct {
	questionRepo repository.QuestionRepository
}

func NewAnswerKeyService(questionRepo repository.QuestionRepository) AnswerKeyService {
	return &answerKeyService{questionRepo: questionRepo}
}

func (s *answerKeyService) WithTx(tx *gorm.DB) AnswerKeyService {
	return &answerKeyService{questionRepo: s.questionRepo.WithTx(tx)}
}

func (s *answerKeyService) AnswerKey(examID uint) (map[uint]string, error) {
	key := make(map[uint]string)
	if examID == 0 {
		return key, nil
	}
	questions, err := s.questionRepo.FindByExamID(examID)
	if err != nil {
		log.Error().Err(err).Uint("examID", examID).Msg("AnswerKey: failed to load questions")
		return nil, fmt.Errorf("load answer key for exam %d: %w", examID, err)
	}
	for _, q := range questions {
		key[q.ID] = q.CorrectAnswer
	}
	return key, nil
}
