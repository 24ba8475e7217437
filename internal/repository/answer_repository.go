package repository

import (
	"github.com/lshigami/ExamPortal/internal/model"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	WithTx(tx *gorm.DB) AnswerRepository
	CreateBatch(answers []model.Answer) error
	DeleteByAttemptIDs(attemptIDs []uint) error
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) WithTx(tx *gorm.DB) AnswerRepository {
	return &answerRepository{db: tx}
}

// CreateBatch inserts every answer of one graded attempt; the slice is filled with ids.
func (r *answerRepository) CreateBatch(answers []model.Answer) error {
	if len(answers) == 0 {
		return nil
	}
	return r.db.Create(&answers).Error
}

func (r *answerRepository) DeleteByAttemptIDs(attemptIDs []uint) error {
	if len(attemptIDs) == 0 {
		return nil
	}
	return r.db.Where("attempt_id IN ?", attemptIDs).Delete(&model.Answer{}).Error
}
