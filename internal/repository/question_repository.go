package repository

import (
	"github.com/lshigami/ExamPortal/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuestionRepository interface {
	WithTx(tx *gorm.DB) QuestionRepository
	Create(question *model.Question) error
	FindByExamID(examID uint) ([]model.Question, error)
	FindByExamIDWithChoices(examID uint) ([]model.Question, error)
	Update(question *model.Question) error
	DeleteByIDs(ids []uint) error
	DeleteByExamID(examID uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) WithTx(tx *gorm.DB) QuestionRepository {
	return &questionRepository{db: tx}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Omit(clause.Associations).Create(question).Error
}

func (r *questionRepository) FindByExamID(examID uint) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Where("exam_id = ?", examID).Order("position ASC, id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindByExamIDWithChoices(examID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.Where("exam_id = ?", examID).
		Preload("Choices", func(db *gorm.DB) *gorm.DB {
			return db.Order("choices.position ASC, choices.id ASC")
		}).
		Order("position ASC, id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// Update writes text, answer and position; a map is used so empty strings are persisted.
func (r *questionRepository) Update(question *model.Question) error {
	return r.db.Model(&model.Question{}).
		Where("id = ? AND exam_id = ?", question.ID, question.ExamID).
		Updates(map[string]interface{}{
			"text":           question.Text,
			"correct_answer": question.CorrectAnswer,
			"position":       question.Position,
		}).Error
}

func (r *questionRepository) DeleteByIDs(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Where("id IN ?", ids).Delete(&model.Question{}).Error
}

func (r *questionRepository) DeleteByExamID(examID uint) error {
	return r.db.Where("exam_id = ?", examID).Delete(&model.Question{}).Error
}
