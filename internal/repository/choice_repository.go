package repository

import (
	"github.com/lshigami/ExamPortal/internal/model"
	"gorm.io/gorm"
)

type ChoiceRepository interface {
	WithTx(tx *gorm.DB) ChoiceRepository
	Create(choice *model.Choice) error
	Update(choice *model.Choice) error
	DeleteByIDs(ids []uint) error
	DeleteByQuestionIDs(questionIDs []uint) error
	DeleteByExamID(examID uint) error
}

type choiceRepository struct {
	db *gorm.DB
}

func NewChoiceRepository(db *gorm.DB) ChoiceRepository {
	return &choiceRepository{db: db}
}

func (r *choiceRepository) WithTx(tx *gorm.DB) ChoiceRepository {
	return &choiceRepository{db: tx}
}

func (r *choiceRepository) Create(choice *model.Choice) error {
	return r.db.Create(choice).Error
}

func (r *choiceRepository) Update(choice *model.Choice) error {
	return r.db.Model(&model.Choice{}).
		Where("id = ? AND question_id = ?", choice.ID, choice.QuestionID).
		Updates(map[string]interface{}{
			"text":     choice.Text,
			"position": choice.Position,
		}).Error
}

func (r *choiceRepository) DeleteByIDs(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Where("id IN ?", ids).Delete(&model.Choice{}).Error
}

func (r *choiceRepository) DeleteByQuestionIDs(questionIDs []uint) error {
	if len(questionIDs) == 0 {
		return nil
	}
	return r.db.Where("question_id IN ?", questionIDs).Delete(&model.Choice{}).Error
}

func (r *choiceRepository) DeleteByExamID(examID uint) error {
	return r.db.
		Where("question_id IN (?)", r.db.Model(&model.Question{}).Select("id").Where("exam_id = ?", examID)).
		Delete(&model.Choice{}).Error
}
