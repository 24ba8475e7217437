package repository

import (
	"github.com/lshigami/ExamPortal/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ExamWithCount is a catalogue row: the exam plus how many questions it owns.
type ExamWithCount struct {
	model.Exam
	QuestionCount int
}

type ExamRepository interface {
	WithTx(tx *gorm.DB) ExamRepository
	Create(exam *model.Exam) error
	FindByID(id uint) (*model.Exam, error)
	FindByIDWithQuestions(id uint) (*model.Exam, error)
	FindByJoinCode(code string) (*model.Exam, error)
	// FindAllWithQuestionCount lists exams; an empty course means every course.
	FindAllWithQuestionCount(course string) ([]ExamWithCount, error)
	UpdateScalars(id uint, fields map[string]interface{}) error
	Delete(id uint) (int64, error)
}

type examRepository struct {
	db *gorm.DB
}

func NewExamRepository(db *gorm.DB) ExamRepository {
	return &examRepository{db: db}
}

func (r *examRepository) WithTx(tx *gorm.DB) ExamRepository {
	return &examRepository{db: tx}
}

// Create inserts the exam row only; questions are written by the reconciler.
func (r *examRepository) Create(exam *model.Exam) error {
	return r.db.Omit(clause.Associations).Create(exam).Error
}

func (r *examRepository) FindByID(id uint) (*model.Exam, error) {
	var exam model.Exam
	if err := r.db.First(&exam, id).Error; err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *examRepository) FindByIDWithQuestions(id uint) (*model.Exam, error) {
	var exam model.Exam
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.position ASC, questions.id ASC")
		}).
		Preload("Questions.Choices", func(db *gorm.DB) *gorm.DB {
			return db.Order("choices.position ASC, choices.id ASC")
		}).
		First(&exam, id).Error
	if err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *examRepository) FindByJoinCode(code string) (*model.Exam, error) {
	var exam model.Exam
	if err := r.db.Where("join_code = ?", code).First(&exam).Error; err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *examRepository) FindAllWithQuestionCount(course string) ([]ExamWithCount, error) {
	var results []ExamWithCount
	query := r.db.Model(&model.Exam{}).
		Select("exams.*, (SELECT COUNT(*) FROM questions WHERE questions.exam_id = exams.id) AS question_count")
	if course != "" {
		query = query.Where("exams.course = ?", course)
	}
	err := query.Order("exams.created_at DESC, exams.id DESC").Scan(&results).Error
	return results, err
}

func (r *examRepository) UpdateScalars(id uint, fields map[string]interface{}) error {
	return r.db.Model(&model.Exam{}).Where("id = ?", id).Updates(fields).Error
}

func (r *examRepository) Delete(id uint) (int64, error) {
	res := r.db.Delete(&model.Exam{}, id)
	return res.RowsAffected, res.Error
}
