package repository

import (
	"time"

	"github.com/lshigami/ExamPortal/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttemptRepository interface {
	WithTx(tx *gorm.DB) AttemptRepository
	// CreateIfAbsent inserts the attempt unless one already exists for the same
	// (student, exam). It reports whether this call inserted the row.
	CreateIfAbsent(attempt *model.Attempt) (bool, error)
	FindByID(id uint) (*model.Attempt, error)
	FindByStudentAndExam(studentID, examID uint) (*model.Attempt, error)
	FindByIDWithDetails(id uint) (*model.Attempt, error)
	FindIDsByExamID(examID uint) ([]uint, error)
	// MarkCompleted flips completed=false to true and returns the affected row count.
	MarkCompleted(studentID, examID uint, at time.Time) (int64, error)
	DeleteByIDs(ids []uint) error
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) WithTx(tx *gorm.DB) AttemptRepository {
	return &attemptRepository{db: tx}
}

func (r *attemptRepository) CreateIfAbsent(attempt *model.Attempt) (bool, error) {
	res := r.db.Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "student_id"}, {Name: "exam_id"}},
			DoNothing: true,
		}).
		Create(attempt)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *attemptRepository) FindByID(id uint) (*model.Attempt, error) {
	var attempt model.Attempt
	if err := r.db.First(&attempt, id).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindByStudentAndExam(studentID, examID uint) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.db.Where("student_id = ? AND exam_id = ?", studentID, examID).First(&attempt).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindByIDWithDetails(id uint) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.db.
		Preload("Result").
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.question_id ASC")
		}).
		First(&attempt, id).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindIDsByExamID(examID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&model.Attempt{}).Where("exam_id = ?", examID).Pluck("id", &ids).Error
	return ids, err
}

func (r *attemptRepository) MarkCompleted(studentID, examID uint, at time.Time) (int64, error) {
	res := r.db.Model(&model.Attempt{}).
		Where("student_id = ? AND exam_id = ? AND completed = ?", studentID, examID, false).
		Updates(map[string]interface{}{
			"completed":    true,
			"completed_at": at,
		})
	return res.RowsAffected, res.Error
}

func (r *attemptRepository) DeleteByIDs(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Where("id IN ?", ids).Delete(&model.Attempt{}).Error
}
