package repository

import (
	"github.com/lshigami/ExamPortal/internal/model"
	"gorm.io/gorm"
)

type ResultRepository interface {
	WithTx(tx *gorm.DB) ResultRepository
	Create(result *model.Result) error
	DeleteByAttemptIDs(attemptIDs []uint) error
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) WithTx(tx *gorm.DB) ResultRepository {
	return &resultRepository{db: tx}
}

func (r *resultRepository) Create(result *model.Result) error {
	return r.db.Create(result).Error
}

func (r *resultRepository) DeleteByAttemptIDs(attemptIDs []uint) error {
	if len(attemptIDs) == 0 {
		return nil
	}
	return r.db.Where("attempt_id IN ?", attemptIDs).Delete(&model.Result{}).Error
}
