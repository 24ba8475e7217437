package model

import "time"

type AttemptState string

const (
	AttemptNotStarted AttemptState = "not_started"
	AttemptInProgress AttemptState = "in_progress"
	AttemptCompleted  AttemptState = "completed"
)

// Attempt is one student's single try at one exam. The (student_id, exam_id)
// unique index is what makes start-or-resume safe under concurrent first access.
type Attempt struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	StudentID   uint       `json:"student_id" gorm:"not null;uniqueIndex:idx_attempt_student_exam"`
	ExamID      uint       `json:"exam_id" gorm:"not null;uniqueIndex:idx_attempt_student_exam;index"`
	Completed   bool       `json:"completed" gorm:"not null;default:false"`
	StartedAt   time.Time  `json:"started_at" gorm:"autoCreateTime"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Result      *Result    `json:"result,omitempty" gorm:"foreignKey:AttemptID;constraint:OnDelete:CASCADE"`
	Answers     []Answer   `json:"answers,omitempty" gorm:"foreignKey:AttemptID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// State maps the persisted row onto the attempt state machine. A nil attempt has
// not been started.
func (a *Attempt) State() AttemptState {
	switch {
	case a == nil:
		return AttemptNotStarted
	case a.Completed:
		return AttemptCompleted
	default:
		return AttemptInProgress
	}
}
