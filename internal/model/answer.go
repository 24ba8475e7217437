package model

import "time"

// Answer records what was submitted for one question of a graded attempt.
// QuestionID is a plain reference: an exam edit may later remove the question
// while the graded answer stays on record.
type Answer struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	AttemptID    uint      `json:"attempt_id" gorm:"not null;index"`
	QuestionID   uint      `json:"question_id" gorm:"not null;index"`
	AnswerText   string    `json:"answer_text" gorm:"type:text;not null;default:''"`
	IsCorrect    bool      `json:"is_correct" gorm:"not null;default:false"`
	PointsEarned float64   `json:"points_earned" gorm:"not null;default:0"`
	CreatedAt    time.Time `json:"created_at"`
}
