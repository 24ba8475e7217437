package model

import "time"

// Question belongs to an Exam. A question without choices is answered free-text.
type Question struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	ExamID        uint      `json:"exam_id" gorm:"not null;index"`
	Text          string    `json:"text" gorm:"type:text;not null;default:''"`
	CorrectAnswer string    `json:"correct_answer" gorm:"type:text;not null;default:''"`
	Position      int       `json:"position" gorm:"not null;default:0"`
	Choices       []Choice  `json:"choices,omitempty" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Choice struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	QuestionID uint      `json:"question_id" gorm:"not null;index"`
	Text       string    `json:"text" gorm:"type:text;not null;default:''"`
	Position   int       `json:"position" gorm:"not null;default:0"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
