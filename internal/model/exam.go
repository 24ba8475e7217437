package model

import "time"

type Exam struct {
	ID              uint       `gorm:"primarykey" json:"id"`
	Title           string     `json:"title" gorm:"not null;default:''"`
	Instructions    string     `json:"instructions" gorm:"type:text;not null;default:''"`
	YearLevel       string     `json:"year_level" gorm:"not null;default:''"`
	Section         string     `json:"section" gorm:"not null;default:''"`
	JoinCode        string     `json:"join_code" gorm:"not null;uniqueIndex"`
	Course          string     `json:"course" gorm:"not null;index"`
	DurationMinutes int        `json:"duration_minutes" gorm:"not null;default:0"`
	CreatedBy       uint       `json:"created_by" gorm:"index"`
	Questions       []Question `json:"questions,omitempty" gorm:"foreignKey:ExamID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
