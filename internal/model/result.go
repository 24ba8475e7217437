package model

import "time"

type Result struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	AttemptID uint      `json:"attempt_id" gorm:"not null;uniqueIndex"`
	Score     float64   `json:"score" gorm:"not null;default:0"`
	MaxScore  float64   `json:"max_score" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at"`
}
