package service

import (
	"fmt"
	"math"
)

// ScaledScore is a display form of a raw {score, maxScore} pair.
type ScaledScore struct {
	Percentage float64
	Letter     string
}

type ScoreConverterService interface {
	Convert(score, maxScore float64) (ScaledScore, error)
}

type scoreConverterServiceImpl struct{}

func NewScoreConverterService() ScoreConverterService {
	return &scoreConverterServiceImpl{}
}

// Convert turns a raw score into a percentage rounded to two decimals and a
// letter band. An exam without questions converts to 0%.
func (s *scoreConverterServiceImpl) Convert(score, maxScore float64) (ScaledScore, error) {
	if maxScore < 0 || score < 0 || score > maxScore {
		return ScaledScore{}, fmt.Errorf("raw score %.2f is out of valid range (0-%.2f)", score, maxScore)
	}

	var pct float64
	if maxScore > 0 {
		pct = score / maxScore * 100
	}
	pct = math.Round(pct*100) / 100

	var letter string
	switch {
	case pct >= 80:
		letter = "A"
	case pct >= 65:
		letter = "B"
	case pct >= 50:
		letter = "C"
	case pct >= 35:
		letter = "D"
	default:
		letter = "E"
	}
	return ScaledScore{Percentage: pct, Letter: letter}, nil
}
