package service

import (
	"sort"
	"strings"
)

// PointsPerQuestion is awarded for every correctly answered question.
const PointsPerQuestion = 1.0

// QuestionGrade is the outcome for one answer-key question.
type QuestionGrade struct {
	QuestionID uint
	Submitted  string // as submitted, original case
	Correct    bool
	Points     float64
}

// ScoreSheet is the result of grading one submission against an answer key.
type ScoreSheet struct {
	Score    float64
	MaxScore float64
	Grades   []QuestionGrade // ordered by question id
}

// NormalizeAnswer trims surrounding whitespace and lower-cases s.
func NormalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Score grades submitted against key. Every key question counts toward MaxScore;
// submitted answers for questions outside the key are ignored. A question whose
// correct answer is empty can never be answered correctly.
func Score(key map[uint]string, submitted map[uint]string) ScoreSheet {
	ids := make([]uint, 0, len(key))
	for id := range key {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	sheet := ScoreSheet{Grades: make([]QuestionGrade, 0, len(ids))}
	for _, id := range ids {
		given := submitted[id]
		want := NormalizeAnswer(key[id])

		grade := QuestionGrade{QuestionID: id, Submitted: given}
		if want != "" && NormalizeAnswer(given) == want {
			grade.Correct = true
			grade.Points = PointsPerQuestion
		}
		sheet.Score += grade.Points
		sheet.MaxScore += PointsPerQuestion
		sheet.Grades = append(sheet.Grades, grade)
	}
	return sheet
}
