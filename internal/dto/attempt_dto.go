package dto

import "time"

// AttemptDTO reports the state of one student's attempt.
type AttemptDTO struct {
	ID          uint       `json:"id"`
	StudentID   uint       `json:"student_id"`
	ExamID      uint       `json:"exam_id"`
	State       string     `json:"state"`
	Completed   bool       `json:"completed"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Deadline is StartedAt plus the exam duration; nil for untimed exams.
	Deadline *time.Time `json:"deadline,omitempty"`
}

// StartAttemptResponseDTO is returned when a student opens the exam-taking flow.
type StartAttemptResponseDTO struct {
	Attempt AttemptDTO     `json:"attempt"`
	Exam    StudentExamDTO `json:"exam"`
}

// SubmitAttemptRequest carries the answers keyed by question id. ForcedEmpty marks
// an auto-submission after the examinee left the exam view; answers are ignored.
type SubmitAttemptRequest struct {
	Answers     map[uint]string `json:"answers"`
	ForcedEmpty bool            `json:"forced_empty"`
}

type GradeResultDTO struct {
	AttemptID  uint    `json:"attempt_id"`
	Score      float64 `json:"score"`
	MaxScore   float64 `json:"max_score"`
	Percentage float64 `json:"percentage"`
	Letter     string  `json:"letter"`
}

// AnswerResponseDTO is the examinee view of a graded answer.
type AnswerResponseDTO struct {
	QuestionID   uint    `json:"question_id"`
	AnswerText   string  `json:"answer_text"`
	IsCorrect    bool    `json:"is_correct"`
	PointsEarned float64 `json:"points_earned"`
}

type AttemptResultDTO struct {
	Attempt AttemptDTO          `json:"attempt"`
	Grade   GradeResultDTO      `json:"grade"`
	Answers []AnswerResponseDTO `json:"answers"`
}

// ReviewedAnswerDTO is the faculty view of a graded answer.
type ReviewedAnswerDTO struct {
	QuestionID    uint    `json:"question_id"`
	QuestionText  string  `json:"question_text"`
	CorrectAnswer string  `json:"correct_answer"`
	AnswerText    string  `json:"answer_text"`
	IsCorrect     bool    `json:"is_correct"`
	PointsEarned  float64 `json:"points_earned"`
	Feedback      string  `json:"feedback,omitempty"`
}

type AttemptReviewDTO struct {
	Attempt  AttemptDTO          `json:"attempt"`
	Grade    GradeResultDTO      `json:"grade"`
	Answers  []ReviewedAnswerDTO `json:"answers"`
	Warnings []string            `json:"warnings,omitempty"`
}
