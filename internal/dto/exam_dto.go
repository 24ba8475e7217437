package dto

import "time"

// ChoiceInput describes one choice of a submitted question. A nil ID, or an ID the
// question does not own, creates a new choice.
type ChoiceInput struct {
	ID   *uint  `json:"id"`
	Text string `json:"text"`
}

// QuestionInput describes one question of a submitted exam tree. Omitting Choices
// removes every existing choice of the question.
type QuestionInput struct {
	ID            *uint         `json:"id"`
	Text          string        `json:"text"`
	CorrectAnswer string        `json:"correct_answer"`
	Choices       []ChoiceInput `json:"choices" binding:"omitempty,dive"`
}

// ExamUpsertRequest is the full exam tree used for both create and update.
type ExamUpsertRequest struct {
	Title           string          `json:"title"`
	Instructions    string          `json:"instructions"`
	YearLevel       string          `json:"year_level"`
	Section         string          `json:"section"`
	JoinCode        string          `json:"join_code" binding:"required,joincode"`
	Course          string          `json:"course"`
	DurationMinutes int             `json:"duration_minutes" binding:"gte=0"`
	Questions       []QuestionInput `json:"questions" binding:"omitempty,dive"`
}

// ChoiceResponseDTO is shared by the author and examinee views.
type ChoiceResponseDTO struct {
	ID       uint   `json:"id"`
	Text     string `json:"text"`
	Position int    `json:"position"`
}

// QuestionResponseDTO is the author view of a question, correct answer included.
type QuestionResponseDTO struct {
	ID            uint                `json:"id"`
	ExamID        uint                `json:"exam_id"`
	Text          string              `json:"text"`
	CorrectAnswer string              `json:"correct_answer"`
	Position      int                 `json:"position"`
	Choices       []ChoiceResponseDTO `json:"choices"`
}

// ExamResponseDTO is the author view of an exam.
type ExamResponseDTO struct {
	ID              uint                  `json:"id"`
	Title           string                `json:"title"`
	Instructions    string                `json:"instructions"`
	YearLevel       string                `json:"year_level"`
	Section         string                `json:"section"`
	JoinCode        string                `json:"join_code"`
	Course          string                `json:"course"`
	DurationMinutes int                   `json:"duration_minutes"`
	CreatedBy       uint                  `json:"created_by"`
	Questions       []QuestionResponseDTO `json:"questions"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

// ExamSummaryDTO is a catalogue row.
type ExamSummaryDTO struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	YearLevel       string    `json:"year_level"`
	Section         string    `json:"section"`
	JoinCode        string    `json:"join_code"`
	Course          string    `json:"course"`
	DurationMinutes int       `json:"duration_minutes"`
	QuestionCount   int       `json:"question_count"`
	CreatedAt       time.Time `json:"created_at"`
}

// StudentQuestionDTO is what an examinee sees: no correct answer.
type StudentQuestionDTO struct {
	ID       uint                `json:"id"`
	Text     string              `json:"text"`
	Position int                 `json:"position"`
	Choices  []ChoiceResponseDTO `json:"choices"`
}

type StudentExamDTO struct {
	ID              uint                 `json:"id"`
	Title           string               `json:"title"`
	Instructions    string               `json:"instructions"`
	YearLevel       string               `json:"year_level"`
	Section         string               `json:"section"`
	Course          string               `json:"course"`
	DurationMinutes int                  `json:"duration_minutes"`
	Questions       []StudentQuestionDTO `json:"questions"`
}

// AnswerKeyDTO is the faculty-only question → correct answer mapping.
type AnswerKeyDTO struct {
	ExamID  uint            `json:"exam_id"`
	Answers map[uint]string `json:"answers"`
}
