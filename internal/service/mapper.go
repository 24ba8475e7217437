package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/ExamPortal/internal/apperror"
	"github.com/lshigami/ExamPortal/internal/dto"
	"github.com/lshigami/ExamPortal/internal/model"
	"github.com/lshigami/ExamPortal/internal/repository"
)

func toExamResponse(exam *model.Exam) (*dto.ExamResponseDTO, error) {
	var resp dto.ExamResponseDTO
	if err := copier.Copy(&resp, exam); err != nil {
		return nil, fmt.Errorf("map exam %d: %v: %w", exam.ID, err, apperror.ErrInternal)
	}
	if resp.Questions == nil {
		resp.Questions = []dto.QuestionResponseDTO{}
	}
	for i := range resp.Questions {
		if resp.Questions[i].Choices == nil {
			resp.Questions[i].Choices = []dto.ChoiceResponseDTO{}
		}
	}
	return &resp, nil
}

// toStudentExam builds the examinee view. StudentQuestionDTO has no correct
// answer field, so the copy cannot leak it.
func toStudentExam(exam *model.Exam) (*dto.StudentExamDTO, error) {
	var resp dto.StudentExamDTO
	if err := copier.Copy(&resp, exam); err != nil {
		return nil, fmt.Errorf("map exam %d: %v: %w", exam.ID, err, apperror.ErrInternal)
	}
	if resp.Questions == nil {
		resp.Questions = []dto.StudentQuestionDTO{}
	}
	for i := range resp.Questions {
		if resp.Questions[i].Choices == nil {
			resp.Questions[i].Choices = []dto.ChoiceResponseDTO{}
		}
	}
	return &resp, nil
}

func toExamSummaries(rows []repository.ExamWithCount) []dto.ExamSummaryDTO {
	out := make([]dto.ExamSummaryDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ExamSummaryDTO{
			ID:              r.ID,
			Title:           r.Title,
			YearLevel:       r.YearLevel,
			Section:         r.Section,
			JoinCode:        r.JoinCode,
			Course:          r.Course,
			DurationMinutes: r.DurationMinutes,
			QuestionCount:   r.QuestionCount,
			CreatedAt:       r.CreatedAt,
		})
	}
	return out
}
