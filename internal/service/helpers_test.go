package service

import (
	"strings"
	"testing"

	"github.com/lshigami/ExamPortal/database"
	"github.com/lshigami/ExamPortal/internal/dto"
	"github.com/lshigami/ExamPortal/internal/model"
	"github.com/lshigami/ExamPortal/internal/repository"
	"gorm.io/gorm"
)

type testEnv struct {
	db          *gorm.DB
	examRepo    repository.ExamRepository
	attemptRepo repository.AttemptRepository
	answerRepo  repository.AnswerRepository
	resultRepo  repository.ResultRepository
	keys        AnswerKeyService
	attempts    AttemptService
	exams       ExamService
	students    StudentExamService
	grading     GradingService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.OpenSQLiteMemory(name)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	e := &testEnv{
		db:          db,
		examRepo:    repository.NewExamRepository(db),
		attemptRepo: repository.NewAttemptRepository(db),
		answerRepo:  repository.NewAnswerRepository(db),
		resultRepo:  repository.NewResultRepository(db),
	}
	questionRepo := repository.NewQuestionRepository(db)
	choiceRepo := repository.NewChoiceRepository(db)

	e.keys = NewAnswerKeyService(questionRepo)
	e.attempts = NewAttemptService(db, e.examRepo, e.attemptRepo, e.resultRepo, e.answerRepo)
	e.exams = NewExamService(db, e.examRepo, questionRepo, choiceRepo, e.attempts, e.keys)
	e.students = NewStudentExamService(e.examRepo, e.attempts)
	e.grading = NewGradingService(db, e.attempts, e.keys, e.examRepo, e.attemptRepo, e.resultRepo, e.answerRepo, NewScoreConverterService())
	return e
}

func uintPtr(v uint) *uint { return &v }

// geographyExam is a two-question exam: a free-text capital and a multiple choice sum.
func geographyExam(joinCode string) dto.ExamUpsertRequest {
	return dto.ExamUpsertRequest{
		Title:           "Geography quiz",
		Instructions:    "Answer every question.",
		YearLevel:       "Grade 8",
		Section:         "B",
		JoinCode:        joinCode,
		Course:          "MATH",
		DurationMinutes: 30,
		Questions: []dto.QuestionInput{
			{Text: "Capital of France?", CorrectAnswer: "Paris"},
			{
				Text:          "2 + 2 = ?",
				CorrectAnswer: "4",
				Choices:       []dto.ChoiceInput{{Text: "3"}, {Text: "4"}, {Text: "5"}},
			},
		},
	}
}

func mustCreateExam(t *testing.T, e *testEnv, req dto.ExamUpsertRequest) *dto.ExamResponseDTO {
	t.Helper()
	exam, err := e.exams.CreateExam(adminCaller, req)
	if err != nil {
		t.Fatalf("CreateExam() error = %v", err)
	}
	return exam
}

func countRows(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	if err := db.Table(table).Count(&n).Error; err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

func storedAnswers(t *testing.T, db *gorm.DB, attemptID uint) []model.Answer {
	t.Helper()
	var answers []model.Answer
	if err := db.Where("attempt_id = ?", attemptID).Order("question_id ASC").Find(&answers).Error; err != nil {
		t.Fatalf("load answers: %v", err)
	}
	return answers
}

func storedResult(t *testing.T, db *gorm.DB, attemptID uint) model.Result {
	t.Helper()
	var result model.Result
	if err := db.Where("attempt_id = ?", attemptID).First(&result).Error; err != nil {
		t.Fatalf("load result: %v", err)
	}
	return result
}
