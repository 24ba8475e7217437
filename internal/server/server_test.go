package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/ExamPortal/config"
	"github.com/lshigami/ExamPortal/database"
	"github.com/lshigami/ExamPortal/internal/auth"
	"github.com/lshigami/ExamPortal/internal/controller/faculty"
	"github.com/lshigami/ExamPortal/internal/controller/student"
	"github.com/lshigami/ExamPortal/internal/dto"
	"github.com/lshigami/ExamPortal/internal/repository"
	"github.com/lshigami/ExamPortal/internal/service"
)

type apiClient struct {
	t      *testing.T
	router *gin.Engine
	tokens map[string]string
}

func newAPI(t *testing.T) *apiClient {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.OpenSQLiteMemory(strings.ReplaceAll(t.Name(), "/", "_"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	cfg := &config.Config{}
	cfg.Server.CORSOrigins = []string{"*"}
	cfg.Auth.JWTSecret = "test-secret"

	examRepo := repository.NewExamRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	choiceRepo := repository.NewChoiceRepository(db)
	attemptRepo := repository.NewAttemptRepository(db)
	resultRepo := repository.NewResultRepository(db)
	answerRepo := repository.NewAnswerRepository(db)

	converter := service.NewScoreConverterService()
	keys := service.NewAnswerKeyService(questionRepo)
	attempts := service.NewAttemptService(db, examRepo, attemptRepo, resultRepo, answerRepo)
	exams := service.NewExamService(db, examRepo, questionRepo, choiceRepo, attempts, keys)
	students := service.NewStudentExamService(examRepo, attempts)
	grading := service.NewGradingService(db, attempts, keys, examRepo, attemptRepo, resultRepo, answerRepo, converter)
	feedback, err := service.NewFeedbackGenerator(cfg)
	if err != nil {
		t.Fatalf("NewFeedbackGenerator: %v", err)
	}
	review := service.NewReviewService(attemptRepo, examRepo, questionRepo, converter, feedback)

	router, err := NewGinEngine(cfg)
	if err != nil {
		t.Fatalf("NewGinEngine: %v", err)
	}
	verifier := auth.NewTokenVerifier(cfg.Auth.JWTSecret)
	RegisterRoutes(router, verifier, faculty.NewExamController(exams, review), student.NewAttemptController(students, grading))

	tokens := map[string]string{}
	for name, c := range map[string]auth.Caller{
		"admin":   {UserID: 1, Role: auth.RoleAdmin},
		"math":    {UserID: 2, Role: auth.RoleFaculty, Course: "MATH"},
		"science": {UserID: 3, Role: auth.RoleFaculty, Course: "SCI"},
		"alice":   {UserID: 100, Role: auth.RoleStudent},
		"bob":     {UserID: 101, Role: auth.RoleStudent},
	} {
		tok, err := verifier.IssueToken(c, time.Hour)
		if err != nil {
			t.Fatalf("IssueToken: %v", err)
		}
		tokens[name] = tok
	}
	return &apiClient{t: t, router: router, tokens: tokens}
}

// do sends a request as user ("" = anonymous) and decodes a 2xx body into out.
func (a *apiClient) do(method, path, user string, body any, out any) int {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			a.t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set("Authorization", "Bearer "+a.tokens[user])
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	if out != nil && w.Code < 300 {
		if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
			a.t.Fatalf("%s %s: decode %q: %v", method, path, w.Body.String(), err)
		}
	}
	return w.Code
}

func capitalsExam() dto.ExamUpsertRequest {
	return dto.ExamUpsertRequest{
		Title:           "Capitals",
		JoinCode:        "CAP-2026",
		DurationMinutes: 20,
		Questions: []dto.QuestionInput{
			{Text: "Capital of France?", CorrectAnswer: "Paris"},
			{Text: "Capital of Japan?", CorrectAnswer: "Tokyo", Choices: []dto.ChoiceInput{{Text: "Kyoto"}, {Text: "Tokyo"}}},
		},
	}
}

func TestExamLifecycleOverHTTP(t *testing.T) {
	api := newAPI(t)

	var exam dto.ExamResponseDTO
	if code := api.do(http.MethodPost, "/api/v1/exams", "math", capitalsExam(), &exam); code != http.StatusCreated {
		t.Fatalf("create exam status = %d", code)
	}
	if exam.Course != "MATH" || len(exam.Questions) != 2 {
		t.Fatalf("created exam = %+v", exam)
	}

	var joined dto.StudentExamDTO
	if code := api.do(http.MethodGet, "/api/v1/student/exams/join/CAP-2026", "alice", nil, &joined); code != http.StatusOK {
		t.Fatalf("join status = %d", code)
	}
	if joined.ID != exam.ID {
		t.Fatalf("joined exam %d, want %d", joined.ID, exam.ID)
	}

	var started dto.StartAttemptResponseDTO
	startPath := fmt.Sprintf("/api/v1/student/exams/%d/attempt", exam.ID)
	if code := api.do(http.MethodPost, startPath, "alice", nil, &started); code != http.StatusOK {
		t.Fatalf("start status = %d", code)
	}
	if started.Attempt.State != "in_progress" || started.Attempt.Deadline == nil {
		t.Fatalf("attempt = %+v", started.Attempt)
	}

	submit := dto.SubmitAttemptRequest{Answers: map[uint]string{
		exam.Questions[0].ID: "paris",
		exam.Questions[1].ID: "Kyoto",
	}}
	submitPath := fmt.Sprintf("/api/v1/student/attempts/%d/submit", started.Attempt.ID)
	if code := api.do(http.MethodPost, submitPath, "bob", submit, nil); code != http.StatusForbidden {
		t.Errorf("foreign submit status = %d, want 403", code)
	}

	var grade dto.GradeResultDTO
	if code := api.do(http.MethodPost, submitPath, "alice", submit, &grade); code != http.StatusOK {
		t.Fatalf("submit status = %d", code)
	}
	if grade.Score != 1 || grade.MaxScore != 2 || grade.Letter != "C" {
		t.Errorf("grade = %+v", grade)
	}
	if code := api.do(http.MethodPost, submitPath, "alice", submit, nil); code != http.StatusConflict {
		t.Errorf("second submit status = %d, want 409", code)
	}

	var state dto.AttemptDTO
	if code := api.do(http.MethodGet, startPath, "alice", nil, &state); code != http.StatusOK || state.State != "completed" {
		t.Errorf("attempt state = %d %+v", code, state)
	}

	var result dto.AttemptResultDTO
	resultPath := fmt.Sprintf("/api/v1/student/attempts/%d/result", started.Attempt.ID)
	if code := api.do(http.MethodGet, resultPath, "alice", nil, &result); code != http.StatusOK {
		t.Fatalf("result status = %d", code)
	}
	if len(result.Answers) != 2 || result.Grade.Percentage != 50 {
		t.Errorf("result = %+v", result)
	}

	var review dto.AttemptReviewDTO
	reviewPath := fmt.Sprintf("/api/v1/attempts/%d/review", started.Attempt.ID)
	if code := api.do(http.MethodGet, reviewPath, "math", nil, &review); code != http.StatusOK {
		t.Fatalf("review status = %d", code)
	}
	if review.Answers[1].CorrectAnswer != "Tokyo" || review.Answers[1].Feedback != "" {
		t.Errorf("review answer = %+v", review.Answers[1])
	}
	if code := api.do(http.MethodGet, reviewPath, "science", nil, nil); code != http.StatusForbidden {
		t.Errorf("foreign review status = %d, want 403", code)
	}

	examPath := fmt.Sprintf("/api/v1/exams/%d", exam.ID)
	if code := api.do(http.MethodDelete, examPath, "math", nil, nil); code != http.StatusOK {
		t.Fatalf("delete status = %d", code)
	}
	if code := api.do(http.MethodGet, examPath, "math", nil, nil); code != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", code)
	}
}

func TestAccessRulesOverHTTP(t *testing.T) {
	api := newAPI(t)

	var exam dto.ExamResponseDTO
	if code := api.do(http.MethodPost, "/api/v1/exams", "math", capitalsExam(), &exam); code != http.StatusCreated {
		t.Fatalf("create exam status = %d", code)
	}
	examPath := fmt.Sprintf("/api/v1/exams/%d", exam.ID)

	tests := []struct {
		name   string
		method string
		path   string
		user   string
		body   any
		want   int
	}{
		{"anonymous", http.MethodGet, "/api/v1/exams", "", nil, http.StatusUnauthorized},
		{"student on authoring route", http.MethodGet, "/api/v1/exams", "alice", nil, http.StatusForbidden},
		{"faculty on student route", http.MethodPost, fmt.Sprintf("/api/v1/student/exams/%d/attempt", exam.ID), "math", nil, http.StatusForbidden},
		{"foreign faculty read", http.MethodGet, examPath, "science", nil, http.StatusForbidden},
		{"foreign faculty answer key", http.MethodGet, examPath + "/answer-key", "science", nil, http.StatusForbidden},
		{"own faculty answer key", http.MethodGet, examPath + "/answer-key", "math", nil, http.StatusOK},
		{"missing exam", http.MethodGet, "/api/v1/exams/9999", "science", nil, http.StatusNotFound},
		{"bad id", http.MethodGet, "/api/v1/exams/abc", "math", nil, http.StatusBadRequest},
		{"duplicate join code", http.MethodPost, "/api/v1/exams", "admin", func() dto.ExamUpsertRequest {
			r := capitalsExam()
			r.Course = "MATH"
			return r
		}(), http.StatusConflict},
		{"invalid join code", http.MethodPost, "/api/v1/exams", "math", dto.ExamUpsertRequest{JoinCode: "x"}, http.StatusBadRequest},
		{"admin without course", http.MethodPost, "/api/v1/exams", "admin", dto.ExamUpsertRequest{JoinCode: "NEW-0001"}, http.StatusBadRequest},
		{"reset attempts", http.MethodDelete, examPath + "/attempts", "admin", nil, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code := api.do(tt.method, tt.path, tt.user, tt.body, nil); code != tt.want {
				t.Errorf("status = %d, want %d", code, tt.want)
			}
		})
	}

	var list []dto.ExamSummaryDTO
	if code := api.do(http.MethodGet, "/api/v1/exams", "science", nil, &list); code != http.StatusOK || len(list) != 0 {
		t.Errorf("science list = %d %+v, want empty", code, list)
	}
}
