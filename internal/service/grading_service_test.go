package service

import (
	"errors"
	"testing"

	"github.com/lshigami/ExamPortal/internal/apperror"
	"github.com/lshigami/ExamPortal/internal/dto"
	"github.com/lshigami/ExamPortal/internal/model"
	"gorm.io/gorm"
)

func startAttempt(t *testing.T, e *testEnv, studentID, examID uint) *model.Attempt {
	t.Helper()
	a, err := e.attempts.StartOrResume(studentID, examID)
	if err != nil {
		t.Fatalf("StartOrResume() error = %v", err)
	}
	return a
}

func TestSubmitAndGrade(t *testing.T) {
	e := newTestEnv(t)
	exam := mustCreateExam(t, e, geographyExam("GEO-101"))
	capital, sum := exam.Questions[0].ID, exam.Questions[1].ID
	attempt := startAttempt(t, e, studentCaller.UserID, exam.ID)

	grade, err := e.grading.SubmitAndGrade(attempt.ID, map[uint]string{capital: " paris ", sum: ""}, false)
	if err != nil {
		t.Fatalf("SubmitAndGrade() error = %v", err)
	}
	if grade.Score != 1 || grade.MaxScore != 2 || grade.Percentage != 50 || grade.Letter != "C" {
		t.Fatalf("grade = %+v", grade)
	}

	answers := storedAnswers(t, e.db, attempt.ID)
	if len(answers) != 2 {
		t.Fatalf("answers = %d, want one per question", len(answers))
	}
	byQuestion := map[uint]model.Answer{}
	for _, a := range answers {
		byQuestion[a.QuestionID] = a
	}
	if a := byQuestion[capital]; a.AnswerText != " paris " || !a.IsCorrect || a.PointsEarned != 1 {
		t.Errorf("capital answer = %+v", a)
	}
	if a := byQuestion[sum]; a.IsCorrect || a.PointsEarned != 0 {
		t.Errorf("sum answer = %+v", a)
	}

	after, _, _ := e.attempts.GetAttemptByID(attempt.ID)
	if after.State() != model.AttemptCompleted {
		t.Errorf("attempt state = %s, want completed", after.State())
	}
}

func TestSubmitAndGradeForcedEmpty(t *testing.T) {
	e := newTestEnv(t)
	req := geographyExam("GEO-101")
	req.Questions = append(req.Questions, dto.QuestionInput{Text: "Largest ocean?", CorrectAnswer: "Pacific"})
	exam := mustCreateExam(t, e, req)
	attempt := startAttempt(t, e, studentCaller.UserID, exam.ID)

	answers := map[uint]string{
		exam.Questions[0].ID: "Paris",
		exam.Questions[1].ID: "4",
		exam.Questions[2].ID: "Pacific",
	}
	grade, err := e.grading.SubmitAndGrade(attempt.ID, answers, true)
	if err != nil {
		t.Fatalf("SubmitAndGrade() error = %v", err)
	}
	if grade.Score != 0 || grade.MaxScore != 3 {
		t.Fatalf("grade = %v/%v, want 0/3", grade.Score, grade.MaxScore)
	}
	stored := storedAnswers(t, e.db, attempt.ID)
	for _, a := range stored {
		if a.AnswerText != "" || a.IsCorrect {
			t.Errorf("forced-empty answer stored as %+v", a)
		}
	}
	after, _, _ := e.attempts.GetAttemptByID(attempt.ID)
	if !after.Completed {
		t.Error("attempt not completed after forced-empty submission")
	}
}

func TestSubmitAndGradeTwiceConflicts(t *testing.T) {
	e := newTestEnv(t)
	exam := mustCreateExam(t, e, geographyExam("GEO-101"))
	attempt := startAttempt(t, e, studentCaller.UserID, exam.ID)
	capital := exam.Questions[0].ID

	if _, err := e.grading.SubmitAndGrade(attempt.ID, map[uint]string{capital: "Paris"}, false); err != nil {
		t.Fatalf("first submit error = %v", err)
	}
	_, err := e.grading.SubmitAndGrade(attempt.ID, map[uint]string{capital: "Lyon"}, false)
	if !errors.Is(err, apperror.ErrConflict) {
		t.Fatalf("second submit err = %v, want ErrConflict", err)
	}

	if result := storedResult(t, e.db, attempt.ID); result.Score != 1 {
		t.Errorf("stored score = %v, want the first submission's 1", result.Score)
	}
	if n := countRows(t, e.db, "results"); n != 1 {
		t.Errorf("results = %d, want 1", n)
	}
	if n := countRows(t, e.db, "answers"); n != 2 {
		t.Errorf("answers = %d, want 2", n)
	}
}

func TestSubmitAndGradeRejectsCompletedAttempt(t *testing.T) {
	e := newTestEnv(t)
	exam := mustCreateExam(t, e, geographyExam("GEO-101"))
	attempt := startAttempt(t, e, studentCaller.UserID, exam.ID)

	// Completed without a result, as left by a competing submission.
	if ok, err := e.attempts.MarkCompleted(attempt.StudentID, attempt.ExamID); err != nil || !ok {
		t.Fatalf("MarkCompleted() = %v, %v", ok, err)
	}
	if _, err := e.grading.SubmitAndGrade(attempt.ID, nil, false); !errors.Is(err, apperror.ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
	if n := countRows(t, e.db, "results"); n != 0 {
		t.Errorf("results = %d, want 0", n)
	}
}

func TestSubmitAndGradeRollsBackWhenAnswersFail(t *testing.T) {
	e := newTestEnv(t)
	exam := mustCreateExam(t, e, geographyExam("GEO-101"))
	attempt := startAttempt(t, e, studentCaller.UserID, exam.ID)
	answers := map[uint]string{exam.Questions[0].ID: "Paris", exam.Questions[1].ID: "5"}

	failing := true
	err := e.db.Callback().Create().Before("gorm:create").Register("test:fail_answers", func(tx *gorm.DB) {
		if failing && tx.Statement.Table == "answers" {
			tx.AddError(errors.New("disk full"))
		}
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}

	_, err = e.grading.SubmitAndGrade(attempt.ID, answers, false)
	if !errors.Is(err, apperror.ErrInternal) {
		t.Fatalf("err = %v, want ErrInternal", err)
	}
	for _, table := range []string{"results", "answers"} {
		if n := countRows(t, e.db, table); n != 0 {
			t.Errorf("%s = %d after rollback, want 0", table, n)
		}
	}
	after, _, _ := e.attempts.GetAttemptByID(attempt.ID)
	if after.Completed {
		t.Fatal("attempt completed although grading rolled back")
	}

	failing = false
	grade, err := e.grading.SubmitAndGrade(attempt.ID, answers, false)
	if err != nil {
		t.Fatalf("retry error = %v", err)
	}
	if grade.Score != 1 || grade.MaxScore != 2 {
		t.Errorf("retry grade = %v/%v, want 1/2", grade.Score, grade.MaxScore)
	}
}

func TestSubmitAndGradeRollsBackWhenCompletedConcurrently(t *testing.T) {
	e := newTestEnv(t)
	exam := mustCreateExam(t, e, geographyExam("GEO-101"))
	attempt := startAttempt(t, e, studentCaller.UserID, exam.ID)

	// Another writer completes the attempt between the inserts and the conditional update.
	err := e.db.Callback().Create().After("gorm:create").Register("test:complete_attempt", func(tx *gorm.DB) {
		if tx.Error != nil || tx.Statement.Table != "results" {
			return
		}
		if err := tx.Session(&gorm.Session{NewDB: true}).
			Exec("UPDATE attempts SET completed = ? WHERE id = ?", true, attempt.ID).Error; err != nil {
			tx.AddError(err)
		}
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}

	_, err = e.grading.SubmitAndGrade(attempt.ID, map[uint]string{exam.Questions[0].ID: "Paris"}, false)
	if !errors.Is(err, apperror.ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
	for _, table := range []string{"results", "answers"} {
		if n := countRows(t, e.db, table); n != 0 {
			t.Errorf("%s = %d after rollback, want 0", table, n)
		}
	}
}

func TestSubmitAndGradeUnknownAttempt(t *testing.T) {
	e := newTestEnv(t)
	if _, err := e.grading.SubmitAndGrade(999, map[uint]string{}, false); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSubmitAndGradeAfterQuestionRemoved(t *testing.T) {
	e := newTestEnv(t)
	exam := mustCreateExam(t, e, geographyExam("GEO-101"))
	attempt := startAttempt(t, e, studentCaller.UserID, exam.ID)
	removed := exam.Questions[1].ID

	update := resubmit(exam)
	update.Questions = update.Questions[:1]
	if _, err := e.exams.ReconcileExam(adminCaller, exam.ID, update); err != nil {
		t.Fatalf("ReconcileExam() error = %v", err)
	}

	grade, err := e.grading.SubmitAndGrade(attempt.ID, map[uint]string{exam.Questions[0].ID: "Paris", removed: "4"}, false)
	if err != nil {
		t.Fatalf("SubmitAndGrade() error = %v", err)
	}
	if grade.Score != 1 || grade.MaxScore != 1 {
		t.Errorf("grade = %v/%v, want 1/1", grade.Score, grade.MaxScore)
	}
}

func TestStudentSubmitAndResult(t *testing.T) {
	e := newTestEnv(t)
	exam := mustCreateExam(t, e, geographyExam("GEO-101"))
	attempt := startAttempt(t, e, studentCaller.UserID, exam.ID)
	intruder := studentCaller
	intruder.UserID = 555

	req := dto.SubmitAttemptRequest{Answers: map[uint]string{exam.Questions[0].ID: "Paris", exam.Questions[1].ID: "4"}}
	if _, err := e.grading.SubmitOwn(intruder, attempt.ID, req); !errors.Is(err, apperror.ErrForbidden) {
		t.Fatalf("foreign submit err = %v, want ErrForbidden", err)
	}
	if _, err := e.grading.GetOwnResult(studentCaller, attempt.ID); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("result before grading err = %v, want ErrNotFound", err)
	}

	grade, err := e.grading.SubmitOwn(studentCaller, attempt.ID, req)
	if err != nil {
		t.Fatalf("SubmitOwn() error = %v", err)
	}
	if grade.Letter != "A" || grade.Percentage != 100 {
		t.Errorf("grade = %+v", grade)
	}

	result, err := e.grading.GetOwnResult(studentCaller, attempt.ID)
	if err != nil {
		t.Fatalf("GetOwnResult() error = %v", err)
	}
	if result.Attempt.State != string(model.AttemptCompleted) || result.Attempt.Deadline == nil {
		t.Errorf("attempt = %+v", result.Attempt)
	}
	if len(result.Answers) != 2 || result.Grade.Score != 2 {
		t.Errorf("result = %+v", result)
	}
	if _, err := e.grading.GetOwnResult(intruder, attempt.ID); !errors.Is(err, apperror.ErrForbidden) {
		t.Errorf("foreign result err = %v, want ErrForbidden", err)
	}
}
