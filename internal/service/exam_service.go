package service

import (
	"fmt"
	"strings"

	"github.com/lshigami/ExamPortal/internal/apperror"
	"github.com/lshigami/ExamPortal/internal/auth"
	"github.com/lshigami/ExamPortal/internal/dto"
	"github.com/lshigami/ExamPortal/internal/model"
	"github.com/lshigami/ExamPortal/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ExamService is the faculty/admin side of the exam catalogue: authoring,
// structure reconciliation and scoped access.
type ExamService interface {
	CreateExam(caller auth.Caller, req dto.ExamUpsertRequest) (*dto.ExamResponseDTO, error)
	// ReconcileExam makes the stored exam tree match req exactly.
	ReconcileExam(caller auth.Caller, examID uint, req dto.ExamUpsertRequest) (*dto.ExamResponseDTO, error)
	DeleteExam(caller auth.Caller, examID uint) error
	GetExam(caller auth.Caller, examID uint) (*dto.ExamResponseDTO, error)
	ListExams(caller auth.Caller) ([]dto.ExamSummaryDTO, error)
	AnswerKey(caller auth.Caller, examID uint) (*dto.AnswerKeyDTO, error)
	// ResetAttempts discards every attempt of the exam so students can retake it.
	ResetAttempts(caller auth.Caller, examID uint) error
}

type examService struct {
	db             *gorm.DB
	examRepo       repository.ExamRepository
	questionRepo   repository.QuestionRepository
	choiceRepo     repository.ChoiceRepository
	attemptService AttemptService
	answerKeys     AnswerKeyService
	scope          CatalogScope
}

func NewExamService(
	db *gorm.DB,
	examRepo repository.ExamRepository,
	questionRepo repository.QuestionRepository,
	choiceRepo repository.ChoiceRepository,
	attemptService AttemptService,
	answerKeys AnswerKeyService,
) ExamService {
	return &examService{
		db:             db,
		examRepo:       examRepo,
		questionRepo:   questionRepo,
		choiceRepo:     choiceRepo,
		attemptService: attemptService,
		answerKeys:     answerKeys,
	}
}

func (s *examService) CreateExam(caller auth.Caller, req dto.ExamUpsertRequest) (*dto.ExamResponseDTO, error) {
	course, err := s.scope.ResolveCreateCourse(caller, req.Course)
	if err != nil {
		return nil, err
	}
	if err := validateUpsert(&req); err != nil {
		return nil, err
	}

	exam := model.Exam{
		Title:           req.Title,
		Instructions:    req.Instructions,
		YearLevel:       req.YearLevel,
		Section:         req.Section,
		JoinCode:        req.JoinCode,
		Course:          course,
		DurationMinutes: req.DurationMinutes,
		CreatedBy:       caller.UserID,
	}

	var saved *model.Exam
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.examRepo.WithTx(tx).Create(&exam); err != nil {
			return err
		}
		if err := s.reconcileQuestions(tx, exam.ID, req.Questions); err != nil {
			return err
		}
		loaded, err := s.examRepo.WithTx(tx).FindByIDWithQuestions(exam.ID)
		if err != nil {
			return err
		}
		saved = loaded
		return nil
	})
	if err != nil {
		return nil, s.writeError(err, "CreateExam", exam.ID, req.JoinCode)
	}

	log.Info().Uint("examID", saved.ID).Str("course", saved.Course).Int("questions", len(saved.Questions)).Msg("Exam created")
	return toExamResponse(saved)
}

func (s *examService) ReconcileExam(caller auth.Caller, examID uint, req dto.ExamUpsertRequest) (*dto.ExamResponseDTO, error) {
	current, err := s.loadManaged(caller, examID)
	if err != nil {
		return nil, err
	}
	course := strings.TrimSpace(req.Course)
	if course == "" {
		course = current.Course
	}
	if caller.IsFaculty() && course != caller.Course {
		return nil, fmt.Errorf("cannot move exam to course %q: %w", course, apperror.ErrForbidden)
	}
	if err := validateUpsert(&req); err != nil {
		return nil, err
	}

	var saved *model.Exam
	err = s.db.Transaction(func(tx *gorm.DB) error {
		err := s.examRepo.WithTx(tx).UpdateScalars(examID, map[string]interface{}{
			"title":            req.Title,
			"instructions":     req.Instructions,
			"year_level":       req.YearLevel,
			"section":          req.Section,
			"join_code":        req.JoinCode,
			"course":           course,
			"duration_minutes": req.DurationMinutes,
		})
		if err != nil {
			return err
		}
		if err := s.reconcileQuestions(tx, examID, req.Questions); err != nil {
			return err
		}
		loaded, err := s.examRepo.WithTx(tx).FindByIDWithQuestions(examID)
		if err != nil {
			return err
		}
		saved = loaded
		return nil
	})
	if err != nil {
		return nil, s.writeError(err, "ReconcileExam", examID, req.JoinCode)
	}

	log.Info().Uint("examID", examID).Int("questions", len(saved.Questions)).Msg("Exam reconciled")
	return toExamResponse(saved)
}

// reconcileQuestions applies the submitted question list to examID. Positions
// follow submission order.
func (s *examService) reconcileQuestions(tx *gorm.DB, examID uint, inputs []dto.QuestionInput) error {
	questions := s.questionRepo.WithTx(tx)
	choices := s.choiceRepo.WithTx(tx)

	existing, err := questions.FindByExamIDWithChoices(examID)
	if err != nil {
		return fmt.Errorf("load questions of exam %d: %w", examID, err)
	}
	existingIDs := make([]uint, 0, len(existing))
	ownedChoices := make(map[uint][]model.Choice, len(existing))
	for _, q := range existing {
		existingIDs = append(existingIDs, q.ID)
		ownedChoices[q.ID] = q.Choices
	}

	submitted := make([]*uint, len(inputs))
	for i := range inputs {
		submitted[i] = inputs[i].ID
	}
	plan, err := PlanReconcile(existingIDs, submitted)
	if err != nil {
		return fmt.Errorf("questions: %w", err)
	}

	if len(plan.Delete) > 0 {
		if err := choices.DeleteByQuestionIDs(plan.Delete); err != nil {
			return fmt.Errorf("delete choices of removed questions: %w", err)
		}
		if err := questions.DeleteByIDs(plan.Delete); err != nil {
			return fmt.Errorf("delete removed questions: %w", err)
		}
	}

	updating := make(map[int]bool, len(plan.Update))
	for _, i := range plan.Update {
		updating[i] = true
	}
	for i, in := range inputs {
		q := model.Question{
			ExamID:        examID,
			Text:          in.Text,
			CorrectAnswer: in.CorrectAnswer,
			Position:      i,
		}
		var owned []model.Choice
		if updating[i] {
			q.ID = *in.ID
			owned = ownedChoices[q.ID]
			if err := questions.Update(&q); err != nil {
				return fmt.Errorf("update question %d: %w", q.ID, err)
			}
		} else if err := questions.Create(&q); err != nil {
			return fmt.Errorf("create question at position %d: %w", i, err)
		}
		if err := reconcileChoices(choices, q.ID, owned, in.Choices); err != nil {
			return fmt.Errorf("question %d: %w", q.ID, err)
		}
	}
	return nil
}

func reconcileChoices(choices repository.ChoiceRepository, questionID uint, owned []model.Choice, inputs []dto.ChoiceInput) error {
	ownedIDs := make([]uint, 0, len(owned))
	for _, c := range owned {
		ownedIDs = append(ownedIDs, c.ID)
	}
	submitted := make([]*uint, len(inputs))
	for i := range inputs {
		submitted[i] = inputs[i].ID
	}
	plan, err := PlanReconcile(ownedIDs, submitted)
	if err != nil {
		return fmt.Errorf("choices: %w", err)
	}

	if err := choices.DeleteByIDs(plan.Delete); err != nil {
		return fmt.Errorf("delete removed choices: %w", err)
	}
	updating := make(map[int]bool, len(plan.Update))
	for _, i := range plan.Update {
		updating[i] = true
	}
	for i, in := range inputs {
		c := model.Choice{QuestionID: questionID, Text: in.Text, Position: i}
		if updating[i] {
			c.ID = *in.ID
			if err := choices.Update(&c); err != nil {
				return fmt.Errorf("update choice %d: %w", c.ID, err)
			}
			continue
		}
		if err := choices.Create(&c); err != nil {
			return fmt.Errorf("create choice at position %d: %w", i, err)
		}
	}
	return nil
}

func (s *examService) DeleteExam(caller auth.Caller, examID uint) error {
	if _, err := s.loadManaged(caller, examID); err != nil {
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.choiceRepo.WithTx(tx).DeleteByExamID(examID); err != nil {
			return fmt.Errorf("delete choices: %w", err)
		}
		if err := s.questionRepo.WithTx(tx).DeleteByExamID(examID); err != nil {
			return fmt.Errorf("delete questions: %w", err)
		}
		if err := s.attemptService.WithTx(tx).DeleteAttemptsForExam(examID); err != nil {
			return err
		}
		rows, err := s.examRepo.WithTx(tx).Delete(examID)
		if err != nil {
			return fmt.Errorf("delete exam row: %w", err)
		}
		if rows == 0 {
			return fmt.Errorf("exam %d: %w", examID, apperror.ErrNotFound)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("examID", examID).Msg("DeleteExam: rolled back")
		if apperror.IsClientError(err) {
			return err
		}
		return fmt.Errorf("delete exam %d: %v: %w", examID, err, apperror.ErrInternal)
	}

	log.Info().Uint("examID", examID).Uint("by", caller.UserID).Msg("Exam deleted")
	return nil
}

func (s *examService) GetExam(caller auth.Caller, examID uint) (*dto.ExamResponseDTO, error) {
	if _, err := s.loadManaged(caller, examID); err != nil {
		return nil, err
	}
	exam, err := s.examRepo.FindByIDWithQuestions(examID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, fmt.Errorf("exam %d: %w", examID, apperror.ErrNotFound)
		}
		return nil, fmt.Errorf("load exam %d: %v: %w", examID, err, apperror.ErrInternal)
	}
	return toExamResponse(exam)
}

func (s *examService) ListExams(caller auth.Caller) ([]dto.ExamSummaryDTO, error) {
	course, err := s.scope.ListFilter(caller)
	if err != nil {
		return nil, err
	}
	rows, err := s.examRepo.FindAllWithQuestionCount(course)
	if err != nil {
		log.Error().Err(err).Str("course", course).Msg("ListExams: query failed")
		return nil, fmt.Errorf("list exams: %v: %w", err, apperror.ErrInternal)
	}
	return toExamSummaries(rows), nil
}

func (s *examService) AnswerKey(caller auth.Caller, examID uint) (*dto.AnswerKeyDTO, error) {
	if _, err := s.loadManaged(caller, examID); err != nil {
		return nil, err
	}
	key, err := s.answerKeys.AnswerKey(examID)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, apperror.ErrInternal)
	}
	return &dto.AnswerKeyDTO{ExamID: examID, Answers: key}, nil
}

func (s *examService) ResetAttempts(caller auth.Caller, examID uint) error {
	if _, err := s.loadManaged(caller, examID); err != nil {
		return err
	}
	if err := s.attemptService.DeleteAttemptsForExam(examID); err != nil {
		return fmt.Errorf("%v: %w", err, apperror.ErrInternal)
	}
	return nil
}

// loadManaged fetches the exam and applies the caller's scope. A missing exam is
// reported as not found before any scope decision.
func (s *examService) loadManaged(caller auth.Caller, examID uint) (*model.Exam, error) {
	exam, err := s.examRepo.FindByID(examID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, fmt.Errorf("exam %d: %w", examID, apperror.ErrNotFound)
		}
		log.Error().Err(err).Uint("examID", examID).Msg("Failed to load exam")
		return nil, fmt.Errorf("load exam %d: %v: %w", examID, err, apperror.ErrInternal)
	}
	if err := s.scope.CheckManage(caller, exam); err != nil {
		return nil, err
	}
	return exam, nil
}

// writeError classifies a failed create/reconcile transaction.
func (s *examService) writeError(err error, op string, examID uint, joinCode string) error {
	switch {
	case apperror.IsUniqueViolation(err):
		return fmt.Errorf("join code %q is already in use: %w", joinCode, apperror.ErrConflict)
	case apperror.IsClientError(err):
		return err
	}
	log.Error().Err(err).Uint("examID", examID).Msg(op + ": rolled back")
	return fmt.Errorf("%s: %v: %w", op, err, apperror.ErrInternal)
}

func validateUpsert(req *dto.ExamUpsertRequest) error {
	req.JoinCode = strings.TrimSpace(req.JoinCode)
	if !dto.ValidJoinCode(req.JoinCode) {
		return fmt.Errorf("join code %q must be 4-32 letters, digits, '-' or '_': %w", req.JoinCode, apperror.ErrValidation)
	}
	if req.DurationMinutes < 0 {
		return fmt.Errorf("duration must not be negative: %w", apperror.ErrValidation)
	}
	return nil
}
