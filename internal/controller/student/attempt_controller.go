package student

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/ExamPortal/internal/controller"
	"github.com/lshigami/ExamPortal/internal/dto"
	"github.com/lshigami/ExamPortal/internal/service"
)

type AttemptController struct {
	studentExamService service.StudentExamService
	gradingService     service.GradingService
}

func NewAttemptController(studentExamService service.StudentExamService, gradingService service.GradingService) *AttemptController {
	return &AttemptController{studentExamService: studentExamService, gradingService: gradingService}
}

// RegisterRoutes mounts the exam-taking routes on an authenticated student group.
func (c *AttemptController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/exams/join/:code", c.JoinExam)
	rg.POST("/exams/:exam_id/attempt", c.StartAttempt)
	rg.GET("/exams/:exam_id/attempt", c.GetAttempt)
	rg.POST("/attempts/:attempt_id/submit", c.SubmitAttempt)
	rg.GET("/attempts/:attempt_id/result", c.GetResult)
}

// JoinExam godoc
// @Summary (Student) Find an exam by join code
// @Tags Student - Exams
// @Produce json
// @Security BearerAuth
// @Param code path string true "Join code"
// @Success 200 {object} dto.StudentExamDTO
// @Failure 400 {object} dto.ErrorResponse "Malformed join code"
// @Failure 404 {object} dto.ErrorResponse "No exam with this code"
// @Router /student/exams/join/{code} [get]
func (c *AttemptController) JoinExam(ctx *gin.Context) {
	exam, err := c.studentExamService.FindByJoinCode(ctx.Param("code"))
	if err != nil {
		controller.RespondError(ctx, "JoinExam", err)
		return
	}
	ctx.JSON(http.StatusOK, exam)
}

// StartAttempt godoc
// @Summary (Student) Start or resume an attempt
// @Description Returns the caller's attempt, creating it on first access, with the exam minus its answers.
// @Tags Student - Attempts
// @Produce json
// @Security BearerAuth
// @Param exam_id path int true "Exam ID"
// @Success 200 {object} dto.StartAttemptResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /student/exams/{exam_id}/attempt [post]
func (c *AttemptController) StartAttempt(ctx *gin.Context) {
	caller, ok := controller.MustCaller(ctx)
	if !ok {
		return
	}
	examID, ok := controller.ParseID(ctx, "exam_id")
	if !ok {
		return
	}
	resp, err := c.studentExamService.StartAttempt(caller, examID)
	if err != nil {
		controller.RespondError(ctx, "StartAttempt", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetAttempt godoc
// @Summary (Student) Get own attempt state
// @Tags Student - Attempts
// @Produce json
// @Security BearerAuth
// @Param exam_id path int true "Exam ID"
// @Success 200 {object} dto.AttemptDTO
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /student/exams/{exam_id}/attempt [get]
func (c *AttemptController) GetAttempt(ctx *gin.Context) {
	caller, ok := controller.MustCaller(ctx)
	if !ok {
		return
	}
	examID, ok := controller.ParseID(ctx, "exam_id")
	if !ok {
		return
	}
	attempt, err := c.studentExamService.GetMyAttempt(caller, examID)
	if err != nil {
		controller.RespondError(ctx, "GetAttempt", err)
		return
	}
	ctx.JSON(http.StatusOK, attempt)
}

// SubmitAttempt godoc
// @Summary (Student) Submit and grade an attempt
// @Description Grades the answers (question id → text) and completes the attempt. forced_empty grades it as unanswered.
// @Tags Student - Attempts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param attempt_id path int true "Attempt ID"
// @Param submission body dto.SubmitAttemptRequest true "Answers"
// @Success 200 {object} dto.GradeResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 403 {object} dto.ErrorResponse "Attempt belongs to another student"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 409 {object} dto.ErrorResponse "Attempt already completed"
// @Router /student/attempts/{attempt_id}/submit [post]
func (c *AttemptController) SubmitAttempt(ctx *gin.Context) {
	caller, ok := controller.MustCaller(ctx)
	if !ok {
		return
	}
	attemptID, ok := controller.ParseID(ctx, "attempt_id")
	if !ok {
		return
	}
	var req dto.SubmitAttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "SubmitAttempt", err)
		return
	}
	grade, err := c.gradingService.SubmitOwn(caller, attemptID, req)
	if err != nil {
		controller.RespondError(ctx, "SubmitAttempt", err)
		return
	}
	ctx.JSON(http.StatusOK, grade)
}

// GetResult godoc
// @Summary (Student) Get own graded result
// @Tags Student - Attempts
// @Produce json
// @Security BearerAuth
// @Param attempt_id path int true "Attempt ID"
// @Success 200 {object} dto.AttemptResultDTO
// @Failure 403 {object} dto.ErrorResponse "Attempt belongs to another student"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found or not graded"
// @Router /student/attempts/{attempt_id}/result [get]
func (c *AttemptController) GetResult(ctx *gin.Context) {
	caller, ok := controller.MustCaller(ctx)
	if !ok {
		return
	}
	attemptID, ok := controller.ParseID(ctx, "attempt_id")
	if !ok {
		return
	}
	result, err := c.gradingService.GetOwnResult(caller, attemptID)
	if err != nil {
		controller.RespondError(ctx, "GetResult", err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
