package faculty

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/ExamPortal/internal/controller"
	"github.com/lshigami/ExamPortal/internal/dto"
	"github.com/lshigami/ExamPortal/internal/service"
)

type ExamController struct {
	examService   service.ExamService
	reviewService service.ReviewService
}

func NewExamController(examService service.ExamService, reviewService service.ReviewService) *ExamController {
	return &ExamController{examService: examService, reviewService: reviewService}
}

// RegisterRoutes mounts the authoring routes on an authenticated faculty/admin group.
func (c *ExamController) RegisterRoutes(rg *gin.RouterGroup) {
	exams := rg.Group("/exams")
	exams.GET("", c.ListExams)
	exams.POST("", c.CreateExam)
	exams.GET("/:exam_id", c.GetExam)
	exams.PUT("/:exam_id", c.UpdateExam)
	exams.DELETE("/:exam_id", c.DeleteExam)
	exams.GET("/:exam_id/answer-key", c.GetAnswerKey)
	exams.DELETE("/:exam_id/attempts", c.ResetAttempts)

	rg.GET("/attempts/:attempt_id/review", c.ReviewAttempt)
}

// ListExams godoc
// @Summary List exams
// @Description Admins see every exam; faculty only exams of their course.
// @Tags Faculty - Exams
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ExamSummaryDTO
// @Failure 403 {object} dto.ErrorResponse "Caller may not list exams"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams [get]
func (c *ExamController) ListExams(ctx *gin.Context) {
	caller, ok := controller.MustCaller(ctx)
	if !ok {
		return
	}
	exams, err := c.examService.ListExams(caller)
	if err != nil {
		controller.RespondError(ctx, "ListExams", err)
		return
	}
	ctx.JSON(http.StatusOK, exams)
}

// CreateExam godoc
// @Summary Create an exam
// @Description Creates an exam with its full question tree. Faculty may only create exams for their own course.
// @Tags Faculty - Exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exam body dto.ExamUpsertRequest true "Exam tree"
// @Success 201 {object} dto.ExamResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 403 {object} dto.ErrorResponse "Course outside caller scope"
// @Failure 409 {object} dto.ErrorResponse "Join code already in use"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams [post]
func (c *ExamController) CreateExam(ctx *gin.Context) {
	caller, ok := controller.MustCaller(ctx)
	if !ok {
		return
	}
	var req dto.ExamUpsertRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "CreateExam", err)
		return
	}
	exam, err := c.examService.CreateExam(caller, req)
	if err != nil {
		controller.RespondError(ctx, "CreateExam", err)
		return
	}
	ctx.JSON(http.StatusCreated, exam)
}

// GetExam godoc
// @Summary Get an exam with answers
// @Tags Faculty - Exams
// @Produce json
// @Security BearerAuth
// @Param exam_id path int true "Exam ID"
// @Success 200 {object} dto.ExamResponseDTO
// @Failure 403 {object} dto.ErrorResponse "Exam outside caller scope"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /exams/{exam_id} [get]
func (c *ExamController) GetExam(ctx *gin.Context) {
	caller, ok := controller.MustCaller(ctx)
	if !ok {
		return
	}
	examID, ok := controller.ParseID(ctx, "exam_id")
	if !ok {
		return
	}
	exam, err := c.examService.GetExam(caller, examID)
	if err != nil {
		controller.RespondError(ctx, "GetExam", err)
		return
	}
	ctx.JSON(http.StatusOK, exam)
}

// UpdateExam godoc
// @Summary Replace an exam's structure
// @Description Questions and choices with a known id are updated in place, others are created, and omitted ones are deleted.
// @Tags Faculty - Exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exam_id path int true "Exam ID"
// @Param exam body dto.ExamUpsertRequest true "Exam tree"
// @Success 200 {object} dto.ExamResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 403 {object} dto.ErrorResponse "Exam outside caller scope"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 409 {object} dto.ErrorResponse "Join code already in use"
// @Router /exams/{exam_id} [put]
func (c *ExamController) UpdateExam(ctx *gin.Context) {
	caller, ok := controller.MustCaller(ctx)
	if !ok {
		return
	}
	examID, ok := controller.ParseID(ctx, "exam_id")
	if !ok {
		return
	}
	var req dto.ExamUpsertRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "UpdateExam", err)
		return
	}
	exam, err := c.examService.ReconcileExam(caller, examID, req)
	if err != nil {
		controller.RespondError(ctx, "UpdateExam", err)
		return
	}
	ctx.JSON(http.StatusOK, exam)
}

// DeleteExam godoc
// @Summary Delete an exam with its questions and attempts
// @Tags Faculty - Exams
// @Produce json
// @Security BearerAuth
// @Param exam_id path int true "Exam ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse "Exam outside caller scope"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /exams/{exam_id} [delete]
func (c *ExamController) DeleteExam(ctx *gin.Context) {
	caller, ok := controller.MustCaller(ctx)
	if !ok {
		return
	}
	examID, ok := controller.ParseID(ctx, "exam_id")
	if !ok {
		return
	}
	if err := c.examService.DeleteExam(caller, examID); err != nil {
		controller.RespondError(ctx, "DeleteExam", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "exam deleted"})
}

// GetAnswerKey godoc
// @Summary Get an exam's answer key
// @Tags Faculty - Exams
// @Produce json
// @Security BearerAuth
// @Param exam_id path int true "Exam ID"
// @Success 200 {object} dto.AnswerKeyDTO
// @Failure 403 {object} dto.ErrorResponse "Exam outside caller scope"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /exams/{exam_id}/answer-key [get]
func (c *ExamController) GetAnswerKey(ctx *gin.Context) {
	caller, ok := controller.MustCaller(ctx)
	if !ok {
		return
	}
	examID, ok := controller.ParseID(ctx, "exam_id")
	if !ok {
		return
	}
	key, err := c.examService.AnswerKey(caller, examID)
	if err != nil {
		controller.RespondError(ctx, "GetAnswerKey", err)
		return
	}
	ctx.JSON(http.StatusOK, key)
}

// ResetAttempts godoc
// @Summary Delete every attempt of an exam
// @Tags Faculty - Exams
// @Produce json
// @Security BearerAuth
// @Param exam_id path int true "Exam ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse "Exam outside caller scope"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /exams/{exam_id}/attempts [delete]
func (c *ExamController) ResetAttempts(ctx *gin.Context) {
	caller, ok := controller.MustCaller(ctx)
	if !ok {
		return
	}
	examID, ok := controller.ParseID(ctx, "exam_id")
	if !ok {
		return
	}
	if err := c.examService.ResetAttempts(caller, examID); err != nil {
		controller.RespondError(ctx, "ResetAttempts", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "attempts deleted"})
}

// ReviewAttempt godoc
// @Summary Review a graded attempt
// @Description Shows each answer next to the answer key, with optional AI feedback on wrong answers.
// @Tags Faculty - Review
// @Produce json
// @Security BearerAuth
// @Param attempt_id path int true "Attempt ID"
// @Success 200 {object} dto.AttemptReviewDTO
// @Failure 403 {object} dto.ErrorResponse "Exam outside caller scope"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found or not graded"
// @Router /attempts/{attempt_id}/review [get]
func (c *ExamController) ReviewAttempt(ctx *gin.Context) {
	caller, ok := controller.MustCaller(ctx)
	if !ok {
		return
	}
	attemptID, ok := controller.ParseID(ctx, "attempt_id")
	if !ok {
		return
	}
	review, err := c.reviewService.ReviewAttempt(ctx.Request.Context(), caller, attemptID)
	if err != nil {
		controller.RespondError(ctx, "ReviewAttempt", err)
		return
	}
	ctx.JSON(http.StatusOK, review)
}
