package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/placementcell/online-mocks-api/internal/app/models/dto"
	"github.com/placementcell/online-mocks-api/internal/app/services"
	"github.com/placementcell/online-mocks-api/internal/middleware"
	"github.com/placementcell/online-mocks-api/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// HRController handles the interviewer-facing operations
type HRController struct {
	authService     *services.AuthService
	studentService  *services.StudentService
	reportService   *services.ReportService
	feedbackService *services.FeedbackService
	logger          zerolog.Logger
}

// NewHRController creates a new HRController
func NewHRController(
	authService *services.AuthService,
	studentService *services.StudentService,
	reportService *services.ReportService,
	feedbackService *services.FeedbackService,
	logger zerolog.Logger,
) *HRController {
	return &HRController{
		authService:     authService,
		studentService:  studentService,
		reportService:   reportService,
		feedbackService: feedbackService,
		logger:          logger,
	}
}

// Login authenticates an HR account
// @Summary HR login
// @Tags hr
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid credentials"
// @Router /hr/login [post]
func (c *HRController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	response, err := c.authService.LoginHR(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Str("username", req.Username).Msg("HR login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetStudents lists the students allocated to the calling HR, each with
// the caller's own report attached when one exists
// @Summary List allocated students
// @Tags hr
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Student
// @Router /hr/getStudents [get]
func (c *HRController) GetStudents(ctx *gin.Context) {
	identity, ok := middleware.GetIdentity(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenMissing)
		return
	}

	students, err := c.studentService.GetStudentsByHR(ctx.Request.Context(), identity.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// SubmitPersonalReport creates or updates the caller's report for a student
// @Summary Submit a personal report
// @Tags hr
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.PersonalReportRequest true "Report fields"
// @Success 200 {object} models.PersonalReport
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /hr/personalReport [post]
func (c *HRController) SubmitPersonalReport(ctx *gin.Context) {
	identity, ok := middleware.GetIdentity(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenMissing)
		return
	}

	var req dto.PersonalReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	caller := services.HRIdentity{
		ID:      identity.ID,
		Name:    identity.Name,
		Company: identity.Company,
	}
	report, err := c.reportService.SubmitPersonalReport(ctx.Request.Context(), &req, caller)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, report)
}

// SubmitFeedback records the caller's event feedback
// @Summary Submit event feedback
// @Tags hr
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.FeedbackRequest true "Feedback fields"
// @Success 200 {object} dto.MessageResponse
// @Router /hr/feedback [post]
func (c *HRController) SubmitFeedback(ctx *gin.Context) {
	var req dto.FeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if _, err := c.feedbackService.SubmitFeedback(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Feedback submitted successfully"})
}
