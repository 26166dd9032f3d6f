// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/placementcell/online-mocks-api/internal/app/models/dto"
	"github.com/placementcell/online-mocks-api/internal/app/services"
	"github.com/placementcell/online-mocks-api/internal/middleware"
	"github.com/placementcell/online-mocks-api/internal/pkg/helpers"
	"github.com/rs/zerolog"
)

// AdminController handles the admin dashboard operations
type AdminController struct {
	authService       *services.AuthService
	directoryService  *services.DirectoryService
	allocationService *services.AllocationService
	studentService    *services.StudentService
	feedbackService   *services.FeedbackService
	logger            zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(
	authService *services.AuthService,
	directoryService *services.DirectoryService,
	allocationService *services.AllocationService,
	studentService *services.StudentService,
	feedbackService *services.FeedbackService,
	logger zerolog.Logger,
) *AdminController {
	return &AdminController{
		authService:       authService,
		directoryService:  directoryService,
		allocationService: allocationService,
		studentService:    studentService,
		feedbackService:   feedbackService,
		logger:            logger,
	}
}

// Login authenticates the admin account
// @Summary Admin login
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid credentials"
// @Router /admin/login [post]
func (c *AdminController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	response, err := c.authService.LoginAdmin(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Str("username", req.Username).Msg("Admin login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetVolunteers lists all volunteers with their assigned HRs
// @Summary List volunteers
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Volunteer
// @Router /admin/volunteers [get]
func (c *AdminController) GetVolunteers(ctx *gin.Context) {
	volunteers, err := c.directoryService.ListVolunteers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, volunteers)
}

// GetHRs lists all HRs with allocated volunteers populated
// @Summary List HRs
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.HR
// @Router /admin/hrs [get]
func (c *AdminController) GetHRs(ctx *gin.Context) {
	hrs, err := c.directoryService.ListHRs(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, hrs)
}

// GetStudents lists one page of students with search and sort
// @Summary List students
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "1-based page number"
// @Param search query string false "Substring match on name, register number or HR name"
// @Param sortField query string false "name, registerNumber, department, aptitudeScore or gdScore"
// @Param sortOrder query string false "asc or desc"
// @Success 200 {object} dto.StudentPageResponse
// @Router /admin/students [get]
func (c *AdminController) GetStudents(ctx *gin.Context) {
	page := helpers.ParsePageParam(ctx)
	search := ctx.Query("search")
	sortField := ctx.DefaultQuery("sortField", "name")
	sortOrder := ctx.DefaultQuery("sortOrder", "asc")

	response, err := c.studentService.ListStudents(ctx.Request.Context(), page, search, sortField, sortOrder)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// AddVolunteer creates a volunteer account
// @Summary Add a volunteer
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddVolunteerRequest true "Volunteer account"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Username already taken"
// @Router /admin/add-volunteer [post]
func (c *AdminController) AddVolunteer(ctx *gin.Context) {
	var req dto.AddVolunteerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if _, err := c.directoryService.AddVolunteer(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Volunteer added successfully"})
}

// AddHR creates an HR account
// @Summary Add an HR
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddHRRequest true "HR account"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Username already taken"
// @Router /admin/add-hr [post]
func (c *AdminController) AddHR(ctx *gin.Context) {
	var req dto.AddHRRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if _, err := c.directoryService.AddHR(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "HR added successfully"})
}

// DeleteVolunteer hard-deletes a volunteer account
// @Summary Delete a volunteer
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Volunteer ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Volunteer not found"
// @Router /admin/delete-volunteer/{id} [delete]
func (c *AdminController) DeleteVolunteer(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.directoryService.DeleteVolunteer(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Volunteer deleted successfully"})
}

// DeleteHR hard-deletes an HR account
// @Summary Delete an HR
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "HR ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "HR not found"
// @Router /admin/delete-hr/{id} [delete]
func (c *AdminController) DeleteHR(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.directoryService.DeleteHR(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "HR deleted successfully"})
}

// AllocateVolunteer records a Volunteer->HR allocation edge
// @Summary Allocate a volunteer to an HR
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AllocateVolunteerRequest true "Edge to record"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Volunteer already allocated to this HR"
// @Failure 404 {object} dto.ErrorResponse "HR not found"
// @Router /admin/allocate [post]
func (c *AdminController) AllocateVolunteer(ctx *gin.Context) {
	var req dto.AllocateVolunteerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if err := c.allocationService.AllocateVolunteerToHR(ctx.Request.Context(), req.VolunteerID, req.HRID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Volunteer allocated successfully"})
}

// DeallocateVolunteer removes a Volunteer->HR allocation edge
// @Summary Deallocate a volunteer from an HR
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.DeallocateVolunteerRequest true "Edge to remove"
// @Success 200 {object} dto.DeallocateVolunteerResponse
// @Failure 404 {object} dto.ErrorResponse "HR not found"
// @Router /admin/deallocate [post]
func (c *AdminController) DeallocateVolunteer(ctx *gin.Context) {
	var req dto.DeallocateVolunteerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	hr, err := c.allocationService.DeallocateVolunteerFromHR(ctx.Request.Context(), req.HRID, req.VolunteerID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeallocateVolunteerResponse{
		Message:   "Volunteer deallocated successfully",
		UpdatedHR: hr,
	})
}

// AllocateStudent allocates a student to an HR by register number
// @Summary Allocate a student to an HR
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AllocateStudentRequest true "Allocation"
// @Success 200 {object} models.Student
// @Failure 400 {object} dto.ErrorResponse "Duplicate allocation or capacity exceeded"
// @Failure 404 {object} dto.ErrorResponse "Student or HR not found"
// @Router /admin/allocate-student [post]
func (c *AdminController) AllocateStudent(ctx *gin.Context) {
	var req dto.AllocateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	student, err := c.allocationService.AllocateStudentToHR(ctx.Request.Context(), req.RegisterNumber, req.HRID, nil)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// DeallocateHRFromStudent removes a Student->HR edge, refusing pairs the
// HR has already reviewed
// @Summary Deallocate an HR from a student
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.DeallocateHRFromStudentRequest true "Edge to remove"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Review already submitted"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /admin/deallocate-hr-from-student [post]
func (c *AdminController) DeallocateHRFromStudent(ctx *gin.Context) {
	var req dto.DeallocateHRFromStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	err := c.allocationService.DeallocateStudentFromHR(ctx.Request.Context(), req.StudentID, req.HRID, true)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "HR deallocated successfully from student"})
}

// UpdateStudent edits the student's resume link
// @Summary Update a student's resume link
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param request body dto.UpdateStudentRequest true "New resume link"
// @Success 200 {object} models.Student
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /admin/update-student/{id} [put]
func (c *AdminController) UpdateStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	student, err := c.studentService.UpdateResumeLink(ctx.Request.Context(), id, req.ResumeLink)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// GetFeedback lists all event feedback, newest first
// @Summary List event feedback
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Feedback
// @Router /admin/feedback [get]
func (c *AdminController) GetFeedback(ctx *gin.Context) {
	entries, err := c.feedbackService.ListFeedback(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, entries)
}

// parseIDParam parses a numeric path parameter, writing the error
// response itself when the value is not a valid id
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter"))
		return 0, false
	}
	return id, true
}
