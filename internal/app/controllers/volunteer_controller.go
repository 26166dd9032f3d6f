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

// VolunteerController handles the allocator-facing operations
type VolunteerController struct {
	authService       *services.AuthService
	directoryService  *services.DirectoryService
	allocationService *services.AllocationService
	studentService    *services.StudentService
	logger            zerolog.Logger
}

// NewVolunteerController creates a new VolunteerController
func NewVolunteerController(
	authService *services.AuthService,
	directoryService *services.DirectoryService,
	allocationService *services.AllocationService,
	studentService *services.StudentService,
	logger zerolog.Logger,
) *VolunteerController {
	return &VolunteerController{
		authService:       authService,
		directoryService:  directoryService,
		allocationService: allocationService,
		studentService:    studentService,
		logger:            logger,
	}
}

// Login authenticates a volunteer account
// @Summary Volunteer login
// @Tags volunteer
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid credentials"
// @Router /volunteer/login [post]
func (c *VolunteerController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	response, err := c.authService.LoginVolunteer(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Str("username", req.Username).Msg("Volunteer login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetProfile returns the caller's own record with assigned HRs populated
// @Summary Volunteer profile
// @Tags volunteer
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Volunteer
// @Router /volunteer/profile [get]
func (c *VolunteerController) GetProfile(ctx *gin.Context) {
	identity, ok := middleware.GetIdentity(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenMissing)
		return
	}

	volunteer, err := c.directoryService.GetVolunteerProfile(ctx.Request.Context(), identity.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, volunteer)
}

// GetAllocatedHRs lists the HRs assigned to the caller
// @Summary Allocated HRs
// @Tags volunteer
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.HRSummary
// @Router /volunteer/allocated-hrs [get]
func (c *VolunteerController) GetAllocatedHRs(ctx *gin.Context) {
	identity, ok := middleware.GetIdentity(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenMissing)
		return
	}

	hrs, err := c.directoryService.GetAssignedHRs(ctx.Request.Context(), identity.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, hrs)
}

// AddStudent allocates a student to one of the caller's HRs
// @Summary Allocate a student to an HR
// @Tags volunteer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AllocateStudentRequest true "Allocation"
// @Success 200 {object} models.Student
// @Failure 400 {object} dto.ErrorResponse "Duplicate allocation or capacity exceeded"
// @Failure 403 {object} dto.ErrorResponse "HR not allocated to caller"
// @Failure 404 {object} dto.ErrorResponse "Student or HR not found"
// @Router /volunteer/add-student [post]
func (c *VolunteerController) AddStudent(ctx *gin.Context) {
	identity, ok := middleware.GetIdentity(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenMissing)
		return
	}

	var req dto.AllocateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	student, err := c.allocationService.AllocateStudentToHR(ctx.Request.Context(), req.RegisterNumber, req.HRID, &identity.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// GetStudentsByHR lists the students allocated to one of the caller's HRs
// @Summary Students allocated to an HR
// @Tags volunteer
// @Produce json
// @Security BearerAuth
// @Param hrId path int true "HR ID"
// @Success 200 {array} models.Student
// @Failure 403 {object} dto.ErrorResponse "HR not allocated to caller"
// @Router /volunteer/students/{hrId} [get]
func (c *VolunteerController) GetStudentsByHR(ctx *gin.Context) {
	identity, ok := middleware.GetIdentity(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenMissing)
		return
	}

	hrID, ok := parseIDParam(ctx, "hrId")
	if !ok {
		return
	}

	students, err := c.allocationService.GetStudentsForVolunteerHR(ctx.Request.Context(), identity.ID, hrID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// DeallocateStudent removes a Student->HR edge without the review guard.
// Unlike AddStudent and GetStudentsByHR, this path deliberately skips the
// ownership check: any volunteer at the event desk can undo a mistaken
// allocation, whichever volunteer made it.
// @Summary Deallocate a student from an HR
// @Tags volunteer
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID"
// @Param hrId path int true "HR ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /volunteer/deallocate-student/{studentId}/{hrId} [post]
func (c *VolunteerController) DeallocateStudent(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}
	hrID, ok := parseIDParam(ctx, "hrId")
	if !ok {
		return
	}

	err := c.allocationService.DeallocateStudentFromHR(ctx.Request.Context(), studentID, hrID, false)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Student deallocated successfully"})
}
