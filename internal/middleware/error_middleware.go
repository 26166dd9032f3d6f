package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/placementcell/online-mocks-api/internal/app/models/dto"
	"github.com/placementcell/online-mocks-api/internal/pkg/apperrors"
	"github.com/placementcell/online-mocks-api/internal/pkg/logger"
)

// HandleAPIError maps service errors onto HTTP responses. The message of a
// wrapping CustomError wins over the canonical text so that handlers can
// surface context such as the register number that was not found.
func HandleAPIError(c *gin.Context, err error) {
	message := ""
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) {
		message = customErr.Message
	}

	respond := func(status int, code dto.ErrorCode, fallback string) {
		if message == "" {
			message = fallback
		}
		c.JSON(status, dto.NewErrorResponse(code, message))
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(http.StatusBadRequest, dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token has expired")
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrTokenMissing):
		respond(http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Token is not valid")
	case errors.Is(err, apperrors.ErrPermissionDenied), errors.Is(err, apperrors.ErrNotAllocatedToHR):
		respond(http.StatusForbidden, dto.ErrorCodeForbidden, "You do not have permission to perform this action")
	case errors.Is(err, apperrors.ErrVolunteerNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Volunteer not found")
	case errors.Is(err, apperrors.ErrHRNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeResourceNotFound, "HR not found")
	case errors.Is(err, apperrors.ErrStudentNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Student not found")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found")
	case errors.Is(err, apperrors.ErrUsernameTaken):
		respond(http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists, "Username already taken")
	case errors.Is(err, apperrors.ErrCapacityExceeded):
		respond(http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists, "Student cannot be allocated to more than 3 HRs")
	case errors.Is(err, apperrors.ErrReviewSubmitted):
		respond(http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists, "Cannot deallocate HR as they have already submitted a review")
	case errors.Is(err, apperrors.ErrAlreadyAllocated), errors.Is(err, apperrors.ErrConflict):
		respond(http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists, "Already allocated")
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		respond(http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed")
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError,
			dto.NewErrorResponse(dto.ErrorCodeInternalServer, "Server Error"))
	}
}
