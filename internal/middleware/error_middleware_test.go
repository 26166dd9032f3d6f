package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placementcell/online-mocks-api/internal/app/models/dto"
	"github.com/placementcell/online-mocks-api/internal/pkg/apperrors"
)

func handleError(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, err)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestHandleAPIError(t *testing.T) {
	t.Run("capacity error carries the dashboard message", func(t *testing.T) {
		status, body := handleError(t, apperrors.ErrCapacityExceeded)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Student cannot be allocated to more than 3 HRs", body.Message)
	})

	t.Run("review protection error", func(t *testing.T) {
		status, body := handleError(t, apperrors.ErrReviewSubmitted)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Cannot deallocate HR as they have already submitted a review", body.Message)
	})

	t.Run("custom message wins over the canonical text", func(t *testing.T) {
		err := apperrors.NewCustomError(apperrors.ErrStudentNotFound,
			"Student with register number URK99XX0000 not found")
		status, body := handleError(t, err)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "Student with register number URK99XX0000 not found", body.Message)
	})

	t.Run("ownership error is forbidden", func(t *testing.T) {
		status, _ := handleError(t, apperrors.ErrNotAllocatedToHR)
		assert.Equal(t, http.StatusForbidden, status)
	})

	t.Run("invalid credentials is a bad request", func(t *testing.T) {
		status, body := handleError(t, apperrors.ErrInvalidCredentials)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Invalid credentials", body.Message)
	})

	t.Run("username taken", func(t *testing.T) {
		status, body := handleError(t, apperrors.ErrUsernameTaken)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Username already taken", body.Message)
	})

	t.Run("unknown errors become a generic 500", func(t *testing.T) {
		status, body := handleError(t, errors.New("pq: connection refused"))
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "Server Error", body.Message)
	})
}
