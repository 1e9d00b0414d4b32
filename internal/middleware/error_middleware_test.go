package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/university/advisorfinder/internal/pkg/apperrors"
)

func runHandler(t *testing.T, err error) (int, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(c, err)

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body.Error
}

func TestHandleAPIError_StatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", apperrors.ErrValidationFailed, 400},
		{"permission denied", apperrors.ErrPermissionDenied, 403},
		{"student not found", apperrors.ErrStudentNotFound, 404},
		{"lecturer not found", apperrors.ErrLecturerNotFound, 404},
		{"category not found", apperrors.ErrCategoryNotFound, 404},
		{"interest not found", apperrors.ErrInterestNotFound, 404},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, 409},
		{"duplicate student id", apperrors.ErrStudentIDAlreadyExists, 409},
		{"duplicate lecturer", apperrors.ErrLecturerExists, 409},
		{"duplicate category", apperrors.ErrCategoryExists, 409},
		{"duplicate interest", apperrors.ErrInterestExists, 409},
		{"unknown", fmt.Errorf("database exploded"), 500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, msg := runHandler(t, tc.err)
			assert.Equal(t, tc.status, status)
			assert.NotEmpty(t, msg)
		})
	}
}

func TestHandleAPIError_WrappedErrorsKeepTheirStatus(t *testing.T) {
	err := fmt.Errorf("checking registration: %w", apperrors.ErrStudentNotFound)
	status, _ := runHandler(t, err)
	assert.Equal(t, 404, status)
}

func TestHandleAPIError_ValidationDetailExposed(t *testing.T) {
	err := fmt.Errorf("%w: Invalid email format", apperrors.ErrValidationFailed)
	status, msg := runHandler(t, err)
	assert.Equal(t, 400, status)
	assert.Equal(t, "Invalid email format", msg)
}

func TestHandleAPIError_InternalDetailHidden(t *testing.T) {
	status, msg := runHandler(t, fmt.Errorf("pq: connection refused"))
	assert.Equal(t, 500, status)
	assert.Equal(t, "Internal server error", msg)
}
