package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/university/advisorfinder/internal/app/models"
	"github.com/university/advisorfinder/internal/app/models/dto"
	"github.com/university/advisorfinder/internal/pkg/apperrors"
)

// stubStudentService implements services.StudentService with canned replies.
type stubStudentService struct {
	registerErr error
	listErr     error
	student     *models.Student
	exists      bool
}

func (s *stubStudentService) RegisterStudent(_ context.Context, _ *dto.RegisterStudentRequest) (*models.Student, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return s.student, nil
}

func (s *stubStudentService) ExistsByEmail(_ context.Context, _ string) (bool, error) {
	return s.exists, nil
}

func (s *stubStudentService) FindByEmail(_ context.Context, _ string) (*models.Student, error) {
	if s.student == nil {
		return nil, apperrors.ErrStudentNotFound
	}
	return s.student, nil
}

func (s *stubStudentService) FindByID(_ context.Context, _ int64) (*models.Student, error) {
	if s.student == nil {
		return nil, apperrors.ErrStudentNotFound
	}
	return s.student, nil
}

func (s *stubStudentService) GetAllStudents(_ context.Context) ([]*models.Student, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	if s.student == nil {
		return []*models.Student{}, nil
	}
	return []*models.Student{s.student}, nil
}

func newStudentRouter(stub *stubStudentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := NewStudentController(stub)
	router.POST("/api/students/register", ctrl.RegisterStudent)
	router.GET("/api/students/check-email", ctrl.CheckEmail)
	router.GET("/api/students/profile", ctrl.GetProfile)
	router.GET("/api/students/all", ctrl.GetAllStudents)
	return router
}

func TestRegisterStudentEndpoint_Success(t *testing.T) {
	stub := &stubStudentService{student: &models.Student{ID: 7, FirstName: "Jane", LastName: "Doe"}}
	router := newStudentRouter(stub)

	body := `{"firstName":"Jane","lastName":"Doe","email":"jane@student.edu","password":"secret-password"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/students/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.RegisterStudentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Registration successful", resp.Message)
	assert.Equal(t, int64(7), resp.StudentID)
}

func TestRegisterStudentEndpoint_MissingRequiredFields(t *testing.T) {
	router := newStudentRouter(&stubStudentService{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/students/register", strings.NewReader(`{"email":"jane@student.edu"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterStudentEndpoint_Conflict(t *testing.T) {
	stub := &stubStudentService{registerErr: apperrors.ErrEmailAlreadyExists}
	router := newStudentRouter(stub)

	body := `{"firstName":"Jane","lastName":"Doe","email":"jane@student.edu","password":"secret-password"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/students/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
}

func TestRegisterStudentEndpoint_ValidationError(t *testing.T) {
	stub := &stubStudentService{
		registerErr: fmt.Errorf("%w: Invalid email format", apperrors.ErrValidationFailed),
	}
	router := newStudentRouter(stub)

	body := `{"firstName":"Jane","lastName":"Doe","email":"bad-email","password":"secret-password"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/students/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid email format", resp.Error)
}

func TestCheckEmailEndpoint(t *testing.T) {
	router := newStudentRouter(&stubStudentService{exists: true})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/students/check-email?email=jane@student.edu", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "true", strings.TrimSpace(rec.Body.String()))
}

func TestCheckEmailEndpoint_MissingParam(t *testing.T) {
	router := newStudentRouter(&stubStudentService{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/students/check-email", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProfileEndpoint_NotFound(t *testing.T) {
	router := newStudentRouter(&stubStudentService{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/students/profile?email=unknown@student.edu", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetAllStudentsEndpoint_StoreError(t *testing.T) {
	router := newStudentRouter(&stubStudentService{listErr: fmt.Errorf("connection reset")})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/students/all", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to retrieve students", resp.Error)
}

func TestProfileEndpoint_PasswordNeverSerialized(t *testing.T) {
	stub := &stubStudentService{student: &models.Student{
		ID:        1,
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@student.edu",
		Password:  "hashed-secret",
	}}
	router := newStudentRouter(stub)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/students/profile?email=jane@student.edu", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "hashed-secret")
	assert.NotContains(t, rec.Body.String(), "password")
}
