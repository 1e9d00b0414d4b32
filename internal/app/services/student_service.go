package services

import (
	"context"
	"fmt"

	"github.com/university/advisorfinder/internal/app/models"
	"github.com/university/advisorfinder/internal/app/models/dto"
	"github.com/university/advisorfinder/internal/pkg/apperrors"
	"github.com/university/advisorfinder/internal/pkg/auth"
	"github.com/university/advisorfinder/internal/pkg/validation"
)

// StudentStore is the student persistence interface consumed by services
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	StudentIDExists(ctx context.Context, studentID string) (bool, error)
}

// StudentService defines the interface for student-related operations
type StudentService interface {
	RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (*models.Student, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByEmail(ctx context.Context, email string) (*models.Student, error)
	FindByID(ctx context.Context, id int64) (*models.Student, error)
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo StudentStore
	hasher      auth.PasswordHasher
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo StudentStore, hasher auth.PasswordHasher) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		hasher:      hasher,
	}
}

// RegisterStudent validates and persists a new student registration.
// The password is hashed before storage; the plaintext never reaches the
// repository.
func (s *studentServiceImpl) RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (*models.Student, error) {
	if err := validateEmailFormat(req.Email); err != nil {
		return nil, err
	}

	exists, err := s.studentRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	if req.StudentID != "" {
		idExists, err := s.studentRepo.StudentIDExists(ctx, req.StudentID)
		if err != nil {
			return nil, fmt.Errorf("error checking student identifier: %w", err)
		}
		if idExists {
			return nil, apperrors.ErrStudentIDAlreadyExists
		}
	}

	hashedPassword, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	student := &models.Student{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		Program:     req.Program,
		YearOfStudy: req.YearOfStudy,
		Interests:   req.Interests,
		Password:    hashedPassword,
	}
	if req.StudentID != "" {
		studentID := req.StudentID
		student.StudentID = &studentID
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// validateEmailFormat applies the minimal registration email rule: present
// and containing an "@" that is neither the first nor the last character.
func validateEmailFormat(email string) error {
	if validation.IsBlank(email) {
		return fmt.Errorf("%w: Email is required", apperrors.ErrValidationFailed)
	}
	if !validation.IsMinimalValidEmail(email) {
		return fmt.Errorf("%w: Invalid email format", apperrors.ErrValidationFailed)
	}
	return nil
}

// ExistsByEmail checks whether a student with the given email is registered
func (s *studentServiceImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return s.studentRepo.EmailExists(ctx, email)
}

// FindByEmail retrieves a student by email
func (s *studentServiceImpl) FindByEmail(ctx context.Context, email string) (*models.Student, error) {
	return s.studentRepo.GetByEmail(ctx, email)
}

// FindByID retrieves a student by ID
func (s *studentServiceImpl) FindByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// GetAllStudents retrieves all students
func (s *studentServiceImpl) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.GetAll(ctx)
}
