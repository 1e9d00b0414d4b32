package services

import (
	"context"
	"fmt"

	"github.com/university/advisorfinder/internal/app/models"
	"github.com/university/advisorfinder/internal/app/models/dto"
	"github.com/university/advisorfinder/internal/pkg/apperrors"
	"github.com/university/advisorfinder/internal/pkg/validation"
)

// LecturerStore is the lecturer persistence interface consumed by services
type LecturerStore interface {
	Create(ctx context.Context, lecturer *models.Lecturer) error
	Update(ctx context.Context, lecturer *models.Lecturer) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*models.Lecturer, error)
	GetByEmail(ctx context.Context, email string) (*models.Lecturer, error)
	GetAll(ctx context.Context) ([]*models.Lecturer, error)
	SearchByKeyword(ctx context.Context, keyword string) ([]*models.Lecturer, error)
	GetByInterestIDs(ctx context.Context, interestIDs []int64) ([]*models.Lecturer, error)
	GetByCategoryID(ctx context.Context, categoryID int64) ([]*models.Lecturer, error)
	GetByDepartment(ctx context.Context, department string) ([]*models.Lecturer, error)
	GetByInterestNames(ctx context.Context, names []string) ([]*models.Lecturer, error)
}

// StudentChecker exposes the student-existence check lecturer operations
// gate on. Satisfied by StudentStore.
type StudentChecker interface {
	EmailExists(ctx context.Context, email string) (bool, error)
}

// LecturerService defines the interface for lecturer-related operations
type LecturerService interface {
	SaveLecturer(ctx context.Context, req *dto.SaveLecturerRequest) (*models.Lecturer, error)
	DeleteLecturer(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*models.Lecturer, error)
	FindByEmail(ctx context.Context, email string) (*models.Lecturer, error)
	GetAllLecturersPublic(ctx context.Context) ([]*dto.LecturerPublicResponse, error)
	SearchLecturersByKeyword(ctx context.Context, keyword string) ([]*dto.LecturerPublicResponse, error)
	FindLecturersByInterestIDs(ctx context.Context, interestIDs []int64) ([]*dto.LecturerPublicResponse, error)
	FindLecturersByCategory(ctx context.Context, categoryID int64) ([]*dto.LecturerPublicResponse, error)
	FindLecturersByDepartment(ctx context.Context, department string) ([]*dto.LecturerPublicResponse, error)
	SearchLecturersByInterests(ctx context.Context, interestNames []string) ([]*dto.LecturerPublicResponse, error)
	GetLecturerContact(ctx context.Context, lecturerID int64, studentEmail string) (*dto.LecturerContactResponse, error)
}

// lecturerServiceImpl implements the LecturerService interface
type lecturerServiceImpl struct {
	lecturerRepo    LecturerStore
	studentChecker  StudentChecker
	researchService ResearchService
}

// NewLecturerService creates a new lecturer service instance
func NewLecturerService(lecturerRepo LecturerStore, studentChecker StudentChecker, researchService ResearchService) LecturerService {
	return &lecturerServiceImpl{
		lecturerRepo:    lecturerRepo,
		studentChecker:  studentChecker,
		researchService: researchService,
	}
}

// SaveLecturer creates or updates a lecturer profile. Interest names that do
// not exist in the catalog yet are created on the fly.
func (s *lecturerServiceImpl) SaveLecturer(ctx context.Context, req *dto.SaveLecturerRequest) (*models.Lecturer, error) {
	interests := make([]*models.ResearchInterest, 0, len(req.ResearchInterests))
	for _, name := range req.ResearchInterests {
		interest, err := s.researchService.FindOrCreateInterest(ctx, name, "Research interest: "+name)
		if err != nil {
			return nil, err
		}
		interests = append(interests, interest)
	}

	lecturer := &models.Lecturer{
		ID:              req.ID,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		OfficeLocation:  req.OfficeLocation,
		OfficeHours:     req.OfficeHours,
		Title:           req.Title,
		Department:      req.Department,
		Bio:             req.Bio,
		ProfileImageURL: req.ProfileImageURL,
		Interests:       interests,
	}

	if lecturer.ID == 0 {
		if err := s.lecturerRepo.Create(ctx, lecturer); err != nil {
			return nil, err
		}
	} else {
		if err := s.lecturerRepo.Update(ctx, lecturer); err != nil {
			return nil, err
		}
	}
	return lecturer, nil
}

// DeleteLecturer removes a lecturer profile and its interest links
func (s *lecturerServiceImpl) DeleteLecturer(ctx context.Context, id int64) error {
	return s.lecturerRepo.Delete(ctx, id)
}

// FindByID retrieves a lecturer by ID
func (s *lecturerServiceImpl) FindByID(ctx context.Context, id int64) (*models.Lecturer, error) {
	return s.lecturerRepo.GetByID(ctx, id)
}

// FindByEmail retrieves a lecturer by email
func (s *lecturerServiceImpl) FindByEmail(ctx context.Context, email string) (*models.Lecturer, error) {
	return s.lecturerRepo.GetByEmail(ctx, email)
}

// GetAllLecturersPublic retrieves all lecturers as public profiles
func (s *lecturerServiceImpl) GetAllLecturersPublic(ctx context.Context) ([]*dto.LecturerPublicResponse, error) {
	lecturers, err := s.lecturerRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapLecturersToPublic(lecturers), nil
}

// SearchLecturersByKeyword searches lecturer names, departments and interest
// names for a keyword and returns the matches as public profiles
func (s *lecturerServiceImpl) SearchLecturersByKeyword(ctx context.Context, keyword string) ([]*dto.LecturerPublicResponse, error) {
	lecturers, err := s.lecturerRepo.SearchByKeyword(ctx, keyword)
	if err != nil {
		return nil, err
	}
	return mapLecturersToPublic(lecturers), nil
}

// FindLecturersByInterestIDs retrieves lecturers holding any of the given
// interest IDs
func (s *lecturerServiceImpl) FindLecturersByInterestIDs(ctx context.Context, interestIDs []int64) ([]*dto.LecturerPublicResponse, error) {
	if len(interestIDs) == 0 {
		return []*dto.LecturerPublicResponse{}, nil
	}
	lecturers, err := s.lecturerRepo.GetByInterestIDs(ctx, interestIDs)
	if err != nil {
		return nil, err
	}
	return mapLecturersToPublic(lecturers), nil
}

// FindLecturersByCategory retrieves lecturers holding at least one interest
// in the given category
func (s *lecturerServiceImpl) FindLecturersByCategory(ctx context.Context, categoryID int64) ([]*dto.LecturerPublicResponse, error) {
	lecturers, err := s.lecturerRepo.GetByCategoryID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return mapLecturersToPublic(lecturers), nil
}

// FindLecturersByDepartment retrieves lecturers by department name,
// case-insensitively
func (s *lecturerServiceImpl) FindLecturersByDepartment(ctx context.Context, department string) ([]*dto.LecturerPublicResponse, error) {
	lecturers, err := s.lecturerRepo.GetByDepartment(ctx, department)
	if err != nil {
		return nil, err
	}
	return mapLecturersToPublic(lecturers), nil
}

// SearchLecturersByInterests retrieves lecturers holding any of the named
// interests. An empty list yields an empty result; a blank entry is a
// validation error.
func (s *lecturerServiceImpl) SearchLecturersByInterests(ctx context.Context, interestNames []string) ([]*dto.LecturerPublicResponse, error) {
	if len(interestNames) == 0 {
		return []*dto.LecturerPublicResponse{}, nil
	}
	for _, name := range interestNames {
		if validation.IsBlank(name) {
			return nil, fmt.Errorf("%w: Interest names cannot be null or empty", apperrors.ErrValidationFailed)
		}
	}
	lecturers, err := s.lecturerRepo.GetByInterestNames(ctx, interestNames)
	if err != nil {
		return nil, err
	}
	return mapLecturersToPublic(lecturers), nil
}

// GetLecturerContact returns a lecturer's contact details. Only registered
// students may see them; unknown student emails are rejected.
func (s *lecturerServiceImpl) GetLecturerContact(ctx context.Context, lecturerID int64, studentEmail string) (*dto.LecturerContactResponse, error) {
	registered, err := s.studentChecker.EmailExists(ctx, studentEmail)
	if err != nil {
		return nil, fmt.Errorf("error checking student registration: %w", err)
	}
	if !registered {
		return nil, fmt.Errorf("%w: only registered students can view contact information", apperrors.ErrPermissionDenied)
	}

	lecturer, err := s.lecturerRepo.GetByID(ctx, lecturerID)
	if err != nil {
		return nil, err
	}

	return &dto.LecturerContactResponse{
		ID:             lecturer.ID,
		FirstName:      lecturer.FirstName,
		LastName:       lecturer.LastName,
		Email:          lecturer.Email,
		Phone:          lecturer.Phone,
		OfficeLocation: lecturer.OfficeLocation,
		OfficeHours:    lecturer.OfficeHours,
		Title:          lecturer.Title,
		Department:     lecturer.Department,
	}, nil
}

// mapLecturersToPublic projects lecturer entities onto the public profile
// shape, which carries no direct contact fields.
func mapLecturersToPublic(lecturers []*models.Lecturer) []*dto.LecturerPublicResponse {
	result := make([]*dto.LecturerPublicResponse, 0, len(lecturers))
	for _, lecturer := range lecturers {
		result = append(result, mapLecturerToPublic(lecturer))
	}
	return result
}

func mapLecturerToPublic(lecturer *models.Lecturer) *dto.LecturerPublicResponse {
	interests := make([]dto.ResearchInterestResponse, 0, len(lecturer.Interests))
	for _, interest := range lecturer.Interests {
		interests = append(interests, dto.ResearchInterestResponse{
			ID:           interest.ID,
			Name:         interest.Name,
			Description:  interest.Description,
			CategoryName: interest.CategoryName,
		})
	}
	return &dto.LecturerPublicResponse{
		ID:                lecturer.ID,
		FirstName:         lecturer.FirstName,
		LastName:          lecturer.LastName,
		Title:             lecturer.Title,
		Department:        lecturer.Department,
		Bio:               lecturer.Bio,
		ProfileImageURL:   lecturer.ProfileImageURL,
		ResearchInterests: interests,
	}
}
