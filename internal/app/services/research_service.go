package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/university/advisorfinder/internal/app/models"
	"github.com/university/advisorfinder/internal/pkg/apperrors"
	"github.com/university/advisorfinder/internal/pkg/validation"
)

// Catalog fallback used when an interest is registered without an explicit
// category.
const (
	defaultCategoryName        = "General"
	defaultCategoryDescription = "General Research Interests"
)

// ResearchCategoryStore is the category persistence interface consumed by services
type ResearchCategoryStore interface {
	Create(ctx context.Context, category *models.ResearchCategory) error
	GetByID(ctx context.Context, id int64) (*models.ResearchCategory, error)
	GetByName(ctx context.Context, name string) (*models.ResearchCategory, error)
	GetAll(ctx context.Context) ([]*models.ResearchCategory, error)
}

// ResearchInterestStore is the interest persistence interface consumed by services
type ResearchInterestStore interface {
	Create(ctx context.Context, interest *models.ResearchInterest) error
	GetByID(ctx context.Context, id int64) (*models.ResearchInterest, error)
	GetByName(ctx context.Context, name string) (*models.ResearchInterest, error)
	GetAll(ctx context.Context) ([]*models.ResearchInterest, error)
	GetByCategoryID(ctx context.Context, categoryID int64) ([]*models.ResearchInterest, error)
	SearchByKeyword(ctx context.Context, keyword string) ([]*models.ResearchInterest, error)
}

// ResearchService defines the interface for research catalog operations
type ResearchService interface {
	GetAllCategories(ctx context.Context) ([]*models.ResearchCategory, error)
	GetCategoryByID(ctx context.Context, id int64) (*models.ResearchCategory, error)
	SaveCategory(ctx context.Context, category *models.ResearchCategory) (*models.ResearchCategory, error)
	GetAllInterests(ctx context.Context) ([]*models.ResearchInterest, error)
	GetInterestByID(ctx context.Context, id int64) (*models.ResearchInterest, error)
	GetInterestsByCategory(ctx context.Context, categoryID int64) ([]*models.ResearchInterest, error)
	SearchInterestsByKeyword(ctx context.Context, keyword string) ([]*models.ResearchInterest, error)
	SaveInterest(ctx context.Context, interest *models.ResearchInterest) (*models.ResearchInterest, error)
	FindOrCreateInterest(ctx context.Context, name, description string) (*models.ResearchInterest, error)
}

// researchServiceImpl implements the ResearchService interface
type researchServiceImpl struct {
	categoryRepo ResearchCategoryStore
	interestRepo ResearchInterestStore
}

// NewResearchService creates a new research service instance
func NewResearchService(categoryRepo ResearchCategoryStore, interestRepo ResearchInterestStore) ResearchService {
	return &researchServiceImpl{
		categoryRepo: categoryRepo,
		interestRepo: interestRepo,
	}
}

// GetAllCategories retrieves all research categories
func (s *researchServiceImpl) GetAllCategories(ctx context.Context) ([]*models.ResearchCategory, error) {
	return s.categoryRepo.GetAll(ctx)
}

// GetCategoryByID retrieves a research category by ID
func (s *researchServiceImpl) GetCategoryByID(ctx context.Context, id int64) (*models.ResearchCategory, error) {
	return s.categoryRepo.GetByID(ctx, id)
}

// SaveCategory validates and persists a new research category
func (s *researchServiceImpl) SaveCategory(ctx context.Context, category *models.ResearchCategory) (*models.ResearchCategory, error) {
	if validation.IsBlank(category.Name) {
		return nil, fmt.Errorf("%w: Category name is required", apperrors.ErrValidationFailed)
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// GetAllInterests retrieves all research interests
func (s *researchServiceImpl) GetAllInterests(ctx context.Context) ([]*models.ResearchInterest, error) {
	return s.interestRepo.GetAll(ctx)
}

// GetInterestByID retrieves a research interest by ID
func (s *researchServiceImpl) GetInterestByID(ctx context.Context, id int64) (*models.ResearchInterest, error) {
	return s.interestRepo.GetByID(ctx, id)
}

// GetInterestsByCategory retrieves the interests filed under a category
func (s *researchServiceImpl) GetInterestsByCategory(ctx context.Context, categoryID int64) ([]*models.ResearchInterest, error) {
	if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
		return nil, err
	}
	return s.interestRepo.GetByCategoryID(ctx, categoryID)
}

// SearchInterestsByKeyword searches interest names and descriptions for a
// keyword. An empty keyword matches every interest.
func (s *researchServiceImpl) SearchInterestsByKeyword(ctx context.Context, keyword string) ([]*models.ResearchInterest, error) {
	return s.interestRepo.SearchByKeyword(ctx, keyword)
}

// SaveInterest validates and persists a new research interest. When no
// category is given the interest is filed under the default category.
func (s *researchServiceImpl) SaveInterest(ctx context.Context, interest *models.ResearchInterest) (*models.ResearchInterest, error) {
	if validation.IsBlank(interest.Name) {
		return nil, fmt.Errorf("%w: Interest name is required", apperrors.ErrValidationFailed)
	}
	if interest.CategoryID == 0 {
		category, err := s.getOrCreateDefaultCategory(ctx)
		if err != nil {
			return nil, err
		}
		interest.CategoryID = category.ID
	} else if _, err := s.categoryRepo.GetByID(ctx, interest.CategoryID); err != nil {
		return nil, err
	}
	if err := s.interestRepo.Create(ctx, interest); err != nil {
		return nil, err
	}
	return interest, nil
}

// FindOrCreateInterest returns the interest with the given name, creating it
// under the default category when it does not exist yet. The description is
// only used on create; an existing interest keeps its stored one. Concurrent
// creation of the same name is resolved by re-reading after a uniqueness
// conflict.
func (s *researchServiceImpl) FindOrCreateInterest(ctx context.Context, name, description string) (*models.ResearchInterest, error) {
	if validation.IsBlank(name) {
		return nil, fmt.Errorf("%w: Interest name is required", apperrors.ErrValidationFailed)
	}

	interest, err := s.interestRepo.GetByName(ctx, name)
	if err == nil {
		return interest, nil
	}
	if !errors.Is(err, apperrors.ErrInterestNotFound) {
		return nil, err
	}

	category, err := s.getOrCreateDefaultCategory(ctx)
	if err != nil {
		return nil, err
	}

	created := &models.ResearchInterest{
		Name:        name,
		Description: description,
		CategoryID:  category.ID,
	}
	err = s.interestRepo.Create(ctx, created)
	if err == nil {
		created.CategoryName = category.Name
		return created, nil
	}
	if errors.Is(err, apperrors.ErrInterestExists) {
		// lost the creation race, the row exists now
		return s.interestRepo.GetByName(ctx, name)
	}
	return nil, err
}

func (s *researchServiceImpl) getOrCreateDefaultCategory(ctx context.Context) (*models.ResearchCategory, error) {
	category, err := s.categoryRepo.GetByName(ctx, defaultCategoryName)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, apperrors.ErrCategoryNotFound) {
		return nil, err
	}

	created := &models.ResearchCategory{
		Name:        defaultCategoryName,
		Description: defaultCategoryDescription,
	}
	err = s.categoryRepo.Create(ctx, created)
	if err == nil {
		return created, nil
	}
	if errors.Is(err, apperrors.ErrCategoryExists) {
		return s.categoryRepo.GetByName(ctx, defaultCategoryName)
	}
	return nil, err
}
