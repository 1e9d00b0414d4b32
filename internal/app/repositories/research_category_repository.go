package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/university/advisorfinder/internal/app/models"
	"github.com/university/advisorfinder/internal/pkg/apperrors"
	"github.com/university/advisorfinder/internal/pkg/dberrors"
)

// ResearchCategoryRepository handles database operations for research categories
type ResearchCategoryRepository struct {
	db *pgxpool.Pool
}

// NewResearchCategoryRepository creates a new research category repository
func NewResearchCategoryRepository(db *pgxpool.Pool) *ResearchCategoryRepository {
	return &ResearchCategoryRepository{
		db: db,
	}
}

// Create persists a new category and fills in the generated ID
func (r *ResearchCategoryRepository) Create(ctx context.Context, category *models.ResearchCategory) error {
	query := `
		INSERT INTO research_categories (name, description)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, category.Name, category.Description).Scan(&category.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "research_categories_name_key") {
			return apperrors.ErrCategoryExists
		}
		return fmt.Errorf("error creating research category: %w", err)
	}

	return nil
}

// GetByID retrieves a category by ID
func (r *ResearchCategoryRepository) GetByID(ctx context.Context, id int64) (*models.ResearchCategory, error) {
	query := `SELECT id, name, description FROM research_categories WHERE id = $1`

	var category models.ResearchCategory
	err := r.db.QueryRow(ctx, query, id).Scan(&category.ID, &category.Name, &category.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("error retrieving research category: %w", err)
	}

	return &category, nil
}

// GetByName retrieves a category by exact name
func (r *ResearchCategoryRepository) GetByName(ctx context.Context, name string) (*models.ResearchCategory, error) {
	query := `SELECT id, name, description FROM research_categories WHERE name = $1`

	var category models.ResearchCategory
	err := r.db.QueryRow(ctx, query, name).Scan(&category.ID, &category.Name, &category.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("error retrieving research category: %w", err)
	}

	return &category, nil
}

// GetAll retrieves all categories
func (r *ResearchCategoryRepository) GetAll(ctx context.Context) ([]*models.ResearchCategory, error) {
	query := `SELECT id, name, description FROM research_categories`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*models.ResearchCategory
	for rows.Next() {
		var category models.ResearchCategory
		if err := rows.Scan(&category.ID, &category.Name, &category.Description); err != nil {
			return nil, err
		}
		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

// Count returns the number of categories, used by the seed gate
func (r *ResearchCategoryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM research_categories`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting research categories: %w", err)
	}
	return count, nil
}
