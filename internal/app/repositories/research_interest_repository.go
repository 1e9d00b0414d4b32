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

const interestColumns = `ri.id, ri.name, ri.description, ri.category_id, rc.name`

// ResearchInterestRepository handles database operations for research interests
type ResearchInterestRepository struct {
	db *pgxpool.Pool
}

// NewResearchInterestRepository creates a new research interest repository
func NewResearchInterestRepository(db *pgxpool.Pool) *ResearchInterestRepository {
	return &ResearchInterestRepository{
		db: db,
	}
}

// Create persists a new interest and fills in the generated ID
func (r *ResearchInterestRepository) Create(ctx context.Context, interest *models.ResearchInterest) error {
	query := `
		INSERT INTO research_interests (name, description, category_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, interest.Name, interest.Description, interest.CategoryID).Scan(&interest.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "research_interests_name_category_key") {
			return apperrors.ErrInterestExists
		}
		return fmt.Errorf("error creating research interest: %w", err)
	}

	return nil
}

// GetByID retrieves an interest by ID
func (r *ResearchInterestRepository) GetByID(ctx context.Context, id int64) (*models.ResearchInterest, error) {
	query := `
		SELECT ` + interestColumns + `
		FROM research_interests ri
		JOIN research_categories rc ON rc.id = ri.category_id
		WHERE ri.id = $1
	`
	return r.getOne(ctx, query, id)
}

// GetByName retrieves an interest by exact name. Interest names are only
// unique per category; the first match wins, matching the original
// single-result lookup.
func (r *ResearchInterestRepository) GetByName(ctx context.Context, name string) (*models.ResearchInterest, error) {
	query := `
		SELECT ` + interestColumns + `
		FROM research_interests ri
		JOIN research_categories rc ON rc.id = ri.category_id
		WHERE ri.name = $1
		ORDER BY ri.id
		LIMIT 1
	`
	return r.getOne(ctx, query, name)
}

func (r *ResearchInterestRepository) getOne(ctx context.Context, query string, arg interface{}) (*models.ResearchInterest, error) {
	var interest models.ResearchInterest
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&interest.ID,
		&interest.Name,
		&interest.Description,
		&interest.CategoryID,
		&interest.CategoryName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInterestNotFound
		}
		return nil, fmt.Errorf("error retrieving research interest: %w", err)
	}

	return &interest, nil
}

// GetAll retrieves all interests
func (r *ResearchInterestRepository) GetAll(ctx context.Context) ([]*models.ResearchInterest, error) {
	query := `
		SELECT ` + interestColumns + `
		FROM research_interests ri
		JOIN research_categories rc ON rc.id = ri.category_id
	`
	return r.list(ctx, query)
}

// GetByCategoryID retrieves all interests belonging to a category
func (r *ResearchInterestRepository) GetByCategoryID(ctx context.Context, categoryID int64) ([]*models.ResearchInterest, error) {
	query := `
		SELECT ` + interestColumns + `
		FROM research_interests ri
		JOIN research_categories rc ON rc.id = ri.category_id
		WHERE ri.category_id = $1
	`
	return r.list(ctx, query, categoryID)
}

// SearchByKeyword returns interests whose name or description contains
// the keyword as a case-sensitive substring. An empty keyword
// substring-matches everything and therefore returns all interests.
func (r *ResearchInterestRepository) SearchByKeyword(ctx context.Context, keyword string) ([]*models.ResearchInterest, error) {
	query := `
		SELECT ` + interestColumns + `
		FROM research_interests ri
		JOIN research_categories rc ON rc.id = ri.category_id
		WHERE ri.name LIKE '%' || $1 || '%'
		   OR ri.description LIKE '%' || $1 || '%'
	`
	return r.list(ctx, query, keyword)
}

func (r *ResearchInterestRepository) list(ctx context.Context, query string, args ...interface{}) ([]*models.ResearchInterest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var interests []*models.ResearchInterest
	for rows.Next() {
		var interest models.ResearchInterest
		if err := rows.Scan(
			&interest.ID,
			&interest.Name,
			&interest.Description,
			&interest.CategoryID,
			&interest.CategoryName,
		); err != nil {
			return nil, err
		}
		interests = append(interests, &interest)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return interests, nil
}
