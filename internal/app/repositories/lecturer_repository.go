package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/university/advisorfinder/internal/app/models"
	"github.com/university/advisorfinder/internal/db"
	"github.com/university/advisorfinder/internal/pkg/apperrors"
	"github.com/university/advisorfinder/internal/pkg/dberrors"
)

const lecturerColumns = `l.id, l.first_name, l.last_name, l.email, l.phone, l.office_location, l.office_hours, l.title, l.department, l.bio, l.profile_image_url`

// LecturerRepository handles database operations for lecturers and their
// research interest associations
type LecturerRepository struct {
	db *pgxpool.Pool
}

// NewLecturerRepository creates a new lecturer repository
func NewLecturerRepository(db *pgxpool.Pool) *LecturerRepository {
	return &LecturerRepository{
		db: db,
	}
}

// Create persists a new lecturer together with its interest associations
// in a single transaction and fills in the generated ID.
func (r *LecturerRepository) Create(ctx context.Context, lecturer *models.Lecturer) error {
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			INSERT INTO lecturers (first_name, last_name, email, phone, office_location, office_hours, title, department, bio, profile_image_url)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id
		`

		err := tx.QueryRow(ctx, query,
			lecturer.FirstName,
			lecturer.LastName,
			lecturer.Email,
			lecturer.Phone,
			lecturer.OfficeLocation,
			lecturer.OfficeHours,
			lecturer.Title,
			lecturer.Department,
			lecturer.Bio,
			lecturer.ProfileImageURL,
		).Scan(&lecturer.ID)
		if err != nil {
			return err
		}

		return insertInterestLinks(ctx, tx, lecturer.ID, lecturer.Interests)
	})

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "lecturers_email_key") {
			return apperrors.ErrLecturerExists
		}
		return fmt.Errorf("error creating lecturer: %w", err)
	}

	return nil
}

// Update updates an existing lecturer and replaces its interest
// associations in a single transaction.
func (r *LecturerRepository) Update(ctx context.Context, lecturer *models.Lecturer) error {
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			UPDATE lecturers
			SET first_name = $1, last_name = $2, email = $3, phone = $4, office_location = $5,
			    office_hours = $6, title = $7, department = $8, bio = $9, profile_image_url = $10
			WHERE id = $11
		`

		cmdTag, err := tx.Exec(ctx, query,
			lecturer.FirstName,
			lecturer.LastName,
			lecturer.Email,
			lecturer.Phone,
			lecturer.OfficeLocation,
			lecturer.OfficeHours,
			lecturer.Title,
			lecturer.Department,
			lecturer.Bio,
			lecturer.ProfileImageURL,
			lecturer.ID,
		)
		if err != nil {
			return err
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrLecturerNotFound
		}

		if _, err := tx.Exec(ctx, `DELETE FROM lecturer_research_interests WHERE lecturer_id = $1`, lecturer.ID); err != nil {
			return err
		}

		return insertInterestLinks(ctx, tx, lecturer.ID, lecturer.Interests)
	})

	if err != nil {
		if errors.Is(err, apperrors.ErrLecturerNotFound) {
			return apperrors.ErrLecturerNotFound
		}
		if dberrors.IsDuplicateConstraintError(err, "lecturers_email_key") {
			return apperrors.ErrLecturerExists
		}
		return fmt.Errorf("error updating lecturer: %w", err)
	}

	return nil
}

func insertInterestLinks(ctx context.Context, tx pgx.Tx, lecturerID int64, interests []*models.ResearchInterest) error {
	for _, interest := range interests {
		_, err := tx.Exec(ctx, `
			INSERT INTO lecturer_research_interests (lecturer_id, research_interest_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING`,
			lecturerID, interest.ID)
		if err != nil {
			return err
		}
	}
	return nil
}

// Delete deletes a lecturer by ID; join rows are removed by the cascade.
func (r *LecturerRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM lecturers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting lecturer: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrLecturerNotFound
	}

	return nil
}

// Count returns the number of lecturers, used by the seed gate
func (r *LecturerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM lecturers`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting lecturers: %w", err)
	}
	return count, nil
}

// GetByID retrieves a lecturer by ID with interests attached
func (r *LecturerRepository) GetByID(ctx context.Context, id int64) (*models.Lecturer, error) {
	query := `SELECT ` + lecturerColumns + ` FROM lecturers l WHERE l.id = $1`

	var lecturer models.Lecturer
	err := r.db.QueryRow(ctx, query, id).Scan(
		&lecturer.ID,
		&lecturer.FirstName,
		&lecturer.LastName,
		&lecturer.Email,
		&lecturer.Phone,
		&lecturer.OfficeLocation,
		&lecturer.OfficeHours,
		&lecturer.Title,
		&lecturer.Department,
		&lecturer.Bio,
		&lecturer.ProfileImageURL,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLecturerNotFound
		}
		return nil, fmt.Errorf("error retrieving lecturer: %w", err)
	}

	if err := r.attachInterests(ctx, []*models.Lecturer{&lecturer}); err != nil {
		return nil, err
	}

	return &lecturer, nil
}

// GetByEmail retrieves a lecturer by email (exact match, case-sensitive)
func (r *LecturerRepository) GetByEmail(ctx context.Context, email string) (*models.Lecturer, error) {
	query := `SELECT ` + lecturerColumns + ` FROM lecturers l WHERE l.email = $1`

	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}

	lecturers, err := scanLecturers(rows)
	if err != nil {
		return nil, err
	}
	if len(lecturers) == 0 {
		return nil, apperrors.ErrLecturerNotFound
	}

	if err := r.attachInterests(ctx, lecturers); err != nil {
		return nil, err
	}

	return lecturers[0], nil
}

// GetAll retrieves all lecturers with interests attached
func (r *LecturerRepository) GetAll(ctx context.Context) ([]*models.Lecturer, error) {
	query := `SELECT ` + lecturerColumns + ` FROM lecturers l`
	return r.list(ctx, query)
}

// SearchByKeyword returns lecturers matching the keyword as a
// case-sensitive substring of first name, last name, department, or any
// associated research interest name. Lecturers matching through several
// interests appear once. An empty keyword substring-matches everything
// and therefore returns all lecturers.
func (r *LecturerRepository) SearchByKeyword(ctx context.Context, keyword string) ([]*models.Lecturer, error) {
	query := `
		SELECT DISTINCT ` + lecturerColumns + `
		FROM lecturers l
		LEFT JOIN lecturer_research_interests lri ON lri.lecturer_id = l.id
		LEFT JOIN research_interests ri ON ri.id = lri.research_interest_id
		WHERE l.first_name LIKE '%' || $1 || '%'
		   OR l.last_name LIKE '%' || $1 || '%'
		   OR l.department LIKE '%' || $1 || '%'
		   OR ri.name LIKE '%' || $1 || '%'
	`
	return r.list(ctx, query, keyword)
}

// GetByInterestIDs returns lecturers having at least one interest whose
// id is in the given set, each lecturer once.
func (r *LecturerRepository) GetByInterestIDs(ctx context.Context, interestIDs []int64) ([]*models.Lecturer, error) {
	query := `
		SELECT DISTINCT ` + lecturerColumns + `
		FROM lecturers l
		JOIN lecturer_research_interests lri ON lri.lecturer_id = l.id
		JOIN research_interests ri ON ri.id = lri.research_interest_id
		WHERE ri.id = ANY($1)
	`
	return r.list(ctx, query, interestIDs)
}

// GetByCategoryID returns lecturers having at least one interest in the
// given category, each lecturer once.
func (r *LecturerRepository) GetByCategoryID(ctx context.Context, categoryID int64) ([]*models.Lecturer, error) {
	query := `
		SELECT DISTINCT ` + lecturerColumns + `
		FROM lecturers l
		JOIN lecturer_research_interests lri ON lri.lecturer_id = l.id
		JOIN research_interests ri ON ri.id = lri.research_interest_id
		WHERE ri.category_id = $1
	`
	return r.list(ctx, query, categoryID)
}

// GetByDepartment returns lecturers whose department contains the given
// string, case-insensitively.
func (r *LecturerRepository) GetByDepartment(ctx context.Context, department string) ([]*models.Lecturer, error) {
	query := `SELECT ` + lecturerColumns + ` FROM lecturers l WHERE l.department ILIKE '%' || $1 || '%'`
	return r.list(ctx, query, department)
}

// GetByInterestNames returns lecturers having at least one interest whose
// name exactly matches a name in the given set, each lecturer once.
func (r *LecturerRepository) GetByInterestNames(ctx context.Context, names []string) ([]*models.Lecturer, error) {
	query := `
		SELECT DISTINCT ` + lecturerColumns + `
		FROM lecturers l
		JOIN lecturer_research_interests lri ON lri.lecturer_id = l.id
		JOIN research_interests ri ON ri.id = lri.research_interest_id
		WHERE ri.name = ANY($1)
	`
	return r.list(ctx, query, names)
}

func (r *LecturerRepository) list(ctx context.Context, query string, args ...interface{}) ([]*models.Lecturer, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	lecturers, err := scanLecturers(rows)
	if err != nil {
		return nil, err
	}

	if err := r.attachInterests(ctx, lecturers); err != nil {
		return nil, err
	}

	return lecturers, nil
}

func scanLecturers(rows pgx.Rows) ([]*models.Lecturer, error) {
	defer rows.Close()

	var lecturers []*models.Lecturer
	for rows.Next() {
		var lecturer models.Lecturer
		if err := rows.Scan(
			&lecturer.ID,
			&lecturer.FirstName,
			&lecturer.LastName,
			&lecturer.Email,
			&lecturer.Phone,
			&lecturer.OfficeLocation,
			&lecturer.OfficeHours,
			&lecturer.Title,
			&lecturer.Department,
			&lecturer.Bio,
			&lecturer.ProfileImageURL,
		); err != nil {
			return nil, err
		}
		lecturers = append(lecturers, &lecturer)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lecturers, nil
}

// attachInterests loads the research interests for the given lecturers in
// one query over the join table.
func (r *LecturerRepository) attachInterests(ctx context.Context, lecturers []*models.Lecturer) error {
	if len(lecturers) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(lecturers))
	byID := make(map[int64]*models.Lecturer, len(lecturers))
	for _, lecturer := range lecturers {
		ids = append(ids, lecturer.ID)
		byID[lecturer.ID] = lecturer
	}

	query := `
		SELECT lri.lecturer_id, ri.id, ri.name, ri.description, ri.category_id, rc.name
		FROM lecturer_research_interests lri
		JOIN research_interests ri ON ri.id = lri.research_interest_id
		JOIN research_categories rc ON rc.id = ri.category_id
		WHERE lri.lecturer_id = ANY($1)
	`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("error loading lecturer interests: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var lecturerID int64
		var interest models.ResearchInterest
		if err := rows.Scan(
			&lecturerID,
			&interest.ID,
			&interest.Name,
			&interest.Description,
			&interest.CategoryID,
			&interest.CategoryName,
		); err != nil {
			return err
		}
		if lecturer, ok := byID[lecturerID]; ok {
			lecturer.Interests = append(lecturer.Interests, &interest)
		}
	}

	return rows.Err()
}
