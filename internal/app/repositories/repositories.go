package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository          *StudentRepository
	LecturerRepository         *LecturerRepository
	ResearchCategoryRepository *ResearchCategoryRepository
	ResearchInterestRepository *ResearchInterestRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:          NewStudentRepository(db),
		LecturerRepository:         NewLecturerRepository(db),
		ResearchCategoryRepository: NewResearchCategoryRepository(db),
		ResearchInterestRepository: NewResearchInterestRepository(db),
	}
}
