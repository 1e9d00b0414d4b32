package models

// ResearchCategory defines a grouping of research interests based on the
// 'research_categories' table
type ResearchCategory struct {
	ID          int64  `json:"id" db:"id" example:"1"`                            // Unique identifier for the category
	Name        string `json:"name" db:"name" example:"Computer Science"`         // Category name (unique)
	Description string `json:"description,omitempty" db:"description"`            // Category description
}

// ResearchInterest defines a named research topic based on the
// 'research_interests' table. Each interest belongs to exactly one
// category, referenced by CategoryID; the category name is denormalized
// onto reads for projection.
type ResearchInterest struct {
	ID           int64  `json:"id" db:"id" example:"1"`                                  // Unique identifier for the interest
	Name         string `json:"name" db:"name" example:"Artificial Intelligence"`        // Interest name (unique within its category)
	Description  string `json:"description,omitempty" db:"description"`                  // Interest description
	CategoryID   int64  `json:"categoryId" db:"category_id" example:"2"`                 // Owning category
	CategoryName string `json:"categoryName,omitempty" db:"-" example:"Computer Science"` // Owning category name (populated on read)
}
