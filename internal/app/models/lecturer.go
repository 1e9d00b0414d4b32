package models

// Lecturer defines the lecturer model based on the 'lecturers' table.
// The many-to-many association to research interests is stored in the
// 'lecturer_research_interests' join table and loaded by the repository
// into Interests; there is no back-pointer from interest to lecturer.
type Lecturer struct {
	ID              int64  `json:"id" db:"id" example:"1"`                             // Unique identifier for the lecturer
	FirstName       string `json:"firstName" db:"first_name" example:"John"`           // Lecturer's first name
	LastName        string `json:"lastName" db:"last_name" example:"Smith"`            // Lecturer's last name
	Email           string `json:"email" db:"email" example:"john.smith@university.edu"` // Lecturer's email address (unique)
	Phone           string `json:"phone,omitempty" db:"phone"`                         // Contact phone number
	OfficeLocation  string `json:"officeLocation,omitempty" db:"office_location"`      // Office location
	OfficeHours     string `json:"officeHours,omitempty" db:"office_hours"`            // Office hours
	Title           string `json:"title,omitempty" db:"title" example:"Dr."`           // Academic title
	Department      string `json:"department,omitempty" db:"department"`               // Department name
	Bio             string `json:"bio,omitempty" db:"bio"`                             // Biography
	ProfileImageURL string `json:"profileImageUrl,omitempty" db:"profile_image_url"`   // Profile image reference

	// Relation (populated by the repository via the join table)
	Interests []*ResearchInterest `json:"researchInterests,omitempty"`
}

// FullName returns the lecturer's display name.
func (l *Lecturer) FullName() string {
	return l.FirstName + " " + l.LastName
}
