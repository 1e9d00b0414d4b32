package dto

// SaveLecturerRequest represents lecturer registration/update data.
// A zero ID inserts, a non-zero ID updates. Research interests are given
// by name; unknown names are created under the "General" category.
type SaveLecturerRequest struct {
	ID                int64    `json:"id,omitempty"`
	FirstName         string   `json:"firstName" binding:"required" example:"John"`
	LastName          string   `json:"lastName" binding:"required" example:"Smith"`
	Email             string   `json:"email" binding:"required" example:"john.smith@university.edu"`
	Phone             string   `json:"phone,omitempty"`
	OfficeLocation    string   `json:"officeLocation,omitempty"`
	OfficeHours       string   `json:"officeHours,omitempty"`
	Title             string   `json:"title,omitempty" example:"Dr."`
	Department        string   `json:"department,omitempty" example:"Computer Science"`
	Bio               string   `json:"bio,omitempty"`
	ProfileImageURL   string   `json:"profileImageUrl,omitempty"`
	ResearchInterests []string `json:"researchInterests,omitempty" example:"Artificial Intelligence"`
}

// LecturerPublicResponse is the public projection of a lecturer: no
// password, no raw contact fields.
type LecturerPublicResponse struct {
	ID                int64                      `json:"id" example:"1"`
	FirstName         string                     `json:"firstName" example:"John"`
	LastName          string                     `json:"lastName" example:"Smith"`
	Title             string                     `json:"title,omitempty" example:"Dr."`
	Department        string                     `json:"department,omitempty" example:"Computer Science"`
	Bio               string                     `json:"bio,omitempty"`
	ProfileImageURL   string                     `json:"profileImageUrl,omitempty"`
	ResearchInterests []ResearchInterestResponse `json:"researchInterests"`
}

// LecturerContactResponse is the gated full contact projection, only
// served to registered students.
type LecturerContactResponse struct {
	ID             int64  `json:"id" example:"1"`
	FirstName      string `json:"firstName" example:"John"`
	LastName       string `json:"lastName" example:"Smith"`
	Email          string `json:"email" example:"john.smith@university.edu"`
	Phone          string `json:"phone,omitempty"`
	OfficeLocation string `json:"officeLocation,omitempty"`
	OfficeHours    string `json:"officeHours,omitempty"`
	Title          string `json:"title,omitempty" example:"Dr."`
	Department     string `json:"department,omitempty" example:"Computer Science"`
}
