package dto

// ResearchInterestResponse is the projected interest shape embedded in
// lecturer responses.
type ResearchInterestResponse struct {
	ID           int64  `json:"id" example:"1"`
	Name         string `json:"name" example:"Artificial Intelligence"`
	Description  string `json:"description,omitempty"`
	CategoryName string `json:"categoryName,omitempty" example:"Computer Science"`
}
