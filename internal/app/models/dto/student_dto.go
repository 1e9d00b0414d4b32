package dto

// RegisterStudentRequest represents student registration data.
// Email syntax is deliberately not validated by binding tags; the service
// applies the minimal rule so that malformed addresses produce the
// documented error message rather than a binding failure.
type RegisterStudentRequest struct {
	FirstName   string `json:"firstName" binding:"required" example:"Jane"`
	LastName    string `json:"lastName" binding:"required" example:"Doe"`
	Email       string `json:"email" example:"jane.doe@student.edu"`
	Phone       string `json:"phone,omitempty"`
	StudentID   string `json:"studentId,omitempty" example:"20240001"`
	Program     string `json:"program,omitempty" example:"Computer Science"`
	YearOfStudy string `json:"yearOfStudy,omitempty" example:"3"`
	Interests   string `json:"interests,omitempty"`
	Password    string `json:"password" binding:"required,min=8"`
}

// RegisterStudentResponse is returned after a successful registration
type RegisterStudentResponse struct {
	Message   string `json:"message" example:"Registration successful"`
	StudentID int64  `json:"studentId" example:"1"`
}
