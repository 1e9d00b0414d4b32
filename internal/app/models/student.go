package models

// Student defines the student model based on the 'students' table
type Student struct {
	ID          int64   `json:"id" db:"id" example:"1"`                                  // Unique identifier for the student
	FirstName   string  `json:"firstName" db:"first_name" example:"Jane"`                // Student's first name
	LastName    string  `json:"lastName" db:"last_name" example:"Doe"`                   // Student's last name
	Email       string  `json:"email" db:"email" example:"jane.doe@student.edu"`         // Student's email address (unique)
	Phone       string  `json:"phone,omitempty" db:"phone"`                              // Contact phone number
	StudentID   *string `json:"studentId,omitempty" db:"student_id" example:"20240001"`  // External student identifier (unique when present, nullable)
	Program     string  `json:"program,omitempty" db:"program" example:"Computer Science"` // Enrolled program
	YearOfStudy string  `json:"yearOfStudy,omitempty" db:"year_of_study" example:"3"`    // Current year of study
	Interests   string  `json:"interests,omitempty" db:"interests"`                      // Free-text research interests
	Password    string  `json:"-" db:"password"`                                         // Hashed password (excluded from JSON)
}

// FullName returns the student's display name.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
