package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidEmail     = errors.New("invalid email format")
)

// Student errors
var (
	ErrStudentNotFound        = errors.New("student not found")
	ErrEmailAlreadyExists     = errors.New("email already exists")
	ErrStudentIDAlreadyExists = errors.New("student ID already exists")
)

// Lecturer errors
var (
	ErrLecturerNotFound = errors.New("lecturer not found")
	ErrLecturerExists   = errors.New("lecturer with this email already exists")
)

// Research catalog errors
var (
	ErrCategoryNotFound = errors.New("research category not found")
	ErrCategoryExists   = errors.New("research category with this name already exists")
	ErrInterestNotFound = errors.New("research interest not found")
	ErrInterestExists   = errors.New("research interest already exists in this category")
)
