package dto

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Error string `json:"error" example:"Invalid email format"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Error: message}
}
