package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a validation-class domain error. It marks
// business-rule failures such as a referenced entity that does not exist;
// the HTTP layer renders these as 400 responses.
func NewValidationError(message string) *DomainError {
	return &DomainError{
		Code:    CodeValidation,
		Message: message,
	}
}

// Error codes classified at the repository boundary
const (
	CodeNotFound   = "NOT_FOUND"
	CodeValidation = "VALIDATION_ERROR"
)

// Common domain errors
var (
	ErrNotFound     = NewDomainError(CodeNotFound, "Resource not found")
	ErrInvalidInput = NewDomainError(CodeValidation, "Invalid input provided")
)

// IsNotFound reports whether err is a NotFound-class domain error
func IsNotFound(err error) bool {
	de, ok := err.(*DomainError)
	return ok && de.Code == CodeNotFound
}

// IsValidation reports whether err is a Validation-class domain error
func IsValidation(err error) bool {
	de, ok := err.(*DomainError)
	return ok && de.Code == CodeValidation
}
