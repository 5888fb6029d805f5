package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrUserNotFound is returned when a user record is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrRestaurantNotFound is returned when the caller has no restaurant or
	// the addressed restaurant does not exist.
	ErrRestaurantNotFound = errors.New("restaurant not found")
	// ErrCategoryNotFound is returned when a category does not exist within
	// the caller's restaurant. Cross-restaurant category references surface
	// as this error as well.
	ErrCategoryNotFound = errors.New("category not found in your restaurant")
	// ErrDishNotFound is returned when a dish does not exist.
	ErrDishNotFound = errors.New("dish not found")
	// ErrForbidden is returned when the caller is authenticated but lacks the
	// role or ownership required for the operation.
	ErrForbidden = errors.New("forbidden")
	// ErrMenuNotPublished is returned when a publication transition is not
	// allowed from the restaurant's current state.
	ErrMenuNotPublished = errors.New("menu is not published")
	// ErrIdentityVerification is returned when the external identity verifier
	// rejects a credential or is unreachable.
	ErrIdentityVerification = errors.New("identity verification failed")
	// ErrMissingEmailClaim is returned when a verified identity payload lacks
	// an email claim.
	ErrMissingEmailClaim = errors.New("email not found in token")
)

// ValidationError reports missing or malformed request fields.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return strings.Join(e.Fields, ", ") + " are required"
}

// NewValidation creates a ValidationError for the given field names.
func NewValidation(fields ...string) error {
	return &ValidationError{Fields: fields}
}

// Validationf creates a ValidationError with a single formatted field message.
func Validationf(format string, args ...interface{}) error {
	return &ValidationError{Fields: []string{fmt.Sprintf(format, args...)}}
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unexpected errors are
// collapsed into a generic 500 so store internals never leak to the caller.
func MapErrorToHTTP(err error) *HTTPError {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return NewHTTPError(http.StatusBadRequest, vErr.Error(), "VALIDATION_ERROR")
	}
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrRestaurantNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "RESTAURANT_NOT_FOUND")
	case errors.Is(err, ErrCategoryNotFound):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "CATEGORY_NOT_FOUND")
	case errors.Is(err, ErrDishNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "DISH_NOT_FOUND")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrMenuNotPublished):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MENU_NOT_PUBLISHED")
	case errors.Is(err, ErrIdentityVerification):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "IDENTITY_VERIFICATION_FAILED")
	case errors.Is(err, ErrMissingEmailClaim):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MISSING_EMAIL_CLAIM")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
