package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrInvalidRecord    = errors.New("invalid record")
	ErrUnknownExercise  = errors.New("unknown exercise")
)

// BookStore errors
var (
	ErrBuyerNotFound = errors.New("buyer not found")
)

// Computer inventory errors
var (
	ErrNoWorkStations = errors.New("inventory has no work stations")
)

// Bank errors
var (
	ErrInsufficientFunds   = errors.New("not enough money")
	ErrCreditLimitExceeded = errors.New("credit limit exceeded")
	ErrInvalidAmount       = errors.New("amount must be non-negative")
	ErrAccountNotFound     = errors.New("account not found")
)

// NewInvalidRecordError creates a custom error for a record that could not be decoded
func NewInvalidRecordError(message string) *CustomError {
	return &CustomError{
		Err:     ErrInvalidRecord,
		Message: message,
	}
}

// Is returns whether err matches target or any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
