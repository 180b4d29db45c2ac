package entity

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrHasChildren        = errors.New("record still has children")
	ErrInvalidUpload      = errors.New("invalid upload")
	ErrUploadFailed       = errors.New("upload failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError names the offending request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
