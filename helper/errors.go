package helper

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

type ErrorKind int

const (
	KindInvalidArgument ErrorKind = iota + 1
	KindNotFound
	KindUnauthenticated
)

// AppError is the typed failure every service method returns on a domain
// error. Field is set only for payload schema violations.
type AppError struct {
	Kind    ErrorKind
	Message string
	Field   string
}

func (e *AppError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}

func NewInvalidArgument(message string) *AppError {
	return &AppError{Kind: KindInvalidArgument, Message: message}
}

func NewFieldViolation(field, message string) *AppError {
	return &AppError{Kind: KindInvalidArgument, Message: message, Field: field}
}

func NewNotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func NewUnauthenticated(message string) *AppError {
	return &AppError{Kind: KindUnauthenticated, Message: message}
}

// KindOf returns the taxonomy kind of err, or 0 for untyped errors.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return 0
}

// FromValidation converts a validator result into an InvalidArgument error
// carrying the first offending field path. A nil input returns nil.
func FromValidation(err error) *AppError {
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return NewFieldViolation(fe.Field(), "failed on rule '"+fe.Tag()+"'")
	}
	return NewInvalidArgument(err.Error())
}
