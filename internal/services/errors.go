package services

import (
	"errors"
	"fmt"
)

// ValidationError marks a failure caused by the caller's input or by current
// business state. Its message is safe to surface verbatim; handlers map it to
// 400 (or 404 when NotFound is set). Anything else coming out of a service is
// a persistence failure: logged, rolled back, surfaced as a generic error.
type ValidationError struct {
	Message  string
	NotFound bool
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validationf builds a business-rule violation.
func Validationf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a missing-entity violation.
func NotFoundf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...), NotFound: true}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
