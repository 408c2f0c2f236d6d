package services

import (
	"errors"
	"fmt"
)

// ErrorKind -> kategori kegagalan yang dilihat oleh pemanggil service
type ErrorKind string

const (
	KindNotFound    ErrorKind = "NotFound"
	KindConflict    ErrorKind = "Conflict"
	KindValidation  ErrorKind = "Validation"
	KindUnavailable ErrorKind = "Unavailable"
)

// ServiceError membawa kind, pesan untuk user, dan error asli (jika ada)
type ServiceError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Is membuat errors.Is(err, ErrNotFound) dst. cocok berdasarkan kind
func (e *ServiceError) Is(target error) bool {
	t, ok := target.(*ServiceError)
	if !ok {
		return false
	}
	return t.Message == "" && t.Err == nil && t.Kind == e.Kind
}

// Sentinel untuk errors.Is
var (
	ErrNotFound    = &ServiceError{Kind: KindNotFound}
	ErrConflict    = &ServiceError{Kind: KindConflict}
	ErrValidation  = &ServiceError{Kind: KindValidation}
	ErrUnavailable = &ServiceError{Kind: KindUnavailable}
)

func notFound(format string, args ...interface{}) error {
	return &ServiceError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func conflict(format string, args ...interface{}) error {
	return &ServiceError{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func invalid(format string, args ...interface{}) error {
	return &ServiceError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// unavailable membungkus error dari database. Error yang sudah berupa ServiceError
// diteruskan apa adanya.
func unavailable(message string, err error) error {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}
	return &ServiceError{Kind: KindUnavailable, Message: message, Err: err}
}

// KindOf mengembalikan kind dari error, Unavailable untuk error yang tidak dikenal
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindUnavailable
}
