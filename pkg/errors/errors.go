package custom_error

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

type CustomError interface {
	Error() string
}

type UniqueViolationError struct {
	message string
	code    string // PostgreSQL error code "23505"
}

type ForeignKeyViolationError struct {
	message string
	code    string // PostgreSQL error code "23503"
}

type NotFoundError struct {
	resource string
}

type ValidationError struct {
	message string
}

func (v *ValidationError) Error() string {
	return v.message
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{message: fmt.Sprintf(format, args...)}
}

func (e *UniqueViolationError) Error() string {
	return fmt.Sprintf("%s (code: %s)", e.message, e.code)
}

func (f *ForeignKeyViolationError) Error() string {
	return fmt.Sprintf("%s (code: %s)", f.message, f.code)
}

func (n *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", n.resource)
}

func NewNotFoundError(resource string) *NotFoundError {
	return &NotFoundError{resource: resource}
}

func WrapDBError(message, code string) CustomError {
	switch code {
	case "23505":
		return &UniqueViolationError{
			message: message,
			code:    code,
		}
	case "23503":
		return &ForeignKeyViolationError{
			message: message,
			code:    code,
		}
	default:
		return fmt.Errorf("uncategorized error occurred with code %s: %s", code, message)
	}
}

// TranslateDBError maps driver failures onto the error taxonomy handlers
// switch on. sql.ErrNoRows becomes a NotFoundError for the given resource,
// constraint violations keep their Postgres class, everything else is
// wrapped untouched.
func TranslateDBError(resource string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return NewNotFoundError(resource)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return WrapDBError(pqErr.Message, string(pqErr.Code))
	}

	return fmt.Errorf("%s: %w", resource, err)
}
