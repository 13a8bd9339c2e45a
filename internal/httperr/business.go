package httperr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Field != "" {
		return fmt.Sprintf("%s is invalid", e.Field)
	}
	return "invalid request"
}

func ErrRequired(field string) error {
	return ValidationError{Field: field, Message: field + " is required"}
}

func ErrInvalid(field, message string) error {
	return ValidationError{Field: field, Message: message}
}

// NotFoundError reports a missing entity, or one that does not belong to
// its claimed parent.
type NotFoundError struct {
	Entity string
}

func (e NotFoundError) Error() string {
	return e.Entity + " not found"
}

func ErrNotFound(entity string) error {
	return NotFoundError{Entity: entity}
}

// ConflictError reports a duplicate value on a unique field.
type ConflictError struct {
	Code    string
	Message string
}

func (e ConflictError) Error() string {
	return e.Message
}

func ErrConflict(code, message string) error {
	return ConflictError{Code: code, Message: message}
}

// UnauthorizedError reports missing or rejected credentials.
type UnauthorizedError struct {
	Code string
}

func (e UnauthorizedError) Error() string {
	return e.Code
}

func ErrUnauthorized(code string) error {
	return UnauthorizedError{Code: code}
}

// NotFoundOr maps gorm's missing-row error to a NotFoundError for entity and
// passes every other error through unchanged.
func NotFoundOr(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound(entity)
	}
	return err
}

const pgUniqueViolation = "23505"

func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return false
}
