package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is matched by every NotFoundError.
	ErrNotFound = errors.New("not found")

	ErrGenresRequired = errors.New("genres ids must not be empty")
	ErrTitleRequired  = errors.New("title must not be empty")
	ErrTextRequired   = errors.New("comment text must not be empty")
)

// NotFoundError reports a missing row of the named entity.
type NotFoundError struct {
	Entity string
	ID     any
}

func (e *NotFoundError) Error() string {
	if e.ID == nil {
		return fmt.Sprintf("%s not found", e.Entity)
	}
	return fmt.Sprintf("%s with id %v not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func notFound(entity string, id any) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// IsValidationError reports whether err was caused by invalid input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrGenresRequired) ||
		errors.Is(err, ErrTitleRequired) ||
		errors.Is(err, ErrTextRequired)
}

// translate maps gorm's not-found error to NotFoundError and leaves other errors as they are.
func translate(err error, entity string, id any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(entity, id)
	}
	return err
}
