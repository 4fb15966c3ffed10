package errors

import (
	"errors"
	"fmt"
)

// NotFoundError is returned by every fetch-by-key lookup that matched no row.
// Kind names the entity ("job ad", "company", ...) and Key the value looked up.
type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.Key)
}

// ConflictError signals a violated uniqueness invariant.
type ConflictError struct {
	Kind string
	Key  string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %s already exists", e.Kind, e.Key)
}

// ForbiddenError is returned when the caller may not see the requested view.
type ForbiddenError struct {
	Reason string
}

func (e *ForbiddenError) Error() string { return e.Reason }

// NotFound builds a NotFoundError. key is formatted with %v.
func NotFound(kind string, key any) error {
	return &NotFoundError{Kind: kind, Key: fmt.Sprint(key)}
}

// Conflict builds a ConflictError. key is formatted with %v.
func Conflict(kind string, key any) error {
	return &ConflictError{Kind: kind, Key: fmt.Sprint(key)}
}

func Forbidden(reason string) error {
	return &ForbiddenError{Reason: reason}
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}

func IsForbidden(err error) bool {
	var target *ForbiddenError
	return errors.As(err, &target)
}
