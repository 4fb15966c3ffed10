// Package validate holds request checks shared by the gRPC services.
// Every failure is a gRPC InvalidArgument status naming the offending field.
package validate

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	svcErr "github.com/oggyb/jobmatch/internal/errors"
	"github.com/oggyb/jobmatch/internal/repository"
	"github.com/oggyb/jobmatch/internal/utils/pagination"
)

// ID parses a required UUID field.
func ID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, svcErr.InvalidArgument(fmt.Sprintf("%s must be a valid UUID", field))
	}
	return id, nil
}

// OptionalID parses a UUID field that may be left empty.
func OptionalID(field, value string) (*uuid.UUID, error) {
	if value == "" {
		return nil, nil
	}
	id, err := ID(field, value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// OptionalIDPtr is OptionalID for partial-update fields.
func OptionalIDPtr(field string, value *string) (*uuid.UUID, error) {
	if value == nil {
		return nil, nil
	}
	id, err := ID(field, *value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// Required takes field/value pairs and reports the first blank value.
func Required(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			return svcErr.InvalidArgument(fmt.Sprintf("%s is required", pairs[i]))
		}
	}
	return nil
}

// Page builds a pagination filter; limit 0 means the default page size.
func Page(offset, limit int32) (pagination.Filter, error) {
	f, err := pagination.New(offset, limit)
	if err != nil {
		return pagination.Filter{}, svcErr.InvalidArgument(err.Error())
	}
	return f, nil
}

// Ordering checks order_by and order; empty values keep the query default.
func Ordering(orderBy, order string) error {
	switch orderBy {
	case "", repository.OrderByCreatedAt, repository.OrderByUpdatedAt:
	default:
		return svcErr.InvalidArgument("order_by must be created_at or updated_at")
	}
	switch order {
	case "", repository.OrderAsc, repository.OrderDesc:
	default:
		return svcErr.InvalidArgument("order must be asc or desc")
	}
	return nil
}

// SalaryBand rejects negative bounds and a min above max when both are set.
func SalaryBand(minSalary, maxSalary *float64) error {
	if minSalary != nil && *minSalary < 0 {
		return svcErr.InvalidArgument("min_salary must not be negative")
	}
	if maxSalary != nil && *maxSalary < 0 {
		return svcErr.InvalidArgument("max_salary must not be negative")
	}
	if minSalary != nil && maxSalary != nil && *minSalary > *maxSalary {
		return svcErr.InvalidArgument("min_salary must not exceed max_salary")
	}
	return nil
}

// Enum checks value against valid, which is the type's Valid method.
// Empty values are accepted and mean "default".
func Enum[T ~string](field string, value string, valid func(T) bool) (T, error) {
	v := T(value)
	if value != "" && !valid(v) {
		return "", svcErr.InvalidArgument(fmt.Sprintf("%s %q is not a valid value", field, value))
	}
	return v, nil
}
