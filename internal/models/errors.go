package models

import "errors"

var (
	// ErrProjectNotFound signals that no project exists for the requested id.
	ErrProjectNotFound = errors.New("project not found")

	// ErrInvalidProjectData signals a business-rule violation, e.g. an end
	// date before the start date.
	ErrInvalidProjectData = errors.New("end date must be equal to or after start date")
)

// ValidationError carries field-level constraint violations as a
// field -> message map.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}
