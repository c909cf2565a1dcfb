package dto

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

const (
	budgetMin = 0.01
	budgetMax = 999999999.99
)

// Validate checks every field-level constraint and collects all violations
// into a field -> message map. It returns nil when the request is valid.
// Cross-field date ordering is not checked here; the service owns that rule.
func (r CreateProjectRequest) Validate() map[string]string {
	violations := make(map[string]string)

	if n := len(r.Title); n < 3 || n > 255 {
		violations["title"] = "Title must be between 3 and 255 characters"
	}
	if n := len(r.Description); n < 10 || n > 2000 {
		violations["description"] = "Description must be between 10 and 2000 characters"
	}

	switch {
	case r.Budget == nil:
		violations["budget"] = "Budget is required"
	case *r.Budget < budgetMin:
		violations["budget"] = "Budget must be at least 0.01"
	case *r.Budget > budgetMax:
		violations["budget"] = "Budget must not exceed 999999999.99"
	}

	if !currencyPattern.MatchString(r.Currency) {
		violations["currency"] = "Currency must be 3 uppercase letters (e.g., EUR, USD)"
	}

	checkDate(violations, "startDate", "Start date", r.StartDate)
	checkDate(violations, "endDate", "End date", r.EndDate)
	checkUUID(violations, "departmentId", "Department ID", r.DepartmentID)
	checkUUID(violations, "projectManagerId", "Project Manager ID", r.ProjectManagerID)

	if len(violations) == 0 {
		return nil
	}
	return violations
}

func checkDate(violations map[string]string, field, label, value string) {
	if value == "" {
		violations[field] = label + " is required"
		return
	}
	if _, err := time.Parse(DateLayout, value); err != nil {
		violations[field] = label + " must be a valid date (YYYY-MM-DD)"
	}
}

func checkUUID(violations map[string]string, field, label, value string) {
	if value == "" {
		violations[field] = label + " is required"
		return
	}
	if _, err := uuid.Parse(value); err != nil {
		violations[field] = label + " must be a valid UUID"
	}
}
