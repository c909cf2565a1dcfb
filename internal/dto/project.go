package dto

import (
	"time"

	"eprocure-backend/internal/models"
)

// DateLayout is the wire format for project dates.
const DateLayout = "2006-01-02"

// CreateProjectRequest is the payload for both create and update. Status and
// audit fields are deliberately absent: clients cannot set them.
type CreateProjectRequest struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Budget           *float64 `json:"budget"`
	Currency         string   `json:"currency"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate"`
	DepartmentID     string   `json:"departmentId"`
	ProjectManagerID string   `json:"projectManagerId"`
}

// ProjectResponse mirrors the persisted project on the wire.
type ProjectResponse struct {
	ID               string               `json:"id"`
	Title            string               `json:"title"`
	Description      string               `json:"description"`
	Budget           float64              `json:"budget"`
	Currency         string               `json:"currency"`
	StartDate        string               `json:"startDate"`
	EndDate          string               `json:"endDate"`
	Status           models.ProjectStatus `json:"status"`
	DepartmentID     string               `json:"departmentId"`
	ProjectManagerID string               `json:"projectManagerId"`
	CreatedAt        time.Time            `json:"createdAt"`
	CreatedBy        string               `json:"createdBy"`
	UpdatedAt        time.Time            `json:"updatedAt"`
	UpdatedBy        string               `json:"updatedBy"`
}

// PageResponse is a bounded slice of projects plus pagination metadata.
type PageResponse struct {
	Content       []ProjectResponse `json:"content"`
	Page          int               `json:"page"`
	Size          int               `json:"size"`
	TotalElements int64             `json:"totalElements"`
	TotalPages    int               `json:"totalPages"`
}

// ProjectStatistics is the dashboard aggregate. ActiveProjectsChangePercent
// is nil when the month-over-month window could not be computed.
type ProjectStatistics struct {
	TotalProjects               int64    `json:"totalProjects"`
	ActiveProjects              int64    `json:"activeProjects"`
	ActiveProjectsChangePercent *float64 `json:"activeProjectsChangePercent"`
	CompletedProjects           int64    `json:"completedProjects"`
	DraftProjects               int64    `json:"draftProjects"`
	TotalBudget                 float64  `json:"totalBudget"`
	Currency                    string   `json:"currency"`
}
