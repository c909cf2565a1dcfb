package dto

import (
	"time"

	"github.com/google/uuid"

	"eprocure-backend/internal/models"
)

// ToProject builds a new entity from a create request. Only content fields
// are populated; id, status and audit fields stay at their zero values for
// the service to fill in.
func ToProject(r CreateProjectRequest) (*models.Project, error) {
	p := &models.Project{}
	if err := ApplyUpdate(r, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ApplyUpdate copies the content fields of a request onto an existing
// entity, leaving id, status and audit fields untouched.
func ApplyUpdate(r CreateProjectRequest, p *models.Project) error {
	startDate, err := time.Parse(DateLayout, r.StartDate)
	if err != nil {
		return err
	}
	endDate, err := time.Parse(DateLayout, r.EndDate)
	if err != nil {
		return err
	}
	departmentID, err := uuid.Parse(r.DepartmentID)
	if err != nil {
		return err
	}
	managerID, err := uuid.Parse(r.ProjectManagerID)
	if err != nil {
		return err
	}

	p.Title = r.Title
	p.Description = r.Description
	if r.Budget != nil {
		p.Budget = *r.Budget
	}
	p.Currency = r.Currency
	p.StartDate = startDate
	p.EndDate = endDate
	p.DepartmentID = departmentID
	p.ProjectManagerID = managerID
	return nil
}

// ToResponse copies every entity attribute onto the wire shape.
func ToResponse(p *models.Project) ProjectResponse {
	return ProjectResponse{
		ID:               p.ID.String(),
		Title:            p.Title,
		Description:      p.Description,
		Budget:           p.Budget,
		Currency:         p.Currency,
		StartDate:        p.StartDate.Format(DateLayout),
		EndDate:          p.EndDate.Format(DateLayout),
		Status:           p.Status,
		DepartmentID:     p.DepartmentID.String(),
		ProjectManagerID: p.ProjectManagerID.String(),
		CreatedAt:        p.CreatedAt,
		CreatedBy:        p.CreatedBy,
		UpdatedAt:        p.UpdatedAt,
		UpdatedBy:        p.UpdatedBy,
	}
}

// ToPageResponse maps a page of entities plus store-reported totals.
func ToPageResponse(projects []models.Project, page, size int, total int64) PageResponse {
	content := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		content = append(content, ToResponse(&projects[i]))
	}

	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}

	return PageResponse{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}
