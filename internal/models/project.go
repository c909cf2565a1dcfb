package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectStatus string

const (
	StatusDraft     ProjectStatus = "DRAFT"
	StatusActive    ProjectStatus = "ACTIVE"
	StatusCompleted ProjectStatus = "COMPLETED"
)

// ParseProjectStatus maps a raw query value onto a known status.
func ParseProjectStatus(s string) (ProjectStatus, bool) {
	switch ProjectStatus(s) {
	case StatusDraft, StatusActive, StatusCompleted:
		return ProjectStatus(s), true
	}
	return "", false
}

// Project is a procurement project. Audit fields are system-maintained and
// never taken from client input.
type Project struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Title       string  `gorm:"size:255;not null" json:"title"`
	Description string  `gorm:"size:2000;not null" json:"description"`
	Budget      float64 `gorm:"type:decimal(12,2);not null" json:"budget"`
	Currency    string  `gorm:"size:3;not null" json:"currency"`

	StartDate time.Time `gorm:"type:date;not null" json:"startDate"`
	EndDate   time.Time `gorm:"type:date;not null" json:"endDate"`

	Status ProjectStatus `gorm:"type:varchar(20);not null" json:"status"`

	DepartmentID     uuid.UUID `gorm:"type:uuid;not null" json:"departmentId"`
	ProjectManagerID uuid.UUID `gorm:"type:uuid;not null" json:"projectManagerId"`

	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	CreatedBy string    `gorm:"size:255;not null" json:"createdBy"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
	UpdatedBy string    `gorm:"size:255;not null" json:"updatedBy"`
}

// BeforeCreate assigns the id when the caller left it empty.
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// BeforeSave re-checks date ordering on every write. The service validates
// requests up front; this keeps a bad record from ever reaching the table.
func (p *Project) BeforeSave(tx *gorm.DB) error {
	if !p.StartDate.IsZero() && !p.EndDate.IsZero() && p.EndDate.Before(p.StartDate) {
		return ErrInvalidProjectData
	}
	return nil
}
