package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"eprocure-backend/internal/models"
)

// ProjectRepository provides persistence operations for projects on top of
// the relational store.
type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts a new project row.
func (r *ProjectRepository) Create(ctx context.Context, p *models.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// Save writes every field of an existing project back to its row.
func (r *ProjectRepository) Save(ctx context.Context, p *models.Project) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// FindByID loads a project by primary key.
func (r *ProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var p models.Project
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrProjectNotFound
		}
		return nil, err
	}
	return &p, nil
}

// ExistsByID reports whether a project row with the given id exists.
func (r *ProjectRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Project{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

// DeleteByID removes the row. Deleting an absent id is not an error here;
// the service checks existence first.
func (r *ProjectRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Project{}, "id = ?", id).Error
}

// FindPage returns one page of projects, most recently created first, plus
// the total row count.
func (r *ProjectRepository) FindPage(ctx context.Context, page, size int) ([]models.Project, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Project{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []models.Project
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(page * size).
		Limit(size).
		Find(&projects).Error
	return projects, total, err
}

// FindPageByStatus returns one page of projects with the given status, in
// store order, plus the total count for that status.
func (r *ProjectRepository) FindPageByStatus(ctx context.Context, status models.ProjectStatus, page, size int) ([]models.Project, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Project{}).
		Where("status = ?", status).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []models.Project
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Offset(page * size).
		Limit(size).
		Find(&projects).Error
	return projects, total, err
}

// Count returns the total number of projects.
func (r *ProjectRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Project{}).Count(&count).Error
	return count, err
}

// CountByStatus returns the number of projects with the given status.
func (r *ProjectRepository) CountByStatus(ctx context.Context, status models.ProjectStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Project{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

// CountByStatusCreatedAfter counts projects with the given status created at
// or after the given instant.
func (r *ProjectRepository) CountByStatusCreatedAfter(ctx context.Context, status models.ProjectStatus, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Project{}).
		Where("status = ? AND created_at >= ?", status, since).
		Count(&count).Error
	return count, err
}

// SumBudget totals the budget column across all rows; zero when the table
// is empty.
func (r *ProjectRepository) SumBudget(ctx context.Context) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).Model(&models.Project{}).
		Select("COALESCE(SUM(budget), 0)").
		Scan(&sum).Error
	return sum, err
}
