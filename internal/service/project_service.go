package service

import (
	"context"
	"log"
	"math"
	"time"

	"github.com/google/uuid"

	"eprocure-backend/internal/dto"
	"eprocure-backend/internal/models"
)

// statisticsCurrency is a fixed display label, independent of the
// per-project currencies.
const statisticsCurrency = "EUR"

// ProjectRepository is the persistence gateway the service orchestrates.
type ProjectRepository interface {
	Create(ctx context.Context, p *models.Project) error
	Save(ctx context.Context, p *models.Project) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	FindPage(ctx context.Context, page, size int) ([]models.Project, int64, error)
	FindPageByStatus(ctx context.Context, status models.ProjectStatus, page, size int) ([]models.Project, int64, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status models.ProjectStatus) (int64, error)
	CountByStatusCreatedAfter(ctx context.Context, status models.ProjectStatus, since time.Time) (int64, error)
	SumBudget(ctx context.Context) (float64, error)
}

// ProjectService holds the business rules for projects: validation of date
// ordering, status and audit stamping, and the dashboard statistics.
type ProjectService struct {
	repo ProjectRepository
	now  func() time.Time
}

func NewProjectService(repo ProjectRepository) *ProjectService {
	return &ProjectService{
		repo: repo,
		now:  time.Now,
	}
}

// Create persists a new project. The entity always starts as DRAFT with the
// given actor stamped as creator and updater, whatever the request carries.
func (s *ProjectService) Create(ctx context.Context, actor string, req dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if err := validateDates(req); err != nil {
		return nil, err
	}

	p, err := dto.ToProject(req)
	if err != nil {
		return nil, err
	}
	p.Status = models.StatusDraft
	p.CreatedBy = actor
	p.UpdatedBy = actor

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	log.Printf("created project %s", p.ID)

	resp := dto.ToResponse(p)
	return &resp, nil
}

// Update rewrites the content fields of an existing project. Id, status and
// creation audit fields are preserved; UpdatedBy is stamped with the actor.
func (s *ProjectService) Update(ctx context.Context, id uuid.UUID, actor string, req dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if err := validateDates(req); err != nil {
		return nil, err
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := dto.ApplyUpdate(req, p); err != nil {
		return nil, err
	}
	p.UpdatedBy = actor

	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	log.Printf("updated project %s", id)

	resp := dto.ToResponse(p)
	return &resp, nil
}

// Get loads a single project by id.
func (s *ProjectService) Get(ctx context.Context, id uuid.UUID) (*dto.ProjectResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.ToResponse(p)
	return &resp, nil
}

// List returns one page of projects, optionally filtered by status. The
// unfiltered listing is ordered by creation time descending.
func (s *ProjectService) List(ctx context.Context, page, size int, status *models.ProjectStatus) (*dto.PageResponse, error) {
	var (
		projects []models.Project
		total    int64
		err      error
	)
	if status != nil {
		projects, total, err = s.repo.FindPageByStatus(ctx, *status, page, size)
	} else {
		projects, total, err = s.repo.FindPage(ctx, page, size)
	}
	if err != nil {
		return nil, err
	}

	resp := dto.ToPageResponse(projects, page, size, total)
	return &resp, nil
}

// Delete removes a project permanently.
func (s *ProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return models.ErrProjectNotFound
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	log.Printf("deleted project %s", id)
	return nil
}

// Statistics computes the dashboard aggregate. The four queries run
// sequentially and are not snapshot-consistent with each other.
func (s *ProjectService) Statistics(ctx context.Context) (*dto.ProjectStatistics, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	active, err := s.repo.CountByStatus(ctx, models.StatusActive)
	if err != nil {
		return nil, err
	}
	completed, err := s.repo.CountByStatus(ctx, models.StatusCompleted)
	if err != nil {
		return nil, err
	}
	draft, err := s.repo.CountByStatus(ctx, models.StatusDraft)
	if err != nil {
		return nil, err
	}

	totalBudget, err := s.repo.SumBudget(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.ProjectStatistics{
		TotalProjects:               total,
		ActiveProjects:              active,
		ActiveProjectsChangePercent: s.activeProjectsChangePercent(ctx),
		CompletedProjects:           completed,
		DraftProjects:               draft,
		TotalBudget:                 totalBudget,
		Currency:                    statisticsCurrency,
	}, nil
}

// activeProjectsChangePercent compares ACTIVE projects created during the
// last month against the month before, anchored at the call instant. The
// result is rounded to one decimal place. Statistics are best effort: on any
// store failure the field is nil instead of failing the whole aggregate.
func (s *ProjectService) activeProjectsChangePercent(ctx context.Context) *float64 {
	thisMonthStart := s.now().AddDate(0, -1, 0)
	lastMonthStart := thisMonthStart.AddDate(0, -1, 0)

	activeThisMonth, err := s.repo.CountByStatusCreatedAfter(ctx, models.StatusActive, thisMonthStart)
	if err != nil {
		log.Printf("warning: active projects change percent unavailable: %v", err)
		return nil
	}
	activeUpToLastMonth, err := s.repo.CountByStatusCreatedAfter(ctx, models.StatusActive, lastMonthStart)
	if err != nil {
		log.Printf("warning: active projects change percent unavailable: %v", err)
		return nil
	}
	activeLastMonth := activeUpToLastMonth - activeThisMonth

	var change float64
	if activeLastMonth == 0 {
		if activeThisMonth > 0 {
			change = 100.0
		}
	} else {
		change = float64(activeThisMonth-activeLastMonth) / float64(activeLastMonth) * 100
		change = math.Round(change*10) / 10
	}
	return &change
}

func validateDates(req dto.CreateProjectRequest) error {
	startDate, err := time.Parse(dto.DateLayout, req.StartDate)
	if err != nil {
		return models.ErrInvalidProjectData
	}
	endDate, err := time.Parse(dto.DateLayout, req.EndDate)
	if err != nil {
		return models.ErrInvalidProjectData
	}
	if endDate.Before(startDate) {
		return models.ErrInvalidProjectData
	}
	return nil
}
