package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eprocure-backend/internal/models"
)

func TestToProject(t *testing.T) {
	t.Run("populates content fields only", func(t *testing.T) {
		p, err := ToProject(validRequest())
		require.NoError(t, err)

		assert.Equal(t, "Road Repair", p.Title)
		assert.Equal(t, "Repair main road surface", p.Description)
		assert.Equal(t, 50000.00, p.Budget)
		assert.Equal(t, "EUR", p.Currency)
		assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), p.StartDate)
		assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), p.EndDate)
		assert.Equal(t, "0e8dcd2c-8c3f-4b54-9be5-2b156a64f4f5", p.DepartmentID.String())
		assert.Equal(t, "8b37e9c9-92b6-44be-a9a0-43bf243cc547", p.ProjectManagerID.String())

		// id, status and audit fields are the caller's job
		assert.Equal(t, uuid.Nil, p.ID)
		assert.Empty(t, p.Status)
		assert.True(t, p.CreatedAt.IsZero())
		assert.Empty(t, p.CreatedBy)
		assert.Empty(t, p.UpdatedBy)
	})

	t.Run("fails on an unparseable date", func(t *testing.T) {
		req := validRequest()
		req.StartDate = "not-a-date"
		_, err := ToProject(req)
		assert.Error(t, err)
	})
}

func TestApplyUpdatePreservesIdentityAndAudit(t *testing.T) {
	existing := &models.Project{
		ID:        uuid.New(),
		Title:     "Old Title",
		Status:    models.StatusActive,
		CreatedAt: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
		CreatedBy: "alice",
		UpdatedAt: time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC),
		UpdatedBy: "alice",
	}
	id := existing.ID

	req := validRequest()
	req.Title = "Road Repair Phase 2"
	require.NoError(t, ApplyUpdate(req, existing))

	assert.Equal(t, "Road Repair Phase 2", existing.Title)
	assert.Equal(t, id, existing.ID)
	assert.Equal(t, models.StatusActive, existing.Status)
	assert.Equal(t, "alice", existing.CreatedBy)
	assert.Equal(t, time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC), existing.CreatedAt)
	assert.Equal(t, "alice", existing.UpdatedBy)
}

func TestRoundTrip(t *testing.T) {
	req := validRequest()
	p, err := ToProject(req)
	require.NoError(t, err)

	resp := ToResponse(p)

	assert.Equal(t, req.Title, resp.Title)
	assert.Equal(t, req.Description, resp.Description)
	assert.Equal(t, *req.Budget, resp.Budget)
	assert.Equal(t, req.Currency, resp.Currency)
	assert.Equal(t, req.StartDate, resp.StartDate)
	assert.Equal(t, req.EndDate, resp.EndDate)
	assert.Equal(t, req.DepartmentID, resp.DepartmentID)
	assert.Equal(t, req.ProjectManagerID, resp.ProjectManagerID)

	// fields the request cannot set come out as defaults
	assert.Equal(t, uuid.Nil.String(), resp.ID)
	assert.Empty(t, resp.Status)
	assert.Empty(t, resp.CreatedBy)
	assert.Empty(t, resp.UpdatedBy)
}

func TestToPageResponse(t *testing.T) {
	projects := []models.Project{
		{ID: uuid.New(), Title: "First"},
		{ID: uuid.New(), Title: "Second"},
	}

	page := ToPageResponse(projects, 0, 2, 5)
	assert.Len(t, page.Content, 2)
	assert.Equal(t, "First", page.Content[0].Title)
	assert.Equal(t, int64(5), page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)

	empty := ToPageResponse(nil, 0, 10, 0)
	assert.NotNil(t, empty.Content)
	assert.Empty(t, empty.Content)
	assert.Equal(t, 0, empty.TotalPages)
}
