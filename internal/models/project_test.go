package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeforeCreateAssignsID(t *testing.T) {
	p := &Project{}
	require.NoError(t, p.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, p.ID)

	fixed := uuid.New()
	p = &Project{ID: fixed}
	require.NoError(t, p.BeforeCreate(nil))
	assert.Equal(t, fixed, p.ID)
}

func TestBeforeSaveRejectsInvertedDates(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	p := &Project{StartDate: start, EndDate: end}
	assert.ErrorIs(t, p.BeforeSave(nil), ErrInvalidProjectData)

	p = &Project{StartDate: start, EndDate: start}
	assert.NoError(t, p.BeforeSave(nil))
}

func TestParseProjectStatus(t *testing.T) {
	for _, valid := range []string{"DRAFT", "ACTIVE", "COMPLETED"} {
		status, ok := ParseProjectStatus(valid)
		assert.True(t, ok)
		assert.Equal(t, ProjectStatus(valid), status)
	}

	for _, invalid := range []string{"", "draft", "CANCELLED"} {
		_, ok := ParseProjectStatus(invalid)
		assert.False(t, ok)
	}
}
