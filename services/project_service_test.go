package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"devsfusion-backend/models"
	"devsfusion-backend/utils"
)

func seedProjects(t *testing.T, svc *ProjectService) {
	t.Helper()
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	projects := []models.Project{
		{Title: "Oldest", Description: "d", ImageLink: "img", Featured: true, CreatedAt: base},
		{Title: "Middle", Description: "d", ImageLink: "img", CreatedAt: base.Add(time.Hour)},
		{Title: "Newest", Description: "d", ImageLink: "img", Featured: true, CreatedAt: base.Add(2 * time.Hour)},
	}
	for i := range projects {
		projects[i].TechStack = utils.ToJSONList([]string{"Go"})
		require.NoError(t, svc.Create(&projects[i]))
	}
}

func TestProjectListDefaultSortNewestFirst(t *testing.T) {
	svc := NewProjectService(newTestDB(t))
	seedProjects(t, svc)

	projects, total, err := svc.List(nil, ListQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, projects, 3)
	assert.Equal(t, "Newest", projects[0].Title)
	assert.Equal(t, "Oldest", projects[2].Title)
}

func TestProjectListFeaturedWithLimit(t *testing.T) {
	svc := NewProjectService(newTestDB(t))
	seedProjects(t, svc)

	featured := true
	projects, total, err := svc.List(&featured, ListQuery{Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, projects, 2)
	for _, p := range projects {
		assert.True(t, p.Featured)
	}
	// Newest-first within the featured subset.
	assert.Equal(t, "Newest", projects[0].Title)
}

func TestProjectListEmptyNeverFails(t *testing.T) {
	svc := NewProjectService(newTestDB(t))

	projects, total, err := svc.List(nil, ListQuery{})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.NotNil(t, projects)
	assert.Empty(t, projects)
}

func TestProjectListPagination(t *testing.T) {
	svc := NewProjectService(newTestDB(t))
	seedProjects(t, svc)

	q := ListQuery{Limit: 2, Page: 2}
	projects, total, err := svc.List(nil, q)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, projects, 1)
	assert.Equal(t, 2, q.Normalize().Pages(total))
}

func TestProjectUpdateMergesChanges(t *testing.T) {
	svc := NewProjectService(newTestDB(t))
	seedProjects(t, svc)

	projects, _, err := svc.List(nil, ListQuery{})
	require.NoError(t, err)
	id := projects[0].ID

	updated, err := svc.Update(id, map[string]any{"title": "Renamed", "featured": true})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.True(t, updated.Featured)

	// Untouched fields survive the merge.
	fetched, err := svc.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "d", fetched.Description)
}

func TestProjectUpdateMissingLeavesStoreUnchanged(t *testing.T) {
	svc := NewProjectService(newTestDB(t))
	seedProjects(t, svc)

	_, err := svc.Update(9999, map[string]any{"title": "Ghost"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, total, err := svc.List(nil, ListQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
}

func TestProjectDelete(t *testing.T) {
	svc := NewProjectService(newTestDB(t))
	seedProjects(t, svc)

	projects, _, err := svc.List(nil, ListQuery{})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(projects[0].ID))
	assert.ErrorIs(t, svc.Delete(projects[0].ID), gorm.ErrRecordNotFound)

	_, total, err := svc.List(nil, ListQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
}

func TestOrderClauseWhitelist(t *testing.T) {
	assert.Equal(t, "created_at DESC", orderClause("-createdAt", projectSortKeys))
	assert.Equal(t, "display_order ASC", orderClause("order", projectSortKeys))
	assert.Equal(t, "title DESC", orderClause("-title", projectSortKeys))
	// Unknown keys fall back to newest-first instead of erroring.
	assert.Equal(t, "created_at DESC", orderClause("password; DROP TABLE projects", projectSortKeys))
	assert.Equal(t, "created_at DESC", orderClause("", projectSortKeys))
}
