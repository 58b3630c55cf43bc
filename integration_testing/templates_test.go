//go:build integration_test || all_tests

package integration_testing

import (
	"context"
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/calisthenix/internal/templates"
	"github.com/2beens/calisthenix/internal/workouts"
)

func (s *IntegrationTestSuite) TestTemplates_SystemTemplateStartAndDuplicate() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token := s.doLogin(ctx)
	system := templates.SystemTemplates()[0]

	resp, body := s.doRequest(ctx, http.MethodGet, "/api/workout-templates", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var items []templates.ListItem
	s.decode(body, &items)
	require.GreaterOrEqual(t, len(items), len(templates.SystemTemplates()))

	var listed *templates.ListItem
	for i := range items {
		if items[i].ID == system.ID {
			listed = &items[i]
		}
	}
	require.NotNil(t, listed, "system template is listed")
	assert.False(t, listed.IsOwner)
	assert.True(t, listed.IsPublic)
	assert.Equal(t, len(system.Exercises), listed.ExerciseCount)

	// not the owner
	resp, _ = s.doRequest(ctx, http.MethodDelete, "/api/workout-templates/"+system.ID, token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, body = s.doRequest(ctx, http.MethodPost, "/api/workout-templates/"+system.ID+"/start", token, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var started workouts.Workout
	s.decode(body, &started)
	assert.Equal(t, system.Name, started.Name)
	assert.Equal(t, workouts.StatusInProgress, started.Status)

	var exerciseCount int
	require.NoError(t, s.env.DB.QueryRowContext(ctx,
		`SELECT count(*) FROM exercises WHERE workout_id = $1`, started.ID,
	).Scan(&exerciseCount))
	assert.Equal(t, len(system.Exercises), exerciseCount)

	resp, body = s.doRequest(ctx, http.MethodPost, "/api/workout-templates/"+system.ID+"/duplicate", token, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var duplicate templates.ListItem
	s.decode(body, &duplicate)
	assert.NotEqual(t, system.ID, duplicate.ID)
	assert.Equal(t, system.Name+" (Copy)", duplicate.Name)
	assert.Equal(t, testUserID, duplicate.UserID)
	assert.False(t, duplicate.IsPublic)

	resp, body = s.doRequest(ctx, http.MethodGet, "/api/workout-templates/"+duplicate.ID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var detail templates.Template
	s.decode(body, &detail)
	assert.Len(t, detail.Exercises, len(system.Exercises))

	resp, _ = s.doRequest(ctx, http.MethodDelete, "/api/workout-templates/"+duplicate.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = s.doRequest(ctx, http.MethodGet, "/api/workout-templates/"+duplicate.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
