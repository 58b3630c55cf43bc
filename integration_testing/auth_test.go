//go:build integration_test || all_tests

package integration_testing

import (
	"context"
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/calisthenix/internal/library"
	"github.com/2beens/calisthenix/internal/users"
)

func (s *IntegrationTestSuite) TestAuth_LoginLogout() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	resp, body := s.doRequest(ctx, http.MethodGet, "/api/auth/user", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"error":"unauthenticated"}`, string(body))

	token := s.doLogin(ctx)

	resp, body = s.doRequest(ctx, http.MethodGet, "/api/auth/user", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var user users.User
	s.decode(body, &user)
	assert.Equal(t, testUserID, user.ID)
	assert.Equal(t, "Integration Tester", user.DisplayName)

	resp, _ = s.doRequest(ctx, http.MethodGet, "/api/logout", token, nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)

	resp, _ = s.doRequest(ctx, http.MethodGet, "/api/auth/user", token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestLibrary_Anonymous() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	resp, body := s.doRequest(ctx, http.MethodGet, "/api/exercises?category=pull", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var entries []library.Entry
	s.decode(body, &entries)
	require.NotEmpty(t, entries)
	for _, e := range entries {
		assert.Equal(t, library.CategoryPull, e.Category)
	}

	resp, body = s.doRequest(ctx, http.MethodGet, "/api/exercises/"+entries[0].Slug, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var entry library.Entry
	s.decode(body, &entry)
	assert.Equal(t, entries[0].ID, entry.ID)

	resp, _ = s.doRequest(ctx, http.MethodGet, "/api/exercises/no-such-exercise", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
