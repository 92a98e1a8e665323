package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/lufitapp/lufit/internal/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestRegisterAndLogin() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token, userID := registerUser(ctx, t, "lucia", "s3cret-pass")
	require.NotEmpty(t, token)
	require.Positive(t, userID)

	cases := map[string]struct {
		creds              credentials
		expectedStatusCode int
	}{
		"good creds": {
			creds:              credentials{Username: "lucia", Password: "s3cret-pass"},
			expectedStatusCode: http.StatusOK,
		},
		"username gets lowercased and trimmed": {
			creds:              credentials{Username: "  Lucia ", Password: "s3cret-pass"},
			expectedStatusCode: http.StatusOK,
		},
		"wrong password": {
			creds:              credentials{Username: "lucia", Password: "wrong"},
			expectedStatusCode: http.StatusBadRequest,
		},
		"unknown user": {
			creds:              credentials{Username: "nobody", Password: "s3cret-pass"},
			expectedStatusCode: http.StatusBadRequest,
		},
		"empty password": {
			creds:              credentials{Username: "lucia", Password: ""},
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for name, tc := range cases {
		s.T().Run(name, func(t *testing.T) {
			credsJson, err := json.Marshal(tc.creds)
			require.NoError(t, err)

			req, err := http.NewRequestWithContext(ctx, "POST", fmt.Sprintf("%s/a/login", serverEndpoint), bytes.NewBuffer(credsJson))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tc.expectedStatusCode, resp.StatusCode)
		})
	}
}

func (s *IntegrationTestSuite) TestRegister_usernameTaken() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registerUser(ctx, t, "taken-name", "s3cret-pass")

	credsJson, err := json.Marshal(credentials{Username: "taken-name", Password: "other-pass"})
	require.NoError(t, err)

	req, err := http.NewRequestWithContext(ctx, "POST", fmt.Sprintf("%s/a/register", serverEndpoint), bytes.NewBuffer(credsJson))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestLogout() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token, _ := registerUser(ctx, t, "logout-user", "s3cret-pass")

	// authed request works before logout
	resp := doAuthed(ctx, t, token, "GET", "/routines", nil)
	require.NoError(t, resp.Body.Close())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req, err := http.NewRequestWithContext(ctx, "GET", fmt.Sprintf("%s/a/logout", serverEndpoint), nil)
	require.NoError(t, err)
	req.Header.Set("X-LUFIT-TOKEN", token)

	logoutResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	respBytes, err := io.ReadAll(logoutResp.Body)
	require.NoError(t, err)
	require.NoError(t, logoutResp.Body.Close())
	require.Equal(t, http.StatusOK, logoutResp.StatusCode)
	assert.Equal(t, "logged-out", string(respBytes))

	// the token is dead now
	resp = doAuthed(ctx, t, token, "GET", "/routines", nil)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestProfile() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token, _ := registerUser(ctx, t, "profile-user", "s3cret-pass")

	resp := doAuthed(ctx, t, token, "POST", "/profile", map[string]any{
		"age":            28,
		"weight":         61.5,
		"height":         167,
		"gender":         "female",
		"dailyStepsGoal": 8000,
		"preferredUnit":  "kg",
	})
	require.NoError(t, resp.Body.Close())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	profileResp := doAuthed(ctx, t, token, "GET", "/profile", nil)
	require.Equal(t, http.StatusOK, profileResp.StatusCode)
	profile := decodeBody[users.ProfileResponse](t, profileResp)
	assert.Equal(t, 28, profile.Age)
	assert.Equal(t, 8000, profile.DailyStepsGoal)
	assert.InDelta(t, 22.05, profile.BMI, 0.1)
}
