package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ujjwalkirti/leave-marker/internal/config"
)

func respond(w http.ResponseWriter, status int, success bool, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	body := map[string]any{"success": success}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	_ = json.NewEncoder(w).Encode(body)
}

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, true, "Login successful", map[string]any{
			"accessToken": "tok",
			"userId":      7,
			"email":       "amit@acme.example",
			"fullName":    "Amit Rao",
			"role":        "HR_ADMIN",
			"companyId":   3,
		})
	})
	mux.HandleFunc("GET /subscriptions/features", func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, true, "", map[string]any{
			"hasActiveSubscription": true,
			"tier":                  "PRO",
			"planName":              "Pro",
			"maxEmployees":          50,
			"attendanceTracking":    true,
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(t *testing.T, baseURL string) *config.Config {
	t.Helper()
	return &config.Config{
		App: config.AppConfig{Env: "development"},
		API: config.APIConfig{
			BaseURL:         baseURL,
			Mode:            "bearer",
			CredentialsPath: filepath.Join(t.TempDir(), "credentials.json"),
			Timeout:         5 * time.Second,
		},
		Log: config.LogConfig{Level: "error"},
	}
}

func run(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	root := Root(cfg, zerolog.Nop())
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestLoginThenWhoami(t *testing.T) {
	srv := testServer(t)
	cfg := testConfig(t, srv.URL)

	out, err := run(t, cfg, "login", "--email", "amit@acme.example", "--password", "secret")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in as Amit Rao (HR_ADMIN)")

	// A second invocation restores the session from the credentials file.
	out, err = run(t, cfg, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "amit@acme.example")
	assert.Contains(t, out, "Pro (PRO)")
}

func TestWhoamiWithoutLogin(t *testing.T) {
	srv := testServer(t)
	cfg := testConfig(t, srv.URL)

	_, err := run(t, cfg, "whoami")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")
}

func TestMenuFiltersByRole(t *testing.T) {
	srv := testServer(t)
	cfg := testConfig(t, srv.URL)

	_, err := run(t, cfg, "login", "--email", "amit@acme.example", "--password", "secret")
	require.NoError(t, err)

	out, err := run(t, cfg, "menu")
	require.NoError(t, err)
	assert.Contains(t, out, "Employees")
	assert.Contains(t, out, "Reports")
}

func TestCredentialsModeValidation(t *testing.T) {
	api := config.APIConfig{Mode: "bearer"}
	_, err := api.CredentialsMode()
	require.NoError(t, err)

	api.Mode = "cookie"
	_, err = api.CredentialsMode()
	require.NoError(t, err)

	api.Mode = "carrier-pigeon"
	_, err = api.CredentialsMode()
	require.Error(t, err)
}
