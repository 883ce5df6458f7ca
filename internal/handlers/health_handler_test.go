package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentflow/interview/internal/config"
	"talentflow/interview/internal/prompts"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(_ context.Context) error { return p.err }

type stubLLM struct{}

func (stubLLM) GenerateContent(_ context.Context, _ string) (string, error) { return "", nil }
func (stubLLM) GetProviderName() string                                     { return "stub" }

func TestHealthzHandler(t *testing.T) {
	h := NewHealthHandler(nil, nil, nil, nil)

	rec := httptest.NewRecorder()
	h.HealthzHandler(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestReadyzHandlerAllChecksPass(t *testing.T) {
	pm, err := prompts.NewPromptManager()
	require.NoError(t, err)

	h := NewHealthHandler(stubLLM{}, pm, stubPinger{}, &config.Config{})

	rec := httptest.NewRecorder()
	h.ReadyzHandler(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ReadinessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ready", resp.Status)
	for name, check := range resp.Checks {
		assert.Equal(t, "ok", check.Status, "check %s", name)
	}
}

func TestReadyzHandlerStoreDown(t *testing.T) {
	pm, err := prompts.NewPromptManager()
	require.NoError(t, err)

	h := NewHealthHandler(stubLLM{}, pm, stubPinger{err: errors.New("connection refused")}, &config.Config{})

	rec := httptest.NewRecorder()
	h.ReadyzHandler(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp ReadinessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "not_ready", resp.Status)
	assert.Equal(t, "failed", resp.Checks["store"].Status)
	assert.Equal(t, "ok", resp.Checks["provider"].Status)
}

func TestReadyzHandlerMissingProvider(t *testing.T) {
	pm, err := prompts.NewPromptManager()
	require.NoError(t, err)

	h := NewHealthHandler(nil, pm, stubPinger{}, &config.Config{})

	rec := httptest.NewRecorder()
	h.ReadyzHandler(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "AI provider not initialized")
}
