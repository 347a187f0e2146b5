package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fastos/internal/config"
	"fastos/internal/models"
	"fastos/services"
)

func newTestRouter(t *testing.T) (*gin.Engine, *services.System) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.AppConfig{}
	cfg.System.Name = "FastOS"
	cfg.System.Version = "2.1.0"
	cfg.Services = []config.ServiceConfig{
		{Name: "alpha", BootDelay: 5 * time.Millisecond, ShutdownDelay: 5 * time.Millisecond},
		{Name: "beta", BootDelay: 10 * time.Millisecond, ShutdownDelay: 5 * time.Millisecond},
	}

	sys := services.NewSystem(cfg)
	router := gin.New()
	NewAPIController(sys).RegisterRoutes(router)
	NewSystemController(sys).RegisterRoutes(router)
	NewServiceController(sys).RegisterRoutes(router)
	return router, sys
}

func doRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestBootEndpoint(t *testing.T) {
	router, sys := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/fastos/api/v1/system/boot", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var detail models.SystemDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, models.SystemOn, detail.State)
	assert.NotEmpty(t, detail.BootTime)
	require.Len(t, detail.Services, 2)
	for _, svc := range detail.Services {
		assert.Equal(t, models.StatusRunning, svc.Status)
	}

	assert.Equal(t, models.SystemOn, sys.Runner.State())
}

func TestBootEndpointConflictWhenAlreadyOn(t *testing.T) {
	router, _ := newTestRouter(t)

	require.Equal(t, http.StatusOK,
		doRequest(router, http.MethodPost, "/fastos/api/v1/system/boot", nil).Code)

	w := doRequest(router, http.MethodPost, "/fastos/api/v1/system/boot", nil)
	require.Equal(t, http.StatusConflict, w.Code)

	var errResp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, "system.not_off", errResp.Code)
}

func TestShutdownEndpoint(t *testing.T) {
	router, sys := newTestRouter(t)

	// shutdown while off is rejected
	w := doRequest(router, http.MethodPost, "/fastos/api/v1/system/shutdown", nil)
	require.Equal(t, http.StatusConflict, w.Code)

	require.Equal(t, http.StatusOK,
		doRequest(router, http.MethodPost, "/fastos/api/v1/system/boot", nil).Code)

	w = doRequest(router, http.MethodPost, "/fastos/api/v1/system/shutdown", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.SystemOff, sys.Runner.State())
}

func TestStateEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/fastos/api/v1/system/state", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var detail models.SystemDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, models.SystemOff, detail.State)
	assert.Equal(t, "FastOS", detail.Name)
	assert.Empty(t, detail.BootTime)
}

func TestCommandEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/fastos/api/v1/command",
		models.CommandRequest{Line: "status"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.CommandResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "status", resp.Line)
	assert.Equal(t, "Off", resp.Response)
}

func TestCommandEndpointUnknownCommand(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/fastos/api/v1/command",
		models.CommandRequest{Line: "reboot"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.CommandResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Unknown command: reboot", resp.Response)
}

func TestCommandEndpointRejectsMalformedBody(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/fastos/api/v1/command", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogsEndpoint(t *testing.T) {
	router, sys := newTestRouter(t)

	sys.Sink.Append("one")
	sys.Sink.Append("two")
	sys.Sink.Append("three")

	w := doRequest(router, http.MethodGet, "/fastos/api/v1/logs", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var entries []models.LogEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 3)
	assert.Equal(t, "one", entries[0].Text)

	w = doRequest(router, http.MethodGet, "/fastos/api/v1/logs?since=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	entries = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "three", entries[0].Text)

	w = doRequest(router, http.MethodGet, "/fastos/api/v1/logs?since=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListServicesEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/fastos/api/v1/services", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var details []models.ServiceDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &details))
	require.Len(t, details, 2)
	assert.Equal(t, "alpha", details[0].Name)
	assert.Equal(t, "beta", details[1].Name)
}

func TestGetServiceEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/fastos/api/v1/services/alpha", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var detail models.ServiceDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, "alpha", detail.Name)
	assert.Equal(t, models.StatusStopped, detail.Status)

	w = doRequest(router, http.MethodGet, "/fastos/api/v1/services/nonexistent", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var errResp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, "service.notexist", errResp.Code)
}

func TestHealthzEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var health models.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "UP", health.Status)
	assert.Equal(t, "2.1.0", health.Version)
	assert.Zero(t, health.Metrics.RunningServices)
}
