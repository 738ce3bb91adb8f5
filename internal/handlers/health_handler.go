package handlers

import (
	"fmt"
	"net/http"
	"time"
)

type HealthHandler struct {
	version string
	started time.Time
	now     func() time.Time
}

func NewHealthHandler(version string, started time.Time) *HealthHandler {
	return &HealthHandler{version: version, started: started, now: time.Now}
}

// HealthResponse describes the running service.
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Version   string `json:"version" example:"1.0.0"`
	StartTime string `json:"start_time" example:"2025-09-01T10:00:00Z"`
	Uptime    string `json:"uptime" example:"01:02:03"`
}

// Health reports service status, version and uptime
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Version:   h.version,
		StartTime: h.started.Format(time.RFC3339),
		Uptime:    formatUptime(h.now().Sub(h.started)),
	})
}

// formatUptime renders d as hh:mm:ss; hours grow past 24.
func formatUptime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs/60)%60, secs%60)
}

// Welcome answers the root path when no web UI is built.
func Welcome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Welcome to the Expense Manager Service!"})
}
