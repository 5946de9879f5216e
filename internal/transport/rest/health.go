package rest

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

const probeTimeout = 3 * time.Second

// Check is a named dependency probed by the readiness and health endpoints.
type Check struct {
	Name string
	Ping func(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	checks  []Check
	version string
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler over checks.
func NewHealthHandler(version string, checks ...Check) *HealthHandler {
	return &HealthHandler{checks: checks, version: version, now: time.Now}
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Ready returns 200 when every check passes and 503 otherwise. Checks run
// concurrently and the first failure cancels the rest.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	for _, c := range h.checks {
		g.Go(func() error { return c.Ping(gctx) })
	}

	if err := g.Wait(); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "down", Timestamp: h.now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Health probes every check concurrently and reports each one with its
// latency, or its error when down.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	results := make([]CompStatus, len(h.checks))
	var g errgroup.Group
	for i, c := range h.checks {
		g.Go(func() error {
			start := time.Now()
			if err := c.Ping(ctx); err != nil {
				results[i] = CompStatus{Status: "down", Error: err.Error()}
				return nil
			}
			results[i] = CompStatus{Status: "ok", Latency: time.Since(start).String()}
			return nil
		})
	}
	_ = g.Wait()

	overall, code := "ok", http.StatusOK
	components := make(map[string]CompStatus, len(h.checks))
	for i, c := range h.checks {
		components[c.Name] = results[i]
		if results[i].Status != "ok" {
			overall, code = "down", http.StatusServiceUnavailable
		}
	}

	writeJSON(w, code, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  h.now(),
	})
}
