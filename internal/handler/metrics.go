package handler

import (
	"fmt"
	"net/http"

	"github.com/sitesmith/sitesmith/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns metrics in Prometheus exposition format.
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeMetric(w, "sitesmith_generations_requested_total %d\n", snap.GenerationsRequested)
	writeMetric(w, "sitesmith_generations_failed_total %d\n", snap.GenerationsFailed)
	writeMetric(w, "sitesmith_completion_duration_seconds_count %d\n", snap.CompletionDurationCount)
	writeMetric(w, "sitesmith_completion_duration_seconds_sum %.6f\n", float64(snap.CompletionDurationTotalNs)/1e9)

	writeMetric(w, "sitesmith_generations_saved_total %d\n", snap.GenerationsSaved)
	writeMetric(w, "sitesmith_generations_deleted_total %d\n", snap.GenerationsDeleted)

	writeMetric(w, "sitesmith_sessions_created_total %d\n", snap.SessionsCreated)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
