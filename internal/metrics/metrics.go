// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Generation metrics
	IncGenerationRequested()
	IncGenerationFailed()
	ObserveCompletionDuration(duration time.Duration)

	// Persistence metrics
	IncGenerationSaved()
	IncGenerationDeleted()

	// Session metrics
	IncSessionCreated()
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
