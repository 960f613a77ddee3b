package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncGenerationRequested is a no-op.
func (n *NoopRecorder) IncGenerationRequested() {}

// IncGenerationFailed is a no-op.
func (n *NoopRecorder) IncGenerationFailed() {}

// ObserveCompletionDuration is a no-op.
func (n *NoopRecorder) ObserveCompletionDuration(duration time.Duration) {}

// IncGenerationSaved is a no-op.
func (n *NoopRecorder) IncGenerationSaved() {}

// IncGenerationDeleted is a no-op.
func (n *NoopRecorder) IncGenerationDeleted() {}

// IncSessionCreated is a no-op.
func (n *NoopRecorder) IncSessionCreated() {}
