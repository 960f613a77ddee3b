package metrics

import (
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	GenerationsRequested      uint64
	GenerationsFailed         uint64
	CompletionDurationCount   uint64
	CompletionDurationTotalNs int64
	GenerationsSaved          uint64
	GenerationsDeleted        uint64
	SessionsCreated           uint64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	generationsRequested      uint64
	generationsFailed         uint64
	completionDurationCount   uint64
	completionDurationTotalNs int64
	generationsSaved          uint64
	generationsDeleted        uint64
	sessionsCreated           uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		GenerationsRequested:      atomic.LoadUint64(&m.generationsRequested),
		GenerationsFailed:         atomic.LoadUint64(&m.generationsFailed),
		CompletionDurationCount:   atomic.LoadUint64(&m.completionDurationCount),
		CompletionDurationTotalNs: atomic.LoadInt64(&m.completionDurationTotalNs),
		GenerationsSaved:          atomic.LoadUint64(&m.generationsSaved),
		GenerationsDeleted:        atomic.LoadUint64(&m.generationsDeleted),
		SessionsCreated:           atomic.LoadUint64(&m.sessionsCreated),
	}
}

// IncGenerationRequested increments the generation request counter.
func (m *InMemoryRecorder) IncGenerationRequested() {
	atomic.AddUint64(&m.generationsRequested, 1)
}

// IncGenerationFailed increments the failed generation counter.
func (m *InMemoryRecorder) IncGenerationFailed() {
	atomic.AddUint64(&m.generationsFailed, 1)
}

// ObserveCompletionDuration records a completion call duration.
func (m *InMemoryRecorder) ObserveCompletionDuration(duration time.Duration) {
	atomic.AddUint64(&m.completionDurationCount, 1)
	atomic.AddInt64(&m.completionDurationTotalNs, duration.Nanoseconds())
}

// IncGenerationSaved increments the saved generation counter.
func (m *InMemoryRecorder) IncGenerationSaved() {
	atomic.AddUint64(&m.generationsSaved, 1)
}

// IncGenerationDeleted increments the deleted generation counter.
func (m *InMemoryRecorder) IncGenerationDeleted() {
	atomic.AddUint64(&m.generationsDeleted, 1)
}

// IncSessionCreated increments the session counter.
func (m *InMemoryRecorder) IncSessionCreated() {
	atomic.AddUint64(&m.sessionsCreated, 1)
}
