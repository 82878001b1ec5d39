package services

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Metrics is the observability port handed to controllers: named counters
// plus structured events. Counters are process-local and reset on restart.
type Metrics struct {
	mu       sync.Mutex
	counters map[string]int64
	log      *logrus.Logger
}

func NewMetrics(log *logrus.Logger) *Metrics {
	return &Metrics{
		counters: make(map[string]int64),
		log:      log,
	}
}

// Inc increments a named counter.
func (m *Metrics) Inc(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[name]++
}

// Event records a structured log event.
func (m *Metrics) Event(name string, fields map[string]interface{}) {
	if m.log == nil {
		return
	}
	m.log.WithFields(logrus.Fields(fields)).Info(name)
}

// Snapshot returns a copy of the current counter values.
func (m *Metrics) Snapshot() map[string]int64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string]int64, len(m.counters))
	for name, value := range m.counters {
		out[name] = value
	}
	return out
}
