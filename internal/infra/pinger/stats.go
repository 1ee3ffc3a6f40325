package pinger

import (
	"slices"
	"sync"
	"time"
)

// latencyWindowSize is the number of recent successful ping latencies kept per pinger.
const latencyWindowSize = 50

// latencyWindow keeps the most recent latencies in insertion order.
type latencyWindow struct {
	values []time.Duration
	next   int
}

func (w *latencyWindow) add(d time.Duration) {
	if len(w.values) < latencyWindowSize {
		w.values = append(w.values, d)

		return
	}

	w.values[w.next] = d
	w.next = (w.next + 1) % latencyWindowSize
}

// percentile returns the nearest-rank percentile of the window, or 0 when empty.
func (w *latencyWindow) percentile(p int) time.Duration {
	if len(w.values) == 0 {
		return 0
	}

	sorted := slices.Clone(w.values)
	slices.Sort(sorted)

	rank := (p*len(sorted) + 99) / 100
	if rank < 1 {
		rank = 1
	}

	return sorted[min(rank, len(sorted))-1]
}

// stats is the mutable record of one pinger's results.
type stats struct {
	mu                  sync.Mutex
	lastRun             time.Time
	lastError           error
	lastLatency         time.Duration
	successCount        int64
	errorCount          int64
	consecutiveFailures int
	latencies           latencyWindow
}

func (s *stats) record(at time.Time, latency time.Duration, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastRun = at
	s.lastLatency = latency
	s.lastError = err

	if err != nil {
		s.errorCount++
		s.consecutiveFailures++

		return
	}

	s.successCount++
	s.consecutiveFailures = 0
	s.latencies.add(latency)
}

// Statistics is a point-in-time view of a pinger's results.
type Statistics struct {
	IsReady             bool
	IsHealthy           bool
	LastRun             time.Time
	LastError           error
	LastLatency         time.Duration
	SuccessCount        int64
	ErrorCount          int64
	ConsecutiveFailures int
	LatencyP50          time.Duration
	LatencyP99          time.Duration
}

func (s *stats) snapshot(info *pingerInfo) *Statistics {
	s.mu.Lock()
	defer s.mu.Unlock()

	passing := !s.lastRun.IsZero() && s.lastError == nil

	return &Statistics{
		IsReady:             !info.readyCritical || passing,
		IsHealthy:           !info.healthCritical || passing,
		LastRun:             s.lastRun,
		LastError:           s.lastError,
		LastLatency:         s.lastLatency,
		SuccessCount:        s.successCount,
		ErrorCount:          s.errorCount,
		ConsecutiveFailures: s.consecutiveFailures,
		LatencyP50:          s.latencies.percentile(50),
		LatencyP99:          s.latencies.percentile(99),
	}
}
