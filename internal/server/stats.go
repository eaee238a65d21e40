package server

import (
	"context"
	"sort"
	"sync"

	"github.com/morezero/interactions/pkg/events"
)

// dispatchStats keeps per-route counters and the most recent dispatches for
// the home page. It is fed by an events.CallbackPublisher.
type dispatchStats struct {
	mu     sync.Mutex
	total  int
	routes map[string]*routeCount
	recent []events.InteractionDispatchedEvent
	keep   int
}

// routeCount is one row of the per-route table.
type routeCount struct {
	Route     string
	Count     int
	Unhandled int
	TotalMs   int64
}

// AvgMs is the mean dispatch duration.
func (c routeCount) AvgMs() int64 {
	if c.Count == 0 {
		return 0
	}
	return c.TotalMs / int64(c.Count)
}

func newDispatchStats(keep int) *dispatchStats {
	return &dispatchStats{routes: make(map[string]*routeCount), keep: keep}
}

func (s *dispatchStats) publisher() events.EventPublisher {
	return events.NewCallbackPublisher(s.record)
}

func (s *dispatchStats) record(_ context.Context, e *events.InteractionDispatchedEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.total++
	c, ok := s.routes[e.Route]
	if !ok {
		c = &routeCount{Route: e.Route}
		s.routes[e.Route] = c
	}
	c.Count++
	c.TotalMs += e.DurationMs
	if !e.Handled {
		c.Unhandled++
	}

	s.recent = append(s.recent, *e)
	if len(s.recent) > s.keep {
		s.recent = s.recent[len(s.recent)-s.keep:]
	}
	return nil
}

// snapshot returns the total, the per-route counters sorted by count, and
// the recent dispatches newest first.
func (s *dispatchStats) snapshot() (int, []routeCount, []events.InteractionDispatchedEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make([]routeCount, 0, len(s.routes))
	for _, c := range s.routes {
		counts = append(counts, *c)
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Route < counts[j].Route
	})

	recent := make([]events.InteractionDispatchedEvent, len(s.recent))
	for i, e := range s.recent {
		recent[len(s.recent)-1-i] = e
	}
	return s.total, counts, recent
}
