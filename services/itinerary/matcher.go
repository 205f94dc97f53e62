package itinerary

import (
	"sort"

	"gridtrip/models"
)

// Matcher selects at most one eligible experience per free interval, never
// handing out the same experience twice within one assembly run. It reads the
// candidate pool but never mutates it; consumption is tracked separately and
// threaded through the run in day order.
type Matcher struct {
	pool []models.Experience
	used map[string]bool
}

// NewMatcher wraps a candidate pool. The pool should already be in stable
// catalog order (identifier ascending) for deterministic tie-breaks.
func NewMatcher(pool []models.Experience) *Matcher {
	return &Matcher{
		pool: pool,
		used: make(map[string]bool),
	}
}

// Pick returns the best unused experience that fits the gap, preferring ones
// matching the traveller's interests. An empty interest set matches anything.
// Returns false when nothing fits; callers turn that gap into free time.
func (m *Matcher) Pick(gap models.Interval, interests map[string]bool) (models.Experience, bool) {
	var fitting []models.Experience
	for _, e := range m.pool {
		if m.used[e.ID] {
			continue
		}
		if d := e.DurationMinutes(); d <= 0 || d > gap.Duration() {
			continue
		}
		fitting = append(fitting, e)
	}
	if len(fitting) == 0 {
		return models.Experience{}, false
	}

	candidates := fitting
	if len(interests) > 0 {
		var matching []models.Experience
		for _, e := range fitting {
			if interests[e.Category] {
				matching = append(matching, e)
			}
		}
		// A gap is better filled with something than left empty, so fall back
		// to the full duration-filtered set when no category matches.
		if len(matching) > 0 {
			candidates = matching
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Featured != b.Featured {
			return a.Featured
		}
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
		if a.DurationHours != b.DurationHours {
			return a.DurationHours > b.DurationHours
		}
		return a.ID < b.ID
	})

	best := candidates[0]
	m.used[best.ID] = true
	return best, true
}

// Used reports whether an experience has already been placed in this run.
func (m *Matcher) Used(id string) bool {
	return m.used[id]
}
