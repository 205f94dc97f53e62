package itinerary

import (
	"gridtrip/models"

	"go.uber.org/zap"
)

// placedSessions clips a day's sessions to the active window and drops
// anything that cannot be placed: sessions entirely outside the window, and
// sessions overlapping an earlier one. The catalog guarantees sessions do not
// overlap, so an overlap is bad catalog data and is skipped with a warning
// rather than crashing the request. Input must be sorted by start time.
func placedSessions(window models.Interval, sessions []models.FixedSession, logger *zap.Logger) []models.FixedSession {
	var placed []models.FixedSession
	cursor := window.Start

	for _, s := range sessions {
		if s.End <= s.Start {
			logger.Warn("skipping session with non-positive duration",
				zap.String("sessionId", s.ID), zap.Int("start", s.Start), zap.Int("end", s.End))
			continue
		}
		// Sessions entirely outside the day's active window are irrelevant.
		if s.End <= window.Start || s.Start >= window.End {
			continue
		}

		clipped := s
		if clipped.Start < window.Start {
			clipped.Start = window.Start
		}
		if clipped.End > window.End {
			clipped.End = window.End
		}

		if clipped.Start < cursor {
			logger.Warn("skipping overlapping session in catalog data",
				zap.String("sessionId", s.ID), zap.String("label", s.Label),
				zap.Int("start", s.Start), zap.Int("cursor", cursor))
			continue
		}

		placed = append(placed, clipped)
		cursor = clipped.End
	}
	return placed
}

// complementOf returns the intervals of window not covered by the placed
// sessions, which must be sorted, clipped and non-overlapping.
func complementOf(window models.Interval, placed []models.FixedSession) []models.Interval {
	var gaps []models.Interval
	cursor := window.Start
	for _, s := range placed {
		if s.Start > cursor {
			gaps = append(gaps, models.Interval{Start: cursor, End: s.Start})
		}
		cursor = s.End
	}
	if cursor < window.End {
		gaps = append(gaps, models.Interval{Start: cursor, End: window.End})
	}
	return gaps
}

// FreeIntervals computes the free time intervals within window not covered by
// any session, including the stretch before the first session and after the
// last. Intervals shorter than the minimum-useful threshold are still
// reported; they typically fail the matcher's duration test and surface as
// free slots.
func FreeIntervals(window models.Interval, sessions []models.FixedSession, logger *zap.Logger) []models.Interval {
	return complementOf(window, placedSessions(window, sessions, logger))
}
