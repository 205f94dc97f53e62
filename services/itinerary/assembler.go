package itinerary

import (
	"fmt"
	"sort"

	"gridtrip/models"

	"go.uber.org/zap"
)

// freeSlotNote is the generic note carried by unfilled gaps.
const freeSlotNote = "open — explore on your own"

// PlannerConfig holds the engine tunables. All times are minutes from
// midnight in the event's local timezone.
type PlannerConfig struct {
	DayStart      int // active window start on full days
	DayEnd        int // active window end on full days
	ArrivalTime   int // active window start on the arrival day
	DepartureTime int // active window end on the departure day
	MinGapMinutes int // below this, a leftover gap is folded into its neighbour's note
}

// activeWindow returns the plannable window for one day of the trip.
// Boundary days are trimmed to the configured arrival and departure times.
func activeWindow(cfg PlannerConfig, first, last bool) models.Interval {
	start, end := cfg.DayStart, cfg.DayEnd
	if first && cfg.ArrivalTime > start {
		start = cfg.ArrivalTime
	}
	if last && cfg.DepartureTime < end {
		end = cfg.DepartureTime
	}
	if start >= end {
		// Same-day arrival after departure time leaves nothing to plan.
		return models.Interval{Start: start, End: start}
	}
	return models.Interval{Start: start, End: end}
}

// BuildDaySlots assembles one day's slot sequence: fixed sessions verbatim
// (clipped to the active window), matched experiences left-aligned in their
// gaps, and free slots for everything else. The returned slots are sorted by
// start time and exactly tile the active window.
func BuildDaySlots(cfg PlannerConfig, window models.Interval, sessions []models.FixedSession, m *Matcher, interests map[string]bool, logger *zap.Logger) []models.DaySlot {
	if window.Duration() <= 0 {
		return nil
	}

	placed := placedSessions(window, sessions, logger)
	gaps := complementOf(window, placed)

	slots := make([]models.DaySlot, 0, len(placed)+len(gaps))
	for _, s := range placed {
		slots = append(slots, models.SessionSlot{
			SessionID:   s.ID,
			Start:       s.Start,
			End:         s.End,
			Label:       s.Label,
			SessionType: s.Type,
		})
	}
	for _, gap := range gaps {
		slots = append(slots, fillGap(cfg, gap, m, interests)...)
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Window().Start < slots[j].Window().Start
	})
	return slots
}

// fillGap places at most one experience in the gap. The experience is
// left-aligned and clipped to its own duration; a leftover shorter than the
// minimum-useful threshold is absorbed into the slot (and mentioned in its
// note) so the day still tiles, a longer one becomes a trailing free slot.
func fillGap(cfg PlannerConfig, gap models.Interval, m *Matcher, interests map[string]bool) []models.DaySlot {
	exp, ok := m.Pick(gap, interests)
	if !ok {
		return []models.DaySlot{models.FreeSlot{Start: gap.Start, End: gap.End, Note: freeSlotNote}}
	}

	end := gap.Start + exp.DurationMinutes()
	note := exp.Blurb
	if note == "" {
		note = fmt.Sprintf("%s, about %.1f hours", exp.Category, exp.DurationHours)
	}

	remainder := gap.End - end
	if remainder > 0 && remainder < cfg.MinGapMinutes {
		note = fmt.Sprintf("%s; includes %d min of buffer afterwards", note, remainder)
		end = gap.End
		remainder = 0
	}

	slots := []models.DaySlot{models.ExperienceSlot{
		ExperienceID: exp.ID,
		Title:        exp.Title,
		Start:        gap.Start,
		End:          end,
		Note:         note,
	}}
	if remainder > 0 {
		slots = append(slots, models.FreeSlot{Start: end, End: gap.End, Note: freeSlotNote})
	}
	return slots
}

// dayLabelPriority orders session types by how strongly they characterize a day.
var dayLabelPriority = []string{
	models.SessionRace,
	models.SessionSprint,
	models.SessionQualifying,
	models.SessionPractice,
	models.SessionSupport,
}

var dayLabelNames = map[string]string{
	models.SessionRace:       "Race Day",
	models.SessionSprint:     "Sprint Day",
	models.SessionQualifying: "Qualifying Day",
	models.SessionPractice:   "Practice Day",
	models.SessionSupport:    "Support Races",
}

// dayLabel derives a display label such as "Saturday — Qualifying Day".
func dayLabel(day models.EventDay, sessions []models.FixedSession) string {
	present := make(map[string]bool, len(sessions))
	for _, s := range sessions {
		present[s.Type] = true
	}
	for _, t := range dayLabelPriority {
		if present[t] {
			return fmt.Sprintf("%s — %s", day.Display(), dayLabelNames[t])
		}
	}
	return fmt.Sprintf("%s — Free Day", day.Display())
}
