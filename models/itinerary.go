package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// SlotKind discriminates the day slot union.
type SlotKind string

const (
	SlotSession    SlotKind = "session"
	SlotExperience SlotKind = "experience"
	SlotFree       SlotKind = "free"
)

// DaySlot is a closed union: a slot is a fixed session, a placed experience,
// or an open block of free time. Consumers switch on Kind exhaustively.
type DaySlot interface {
	Kind() SlotKind
	Window() Interval
}

// SessionSlot mirrors a FixedSession verbatim. Immutable once placed.
type SessionSlot struct {
	SessionID   string `json:"sessionId"`
	Start       int    `json:"start"`
	End         int    `json:"end"`
	Label       string `json:"label"`
	SessionType string `json:"sessionType"`
}

func (s SessionSlot) Kind() SlotKind   { return SlotSession }
func (s SessionSlot) Window() Interval { return Interval{Start: s.Start, End: s.End} }

// ExperienceSlot is a recommended placement of a bookable experience.
type ExperienceSlot struct {
	ExperienceID string `json:"experienceId"`
	Title        string `json:"title"`
	Start        int    `json:"start"`
	End          int    `json:"end"`
	Note         string `json:"note,omitempty"`
}

func (s ExperienceSlot) Kind() SlotKind   { return SlotExperience }
func (s ExperienceSlot) Window() Interval { return Interval{Start: s.Start, End: s.End} }

// FreeSlot is an unfilled gap left for the traveller.
type FreeSlot struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Note  string `json:"note,omitempty"`
}

func (s FreeSlot) Kind() SlotKind   { return SlotFree }
func (s FreeSlot) Window() Interval { return Interval{Start: s.Start, End: s.End} }

// ItineraryDay is one calendar day of the plan. Constructed once by the
// assembler; slots are ordered by start time and tile the day's active window.
type ItineraryDay struct {
	Date  string    `json:"date"` // "2006-01-02"
	Day   EventDay  `json:"day"`
	Label string    `json:"label"` // e.g. "Saturday — Qualifying Day"
	Slots []DaySlot `json:"slots"`
}

// Itinerary is the generated, persisted day-by-day plan. Created once,
// stored once, read many times, never updated in place.
type Itinerary struct {
	ID        string         `json:"id"`
	EventID   string         `json:"eventId"`
	Title     string         `json:"title"`
	Summary   string         `json:"summary"`
	Days      []ItineraryDay `json:"days"`
	CreatedAt time.Time      `json:"createdAt"`
}

// slotEnvelope carries the union discriminator across JSON boundaries
// (Redis values and API responses).
type slotEnvelope struct {
	Kind       SlotKind        `json:"kind"`
	Session    *SessionSlot    `json:"session,omitempty"`
	Experience *ExperienceSlot `json:"experience,omitempty"`
	Free       *FreeSlot       `json:"free,omitempty"`
}

func (d ItineraryDay) MarshalJSON() ([]byte, error) {
	envelopes := make([]slotEnvelope, 0, len(d.Slots))
	for _, slot := range d.Slots {
		env := slotEnvelope{Kind: slot.Kind()}
		switch s := slot.(type) {
		case SessionSlot:
			env.Session = &s
		case ExperienceSlot:
			env.Experience = &s
		case FreeSlot:
			env.Free = &s
		default:
			return nil, fmt.Errorf("unknown slot type %T", slot)
		}
		envelopes = append(envelopes, env)
	}
	type alias ItineraryDay
	return json.Marshal(struct {
		alias
		Slots []slotEnvelope `json:"slots"`
	}{alias: alias(d), Slots: envelopes})
}

func (d *ItineraryDay) UnmarshalJSON(data []byte) error {
	type alias ItineraryDay
	aux := struct {
		*alias
		Slots []slotEnvelope `json:"slots"`
	}{alias: (*alias)(d)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	d.Slots = make([]DaySlot, 0, len(aux.Slots))
	for _, env := range aux.Slots {
		switch env.Kind {
		case SlotSession:
			if env.Session == nil {
				return fmt.Errorf("session slot without session payload")
			}
			d.Slots = append(d.Slots, *env.Session)
		case SlotExperience:
			if env.Experience == nil {
				return fmt.Errorf("experience slot without experience payload")
			}
			d.Slots = append(d.Slots, *env.Experience)
		case SlotFree:
			if env.Free == nil {
				return fmt.Errorf("free slot without free payload")
			}
			d.Slots = append(d.Slots, *env.Free)
		default:
			return fmt.Errorf("unknown slot kind %q", env.Kind)
		}
	}
	return nil
}
