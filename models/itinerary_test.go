package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDay() ItineraryDay {
	return ItineraryDay{
		Date:  "2025-09-06",
		Day:   DaySaturday,
		Label: "Saturday — Qualifying Day",
		Slots: []DaySlot{
			FreeSlot{Start: 480, End: 540, Note: "open — explore on your own"},
			SessionSlot{SessionID: "quali", Start: 540, End: 660, Label: "Qualifying", SessionType: SessionQualifying},
			ExperienceSlot{ExperienceID: "exp-1", Title: "Paddock tour", Start: 660, End: 780, Note: "motorsport, about 2.0 hours"},
		},
	}
}

func TestItineraryDay_JSONRoundTripPreservesSlotKinds(t *testing.T) {
	day := sampleDay()

	data, err := json.Marshal(day)
	require.NoError(t, err)

	var decoded ItineraryDay
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, day, decoded)

	// The discriminator survives; consumers can switch on it exhaustively.
	require.Len(t, decoded.Slots, 3)
	assert.Equal(t, SlotFree, decoded.Slots[0].Kind())
	assert.Equal(t, SlotSession, decoded.Slots[1].Kind())
	assert.Equal(t, SlotExperience, decoded.Slots[2].Kind())
}

func TestItineraryDay_UnknownSlotKindRejected(t *testing.T) {
	raw := `{"date":"2025-09-06","day":"saturday","label":"x","slots":[{"kind":"banquet"}]}`
	var day ItineraryDay
	err := json.Unmarshal([]byte(raw), &day)
	assert.Error(t, err)
}

func TestItineraryDay_SlotWithoutPayloadRejected(t *testing.T) {
	// An experience slot can never lack its experience reference.
	raw := `{"date":"2025-09-06","day":"saturday","label":"x","slots":[{"kind":"experience"}]}`
	var day ItineraryDay
	err := json.Unmarshal([]byte(raw), &day)
	assert.Error(t, err)
}

func TestParseEventDay(t *testing.T) {
	d, ok := ParseEventDay(" Saturday ")
	require.True(t, ok)
	assert.Equal(t, DaySaturday, d)

	_, ok = ParseEventDay("tuesday")
	assert.False(t, ok)
}

func TestDayOrdering(t *testing.T) {
	assert.Less(t, DayIndex(DayThursday), DayIndex(DaySunday))
	assert.Equal(t, -1, DayIndex(EventDay("someday")))
}

func TestMinutesToClock(t *testing.T) {
	assert.Equal(t, "9:00 AM", MinutesToClock(540))
	assert.Equal(t, "12:00 PM", MinutesToClock(720))
	assert.Equal(t, "12:05 AM", MinutesToClock(5))
	assert.Equal(t, "9:30 PM", MinutesToClock(1290))
}
