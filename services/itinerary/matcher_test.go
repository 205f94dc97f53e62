package itinerary

import (
	"testing"

	"gridtrip/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func foodInterests() map[string]bool {
	return map[string]bool{models.CategoryFood: true}
}

func TestMatcher_FitInvariant(t *testing.T) {
	m := NewMatcher([]models.Experience{
		{ID: "e1", Title: "Full-day wine tour", Category: models.CategoryFood, DurationHours: 8, Rating: 5},
	})

	_, ok := m.Pick(models.Interval{Start: 540, End: 720}, foodInterests())
	assert.False(t, ok, "an experience longer than the gap must never be placed")
}

func TestMatcher_PreferenceInvariant(t *testing.T) {
	m := NewMatcher([]models.Experience{
		{ID: "e1", Title: "Karting", Category: models.CategoryMotorsport, DurationHours: 2, Rating: 5, Featured: true},
		{ID: "e2", Title: "Street food walk", Category: models.CategoryFood, DurationHours: 2, Rating: 3.5},
	})

	exp, ok := m.Pick(models.Interval{Start: 540, End: 720}, foodInterests())
	require.True(t, ok)
	// A matching experience is available and fits; a non-matching one must not win.
	assert.Equal(t, "e2", exp.ID)
}

func TestMatcher_FallbackToFullSetWhenNoCategoryMatches(t *testing.T) {
	m := NewMatcher([]models.Experience{
		{ID: "e1", Title: "Karting", Category: models.CategoryMotorsport, DurationHours: 2, Rating: 4},
	})

	exp, ok := m.Pick(models.Interval{Start: 540, End: 720}, foodInterests())
	require.True(t, ok, "a gap is better filled with something than left empty")
	assert.Equal(t, "e1", exp.ID)
}

func TestMatcher_EmptyInterestsMatchAnything(t *testing.T) {
	m := NewMatcher([]models.Experience{
		{ID: "e1", Title: "City walk", Category: models.CategorySightseeing, DurationHours: 1, Rating: 4},
	})

	_, ok := m.Pick(models.Interval{Start: 540, End: 720}, map[string]bool{})
	assert.True(t, ok)
}

func TestMatcher_Ranking(t *testing.T) {
	gap := models.Interval{Start: 540, End: 780}
	pool := []models.Experience{
		{ID: "a", Category: models.CategoryFood, DurationHours: 1, Rating: 5},
		{ID: "b", Category: models.CategoryFood, DurationHours: 1, Rating: 3, Featured: true},
		{ID: "c", Category: models.CategoryFood, DurationHours: 2, Rating: 3, Featured: true},
		{ID: "d", Category: models.CategoryFood, DurationHours: 2, Rating: 3, Featured: true},
	}

	m := NewMatcher(pool)

	// Featured beats rating; longer duration breaks the rating tie; id
	// ascending breaks the rest.
	first, _ := m.Pick(gap, foodInterests())
	assert.Equal(t, "c", first.ID)
	second, _ := m.Pick(gap, foodInterests())
	assert.Equal(t, "d", second.ID)
	third, _ := m.Pick(gap, foodInterests())
	assert.Equal(t, "b", third.ID)
	fourth, _ := m.Pick(gap, foodInterests())
	assert.Equal(t, "a", fourth.ID)

	_, ok := m.Pick(gap, foodInterests())
	assert.False(t, ok, "pool exhausted")
}

func TestMatcher_NoDuplicateConsumption(t *testing.T) {
	m := NewMatcher([]models.Experience{
		{ID: "e1", Category: models.CategoryFood, DurationHours: 2, Rating: 5},
		{ID: "e2", Category: models.CategoryFood, DurationHours: 2, Rating: 4},
	})
	gap := models.Interval{Start: 540, End: 720}

	first, ok := m.Pick(gap, foodInterests())
	require.True(t, ok)
	second, ok := m.Pick(gap, foodInterests())
	require.True(t, ok)

	assert.NotEqual(t, first.ID, second.ID)
	assert.True(t, m.Used(first.ID))
	assert.True(t, m.Used(second.ID))
}

func TestMatcher_DoesNotMutatePool(t *testing.T) {
	pool := []models.Experience{
		{ID: "e1", Category: models.CategoryFood, DurationHours: 2, Rating: 5},
	}
	m := NewMatcher(pool)
	m.Pick(models.Interval{Start: 540, End: 720}, foodInterests())

	assert.Equal(t, "e1", pool[0].ID)
	assert.Equal(t, 2.0, pool[0].DurationHours)
}
