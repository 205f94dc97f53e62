package narrative

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	reply string
	err   error
	delay time.Duration
}

func (s stubGenerator) GenerateContent(ctx context.Context, system, prompt string) (string, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return s.reply, s.err
}

func monzaContext() PlanContext {
	return PlanContext{
		RaceName:         "Italian Grand Prix",
		City:             "Monza",
		DayCount:         4,
		ExperienceTitles: []string{"Trattoria lunch", "Paddock tour", "Karting"},
		Interests:        []string{"food", "motorsport"},
	}
}

func TestCompose_ParsesWellFormedReply(t *testing.T) {
	c := NewComposer(stubGenerator{
		reply: "TITLE: Monza Flat Out\nSUMMARY: Four days of racing and trattorias.",
	}, time.Second)

	title, summary := c.Compose(context.Background(), monzaContext())
	assert.Equal(t, "Monza Flat Out", title)
	assert.Equal(t, "Four days of racing and trattorias.", summary)
}

func TestCompose_ProviderErrorFallsBack(t *testing.T) {
	c := NewComposer(stubGenerator{err: errors.New("quota exceeded")}, time.Second)

	title, summary := c.Compose(context.Background(), monzaContext())
	wantTitle, wantSummary := Fallback(monzaContext())
	assert.Equal(t, wantTitle, title)
	assert.Equal(t, wantSummary, summary)
}

func TestCompose_TimeoutFallsBack(t *testing.T) {
	c := NewComposer(stubGenerator{
		reply: "TITLE: Too Late\nSUMMARY: Never seen.",
		delay: 500 * time.Millisecond,
	}, 10*time.Millisecond)

	start := time.Now()
	title, _ := c.Compose(context.Background(), monzaContext())
	assert.Less(t, time.Since(start), 400*time.Millisecond, "a slow provider must not stall the request")

	wantTitle, _ := Fallback(monzaContext())
	assert.Equal(t, wantTitle, title)
}

func TestCompose_MalformedReplyFallsBack(t *testing.T) {
	c := NewComposer(stubGenerator{reply: "here is your itinerary!!"}, time.Second)

	title, summary := c.Compose(context.Background(), monzaContext())
	wantTitle, wantSummary := Fallback(monzaContext())
	assert.Equal(t, wantTitle, title)
	assert.Equal(t, wantSummary, summary)
}

func TestFallback_IsDeterministicAndStructured(t *testing.T) {
	pc := monzaContext()

	title, summary := Fallback(pc)
	assert.Equal(t, "Monza Race Weekend Plan", title)
	// The templated summary names the top two chosen experiences.
	assert.Contains(t, summary, "Trattoria lunch")
	assert.Contains(t, summary, "Paddock tour")
	assert.NotContains(t, summary, "Karting")

	again, _ := Fallback(pc)
	assert.Equal(t, title, again)
}

func TestFallback_NoExperiences(t *testing.T) {
	pc := PlanContext{RaceName: "Italian Grand Prix", City: "Monza", DayCount: 2}
	title, summary := Fallback(pc)
	require.Equal(t, "Monza Race Weekend Plan", title)
	assert.Contains(t, summary, "open time")
}
