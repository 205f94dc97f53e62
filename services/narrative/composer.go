// File: services/narrative/composer.go
package narrative

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gridtrip/utils"

	"go.uber.org/zap"
)

const systemInstruction = "You write short, upbeat copy for race-weekend travel itineraries. " +
	"Reply with exactly two lines: the first starting with 'TITLE: ' (at most eight words), " +
	"the second starting with 'SUMMARY: ' (one or two sentences)."

// DefaultComposer wraps a TextGenerator with a bounded timeout and a
// deterministic fallback. One external call, no retries; the fallback is
// always acceptable, so callers never see an error.
type DefaultComposer struct {
	Generator TextGenerator
	Timeout   time.Duration
}

// NewComposer builds a Composer over the given generator.
func NewComposer(gen TextGenerator, timeout time.Duration) *DefaultComposer {
	return &DefaultComposer{Generator: gen, Timeout: timeout}
}

func (c *DefaultComposer) Compose(ctx context.Context, pc PlanContext) (string, string) {
	logger := utils.GetLogger()

	tctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	raw, err := c.Generator.GenerateContent(tctx, systemInstruction, buildPrompt(pc))
	if err != nil {
		logger.Warn("narrative generation failed, using fallback", zap.Error(err))
		return Fallback(pc)
	}

	title, summary, ok := parseNarrative(raw)
	if !ok {
		logger.Warn("narrative generation returned malformed output, using fallback",
			zap.String("raw", raw))
		return Fallback(pc)
	}
	return title, summary
}

func buildPrompt(pc PlanContext) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Race: %s in %s.\n", pc.RaceName, pc.City)
	fmt.Fprintf(&sb, "Trip length: %d days.\n", pc.DayCount)
	if len(pc.ExperienceTitles) > 0 {
		fmt.Fprintf(&sb, "Booked experiences: %s.\n", strings.Join(pc.ExperienceTitles, ", "))
	}
	if len(pc.Interests) > 0 {
		fmt.Fprintf(&sb, "Traveller interests: %s.\n", strings.Join(pc.Interests, ", "))
	}
	if pc.GroupSize > 1 {
		fmt.Fprintf(&sb, "Group of %d.\n", pc.GroupSize)
	}
	if pc.TravellerNote != "" {
		fmt.Fprintf(&sb, "Traveller note: %s\n", pc.TravellerNote)
	}
	return sb.String()
}

func parseNarrative(raw string) (string, string, bool) {
	var title, summary string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "TITLE:"):
			title = strings.TrimSpace(strings.TrimPrefix(line, "TITLE:"))
		case strings.HasPrefix(line, "SUMMARY:"):
			summary = strings.TrimSpace(strings.TrimPrefix(line, "SUMMARY:"))
		}
	}
	if title == "" || summary == "" {
		return "", "", false
	}
	return title, summary, true
}

// Fallback builds deterministic title and summary text from the structured
// context alone.
func Fallback(pc PlanContext) (string, string) {
	place := pc.City
	if place == "" {
		place = pc.RaceName
	}
	title := fmt.Sprintf("%s Race Weekend Plan", place)

	var summary string
	switch len(pc.ExperienceTitles) {
	case 0:
		summary = fmt.Sprintf("A %d-day plan built around the %s, with plenty of open time to explore.",
			pc.DayCount, pc.RaceName)
	case 1:
		summary = fmt.Sprintf("A %d-day plan built around the %s, featuring %s.",
			pc.DayCount, pc.RaceName, pc.ExperienceTitles[0])
	default:
		summary = fmt.Sprintf("A %d-day plan built around the %s, featuring %s and %s.",
			pc.DayCount, pc.RaceName, pc.ExperienceTitles[0], pc.ExperienceTitles[1])
	}
	return title, summary
}
