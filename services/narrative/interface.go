// File: services/narrative/interface.go
package narrative

import "context"

// TextGenerator is a single synchronous text-generation call: a system
// instruction plus a user prompt in, plain text out. Provider identity and
// credentials are environment configuration, not part of this contract.
type TextGenerator interface {
	GenerateContent(ctx context.Context, system, prompt string) (string, error)
}

// PlanContext is the structured input narrative composition works from. The
// fallback path is built from these fields alone.
type PlanContext struct {
	RaceName         string
	City             string
	DayCount         int
	ExperienceTitles []string
	Interests        []string
	TravellerNote    string
	GroupSize        int
}

// Composer turns a PlanContext into a short human-readable title and summary.
// It never fails: on timeout, provider error or malformed output it falls
// back to deterministic templated text.
type Composer interface {
	Compose(ctx context.Context, pc PlanContext) (title, summary string)
}
