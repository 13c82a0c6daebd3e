package generator

import "errors"

// Error taxonomy surfaced to the HTTP layer. Validation and quota
// errors are user-actionable; generation and upstream-auth errors map
// to a generic retry-later message.
var (
	// ErrOnboardingIncomplete means the topic or a profile field is
	// missing or malformed.
	ErrOnboardingIncomplete = errors.New("onboarding incomplete")

	// ErrGenerationFailed means the completion call exhausted its
	// retries or returned nothing parsable.
	ErrGenerationFailed = errors.New("keyword generation failed")

	// ErrUpstreamAuth means the completion API rejected our
	// credentials. Fatal, never retried.
	ErrUpstreamAuth = errors.New("completion API credentials rejected")
)

// QuotaError is returned when the usage limit blocks a generation. It
// carries the machine-readable upgrade flag the UI needs.
type QuotaError struct {
	Remaining int
}

func (e *QuotaError) Error() string {
	return "free generation limit reached"
}
