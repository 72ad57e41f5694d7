package interfaces

import (
	"context"

	domaintypes "safelens/internal/domain/types"
)

// LocationResolver performs one bounded location lookup. It never fails; a
// denied, failed or slow lookup yields domaintypes.Unavailable.
type LocationResolver interface {
	Resolve(ctx context.Context) domaintypes.Location
}

// AlertDispatcher composes and delivers a duress alert to the trusted contact.
type AlertDispatcher interface {
	Trigger(ctx context.Context, message string) (domaintypes.AlertOutcome, error)
}

// TextAnalyzer classifies free text and fires an alert on the trigger phrase.
type TextAnalyzer interface {
	Analyze(ctx context.Context, text string) (domaintypes.AnalysisResult, error)
}
