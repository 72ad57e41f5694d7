package interfaces

import (
	"context"

	domaintypes "safelens/internal/domain/types"
)

// BackendClient is how the client talks to the SafeLens backend service.
type BackendClient interface {
	AnalyzeText(ctx context.Context, text string) (domaintypes.Analysis, error)
	SendAlert(ctx context.Context, contactPhone, triggerMessage string) (domaintypes.AlertReceipt, error)
	Locate(ctx context.Context) (lat, lon float64, err error)
}
