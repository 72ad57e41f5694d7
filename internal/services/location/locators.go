package location

import (
	"context"

	"safelens/internal/domain"
)

// Static always reports the same coordinates.
type Static struct {
	Lat, Lon float64
}

// Locate returns the configured coordinates.
func (s Static) Locate(ctx context.Context) (float64, float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}
	return s.Lat, s.Lon, nil
}

// Denied models a platform where location permission is switched off.
type Denied struct{}

// Locate always fails with domain.ErrPermissionDenied.
func (Denied) Locate(context.Context) (float64, float64, error) {
	return 0, 0, domain.ErrPermissionDenied
}

// Backend asks the SafeLens backend for its position.
type Backend struct {
	Client domain.BackendClient
}

// Locate delegates to the backend /location endpoint.
func (b Backend) Locate(ctx context.Context) (float64, float64, error) {
	return b.Client.Locate(ctx)
}

var (
	_ domain.Locator = Static{}
	_ domain.Locator = Denied{}
	_ domain.Locator = Backend{}
)
