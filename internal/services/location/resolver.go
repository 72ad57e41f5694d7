package location

import (
	"context"
	"time"

	"go.uber.org/zap"

	"safelens/internal/domain"
)

// DefaultTimeout bounds a lookup when the resolver is built with zero.
const DefaultTimeout = 10 * time.Second

// Resolver performs bounded lookups against a Locator.
type Resolver struct {
	locator domain.Locator
	timeout time.Duration
	log     *zap.Logger
}

// NewResolver returns a Resolver that waits at most timeout for locator.
func NewResolver(locator domain.Locator, timeout time.Duration, log *zap.Logger) *Resolver {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{locator: locator, timeout: timeout, log: log.Named("location")}
}

type fix struct {
	lat, lon float64
	err      error
}

// Resolve asks the locator once and returns its position, or
// domain.Unavailable on any failure or when the timeout expires first.
func (r *Resolver) Resolve(ctx context.Context) domain.Location {
	if r.locator == nil {
		return domain.Unavailable
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	// Buffered so a locator that ignores ctx can still finish and exit.
	done := make(chan fix, 1)
	go func() {
		lat, lon, err := r.locator.Locate(ctx)
		done <- fix{lat: lat, lon: lon, err: err}
	}()

	select {
	case f := <-done:
		if f.err != nil {
			r.log.Warn("location unavailable", zap.Error(f.err))
			return domain.Unavailable
		}
		return domain.Located(f.lat, f.lon)
	case <-ctx.Done():
		r.log.Warn("location lookup timed out", zap.Duration("timeout", r.timeout))
		return domain.Unavailable
	}
}

// Compile-time assertion that Resolver implements domain.LocationResolver.
var _ domain.LocationResolver = (*Resolver)(nil)
