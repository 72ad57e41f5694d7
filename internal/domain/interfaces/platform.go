package interfaces

import (
	"context"

	domaintypes "safelens/internal/domain/types"
)

// Locator is the platform position source wrapped by the LocationResolver.
type Locator interface {
	Locate(ctx context.Context) (lat, lon float64, err error)
}

// Launcher hands a URI to the platform's default handler.
type Launcher interface {
	Launch(ctx context.Context, uri string) error
}

// Microphone grants access to an audio input. Open returns
// domaintypes.ErrPermissionDenied when access is refused.
type Microphone interface {
	Open(ctx context.Context) (AudioStream, error)
}

// AudioStream delivers PCM chunks in arrival order. Read returns io.EOF once
// the source is exhausted.
type AudioStream interface {
	Format() domaintypes.AudioFormat
	Read() ([]int, error)
	Close() error
}
