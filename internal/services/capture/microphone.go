package capture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sync"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"safelens/internal/domain"
)

// DefaultChunkSamples is how many samples a WAVFile stream returns per Read.
const DefaultChunkSamples = 4096

// WAVFile plays back a WAV file as a microphone.
type WAVFile struct {
	Path         string
	ChunkSamples int
}

// Open opens the file. An unreadable file counts as a refused permission.
func (w WAVFile) Open(ctx context.Context) (domain.AudioStream, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(w.Path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, domain.ErrPermissionDenied
		}
		return nil, fmt.Errorf("open audio source: %w", err)
	}
	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		_ = f.Close()
		return nil, fmt.Errorf("open audio source: %s is not a PCM WAV file", w.Path)
	}
	n := w.ChunkSamples
	if n <= 0 {
		n = DefaultChunkSamples
	}
	return &wavStream{
		f:   f,
		dec: dec,
		format: domain.AudioFormat{
			SampleRate: int(dec.SampleRate),
			Channels:   int(dec.NumChans),
			BitDepth:   int(dec.BitDepth),
		},
		chunk: n,
	}, nil
}

type wavStream struct {
	mu     sync.Mutex
	f      *os.File
	dec    *wav.Decoder
	format domain.AudioFormat
	chunk  int
	closed bool
}

func (s *wavStream) Format() domain.AudioFormat { return s.format }

func (s *wavStream) Read() ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, io.EOF
	}
	buf := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: s.format.Channels, SampleRate: s.format.SampleRate},
		Data:   make([]int, s.chunk),
	}
	n, err := s.dec.PCMBuffer(buf)
	if n == 0 {
		if err == nil {
			err = io.EOF
		}
		return nil, err
	}
	return buf.Data[:n], nil
}

func (s *wavStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.f.Close()
}

// Denied is a microphone whose permission has been refused.
type Denied struct{}

// Open always fails with domain.ErrPermissionDenied.
func (Denied) Open(context.Context) (domain.AudioStream, error) {
	return nil, domain.ErrPermissionDenied
}

var (
	_ domain.Microphone = WAVFile{}
	_ domain.Microphone = Denied{}
)
