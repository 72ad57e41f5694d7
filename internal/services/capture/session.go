package capture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"safelens/internal/crypto"
	"safelens/internal/domain"
	"safelens/internal/util/memzero"
)

// Session is one audio capture lifecycle at a time. It is safe for
// concurrent use.
type Session struct {
	mic   domain.Microphone
	vault domain.EvidenceVault
	mode  domain.SaveMode
	dir   string
	log   *zap.Logger
	now   func() time.Time

	mu      sync.Mutex
	state   domain.CaptureState
	stream  domain.AudioStream
	stop    chan struct{}
	done    chan take
	started time.Time
	pending []byte
}

type take struct {
	chunks [][]int
	err    error
}

// Option configures a Session.
type Option func(*Session)

// WithDownload makes Stop write recordings into dir instead of holding them
// for the vault.
func WithDownload(dir string) Option {
	return func(s *Session) {
		s.mode = domain.SaveAsDownload
		s.dir = dir
	}
}

// WithLogger sets the logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Session) { s.log = log }
}

// WithClock overrides the time source used for download file names.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// NewSession returns an idle session recording from mic into vault.
func NewSession(mic domain.Microphone, vault domain.EvidenceVault, opts ...Option) *Session {
	s := &Session{
		mic:   mic,
		vault: vault,
		mode:  domain.SaveToVault,
		now:   time.Now,
		state: domain.CaptureIdle,
	}
	for _, o := range opts {
		o(s)
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	s.log = s.log.Named("capture")
	return s
}

// State returns the lifecycle state.
func (s *Session) State() domain.CaptureState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Mode returns what Stop does with a finished recording.
func (s *Session) Mode() domain.SaveMode { return s.mode }

// Start opens the microphone and begins collecting chunks. On any error the
// session stays Idle and nothing is captured.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != domain.CaptureIdle {
		return fmt.Errorf("start while %s: %w", s.state, domain.ErrInvalidState)
	}
	stream, err := s.mic.Open(ctx)
	if err != nil {
		s.log.Warn("microphone unavailable", zap.Error(err))
		return err
	}
	s.stream = stream
	s.stop = make(chan struct{})
	s.done = make(chan take, 1)
	s.started = s.now()
	s.state = domain.CaptureRecording
	go collect(stream, s.stop, s.done)

	s.log.Info("recording started", zap.String("mode", string(s.mode)))
	return nil
}

// collect reads chunks until the stream ends or stop is closed. Errors that
// follow a stop request are the stream being closed under the read.
func collect(stream domain.AudioStream, stop <-chan struct{}, done chan<- take) {
	var t take
	for {
		select {
		case <-stop:
			done <- t
			return
		default:
		}
		chunk, err := stream.Read()
		if err != nil {
			select {
			case <-stop:
			default:
				if !errors.Is(err, io.EOF) {
					t.err = err
				}
			}
			done <- t
			return
		}
		t.chunks = append(t.chunks, chunk)
	}
}

// Stop ends the recording, releases the microphone and finalizes the WAV
// payload. In download mode the payload is written as
// evidence-<unix>.wav and the session returns to Idle; otherwise it waits in
// PendingSave. The returned Audio shares the pending buffer, which Save and
// Discard overwrite.
func (s *Session) Stop() (domain.Recording, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != domain.CaptureRecording {
		return domain.Recording{}, fmt.Errorf("stop while %s: %w", s.state, domain.ErrInvalidState)
	}
	close(s.stop)
	closeErr := s.stream.Close()
	t := <-s.done
	format := s.stream.Format()
	s.stream, s.stop, s.done = nil, nil, nil
	s.state = domain.CaptureIdle

	if closeErr != nil {
		s.log.Warn("release microphone", zap.Error(closeErr))
	}
	if t.err != nil {
		s.log.Warn("audio stream ended with error; keeping what was captured", zap.Error(t.err))
	}

	payload, err := encodeWAV(format, t.chunks)
	memzero.Samples(t.chunks)
	if err != nil {
		return domain.Recording{}, fmt.Errorf("finalize recording: %w", err)
	}
	log := s.log.With(
		zap.Duration("elapsed", s.now().Sub(s.started)),
		zap.Int("bytes", len(payload)),
		zap.String("fingerprint", crypto.Fingerprint(payload)),
	)

	if s.mode == domain.SaveAsDownload {
		path, err := s.writeDownload(payload)
		if err != nil {
			return domain.Recording{}, err
		}
		log.Info("recording downloaded", zap.String("path", path))
		return domain.Recording{Audio: payload, Path: path}, nil
	}

	s.pending = payload
	s.state = domain.CapturePendingSave
	log.Info("recording awaiting save")
	return domain.Recording{Audio: payload}, nil
}

func (s *Session) writeDownload(payload []byte) (string, error) {
	dir := s.dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("download recording: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("evidence-%d.wav", s.now().Unix()))
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return "", fmt.Errorf("download recording: %w", err)
	}
	return path, nil
}

// Save appends the pending recording to the vault. A failed append keeps
// the recording pending so the caller can retry or discard.
func (s *Session) Save(note string) (domain.VaultEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != domain.CapturePendingSave {
		return domain.VaultEntry{}, fmt.Errorf("save while %s: %w", s.state, domain.ErrInvalidState)
	}
	entry, err := s.vault.Append(note, s.pending)
	if err != nil {
		return domain.VaultEntry{}, err
	}
	memzero.Zero(s.pending)
	s.pending = nil
	s.state = domain.CaptureIdle
	s.log.Info("recording saved to vault", zap.Int64("entry_id", int64(entry.ID)))
	return entry, nil
}

// Discard drops the pending recording and overwrites its buffer.
func (s *Session) Discard() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != domain.CapturePendingSave {
		return fmt.Errorf("discard while %s: %w", s.state, domain.ErrInvalidState)
	}
	memzero.Zero(s.pending)
	s.pending = nil
	s.state = domain.CaptureIdle
	s.log.Info("recording discarded")
	return nil
}
