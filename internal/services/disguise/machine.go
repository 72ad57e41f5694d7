package disguise

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"safelens/internal/domain"
	"safelens/internal/services/alert"
)

// Default keypad codes.
const (
	DefaultUnlockCode = "1111"
	DefaultDuressCode = "222"
)

const emptyBuffer = "0"

// State is the visibility of the hidden view.
type State int

const (
	Locked State = iota
	Unlocked
)

func (s State) String() string {
	if s == Unlocked {
		return "unlocked"
	}
	return "locked"
}

// Event is what an Evaluate call did.
type Event int

const (
	// Cleared means the buffer matched no code and was reset.
	Cleared Event = iota
	// UnlockedEvent means the unlock code was entered.
	UnlockedEvent
	// DuressEvent means the duress code was entered and an alert dispatched.
	DuressEvent
)

func (e Event) String() string {
	switch e {
	case UnlockedEvent:
		return "unlocked"
	case DuressEvent:
		return "duress"
	default:
		return "cleared"
	}
}

// Reporter receives the outcome of a duress dispatch.
type Reporter func(domain.AlertOutcome, error)

// Machine is the keypad state machine. It is safe for concurrent use.
type Machine struct {
	mu     sync.Mutex
	state  State
	buffer string

	unlockCode string
	duressCode string

	dispatcher domain.AlertDispatcher
	run        func(func())
	report     Reporter
	log        *zap.Logger
}

// Option configures a Machine.
type Option func(*Machine)

// WithRunner replaces how duress dispatches are scheduled. The default runs
// each one on its own goroutine; tests pass a synchronous runner.
func WithRunner(run func(func())) Option {
	return func(m *Machine) { m.run = run }
}

// WithReporter registers a callback for duress dispatch outcomes.
func WithReporter(r Reporter) Option {
	return func(m *Machine) { m.report = r }
}

// WithLogger sets the logger.
func WithLogger(log *zap.Logger) Option {
	return func(m *Machine) { m.log = log }
}

// New returns a locked Machine. Both codes must be non-empty digit strings
// and must differ.
func New(unlockCode, duressCode string, dispatcher domain.AlertDispatcher, opts ...Option) (*Machine, error) {
	if err := ValidateCodes(unlockCode, duressCode); err != nil {
		return nil, err
	}
	m := &Machine{
		state:      Locked,
		buffer:     emptyBuffer,
		unlockCode: unlockCode,
		duressCode: duressCode,
		dispatcher: dispatcher,
		run:        func(f func()) { go f() },
	}
	for _, o := range opts {
		o(m)
	}
	if m.log == nil {
		m.log = zap.NewNop()
	}
	m.log = m.log.Named("keypad")
	return m, nil
}

// ValidateCodes checks a pair of keypad codes.
func ValidateCodes(unlockCode, duressCode string) error {
	if !isDigits(unlockCode) {
		return &domain.ValidationError{Field: "unlock_code", Message: "must be one or more digits"}
	}
	if !isDigits(duressCode) {
		return &domain.ValidationError{Field: "duress_code", Message: "must be one or more digits"}
	}
	if unlockCode == duressCode {
		return &domain.ValidationError{Field: "duress_code", Message: "must differ from the unlock code"}
	}
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Digit appends d to the buffer, replacing the lone "0" placeholder.
// Anything other than '0'..'9' is rejected and leaves the machine unchanged.
func (m *Machine) Digit(d rune) error {
	if d < '0' || d > '9' {
		return &domain.ValidationError{Field: "digit", Message: "keypad accepts 0-9 only"}
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.buffer == emptyBuffer {
		m.buffer = string(d)
	} else {
		m.buffer += string(d)
	}
	return nil
}

// Clear resets the buffer to "0".
func (m *Machine) Clear() {
	m.mu.Lock()
	m.buffer = emptyBuffer
	m.mu.Unlock()
}

// Evaluate compares the buffer against the configured codes and always
// resets it. On the duress code the alert is dispatched without waiting for
// it; ctx cancellation does not abort a dispatch already started.
func (m *Machine) Evaluate(ctx context.Context) Event {
	m.mu.Lock()
	entered := m.buffer
	m.buffer = emptyBuffer

	var ev Event
	switch entered {
	case m.unlockCode:
		m.state = Unlocked
		ev = UnlockedEvent
	case m.duressCode:
		m.state = Locked
		ev = DuressEvent
	default:
		ev = Cleared
	}
	m.mu.Unlock()

	if ev == DuressEvent {
		m.dispatchDuress(context.WithoutCancel(ctx))
	}
	m.log.Debug("keypad evaluated", zap.Stringer("event", ev))
	return ev
}

func (m *Machine) dispatchDuress(ctx context.Context) {
	if m.dispatcher == nil {
		m.log.Error("duress code entered but no dispatcher is configured")
		if m.report != nil {
			m.report(domain.AlertOutcome{}, fmt.Errorf("no dispatcher: %w", domain.ErrInvalidState))
		}
		return
	}
	m.run(func() {
		out, err := m.dispatcher.Trigger(ctx, alert.DuressMessage)
		if err != nil {
			m.log.Warn("duress alert failed", zap.Error(err))
		}
		if m.report != nil {
			m.report(out, err)
		}
	})
}

// Lock hides the view again. It fails with domain.ErrNotUnlocked when the
// machine is already locked.
func (m *Machine) Lock() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != Unlocked {
		return domain.ErrNotUnlocked
	}
	m.state = Locked
	m.buffer = emptyBuffer
	return nil
}

// State returns the current state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Unlocked reports whether the hidden view is showing.
func (m *Machine) Unlocked() bool { return m.State() == Unlocked }

// Buffer returns the keypad display.
func (m *Machine) Buffer() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.buffer
}
