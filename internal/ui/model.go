// Package ui is the calculator surface of the client.
//
// While locked it is a plain keypad. The unlock code reveals the hidden
// view with the trusted contact, the evidence vault and a manual alert key;
// the duress code sends an alert and leaves the calculator as it was. A
// duress alert that fails shows "Error" on the display until the next key,
// the way a calculator reports a bad operation.
package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"safelens/internal/domain"
	"safelens/internal/services/alert"
	"safelens/internal/services/disguise"
)

// Deps are the services the hidden view reads and triggers.
type Deps struct {
	Contacts domain.ContactStore
	Vault    domain.EvidenceVault
	Alerts   domain.AlertDispatcher
}

// KeypadFactory builds the keypad with the reporter the model listens on.
type KeypadFactory func(disguise.Reporter) (*disguise.Machine, error)

type alertMsg struct {
	outcome domain.AlertOutcome
	err     error
	manual  bool
}

type styles struct {
	display lipgloss.Style
	key     lipgloss.Style
	title   lipgloss.Style
	muted   lipgloss.Style
	warn    lipgloss.Style
}

func newStyles() styles {
	return styles{
		display: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(18).
			Align(lipgloss.Right),
		key:   lipgloss.NewStyle().Width(5).Align(lipgloss.Center),
		title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		muted: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		warn:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// Model is the bubbletea model.
type Model struct {
	ctx     context.Context
	deps    Deps
	keypad  *disguise.Machine
	reports chan alertMsg
	styles  styles

	contact *domain.TrustedContact
	entries []domain.VaultEntry
	status  string
	alertOK bool
	failed  bool
}

// New returns a locked calculator.
func New(ctx context.Context, deps Deps, newKeypad KeypadFactory) (Model, error) {
	reports := make(chan alertMsg, 8)
	keypad, err := newKeypad(func(out domain.AlertOutcome, err error) {
		select {
		case reports <- alertMsg{outcome: out, err: err}:
		default:
		}
	})
	if err != nil {
		return Model{}, err
	}
	return Model{
		ctx:     ctx,
		deps:    deps,
		keypad:  keypad,
		reports: reports,
		styles:  newStyles(),
	}, nil
}

// Run starts the TUI and blocks until the user quits.
func Run(ctx context.Context, deps Deps, newKeypad KeypadFactory) error {
	m, err := New(ctx, deps, newKeypad)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithContext(ctx)).Run()
	return err
}

func waitForReport(ch <-chan alertMsg) tea.Cmd {
	return func() tea.Msg { return <-ch }
}

func (m Model) Init() tea.Cmd { return waitForReport(m.reports) }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case alertMsg:
		m.recordAlert(msg)
		if msg.manual {
			return m, nil
		}
		m.failed = msg.err != nil && !m.keypad.Unlocked()
		return m, waitForReport(m.reports)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.keypad.Unlocked() {
			return m.updateHidden(msg)
		}
		return m.updateLocked(msg)
	}
	return m, nil
}

func (m Model) updateLocked(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.failed = false
	switch key := msg.String(); key {
	case "enter", "=":
		if m.keypad.Evaluate(m.ctx) == disguise.UnlockedEvent {
			m.refresh()
		}
	case "c", "C", "esc", "backspace":
		m.keypad.Clear()
	default:
		if len(msg.Runes) == 1 {
			// Non-digits are ignored like an unassigned calculator key.
			_ = m.keypad.Digit(msg.Runes[0])
		}
	}
	return m, nil
}

func (m Model) updateHidden(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "l", "esc":
		_ = m.keypad.Lock()
	case "r":
		m.refresh()
	case "a":
		m.status = "Sending alert..."
		m.alertOK = true
		return m, m.manualAlert()
	}
	return m, nil
}

func (m Model) manualAlert() tea.Cmd {
	ctx, alerts := m.ctx, m.deps.Alerts
	return func() tea.Msg {
		out, err := alerts.Trigger(ctx, alert.ManualMessage)
		return alertMsg{outcome: out, err: err, manual: true}
	}
}

func (m *Model) recordAlert(msg alertMsg) {
	switch {
	case errors.Is(msg.err, domain.ErrMissingContact):
		m.status = "Alert not sent: add a trusted contact first (safelens contact set)."
		m.alertOK = false
	case msg.err != nil:
		m.status = "Alert failed: " + msg.err.Error()
		m.alertOK = false
	default:
		m.status = fmt.Sprintf("Alert sent to %s at %s.", msg.outcome.Message.RecipientPhone, msg.outcome.DeliveredAt.Format("15:04:05"))
		m.alertOK = true
	}
}

func (m *Model) refresh() {
	m.contact = nil
	if c, ok, err := m.deps.Contacts.GetContact(); err != nil {
		m.status = "Could not load contact: " + err.Error()
		m.alertOK = false
	} else if ok {
		m.contact = &c
	}
	entries, err := m.deps.Vault.List()
	if err != nil {
		m.status = "Could not load vault: " + err.Error()
		m.alertOK = false
		return
	}
	m.entries = entries
}

func (m Model) View() string {
	if m.keypad.Unlocked() {
		return m.hiddenView()
	}
	return m.calculatorView()
}

const errorDisplay = "Error"

var keyRows = [][]string{
	{"7", "8", "9"},
	{"4", "5", "6"},
	{"1", "2", "3"},
	{"C", "0", "="},
}

func (m Model) calculatorView() string {
	var b strings.Builder
	display := m.keypad.Buffer()
	if m.failed {
		display = errorDisplay
	}
	b.WriteString(m.styles.display.Render(display))
	b.WriteString("\n")
	for _, row := range keyRows {
		cells := make([]string, len(row))
		for i, k := range row {
			cells[i] = m.styles.key.Render(k)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) hiddenView() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("SafeLens"))
	b.WriteString("\n\n")

	if m.contact != nil {
		fmt.Fprintf(&b, "Trusted contact: %s (%s)\n", m.contact.Name, m.contact.Phone)
	} else {
		b.WriteString(m.styles.warn.Render("No trusted contact. Alerts cannot be sent."))
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nEvidence vault (%d)\n", len(m.entries))
	if len(m.entries) == 0 {
		b.WriteString(m.styles.muted.Render("  empty"))
		b.WriteString("\n")
	}
	for _, e := range m.entries {
		fmt.Fprintf(&b, "  %d  %s  %s\n", e.ID, e.Timestamp, e.Note)
	}

	if m.status != "" {
		b.WriteString("\n")
		if m.alertOK {
			b.WriteString(m.status)
		} else {
			b.WriteString(m.styles.warn.Render(m.status))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.muted.Render("a: alert  r: refresh  l: lock  q: quit"))
	b.WriteString("\n")
	return b.String()
}
