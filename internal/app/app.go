package app

import (
	"safelens/internal/services/disguise"
)

// NewKeypad returns a locked keypad that dispatches duress alerts through
// w.Alerts and hands each outcome to report.
func (w *Wire) NewKeypad(report disguise.Reporter) (*disguise.Machine, error) {
	return disguise.New(
		w.Config.Keypad.UnlockCode,
		w.Config.Keypad.DuressCode,
		w.Alerts,
		disguise.WithReporter(report),
		disguise.WithLogger(w.Log),
	)
}

// Close releases the store.
func (w *Wire) Close() error {
	if w.KV == nil {
		return nil
	}
	return w.KV.Close()
}
