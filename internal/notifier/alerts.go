package notifier

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"QuantSentinel/internal/model"
)

// alertState is the persisted dedup record: which ticker/signal pairs
// have already been delivered, and on which day.
type alertState struct {
	Date string            `json:"date"`
	Sent map[string]string `json:"sent"` // ticker -> signal
}

// AlertGate suppresses repeat alerts: each ticker gets at most one
// delivered alert per signal per calendar day. Checking and marking are
// separate so a failed send never burns the day's alert; callers mark
// only after delivery succeeds. State survives restarts via a JSON file.
type AlertGate struct {
	mu    sync.Mutex
	path  string
	state alertState
	now   func() time.Time
}

// NewAlertGate loads existing state from path, starting fresh if the
// file does not exist.
func NewAlertGate(path string) (*AlertGate, error) {
	g := &AlertGate{
		path: path,
		now:  time.Now,
		state: alertState{
			Sent: make(map[string]string),
		},
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return g, nil
		}
		return nil, fmt.Errorf("read alert state: %w", err)
	}
	if err := json.Unmarshal(data, &g.state); err != nil {
		return nil, fmt.Errorf("parse alert state: %w", err)
	}
	if g.state.Sent == nil {
		g.state.Sent = make(map[string]string)
	}
	return g, nil
}

// ShouldAlert reports whether an alert for this ticker/signal is still
// due today. It never records anything; call MarkSent once the alert
// has actually been delivered. HOLD never alerts.
func (g *AlertGate) ShouldAlert(ticker string, sig model.Signal) bool {
	if sig == model.SignalHold {
		return false
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.rollover()
	return g.state.Sent[ticker] != string(sig)
}

// MarkSent records a delivered alert so repeats are suppressed for the
// rest of the day.
func (g *AlertGate) MarkSent(ticker string, sig model.Signal) {
	if sig == model.SignalHold {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.rollover()
	g.state.Sent[ticker] = string(sig)
	g.save()
}

// rollover clears the sent map on the first touch of a new day.
// Callers must hold g.mu.
func (g *AlertGate) rollover() {
	today := g.now().Format("2006-01-02")
	if g.state.Date != today {
		g.state.Date = today
		g.state.Sent = make(map[string]string)
	}
}

// save persists state best-effort; dedup still works in memory if the
// write fails.
func (g *AlertGate) save() {
	data, err := json.MarshalIndent(&g.state, "", "  ")
	if err != nil {
		return
	}
	_ = os.MkdirAll(filepath.Dir(g.path), 0755)
	_ = os.WriteFile(g.path, data, 0644)
}
