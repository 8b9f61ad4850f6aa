package scheduler

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"QuantSentinel/internal/analyzer"
	"QuantSentinel/internal/config"
	"QuantSentinel/internal/notifier"
	"QuantSentinel/internal/provider"
	"QuantSentinel/internal/store"
)

func testScheduler(t *testing.T) *Scheduler {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	gate, err := notifier.NewAlertGate(filepath.Join(t.TempDir(), "alerts.json"))
	require.NoError(t, err)

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	an := analyzer.New(&provider.Mock{}, analyzer.DefaultParams())
	return NewScheduler(context.Background(), an, st, st, nil, gate, cfg)
}

// storelessScheduler builds a scheduler with no database, the way main
// degrades when the SQLite file cannot be opened.
func storelessScheduler(t *testing.T) *Scheduler {
	t.Helper()

	gate, err := notifier.NewAlertGate(filepath.Join(t.TempDir(), "alerts.json"))
	require.NoError(t, err)

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	an := analyzer.New(&provider.Mock{}, analyzer.DefaultParams())
	return NewScheduler(context.Background(), an, nil, store.Noop{}, nil, gate, cfg)
}

func TestHandleCommand_Help(t *testing.T) {
	s := testScheduler(t)
	reply := s.HandleCommand("/bogus")
	assert.Contains(t, reply, "/analyze")
	assert.Contains(t, reply, "/size")

	assert.Equal(t, reply, s.HandleCommand(""))
}

func TestHandleCommand_Analyze(t *testing.T) {
	s := testScheduler(t)

	reply := s.HandleCommand("/analyze aapl")
	assert.Contains(t, reply, "AAPL")

	assert.Contains(t, s.HandleCommand("/analyze"), "Usage")

	// The run is recorded to history.
	entries, err := s.Store.RecentHistory(5)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "AAPL", entries[0].Ticker)
}

func TestHandleCommand_Watchlist(t *testing.T) {
	s := testScheduler(t)

	// Empty database falls back to the configured list.
	reply := s.HandleCommand("/watchlist")
	assert.Contains(t, reply, s.Cfg.Watchlist[0])

	s.HandleCommand("/watch nvda amd")
	reply = s.HandleCommand("/watchlist")
	assert.Contains(t, reply, "NVDA, AMD")
}

func TestHandleCommand_Journal(t *testing.T) {
	s := testScheduler(t)

	assert.Contains(t, s.HandleCommand("/journal"), "empty")

	reply := s.HandleCommand("/open aapl long 100 95")
	assert.Contains(t, reply, "Opened trade #1")

	reply = s.HandleCommand("/close 1 120")
	assert.Contains(t, reply, "Closed trade #1")
	assert.Contains(t, reply, "P&L +20.00")

	assert.Contains(t, s.HandleCommand("/close 99 120"), "Failed")
	assert.Contains(t, s.HandleCommand("/open aapl long oops 95"), "numbers")
}

func TestScheduler_WithoutDatabase(t *testing.T) {
	s := storelessScheduler(t)

	// Analysis still works, results go to the noop recorder.
	assert.Contains(t, s.HandleCommand("/analyze aapl"), "AAPL")

	// Watchlist falls back to config.
	reply := s.HandleCommand("/watchlist")
	assert.Contains(t, reply, s.Cfg.Watchlist[0])

	// Journal commands decline instead of crashing.
	for _, cmd := range []string{"/journal", "/watch nvda", "/open aapl long 100 95", "/close 1 120"} {
		assert.Contains(t, s.HandleCommand(cmd), "database", "command %q", cmd)
	}

	// The full scan runs end to end without a store or notifier.
	s.RunScanNow()
}

func TestAnalyzeOne_TradeSetup(t *testing.T) {
	s := testScheduler(t)

	res, err := s.Analyzer.Analyze(s.Ctx, "AAPL")
	require.NoError(t, err)
	s.enrich(res)

	if res.SuggestedStop == nil {
		assert.Nil(t, res.Setup)
		return
	}
	require.NotNil(t, res.Setup)
	assert.Equal(t, res.LatestClose, res.Setup.Entry)
	assert.Equal(t, *res.SuggestedStop, res.Setup.StopLoss)
	assert.Equal(t, s.Cfg.Risk.RRRatio, res.Setup.RRRatio)
}

func TestHandleCommand_Size(t *testing.T) {
	s := testScheduler(t)

	reply := s.HandleCommand("/size 10000 1 50 47.50")
	assert.Contains(t, reply, "Max shares: 40")

	// Two-argument form uses configured account size and risk.
	reply = s.HandleCommand("/size 50 47.50")
	assert.Contains(t, reply, "Max shares")

	assert.Contains(t, s.HandleCommand("/size 10000 1 50 50"), "Sizing failed")
	assert.Contains(t, s.HandleCommand("/size 1 2 3"), "Usage")
}
