package store

import (
	"encoding/json"
	"fmt"
	"time"

	"QuantSentinel/internal/model"
)

// AnalysisRecorder persists finished consensus runs. The Noop
// implementation lets the engine run without a database attached.
type AnalysisRecorder interface {
	RecordAnalysis(res *model.ConsensusResult) error
}

type Noop struct{}

func (Noop) RecordAnalysis(*model.ConsensusResult) error { return nil }

// RecordAnalysis appends one consensus run to the history table. The
// per-indicator breakdown is stored as JSON so the full report can be
// reconstructed later.
func (s *Store) RecordAnalysis(res *model.ConsensusResult) error {
	breakdown, err := json.Marshal(res.Analyses)
	if err != nil {
		return fmt.Errorf("marshal breakdown: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.Exec(`INSERT INTO analysis_results
		(timestamp, ticker_symbol, final_signal, confidence, total_score, latest_close, primary_trend, breakdown)
		VALUES (?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), res.Ticker, string(res.FinalSignal), res.Confidence,
		res.TotalScore, res.LatestClose, res.PrimaryTrend, string(breakdown))
	if err != nil {
		return fmt.Errorf("record analysis for %s: %w", res.Ticker, err)
	}
	return nil
}

// HistoryEntry is one stored consensus run, without the breakdown.
type HistoryEntry struct {
	At          time.Time
	Ticker      string
	FinalSignal model.Signal
	Confidence  string
	TotalScore  int
	LatestClose float64
	Trend       string
}

// RecentHistory returns up to limit stored runs, most recent first.
func (s *Store) RecentHistory(limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(`SELECT timestamp, ticker_symbol, final_signal, confidence,
		total_score, latest_close, primary_trend
		FROM analysis_results ORDER BY timestamp DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var out []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		var ts int64
		var sig string
		if err := rows.Scan(&ts, &e.Ticker, &sig, &e.Confidence,
			&e.TotalScore, &e.LatestClose, &e.Trend); err != nil {
			return nil, err
		}
		e.At = time.Unix(ts, 0)
		e.FinalSignal = model.Signal(sig)
		out = append(out, e)
	}
	return out, rows.Err()
}
