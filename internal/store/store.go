// Package store persists the watchlist, the paper-trade journal, and analysis
// history in SQLite.
package store

import (
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"QuantSentinel/internal/logger"
)

// Store wraps the SQLite database. A mutex serializes writes; reads from
// other processes (dashboards) stay cheap thanks to WAL mode.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Open opens (or creates) the SQLite database and runs migrations.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	logger.Get().Infow("sqlite store opened", "path", dbPath)
	return s, nil
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS tickers (
			id     INTEGER PRIMARY KEY AUTOINCREMENT,
			symbol TEXT NOT NULL UNIQUE
		)`,

		`CREATE TABLE IF NOT EXISTS paper_trades (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			ticker_symbol   TEXT NOT NULL,
			entry_timestamp INTEGER NOT NULL,
			trade_type      TEXT NOT NULL,
			entry_price     REAL NOT NULL,
			stop_loss_price REAL NOT NULL,
			status          TEXT NOT NULL DEFAULT 'OPEN',
			exit_price      REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_trades_symbol ON paper_trades(ticker_symbol)`,
		`CREATE INDEX IF NOT EXISTS idx_trades_status ON paper_trades(status)`,

		`CREATE TABLE IF NOT EXISTS analysis_results (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			ticker_symbol TEXT NOT NULL,
			final_signal  TEXT NOT NULL,
			confidence    TEXT,
			total_score   INTEGER NOT NULL,
			latest_close  REAL,
			primary_trend TEXT,
			breakdown     TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_analysis_symbol ON analysis_results(ticker_symbol)`,
		`CREATE INDEX IF NOT EXISTS idx_analysis_ts ON analysis_results(timestamp)`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	logger.Get().Info("closing sqlite store")
	return s.db.Close()
}
