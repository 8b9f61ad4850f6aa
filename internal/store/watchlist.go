package store

import (
	"fmt"
	"strings"
)

// Watchlist returns the watched ticker symbols in insertion order.
func (s *Store) Watchlist() ([]string, error) {
	rows, err := s.db.Query(`SELECT symbol FROM tickers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query watchlist: %w", err)
	}
	defer rows.Close()

	var symbols []string
	for rows.Next() {
		var sym string
		if err := rows.Scan(&sym); err != nil {
			return nil, fmt.Errorf("scan watchlist: %w", err)
		}
		symbols = append(symbols, sym)
	}
	return symbols, rows.Err()
}

// ReplaceWatchlist atomically replaces the watchlist with the given symbols.
// Symbols are uppercased and deduplicated; blanks are dropped.
func (s *Store) ReplaceWatchlist(symbols []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool, len(symbols))
	clean := make([]string, 0, len(symbols))
	for _, sym := range symbols {
		sym = strings.ToUpper(strings.TrimSpace(sym))
		if sym == "" || seen[sym] {
			continue
		}
		seen[sym] = true
		clean = append(clean, sym)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin watchlist tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM tickers`); err != nil {
		return fmt.Errorf("clear watchlist: %w", err)
	}
	for _, sym := range clean {
		if _, err := tx.Exec(`INSERT INTO tickers (symbol) VALUES (?)`, sym); err != nil {
			return fmt.Errorf("insert %s: %w", sym, err)
		}
	}
	return tx.Commit()
}
