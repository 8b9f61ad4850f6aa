package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"QuantSentinel/internal/model"
)

// OpenTrade inserts a new OPEN journal entry and returns it.
func (s *Store) OpenTrade(symbol string, tradeType model.TradeType, entry, stopLoss float64) (*model.TradeRecord, error) {
	if tradeType != model.TradeLong && tradeType != model.TradeShort {
		return nil, model.NewError(model.KindValidation, "trade type must be LONG or SHORT, got %q", tradeType)
	}
	if entry <= 0 || stopLoss <= 0 {
		return nil, model.NewError(model.KindValidation,
			"entry and stop loss must be positive, got entry=%.2f stop=%.2f", entry, stopLoss)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	res, err := s.db.Exec(`INSERT INTO paper_trades
		(ticker_symbol, entry_timestamp, trade_type, entry_price, stop_loss_price, status)
		VALUES (?,?,?,?,?,?)`,
		symbol, now.Unix(), string(tradeType), entry, stopLoss, string(model.TradeOpen))
	if err != nil {
		return nil, fmt.Errorf("insert trade: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("trade id: %w", err)
	}

	return &model.TradeRecord{
		ID:        id,
		Symbol:    symbol,
		EnteredAt: now,
		Type:      tradeType,
		Entry:     entry,
		StopLoss:  stopLoss,
		Status:    model.TradeOpen,
	}, nil
}

// ListTrades returns all journal entries, most recent first.
func (s *Store) ListTrades() ([]model.TradeRecord, error) {
	rows, err := s.db.Query(`SELECT id, ticker_symbol, entry_timestamp, trade_type,
		entry_price, stop_loss_price, status, exit_price
		FROM paper_trades ORDER BY entry_timestamp DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query trades: %w", err)
	}
	defer rows.Close()

	var trades []model.TradeRecord
	for rows.Next() {
		rec, err := scanTrade(rows.Scan)
		if err != nil {
			return nil, err
		}
		trades = append(trades, rec)
	}
	return trades, rows.Err()
}

// GetTrade returns one journal entry by id.
func (s *Store) GetTrade(id int64) (*model.TradeRecord, error) {
	row := s.db.QueryRow(`SELECT id, ticker_symbol, entry_timestamp, trade_type,
		entry_price, stop_loss_price, status, exit_price
		FROM paper_trades WHERE id = ?`, id)
	rec, err := scanTrade(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.NewError(model.KindNotFound, "trade %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// CloseTrade records the exit price for an OPEN trade and marks it CLOSED.
// Only OPEN trades may transition; closing a closed trade is a validation
// error, and a trade is never silently created on a lookup miss.
func (s *Store) CloseTrade(id int64, exitPrice float64) (*model.TradeRecord, error) {
	if exitPrice <= 0 {
		return nil, model.NewError(model.KindValidation, "exit price must be positive, got %.2f", exitPrice)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.GetTrade(id)
	if err != nil {
		return nil, err
	}
	if rec.Status != model.TradeOpen {
		return nil, model.NewError(model.KindValidation, "trade %d is already %s", id, rec.Status)
	}

	if _, err := s.db.Exec(`UPDATE paper_trades SET status = ?, exit_price = ? WHERE id = ?`,
		string(model.TradeClosed), exitPrice, id); err != nil {
		return nil, fmt.Errorf("close trade %d: %w", id, err)
	}

	rec.Status = model.TradeClosed
	rec.ExitPrice = &exitPrice
	return rec, nil
}

func scanTrade(scan func(dest ...any) error) (model.TradeRecord, error) {
	var rec model.TradeRecord
	var ts int64
	var tradeType, status string
	var exit sql.NullFloat64
	if err := scan(&rec.ID, &rec.Symbol, &ts, &tradeType,
		&rec.Entry, &rec.StopLoss, &status, &exit); err != nil {
		return rec, err
	}
	rec.EnteredAt = time.Unix(ts, 0)
	rec.Type = model.TradeType(tradeType)
	rec.Status = model.TradeStatus(status)
	if exit.Valid {
		rec.ExitPrice = &exit.Float64
	}
	return rec, nil
}
