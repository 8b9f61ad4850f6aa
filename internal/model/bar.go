package model

import "time"

// Bar represents a single daily OHLC session. Immutable once produced.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// HeikenAshiBar is the smoothed candle derived from a Bar.
// HA open follows a sequential recurrence seeded from the first bar,
// so a slice of these is always computed oldest-to-newest.
type HeikenAshiBar struct {
	Time  time.Time
	Open  float64
	High  float64
	Low   float64
	Close float64
}
