package models

import (
	"time"
)

// Column names of a per-ticker price history file.
const (
	ColDate     = "Date"
	ColOpen     = "Open"
	ColHigh     = "High"
	ColLow      = "Low"
	ColClose    = "Close"
	ColAdjClose = "Adj Close"
	ColVolume   = "Volume"
)

// PricePoint represents one trading day of a ticker
type PricePoint struct {
	Date     time.Time `json:"date"`
	Open     float64   `json:"open"`
	High     float64   `json:"high"`
	Low      float64   `json:"low"`
	Close    float64   `json:"close"`
	AdjClose float64   `json:"adj_close"`
	Volume   int64     `json:"volume,omitempty"`
}

// Column returns the value of a named price column ("Open", "High", "Low",
// "Close" or "Adj Close").
func (p PricePoint) Column(name string) (float64, bool) {
	switch name {
	case ColOpen:
		return p.Open, true
	case ColHigh:
		return p.High, true
	case ColLow:
		return p.Low, true
	case ColClose:
		return p.Close, true
	case ColAdjClose:
		return p.AdjClose, true
	}
	return 0, false
}

// PriceSeries is the chronologically ordered history of one ticker.
// A loaded series is shared through the cache and must not be mutated.
type PriceSeries struct {
	Symbol string       `json:"symbol"`
	Points []PricePoint `json:"points"`
}

// First returns the date of the earliest point
func (s *PriceSeries) First() (time.Time, bool) {
	if len(s.Points) == 0 {
		return time.Time{}, false
	}
	return s.Points[0].Date, true
}

// Last returns the date of the latest point
func (s *PriceSeries) Last() (time.Time, bool) {
	if len(s.Points) == 0 {
		return time.Time{}, false
	}
	return s.Points[len(s.Points)-1].Date, true
}

// CandlePoint is a price point with its date projected to a numeric x value
// (days since 1970-01-01 UTC).
type CandlePoint struct {
	X     float64 `json:"x"`
	Open  float64 `json:"open"`
	High  float64 `json:"high"`
	Low   float64 `json:"low"`
	Close float64 `json:"close"`
}

// TrendPoint is one value of a single price column on a date
type TrendPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}
