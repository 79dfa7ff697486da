package models

import (
	"time"
)

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// CompanyListResponse represents the full company list table
type CompanyListResponse struct {
	Columns   []string        `json:"columns"`
	Count     int             `json:"count"`
	Companies []CompanyRecord `json:"companies"`
}

// ProfileDTO is a merged profile with display strings for the money columns
type ProfileDTO struct {
	MergedProfile
	StakeDisplay       string `json:"stake_display"`
	MarketPriceDisplay string `json:"market_price_display"`
	ValueDisplay       string `json:"value_display"`
}

// ProfilesResponse represents the merged profile table
type ProfilesResponse struct {
	Count    int          `json:"count"`
	Profiles []ProfileDTO `json:"profiles"`
	Warnings []Warning    `json:"warnings,omitempty"`
}

// AllocationRequest represents the query parameters of the allocation endpoint
type AllocationRequest struct {
	Category string `form:"category,default=Sector"`
	Sort     string `form:"sort,default=none"`
}

// AllocationResponse represents holdings grouped by sector or industry
type AllocationResponse struct {
	Category string        `json:"category"`
	Groups   []SectorGroup `json:"groups"`
	Warnings []Warning     `json:"warnings,omitempty"`
}

// TopHoldingsRequest represents the query parameters of the ranking endpoint
type TopHoldingsRequest struct {
	Field string `form:"field,default=Value"`
	N     int    `form:"n,default=10"`
}

// TopHoldingsResponse represents the top-N ranking
type TopHoldingsResponse struct {
	Field    string       `json:"field"`
	N        int          `json:"n"`
	Holdings []ProfileDTO `json:"holdings"`
	Warnings []Warning    `json:"warnings,omitempty"`
}

// TickersResponse lists the tickers with a price history
type TickersResponse struct {
	Tickers []string `json:"tickers"`
}

// PriceTrendRequest represents the query parameters of the trend endpoint
type PriceTrendRequest struct {
	Tickers   string `form:"tickers" binding:"required"`
	Field     string `form:"field"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

// PriceTrendResponse holds one projected series per requested ticker
type PriceTrendResponse struct {
	Field    string                  `json:"field"`
	Series   map[string][]TrendPoint `json:"series"`
	Warnings []Warning               `json:"warnings,omitempty"`
}

// CandlestickRequest represents the query parameters of the candlestick endpoint
type CandlestickRequest struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

// CandlestickResponse holds the filtered series and its numeric-date projection
type CandlestickResponse struct {
	Symbol     string        `json:"symbol"`
	StartDate  string        `json:"start_date"`
	EndDate    string        `json:"end_date"`
	DataPoints int           `json:"data_points"`
	Prices     []PricePoint  `json:"prices"`
	Candles    []CandlePoint `json:"candles"`
	Warnings   []Warning     `json:"warnings,omitempty"`
}

// CacheStats describes the memory cache content
type CacheStats struct {
	Series    int       `json:"series"`
	Tables    int       `json:"tables"`
	ClearedAt time.Time `json:"cleared_at,omitempty"`
}
