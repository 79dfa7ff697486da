package services

import (
	"sort"
	"strings"
	"time"

	"github.com/epeers/holdings/internal/models"
	"github.com/epeers/holdings/internal/util"
)

// FilterRange returns the points of series dated within [start, end], both
// inclusive. An end given as a calendar date is midnight of that day.
// start after end gives an empty series. The result is a new series; the
// input, which must be sorted by date, is not modified.
func FilterRange(series *models.PriceSeries, start, end time.Time) *models.PriceSeries {
	out := &models.PriceSeries{Symbol: series.Symbol, Points: []models.PricePoint{}}
	if start.After(end) {
		return out
	}

	pts := series.Points
	lo := sort.Search(len(pts), func(i int) bool { return !pts[i].Date.Before(start) })
	hi := sort.Search(len(pts), func(i int) bool { return pts[i].Date.After(end) })
	if lo < hi {
		out.Points = append(out.Points, pts[lo:hi]...)
	}
	return out
}

// ToCandles projects points onto a numeric x axis (days since 1970-01-01 UTC).
func ToCandles(points []models.PricePoint) []models.CandlePoint {
	candles := make([]models.CandlePoint, 0, len(points))
	for _, p := range points {
		candles = append(candles, models.CandlePoint{
			X:     util.DaysSinceEpoch(p.Date),
			Open:  p.Open,
			High:  p.High,
			Low:   p.Low,
			Close: p.Close,
		})
	}
	return candles
}

var priceFields = map[string]string{
	"open":      models.ColOpen,
	"high":      models.ColHigh,
	"low":       models.ColLow,
	"close":     models.ColClose,
	"adj close": models.ColAdjClose,
	"adj_close": models.ColAdjClose,
	"adjclose":  models.ColAdjClose,
}

// ResolvePriceField maps a price column name (any case) to its column; "" is Close.
func ResolvePriceField(field string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(field))
	if f == "" {
		return models.ColClose, nil
	}
	if col, ok := priceFields[f]; ok {
		return col, nil
	}
	return "", &models.InvalidFieldError{
		Field:   field,
		Allowed: []string{models.ColOpen, models.ColHigh, models.ColLow, models.ColClose, models.ColAdjClose},
	}
}

// ProjectColumn returns one price column of points as dated values.
func ProjectColumn(points []models.PricePoint, col string) []models.TrendPoint {
	out := make([]models.TrendPoint, 0, len(points))
	for _, p := range points {
		v, _ := p.Column(col)
		out = append(out, models.TrendPoint{Date: p.Date.Format(models.DateFormat), Value: v})
	}
	return out
}
