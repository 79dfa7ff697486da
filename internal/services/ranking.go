package services

import (
	"sort"
	"strings"

	"github.com/epeers/holdings/internal/models"
)

var rankFields = map[string]string{
	"value":         models.ColValue,
	"stake":         models.ColStake,
	"market price":  models.ColMarketPrice,
	"market_price":  models.ColMarketPrice,
	"num_employees": models.ColNumEmployees,
}

// ResolveRankField maps a numeric field name (any case) to its column.
// Text columns such as Sector are rejected.
func ResolveRankField(field string) (string, error) {
	if col, ok := rankFields[strings.ToLower(strings.TrimSpace(field))]; ok {
		return col, nil
	}
	return "", &models.InvalidFieldError{
		Field:   field,
		Allowed: []string{models.ColValue, models.ColStake, models.ColMarketPrice, models.ColNumEmployees},
	}
}

func rankValue(p models.MergedProfile, col string) float64 {
	switch col {
	case models.ColStake:
		return p.Stake
	case models.ColMarketPrice:
		return p.MarketPrice
	case models.ColNumEmployees:
		return float64(p.NumEmployees)
	}
	return p.Value
}

// TopN returns the n merged rows with the largest value of field, descending.
// Ties keep table order. n larger than the table returns every row, n <= 0
// returns none. The merged table is left untouched.
func TopN(merged *models.MergedProfiles, field string, n int) ([]models.MergedProfile, error) {
	col, err := ResolveRankField(field)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return []models.MergedProfile{}, nil
	}

	rows := make([]models.MergedProfile, len(merged.Rows))
	copy(rows, merged.Rows)
	sort.SliceStable(rows, func(i, j int) bool {
		return rankValue(rows[i], col) > rankValue(rows[j], col)
	})

	if n < len(rows) {
		rows = rows[:n]
	}
	return rows, nil
}
