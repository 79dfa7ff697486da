package services

import (
	"sort"
	"strings"

	"github.com/epeers/holdings/internal/models"
	"gonum.org/v1/gonum/floats"
)

// Group orderings accepted by SortGroups
const (
	GroupOrderNone  = "none"
	GroupOrderCount = "count"
	GroupOrderName  = "name"
)

var categoryFields = map[string]string{
	"sector":   models.ColSector,
	"industry": models.ColIndustry,
}

// ResolveCategory maps a category name (any case) to Sector or Industry.
func ResolveCategory(field string) (string, error) {
	if col, ok := categoryFields[strings.ToLower(strings.TrimSpace(field))]; ok {
		return col, nil
	}
	return "", &models.InvalidFieldError{Field: field, Allowed: []string{models.ColSector, models.ColIndustry}}
}

func categoryValue(p models.MergedProfile, col string) string {
	if col == models.ColIndustry {
		return p.Industry
	}
	return p.Sector
}

// AggregateByCategory counts merged holdings per distinct Sector or Industry value.
// Groups come out in first-seen order of the merged table; use SortGroups for
// any other order. TotalValue and TotalStake sum the group's rows.
func AggregateByCategory(merged *models.MergedProfiles, category string) ([]models.SectorGroup, error) {
	col, err := ResolveCategory(category)
	if err != nil {
		return nil, err
	}

	var order []string
	values := make(map[string][]float64)
	stakes := make(map[string][]float64)
	for _, r := range merged.Rows {
		key := categoryValue(r, col)
		if _, seen := values[key]; !seen {
			order = append(order, key)
		}
		values[key] = append(values[key], r.Value)
		stakes[key] = append(stakes[key], r.Stake)
	}

	groups := make([]models.SectorGroup, 0, len(order))
	for _, key := range order {
		groups = append(groups, models.SectorGroup{
			Category:   key,
			Count:      len(values[key]),
			TotalValue: floats.Sum(values[key]),
			TotalStake: floats.Sum(stakes[key]),
		})
	}
	return groups, nil
}

// SortGroups returns a sorted copy of groups.
// "count": holdings descending then category ascending; "name": category
// ascending; "none" or "": unchanged order.
func SortGroups(groups []models.SectorGroup, order string) ([]models.SectorGroup, error) {
	out := make([]models.SectorGroup, len(groups))
	copy(out, groups)

	switch strings.ToLower(strings.TrimSpace(order)) {
	case "", GroupOrderNone:
	case GroupOrderCount:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Count != out[j].Count {
				return out[i].Count > out[j].Count
			}
			return out[i].Category < out[j].Category
		})
	case GroupOrderName:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Category < out[j].Category
		})
	default:
		return nil, &models.InvalidFieldError{Field: order, Allowed: []string{GroupOrderNone, GroupOrderCount, GroupOrderName}}
	}
	return out, nil
}
