package tests

import (
	"errors"
	"testing"

	"github.com/epeers/holdings/internal/models"
	"github.com/epeers/holdings/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func holdingsFixture() *models.MergedProfiles {
	return mergedFixture(
		models.MergedProfile{Name: "Apple", Symbol: "AAPL", Sector: "Technology", Industry: "Consumer Electronics", Value: 120, Stake: 0.4},
		models.MergedProfile{Name: "Bank of America", Symbol: "BAC", Sector: "Financial Services", Industry: "Banks", Value: 30, Stake: 0.1},
		models.MergedProfile{Name: "Coca-Cola", Symbol: "KO", Sector: "Consumer Defensive", Industry: "Beverages", Value: 22, Stake: 0.09},
		models.MergedProfile{Name: "American Express", Symbol: "AXP", Sector: "Financial Services", Industry: "Credit Services", Value: 25, Stake: 0.08},
		models.MergedProfile{Name: "Moody's", Symbol: "MCO", Sector: "Financial Services", Industry: "Capital Markets", Value: 8, Stake: 0.03},
		models.MergedProfile{Name: "Kraft Heinz", Symbol: "KHC", Sector: "Consumer Defensive", Industry: "Packaged Foods", Value: 11, Stake: 0.04},
	)
}

func TestAggregateByCategory_Sector(t *testing.T) {
	merged := holdingsFixture()

	groups, err := services.AggregateByCategory(merged, "Sector")
	require.NoError(t, err)

	// first-seen order
	require.Len(t, groups, 3)
	assert.Equal(t, "Technology", groups[0].Category)
	assert.Equal(t, 1, groups[0].Count)
	assert.Equal(t, "Financial Services", groups[1].Category)
	assert.Equal(t, 3, groups[1].Count)
	assert.InDelta(t, 63.0, groups[1].TotalValue, 1e-9)
	assert.InDelta(t, 0.21, groups[1].TotalStake, 1e-9)
	assert.Equal(t, "Consumer Defensive", groups[2].Category)
	assert.Equal(t, 2, groups[2].Count)

	total := 0
	for _, g := range groups {
		total += g.Count
	}
	assert.Equal(t, merged.Len(), total, "group counts must add up to the table size")
}

func TestAggregateByCategory_IndustryCaseInsensitive(t *testing.T) {
	groups, err := services.AggregateByCategory(holdingsFixture(), "industry")
	require.NoError(t, err)
	assert.Len(t, groups, 6)
	for _, g := range groups {
		assert.Equal(t, 1, g.Count)
	}
}

func TestAggregateByCategory_EmptyTable(t *testing.T) {
	groups, err := services.AggregateByCategory(mergedFixture(), "Sector")
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestAggregateByCategory_EmptyCategoryValueIsAGroup(t *testing.T) {
	merged := mergedFixture(
		models.MergedProfile{Name: "A", Symbol: "A", Sector: ""},
		models.MergedProfile{Name: "B", Symbol: "B", Sector: ""},
	)
	groups, err := services.AggregateByCategory(merged, "Sector")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "", groups[0].Category)
	assert.Equal(t, 2, groups[0].Count)
}

func TestAggregateByCategory_InvalidField(t *testing.T) {
	for _, field := range []string{"Value", "Symbol", ""} {
		_, err := services.AggregateByCategory(holdingsFixture(), field)
		var fe *models.InvalidFieldError
		assert.True(t, errors.As(err, &fe), "field %q: expected InvalidFieldError, got %v", field, err)
	}
}

func TestSortGroups(t *testing.T) {
	groups, err := services.AggregateByCategory(holdingsFixture(), "Sector")
	require.NoError(t, err)

	byCount, err := services.SortGroups(groups, "count")
	require.NoError(t, err)
	assert.Equal(t, []string{"Financial Services", "Consumer Defensive", "Technology"}, categories(byCount))

	byName, err := services.SortGroups(groups, "name")
	require.NoError(t, err)
	assert.Equal(t, []string{"Consumer Defensive", "Financial Services", "Technology"}, categories(byName))

	none, err := services.SortGroups(groups, "none")
	require.NoError(t, err)
	assert.Equal(t, categories(groups), categories(none))

	// input order is untouched
	assert.Equal(t, "Technology", groups[0].Category)

	_, err = services.SortGroups(groups, "value")
	assert.Error(t, err)
}

func TestSortGroups_CountTiesByName(t *testing.T) {
	groups := []models.SectorGroup{
		{Category: "Energy", Count: 2},
		{Category: "Basic Materials", Count: 2},
		{Category: "Utilities", Count: 5},
	}
	sorted, err := services.SortGroups(groups, "count")
	require.NoError(t, err)
	assert.Equal(t, []string{"Utilities", "Basic Materials", "Energy"}, categories(sorted))
}

func categories(groups []models.SectorGroup) []string {
	out := make([]string, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.Category)
	}
	return out
}
