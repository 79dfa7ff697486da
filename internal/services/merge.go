package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/epeers/holdings/internal/models"
	"github.com/epeers/holdings/internal/util"
	log "github.com/sirupsen/logrus"
)

// MergePolicy decides what happens to a symbol found in only one of the two tables.
type MergePolicy string

const (
	// MergePolicyWarn drops the row and records a warning (default)
	MergePolicyWarn MergePolicy = "warn"
	// MergePolicyDrop drops the row silently
	MergePolicyDrop MergePolicy = "drop"
	// MergePolicyStrict fails the merge on the first unmatched symbol
	MergePolicyStrict MergePolicy = "strict"
)

// ParseMergePolicy validates a policy name; "" means MergePolicyWarn.
func ParseMergePolicy(s string) (MergePolicy, error) {
	switch p := MergePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return MergePolicyWarn, nil
	case MergePolicyWarn, MergePolicyDrop, MergePolicyStrict:
		return p, nil
	}
	return "", fmt.Errorf("unknown merge policy %q (allowed: warn, drop, strict)", s)
}

// handleMissing applies the policy to an unmatched key. A non-nil return aborts the merge.
func (p MergePolicy) handleMissing(ctx context.Context, mk *models.MissingKeyError, code models.WarningCode) error {
	switch p {
	case MergePolicyStrict:
		return mk
	case MergePolicyDrop:
		return nil
	}
	log.WithFields(log.Fields{"symbol": mk.Key, "side": mk.Side}).Debug("dropping unmatched symbol from merge")
	AddWarningf(ctx, code, "%s, dropped", mk.Error())
	return nil
}

// MergeProfiles inner-joins the company list and the stock profiles on Symbol.
// The result is keyed by company Name and ordered like the company list.
// Stake is converted with util.ParsePercent, Market Price and Value with
// util.ParseCurrency; the inputs are raw string tables and are not modified.
// A conversion failure aborts the whole merge and names the symbol and column.
// If two companies share a symbol, the first one in the list is kept.
func MergeProfiles(ctx context.Context, companies *models.CompanyList, profiles *models.StockProfiles, policy MergePolicy) (*models.MergedProfiles, error) {
	matched := make(map[string]bool, profiles.Len())
	var rows []models.MergedProfile

	for _, c := range companies.Records() {
		sp, ok := profiles.Get(c.Symbol)
		if c.Symbol == "" || !ok {
			key := c.Symbol
			if key == "" {
				key = c.Name
			}
			mk := &models.MissingKeyError{Key: key, Side: "company list"}
			if err := policy.handleMissing(ctx, mk, models.WarnCompanyWithoutProfile); err != nil {
				return nil, fmt.Errorf("merge: %w", err)
			}
			continue
		}
		if matched[c.Symbol] {
			AddWarningf(ctx, models.WarnDuplicateSymbol, "company %q repeats symbol %q, dropped", c.Name, c.Symbol)
			continue
		}
		matched[c.Symbol] = true

		row, err := convertProfile(c, sp)
		if err != nil {
			return nil, fmt.Errorf("merge: symbol %q: %w", c.Symbol, err)
		}
		rows = append(rows, row)
	}

	for _, sp := range profiles.Profiles() {
		if matched[sp.Symbol] {
			continue
		}
		mk := &models.MissingKeyError{Key: sp.Symbol, Side: "stock profile"}
		if err := policy.handleMissing(ctx, mk, models.WarnProfileWithoutCompany); err != nil {
			return nil, fmt.Errorf("merge: %w", err)
		}
	}

	return models.NewMergedProfiles(rows), nil
}

func convertProfile(c models.CompanyRecord, sp models.StockProfile) (models.MergedProfile, error) {
	stake, err := util.ParsePercent(sp.Stake)
	if err != nil {
		return models.MergedProfile{}, atColumn(err, models.ColStake)
	}
	price, err := util.ParseCurrency(sp.MarketPrice)
	if err != nil {
		return models.MergedProfile{}, atColumn(err, models.ColMarketPrice)
	}
	value, err := util.ParseCurrency(sp.Value)
	if err != nil {
		return models.MergedProfile{}, atColumn(err, models.ColValue)
	}

	return models.MergedProfile{
		Name:         c.Name,
		Symbol:       c.Symbol,
		NumEmployees: c.NumEmployees,
		Stake:        stake,
		MarketPrice:  price,
		Value:        value,
		Sector:       sp.Sector,
		Industry:     sp.Industry,
		Fields:       c.Fields,
	}, nil
}

func atColumn(err error, column string) error {
	var pe *models.ParseError
	if errors.As(err, &pe) {
		return pe.AtCell(pe.Row, column)
	}
	return err
}

// UnknownSymbols returns the merged symbols outside models.KnownTickers, in table order.
func UnknownSymbols(merged *models.MergedProfiles) []string {
	var out []string
	for _, r := range merged.Rows {
		if !models.IsKnownTicker(r.Symbol) {
			out = append(out, r.Symbol)
		}
	}
	return out
}
