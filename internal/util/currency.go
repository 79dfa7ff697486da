package util

import (
	"math/big"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/epeers/holdings/internal/models"
	"github.com/shopspring/decimal"
)

// ParseCurrency converts a dollar string such as "$1,234.56" into 1234.56.
// One "$" and the thousands separators are dropped; a sign may appear before
// or after the "$". A repeated "$", an empty separator group or anything else
// left over is a ParseError.
func ParseCurrency(s string) (float64, error) {
	d, err := ParseCurrencyDecimal(s)
	if err != nil {
		return 0, err
	}
	f, _ := d.Float64()
	return f, nil
}

// ParseCurrencyDecimal is ParseCurrency returning the exact decimal amount.
func ParseCurrencyDecimal(s string) (decimal.Decimal, error) {
	fail := func(reason string) (decimal.Decimal, error) {
		return decimal.Zero, &models.ParseError{Kind: "currency", Input: s, Reason: reason}
	}

	var (
		negative   bool
		signSeen   bool
		dollarSeen bool
		afterComma bool // a separator with no digit after it yet
		digits     strings.Builder
		fracCount  int
		inFrac     bool
	)

	for _, r := range strings.TrimSpace(s) {
		switch {
		case r == '$':
			if dollarSeen || digits.Len() > 0 || inFrac {
				return fail("misplaced currency symbol")
			}
			dollarSeen = true
		case r == ',':
			if digits.Len() == 0 || inFrac || afterComma {
				return fail("misplaced thousands separator")
			}
			afterComma = true
		case r == '-' || r == '+':
			if signSeen || digits.Len() > 0 || inFrac {
				return fail("misplaced sign")
			}
			signSeen = true
			negative = r == '-'
		case r == '.':
			if inFrac {
				return fail("second decimal point")
			}
			if afterComma {
				return fail("empty thousands group")
			}
			inFrac = true
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
			afterComma = false
			if inFrac {
				fracCount++
			}
		default:
			return fail("unexpected character " + string(r))
		}
	}

	if digits.Len() == 0 {
		return fail("no digits")
	}
	if afterComma {
		return fail("trailing thousands separator")
	}

	coef, _ := new(big.Int).SetString(digits.String(), 10)
	d := decimal.NewFromBigInt(coef, -int32(fracCount))
	if negative {
		d = d.Neg()
	}
	return d, nil
}

// FormatUSD renders an amount as US dollars ("$1,234.56"), rounded to the cent.
func FormatUSD(amount float64) string {
	cents := decimal.NewFromFloat(amount).Shift(2).Round(0).IntPart()
	return money.New(cents, money.USD).Display()
}
