package util

import (
	"math/big"
	"strings"

	"github.com/epeers/holdings/internal/models"
	"github.com/shopspring/decimal"
)

type percentState int

const (
	pctStart percentState = iota
	pctSign
	pctInt
	pctPoint
	pctFrac
	pctDone
)

// ParsePercent converts a percentage string such as "12.5%" or "-3%" into a
// signed fraction (0.125, -0.03).
// The point is moved two places left in decimal space, so "-3.5%" yields the
// float64 nearest to -0.035 and not the result of -3.5/100.
func ParsePercent(s string) (float64, error) {
	d, err := ParsePercentDecimal(s)
	if err != nil {
		return 0, err
	}
	f, _ := d.Float64()
	return f, nil
}

// ParsePercentDecimal is ParsePercent returning the exact decimal fraction.
//
// Grammar: [+|-] digits [ "." digits ] "%", with at least one digit overall.
func ParsePercentDecimal(s string) (decimal.Decimal, error) {
	in := strings.TrimSpace(s)
	fail := func(reason string) (decimal.Decimal, error) {
		return decimal.Zero, &models.ParseError{Kind: "percent", Input: s, Reason: reason}
	}

	var (
		state    = pctStart
		negative bool
		intPart  strings.Builder
		fracPart strings.Builder
	)

	for _, r := range in {
		isDigit := r >= '0' && r <= '9'
		switch state {
		case pctStart:
			switch {
			case r == '-' || r == '+':
				negative = r == '-'
				state = pctSign
			case isDigit:
				intPart.WriteRune(r)
				state = pctInt
			case r == '.':
				state = pctPoint
			case r == '%':
				return fail("no digits")
			default:
				return fail("unexpected character " + string(r))
			}
		case pctSign:
			switch {
			case isDigit:
				intPart.WriteRune(r)
				state = pctInt
			case r == '.':
				state = pctPoint
			default:
				return fail("expected digit after sign")
			}
		case pctInt:
			switch {
			case isDigit:
				intPart.WriteRune(r)
			case r == '.':
				state = pctPoint
			case r == '%':
				state = pctDone
			default:
				return fail("unexpected character " + string(r))
			}
		case pctPoint:
			switch {
			case isDigit:
				fracPart.WriteRune(r)
				state = pctFrac
			case r == '%' && intPart.Len() > 0:
				state = pctDone
			default:
				return fail("expected digit after decimal point")
			}
		case pctFrac:
			switch {
			case isDigit:
				fracPart.WriteRune(r)
			case r == '%':
				state = pctDone
			default:
				return fail("unexpected character " + string(r))
			}
		case pctDone:
			return fail("characters after %")
		}
	}

	if state != pctDone {
		return fail("missing trailing %")
	}

	// digits as one integer coefficient; the exponent accounts for the
	// fraction digits plus the two-place percent shift
	coef, ok := new(big.Int).SetString(intPart.String()+fracPart.String(), 10)
	if !ok {
		return fail("no digits")
	}
	d := decimal.NewFromBigInt(coef, -int32(fracPart.Len())-2)
	if negative {
		d = d.Neg()
	}
	return d, nil
}

// FormatPercent renders a fraction as a percentage with two decimals ("4.20%").
func FormatPercent(fraction float64) string {
	return decimal.NewFromFloat(fraction).Shift(2).StringFixed(2) + "%"
}
