package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Money is an amount in minor units (cents).
type Money int64

// Cents returns a pointer to m, for optional fields such as Shoe.SalePrice.
func Cents(m int64) *Money {
	v := Money(m)
	return &v
}

// ParseMoney reads a decimal amount in major units ("59.99", "$1,200", "90").
func ParseMoney(raw string) (Money, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", raw, err)
	}
	if units < 0 {
		return 0, fmt.Errorf("negative amount %q", raw)
	}
	if units > (math.MaxInt64-99)/100 {
		return 0, fmt.Errorf("amount %q out of range", raw)
	}

	var cents int64
	if hasFrac {
		if len(frac) == 0 || len(frac) > 2 {
			return 0, fmt.Errorf("parse amount %q: expected at most two decimals", raw)
		}
		if len(frac) == 1 {
			frac += "0"
		}
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse amount %q: %w", raw, err)
		}
	}

	return Money(units*100 + cents), nil
}
