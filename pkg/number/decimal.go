package number

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/y4hyya/Stellend/pkg/fixed"
)

// Decimal parse v, zero when invalid
func Decimal(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

// Ceil round up at precision
func Ceil(d decimal.Decimal, precision int32) decimal.Decimal {
	return d.Shift(precision).Ceil().Shift(-precision)
}

// Scaled parses a human decimal such as "0.75" into a value scaled by fixed.Scale
func Scaled(v string) (fixed.Int, error) {
	if v == "" {
		return fixed.Zero, nil
	}

	d, err := decimal.NewFromString(v)
	if err != nil {
		return fixed.Zero, fmt.Errorf("invalid decimal %q: %w", v, err)
	}

	return fixed.FromDecimal(d, fixed.ScaleDecimals)
}

// Human renders a fixed.Scale value as a decimal string
func Human(v fixed.Int) string {
	return v.Decimal(fixed.ScaleDecimals).String()
}

// HumanIndex renders a fixed.IndexScale value as a decimal string
func HumanIndex(v fixed.Int) string {
	return v.Decimal(fixed.IndexDecimals).String()
}
