package compound

import (
	"errors"
	"fmt"

	"github.com/y4hyya/Stellend/pkg/fixed"
)

const (
	// CurveMultiKink five-zone curve above the optimal utilization
	CurveMultiKink = "multi_kink"
	// CurveTwoSlope classic jump rate curve
	CurveTwoSlope = "two_slope"
)

// ErrInvalidCurve curve parameters out of range
var ErrInvalidCurve = errors.New("compound: invalid rate curve parameters")

// RateCurve maps a utilization to an annual borrow rate, both scaled by fixed.Scale.
// Utilizations above 100% are treated as 100%.
type RateCurve interface {
	Kind() string
	Rate(utilization fixed.Int) (fixed.Int, error)
}

// kink zones above the optimal utilization, weights are per mille of
// (rate_max - rate_opt). base is the share already accumulated when the
// zone starts. A zero lower bound means the zone starts at the optimal
// utilization.
var kinkZones = []struct {
	lower  fixed.Int
	upper  fixed.Int
	weight fixed.Int
	base   fixed.Int
}{
	{lower: fixed.Zero, upper: fixed.New(8_500_000), weight: fixed.New(50), base: fixed.New(0)},
	{lower: fixed.New(8_500_000), upper: fixed.New(9_000_000), weight: fixed.New(100), base: fixed.New(50)},
	{lower: fixed.New(9_000_000), upper: fixed.New(9_500_000), weight: fixed.New(150), base: fixed.New(150)},
	{lower: fixed.New(9_500_000), upper: fixed.New(9_900_000), weight: fixed.New(200), base: fixed.New(300)},
	{lower: fixed.New(9_900_000), upper: fixed.New(10_000_000), weight: fixed.New(500), base: fixed.New(500)},
}

var perMille = fixed.New(1000)

// MultiKink rate ramps linearly to RateOpt at the optimal utilization, then
// climbs through progressively steeper zones to RateMax at 100%.
type MultiKink struct {
	RateMin            fixed.Int `json:"rate_min"`
	RateOpt            fixed.Int `json:"rate_opt"`
	RateMax            fixed.Int `json:"rate_max"`
	OptimalUtilization fixed.Int `json:"optimal_utilization"`
}

// DefaultMultiKink 0% / 4% / 100% with the kink at 80%
func DefaultMultiKink() MultiKink {
	return MultiKink{
		RateMin:            fixed.Zero,
		RateOpt:            fixed.New(400_000),
		RateMax:            fixed.New(10_000_000),
		OptimalUtilization: fixed.New(8_000_000),
	}
}

// Validate check parameter ranges
func (c MultiKink) Validate() error {
	if err := validateOptimal(c.OptimalUtilization); err != nil {
		return err
	}

	if c.RateMin.GreaterThan(c.RateOpt) || c.RateOpt.GreaterThan(c.RateMax) {
		return fmt.Errorf("%w: rate_min <= rate_opt <= rate_max required", ErrInvalidCurve)
	}

	return nil
}

// Kind multi_kink
func (c MultiKink) Kind() string {
	return CurveMultiKink
}

// Rate annual borrow rate at utilization u
func (c MultiKink) Rate(u fixed.Int) (fixed.Int, error) {
	u = fixed.Min(u, fixed.Scale)

	rate, err := c.rate(u)
	if err != nil {
		return fixed.Zero, err
	}

	return fixed.Max(rate, c.RateMin), nil
}

func (c MultiKink) rate(u fixed.Int) (fixed.Int, error) {
	if !u.GreaterThan(c.OptimalUtilization) {
		return fixed.MulDiv(c.RateOpt, u, c.OptimalUtilization)
	}

	delta, err := c.RateMax.Sub(c.RateOpt)
	if err != nil {
		return fixed.Zero, err
	}

	for _, zone := range kinkZones {
		if u.GreaterThan(zone.upper) {
			continue
		}

		lower := zone.lower
		if lower.IsZero() {
			lower = c.OptimalUtilization
		}

		base, err := fixed.MulDiv(delta, zone.base, perMille)
		if err != nil {
			return fixed.Zero, err
		}

		extra, err := zoneExtra(delta, zone.weight, u.SubFloor(lower), zone.upper.SubFloor(lower))
		if err != nil {
			return fixed.Zero, err
		}

		rate, err := c.RateOpt.Add(base)
		if err != nil {
			return fixed.Zero, err
		}

		return rate.Add(extra)
	}

	return c.RateMax, nil
}

// zoneExtra delta * weight * progress / (width * 1000)
func zoneExtra(delta, weight, progress, width fixed.Int) (fixed.Int, error) {
	dw, err := delta.Mul(weight)
	if err != nil {
		return fixed.Zero, err
	}

	denominator, err := width.Mul(perMille)
	if err != nil {
		return fixed.Zero, err
	}

	return fixed.MulDiv(dw, progress, denominator)
}

// TwoSlope base + slope1 up to the optimal utilization, then slope2 on top
type TwoSlope struct {
	BaseRate           fixed.Int `json:"base_rate"`
	Slope1             fixed.Int `json:"slope1"`
	Slope2             fixed.Int `json:"slope2"`
	OptimalUtilization fixed.Int `json:"optimal_utilization"`
}

// DefaultTwoSlope 0% base, 4% slope1, 75% slope2, kink at 80%
func DefaultTwoSlope() TwoSlope {
	return TwoSlope{
		BaseRate:           fixed.Zero,
		Slope1:             fixed.New(400_000),
		Slope2:             fixed.New(7_500_000),
		OptimalUtilization: fixed.New(8_000_000),
	}
}

// Validate check parameter ranges
func (c TwoSlope) Validate() error {
	return validateOptimal(c.OptimalUtilization)
}

// Kind two_slope
func (c TwoSlope) Kind() string {
	return CurveTwoSlope
}

// Rate annual borrow rate at utilization u
func (c TwoSlope) Rate(u fixed.Int) (fixed.Int, error) {
	u = fixed.Min(u, fixed.Scale)

	if !u.GreaterThan(c.OptimalUtilization) {
		r, err := fixed.MulDiv(c.Slope1, u, c.OptimalUtilization)
		if err != nil {
			return fixed.Zero, err
		}

		return c.BaseRate.Add(r)
	}

	normal, err := c.BaseRate.Add(c.Slope1)
	if err != nil {
		return fixed.Zero, err
	}

	excess, err := fixed.MulDiv(c.Slope2, u.SubFloor(c.OptimalUtilization), fixed.Scale.SubFloor(c.OptimalUtilization))
	if err != nil {
		return fixed.Zero, err
	}

	return normal.Add(excess)
}

func validateOptimal(u fixed.Int) error {
	if u.IsZero() || !u.LessThan(fixed.Scale) {
		return fmt.Errorf("%w: optimal utilization must be in (0, 100%%)", ErrInvalidCurve)
	}

	return nil
}

// NewCurve builds the curve of the given kind after validating its parameters
func NewCurve(kind string, multiKink MultiKink, twoSlope TwoSlope) (RateCurve, error) {
	switch kind {
	case "", CurveMultiKink:
		if err := multiKink.Validate(); err != nil {
			return nil, err
		}
		return multiKink, nil
	case CurveTwoSlope:
		if err := twoSlope.Validate(); err != nil {
			return nil, err
		}
		return twoSlope, nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidCurve, kind)
	}
}

// SupplyRate borrow_rate * utilization * (1 - reserve_factor), scaled
func SupplyRate(borrowRate, utilization, reserveFactor fixed.Int) (fixed.Int, error) {
	r, err := fixed.MulDiv(borrowRate, utilization, fixed.Scale)
	if err != nil {
		return fixed.Zero, err
	}

	return fixed.MulDiv(r, fixed.Scale.SubFloor(reserveFactor), fixed.Scale)
}

// RatePerSecond annual rate spread over a 365.25 day year
func RatePerSecond(annual fixed.Int) (fixed.Int, error) {
	return annual.Div(fixed.SecondsPerYear)
}
