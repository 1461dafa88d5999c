package compound

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/y4hyya/Stellend/pkg/fixed"
)

func TestMultiKinkRate(t *testing.T) {
	curve := DefaultMultiKink()
	require.NoError(t, curve.Validate())

	data := map[uint64]uint64{
		0:          0,
		4_000_000:  200_000,
		6_000_000:  300_000,
		8_000_000:  400_000,
		8_500_000:  880_000,
		9_000_000:  1_840_000,
		9_500_000:  3_280_000,
		9_900_000:  5_200_000,
		10_000_000: 10_000_000,
		12_000_000: 10_000_000,
	}

	for u, want := range data {
		t.Run(strconv.FormatUint(u, 10), func(t *testing.T) {
			rate, err := curve.Rate(fixed.New(u))
			require.NoError(t, err)
			assert.Equal(t, strconv.FormatUint(want, 10), rate.String())
		})
	}
}

func TestMultiKinkFloor(t *testing.T) {
	curve := DefaultMultiKink()
	curve.RateMin = fixed.New(100_000)

	rate, err := curve.Rate(fixed.Zero)
	require.NoError(t, err)
	assert.Equal(t, "100000", rate.String())

	rate, err = curve.Rate(fixed.New(4_000_000))
	require.NoError(t, err)
	assert.Equal(t, "200000", rate.String())
}

func TestMultiKinkHighOptimal(t *testing.T) {
	tests := []struct {
		optimal uint64
		data    map[uint64]uint64
	}{
		{
			optimal: 8_700_000,
			data: map[uint64]uint64{
				8_600_000: 395_402,
				8_700_000: 400_000,
				8_800_000: 1_456_000,
				9_000_000: 1_840_000,
				9_500_000: 3_280_000,
			},
		},
		{
			optimal: 9_600_000,
			data: map[uint64]uint64{
				9_600_000:  400_000,
				9_700_000:  4_240_000,
				9_900_000:  5_200_000,
				9_950_000:  7_600_000,
				10_000_000: 10_000_000,
			},
		},
	}

	for _, tt := range tests {
		curve := DefaultMultiKink()
		curve.OptimalUtilization = fixed.New(tt.optimal)
		require.NoError(t, curve.Validate())

		for u, want := range tt.data {
			t.Run(strconv.FormatUint(tt.optimal, 10)+"/"+strconv.FormatUint(u, 10), func(t *testing.T) {
				rate, err := curve.Rate(fixed.New(u))
				require.NoError(t, err)
				assert.Equal(t, strconv.FormatUint(want, 10), rate.String())
			})
		}
	}
}

func TestTwoSlopeRate(t *testing.T) {
	curve := DefaultTwoSlope()

	data := map[uint64]uint64{
		0:          0,
		4_000_000:  200_000,
		8_000_000:  400_000,
		9_000_000:  4_150_000,
		10_000_000: 7_900_000,
	}

	for u, want := range data {
		t.Run(strconv.FormatUint(u, 10), func(t *testing.T) {
			rate, err := curve.Rate(fixed.New(u))
			require.NoError(t, err)
			assert.Equal(t, strconv.FormatUint(want, 10), rate.String())
		})
	}
}

func TestRateMonotonic(t *testing.T) {
	odd := DefaultMultiKink()
	odd.OptimalUtilization = fixed.New(8_700_000)
	odd.RateMin = fixed.New(50_000)

	curves := []RateCurve{DefaultMultiKink(), DefaultTwoSlope(), odd}

	for _, curve := range curves {
		t.Run(curve.Kind(), func(t *testing.T) {
			prev := fixed.Zero
			for u := uint64(0); u <= 10_000_000; u += 12_500 {
				rate, err := curve.Rate(fixed.New(u))
				require.NoError(t, err)
				assert.False(t, rate.LessThan(prev), "rate decreased at %d", u)
				prev = rate
			}
		})
	}
}

func TestNewCurve(t *testing.T) {
	curve, err := NewCurve("", DefaultMultiKink(), DefaultTwoSlope())
	require.NoError(t, err)
	assert.Equal(t, CurveMultiKink, curve.Kind())

	curve, err = NewCurve(CurveTwoSlope, DefaultMultiKink(), DefaultTwoSlope())
	require.NoError(t, err)
	assert.Equal(t, CurveTwoSlope, curve.Kind())

	_, err = NewCurve("cubic", DefaultMultiKink(), DefaultTwoSlope())
	assert.ErrorIs(t, err, ErrInvalidCurve)

	bad := DefaultMultiKink()
	bad.RateOpt = fixed.New(20_000_000)
	_, err = NewCurve(CurveMultiKink, bad, DefaultTwoSlope())
	assert.ErrorIs(t, err, ErrInvalidCurve)

	for _, u := range []uint64{0, 10_000_000} {
		ts := DefaultTwoSlope()
		ts.OptimalUtilization = fixed.New(u)
		_, err = NewCurve(CurveTwoSlope, DefaultMultiKink(), ts)
		assert.ErrorIs(t, err, ErrInvalidCurve)
	}
}

func TestSupplyRate(t *testing.T) {
	// 10% borrow rate, 50% utilization, 10% reserve factor
	rate, err := SupplyRate(fixed.New(1_000_000), fixed.New(5_000_000), fixed.New(1_000_000))
	require.NoError(t, err)
	assert.Equal(t, "450000", rate.String())
}

func TestRatePerSecond(t *testing.T) {
	rate, err := RatePerSecond(fixed.New(31_557_600_000))
	require.NoError(t, err)
	assert.Equal(t, "1000", rate.String())
}
