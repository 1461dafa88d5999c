package fixed

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMulDiv(t *testing.T) {
	t.Run("truncates", func(t *testing.T) {
		v, err := MulDiv(New(10), New(1), New(3))
		require.NoError(t, err)
		assert.Equal(t, "3", v.String())
	})

	t.Run("wide intermediate", func(t *testing.T) {
		// 2^200 * 2^100 / 2^100 overflows a plain Mul
		a, _ := FromBig(new(big.Int).Lsh(big.NewInt(1), 200))
		b, _ := FromBig(new(big.Int).Lsh(big.NewInt(1), 100))

		_, err := a.Mul(b)
		assert.ErrorIs(t, err, ErrOverflow)

		v, err := MulDiv(a, b, b)
		require.NoError(t, err)
		assert.True(t, v.Equal(a))
	})

	t.Run("division by zero", func(t *testing.T) {
		_, err := MulDiv(New(1), New(1), Zero)
		assert.ErrorIs(t, err, ErrDivisionByZero)
	})
}

func TestSub(t *testing.T) {
	_, err := New(1).Sub(New(2))
	assert.ErrorIs(t, err, ErrUnderflow)

	assert.True(t, New(1).SubFloor(New(2)).IsZero())
	assert.Equal(t, "3", New(5).SubFloor(New(2)).String())
}

func TestDecimal(t *testing.T) {
	data := map[string]string{
		"0.3":        "3000000",
		"1":          "10000000",
		"0.12345678": "1234567",
		"100000":     "1000000000000",
	}

	for k, v := range data {
		t.Run(k, func(t *testing.T) {
			x, err := FromDecimal(decimal.RequireFromString(k), ScaleDecimals)
			require.NoError(t, err)
			assert.Equal(t, v, x.String())
		})
	}

	assert.Equal(t, "0.3", New(3_000_000).Decimal(ScaleDecimals).String())

	_, err := FromDecimal(decimal.NewFromInt(-1), ScaleDecimals)
	assert.ErrorIs(t, err, ErrUnderflow)
}

func TestScanAndJSON(t *testing.T) {
	var x Int
	require.NoError(t, x.Scan([]byte("123456789012345678901234567890")))
	assert.Equal(t, "123456789012345678901234567890", x.String())

	require.NoError(t, x.Scan(int64(42)))
	assert.Equal(t, "42", x.String())

	assert.Error(t, x.Scan(int64(-1)))

	b, err := json.Marshal(New(7))
	require.NoError(t, err)
	assert.Equal(t, `"7"`, string(b))

	var y Int
	require.NoError(t, json.Unmarshal([]byte(`12`), &y))
	assert.Equal(t, "12", y.String())
}
