package number

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/y4hyya/Stellend/pkg/fixed"
)

func TestCeil(t *testing.T) {
	data := map[string]string{
		"0.10304":     "0.11",
		"0.100000001": "0.11",
		"0.108":       "0.11",
	}

	for k, v := range data {
		t.Run(k, func(t *testing.T) {
			c := Ceil(Decimal(k), 2)
			assert.Equal(t, v, c.String(), "should be ceil")
		})
	}
}

func TestScaled(t *testing.T) {
	data := map[string]string{
		"0.75": "7500000",
		"0.3":  "3000000",
		"1":    "10000000",
		"":     "0",
	}

	for k, v := range data {
		t.Run(k, func(t *testing.T) {
			x, err := Scaled(k)
			require.NoError(t, err)
			assert.Equal(t, v, x.String())
		})
	}

	_, err := Scaled("abc")
	assert.Error(t, err)

	assert.Equal(t, "0.3", Human(fixed.New(3_000_000)))
	assert.Equal(t, "1.025", HumanIndex(fixed.New(1_025_000_000)))
}
