package fixed

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

const (
	// ScaleDecimals decimals implied by Scale
	ScaleDecimals int32 = 7
	// IndexDecimals decimals implied by IndexScale
	IndexDecimals int32 = 9
)

var (
	// ErrOverflow result does not fit in 256 bits
	ErrOverflow = errors.New("fixed: overflow")
	// ErrUnderflow result would be negative
	ErrUnderflow = errors.New("fixed: underflow")
	// ErrDivisionByZero division by zero
	ErrDivisionByZero = errors.New("fixed: division by zero")
)

var (
	// Zero 0
	Zero = Int{}
	// Scale 1.0 for amounts, prices, rates and ratios
	Scale = New(10_000_000)
	// IndexScale 1.0 for shares, exchange rates and borrow indexes
	IndexScale = New(1_000_000_000)
	// SecondsPerYear 365.25 days
	SecondsPerYear = New(31_557_600)
)

// Int an unsigned 256-bit fixed-point quantity.
//
// Int is a value type, every operation returns a new value and never
// mutates its operands.
type Int struct {
	v uint256.Int
}

// New int from uint64
func New(v uint64) Int {
	var z Int
	z.v.SetUint64(v)
	return z
}

// Percent p% scaled by Scale, 1% = 100,000
func Percent(p uint64) Int {
	return New(p * 100_000)
}

// Parse parses a base 10 integer string
func Parse(s string) (Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, nil
	}

	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Zero, fmt.Errorf("fixed: invalid integer %q", s)
	}

	return FromBig(b)
}

// MustParse parse or panic
func MustParse(s string) Int {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return x
}

// FromBig converts a big.Int
func FromBig(b *big.Int) (Int, error) {
	if b.Sign() < 0 {
		return Zero, ErrUnderflow
	}

	var z Int
	if overflow := z.v.SetFromBig(b); overflow {
		return Zero, ErrOverflow
	}

	return z, nil
}

// FromDecimal converts a human decimal into an integer carrying the given
// number of implied decimals, truncating any extra precision.
func FromDecimal(d decimal.Decimal, decimals int32) (Int, error) {
	if d.IsNegative() {
		return Zero, ErrUnderflow
	}

	return FromBig(d.Shift(decimals).Truncate(0).BigInt())
}

// Decimal renders x as a human decimal with the given implied decimals
func (x Int) Decimal(decimals int32) decimal.Decimal {
	return decimal.NewFromBigInt(x.v.ToBig(), -decimals)
}

// Big returns x as a big.Int
func (x Int) Big() *big.Int {
	return x.v.ToBig()
}

// Uint64 returns x and whether it fits in 64 bits
func (x Int) Uint64() (uint64, bool) {
	return x.v.Uint64(), x.v.IsUint64()
}

func (x Int) String() string {
	return x.v.Dec()
}

// IsZero x == 0
func (x Int) IsZero() bool {
	return x.v.IsZero()
}

// IsPositive x > 0
func (x Int) IsPositive() bool {
	return !x.v.IsZero()
}

// Cmp returns -1, 0 or +1
func (x Int) Cmp(y Int) int {
	return x.v.Cmp(&y.v)
}

// Equal x == y
func (x Int) Equal(y Int) bool {
	return x.v.Eq(&y.v)
}

// LessThan x < y
func (x Int) LessThan(y Int) bool {
	return x.v.Lt(&y.v)
}

// GreaterThan x > y
func (x Int) GreaterThan(y Int) bool {
	return x.v.Gt(&y.v)
}

// Add x + y
func (x Int) Add(y Int) (Int, error) {
	var z Int
	if _, overflow := z.v.AddOverflow(&x.v, &y.v); overflow {
		return Zero, ErrOverflow
	}

	return z, nil
}

// Sub x - y, fails when y > x
func (x Int) Sub(y Int) (Int, error) {
	var z Int
	if _, underflow := z.v.SubOverflow(&x.v, &y.v); underflow {
		return Zero, ErrUnderflow
	}

	return z, nil
}

// SubFloor max(x - y, 0)
func (x Int) SubFloor(y Int) Int {
	if !x.v.Gt(&y.v) {
		return Zero
	}

	var z Int
	z.v.Sub(&x.v, &y.v)
	return z
}

// Mul x * y
func (x Int) Mul(y Int) (Int, error) {
	var z Int
	if _, overflow := z.v.MulOverflow(&x.v, &y.v); overflow {
		return Zero, ErrOverflow
	}

	return z, nil
}

// Div x / y, truncated
func (x Int) Div(y Int) (Int, error) {
	if y.v.IsZero() {
		return Zero, ErrDivisionByZero
	}

	var z Int
	z.v.Div(&x.v, &y.v)
	return z, nil
}

// MulDiv x * y / d, truncated. The product is carried in 512 bits so
// only a quotient wider than 256 bits overflows.
func MulDiv(x, y, d Int) (Int, error) {
	if d.v.IsZero() {
		return Zero, ErrDivisionByZero
	}

	var z Int
	if _, overflow := z.v.MulDivOverflow(&x.v, &y.v, &d.v); overflow {
		return Zero, ErrOverflow
	}

	return z, nil
}

// Min smaller of a and b
func Min(a, b Int) Int {
	if a.LessThan(b) {
		return a
	}

	return b
}

// Max larger of a and b
func Max(a, b Int) Int {
	if a.GreaterThan(b) {
		return a
	}

	return b
}

// Value implements driver.Valuer
func (x Int) Value() (driver.Value, error) {
	return x.String(), nil
}

// Scan implements sql.Scanner
func (x *Int) Scan(src interface{}) error {
	var (
		v   Int
		err error
	)

	switch s := src.(type) {
	case nil:
		v = Zero
	case int64:
		if s < 0 {
			return ErrUnderflow
		}
		v = New(uint64(s))
	case []byte:
		v, err = Parse(string(s))
	case string:
		v, err = Parse(s)
	default:
		return fmt.Errorf("fixed: cannot scan %T", src)
	}

	if err != nil {
		return err
	}

	*x = v
	return nil
}

// MarshalJSON encodes x as a decimal string
func (x Int) MarshalJSON() ([]byte, error) {
	return json.Marshal(x.String())
}

// UnmarshalJSON accepts a string or a bare number
func (x *Int) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" {
		*x = Zero
		return nil
	}

	v, err := Parse(s)
	if err != nil {
		return err
	}

	*x = v
	return nil
}
