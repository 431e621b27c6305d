// Package units provides the fixed-point and physical-quantity value types used by sheet
// calculations.
package units

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

const fixed6Digits = 6

// Fixed6 is a signed decimal with six fractional digits, stored scaled by 10^6.
// Arithmetic saturates at the representable range instead of wrapping.
type Fixed6 int64

// Common values
const (
	Zero Fixed6 = 0
	One  Fixed6 = 1_000_000

	// MaxFixed6 and MinFixed6 bound every Fixed6.
	MaxFixed6 Fixed6 = math.MaxInt64
	MinFixed6 Fixed6 = math.MinInt64
)

var (
	maxRaw = decimal.NewFromInt(math.MaxInt64)
	minRaw = decimal.NewFromInt(math.MinInt64)
)

func (f Fixed6) toDecimal() decimal.Decimal {
	return decimal.New(int64(f), -fixed6Digits)
}

// fromDecimal truncates d to six digits. ok is false when d was clamped.
func fromDecimal(d decimal.Decimal) (_ Fixed6, ok bool) {
	raw := d.Shift(fixed6Digits).Truncate(0)
	switch {
	case raw.GreaterThan(maxRaw):
		return MaxFixed6, false
	case raw.LessThan(minRaw):
		return MinFixed6, false
	}
	return Fixed6(raw.IntPart()), true
}

func saturate(d decimal.Decimal) Fixed6 {
	f, _ := fromDecimal(d)
	return f
}

// FromInt returns the Fixed6 value of n.
func FromInt(n int64) Fixed6 {
	return saturate(decimal.NewFromInt(n))
}

// FromFloat returns the Fixed6 value nearest to f. NaN is zero.
func FromFloat(f float64) Fixed6 {
	switch {
	case math.IsNaN(f):
		return Zero
	case math.IsInf(f, 1):
		return MaxFixed6
	case math.IsInf(f, -1):
		return MinFixed6
	}
	return saturate(decimal.NewFromFloat(f).Round(fixed6Digits))
}

// FromRaw returns a Fixed6 from its scaled representation.
func FromRaw(raw int64) Fixed6 {
	return Fixed6(raw)
}

// ParseFixed6 parses a decimal string such as "12", "-0.5" or "3.141592". Digits past the
// sixth fractional place are truncated; values outside the Fixed6 range are rejected.
func ParseFixed6(s string) (Fixed6, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, errors.InvalidArgument("empty decimal")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "invalid decimal %q", s)
	}

	f, ok := fromDecimal(d)
	if !ok {
		return Zero, errors.InvalidArgumentf("decimal %q is out of range", s)
	}
	return f, nil
}

// Raw returns the scaled representation.
func (f Fixed6) Raw() int64 {
	return int64(f)
}

// Add returns f+other.
func (f Fixed6) Add(other Fixed6) Fixed6 {
	return saturate(f.toDecimal().Add(other.toDecimal()))
}

// Sub returns f-other.
func (f Fixed6) Sub(other Fixed6) Fixed6 {
	return saturate(f.toDecimal().Sub(other.toDecimal()))
}

// Mul returns f*other, truncated to six digits.
func (f Fixed6) Mul(other Fixed6) Fixed6 {
	return saturate(f.toDecimal().Mul(other.toDecimal()))
}

// MulInt returns f*n.
func (f Fixed6) MulInt(n int64) Fixed6 {
	return saturate(f.toDecimal().Mul(decimal.NewFromInt(n)))
}

// Div returns f/other, truncated to six digits. Division by zero yields zero.
func (f Fixed6) Div(other Fixed6) Fixed6 {
	if other == 0 {
		return Zero
	}
	q, _ := f.toDecimal().QuoRem(other.toDecimal(), fixed6Digits)
	return saturate(q)
}

// Trunc drops the fractional part.
func (f Fixed6) Trunc() Fixed6 {
	return saturate(f.toDecimal().Truncate(0))
}

// Round rounds to the nearest whole number, halves away from zero.
func (f Fixed6) Round() Fixed6 {
	return saturate(f.toDecimal().Round(0))
}

// AsInt returns the whole part.
func (f Fixed6) AsInt() int64 {
	return int64(f) / int64(One)
}

// AsFloat returns f as a float64.
func (f Fixed6) AsFloat() float64 {
	return f.toDecimal().InexactFloat64()
}

// String renders f without trailing fractional zeros.
func (f Fixed6) String() string {
	return f.toDecimal().String()
}

// MarshalText implements encoding.TextMarshaler.
func (f Fixed6) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Fixed6) UnmarshalText(text []byte) error {
	v, err := ParseFixed6(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// UnmarshalJSON accepts both quoted and bare numbers.
func (f *Fixed6) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		*f = Zero
		return nil
	}
	return f.UnmarshalText([]byte(s))
}
