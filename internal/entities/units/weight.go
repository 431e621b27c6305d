package units

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// WeightUnits identifies a unit of weight.
type WeightUnits string

// Weight units
const (
	LB WeightUnits = "lb"
	OZ WeightUnits = "oz"
	TN WeightUnits = "tn"
	LT WeightUnits = "lt"
	KG WeightUnits = "kg"
	G  WeightUnits = "g"
	T  WeightUnits = "t"
)

// pounds per unit, as a ratio
var poundFactors = map[WeightUnits][2]int64{
	LB: {1, 1},
	OZ: {1, 16},
	TN: {2000, 1},
	LT: {2240, 1},
	KG: {2204623, 1000000},
	G:  {2204623, 1000000000},
	T:  {2204623, 1000},
}

// AllWeightUnits returns every known unit.
func AllWeightUnits() []WeightUnits {
	return []WeightUnits{LB, OZ, TN, LT, KG, G, T}
}

// ParseWeightUnits converts a unit abbreviation to WeightUnits.
func ParseWeightUnits(s string) (WeightUnits, error) {
	u := WeightUnits(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := poundFactors[u]; !ok {
		return "", errors.InvalidArgumentf("unknown weight units %q", s)
	}
	return u, nil
}

// IsValid reports whether u is a known unit.
func (u WeightUnits) IsValid() bool {
	_, ok := poundFactors[u]
	return ok
}

// IsMetric reports whether u belongs to the metric family.
func (u WeightUnits) IsMetric() bool {
	return u == KG || u == G || u == T
}

// Convert converts value expressed in from into u.
func (u WeightUnits) Convert(from WeightUnits, value Fixed6) Fixed6 {
	if u == from {
		return value
	}
	src, ok := poundFactors[from]
	if !ok {
		return value
	}
	dst, ok := poundFactors[u]
	if !ok {
		return value
	}

	num := value.toDecimal().Mul(decimal.NewFromInt(src[0])).Mul(decimal.NewFromInt(dst[1]))
	den := decimal.NewFromInt(src[1]).Mul(decimal.NewFromInt(dst[0]))
	q, _ := num.QuoRem(den, fixed6Digits)
	return saturate(q)
}

// WeightValue is a weight in specific units.
type WeightValue struct {
	Value Fixed6      `json:"value"`
	Units WeightUnits `json:"units"`
}

// NewWeight returns a WeightValue.
func NewWeight(value Fixed6, u WeightUnits) WeightValue {
	return WeightValue{Value: value, Units: u}
}

// ParseWeight parses strings such as "3.5 kg" or "12lb". Bare numbers are pounds.
func ParseWeight(s string) (WeightValue, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	// two-letter units first so "kg" is never read as "g"
	for _, u := range []WeightUnits{LB, OZ, TN, LT, KG, G, T} {
		if num, ok := strings.CutSuffix(s, string(u)); ok {
			v, err := ParseFixed6(num)
			if err == nil {
				return WeightValue{Value: v, Units: u}, nil
			}
		}
	}
	v, err := ParseFixed6(s)
	if err != nil {
		return WeightValue{}, errors.InvalidArgumentf("invalid weight %q", s)
	}
	return WeightValue{Value: v, Units: LB}, nil
}

// In returns w converted to u.
func (w WeightValue) In(u WeightUnits) WeightValue {
	return WeightValue{Value: u.Convert(w.Units, w.Value), Units: u}
}

// Add returns w+other, expressed in w's units.
func (w WeightValue) Add(other WeightValue) WeightValue {
	return WeightValue{Value: w.Value.Add(w.Units.Convert(other.Units, other.Value)), Units: w.Units}
}

// Sub returns w-other, expressed in w's units.
func (w WeightValue) Sub(other WeightValue) WeightValue {
	return WeightValue{Value: w.Value.Sub(w.Units.Convert(other.Units, other.Value)), Units: w.Units}
}

// Mul scales w by m.
func (w WeightValue) Mul(m Fixed6) WeightValue {
	return WeightValue{Value: w.Value.Mul(m), Units: w.Units}
}

// Normalized returns the weight in pounds.
func (w WeightValue) Normalized() Fixed6 {
	return LB.Convert(w.Units, w.Value)
}

// String renders the weight, e.g. "20 lb".
func (w WeightValue) String() string {
	return w.Value.String() + " " + string(w.Units)
}

// ToGurpsMetric converts imperial weights with the simplified 2:1 GURPS metric ratios.
// Metric weights are returned unchanged.
func ToGurpsMetric(w WeightValue) WeightValue {
	switch w.Units {
	case LB:
		return WeightValue{Value: w.Value.Div(FromInt(2)), Units: KG}
	case LT, TN:
		return WeightValue{Value: w.Value, Units: T}
	case OZ:
		return WeightValue{Value: w.Value.Mul(FromInt(30)), Units: G}
	default:
		return w
	}
}

// FromGurpsMetric converts metric weights with the simplified GURPS metric ratios.
// Imperial weights are returned unchanged.
func FromGurpsMetric(w WeightValue) WeightValue {
	switch w.Units {
	case G:
		return WeightValue{Value: w.Value.Div(FromInt(30)), Units: OZ}
	case KG:
		return WeightValue{Value: w.Value.Mul(FromInt(2)), Units: LB}
	case T:
		return WeightValue{Value: w.Value, Units: LT}
	default:
		return w
	}
}
