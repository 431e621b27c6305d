package rules

// Encumbrance is a carried-weight band.
type Encumbrance int

// Encumbrance tiers, lightest first
const (
	EncumbranceNone Encumbrance = iota
	EncumbranceLight
	EncumbranceMedium
	EncumbranceHeavy
	EncumbranceExtraHeavy
)

var encumbranceNames = [...]string{"None", "Light", "Medium", "Heavy", "X-Heavy"}

var encumbranceMultipliers = [...]int{1, 2, 3, 6, 10}

// Encumbrances returns every tier in increasing order.
func Encumbrances() []Encumbrance {
	return []Encumbrance{
		EncumbranceNone,
		EncumbranceLight,
		EncumbranceMedium,
		EncumbranceHeavy,
		EncumbranceExtraHeavy,
	}
}

// WeightMultiplier is the multiple of basic lift this tier allows.
func (e Encumbrance) WeightMultiplier() int {
	if e < EncumbranceNone || e > EncumbranceExtraHeavy {
		return 0
	}
	return encumbranceMultipliers[e]
}

// Penalty is the move and dodge penalty, 0 through -4.
func (e Encumbrance) Penalty() int {
	return -int(e)
}

func (e Encumbrance) String() string {
	if e < EncumbranceNone || e > EncumbranceExtraHeavy {
		return "Unknown"
	}
	return encumbranceNames[e]
}
