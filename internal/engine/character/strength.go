package character

import (
	"math"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dice"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/rules"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/units"
)

// Basic lift multiples
const (
	oneHandedLiftMultiple = 2
	twoHandedLiftMultiple = 8
	shoveMultiple         = 12
	runningShoveMultiple  = 24
	carryOnBackMultiple   = 15
	shiftSlightlyMultiple = 50
)

// Thrust returns basic thrust damage, from ST plus the striking-only bonus.
func (c *Character) Thrust() dice.Dice {
	return Thrust(c.settings, c.Strength()+c.bonuses.strikingStrength)
}

// Swing returns basic swing damage, from ST plus the striking-only bonus.
func (c *Character) Swing() dice.Dice {
	return Swing(c.settings, c.Strength()+c.bonuses.strikingStrength)
}

// Thrust returns basic thrust damage for strength under s.
func Thrust(s rules.Settings, strength int) dice.Dice {
	if s.UseOptionalThrustDamage {
		return Swing(s, strength).Add(-2)
	}

	if s.UseReducedSwing {
		if strength < 19 {
			return dice.New(1, -(6 - (strength-1)/2))
		}
		adds := (strength-10)/2 - 2
		if (strength-10)%2 == 1 {
			adds++
		}
		return foldReducedDice(adds)
	}

	if s.UseOptionalStrength {
		if strength < 12 {
			return dice.New(1, strength-12)
		}
		return dice.New((strength-7)/4, (strength+1)%4-1)
	}

	if strength < 19 {
		return dice.New(1, -(6 - (strength-1)/2))
	}
	value := strength - 11
	if strength > 50 {
		value--
		if strength > 79 {
			value -= 1 + (strength-80)/5
		}
	}
	return dice.New(value/8+1, value%8/2-1)
}

// Swing returns basic swing damage for strength under s.
func Swing(s rules.Settings, strength int) dice.Dice {
	if s.UseReducedSwing {
		if strength < 10 {
			return dice.New(1, -(5 - (strength-1)/2))
		}
		return foldReducedDice((strength - 10) / 2)
	}

	if s.UseOptionalStrength {
		if strength < 10 {
			return dice.New(1, strength-10)
		}
		return dice.New((strength-5)/4, (strength-1)%4-1)
	}

	value := strength
	if value < 10 {
		return dice.New(1, -(5 - (value-1)/2))
	}
	if value < 28 {
		value -= 9
		return dice.New(value/4+1, value%4-1)
	}
	if strength > 40 {
		value -= (strength - 40) / 5
	}
	if strength > 59 {
		value++
	}
	value += 9
	return dice.New(value/8+1, value%8/2-1)
}

// foldReducedDice converts adds over one die into whole dice: seven adds make two dice,
// four make one, and three become one die less one.
func foldReducedDice(adds int) dice.Dice {
	count := 1
	count += 2 * (adds / 7)
	adds %= 7
	count += adds / 4
	adds %= 4
	if adds == 3 {
		count++
		adds = -1
	}
	return dice.New(count, adds)
}

// BasicLift returns basic lift in the display units.
func (c *Character) BasicLift() units.WeightValue {
	return c.basicLift(c.settings.DisplayUnits())
}

func (c *Character) basicLift(desired units.WeightUnits) units.WeightValue {
	calc := c.settings.CalcUnits()
	divisor, multiplier, roundAt := int64(5), int64(2), int64(10)
	if calc == units.KG {
		divisor, multiplier, roundAt = 10, 1, 5
	}

	str := c.Strength() + c.bonuses.liftingStrength
	value := units.Zero
	if str >= 1 {
		if c.settings.UseOptionalStrength {
			diff := 0
			if str > 19 {
				diff = str/10 - 1
				str -= diff * 10
			}
			value = units.FromFloat(math.Pow(10, float64(str)/10)).MulInt(multiplier)
			if str <= 6 {
				value = value.MulInt(10).Round().Div(units.FromInt(10))
			} else {
				value = value.Round()
			}
			value = value.MulInt(int64(math.Pow10(diff)))
		} else {
			value = units.FromInt(int64(str * str)).Div(units.FromInt(divisor))
		}
		if value >= units.FromInt(roundAt) {
			value = value.Round()
		}
		value = value.MulInt(10).Trunc().Div(units.FromInt(10))
	}
	return units.NewWeight(desired.Convert(calc, value), desired)
}

func (c *Character) liftMultiple(n int64) units.WeightValue {
	lift := c.BasicLift()
	return units.NewWeight(lift.Value.MulInt(n), lift.Units)
}

// OneHandedLift returns basic lift times 2.
func (c *Character) OneHandedLift() units.WeightValue {
	return c.liftMultiple(oneHandedLiftMultiple)
}

// TwoHandedLift returns basic lift times 8.
func (c *Character) TwoHandedLift() units.WeightValue {
	return c.liftMultiple(twoHandedLiftMultiple)
}

// ShoveAndKnockOver returns basic lift times 12.
func (c *Character) ShoveAndKnockOver() units.WeightValue {
	return c.liftMultiple(shoveMultiple)
}

// RunningShoveAndKnockOver returns basic lift times 24.
func (c *Character) RunningShoveAndKnockOver() units.WeightValue {
	return c.liftMultiple(runningShoveMultiple)
}

// CarryOnBack returns basic lift times 15.
func (c *Character) CarryOnBack() units.WeightValue {
	return c.liftMultiple(carryOnBackMultiple)
}

// ShiftSlightly returns basic lift times 50.
func (c *Character) ShiftSlightly() units.WeightValue {
	return c.liftMultiple(shiftSlightlyMultiple)
}

// MaximumCarry returns the most that can be carried at tier e, in display units. It is
// computed in the calculation units before conversion.
func (c *Character) MaximumCarry(e rules.Encumbrance) units.WeightValue {
	calc := c.settings.CalcUnits()
	lift := c.basicLift(calc)
	value := lift.Value.MulInt(int64(e.WeightMultiplier()))
	desired := c.settings.DisplayUnits()
	return units.NewWeight(desired.Convert(calc, value), desired)
}

// EncumbranceLevel returns the lightest tier whose maximum carry covers the carried weight.
func (c *Character) EncumbranceLevel() rules.Encumbrance {
	carried := c.weightCarried.Normalized()
	for _, e := range rules.Encumbrances() {
		if carried <= c.MaximumCarry(e).Normalized() {
			return e
		}
	}
	return rules.EncumbranceExtraHeavy
}

// IsCarryingGreaterThanMaxLoad reports whether carried weight exceeds the extra-heavy limit.
func (c *Character) IsCarryingGreaterThanMaxLoad() bool {
	return c.weightCarried.Normalized() > c.MaximumCarry(rules.EncumbranceExtraHeavy).Normalized()
}

// Move returns the move at tier e, halved while reeling or tired.
func (c *Character) Move(e rules.Encumbrance) int {
	basicMove := c.BasicMove()
	if c.IsReeling() || c.IsTired() {
		basicMove /= 2
	}
	move := basicMove * (10 + 2*e.Penalty()) / 10
	if move < 1 {
		if basicMove > 0 {
			return 1
		}
		return 0
	}
	return move
}

// Dodge returns the dodge at tier e, never below 1.
func (c *Character) Dodge(e rules.Encumbrance) int {
	speed := c.BasicSpeed()
	if c.IsReeling() || c.IsTired() {
		speed /= 2
	}
	return max(int(math.Floor(speed))+3+e.Penalty()+c.bonuses.dodge, 1)
}
