package character

import (
	"math"
)

// Points per level above 10
const (
	strengthPointsPerLevel     = 10
	dexterityPointsPerLevel    = 20
	intelligencePointsPerLevel = 20
	healthPointsPerLevel       = 10
)

// pointsForAttribute prices delta levels at ptsPerLevel, discounting purchases above the
// baseline by reduction percent (capped at 80) and rounding the discounted cost up.
func pointsForAttribute(delta, ptsPerLevel, reduction int) int {
	amt := delta * ptsPerLevel
	if reduction > 0 && delta > 0 {
		reduction = min(reduction, 80)
		amt = (99 + amt*(100-reduction)) / 100
	}
	return amt
}

// Strength returns ST.
func (c *Character) Strength() int {
	return c.strength + c.bonuses.strength
}

// SetStrength sets the base so that ST becomes strength.
func (c *Character) SetStrength(strength int) {
	old := c.Strength()
	if old == strength {
		return
	}
	c.postEdit("Strength Change", FieldStrength, old, strength)
	c.mutate(func() {
		c.strength = strength - c.bonuses.strength
		c.batch.dirty.attributePoints = true
	})
}

// StrengthBonus returns the feature bonus to ST.
func (c *Character) StrengthBonus() int {
	return c.bonuses.strength
}

// LiftingStrengthBonus returns the bonus that applies to lifting only.
func (c *Character) LiftingStrengthBonus() int {
	return c.bonuses.liftingStrength
}

// StrikingStrengthBonus returns the bonus that applies to damage only.
func (c *Character) StrikingStrengthBonus() int {
	return c.bonuses.strikingStrength
}

// StrengthCostReduction returns the feature cost reduction for ST.
func (c *Character) StrengthCostReduction() int {
	return c.bonuses.strengthCostReduction
}

// StrengthPoints returns the cost of ST. Without optional strength rules each level of
// size modifier adds ten percent to the reduction.
func (c *Character) StrengthPoints() int {
	reduction := c.bonuses.strengthCostReduction
	if !c.settings.UseOptionalStrength {
		reduction += c.sizeModifier * 10
	}
	return pointsForAttribute(c.strength-10, strengthPointsPerLevel, reduction)
}

// Dexterity returns DX.
func (c *Character) Dexterity() int {
	return c.dexterity + c.bonuses.dexterity
}

// SetDexterity sets the base so that DX becomes dexterity.
func (c *Character) SetDexterity(dexterity int) {
	old := c.Dexterity()
	if old == dexterity {
		return
	}
	c.postEdit("Dexterity Change", FieldDexterity, old, dexterity)
	c.mutate(func() {
		c.dexterity = dexterity - c.bonuses.dexterity
		c.batch.dirty.attributePoints = true
	})
}

// DexterityBonus returns the feature bonus to DX.
func (c *Character) DexterityBonus() int {
	return c.bonuses.dexterity
}

// DexterityPoints returns the cost of DX.
func (c *Character) DexterityPoints() int {
	return pointsForAttribute(c.dexterity-10, dexterityPointsPerLevel, c.bonuses.dexterityCostReduction)
}

// Intelligence returns IQ.
func (c *Character) Intelligence() int {
	return c.intelligence + c.bonuses.intelligence
}

// SetIntelligence sets the base so that IQ becomes intelligence.
func (c *Character) SetIntelligence(intelligence int) {
	old := c.Intelligence()
	if old == intelligence {
		return
	}
	c.postEdit("Intelligence Change", FieldIntelligence, old, intelligence)
	c.mutate(func() {
		c.intelligence = intelligence - c.bonuses.intelligence
		c.batch.dirty.attributePoints = true
	})
}

// IntelligenceBonus returns the feature bonus to IQ.
func (c *Character) IntelligenceBonus() int {
	return c.bonuses.intelligence
}

// IntelligencePoints returns the cost of IQ.
func (c *Character) IntelligencePoints() int {
	return pointsForAttribute(c.intelligence-10, intelligencePointsPerLevel, c.bonuses.intelligenceCostReduction)
}

// Health returns HT.
func (c *Character) Health() int {
	return c.health + c.bonuses.health
}

// SetHealth sets the base so that HT becomes health.
func (c *Character) SetHealth(health int) {
	old := c.Health()
	if old == health {
		return
	}
	c.postEdit("Health Change", FieldHealth, old, health)
	c.mutate(func() {
		c.health = health - c.bonuses.health
		c.batch.dirty.attributePoints = true
	})
}

// HealthBonus returns the feature bonus to HT.
func (c *Character) HealthBonus() int {
	return c.bonuses.health
}

// HealthPoints returns the cost of HT.
func (c *Character) HealthPoints() int {
	return pointsForAttribute(c.health-10, healthPointsPerLevel, c.bonuses.healthCostReduction)
}

// willAndPerceptionBase is the implicit term of Will and Perception: IQ, or a flat 10 under
// the optional IQ rule.
func (c *Character) willAndPerceptionBase() int {
	if c.settings.UseOptionalIQ {
		return 10
	}
	return c.Intelligence()
}

// Will returns Will.
func (c *Character) Will() int {
	return c.will + c.bonuses.will + c.willAndPerceptionBase()
}

// SetWill adjusts the base so that Will becomes will.
func (c *Character) SetWill(will int) {
	old := c.Will()
	if old == will {
		return
	}
	c.postEdit("Will Change", FieldWill, old, will)
	c.mutate(func() {
		c.will = will - (c.bonuses.will + c.willAndPerceptionBase())
		c.batch.dirty.attributePoints = true
	})
}

// WillBonus returns the feature bonus to Will.
func (c *Character) WillBonus() int {
	return c.bonuses.will
}

// WillPoints returns the cost of Will.
func (c *Character) WillPoints() int {
	return c.will * 5
}

// FrightCheck returns the fright check target.
func (c *Character) FrightCheck() int {
	return c.Will() + c.bonuses.frightCheck
}

// Perception returns Per.
func (c *Character) Perception() int {
	return c.perception + c.bonuses.perception + c.willAndPerceptionBase()
}

// SetPerception adjusts the base so that Per becomes perception.
func (c *Character) SetPerception(perception int) {
	old := c.Perception()
	if old == perception {
		return
	}
	c.postEdit("Perception Change", FieldPerception, old, perception)
	c.mutate(func() {
		c.perception = perception - (c.bonuses.perception + c.willAndPerceptionBase())
		c.batch.dirty.attributePoints = true
	})
}

// PerceptionBonus returns the feature bonus to Per.
func (c *Character) PerceptionBonus() int {
	return c.bonuses.perception
}

// PerceptionPoints returns the cost of Per.
func (c *Character) PerceptionPoints() int {
	return c.perception * 5
}

// Vision returns the vision roll.
func (c *Character) Vision() int {
	return c.Perception() + c.bonuses.vision
}

// Hearing returns the hearing roll.
func (c *Character) Hearing() int {
	return c.Perception() + c.bonuses.hearing
}

// TasteAndSmell returns the taste and smell roll.
func (c *Character) TasteAndSmell() int {
	return c.Perception() + c.bonuses.tasteAndSmell
}

// Touch returns the touch roll.
func (c *Character) Touch() int {
	return c.Perception() + c.bonuses.touch
}

func (c *Character) rawBasicSpeed() float64 {
	return float64(c.Dexterity()+c.Health()) / 4
}

// BasicSpeed returns Basic Speed.
func (c *Character) BasicSpeed() float64 {
	return c.speed + c.bonuses.speed + c.rawBasicSpeed()
}

// SetBasicSpeed adjusts the base so that Basic Speed becomes speed.
func (c *Character) SetBasicSpeed(speed float64) {
	old := c.BasicSpeed()
	if old == speed {
		return
	}
	c.postEdit("Basic Speed Change", FieldBasicSpeed, old, speed)
	c.mutate(func() {
		c.speed = speed - (c.bonuses.speed + c.rawBasicSpeed())
		c.batch.dirty.attributePoints = true
	})
}

// BasicSpeedBonus returns the feature bonus to Basic Speed.
func (c *Character) BasicSpeedBonus() float64 {
	return c.bonuses.speed
}

// BasicSpeedPoints returns the cost of the purchased speed adjustment, truncated toward zero.
func (c *Character) BasicSpeedPoints() int {
	return int(c.speed * 20)
}

func (c *Character) rawBasicMove() int {
	return int(math.Floor(c.BasicSpeed()))
}

// BasicMove returns Basic Move, never negative.
func (c *Character) BasicMove() int {
	return max(c.move+c.bonuses.move+c.rawBasicMove(), 0)
}

// SetBasicMove adjusts the base so that Basic Move becomes move.
func (c *Character) SetBasicMove(move int) {
	old := c.BasicMove()
	if old == move {
		return
	}
	c.postEdit("Basic Move Change", FieldBasicMove, old, move)
	c.mutate(func() {
		c.move = move - (c.bonuses.move + c.rawBasicMove())
		c.batch.dirty.attributePoints = true
	})
}

// BasicMoveBonus returns the feature bonus to Basic Move.
func (c *Character) BasicMoveBonus() int {
	return c.bonuses.move
}

// BasicMovePoints returns the cost of Basic Move.
func (c *Character) BasicMovePoints() int {
	return c.move * 5
}

// DodgeBonus returns the feature bonus to dodge.
func (c *Character) DodgeBonus() int {
	return c.bonuses.dodge
}

// ParryBonus returns the feature bonus to parry.
func (c *Character) ParryBonus() int {
	return c.bonuses.parry
}

// BlockBonus returns the feature bonus to block.
func (c *Character) BlockBonus() int {
	return c.bonuses.block
}
