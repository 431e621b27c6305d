package character

// HitPoints returns HP.
func (c *Character) HitPoints() int {
	return c.Strength() + c.hitPoints + c.bonuses.hitPoints
}

// SetHitPoints adjusts the base so that HP becomes hp.
func (c *Character) SetHitPoints(hp int) {
	old := c.HitPoints()
	if old == hp {
		return
	}
	c.postEdit("Hit Points Change", FieldHitPoints, old, hp)
	c.mutate(func() {
		c.hitPoints = hp - (c.bonuses.hitPoints + c.Strength())
		c.batch.dirty.attributePoints = true
	})
}

// HitPointBonus returns the feature bonus to HP.
func (c *Character) HitPointBonus() int {
	return c.bonuses.hitPoints
}

// HitPointPoints returns the cost of HP. Without optional strength rules a positive size
// modifier (capped at 8) discounts the cost by ten percent per level.
func (c *Character) HitPointPoints() int {
	pts := 2 * c.hitPoints
	if !c.settings.UseOptionalStrength && c.sizeModifier > 0 {
		sm := min(c.sizeModifier, 8)
		pts *= 10 - sm
		rem := pts % 10
		pts /= 10
		if rem > 4 {
			pts++
		} else if rem < -5 {
			pts--
		}
	}
	return pts
}

// HitPointsDamage returns the damage taken.
func (c *Character) HitPointsDamage() int {
	return c.hpDamage
}

// SetHitPointsDamage sets the damage taken.
func (c *Character) SetHitPointsDamage(damage int) {
	if damage == c.hpDamage {
		return
	}
	c.postEdit("Current Hit Points Change", FieldHitPointsDamage, c.hpDamage, damage)
	c.mutate(func() { c.hpDamage = damage })
}

// CurrentHitPoints returns HP less damage.
func (c *Character) CurrentHitPoints() int {
	return c.HitPoints() - c.hpDamage
}

// ReelingHitPoints returns the threshold at or below which the character is reeling.
func (c *Character) ReelingHitPoints() int {
	return max((c.HitPoints()-1)/3, 0)
}

// IsReeling reports whether current HP is at or below the reeling threshold.
func (c *Character) IsReeling() bool {
	return c.CurrentHitPoints() <= c.ReelingHitPoints()
}

// UnconsciousChecksHitPoints returns the HP at which unconsciousness checks begin.
func (c *Character) UnconsciousChecksHitPoints() int {
	return 0
}

// DeathCheckHitPoints returns the HP of the nth death check, n in 1..4.
func (c *Character) DeathCheckHitPoints(n int) int {
	return -n * c.HitPoints()
}

// DeadHitPoints returns the HP at which the character dies outright.
func (c *Character) DeadHitPoints() int {
	return -5 * c.HitPoints()
}

// FatiguePoints returns FP.
func (c *Character) FatiguePoints() int {
	return c.Health() + c.fatigue + c.bonuses.fatigue
}

// SetFatiguePoints adjusts the base so that FP becomes fp.
func (c *Character) SetFatiguePoints(fp int) {
	old := c.FatiguePoints()
	if old == fp {
		return
	}
	c.postEdit("Fatigue Points Change", FieldFatiguePoints, old, fp)
	c.mutate(func() {
		c.fatigue = fp - (c.bonuses.fatigue + c.Health())
		c.batch.dirty.attributePoints = true
	})
}

// FatiguePointBonus returns the feature bonus to FP.
func (c *Character) FatiguePointBonus() int {
	return c.bonuses.fatigue
}

// FatiguePointPoints returns the cost of FP.
func (c *Character) FatiguePointPoints() int {
	return 3 * c.fatigue
}

// FatiguePointsDamage returns the fatigue spent.
func (c *Character) FatiguePointsDamage() int {
	return c.fpDamage
}

// SetFatiguePointsDamage sets the fatigue spent.
func (c *Character) SetFatiguePointsDamage(damage int) {
	if damage == c.fpDamage {
		return
	}
	c.postEdit("Current Fatigue Points Change", FieldFatiguePointsDamage, c.fpDamage, damage)
	c.mutate(func() { c.fpDamage = damage })
}

// CurrentFatiguePoints returns FP less fatigue spent.
func (c *Character) CurrentFatiguePoints() int {
	return c.FatiguePoints() - c.fpDamage
}

// TiredFatiguePoints returns the threshold at or below which the character is tired.
func (c *Character) TiredFatiguePoints() int {
	return max((c.FatiguePoints()-1)/3, 0)
}

// IsTired reports whether current FP is at or below the tired threshold.
func (c *Character) IsTired() bool {
	return c.CurrentFatiguePoints() <= c.TiredFatiguePoints()
}

// UnconsciousChecksFatiguePoints returns the FP at which unconsciousness checks begin.
func (c *Character) UnconsciousChecksFatiguePoints() int {
	return 0
}

// UnconsciousFatiguePoints returns the FP at which the character passes out.
func (c *Character) UnconsciousFatiguePoints() int {
	return -c.FatiguePoints()
}
