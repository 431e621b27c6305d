package character

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/traits"
)

// TotalPoints returns the point budget.
func (c *Character) TotalPoints() int {
	return c.totalPoints
}

// SpentPoints returns every point spent.
func (c *Character) SpentPoints() int {
	return c.attributePoints + c.advantagePoints + c.disadvantagePoints + c.quirkPoints +
		c.skillPoints + c.spellPoints + c.racePoints
}

// UnspentPoints returns the budget left over.
func (c *Character) UnspentPoints() int {
	return c.totalPoints - c.SpentPoints()
}

// SetUnspentPoints changes the budget so that unspent becomes the points left over.
func (c *Character) SetUnspentPoints(unspent int) {
	current := c.UnspentPoints()
	if current == unspent {
		return
	}
	c.postEdit("Unspent Points Change", FieldUnspentPoints, current, unspent)
	c.mutate(func() { c.totalPoints = unspent + c.SpentPoints() })
}

// AttributePoints returns the cached attribute cost total.
func (c *Character) AttributePoints() int { return c.attributePoints }

// AdvantagePoints returns the cached total of positive advantage costs.
func (c *Character) AdvantagePoints() int { return c.advantagePoints }

// DisadvantagePoints returns the cached total of disadvantage costs below -1.
func (c *Character) DisadvantagePoints() int { return c.disadvantagePoints }

// QuirkPoints returns the cached quirk total, -1 per quirk.
func (c *Character) QuirkPoints() int { return c.quirkPoints }

// RacePoints returns the cached cost of racial packages.
func (c *Character) RacePoints() int { return c.racePoints }

// SkillPoints returns the cached skill cost total.
func (c *Character) SkillPoints() int { return c.skillPoints }

// SpellPoints returns the cached spell cost total.
func (c *Character) SpellPoints() int { return c.spellPoints }

func (c *Character) calculateAttributePoints() {
	c.attributePoints = c.StrengthPoints() + c.DexterityPoints() + c.IntelligencePoints() +
		c.HealthPoints() + c.WillPoints() + c.PerceptionPoints() + c.BasicSpeedPoints() +
		c.BasicMovePoints() + c.HitPointPoints() + c.FatiguePointPoints()
}

func (c *Character) calculateAdvantagePoints() {
	c.advantagePoints = 0
	c.disadvantagePoints = 0
	c.quirkPoints = 0
	c.racePoints = 0
	for _, a := range c.advantages.Roots() {
		c.addAdvantagePoints(a)
	}
}

// addAdvantagePoints files a's cost. Groups are transparent; races count as a whole.
func (c *Character) addAdvantagePoints(a *traits.Advantage) {
	if a.Container {
		switch a.Type() {
		case traits.ContainerGroup:
			for _, child := range a.Children {
				c.addAdvantagePoints(child)
			}
			return
		case traits.ContainerRace:
			c.racePoints += a.AdjustedPoints()
			return
		}
	}

	pts := a.AdjustedPoints()
	switch {
	case pts > 0:
		c.advantagePoints += pts
	case pts < -1:
		c.disadvantagePoints += pts
	case pts == -1:
		c.quirkPoints--
	}
}

func (c *Character) calculateSkillPoints() {
	c.skillPoints = 0
	for s := range c.skills.All() {
		if !s.Container {
			c.skillPoints += s.Points
		}
	}
}

func (c *Character) calculateSpellPoints() {
	c.spellPoints = 0
	for s := range c.spells.All() {
		if !s.Container {
			c.spellPoints += s.Points
		}
	}
}
