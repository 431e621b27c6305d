package character

import (
	"github.com/KirkDiggler/rpg-sheet/internal/engine/featureindex"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/feature"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/traits"
)

// ApplyFeatures rebuilds the feature index and re-applies every feature-derived bonus and
// cost reduction in one batch.
func (c *Character) ApplyFeatures() {
	c.Batch(c.applyFeatures)
}

func (c *Character) applyFeatures() {
	c.index.Rebuild(c.advantages, c.skills, c.spells, c.equipment, c.otherEquipment)

	x := c.index
	next := bonuses{
		strength:                  x.BonusFor(string(FieldStrength), nil),
		strengthCostReduction:     x.CostReductionFor(string(FieldStrength)),
		liftingStrength:           x.BonusFor(string(FieldLiftingStrength), nil),
		strikingStrength:          x.BonusFor(string(FieldStrikingStrength), nil),
		dexterity:                 x.BonusFor(string(FieldDexterity), nil),
		dexterityCostReduction:    x.CostReductionFor(string(FieldDexterity)),
		intelligence:              x.BonusFor(string(FieldIntelligence), nil),
		intelligenceCostReduction: x.CostReductionFor(string(FieldIntelligence)),
		health:                    x.BonusFor(string(FieldHealth), nil),
		healthCostReduction:       x.CostReductionFor(string(FieldHealth)),
		will:                      x.BonusFor(string(FieldWill), nil),
		frightCheck:               x.BonusFor(string(FieldFrightCheck), nil),
		perception:                x.BonusFor(string(FieldPerception), nil),
		vision:                    x.BonusFor(string(FieldVision), nil),
		hearing:                   x.BonusFor(string(FieldHearing), nil),
		tasteAndSmell:             x.BonusFor(string(FieldTasteAndSmell), nil),
		touch:                     x.BonusFor(string(FieldTouch), nil),
		hitPoints:                 x.BonusFor(string(FieldHitPoints), nil),
		fatigue:                   x.BonusFor(string(FieldFatiguePoints), nil),
		dodge:                     x.BonusFor(string(FieldDodgeBonus), nil),
		parry:                     x.BonusFor(string(FieldParryBonus), nil),
		block:                     x.BonusFor(string(FieldBlockBonus), nil),
		speed:                     x.FloatBonusFor(string(FieldBasicSpeed), nil),
		move:                      x.BonusFor(string(FieldBasicMove), nil),
	}
	if next == c.bonuses {
		return
	}
	c.bonuses = next
	c.batch.dirty.attributePoints = true
}

// BonusToolTip explains the feature bonus to id, one contributor per line.
func (c *Character) BonusToolTip(id FieldID) string {
	var tip feature.ToolTip
	c.index.BonusFor(string(id), &tip)
	return tip.String()
}

// SkillBonusFor sums the skill bonuses that apply to skill, whether they name it or match
// it by pattern.
func (c *Character) SkillBonusFor(skill *traits.Skill, tip *feature.ToolTip) int {
	total := c.index.SkillBonusFor(feature.SkillNamedPrefix+skill.Name, skill.Name, skill.Specialization, skill.Categories, tip)
	total += c.index.SkillBonusFor(feature.SkillNamedPrefix+feature.Wildcard, skill.Name, skill.Specialization, skill.Categories, tip)
	return total
}

// SpellBonusFor sums the spell bonuses that apply to spell.
func (c *Character) SpellBonusFor(spell *traits.Spell, tip *feature.ToolTip) int {
	total := c.index.SpellBonusFor(feature.SpellNamedPrefix+spell.Name, spell.Name, spell.Categories, tip)
	total += c.index.SpellBonusFor(feature.SpellNamedPrefix+feature.Wildcard, spell.Name, spell.Categories, tip)
	return total
}

// BestRelativeLevel returns the highest relative level among the costed, non-container
// skills named name (and specialization, when given), or featureindex.MinLevel when there
// are none.
func (c *Character) BestRelativeLevel(name, specialization string) int {
	best := featureindex.MinLevel
	for s := range c.skills.All() {
		if s.Container || s.Points <= 0 || !s.Matches(name, specialization) {
			continue
		}
		best = max(best, s.RelativeLevel)
	}
	return best
}

// WeaponBonusesFor returns the weapon bonuses that apply to a weapon used with the named
// skill, given the best relative level the character has in it.
func (c *Character) WeaponBonusesFor(skillName, specialization string, categories []string, tip *feature.ToolTip) []feature.Feature {
	level := c.BestRelativeLevel(skillName, specialization)
	out := c.index.WeaponBonusesFor(feature.WeaponNamedPrefix+skillName, skillName, specialization, categories, level, tip)
	return append(out, c.index.WeaponBonusesFor(feature.WeaponNamedPrefix+feature.Wildcard, skillName, specialization, categories, level, tip)...)
}
