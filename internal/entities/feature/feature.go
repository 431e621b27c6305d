// Package feature defines the modifiers that advantages, skills, spells and equipment
// contribute to a sheet.
package feature

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/units"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Kind tags the variant a Feature holds.
type Kind string

// Feature kinds
const (
	KindBonus                    Kind = "bonus"
	KindCostReduction            Kind = "cost_reduction"
	KindWeaponBonus              Kind = "weapon_bonus"
	KindSkillBonus               Kind = "skill_bonus"
	KindSpellBonus               Kind = "spell_bonus"
	KindContainedWeightReduction Kind = "contained_weight_reduction"
)

// Key prefixes for name-matched bonuses. A bonus whose name criteria is not an exact match
// is filed under the prefix plus Wildcard.
const (
	SkillNamedPrefix  = "skill_named."
	SpellNamedPrefix  = "spell_named."
	WeaponNamedPrefix = "weapon_named."
	Wildcard          = "*"

	// ContainedWeightReductionKey files weight reductions in the index.
	ContainedWeightReductionKey = "equipment.weight.sum"
)

// MaxCostReduction caps the summed cost reduction for an attribute.
const MaxCostReduction = 80

// Feature is a tagged variant. Which fields are meaningful depends on Kind:
//
//	Bonus                     Key, Amount, PerLevel
//	CostReduction             Key, Percentage
//	WeaponBonus               Amount, PerLevel, NameCriteria, SpecializationCriteria, LevelCriteria, CategoryCriteria
//	SkillBonus                Amount, PerLevel, NameCriteria, SpecializationCriteria, CategoryCriteria
//	SpellBonus                Amount, PerLevel, NameCriteria, CategoryCriteria
//	ContainedWeightReduction  Percentage or Weight
type Feature struct {
	Kind       Kind              `json:"type"`
	Key        string            `json:"key,omitempty"`
	Amount     units.Fixed6      `json:"amount,omitempty"`
	PerLevel   bool              `json:"per_level,omitempty"`
	Percentage int               `json:"percentage,omitempty"`
	Weight     units.WeightValue `json:"weight,omitzero"`

	NameCriteria           StringCriteria  `json:"name,omitzero"`
	SpecializationCriteria StringCriteria  `json:"specialization,omitzero"`
	LevelCriteria          NumericCriteria `json:"level,omitzero"`
	CategoryCriteria       StringCriteria  `json:"category,omitzero"`

	// Owner and Level are bound from the contributing row when the feature is indexed.
	Owner string `json:"-"`
	Level int    `json:"-"`
}

// NewBonus returns an attribute bonus of amount at key.
func NewBonus(key string, amount int) Feature {
	return Feature{Kind: KindBonus, Key: key, Amount: units.FromInt(int64(amount))}
}

// NewCostReduction returns a cost reduction of percentage at key.
func NewCostReduction(key string, percentage int) Feature {
	return Feature{Kind: KindCostReduction, Key: key, Percentage: percentage}
}

// Validate checks that the fields the kind needs are present.
func (f Feature) Validate() error {
	vb := errors.NewValidationBuilder()
	switch f.Kind {
	case KindBonus:
		if f.Key == "" {
			vb.RequiredField("Key")
		}
	case KindCostReduction:
		if f.Key == "" {
			vb.RequiredField("Key")
		}
		if f.Percentage < 0 {
			vb.InvalidField("Percentage", "must not be negative")
		}
	case KindWeaponBonus, KindSkillBonus, KindSpellBonus:
	case KindContainedWeightReduction:
		if f.Percentage < 0 {
			vb.InvalidField("Percentage", "must not be negative")
		}
		if f.Weight.Units != "" && !f.Weight.Units.IsValid() {
			vb.InvalidField("Weight", "unknown weight units")
		}
	default:
		vb.InvalidField("Kind", "unknown feature type "+string(f.Kind))
	}
	return vb.Build()
}

// IsBonus reports whether f adds an amount. Cost and weight reductions are not bonuses.
func (f Feature) IsBonus() bool {
	switch f.Kind {
	case KindBonus, KindWeaponBonus, KindSkillBonus, KindSpellBonus:
		return true
	default:
		return false
	}
}

// IndexKey is the key f is filed under in a feature index.
func (f Feature) IndexKey() string {
	switch f.Kind {
	case KindSkillBonus:
		return namedKey(SkillNamedPrefix, f.NameCriteria)
	case KindSpellBonus:
		return namedKey(SpellNamedPrefix, f.NameCriteria)
	case KindWeaponBonus:
		return namedKey(WeaponNamedPrefix, f.NameCriteria)
	case KindContainedWeightReduction:
		return ContainedWeightReductionKey
	default:
		return f.Key
	}
}

func namedKey(prefix string, c StringCriteria) string {
	if c.Compare == StringIs {
		return prefix + c.Qualifier
	}
	return prefix + Wildcard
}

// AdjustedAmount is Amount, scaled by Level when the feature is per level.
func (f Feature) AdjustedAmount() units.Fixed6 {
	if f.PerLevel {
		return f.Amount.MulInt(int64(f.Level))
	}
	return f.Amount
}

// IntegerAdjustedAmount is AdjustedAmount with the fraction dropped.
func (f Feature) IntegerAdjustedAmount() int {
	return int(f.AdjustedAmount().AsInt())
}

// MatchesCategories reports whether any of categories satisfies the category criteria.
// Criteria that accept anything always match.
func (f Feature) MatchesCategories(categories []string) bool {
	if f.CategoryCriteria.IsAny() {
		return true
	}
	if len(categories) == 0 {
		return f.CategoryCriteria.Matches("")
	}
	for _, c := range categories {
		if f.CategoryCriteria.Matches(c) {
			return true
		}
	}
	return false
}

// ToolTipFragment renders the line f adds to a tooltip, e.g. "\nHigh Pain Threshold [+2]".
func (f Feature) ToolTipFragment() string {
	amt := f.IntegerAdjustedAmount()
	var b strings.Builder
	b.WriteByte('\n')
	b.WriteString(f.Owner)
	b.WriteString(" [")
	if amt >= 0 {
		b.WriteByte('+')
	}
	b.WriteString(strconv.Itoa(amt))
	b.WriteByte(']')
	return b.String()
}

// ToolTip accumulates the explanation for a bonus total. A nil ToolTip discards input.
type ToolTip struct {
	b strings.Builder
}

// Add appends f's fragment.
func (t *ToolTip) Add(f Feature) {
	if t == nil {
		return
	}
	t.b.WriteString(f.ToolTipFragment())
}

func (t *ToolTip) String() string {
	if t == nil {
		return ""
	}
	return t.b.String()
}
