// Package featureindex aggregates the features contributed by a sheet's rows into a
// key-addressed index that attribute formulas query for bonus and cost-reduction totals.
package featureindex

import (
	"iter"
	"log/slog"
	"math"
	"slices"

	"golang.org/x/text/cases"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/feature"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/units"
)

// MinLevel is the relative level meaning "no matching skill".
const MinLevel = math.MinInt

// Source supplies features to index. outline.List satisfies it.
type Source interface {
	Features() iter.Seq[feature.Feature]
}

// Config configures an Index
type Config struct {
	// Debug makes invariant violations panic instead of being logged.
	Debug bool
}

// Index maps folded feature keys to the features filed under them.
// It is not safe for concurrent use.
type Index struct {
	entries    map[string][]feature.Feature
	fold       cases.Caser
	debug      bool
	rebuilding bool
}

// New returns an empty index. A nil config uses defaults.
func New(cfg *Config) *Index {
	x := &Index{
		entries: make(map[string][]feature.Feature),
		fold:    cases.Fold(),
	}
	if cfg != nil {
		x.debug = cfg.Debug
	}
	return x
}

// Rebuild replaces the whole index with the features the sources currently yield.
// Queries made while the sources are being walked see the previous index.
func (x *Index) Rebuild(sources ...Source) {
	if x.rebuilding {
		if x.debug {
			panic("featureindex: Rebuild called during rebuild")
		}
		slog.Error("feature index rebuild re-entered, ignoring")
		return
	}
	x.rebuilding = true
	defer func() { x.rebuilding = false }()

	next := make(map[string][]feature.Feature)
	for _, src := range sources {
		if src == nil {
			continue
		}
		for f := range src.Features() {
			key := f.IndexKey()
			if key == "" {
				continue
			}
			key = x.key(key)
			next[key] = append(next[key], f)
		}
	}
	x.entries = next
}

func (x *Index) key(k string) string {
	return x.fold.String(k)
}

// Keys returns every indexed key, sorted.
func (x *Index) Keys() []string {
	keys := make([]string, 0, len(x.entries))
	for k := range x.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Features returns a copy of the features filed under key.
func (x *Index) Features(key string) []feature.Feature {
	return slices.Clone(x.entries[x.key(key)])
}

// BonusFor sums the integer amounts of every non-weapon bonus at key, appending each
// contributor to tip.
func (x *Index) BonusFor(key string, tip *feature.ToolTip) int {
	total := 0
	for _, f := range x.entries[x.key(key)] {
		if !f.IsBonus() || f.Kind == feature.KindWeaponBonus {
			continue
		}
		total += f.IntegerAdjustedAmount()
		tip.Add(f)
	}
	return total
}

// FloatBonusFor is BonusFor keeping fractional amounts.
func (x *Index) FloatBonusFor(key string, tip *feature.ToolTip) float64 {
	total := units.Zero
	for _, f := range x.entries[x.key(key)] {
		if !f.IsBonus() || f.Kind == feature.KindWeaponBonus {
			continue
		}
		total = total.Add(f.AdjustedAmount())
		tip.Add(f)
	}
	return total.AsFloat()
}

// CostReductionFor sums the cost reductions at key, clamped to [0, MaxCostReduction].
func (x *Index) CostReductionFor(key string) int {
	total := 0
	for _, f := range x.entries[x.key(key)] {
		if f.Kind == feature.KindCostReduction {
			total += f.Percentage
		}
	}
	return min(max(total, 0), feature.MaxCostReduction)
}

// WeaponBonusesFor returns the weapon bonuses at key whose criteria accept the weapon's
// skill name, specialization, categories and relative skill level. A relativeLevel of
// MinLevel means the character has no such skill and nothing applies.
func (x *Index) WeaponBonusesFor(key, name, specialization string, categories []string, relativeLevel int, tip *feature.ToolTip) []feature.Feature {
	if relativeLevel == MinLevel {
		return nil
	}
	var out []feature.Feature
	for _, f := range x.entries[x.key(key)] {
		if f.Kind != feature.KindWeaponBonus {
			continue
		}
		if !f.NameCriteria.Matches(name) ||
			!f.SpecializationCriteria.Matches(specialization) ||
			!f.LevelCriteria.Matches(relativeLevel) ||
			!f.MatchesCategories(categories) {
			continue
		}
		out = append(out, f)
		tip.Add(f)
	}
	return out
}

// SkillBonusFor sums the skill bonuses at key that accept the skill's name, specialization
// and categories.
func (x *Index) SkillBonusFor(key, name, specialization string, categories []string, tip *feature.ToolTip) int {
	total := 0
	for _, f := range x.entries[x.key(key)] {
		if f.Kind != feature.KindSkillBonus {
			continue
		}
		if f.NameCriteria.Matches(name) && f.SpecializationCriteria.Matches(specialization) && f.MatchesCategories(categories) {
			total += f.IntegerAdjustedAmount()
			tip.Add(f)
		}
	}
	return total
}

// SpellBonusFor sums the spell bonuses at key that accept the spell's name and categories.
func (x *Index) SpellBonusFor(key, name string, categories []string, tip *feature.ToolTip) int {
	total := 0
	for _, f := range x.entries[x.key(key)] {
		if f.Kind != feature.KindSpellBonus {
			continue
		}
		if f.NameCriteria.Matches(name) && f.MatchesCategories(categories) {
			total += f.IntegerAdjustedAmount()
			tip.Add(f)
		}
	}
	return total
}
