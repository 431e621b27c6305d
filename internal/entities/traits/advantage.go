// Package traits holds the advantage, skill, spell and note rows of a sheet.
package traits

import (
	"slices"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/feature"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// ContainerType controls how an advantage container totals its children.
type ContainerType string

// Container types
const (
	ContainerGroup       ContainerType = "group"
	ContainerMeta        ContainerType = "meta_trait"
	ContainerRace        ContainerType = "race"
	ContainerAlternative ContainerType = "alternative_abilities"
)

// String returns the string representation of the container type
func (c ContainerType) String() string {
	return string(c)
}

// IsValid checks if the container type is known
func (c ContainerType) IsValid() bool {
	switch c {
	case ContainerGroup, ContainerMeta, ContainerRace, ContainerAlternative:
		return true
	default:
		return false
	}
}

// minModifierPercent is the floor on summed enhancements and limitations.
const minModifierPercent = -80

// Modifier is an enhancement (positive) or limitation (negative) on an advantage.
type Modifier struct {
	Name        string            `json:"name"`
	CostPercent int               `json:"cost_percent"`
	Enabled     bool              `json:"enabled"`
	Features    []feature.Feature `json:"features,omitempty"`
}

// Advantage is an advantage, disadvantage or quirk, or a container of them.
type Advantage struct {
	ID             string            `json:"id,omitempty"`
	Name           string            `json:"name"`
	Container      bool              `json:"container,omitempty"`
	ContainerType  ContainerType     `json:"container_type,omitempty"`
	Points         int               `json:"points,omitempty"`
	Levels         int               `json:"levels,omitempty"`
	PointsPerLevel int               `json:"points_per_level,omitempty"`
	RoundCostDown  bool              `json:"round_cost_down,omitempty"`
	Disabled       bool              `json:"disabled,omitempty"`
	Modifiers      []Modifier        `json:"modifiers,omitempty"`
	Features       []feature.Feature `json:"features,omitempty"`
	Children       []*Advantage      `json:"children,omitempty"`
}

// Validate checks the row and its subtree.
func (a *Advantage) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Name", a.Name, vb)
	if a.Container && a.ContainerType != "" && !a.ContainerType.IsValid() {
		vb.InvalidField("ContainerType", "unknown container type "+a.ContainerType.String())
	}
	if a.Levels < 0 {
		vb.InvalidField("Levels", "must not be negative")
	}
	for _, f := range a.Features {
		if err := f.Validate(); err != nil {
			vb.InvalidField("Features", errors.GetMessage(err))
		}
	}
	if err := vb.Build(); err != nil {
		return err
	}
	for _, child := range a.Children {
		if err := child.Validate(); err != nil {
			return errors.Wrapf(err, "child %q", child.Name)
		}
	}
	return nil
}

// Type returns the container type, defaulting to group.
func (a *Advantage) Type() ContainerType {
	if a.ContainerType == "" {
		return ContainerGroup
	}
	return a.ContainerType
}

// AdjustedPoints is the cost after levels and modifiers. Containers total their children;
// alternative-ability containers charge the most expensive child in full and a fifth of
// each other child, rounded up. Disabled rows cost nothing.
func (a *Advantage) AdjustedPoints() int {
	if a.Disabled {
		return 0
	}
	if !a.Container {
		return a.leafPoints()
	}

	if a.Type() != ContainerAlternative {
		total := 0
		for _, child := range a.Children {
			total += child.AdjustedPoints()
		}
		return total
	}

	values := make([]int, 0, len(a.Children))
	for _, child := range a.Children {
		values = append(values, child.AdjustedPoints())
	}
	if len(values) == 0 {
		return 0
	}
	best := slices.Index(values, slices.Max(values))
	total := values[best]
	for i, v := range values {
		if i != best {
			total += ceilDiv(v, 5)
		}
	}
	return total
}

func (a *Advantage) leafPoints() int {
	base := a.Points + a.PointsPerLevel*a.Levels
	pct := 0
	for _, m := range a.Modifiers {
		if m.Enabled {
			pct += m.CostPercent
		}
	}
	if pct == 0 {
		return base
	}
	pct = max(pct, minModifierPercent)
	num := base * (100 + pct)
	if a.RoundCostDown {
		return floorDiv(num, 100)
	}
	return ceilDiv(num, 100)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) == (b < 0)) {
		q++
	}
	return q
}

// IsEnabled reports whether the row contributes features.
func (a *Advantage) IsEnabled() bool {
	return !a.Disabled
}

// ChildRows returns the direct children.
func (a *Advantage) ChildRows() []*Advantage {
	return a.Children
}

// OwnFeatures returns the row's features plus those of its enabled modifiers.
func (a *Advantage) OwnFeatures() []feature.Feature {
	out := slices.Clone(a.Features)
	for _, m := range a.Modifiers {
		if m.Enabled {
			out = append(out, m.Features...)
		}
	}
	return out
}

// DisplayName labels the row in tooltips.
func (a *Advantage) DisplayName() string {
	return a.Name
}

// FeatureLevel is the number of levels taken.
func (a *Advantage) FeatureLevel() int {
	return a.Levels
}

// AddChild appends child.
func (a *Advantage) AddChild(child *Advantage) {
	a.Children = append(a.Children, child)
}

// RemoveChild removes child, reporting whether it was present.
func (a *Advantage) RemoveChild(child *Advantage) bool {
	i := slices.Index(a.Children, child)
	if i < 0 {
		return false
	}
	a.Children = slices.Delete(a.Children, i, i+1)
	return true
}
