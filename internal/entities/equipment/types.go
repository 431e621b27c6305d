// Package equipment holds equipment rows and their cached extended value and weight.
package equipment

import (
	"slices"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/feature"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/units"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Location says which equipment forest a row lives in
type Location string

// Define all equipment locations
const (
	LocationCarried    Location = "carried"
	LocationNotCarried Location = "not_carried"
)

// String returns the string representation of the location
func (l Location) String() string {
	return string(l)
}

// IsValid checks if the location is valid
func (l Location) IsValid() bool {
	switch l {
	case LocationCarried, LocationNotCarried:
		return true
	default:
		return false
	}
}

// AllLocations returns a slice of all valid locations
func AllLocations() []Location {
	return []Location{LocationCarried, LocationNotCarried}
}

// LocationFromString converts a string to a Location, defaulting an empty string to carried
// Returns the location and true if valid, empty location and false if invalid
func LocationFromString(s string) (Location, bool) {
	if s == "" {
		return LocationCarried, true
	}
	loc := Location(s)
	if loc.IsValid() {
		return loc, true
	}
	return "", false
}

// Modifier adjusts an equipment row and may carry features.
type Modifier struct {
	Name     string            `json:"name"`
	Enabled  bool              `json:"enabled"`
	Features []feature.Feature `json:"features,omitempty"`
}

// Equipment is a piece of equipment, possibly containing other equipment.
type Equipment struct {
	ID         string            `json:"id,omitempty"`
	Name       string            `json:"name"`
	Quantity   int               `json:"quantity"`
	Value      units.Fixed6      `json:"value"`
	Weight     units.WeightValue `json:"weight"`
	Equipped   bool              `json:"equipped"`
	Categories []string          `json:"categories,omitempty"`
	Features   []feature.Feature `json:"features,omitempty"`
	Modifiers  []Modifier        `json:"modifiers,omitempty"`
	Children   []*Equipment      `json:"children,omitempty"`

	parent         *Equipment
	gurpsMetric    bool
	extendedValue  units.Fixed6
	extendedWeight units.WeightValue
}

// New returns an equipped row with its caches computed.
func New(name string, quantity int, value units.Fixed6, weight units.WeightValue) *Equipment {
	e := &Equipment{
		Name:     name,
		Quantity: quantity,
		Value:    value,
		Weight:   weight,
		Equipped: true,
	}
	e.updateExtendedValue()
	e.updateExtendedWeight()
	return e
}

// Validate checks the row and its subtree.
func (e *Equipment) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Name", e.Name, vb)
	if e.Quantity < 0 {
		vb.InvalidField("Quantity", "must not be negative")
	}
	if e.Weight.Units != "" && !e.Weight.Units.IsValid() {
		vb.InvalidField("Weight", "unknown weight units "+string(e.Weight.Units))
	}
	for _, f := range e.OwnFeatures() {
		if err := f.Validate(); err != nil {
			vb.InvalidField("Features", errors.GetMessage(err))
		}
	}
	if err := vb.Build(); err != nil {
		return err
	}
	for _, child := range e.Children {
		if err := child.Validate(); err != nil {
			return errors.Wrapf(err, "child %q", child.Name)
		}
	}
	return nil
}

// Parent returns the containing row, or nil at the top level.
func (e *Equipment) Parent() *Equipment {
	return e.parent
}

// ExtendedValue is quantity times value plus the extended value of every child.
func (e *Equipment) ExtendedValue() units.Fixed6 {
	return e.extendedValue
}

// ExtendedWeight is quantity times weight plus the reduced weight of the contents.
func (e *Equipment) ExtendedWeight() units.WeightValue {
	return e.extendedWeight
}

// Refresh re-links parents and recomputes every cache in the subtree bottom-up. gurpsMetric
// selects the simplified conversion between the contents' and the container's units.
// It reports whether this row's caches changed.
func (e *Equipment) Refresh(gurpsMetric bool) bool {
	e.gurpsMetric = gurpsMetric
	for _, child := range e.Children {
		child.parent = e
		child.Refresh(gurpsMetric)
	}
	v := e.updateExtendedValue()
	w := e.updateExtendedWeight()
	return v || w
}

// SetQuantity changes the quantity and updates the containers above. It reports whether
// anything changed.
func (e *Equipment) SetQuantity(quantity int) bool {
	if quantity == e.Quantity {
		return false
	}
	e.Quantity = quantity
	e.updateContainingWeights()
	e.updateContainingValues()
	return true
}

// SetValue changes the unit value and updates the containers above.
func (e *Equipment) SetValue(value units.Fixed6) bool {
	if value == e.Value {
		return false
	}
	e.Value = value
	e.updateContainingValues()
	return true
}

// SetWeight changes the unit weight and updates the containers above.
func (e *Equipment) SetWeight(weight units.WeightValue) bool {
	if weight == e.Weight {
		return false
	}
	e.Weight = weight
	e.updateContainingWeights()
	return true
}

// SetEquipped toggles whether the row's features apply.
func (e *Equipment) SetEquipped(equipped bool) bool {
	if equipped == e.Equipped {
		return false
	}
	e.Equipped = equipped
	return true
}

// AddChild appends child and updates this row and the containers above.
func (e *Equipment) AddChild(child *Equipment) {
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = e
	child.Refresh(e.gurpsMetric)
	e.Children = append(e.Children, child)
	e.updateContainingWeights()
	e.updateContainingValues()
}

// RemoveChild detaches child and updates this row and the containers above.
func (e *Equipment) RemoveChild(child *Equipment) bool {
	i := slices.Index(e.Children, child)
	if i < 0 {
		return false
	}
	e.Children = slices.Delete(e.Children, i, i+1)
	child.parent = nil
	e.updateContainingWeights()
	e.updateContainingValues()
	return true
}

// Detach removes e from its parent, if any.
func (e *Equipment) Detach() {
	if e.parent != nil {
		e.parent.RemoveChild(e)
	}
}

func (e *Equipment) updateExtendedValue() bool {
	saved := e.extendedValue
	total := e.Value.MulInt(int64(e.Quantity))
	for _, child := range e.Children {
		total = total.Add(child.extendedValue)
	}
	e.extendedValue = total
	return saved != total
}

func (e *Equipment) updateExtendedWeight() bool {
	saved := e.extendedWeight
	u := e.Weight.Units
	if u == "" {
		u = units.LB
	}

	extended := units.NewWeight(e.Weight.Value.MulInt(int64(e.Quantity)), u)
	contained := units.NewWeight(units.Zero, u)
	for _, child := range e.Children {
		w := child.extendedWeight
		if e.gurpsMetric {
			if u.IsMetric() {
				w = units.ToGurpsMetric(w)
			} else {
				w = units.FromGurpsMetric(w)
			}
		}
		contained = contained.Add(w)
	}

	percentage := 0
	reduction := units.NewWeight(units.Zero, u)
	for _, f := range e.OwnFeatures() {
		if f.Kind != feature.KindContainedWeightReduction {
			continue
		}
		if f.Percentage > 0 {
			percentage += f.Percentage
		} else if f.Weight.Units != "" {
			reduction = reduction.Add(f.Weight)
		}
	}
	if percentage > 0 {
		if percentage >= 100 {
			contained = units.NewWeight(units.Zero, u)
		} else {
			cut := contained.Value.MulInt(int64(percentage)).Div(units.FromInt(100))
			contained = contained.Sub(units.NewWeight(cut, u))
		}
	}
	contained = contained.Sub(reduction)
	if contained.Value > 0 {
		extended = extended.Add(contained)
	}

	e.extendedWeight = extended
	return saved != extended
}

// updateContainingWeights recomputes e and its ancestors, stopping at the first row whose
// extended weight did not change.
func (e *Equipment) updateContainingWeights() {
	for row := e; row != nil; row = row.parent {
		if !row.updateExtendedWeight() {
			return
		}
	}
}

func (e *Equipment) updateContainingValues() {
	for row := e; row != nil; row = row.parent {
		if !row.updateExtendedValue() {
			return
		}
	}
}

// IsEnabled reports whether the row is equipped.
func (e *Equipment) IsEnabled() bool {
	return e.Equipped
}

// ChildRows returns the direct children.
func (e *Equipment) ChildRows() []*Equipment {
	return e.Children
}

// OwnFeatures returns the row's features plus those of its enabled modifiers.
func (e *Equipment) OwnFeatures() []feature.Feature {
	out := slices.Clone(e.Features)
	for _, m := range e.Modifiers {
		if m.Enabled {
			out = append(out, m.Features...)
		}
	}
	return out
}

// DisplayName labels the row in tooltips.
func (e *Equipment) DisplayName() string {
	return e.Name
}

// FeatureLevel is always zero for equipment.
func (e *Equipment) FeatureLevel() int {
	return 0
}
