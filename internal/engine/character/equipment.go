package character

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/outline"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/units"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// WeightCarried returns the cached weight of carried equipment, in display units.
func (c *Character) WeightCarried() units.WeightValue {
	return c.weightCarried
}

// WealthCarried returns the cached value of carried equipment.
func (c *Character) WealthCarried() units.Fixed6 {
	return c.wealthCarried
}

// WealthNotCarried returns the cached value of equipment owned but not carried.
func (c *Character) WealthNotCarried() units.Fixed6 {
	return c.wealthNotCarried
}

// calculateWeightAndWealthCarried totals the top-level carried rows, whose caches already
// include their contents.
func (c *Character) calculateWeightAndWealthCarried() {
	display := c.settings.DisplayUnits()
	weight := units.NewWeight(units.Zero, display)
	wealth := units.Zero
	for _, e := range c.equipment.Roots() {
		w := e.ExtendedWeight()
		if c.settings.UseGurpsMetric {
			if display.IsMetric() {
				w = units.ToGurpsMetric(w)
			} else {
				w = units.FromGurpsMetric(w)
			}
		}
		weight = weight.Add(w)
		wealth = wealth.Add(e.ExtendedValue())
	}
	c.weightCarried = weight
	c.wealthCarried = wealth
}

func (c *Character) calculateWealthNotCarried() {
	wealth := units.Zero
	for _, e := range c.otherEquipment.Roots() {
		wealth = wealth.Add(e.ExtendedValue())
	}
	c.wealthNotCarried = wealth
}

// refreshEquipment re-links and recomputes every equipment row under the current metric
// rule. Only loads and rule changes need it; row edits update their ancestors directly.
func (c *Character) refreshEquipment() {
	for _, list := range []*outline.List[*equipment.Equipment]{c.equipment, c.otherEquipment} {
		for _, e := range list.Roots() {
			e.Refresh(c.settings.UseGurpsMetric)
		}
	}
}

func (c *Character) equipmentList(loc equipment.Location) *outline.List[*equipment.Equipment] {
	if loc == equipment.LocationNotCarried {
		return c.otherEquipment
	}
	return c.equipment
}

// LocateEquipment finds the row with id, reporting which forest holds it.
func (c *Character) LocateEquipment(id string) (*equipment.Equipment, equipment.Location, bool) {
	for _, loc := range equipment.AllLocations() {
		for e := range c.equipmentList(loc).All() {
			if e.ID == id {
				return e, loc, true
			}
		}
	}
	return nil, "", false
}

// AddEquipment inserts e at the top of the forest for loc, or inside parent when it is set.
func (c *Character) AddEquipment(e *equipment.Equipment, loc equipment.Location, parent *equipment.Equipment) error {
	if e == nil {
		return errors.InvalidArgument("equipment is required")
	}
	if !loc.IsValid() {
		return errors.InvalidArgumentf("invalid equipment location %q", loc)
	}
	if err := e.Validate(); err != nil {
		return err
	}
	if err := c.checkEquipmentIDs(e, map[string]bool{}); err != nil {
		return err
	}

	c.Batch(func() {
		c.detach(e)
		e.Refresh(c.settings.UseGurpsMetric)
		if parent != nil {
			parent.AddChild(e)
			c.MarkDirty(EquipmentChanged)
			return
		}
		c.equipmentList(loc).Add(e)
	})
	return nil
}

// checkEquipmentIDs rejects IDs in e's subtree that another row on the sheet, or another
// row in the subtree, already uses. Rows without an ID are skipped.
func (c *Character) checkEquipmentIDs(e *equipment.Equipment, seen map[string]bool) error {
	if e.ID != "" {
		if seen[e.ID] {
			return errors.AlreadyExistsf("equipment %s appears twice", e.ID)
		}
		seen[e.ID] = true
		if existing, _, ok := c.LocateEquipment(e.ID); ok && existing != e {
			return errors.AlreadyExistsf("equipment %s already exists", e.ID)
		}
	}
	for _, child := range e.Children {
		if err := c.checkEquipmentIDs(child, seen); err != nil {
			return err
		}
	}
	return nil
}

// detach takes e out of its container or forest, reporting whether it was anywhere.
func (c *Character) detach(e *equipment.Equipment) bool {
	if e.Parent() != nil {
		e.Detach()
		c.MarkDirty(EquipmentChanged)
		return true
	}
	for _, loc := range equipment.AllLocations() {
		if c.equipmentList(loc).Remove(e) {
			return true
		}
	}
	return false
}

// RemoveEquipment deletes e from whichever forest holds it.
func (c *Character) RemoveEquipment(e *equipment.Equipment) error {
	if e == nil {
		return errors.InvalidArgument("equipment is required")
	}
	found := false
	c.Batch(func() {
		found = c.detach(e)
	})
	if !found {
		return errors.NotFoundf("equipment %q not found", e.Name)
	}
	return nil
}

// MoveEquipment moves the top-level or nested row e to the top of the forest for loc.
func (c *Character) MoveEquipment(e *equipment.Equipment, loc equipment.Location) error {
	if !loc.IsValid() {
		return errors.InvalidArgumentf("invalid equipment location %q", loc)
	}
	var err error
	c.Batch(func() {
		if err = c.RemoveEquipment(e); err != nil {
			return
		}
		c.equipmentList(loc).Add(e)
	})
	return err
}

// UpdateEquipment runs fn against e, then records the edit as an equipment change.
// fn should use the row's setters so containers stay current.
func (c *Character) UpdateEquipment(e *equipment.Equipment, fn func(*equipment.Equipment)) {
	c.Batch(func() {
		fn(e)
		c.MarkDirty(EquipmentChanged)
	})
}
