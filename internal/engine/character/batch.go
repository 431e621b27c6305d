package character

import (
	"log/slog"
	"time"
)

// ItemChange flags which item forests an edit touched.
type ItemChange uint8

// Item changes
const (
	AdvantagesChanged ItemChange = 1 << iota
	SkillsChanged
	SpellsChanged
	EquipmentChanged
	// FeaturesChanged means a row's features or enabled state changed without a
	// structural change to its forest.
	FeaturesChanged
)

type dirtyFlags struct {
	attributePoints bool
	advantagePoints bool
	skillPoints     bool
	spellPoints     bool
	equipment       bool
}

type batchState struct {
	depth     int
	didModify bool
	dirty     dirtyFlags
	snapshot  map[FieldID]any
	changes   []Change
}

// StartBatch opens a batch. Batches nest.
func (c *Character) StartBatch() {
	if c.batch.depth == 0 {
		c.batch.didModify = false
		c.batch.dirty = dirtyFlags{}
		c.batch.snapshot = c.snapshot()
	}
	c.batch.depth++
}

// EndBatch closes a batch. Closing the outermost batch commits it.
func (c *Character) EndBatch() {
	if c.batch.depth == 0 {
		if c.settings.Debug {
			panic("character: EndBatch without StartBatch")
		}
		slog.Error("unbalanced end of batch, ignoring")
		return
	}
	if c.batch.depth > 1 {
		c.batch.depth--
		return
	}
	changes := c.commit()
	c.batch.depth = 0
	// listeners may open batches of their own
	if c.notifier != nil {
		for _, ch := range changes {
			c.notifier.FieldChanged(ch.Field, ch.Value)
		}
	}
}

// Batch runs fn inside a batch.
func (c *Character) Batch(fn func()) {
	c.StartBatch()
	defer c.EndBatch()
	fn()
}

// InBatch reports whether a batch is open.
func (c *Character) InBatch() bool {
	return c.batch.depth > 0
}

// Changes returns the fields reported by the most recent commit.
func (c *Character) Changes() []Change {
	out := make([]Change, len(c.batch.changes))
	copy(out, c.batch.changes)
	return out
}

// MarkDirty records that items in the flagged forests were edited. Structural and feature
// changes re-apply every feature-derived bonus.
func (c *Character) MarkDirty(change ItemChange) {
	c.Batch(func() {
		d := &c.batch.dirty
		if change&AdvantagesChanged != 0 {
			d.advantagePoints = true
		}
		if change&SkillsChanged != 0 {
			d.skillPoints = true
		}
		if change&SpellsChanged != 0 {
			d.spellPoints = true
		}
		if change&EquipmentChanged != 0 {
			d.equipment = true
		}
		if change != 0 {
			c.applyFeatures()
		}
		c.batch.didModify = true
	})
}

// mutate runs fn inside a batch and flags the batch as having modified the sheet.
func (c *Character) mutate(fn func()) {
	c.Batch(func() {
		fn()
		c.batch.didModify = true
	})
}

func (c *Character) snapshot() map[FieldID]any {
	snap := make(map[FieldID]any, len(registry))
	for _, id := range registry {
		if id == FieldLastModified {
			continue
		}
		v, _ := c.GetValueForID(id)
		snap[id] = v
	}
	return snap
}

func (c *Character) commit() []Change {
	d := c.batch.dirty
	if d.attributePoints {
		c.calculateAttributePoints()
	}
	if d.advantagePoints {
		c.calculateAdvantagePoints()
	}
	if d.skillPoints {
		c.calculateSkillPoints()
	}
	if d.spellPoints {
		c.calculateSpellPoints()
	}
	if d.equipment {
		c.calculateWeightAndWealthCarried()
		c.calculateWealthNotCarried()
	}

	var changes []Change
	for _, id := range registry {
		if id == FieldLastModified {
			continue
		}
		v, _ := c.GetValueForID(id)
		if old, ok := c.batch.snapshot[id]; ok && sameValue(old, v) {
			continue
		}
		changes = append(changes, Change{Field: id, Value: v})
	}
	if len(changes) > 0 {
		c.batch.didModify = true
	}
	if c.batch.didModify {
		if now := c.clock.Now(); !now.Equal(c.lastModified) {
			c.lastModified = now
			changes = append(changes, Change{Field: FieldLastModified, Value: now})
		}
	}
	c.batch.snapshot = nil
	c.batch.changes = changes
	return changes
}

func sameValue(a, b any) bool {
	if ta, ok := a.(time.Time); ok {
		tb, ok := b.(time.Time)
		return ok && ta.Equal(tb)
	}
	return a == b
}
