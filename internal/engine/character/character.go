// Package character derives a sheet's attributes, costs, lifting capacity, damage dice and
// point totals from its base values, its item forests and the rule switches in force.
//
// Every mutation runs inside a batch. Batches nest; only the outermost commit recomputes
// dirty point totals and carried weight and wealth, then reports each field whose value
// differs from the start of the batch.
package character

//go:generate mockgen -destination=mock/mock_notifier.go -package=charactermock github.com/KirkDiggler/rpg-sheet/internal/engine/character Notifier,Recorder

import (
	"time"

	"github.com/KirkDiggler/rpg-sheet/internal/engine/featureindex"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/undo"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/outline"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/rules"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/traits"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/units"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
)

// Notifier receives one call per field changed by a committed batch.
type Notifier interface {
	FieldChanged(id FieldID, value any)
}

// Recorder receives reversible edits from the public setters.
type Recorder interface {
	InReplay() bool
	Record(edit undo.Edit)
}

// Change is a field value reported by a commit.
type Change struct {
	Field FieldID
	Value any
}

// Config configures a Character
type Config struct {
	Settings rules.Settings
	// Clock stamps the last-modified time. Defaults to the wall clock.
	Clock clock.Clock
	// Notifier and Recorder are optional.
	Notifier Notifier
	Recorder Recorder
}

// Validate validates the config
func (c *Config) Validate() error {
	if err := c.Settings.Validate(); err != nil {
		return errors.Wrap(err, "invalid rule settings")
	}
	return nil
}

// Character is the derived-state engine for one sheet. It is not safe for concurrent use.
type Character struct {
	settings rules.Settings
	clock    clock.Clock
	notifier Notifier
	recorder Recorder
	index    *featureindex.Index

	advantages     *outline.List[*traits.Advantage]
	skills         *outline.List[*traits.Skill]
	spells         *outline.List[*traits.Spell]
	notes          *outline.List[*traits.Note]
	equipment      *outline.List[*equipment.Equipment]
	otherEquipment *outline.List[*equipment.Equipment]

	createdOn    time.Time
	lastModified time.Time

	strength     int
	dexterity    int
	intelligence int
	health       int
	will         int
	perception   int
	speed        float64
	move         int
	hitPoints    int
	fatigue      int
	hpDamage     int
	fpDamage     int
	totalPoints  int
	sizeModifier int

	includePunch bool
	includeKick  bool
	includeBoots bool

	bonuses bonuses

	attributePoints    int
	advantagePoints    int
	disadvantagePoints int
	quirkPoints        int
	racePoints         int
	skillPoints        int
	spellPoints        int

	weightCarried    units.WeightValue
	wealthCarried    units.Fixed6
	wealthNotCarried units.Fixed6

	batch batchState
}

// bonuses holds the totals pulled from the feature index.
type bonuses struct {
	strength         int
	liftingStrength  int
	strikingStrength int
	dexterity        int
	intelligence     int
	health           int
	will             int
	frightCheck      int
	perception       int
	vision           int
	hearing          int
	tasteAndSmell    int
	touch            int
	hitPoints        int
	fatigue          int
	speed            float64
	move             int
	dodge            int
	parry            int
	block            int

	strengthCostReduction     int
	dexterityCostReduction    int
	intelligenceCostReduction int
	healthCostReduction       int
}

// New creates a character with default base values. A nil config uses default settings.
func New(cfg *Config) (*Character, error) {
	if cfg == nil {
		cfg = &Config{Settings: rules.DefaultSettings()}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Character{
		settings:       cfg.Settings,
		clock:          cfg.Clock,
		notifier:       cfg.Notifier,
		recorder:       cfg.Recorder,
		index:          featureindex.New(&featureindex.Config{Debug: cfg.Settings.Debug}),
		advantages:     outline.NewList[*traits.Advantage](),
		skills:         outline.NewList[*traits.Skill](),
		spells:         outline.NewList[*traits.Spell](),
		notes:          outline.NewList[*traits.Note](),
		equipment:      outline.NewList[*equipment.Equipment](),
		otherEquipment: outline.NewList[*equipment.Equipment](),
	}
	if c.clock == nil {
		c.clock = clock.New()
	}
	if c.settings.WeightUnits == "" {
		c.settings.WeightUnits = units.LB
	}
	c.otherEquipment.SetProperty(outline.PropertyNotCarried, true)
	c.watchLists()

	now := c.clock.Now()
	c.createdOn = now
	c.lastModified = now
	c.resetPrimitives()
	c.calculateAll()
	return c, nil
}

func (c *Character) resetPrimitives() {
	c.strength = 10
	c.dexterity = 10
	c.intelligence = 10
	c.health = 10
	c.will = 0
	c.perception = 0
	c.speed = 0
	c.move = 0
	c.hitPoints = 0
	c.fatigue = 0
	c.hpDamage = 0
	c.fpDamage = 0
	c.sizeModifier = 0
	c.includePunch = true
	c.includeKick = true
	c.includeBoots = true
	c.totalPoints = c.settings.InitialPoints
}

// watchLists marks the matching totals dirty whenever a forest changes shape.
func (c *Character) watchLists() {
	c.advantages.SetOnChange(func() { c.MarkDirty(AdvantagesChanged) })
	c.skills.SetOnChange(func() { c.MarkDirty(SkillsChanged) })
	c.spells.SetOnChange(func() { c.MarkDirty(SpellsChanged) })
	c.equipment.SetOnChange(func() { c.MarkDirty(EquipmentChanged) })
	c.otherEquipment.SetOnChange(func() { c.MarkDirty(EquipmentChanged) })
}

// SetNotifier replaces the notifier.
func (c *Character) SetNotifier(n Notifier) {
	c.notifier = n
}

// SetRecorder replaces the undo recorder.
func (c *Character) SetRecorder(r Recorder) {
	c.recorder = r
}

// Settings returns the rule switches in force.
func (c *Character) Settings() rules.Settings {
	return c.settings
}

// Index returns the feature index.
func (c *Character) Index() *featureindex.Index {
	return c.index
}

// Advantages returns the advantage forest.
func (c *Character) Advantages() *outline.List[*traits.Advantage] { return c.advantages }

// Skills returns the skill forest.
func (c *Character) Skills() *outline.List[*traits.Skill] { return c.skills }

// Spells returns the spell forest.
func (c *Character) Spells() *outline.List[*traits.Spell] { return c.spells }

// Notes returns the note forest.
func (c *Character) Notes() *outline.List[*traits.Note] { return c.notes }

// Equipment returns the carried equipment forest.
func (c *Character) Equipment() *outline.List[*equipment.Equipment] { return c.equipment }

// OtherEquipment returns the forest of equipment owned but not carried.
func (c *Character) OtherEquipment() *outline.List[*equipment.Equipment] { return c.otherEquipment }

// CreatedOn returns when the sheet was created.
func (c *Character) CreatedOn() time.Time {
	return c.createdOn
}

// SetCreatedOn changes the creation time.
func (c *Character) SetCreatedOn(t time.Time) {
	if t.Equal(c.createdOn) {
		return
	}
	c.postEdit("Created On Change", FieldCreatedOn, c.createdOn, t)
	c.mutate(func() { c.createdOn = t })
}

// LastModified returns when a committed batch last changed a field.
func (c *Character) LastModified() time.Time {
	return c.lastModified
}

// IncludePunch reports whether the punch natural weapon is listed.
func (c *Character) IncludePunch() bool {
	return c.includePunch
}

// SetIncludePunch toggles the punch natural weapon.
func (c *Character) SetIncludePunch(include bool) {
	if include == c.includePunch {
		return
	}
	c.postEdit("Include Punch In Weapons", FieldIncludePunch, c.includePunch, include)
	c.mutate(func() { c.includePunch = include })
}

// IncludeKick reports whether the kick natural weapon is listed.
func (c *Character) IncludeKick() bool {
	return c.includeKick
}

// SetIncludeKick toggles the kick natural weapon.
func (c *Character) SetIncludeKick(include bool) {
	if include == c.includeKick {
		return
	}
	c.postEdit("Include Kick In Weapons", FieldIncludeKick, c.includeKick, include)
	c.mutate(func() { c.includeKick = include })
}

// IncludeKickBoots reports whether the kick with boots natural weapon is listed.
func (c *Character) IncludeKickBoots() bool {
	return c.includeBoots
}

// SetIncludeKickBoots toggles the kick with boots natural weapon.
func (c *Character) SetIncludeKickBoots(include bool) {
	if include == c.includeBoots {
		return
	}
	c.postEdit("Include Kick w/Boots In Weapons", FieldIncludeBoots, c.includeBoots, include)
	c.mutate(func() { c.includeBoots = include })
}

// SizeModifier returns the profile's size modifier.
func (c *Character) SizeModifier() int {
	return c.sizeModifier
}

// SetSizeModifier changes the size modifier, which feeds strength and hit point costs.
func (c *Character) SetSizeModifier(sm int) {
	if sm == c.sizeModifier {
		return
	}
	c.postEdit("Size Modifier Change", FieldSizeModifier, c.sizeModifier, sm)
	c.mutate(func() {
		c.sizeModifier = sm
		c.batch.dirty.attributePoints = true
	})
}

// ApplySettings switches rules on a live sheet and re-derives everything in one batch.
func (c *Character) ApplySettings(s rules.Settings) error {
	if err := s.Validate(); err != nil {
		return errors.Wrap(err, "invalid rule settings")
	}
	if s.WeightUnits == "" {
		s.WeightUnits = units.LB
	}
	c.Batch(func() {
		old := c.settings
		c.settings = s
		if old.UseOptionalStrength != s.UseOptionalStrength {
			c.batch.dirty.attributePoints = true
		}
		if old.UseGurpsMetric != s.UseGurpsMetric || old.WeightUnits != s.WeightUnits {
			c.refreshEquipment()
			c.batch.dirty.equipment = true
		}
		if old != s {
			c.batch.didModify = true
		}
	})
	return nil
}

func (c *Character) postEdit(label string, id FieldID, before, after any) {
	if c.recorder == nil || c.recorder.InReplay() {
		return
	}
	c.recorder.Record(&undo.FieldEdit{Label: label, Field: string(id), Before: before, After: after})
}

// calculateAll rebuilds every derived cache without emitting notifications.
func (c *Character) calculateAll() {
	c.refreshEquipment()
	c.applyFeatures()
	c.calculateAttributePoints()
	c.calculateAdvantagePoints()
	c.calculateSkillPoints()
	c.calculateSpellPoints()
	c.calculateWeightAndWealthCarried()
	c.calculateWealthNotCarried()
}
