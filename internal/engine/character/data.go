package character

import (
	"time"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/traits"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Data is the persisted form of a sheet: base values, damage counters, flags and the item
// forests. Everything else is derived on Load.
type Data struct {
	CreatedOn  time.Time `json:"created_on"`
	ModifiedOn time.Time `json:"modified_on"`

	Strength     *int    `json:"st,omitempty"`
	Dexterity    *int    `json:"dx,omitempty"`
	Intelligence *int    `json:"iq,omitempty"`
	Health       *int    `json:"ht,omitempty"`
	Will         int     `json:"will,omitempty"`
	Perception   int     `json:"perception,omitempty"`
	Speed        float64 `json:"speed,omitempty"`
	Move         int     `json:"move,omitempty"`
	HitPoints    int     `json:"hp,omitempty"`
	Fatigue      int     `json:"fp,omitempty"`
	HPDamage     int     `json:"hp_damage,omitempty"`
	FPDamage     int     `json:"fp_damage,omitempty"`
	TotalPoints  *int    `json:"total_points,omitempty"`
	SizeModifier int     `json:"size_modifier,omitempty"`

	// UnspentPoints, when present, overrides the total so that the sheet has this many
	// points left after recomputation.
	UnspentPoints int `json:"unspent_points,omitempty"`

	IncludePunch     *bool `json:"include_punch,omitempty"`
	IncludeKick      *bool `json:"include_kick,omitempty"`
	IncludeKickBoots *bool `json:"include_kick_with_boots,omitempty"`

	// CurrentHP and CurrentFP are read from older sheets that stored current values
	// instead of damage.
	CurrentHP *int `json:"current_hp,omitempty"`
	CurrentFP *int `json:"current_fp,omitempty"`

	Advantages     []*traits.Advantage    `json:"advantages,omitempty"`
	Skills         []*traits.Skill        `json:"skills,omitempty"`
	Spells         []*traits.Spell        `json:"spells,omitempty"`
	Equipment      []*equipment.Equipment `json:"equipment,omitempty"`
	OtherEquipment []*equipment.Equipment `json:"other_equipment,omitempty"`
	Notes          []*traits.Note         `json:"notes,omitempty"`
}

// Save returns the persisted form of the sheet. The item slices are shared with the sheet.
func (c *Character) Save() *Data {
	return &Data{
		CreatedOn:        c.createdOn,
		ModifiedOn:       c.lastModified,
		Strength:         ptr(c.strength),
		Dexterity:        ptr(c.dexterity),
		Intelligence:     ptr(c.intelligence),
		Health:           ptr(c.health),
		Will:             c.will,
		Perception:       c.perception,
		Speed:            c.speed,
		Move:             c.move,
		HitPoints:        c.hitPoints,
		Fatigue:          c.fatigue,
		HPDamage:         c.hpDamage,
		FPDamage:         c.fpDamage,
		TotalPoints:      ptr(c.totalPoints),
		SizeModifier:     c.sizeModifier,
		IncludePunch:     ptr(c.includePunch),
		IncludeKick:      ptr(c.includeKick),
		IncludeKickBoots: ptr(c.includeBoots),
		Advantages:       c.advantages.Roots(),
		Skills:           c.skills.Roots(),
		Spells:           c.spells.Roots(),
		Equipment:        c.equipment.Roots(),
		OtherEquipment:   c.otherEquipment.Roots(),
		Notes:            c.notes.Roots(),
	}
}

// Load replaces the sheet with d. Missing values take their defaults, every derived value is
// recomputed once, and no notifications or undo edits are produced.
func (c *Character) Load(d *Data) error {
	if d == nil {
		return errors.InvalidArgument("data is required")
	}
	if c.InBatch() {
		return errors.FailedPrecondition("cannot load during a batch")
	}

	c.resetPrimitives()
	if !d.CreatedOn.IsZero() {
		c.createdOn = d.CreatedOn
	}
	if !d.ModifiedOn.IsZero() {
		c.lastModified = d.ModifiedOn
	}
	setIfPresent(&c.strength, d.Strength)
	setIfPresent(&c.dexterity, d.Dexterity)
	setIfPresent(&c.intelligence, d.Intelligence)
	setIfPresent(&c.health, d.Health)
	setIfPresent(&c.totalPoints, d.TotalPoints)
	setIfPresent(&c.includePunch, d.IncludePunch)
	setIfPresent(&c.includeKick, d.IncludeKick)
	setIfPresent(&c.includeBoots, d.IncludeKickBoots)
	c.will = d.Will
	c.perception = d.Perception
	c.speed = d.Speed
	c.move = d.Move
	c.hitPoints = d.HitPoints
	c.fatigue = d.Fatigue
	c.hpDamage = d.HPDamage
	c.fpDamage = d.FPDamage
	c.sizeModifier = d.SizeModifier

	c.advantages.Set(d.Advantages)
	c.skills.Set(d.Skills)
	c.spells.Set(d.Spells)
	c.equipment.Set(d.Equipment)
	c.otherEquipment.Set(d.OtherEquipment)
	c.notes.Set(d.Notes)

	c.calculateAll()

	if d.UnspentPoints != 0 {
		c.totalPoints = d.UnspentPoints + c.SpentPoints()
	}
	if d.CurrentHP != nil {
		c.hpDamage = -min(*d.CurrentHP-c.HitPoints(), 0)
	}
	if d.CurrentFP != nil {
		c.fpDamage = -min(*d.CurrentFP-c.FatiguePoints(), 0)
	}
	c.batch.changes = nil
	return nil
}

func ptr[T any](v T) *T {
	return &v
}

func setIfPresent[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
