// Package builders provides test data builders for creating test fixtures
package builders

import (
	"time"

	"github.com/KirkDiggler/rpg-sheet/internal/engine/character"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/traits"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/units"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/sheet"
)

// SheetBuilder provides a fluent interface for building stored sheets
type SheetBuilder struct {
	record *sheet.Record
}

// NewSheetBuilder creates a new builder with an all-default sheet
func NewSheetBuilder() *SheetBuilder {
	created := time.Date(2024, 5, 4, 10, 0, 0, 0, time.UTC)
	return &SheetBuilder{
		record: &sheet.Record{
			ID:      "sheet-test-001",
			OwnerID: "owner-test-001",
			Name:    "Test Sheet",
			Data: &character.Data{
				CreatedOn:  created,
				ModifiedOn: created,
			},
			CreatedAt: created,
			UpdatedAt: created,
		},
	}
}

// WithID sets the sheet ID
func (b *SheetBuilder) WithID(id string) *SheetBuilder {
	b.record.ID = id
	return b
}

// WithOwnerID sets the owner ID
func (b *SheetBuilder) WithOwnerID(ownerID string) *SheetBuilder {
	b.record.OwnerID = ownerID
	return b
}

// WithName sets the sheet name
func (b *SheetBuilder) WithName(name string) *SheetBuilder {
	b.record.Name = name
	return b
}

// WithStrength sets base ST
func (b *SheetBuilder) WithStrength(st int) *SheetBuilder {
	b.record.Data.Strength = &st
	return b
}

// WithDexterity sets base DX
func (b *SheetBuilder) WithDexterity(dx int) *SheetBuilder {
	b.record.Data.Dexterity = &dx
	return b
}

// WithHealth sets base HT
func (b *SheetBuilder) WithHealth(ht int) *SheetBuilder {
	b.record.Data.Health = &ht
	return b
}

// WithAdvantage adds a top-level advantage
func (b *SheetBuilder) WithAdvantage(adv *traits.Advantage) *SheetBuilder {
	b.record.Data.Advantages = append(b.record.Data.Advantages, adv)
	return b
}

// WithCarried adds a carried item of the given weight in pounds
func (b *SheetBuilder) WithCarried(name string, pounds float64) *SheetBuilder {
	item := equipment.New(name, 1, units.Zero, units.NewWeight(units.FromFloat(pounds), units.LB))
	b.record.Data.Equipment = append(b.record.Data.Equipment, item)
	return b
}

// BuildData returns the persisted engine state
func (b *SheetBuilder) BuildData() *character.Data {
	return b.record.Data
}

// BuildRecord returns the stored sheet
func (b *SheetBuilder) BuildRecord() *sheet.Record {
	return b.record
}
