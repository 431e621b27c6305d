package sheet

import (
	"github.com/KirkDiggler/rpg-sheet/internal/engine/character"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dice"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/traits"
	sheetrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/sheet"
)

// DamageKind selects which basic damage to roll
type DamageKind string

// Damage kinds
const (
	DamageThrust DamageKind = "thrust"
	DamageSwing  DamageKind = "swing"
)

// CreateSheetInput defines the request for creating a sheet
type CreateSheetInput struct {
	OwnerID string
	Name    string
	// Data optionally seeds the sheet, for example from an imported file
	Data *character.Data
}

// CreateSheetOutput defines the response for creating a sheet
type CreateSheetOutput struct {
	Record *sheetrepo.Record
}

// GetSheetInput defines the request for getting a sheet
type GetSheetInput struct {
	SheetID string
}

// GetSheetOutput defines the response for getting a sheet
type GetSheetOutput struct {
	Record *sheetrepo.Record
}

// ListSheetsInput defines the request for listing an owner's sheets
type ListSheetsInput struct {
	OwnerID string
}

// ListSheetsOutput defines the response for listing sheets
type ListSheetsOutput struct {
	Records []*sheetrepo.Record
}

// DeleteSheetInput defines the request for deleting a sheet
type DeleteSheetInput struct {
	SheetID string
}

// DeleteSheetOutput defines the response for deleting a sheet
type DeleteSheetOutput struct{}

// GetFieldsInput defines the request for reading field values.
// An empty Fields reads every field.
type GetFieldsInput struct {
	SheetID string
	Fields  []string
}

// GetFieldsOutput defines the response for reading field values
type GetFieldsOutput struct {
	Values map[string]any
}

// FieldEdit is one write addressed by a field key
type FieldEdit struct {
	Field string
	Value any
}

// ApplyEditsInput defines the request for writing several fields in one batch
type ApplyEditsInput struct {
	SheetID string
	// Label names the undo entry when more than one edit is applied
	Label string
	Edits []FieldEdit
}

// ApplyEditsOutput defines the response for applying edits
type ApplyEditsOutput struct {
	Record  *sheetrepo.Record
	Changes []character.Change
}

// AddEquipmentInput defines the request for adding equipment
type AddEquipmentInput struct {
	SheetID   string
	Equipment *equipment.Equipment
	Location  equipment.Location
	// ParentID places the row inside a container instead of at the top of the forest
	ParentID string
}

// AddEquipmentOutput defines the response for adding equipment
type AddEquipmentOutput struct {
	Equipment *equipment.Equipment
	Changes   []character.Change
}

// RemoveEquipmentInput defines the request for removing equipment
type RemoveEquipmentInput struct {
	SheetID     string
	EquipmentID string
}

// RemoveEquipmentOutput defines the response for removing equipment
type RemoveEquipmentOutput struct {
	Changes []character.Change
}

// AddAdvantageInput defines the request for adding an advantage
type AddAdvantageInput struct {
	SheetID   string
	Advantage *traits.Advantage
	// ParentID places the row inside a container advantage
	ParentID string
}

// AddAdvantageOutput defines the response for adding an advantage
type AddAdvantageOutput struct {
	Advantage *traits.Advantage
	Changes   []character.Change
}

// UndoInput defines the request for undoing the latest edit
type UndoInput struct {
	SheetID string
}

// UndoOutput defines the response for undoing an edit
type UndoOutput struct {
	EditName string
	Changes  []character.Change
	CanUndo  bool
	CanRedo  bool
}

// RedoInput defines the request for redoing the latest undone edit
type RedoInput struct {
	SheetID string
}

// RedoOutput defines the response for redoing an edit
type RedoOutput struct {
	EditName string
	Changes  []character.Change
	CanUndo  bool
	CanRedo  bool
}

// RollDamageInput defines the request for rolling basic damage
type RollDamageInput struct {
	SheetID string
	Kind    DamageKind
}

// RollDamageOutput defines the response for rolling basic damage
type RollDamageOutput struct {
	Dice   dice.Dice
	Result *dice.RollResult
}
