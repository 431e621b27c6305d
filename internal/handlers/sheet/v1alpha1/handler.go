// Package v1alpha1 handles the sheet gRPC service interface
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-sheet/internal/engine/character"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/traits"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
)

// HandlerConfig holds dependencies for the sheet handler
type HandlerConfig struct {
	SheetService sheet.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.SheetService == nil {
		return errors.InvalidArgument("sheet service is required")
	}
	return nil
}

// Handler implements the sheet gRPC service
type Handler struct {
	sheetService sheet.Service
}

// NewHandler creates a new sheet handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		sheetService: cfg.SheetService,
	}, nil
}

var _ SheetServiceServer = (*Handler)(nil)

func requireSheetID(req *structpb.Struct) (string, error) {
	id := stringField(req, KeySheetID)
	if id == "" {
		return "", errors.ToGRPCError(errors.InvalidArgument("sheet_id is required"))
	}
	return id, nil
}

// CreateSheet creates a sheet, optionally seeded with persisted data
func (h *Handler) CreateSheet(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	ownerID := stringField(req, KeyOwnerID)
	if ownerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("owner_id is required"))
	}

	input := &sheet.CreateSheetInput{
		OwnerID: ownerID,
		Name:    stringField(req, KeyName),
	}
	data := &character.Data{}
	found, err := decodeInto(req, KeyData, data)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if found {
		input.Data = data
	}

	out, err := h.sheetService.CreateSheet(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	record, err := recordToValue(out.Record)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{KeySheet: record}}, nil
}

// GetSheet returns the stored sheet
func (h *Handler) GetSheet(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := requireSheetID(req)
	if err != nil {
		return nil, err
	}

	out, err := h.sheetService.GetSheet(ctx, &sheet.GetSheetInput{SheetID: id})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	record, err := recordToValue(out.Record)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{KeySheet: record}}, nil
}

// ListSheets returns an owner's sheets
func (h *Handler) ListSheets(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	ownerID := stringField(req, KeyOwnerID)
	if ownerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("owner_id is required"))
	}

	out, err := h.sheetService.ListSheets(ctx, &sheet.ListSheetsInput{OwnerID: ownerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	sheets := make([]*structpb.Value, 0, len(out.Records))
	for _, r := range out.Records {
		record, err := recordToValue(r)
		if err != nil {
			return nil, errors.ToGRPCError(err)
		}
		sheets = append(sheets, record)
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		KeySheets: structpb.NewListValue(&structpb.ListValue{Values: sheets}),
	}}, nil
}

// DeleteSheet removes a sheet
func (h *Handler) DeleteSheet(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := requireSheetID(req)
	if err != nil {
		return nil, err
	}

	if _, err := h.sheetService.DeleteSheet(ctx, &sheet.DeleteSheetInput{SheetID: id}); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &structpb.Struct{}, nil
}

// GetFields reads field values. An empty or missing field list reads every field.
func (h *Handler) GetFields(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := requireSheetID(req)
	if err != nil {
		return nil, err
	}

	input := &sheet.GetFieldsInput{SheetID: id}
	for _, v := range req.GetFields()[KeyFields].GetListValue().GetValues() {
		field := v.GetStringValue()
		if field == "" {
			return nil, errors.ToGRPCError(errors.InvalidArgument("fields must be non-empty strings"))
		}
		input.Fields = append(input.Fields, field)
	}

	out, err := h.sheetService.GetFields(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	values, err := valuesToStruct(out.Values)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		KeyValues: structpb.NewStructValue(values),
	}}, nil
}

// ApplyEdits writes fields in one batch and returns the coalesced changes
func (h *Handler) ApplyEdits(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := requireSheetID(req)
	if err != nil {
		return nil, err
	}

	input := &sheet.ApplyEditsInput{
		SheetID: id,
		Label:   stringField(req, KeyLabel),
	}
	for _, v := range req.GetFields()[KeyEdits].GetListValue().GetValues() {
		edit := v.GetStructValue()
		field := stringField(edit, KeyField)
		if field == "" {
			return nil, errors.ToGRPCError(errors.InvalidArgument("every edit needs a field"))
		}
		value, ok := edit.GetFields()[KeyValue]
		if !ok {
			return nil, errors.ToGRPCError(errors.InvalidArgumentf("edit of %s has no value", field))
		}
		input.Edits = append(input.Edits, sheet.FieldEdit{Field: field, Value: value.AsInterface()})
	}
	if len(input.Edits) == 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("edits are required"))
	}

	out, err := h.sheetService.ApplyEdits(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	changes, err := changesToList(out.Changes)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{KeyChanges: changes}}, nil
}

// AddEquipment adds a row to one of the equipment forests
func (h *Handler) AddEquipment(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := requireSheetID(req)
	if err != nil {
		return nil, err
	}

	loc, ok := equipment.LocationFromString(stringField(req, KeyLocation))
	if !ok {
		return nil, errors.ToGRPCError(errors.InvalidArgumentf("invalid location %q", stringField(req, KeyLocation)))
	}
	item := &equipment.Equipment{}
	found, err := decodeInto(req, KeyEquipment, item)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if !found {
		return nil, errors.ToGRPCError(errors.InvalidArgument("equipment is required"))
	}

	out, err := h.sheetService.AddEquipment(ctx, &sheet.AddEquipmentInput{
		SheetID:   id,
		Equipment: item,
		Location:  loc,
		ParentID:  stringField(req, KeyParentID),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	added, err := encode(out.Equipment)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	changes, err := changesToList(out.Changes)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		KeyEquipment: structpb.NewStructValue(added),
		KeyChanges:   changes,
	}}, nil
}

// RemoveEquipment deletes a row and its contents
func (h *Handler) RemoveEquipment(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := requireSheetID(req)
	if err != nil {
		return nil, err
	}
	equipmentID := stringField(req, KeyEquipmentID)
	if equipmentID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("equipment_id is required"))
	}

	out, err := h.sheetService.RemoveEquipment(ctx, &sheet.RemoveEquipmentInput{
		SheetID:     id,
		EquipmentID: equipmentID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	changes, err := changesToList(out.Changes)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{KeyChanges: changes}}, nil
}

// AddAdvantage adds an advantage, optionally inside a container
func (h *Handler) AddAdvantage(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := requireSheetID(req)
	if err != nil {
		return nil, err
	}

	adv := &traits.Advantage{}
	found, err := decodeInto(req, KeyAdvantage, adv)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if !found {
		return nil, errors.ToGRPCError(errors.InvalidArgument("advantage is required"))
	}

	out, err := h.sheetService.AddAdvantage(ctx, &sheet.AddAdvantageInput{
		SheetID:   id,
		Advantage: adv,
		ParentID:  stringField(req, KeyParentID),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	added, err := encode(out.Advantage)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	changes, err := changesToList(out.Changes)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		KeyAdvantage: structpb.NewStructValue(added),
		KeyChanges:   changes,
	}}, nil
}

func historyResponse(name string, changes []character.Change, canUndo, canRedo bool) (*structpb.Struct, error) {
	list, err := changesToList(changes)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		KeyEditName: structpb.NewStringValue(name),
		KeyChanges:  list,
		KeyCanUndo:  structpb.NewBoolValue(canUndo),
		KeyCanRedo:  structpb.NewBoolValue(canRedo),
	}}, nil
}

// Undo reverts the latest edit
func (h *Handler) Undo(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := requireSheetID(req)
	if err != nil {
		return nil, err
	}

	out, err := h.sheetService.Undo(ctx, &sheet.UndoInput{SheetID: id})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return historyResponse(out.EditName, out.Changes, out.CanUndo, out.CanRedo)
}

// Redo reapplies the latest undone edit
func (h *Handler) Redo(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := requireSheetID(req)
	if err != nil {
		return nil, err
	}

	out, err := h.sheetService.Redo(ctx, &sheet.RedoInput{SheetID: id})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return historyResponse(out.EditName, out.Changes, out.CanUndo, out.CanRedo)
}

// RollDamage rolls thrust or swing damage
func (h *Handler) RollDamage(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := requireSheetID(req)
	if err != nil {
		return nil, err
	}
	kind := stringField(req, KeyKind)
	if kind == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("kind is required"))
	}

	out, err := h.sheetService.RollDamage(ctx, &sheet.RollDamageInput{
		SheetID: id,
		Kind:    sheet.DamageKind(kind),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	rolls := make([]*structpb.Value, 0, len(out.Result.Rolls))
	for _, r := range out.Result.Rolls {
		rolls = append(rolls, structpb.NewNumberValue(float64(r)))
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		KeyNotation: structpb.NewStringValue(out.Result.Notation),
		KeyRolls:    structpb.NewListValue(&structpb.ListValue{Values: rolls}),
		KeyTotal:    structpb.NewNumberValue(float64(out.Result.Total)),
	}}, nil
}
