// Package sheet implements the sheet orchestrator: it loads a stored sheet into the
// derivation engine, applies edits in batches, keeps per-sheet undo history and saves the
// result.
package sheet

//go:generate mockgen -destination=mock/mock_service.go -package=sheetmock github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet Service

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/rpg-sheet/internal/engine/character"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/undo"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dice"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/rules"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/traits"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	sheetrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/sheet"
)

const (
	tracerName = "github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"

	// DefaultSheetName is used when a sheet is created without a name
	DefaultSheetName = "Unnamed Character"

	// DefaultEditLabel names grouped edits that were not given a label
	DefaultEditLabel = "Edit Sheet"
)

// Service defines the interface for sheet operations
type Service interface {
	CreateSheet(ctx context.Context, input *CreateSheetInput) (*CreateSheetOutput, error)
	GetSheet(ctx context.Context, input *GetSheetInput) (*GetSheetOutput, error)
	ListSheets(ctx context.Context, input *ListSheetsInput) (*ListSheetsOutput, error)
	DeleteSheet(ctx context.Context, input *DeleteSheetInput) (*DeleteSheetOutput, error)

	// Field access
	GetFields(ctx context.Context, input *GetFieldsInput) (*GetFieldsOutput, error)
	ApplyEdits(ctx context.Context, input *ApplyEditsInput) (*ApplyEditsOutput, error)

	// Item forests
	AddEquipment(ctx context.Context, input *AddEquipmentInput) (*AddEquipmentOutput, error)
	RemoveEquipment(ctx context.Context, input *RemoveEquipmentInput) (*RemoveEquipmentOutput, error)
	AddAdvantage(ctx context.Context, input *AddAdvantageInput) (*AddAdvantageOutput, error)

	// History
	Undo(ctx context.Context, input *UndoInput) (*UndoOutput, error)
	Redo(ctx context.Context, input *RedoInput) (*RedoOutput, error)

	RollDamage(ctx context.Context, input *RollDamageInput) (*RollDamageOutput, error)
}

// Config holds the dependencies for the sheet orchestrator
type Config struct {
	Repository  sheetrepo.Repository
	Adapter     *rpgtoolkit.Adapter
	IDGenerator idgen.Generator
	// Clock stamps last-modified times. Defaults to the wall clock.
	Clock    clock.Clock
	Settings rules.Settings
	// UndoLimit caps each sheet's undo history. Zero means undo.DefaultLimit.
	UndoLimit int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Adapter == nil {
		vb.RequiredField("Adapter")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	errors.ValidateNonNegative("UndoLimit", c.UndoLimit, vb)
	if err := c.Settings.Validate(); err != nil {
		vb.InvalidField("Settings", err.Error())
	}

	return vb.Build()
}

// history is the in-process state kept for one sheet between requests
type history struct {
	mu    sync.Mutex
	edits *undo.Manager
}

type orchestrator struct {
	repo      sheetrepo.Repository
	adapter   *rpgtoolkit.Adapter
	idGen     idgen.Generator
	clock     clock.Clock
	settings  rules.Settings
	undoLimit int
	tracer    trace.Tracer

	mu        sync.Mutex
	histories map[string]*history
}

// NewOrchestrator creates a new sheet orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &orchestrator{
		repo:      cfg.Repository,
		adapter:   cfg.Adapter,
		idGen:     cfg.IDGenerator,
		clock:     c,
		settings:  cfg.Settings,
		undoLimit: cfg.UndoLimit,
		tracer:    otel.Tracer(tracerName),
		histories: make(map[string]*history),
	}, nil
}

func (o *orchestrator) startSpan(ctx context.Context, name, sheetID string) (context.Context, trace.Span) {
	return o.tracer.Start(ctx, name, trace.WithAttributes(attribute.String("sheet.id", sheetID)))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// historyFor returns the sheet's history, creating it on first use
func (o *orchestrator) historyFor(sheetID string) (*history, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if h, ok := o.histories[sheetID]; ok {
		return h, nil
	}
	edits, err := undo.New(&undo.Config{Limit: o.undoLimit})
	if err != nil {
		return nil, err
	}
	h := &history{edits: edits}
	o.histories[sheetID] = h
	return h, nil
}

func (o *orchestrator) forget(sheetID string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.histories, sheetID)
}

func (o *orchestrator) newCharacter() (*character.Character, error) {
	c, err := character.New(&character.Config{
		Settings: o.settings,
		Clock:    o.clock,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character")
	}
	return c, nil
}

// load reads the sheet and derives its state. The returned character has no notifier
// or recorder.
func (o *orchestrator) load(ctx context.Context, sheetID string) (*sheetrepo.Record, *character.Character, error) {
	out, err := o.repo.Get(ctx, sheetrepo.GetInput{ID: sheetID})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to get sheet")
	}

	c, err := o.newCharacter()
	if err != nil {
		return nil, nil, err
	}
	if err := c.Load(out.Record.Data); err != nil {
		return nil, nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to load sheet")
	}
	return out.Record, c, nil
}

// pendingChanges holds committed field changes until the sheet has been saved
type pendingChanges struct {
	changes []character.Change
}

func (p *pendingChanges) FieldChanged(id character.FieldID, value any) {
	p.changes = append(p.changes, character.Change{Field: id, Value: value})
}

// edit runs fn against the loaded sheet while holding the sheet's history lock, then saves
// the result. Setter edits are recorded for undo. Committed changes are published on the
// event bus once the save succeeds, and returned.
func (o *orchestrator) edit(ctx context.Context, sheetID string, fn func(c *character.Character, h *undo.Manager) error) (*sheetrepo.Record, []character.Change, error) {
	h, err := o.historyFor(sheetID)
	if err != nil {
		return nil, nil, err
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	record, c, err := o.load(ctx, sheetID)
	if err != nil {
		return nil, nil, err
	}
	pending := &pendingChanges{}
	c.SetNotifier(pending)
	c.SetRecorder(h.edits)
	defer c.SetRecorder(nil)

	// edits recorded by a request that fails to save never reach the history
	h.edits.Begin(DefaultEditLabel)
	if err := fn(c, h.edits); err != nil {
		h.edits.Abort()
		return nil, nil, err
	}

	record.Data = c.Save()
	out, err := o.repo.Update(ctx, sheetrepo.UpdateInput{Record: record})
	if err != nil {
		h.edits.Abort()
		return nil, nil, errors.Wrap(err, "failed to save sheet")
	}
	h.edits.End()

	notifier := o.adapter.NotifierFor(ctx, sheetID)
	for _, ch := range pending.changes {
		notifier.FieldChanged(ch.Field, ch.Value)
	}
	return out.Record, pending.changes, nil
}

// CreateSheet creates and stores a new sheet with default base values
func (o *orchestrator) CreateSheet(ctx context.Context, input *CreateSheetInput) (_ *CreateSheetOutput, err error) {
	ctx, span := o.startSpan(ctx, "sheet.Create", "")
	defer func() { endSpan(span, err) }()

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}

	c, err := o.newCharacter()
	if err != nil {
		return nil, err
	}
	if input.Data != nil {
		if err := c.Load(input.Data); err != nil {
			return nil, errors.Wrap(err, "failed to load sheet data")
		}
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = DefaultSheetName
	}

	out, err := o.repo.Create(ctx, sheetrepo.CreateInput{
		Record: &sheetrepo.Record{
			ID:      o.idGen.Generate(),
			OwnerID: input.OwnerID,
			Name:    name,
			Data:    c.Save(),
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create sheet")
	}
	span.SetAttributes(attribute.String("sheet.id", out.Record.ID))

	slog.InfoContext(ctx, "Sheet created",
		"sheet_id", out.Record.ID,
		"owner_id", out.Record.OwnerID,
		"total_points", c.TotalPoints(),
	)

	return &CreateSheetOutput{Record: out.Record}, nil
}

// GetSheet retrieves a stored sheet
func (o *orchestrator) GetSheet(ctx context.Context, input *GetSheetInput) (_ *GetSheetOutput, err error) {
	if input == nil || input.SheetID == "" {
		return nil, errors.InvalidArgument("sheet ID is required")
	}
	ctx, span := o.startSpan(ctx, "sheet.Get", input.SheetID)
	defer func() { endSpan(span, err) }()

	out, err := o.repo.Get(ctx, sheetrepo.GetInput{ID: input.SheetID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sheet")
	}

	return &GetSheetOutput{Record: out.Record}, nil
}

// ListSheets lists an owner's sheets
func (o *orchestrator) ListSheets(ctx context.Context, input *ListSheetsInput) (_ *ListSheetsOutput, err error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}
	ctx, span := o.startSpan(ctx, "sheet.List", "")
	defer func() { endSpan(span, err) }()
	span.SetAttributes(attribute.String("owner.id", input.OwnerID))

	out, err := o.repo.ListByOwner(ctx, sheetrepo.ListByOwnerInput{OwnerID: input.OwnerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sheets")
	}

	return &ListSheetsOutput{Records: out.Records}, nil
}

// DeleteSheet removes a sheet and its undo history
func (o *orchestrator) DeleteSheet(ctx context.Context, input *DeleteSheetInput) (_ *DeleteSheetOutput, err error) {
	if input == nil || input.SheetID == "" {
		return nil, errors.InvalidArgument("sheet ID is required")
	}
	ctx, span := o.startSpan(ctx, "sheet.Delete", input.SheetID)
	defer func() { endSpan(span, err) }()

	if _, err := o.repo.Delete(ctx, sheetrepo.DeleteInput{ID: input.SheetID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete sheet")
	}
	o.forget(input.SheetID)

	slog.InfoContext(ctx, "Sheet deleted", "sheet_id", input.SheetID)

	return &DeleteSheetOutput{}, nil
}

// GetFields reads field values from the derived sheet
func (o *orchestrator) GetFields(ctx context.Context, input *GetFieldsInput) (_ *GetFieldsOutput, err error) {
	if input == nil || input.SheetID == "" {
		return nil, errors.InvalidArgument("sheet ID is required")
	}
	ctx, span := o.startSpan(ctx, "sheet.GetFields", input.SheetID)
	defer func() { endSpan(span, err) }()

	ids := make([]character.FieldID, 0, len(input.Fields))
	for _, f := range input.Fields {
		ids = append(ids, character.FieldID(f))
	}
	if len(ids) == 0 {
		ids = character.AllFields()
	}

	_, c, err := o.load(ctx, input.SheetID)
	if err != nil {
		return nil, err
	}

	values := make(map[string]any, len(ids))
	for _, id := range ids {
		v, ok := c.GetValueForID(id)
		if !ok {
			return nil, errors.InvalidArgumentf("unknown field %s", id).WithField(string(id))
		}
		values[string(id)] = v
	}

	return &GetFieldsOutput{Values: values}, nil
}

// ApplyEdits writes every edit inside one batch, so listeners see one coalesced change per
// field and undo reverts the whole set. A rejected edit leaves the stored sheet unchanged
// and publishes nothing.
func (o *orchestrator) ApplyEdits(ctx context.Context, input *ApplyEditsInput) (_ *ApplyEditsOutput, err error) {
	if input == nil || input.SheetID == "" {
		return nil, errors.InvalidArgument("sheet ID is required")
	}
	if len(input.Edits) == 0 {
		return nil, errors.InvalidArgument("at least one edit is required")
	}
	ctx, span := o.startSpan(ctx, "sheet.ApplyEdits", input.SheetID)
	defer func() { endSpan(span, err) }()
	span.SetAttributes(attribute.Int("sheet.edits", len(input.Edits)))

	label := input.Label
	if label == "" {
		label = DefaultEditLabel
	}

	record, changes, err := o.edit(ctx, input.SheetID, func(c *character.Character, h *undo.Manager) error {
		var editErr error
		h.Begin(label)
		c.Batch(func() {
			for _, e := range input.Edits {
				if editErr = c.SetField(e.Field, e.Value); editErr != nil {
					return
				}
			}
		})
		if editErr != nil {
			h.Abort()
			return editErr
		}
		h.End()
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Sheet edited",
		"sheet_id", input.SheetID,
		"edits", len(input.Edits),
		"changes", len(changes),
	)

	return &ApplyEditsOutput{Record: record, Changes: changes}, nil
}

// AddEquipment adds a row to the carried or not-carried forest, or inside a container
func (o *orchestrator) AddEquipment(ctx context.Context, input *AddEquipmentInput) (_ *AddEquipmentOutput, err error) {
	if input == nil || input.SheetID == "" {
		return nil, errors.InvalidArgument("sheet ID is required")
	}
	if input.Equipment == nil {
		return nil, errors.InvalidArgument("equipment is required")
	}
	ctx, span := o.startSpan(ctx, "sheet.AddEquipment", input.SheetID)
	defer func() { endSpan(span, err) }()

	loc := input.Location
	if loc == "" {
		loc = equipment.LocationCarried
	}
	item := input.Equipment
	if item.ID == "" {
		item.ID = o.idGen.Generate()
	}

	_, changes, err := o.edit(ctx, input.SheetID, func(c *character.Character, _ *undo.Manager) error {
		var parent *equipment.Equipment
		if input.ParentID != "" {
			p, _, ok := c.LocateEquipment(input.ParentID)
			if !ok {
				return errors.NotFoundf("container %s not found", input.ParentID)
			}
			parent = p
		}

		var addErr error
		c.Batch(func() {
			addErr = c.AddEquipment(item, loc, parent)
		})
		return addErr
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Equipment added",
		"sheet_id", input.SheetID,
		"equipment_id", item.ID,
		"location", string(loc),
	)

	return &AddEquipmentOutput{Equipment: item, Changes: changes}, nil
}

// RemoveEquipment deletes a row, and anything it contains, from the sheet
func (o *orchestrator) RemoveEquipment(ctx context.Context, input *RemoveEquipmentInput) (_ *RemoveEquipmentOutput, err error) {
	if input == nil || input.SheetID == "" {
		return nil, errors.InvalidArgument("sheet ID is required")
	}
	if input.EquipmentID == "" {
		return nil, errors.InvalidArgument("equipment ID is required")
	}
	ctx, span := o.startSpan(ctx, "sheet.RemoveEquipment", input.SheetID)
	defer func() { endSpan(span, err) }()

	_, changes, err := o.edit(ctx, input.SheetID, func(c *character.Character, _ *undo.Manager) error {
		item, _, ok := c.LocateEquipment(input.EquipmentID)
		if !ok {
			return errors.NotFoundf("equipment %s not found", input.EquipmentID)
		}

		var removeErr error
		c.Batch(func() {
			removeErr = c.RemoveEquipment(item)
		})
		return removeErr
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Equipment removed",
		"sheet_id", input.SheetID,
		"equipment_id", input.EquipmentID,
	)

	return &RemoveEquipmentOutput{Changes: changes}, nil
}

// AddAdvantage adds an advantage at the top of the forest or inside a container
func (o *orchestrator) AddAdvantage(ctx context.Context, input *AddAdvantageInput) (_ *AddAdvantageOutput, err error) {
	if input == nil || input.SheetID == "" {
		return nil, errors.InvalidArgument("sheet ID is required")
	}
	if input.Advantage == nil {
		return nil, errors.InvalidArgument("advantage is required")
	}
	if err := input.Advantage.Validate(); err != nil {
		return nil, err
	}
	ctx, span := o.startSpan(ctx, "sheet.AddAdvantage", input.SheetID)
	defer func() { endSpan(span, err) }()

	adv := input.Advantage
	if adv.ID == "" {
		adv.ID = o.idGen.Generate()
	}

	_, changes, err := o.edit(ctx, input.SheetID, func(c *character.Character, _ *undo.Manager) error {
		var parent *traits.Advantage
		if input.ParentID != "" {
			for a := range c.Advantages().All() {
				if a.ID == input.ParentID {
					parent = a
					break
				}
			}
			if parent == nil {
				return errors.NotFoundf("container %s not found", input.ParentID)
			}
			if !parent.Container {
				return errors.InvalidArgumentf("advantage %s is not a container", input.ParentID)
			}
		}

		c.Batch(func() {
			if parent == nil {
				c.Advantages().Add(adv)
				return
			}
			parent.AddChild(adv)
			c.MarkDirty(character.AdvantagesChanged)
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Advantage added",
		"sheet_id", input.SheetID,
		"advantage_id", adv.ID,
		"points", adv.AdjustedPoints(),
	)

	return &AddAdvantageOutput{Advantage: adv, Changes: changes}, nil
}

// Undo reverts the sheet's latest recorded edit
func (o *orchestrator) Undo(ctx context.Context, input *UndoInput) (_ *UndoOutput, err error) {
	if input == nil || input.SheetID == "" {
		return nil, errors.InvalidArgument("sheet ID is required")
	}
	ctx, span := o.startSpan(ctx, "sheet.Undo", input.SheetID)
	defer func() { endSpan(span, err) }()

	output := &UndoOutput{}
	_, output.Changes, err = o.edit(ctx, input.SheetID, func(c *character.Character, h *undo.Manager) error {
		name, undoErr := h.Undo(c)
		if undoErr != nil {
			return undoErr
		}
		output.EditName = name
		output.CanUndo = h.CanUndo()
		output.CanRedo = h.CanRedo()
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Edit undone", "sheet_id", input.SheetID, "edit", output.EditName)

	return output, nil
}

// Redo reapplies the sheet's latest undone edit
func (o *orchestrator) Redo(ctx context.Context, input *RedoInput) (_ *RedoOutput, err error) {
	if input == nil || input.SheetID == "" {
		return nil, errors.InvalidArgument("sheet ID is required")
	}
	ctx, span := o.startSpan(ctx, "sheet.Redo", input.SheetID)
	defer func() { endSpan(span, err) }()

	output := &RedoOutput{}
	_, output.Changes, err = o.edit(ctx, input.SheetID, func(c *character.Character, h *undo.Manager) error {
		name, redoErr := h.Redo(c)
		if redoErr != nil {
			return redoErr
		}
		output.EditName = name
		output.CanUndo = h.CanUndo()
		output.CanRedo = h.CanRedo()
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Edit redone", "sheet_id", input.SheetID, "edit", output.EditName)

	return output, nil
}

// RollDamage rolls the sheet's thrust or swing damage
func (o *orchestrator) RollDamage(ctx context.Context, input *RollDamageInput) (_ *RollDamageOutput, err error) {
	if input == nil || input.SheetID == "" {
		return nil, errors.InvalidArgument("sheet ID is required")
	}
	ctx, span := o.startSpan(ctx, "sheet.RollDamage", input.SheetID)
	defer func() { endSpan(span, err) }()

	_, c, err := o.load(ctx, input.SheetID)
	if err != nil {
		return nil, err
	}

	var d dice.Dice
	switch input.Kind {
	case DamageThrust:
		d = c.Thrust()
	case DamageSwing:
		d = c.Swing()
	default:
		return nil, errors.InvalidArgumentf("unsupported damage kind: %q", input.Kind)
	}

	result, err := o.adapter.RollDamage(ctx, input.SheetID, d)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll damage")
	}

	slog.InfoContext(ctx, "Damage rolled",
		"sheet_id", input.SheetID,
		"kind", string(input.Kind),
		"notation", result.Notation,
		"total", result.Total,
	)

	return &RollDamageOutput{Dice: d, Result: result}, nil
}
