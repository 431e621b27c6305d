// Package rpgtoolkit connects sheets to the rpg-toolkit event bus and dice roller.
package rpgtoolkit

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-sheet/internal/engine/character"
	sheetdice "github.com/KirkDiggler/rpg-sheet/internal/entities/dice"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Event names published on the bus
const (
	EventFieldChanged = "sheet.field_changed"
	EventDamageRolled = "sheet.damage_rolled"
)

// Event context keys
const (
	ContextKeyField    = "field"
	ContextKeyValue    = "value"
	ContextKeyNotation = "notation"
	ContextKeyTotal    = "total"
)

// Adapter provides the toolkit services a sheet needs
type Adapter struct {
	eventBus   events.EventBus
	diceRoller dice.Roller
}

// AdapterConfig holds the dependencies for the adapter
type AdapterConfig struct {
	EventBus   events.EventBus
	DiceRoller dice.Roller
}

// Validate ensures all required dependencies are present
func (c *AdapterConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.EventBus == nil {
		return errors.InvalidArgument("event bus is required")
	}
	if c.DiceRoller == nil {
		return errors.InvalidArgument("dice roller is required")
	}
	return nil
}

// NewAdapter creates a new rpg-toolkit adapter
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Adapter{
		eventBus:   cfg.EventBus,
		diceRoller: cfg.DiceRoller,
	}, nil
}

// FieldChange is a decoded field-changed event
type FieldChange struct {
	SheetID string
	Field   character.FieldID
	Value   any
}

// NotifierFor returns a notifier that publishes the sheet's field changes on the bus.
// ctx is carried to every publish, so the notifier should not outlive the request.
func (a *Adapter) NotifierFor(ctx context.Context, sheetID string) *BusNotifier {
	return &BusNotifier{
		ctx:    ctx,
		bus:    a.eventBus,
		entity: wrapSheet(sheetID),
	}
}

// SubscribeFieldChanges calls fn for every field-changed event. It returns the subscription ID.
func (a *Adapter) SubscribeFieldChanges(priority int, fn func(ctx context.Context, change FieldChange) error) string {
	return a.eventBus.SubscribeFunc(EventFieldChanged, priority, func(ctx context.Context, e events.Event) error {
		change := FieldChange{}
		if source := e.Source(); source != nil {
			change.SheetID = source.GetID()
		}
		if field, ok := e.Context().Get(ContextKeyField); ok {
			if id, ok := field.(character.FieldID); ok {
				change.Field = id
			}
		}
		change.Value, _ = e.Context().Get(ContextKeyValue)
		return fn(ctx, change)
	})
}

// Unsubscribe removes a subscription created by SubscribeFieldChanges
func (a *Adapter) Unsubscribe(id string) error {
	if err := a.eventBus.Unsubscribe(id); err != nil {
		return errors.Wrapf(err, "failed to unsubscribe %s", id)
	}
	return nil
}

// RollDamage rolls d with the configured roller and announces the result for the sheet
func (a *Adapter) RollDamage(ctx context.Context, sheetID string, d sheetdice.Dice) (*sheetdice.RollResult, error) {
	result, err := d.Roll(a.diceRoller)
	if err != nil {
		return nil, err
	}

	event := events.NewGameEvent(EventDamageRolled, wrapSheet(sheetID), nil)
	event.Context().Set(ContextKeyNotation, result.Notation)
	event.Context().Set(ContextKeyTotal, result.Total)
	if err := a.eventBus.Publish(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to publish damage roll")
	}

	return result, nil
}

// BusNotifier publishes committed field changes as toolkit events
type BusNotifier struct {
	ctx    context.Context
	bus    events.EventBus
	entity *SheetEntity
}

// FieldChanged implements character.Notifier
func (n *BusNotifier) FieldChanged(id character.FieldID, value any) {
	event := events.NewGameEvent(EventFieldChanged, n.entity, nil)
	event.Context().Set(ContextKeyField, id)
	event.Context().Set(ContextKeyValue, value)

	if err := n.bus.Publish(n.ctx, event); err != nil {
		slog.WarnContext(n.ctx, "Failed to publish field change",
			"sheet_id", n.entity.ID,
			"field", string(id),
			"error", err)
	}
}

var _ character.Notifier = (*BusNotifier)(nil)
