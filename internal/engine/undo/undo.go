// Package undo records reversible sheet edits and replays them without re-recording.
package undo

//go:generate mockgen -destination=mock/mock_target.go -package=undomock github.com/KirkDiggler/rpg-sheet/internal/engine/undo Target

import (
	"log/slog"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// DefaultLimit is the number of edits kept when Config.Limit is unset.
const DefaultLimit = 100

// Target is what edits are replayed against.
type Target interface {
	// SetField writes value to the field addressed by its wire key.
	SetField(field string, value any) error
	// Batch runs fn inside one mutation batch.
	Batch(fn func())
}

// Edit is a reversible change.
type Edit interface {
	Name() string
	Undo(target Target) error
	Redo(target Target) error
}

// FieldEdit restores a single field to its effective value before or after a change.
type FieldEdit struct {
	Label  string
	Field  string
	Before any
	After  any
}

// Name returns the edit's label.
func (e *FieldEdit) Name() string {
	return e.Label
}

// Undo writes Before.
func (e *FieldEdit) Undo(target Target) error {
	return target.SetField(e.Field, e.Before)
}

// Redo writes After.
func (e *FieldEdit) Redo(target Target) error {
	return target.SetField(e.Field, e.After)
}

// Compound groups edits that undo and redo together.
type Compound struct {
	Label string
	Edits []Edit
}

// Name returns the group's label.
func (c *Compound) Name() string {
	return c.Label
}

// Undo reverts the edits in reverse order.
func (c *Compound) Undo(target Target) error {
	for i := len(c.Edits) - 1; i >= 0; i-- {
		if err := c.Edits[i].Undo(target); err != nil {
			return errors.Wrapf(err, "undo %q", c.Edits[i].Name())
		}
	}
	return nil
}

// Redo reapplies the edits in order.
func (c *Compound) Redo(target Target) error {
	for _, e := range c.Edits {
		if err := e.Redo(target); err != nil {
			return errors.Wrapf(err, "redo %q", e.Name())
		}
	}
	return nil
}

// Config configures a Manager
type Config struct {
	// Limit caps the undo history. Zero means DefaultLimit.
	Limit int
}

// Validate validates the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Limit < 0 {
		vb.InvalidField("Limit", "must not be negative")
	}
	return vb.Build()
}

// Manager keeps undo and redo stacks. It is not safe for concurrent use; callers that
// share one across goroutines hold their own lock, as they must for the sheet it edits.
type Manager struct {
	limit     int
	undo      []Edit
	redo      []Edit
	replaying bool
	groups    []*Compound
}

// New creates a manager. A nil config uses defaults.
func New(cfg *Config) (*Manager, error) {
	m := &Manager{limit: DefaultLimit}
	if cfg == nil {
		return m, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid undo config")
	}
	if cfg.Limit > 0 {
		m.limit = cfg.Limit
	}
	return m, nil
}

// InReplay reports whether an undo or redo is running. Edits recorded meanwhile are dropped.
func (m *Manager) InReplay() bool {
	return m.replaying
}

// Record pushes e onto the undo stack, or onto the innermost open group, and clears the
// redo stack.
func (m *Manager) Record(e Edit) {
	if m.replaying || e == nil {
		return
	}
	if n := len(m.groups); n > 0 {
		g := m.groups[n-1]
		g.Edits = append(g.Edits, e)
		return
	}
	m.push(e)
}

func (m *Manager) push(e Edit) {
	m.undo = append(m.undo, e)
	if over := len(m.undo) - m.limit; over > 0 {
		m.undo = m.undo[over:]
	}
	m.redo = nil
}

// Begin opens a group; edits recorded until the matching End undo as one.
func (m *Manager) Begin(label string) {
	m.groups = append(m.groups, &Compound{Label: label})
}

// End closes the innermost group. Empty groups are discarded; a group with a single edit
// is recorded as that edit.
func (m *Manager) End() {
	n := len(m.groups)
	if n == 0 {
		slog.Warn("undo group ended without begin")
		return
	}
	g := m.groups[n-1]
	m.groups = m.groups[:n-1]
	switch len(g.Edits) {
	case 0:
	case 1:
		m.Record(g.Edits[0])
	default:
		m.Record(g)
	}
}

// Abort closes the innermost group and drops the edits recorded in it.
func (m *Manager) Abort() {
	n := len(m.groups)
	if n == 0 {
		slog.Warn("undo group aborted without begin")
		return
	}
	m.groups = m.groups[:n-1]
}

// CanUndo reports whether there is an edit to undo.
func (m *Manager) CanUndo() bool {
	return len(m.undo) > 0
}

// CanRedo reports whether there is an edit to redo.
func (m *Manager) CanRedo() bool {
	return len(m.redo) > 0
}

// UndoName returns the label of the next edit Undo would revert.
func (m *Manager) UndoName() string {
	if len(m.undo) == 0 {
		return ""
	}
	return m.undo[len(m.undo)-1].Name()
}

// RedoName returns the label of the next edit Redo would reapply.
func (m *Manager) RedoName() string {
	if len(m.redo) == 0 {
		return ""
	}
	return m.redo[len(m.redo)-1].Name()
}

// Undo reverts the latest edit against target inside one batch.
func (m *Manager) Undo(target Target) (string, error) {
	if len(m.undo) == 0 {
		return "", errors.FailedPrecondition("nothing to undo")
	}
	e := m.undo[len(m.undo)-1]
	if err := m.replay(target, e.Undo); err != nil {
		return "", errors.Wrapf(err, "failed to undo %q", e.Name())
	}
	m.undo = m.undo[:len(m.undo)-1]
	m.redo = append(m.redo, e)
	return e.Name(), nil
}

// Redo reapplies the latest undone edit against target inside one batch.
func (m *Manager) Redo(target Target) (string, error) {
	if len(m.redo) == 0 {
		return "", errors.FailedPrecondition("nothing to redo")
	}
	e := m.redo[len(m.redo)-1]
	if err := m.replay(target, e.Redo); err != nil {
		return "", errors.Wrapf(err, "failed to redo %q", e.Name())
	}
	m.redo = m.redo[:len(m.redo)-1]
	m.undo = append(m.undo, e)
	return e.Name(), nil
}

func (m *Manager) replay(target Target, fn func(Target) error) error {
	if target == nil {
		return errors.InvalidArgument("target is required")
	}
	m.replaying = true
	defer func() { m.replaying = false }()

	var err error
	target.Batch(func() {
		err = fn(target)
	})
	return err
}
