// Package outline provides the forest container that holds a sheet's hierarchical rows
// (advantages, skills, spells, equipment, notes).
package outline

import (
	"encoding/json"
	"iter"
	"slices"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/feature"
)

// Root properties
const (
	// PropertyNotCarried marks the forest of equipment that is owned but not carried.
	// Features of rows in such a forest are never applied.
	PropertyNotCarried = "other_equipment"
)

// Row is a node in a forest. T is the concrete row type, normally a pointer.
type Row[T any] interface {
	comparable
	// IsEnabled reports whether the row and its subtree contribute to the sheet.
	IsEnabled() bool
	// ChildRows returns the row's direct children.
	ChildRows() []T
	// OwnFeatures returns the features this row contributes, excluding its children.
	OwnFeatures() []feature.Feature
	// DisplayName labels the row in tooltips.
	DisplayName() string
	// FeatureLevel is the level per-level features scale with.
	FeatureLevel() int
}

// ChildRemover is implemented by rows that can drop a child.
type ChildRemover[T any] interface {
	RemoveChild(child T) bool
}

// List is a forest of rows plus a property bag on its root.
type List[T Row[T]] struct {
	roots    []T
	props    map[string]any
	onChange func()
}

// NewList returns an empty forest.
func NewList[T Row[T]]() *List[T] {
	return &List[T]{props: make(map[string]any)}
}

// SetOnChange registers fn to run after every structural change made through the list.
func (l *List[T]) SetOnChange(fn func()) {
	l.onChange = fn
}

func (l *List[T]) changed() {
	if l.onChange != nil {
		l.onChange()
	}
}

// Roots returns the top-level rows.
func (l *List[T]) Roots() []T {
	return l.roots
}

// Len returns the number of top-level rows.
func (l *List[T]) Len() int {
	return len(l.roots)
}

// Add appends rows at the top level.
func (l *List[T]) Add(rows ...T) {
	l.roots = append(l.roots, rows...)
	l.changed()
}

// Remove detaches row from wherever it is in the forest. It reports whether the row was found.
func (l *List[T]) Remove(row T) bool {
	if i := slices.Index(l.roots, row); i >= 0 {
		l.roots = slices.Delete(l.roots, i, i+1)
		l.changed()
		return true
	}
	for parent := range l.All() {
		remover, ok := any(parent).(ChildRemover[T])
		if !ok || !slices.Contains(parent.ChildRows(), row) {
			continue
		}
		if remover.RemoveChild(row) {
			l.changed()
			return true
		}
	}
	return false
}

// Set replaces the rows without running the change hook. Loaders use it.
func (l *List[T]) Set(rows []T) {
	l.roots = rows
}

// Clear removes every row.
func (l *List[T]) Clear() {
	l.roots = nil
	l.changed()
}

// Property returns a value from the root property bag.
func (l *List[T]) Property(key string) (any, bool) {
	v, ok := l.props[key]
	return v, ok
}

// SetProperty stores a value in the root property bag.
func (l *List[T]) SetProperty(key string, value any) {
	if l.props == nil {
		l.props = make(map[string]any)
	}
	l.props[key] = value
	l.changed()
}

// IsNotCarried reports whether the forest is marked with PropertyNotCarried.
func (l *List[T]) IsNotCarried() bool {
	v, ok := l.props[PropertyNotCarried].(bool)
	return ok && v
}

// All iterates every row in pre-order.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, r := range l.roots {
			if !walk(r, false, yield) {
				return
			}
		}
	}
}

// Enabled iterates rows in pre-order, skipping disabled rows and their subtrees.
func (l *List[T]) Enabled() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, r := range l.roots {
			if !walk(r, true, yield) {
				return
			}
		}
	}
}

func walk[T Row[T]](row T, enabledOnly bool, yield func(T) bool) bool {
	if enabledOnly && !row.IsEnabled() {
		return true
	}
	if !yield(row) {
		return false
	}
	for _, child := range row.ChildRows() {
		if !walk(child, enabledOnly, yield) {
			return false
		}
	}
	return true
}

// Features iterates the features of every enabled row with Owner and Level bound from the
// row. A not-carried forest yields nothing.
func (l *List[T]) Features() iter.Seq[feature.Feature] {
	return func(yield func(feature.Feature) bool) {
		if l.IsNotCarried() {
			return
		}
		for row := range l.Enabled() {
			for _, f := range row.OwnFeatures() {
				f.Owner = row.DisplayName()
				f.Level = row.FeatureLevel()
				if !yield(f) {
					return
				}
			}
		}
	}
}

// MarshalJSON writes the top-level rows as an array.
func (l *List[T]) MarshalJSON() ([]byte, error) {
	if l.roots == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.roots)
}

// UnmarshalJSON replaces the rows. Properties are kept.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	var roots []T
	if err := json.Unmarshal(data, &roots); err != nil {
		return err
	}
	l.roots = roots
	if l.props == nil {
		l.props = make(map[string]any)
	}
	return nil
}
