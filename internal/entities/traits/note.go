package traits

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/feature"
)

// Note is free text, optionally grouping other notes.
type Note struct {
	Text     string  `json:"text"`
	Children []*Note `json:"children,omitempty"`
}

func (n *Note) IsEnabled() bool                { return true }
func (n *Note) ChildRows() []*Note             { return n.Children }
func (n *Note) OwnFeatures() []feature.Feature { return nil }
func (n *Note) DisplayName() string            { return n.Text }
func (n *Note) FeatureLevel() int              { return 0 }
