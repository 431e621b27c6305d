package traits

import (
	"slices"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/feature"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Spell is a spell or a container of them.
type Spell struct {
	ID         string            `json:"id,omitempty"`
	Name       string            `json:"name"`
	College    string            `json:"college,omitempty"`
	Container  bool              `json:"container,omitempty"`
	Categories []string          `json:"categories,omitempty"`
	Points     int               `json:"points,omitempty"`
	Disabled   bool              `json:"disabled,omitempty"`
	Features   []feature.Feature `json:"features,omitempty"`
	Children   []*Spell          `json:"children,omitempty"`
}

// Validate checks the row.
func (s *Spell) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Name", s.Name, vb)
	if s.Points < 0 {
		vb.InvalidField("Points", "must not be negative")
	}
	return vb.Build()
}

func (s *Spell) IsEnabled() bool                { return !s.Disabled }
func (s *Spell) ChildRows() []*Spell            { return s.Children }
func (s *Spell) OwnFeatures() []feature.Feature { return s.Features }
func (s *Spell) DisplayName() string            { return s.Name }
func (s *Spell) FeatureLevel() int              { return 0 }

// AddChild appends child.
func (s *Spell) AddChild(child *Spell) {
	s.Children = append(s.Children, child)
}

// RemoveChild removes child, reporting whether it was present.
func (s *Spell) RemoveChild(child *Spell) bool {
	i := slices.Index(s.Children, child)
	if i < 0 {
		return false
	}
	s.Children = slices.Delete(s.Children, i, i+1)
	return true
}
