package traits

import (
	"slices"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/feature"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Skill is a skill or technique, or a container of them.
type Skill struct {
	ID             string            `json:"id,omitempty"`
	Name           string            `json:"name"`
	Specialization string            `json:"specialization,omitempty"`
	Container      bool              `json:"container,omitempty"`
	Categories     []string          `json:"categories,omitempty"`
	Points         int               `json:"points,omitempty"`
	RelativeLevel  int               `json:"relative_level,omitempty"`
	Disabled       bool              `json:"disabled,omitempty"`
	Features       []feature.Feature `json:"features,omitempty"`
	Children       []*Skill          `json:"children,omitempty"`
}

// Validate checks the row.
func (s *Skill) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Name", s.Name, vb)
	if s.Points < 0 {
		vb.InvalidField("Points", "must not be negative")
	}
	return vb.Build()
}

// Matches reports whether the skill has name and, when given, specialization, ignoring case.
func (s *Skill) Matches(name, specialization string) bool {
	if !strings.EqualFold(s.Name, name) {
		return false
	}
	return specialization == "" || strings.EqualFold(s.Specialization, specialization)
}

// IsEnabled reports whether the row contributes features.
func (s *Skill) IsEnabled() bool {
	return !s.Disabled
}

// ChildRows returns the direct children.
func (s *Skill) ChildRows() []*Skill {
	return s.Children
}

// OwnFeatures returns the row's features.
func (s *Skill) OwnFeatures() []feature.Feature {
	return s.Features
}

// DisplayName labels the row in tooltips.
func (s *Skill) DisplayName() string {
	if s.Specialization != "" {
		return s.Name + " (" + s.Specialization + ")"
	}
	return s.Name
}

// FeatureLevel is always zero for skills.
func (s *Skill) FeatureLevel() int {
	return 0
}

// AddChild appends child.
func (s *Skill) AddChild(child *Skill) {
	s.Children = append(s.Children, child)
}

// RemoveChild removes child, reporting whether it was present.
func (s *Skill) RemoveChild(child *Skill) bool {
	i := slices.Index(s.Children, child)
	if i < 0 {
		return false
	}
	s.Children = slices.Delete(s.Children, i, i+1)
	return true
}
