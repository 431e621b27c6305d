// Package rules holds the optional-rule switches and encumbrance tiers that sheet
// calculations depend on.
package rules

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/units"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// DefaultInitialPoints is the point budget given to new sheets.
const DefaultInitialPoints = 100

// Settings are the rule switches a sheet is evaluated under.
type Settings struct {
	UseOptionalStrength     bool              `json:"use_optional_strength"`
	UseReducedSwing         bool              `json:"use_reduced_swing"`
	UseOptionalThrustDamage bool              `json:"use_optional_thrust_damage"`
	UseOptionalIQ           bool              `json:"use_optional_iq"`
	UseGurpsMetric          bool              `json:"use_gurps_metric"`
	WeightUnits             units.WeightUnits `json:"weight_units"`
	InitialPoints           int               `json:"initial_points"`

	// Debug turns programmer errors such as an unbalanced batch into panics.
	Debug bool `json:"-"`
}

// DefaultSettings returns all optional rules off, pounds and the default point budget.
func DefaultSettings() Settings {
	return Settings{
		WeightUnits:   units.LB,
		InitialPoints: DefaultInitialPoints,
	}
}

// Validate checks the display units. Empty units mean pounds.
func (s Settings) Validate() error {
	vb := errors.NewValidationBuilder()
	if s.WeightUnits != "" && !s.WeightUnits.IsValid() {
		vb.InvalidField("WeightUnits", "unknown weight units "+string(s.WeightUnits))
	}
	return vb.Build()
}

// CalcUnits returns the units lift and carry are computed in: kilograms when GURPS metric
// rules are on and the display units are metric, pounds otherwise.
func (s Settings) CalcUnits() units.WeightUnits {
	if s.UseGurpsMetric && s.WeightUnits.IsMetric() {
		return units.KG
	}
	return units.LB
}

// DisplayUnits returns WeightUnits, falling back to pounds when unset.
func (s Settings) DisplayUnits() units.WeightUnits {
	if s.WeightUnits == "" {
		return units.LB
	}
	return s.WeightUnits
}
