package character

import (
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/rules"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// GetValueForID returns the value of the field id. Unknown IDs report false.
func (c *Character) GetValueForID(id FieldID) (any, bool) {
	if rest, ok := strings.CutPrefix(string(id), PointsPrefix); ok {
		return c.pointsFor(FieldID(rest))
	}

	switch id {
	case FieldLastModified:
		return c.lastModified, true
	case FieldCreatedOn:
		return c.createdOn, true
	case FieldIncludePunch:
		return c.includePunch, true
	case FieldIncludeKick:
		return c.includeKick, true
	case FieldIncludeBoots:
		return c.includeBoots, true
	case FieldSizeModifier:
		return c.sizeModifier, true
	case FieldStrength:
		return c.Strength(), true
	case FieldDexterity:
		return c.Dexterity(), true
	case FieldIntelligence:
		return c.Intelligence(), true
	case FieldHealth:
		return c.Health(), true
	case FieldBasicSpeed:
		return c.BasicSpeed(), true
	case FieldBasicMove:
		return c.BasicMove(), true
	case FieldPerception:
		return c.Perception(), true
	case FieldVision:
		return c.Vision(), true
	case FieldHearing:
		return c.Hearing(), true
	case FieldTasteAndSmell:
		return c.TasteAndSmell(), true
	case FieldTouch:
		return c.Touch(), true
	case FieldWill:
		return c.Will(), true
	case FieldFrightCheck:
		return c.FrightCheck(), true
	case FieldDodgeBonus:
		return c.DodgeBonus(), true
	case FieldParryBonus:
		return c.ParryBonus(), true
	case FieldBlockBonus:
		return c.BlockBonus(), true
	case FieldBasicLift:
		return c.BasicLift(), true
	case FieldOneHandedLift:
		return c.OneHandedLift(), true
	case FieldTwoHandedLift:
		return c.TwoHandedLift(), true
	case FieldShoveAndKnockOver:
		return c.ShoveAndKnockOver(), true
	case FieldRunningShoveAndKnockOver:
		return c.RunningShoveAndKnockOver(), true
	case FieldCarryOnBack:
		return c.CarryOnBack(), true
	case FieldShiftSlightly:
		return c.ShiftSlightly(), true
	case FieldThrust:
		return c.Thrust(), true
	case FieldSwing:
		return c.Swing(), true
	case FieldHitPoints:
		return c.HitPoints(), true
	case FieldHitPointsDamage:
		return c.HitPointsDamage(), true
	case FieldCurrentHitPoints:
		return c.CurrentHitPoints(), true
	case FieldReelingHitPoints:
		return c.ReelingHitPoints(), true
	case FieldUnconsciousChecks:
		return c.UnconsciousChecksHitPoints(), true
	case FieldDeathCheck1:
		return c.DeathCheckHitPoints(1), true
	case FieldDeathCheck2:
		return c.DeathCheckHitPoints(2), true
	case FieldDeathCheck3:
		return c.DeathCheckHitPoints(3), true
	case FieldDeathCheck4:
		return c.DeathCheckHitPoints(4), true
	case FieldDead:
		return c.DeadHitPoints(), true
	case FieldFatiguePoints:
		return c.FatiguePoints(), true
	case FieldFatiguePointsDamage:
		return c.FatiguePointsDamage(), true
	case FieldCurrentFatiguePoints:
		return c.CurrentFatiguePoints(), true
	case FieldTiredFatiguePoints:
		return c.TiredFatiguePoints(), true
	case FieldUnconsciousChecksFP:
		return c.UnconsciousChecksFatiguePoints(), true
	case FieldUnconsciousFatigue:
		return c.UnconsciousFatiguePoints(), true
	case FieldCarriedWeight:
		return c.WeightCarried(), true
	case FieldCarriedWealth:
		return c.WealthCarried(), true
	case FieldNotCarriedWealth:
		return c.WealthNotCarried(), true
	case FieldTotalPoints:
		return c.TotalPoints(), true
	case FieldAttributePoints:
		return c.AttributePoints(), true
	case FieldAdvantagePoints:
		return c.AdvantagePoints(), true
	case FieldDisadvantagePoints:
		return c.DisadvantagePoints(), true
	case FieldQuirkPoints:
		return c.QuirkPoints(), true
	case FieldSkillPoints:
		return c.SkillPoints(), true
	case FieldSpellPoints:
		return c.SpellPoints(), true
	case FieldRacePoints:
		return c.RacePoints(), true
	case FieldUnspentPoints:
		return c.UnspentPoints(), true
	}

	if e, ok := tierOf(id, DodgePrefix); ok {
		return c.Dodge(e), true
	}
	if e, ok := tierOf(id, MovePrefix); ok {
		return c.Move(e), true
	}
	if e, ok := tierOf(id, MaximumCarryPrefix); ok {
		return c.MaximumCarry(e), true
	}
	return nil, false
}

func (c *Character) pointsFor(id FieldID) (any, bool) {
	switch id {
	case FieldStrength:
		return c.StrengthPoints(), true
	case FieldDexterity:
		return c.DexterityPoints(), true
	case FieldIntelligence:
		return c.IntelligencePoints(), true
	case FieldHealth:
		return c.HealthPoints(), true
	case FieldWill:
		return c.WillPoints(), true
	case FieldPerception:
		return c.PerceptionPoints(), true
	case FieldBasicSpeed:
		return c.BasicSpeedPoints(), true
	case FieldBasicMove:
		return c.BasicMovePoints(), true
	case FieldFatiguePoints:
		return c.FatiguePointPoints(), true
	case FieldHitPoints:
		return c.HitPointPoints(), true
	default:
		return nil, false
	}
}

func tierOf(id FieldID, prefix string) (rules.Encumbrance, bool) {
	rest, ok := strings.CutPrefix(string(id), prefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	e := rules.Encumbrance(n)
	if e < rules.EncumbranceNone || e > rules.EncumbranceExtraHeavy {
		return 0, false
	}
	return e, true
}

// SetValueForID writes value to the field id. Unknown or read-only fields and values of the
// wrong type are logged and rejected with an InvalidArgument error; the sheet is unchanged.
func (c *Character) SetValueForID(id FieldID, value any) error {
	err := c.setValueForID(id, value)
	if err != nil {
		slog.Error("unable to set value", "field", string(id), "error", err)
	}
	return err
}

// SetField is SetValueForID addressed by the wire form of the field ID.
func (c *Character) SetField(field string, value any) error {
	return c.SetValueForID(FieldID(field), value)
}

func (c *Character) setValueForID(id FieldID, value any) error {
	switch id {
	case FieldCreatedOn:
		t, err := asTime(value)
		if err != nil {
			return fieldError(id, err)
		}
		c.SetCreatedOn(t)
		return nil
	case FieldIncludePunch, FieldIncludeKick, FieldIncludeBoots:
		b, ok := value.(bool)
		if !ok {
			return fieldError(id, errors.InvalidArgumentf("expected a bool, got %T", value))
		}
		switch id {
		case FieldIncludePunch:
			c.SetIncludePunch(b)
		case FieldIncludeKick:
			c.SetIncludeKick(b)
		default:
			c.SetIncludeKickBoots(b)
		}
		return nil
	case FieldBasicSpeed:
		f, err := asFloat(value)
		if err != nil {
			return fieldError(id, err)
		}
		c.SetBasicSpeed(f)
		return nil
	}

	setter, ok := c.intSetters()[id]
	if !ok {
		return errors.InvalidArgumentf("unable to set a value for %s", id).WithField(string(id))
	}
	n, err := asInt(value)
	if err != nil {
		return fieldError(id, err)
	}
	setter(n)
	return nil
}

func (c *Character) intSetters() map[FieldID]func(int) {
	return map[FieldID]func(int){
		FieldStrength:            c.SetStrength,
		FieldDexterity:           c.SetDexterity,
		FieldIntelligence:        c.SetIntelligence,
		FieldHealth:              c.SetHealth,
		FieldBasicMove:           c.SetBasicMove,
		FieldPerception:          c.SetPerception,
		FieldWill:                c.SetWill,
		FieldUnspentPoints:       c.SetUnspentPoints,
		FieldHitPoints:           c.SetHitPoints,
		FieldHitPointsDamage:     c.SetHitPointsDamage,
		FieldFatiguePoints:       c.SetFatiguePoints,
		FieldFatiguePointsDamage: c.SetFatiguePointsDamage,
		FieldSizeModifier:        c.SetSizeModifier,
		FieldCurrentHitPoints: func(v int) {
			c.SetHitPointsDamage(-min(v-c.HitPoints(), 0))
		},
		FieldCurrentFatiguePoints: func(v int) {
			c.SetFatiguePointsDamage(-min(v-c.FatiguePoints(), 0))
		},
	}
}

func fieldError(id FieldID, err error) error {
	return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid value for "+string(id)).
		WithField(string(id))
}

// Numeric writes are limited to the int32 range so derived values cannot overflow.
const maxFieldMagnitude = math.MaxInt32

func checkIntRange(v int64) (int, error) {
	if v > maxFieldMagnitude || v < -maxFieldMagnitude {
		return 0, errors.InvalidArgumentf("%d is out of range", v)
	}
	return int(v), nil
}

func asInt(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return checkIntRange(int64(v))
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		return checkIntRange(v)
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return checkIntRange(int64(v))
	case float32:
		return asInt(float64(v))
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
			return 0, errors.InvalidArgumentf("%v is not a whole number", v)
		}
		if math.Abs(v) > maxFieldMagnitude {
			return 0, errors.InvalidArgumentf("%v is out of range", v)
		}
		return int(v), nil
	default:
		return 0, errors.InvalidArgumentf("expected a number, got %T", value)
	}
}

func asFloat(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, errors.InvalidArgumentf("%v is not a finite number", v)
		}
		if math.Abs(v) > maxFieldMagnitude {
			return 0, errors.InvalidArgumentf("%v is out of range", v)
		}
		return v, nil
	case float32:
		return asFloat(float64(v))
	default:
		n, err := asInt(value)
		if err != nil {
			return 0, err
		}
		return float64(n), nil
	}
}

func asTime(value any) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case int64:
		return time.UnixMilli(v), nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return time.Time{}, errors.InvalidArgumentf("%v is not a valid timestamp", v)
		}
		return time.UnixMilli(int64(v)), nil
	case string:
		for _, layout := range []string{time.RFC3339Nano, time.DateTime, time.DateOnly} {
			if t, err := time.Parse(layout, v); err == nil {
				return t, nil
			}
		}
		return time.Time{}, errors.InvalidArgumentf("unrecognized date %q", v)
	default:
		return time.Time{}, errors.InvalidArgumentf("expected a time, got %T", value)
	}
}
