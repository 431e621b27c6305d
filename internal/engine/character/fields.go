package character

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/rules"
)

// FieldID addresses an externally visible sheet value. It is the key shared with the
// persistence, undo and transport layers.
type FieldID string

// Field ID prefixes
const (
	prefix             = "gcs."
	attributesPrefix   = prefix + "ba."
	liftPrefix         = attributesPrefix + "lift."
	pointSummaryPrefix = prefix + "ps."
	basicDamagePrefix  = prefix + "bd."
	hitPointsPrefix    = attributesPrefix + "derived_hp."
	fatiguePrefix      = attributesPrefix + "derived_fp."
	profilePrefix      = prefix + "pi."

	// PointsPrefix prefixed to an attribute ID addresses that attribute's point cost.
	PointsPrefix = prefix + "points."
	// DodgePrefix plus an encumbrance ordinal addresses the dodge at that tier.
	DodgePrefix = attributesPrefix + "DODGE#."
	// MovePrefix plus an encumbrance ordinal addresses the move at that tier.
	MovePrefix = attributesPrefix + "MOVE#."
	// MaximumCarryPrefix plus an encumbrance ordinal addresses the carry limit at that tier.
	MaximumCarryPrefix = attributesPrefix + "MaximumCarry"
)

// Fields
const (
	FieldLastModified FieldID = prefix + "LastModifiedDate"
	FieldCreatedOn    FieldID = prefix + "CreatedOn"
	FieldIncludePunch FieldID = prefix + "IncludePunch"
	FieldIncludeKick  FieldID = prefix + "IncludeKickFeet"
	FieldIncludeBoots FieldID = prefix + "IncludeKickBoots"

	FieldStrength         FieldID = attributesPrefix + "ST"
	FieldLiftingStrength  FieldID = FieldStrength + "LIFTING_ONLY"
	FieldStrikingStrength FieldID = FieldStrength + "STRIKING_ONLY"
	FieldDexterity        FieldID = attributesPrefix + "DX"
	FieldIntelligence     FieldID = attributesPrefix + "IQ"
	FieldHealth           FieldID = attributesPrefix + "HT"
	FieldWill             FieldID = attributesPrefix + "WILL"
	FieldFrightCheck      FieldID = attributesPrefix + "FRIGHT_CHECK"
	FieldPerception       FieldID = attributesPrefix + "PERCEPTION"
	FieldVision           FieldID = attributesPrefix + "VISION"
	FieldHearing          FieldID = attributesPrefix + "HEARING"
	FieldTasteAndSmell    FieldID = attributesPrefix + "TASTE_SMELL"
	FieldTouch            FieldID = attributesPrefix + "TOUCH"
	FieldBasicSpeed       FieldID = attributesPrefix + "SPEED"
	FieldBasicMove        FieldID = attributesPrefix + "MOVE"
	FieldDodgeBonus       FieldID = attributesPrefix + "DODGE"
	FieldParryBonus       FieldID = attributesPrefix + "PARRY"
	FieldBlockBonus       FieldID = attributesPrefix + "BLOCK"

	FieldCarriedWeight    FieldID = prefix + "CarriedWeight"
	FieldCarriedWealth    FieldID = prefix + "CarriedWealth"
	FieldNotCarriedWealth FieldID = prefix + "NotCarriedWealth"

	FieldBasicLift                FieldID = liftPrefix + "BasicLift"
	FieldOneHandedLift            FieldID = liftPrefix + "OneHandedLift"
	FieldTwoHandedLift            FieldID = liftPrefix + "TwoHandedLift"
	FieldShoveAndKnockOver        FieldID = liftPrefix + "ShoveAndKnockOver"
	FieldRunningShoveAndKnockOver FieldID = liftPrefix + "RunningShoveAndKnockOver"
	FieldCarryOnBack              FieldID = liftPrefix + "CarryOnBack"
	FieldShiftSlightly            FieldID = liftPrefix + "ShiftSlightly"

	FieldTotalPoints        FieldID = pointSummaryPrefix + "TotalPoints"
	FieldAttributePoints    FieldID = pointSummaryPrefix + "AttributePoints"
	FieldAdvantagePoints    FieldID = pointSummaryPrefix + "AdvantagePoints"
	FieldDisadvantagePoints FieldID = pointSummaryPrefix + "DisadvantagePoints"
	FieldQuirkPoints        FieldID = pointSummaryPrefix + "QuirkPoints"
	FieldSkillPoints        FieldID = pointSummaryPrefix + "SkillPoints"
	FieldSpellPoints        FieldID = pointSummaryPrefix + "SpellPoints"
	FieldRacePoints         FieldID = pointSummaryPrefix + "RacePoints"
	FieldUnspentPoints      FieldID = pointSummaryPrefix + "UnspentPoints"

	FieldThrust FieldID = basicDamagePrefix + "Thrust"
	FieldSwing  FieldID = basicDamagePrefix + "Swing"

	FieldHitPoints         FieldID = attributesPrefix + "HP"
	FieldHitPointsDamage   FieldID = hitPointsPrefix + "Damage"
	FieldCurrentHitPoints  FieldID = hitPointsPrefix + "Current"
	FieldReelingHitPoints  FieldID = hitPointsPrefix + "Reeling"
	FieldUnconsciousChecks FieldID = hitPointsPrefix + "UnconsciousChecks"
	FieldDeathCheck1       FieldID = hitPointsPrefix + "DeathCheck1"
	FieldDeathCheck2       FieldID = hitPointsPrefix + "DeathCheck2"
	FieldDeathCheck3       FieldID = hitPointsPrefix + "DeathCheck3"
	FieldDeathCheck4       FieldID = hitPointsPrefix + "DeathCheck4"
	FieldDead              FieldID = hitPointsPrefix + "Dead"

	FieldFatiguePoints        FieldID = attributesPrefix + "FP"
	FieldFatiguePointsDamage  FieldID = fatiguePrefix + "Damage"
	FieldCurrentFatiguePoints FieldID = fatiguePrefix + "Current"
	FieldTiredFatiguePoints   FieldID = fatiguePrefix + "Tired"
	FieldUnconsciousChecksFP  FieldID = fatiguePrefix + "UnconsciousChecks"
	FieldUnconsciousFatigue   FieldID = fatiguePrefix + "Unconscious"

	FieldSizeModifier FieldID = profilePrefix + "SizeModifier"
)

// PointsField returns the ID addressing the point cost of attribute.
func PointsField(attribute FieldID) FieldID {
	return PointsPrefix + attribute
}

// DodgeField returns the ID of the dodge at tier e.
func DodgeField(e rules.Encumbrance) FieldID {
	return FieldID(DodgePrefix + strconv.Itoa(int(e)))
}

// MoveField returns the ID of the move at tier e.
func MoveField(e rules.Encumbrance) FieldID {
	return FieldID(MovePrefix + strconv.Itoa(int(e)))
}

// MaximumCarryField returns the ID of the carry limit at tier e.
func MaximumCarryField(e rules.Encumbrance) FieldID {
	return FieldID(MaximumCarryPrefix + strconv.Itoa(int(e)))
}

// costedAttributes have a point cost addressable through PointsField.
var costedAttributes = []FieldID{
	FieldStrength,
	FieldDexterity,
	FieldIntelligence,
	FieldHealth,
	FieldWill,
	FieldPerception,
	FieldBasicSpeed,
	FieldBasicMove,
	FieldFatiguePoints,
	FieldHitPoints,
}

var registry = buildRegistry()

func buildRegistry() []FieldID {
	fields := []FieldID{
		FieldCreatedOn,
		FieldIncludePunch,
		FieldIncludeKick,
		FieldIncludeBoots,
		FieldSizeModifier,
		FieldStrength,
		FieldDexterity,
		FieldIntelligence,
		FieldHealth,
		FieldWill,
		FieldFrightCheck,
		FieldPerception,
		FieldVision,
		FieldHearing,
		FieldTasteAndSmell,
		FieldTouch,
		FieldBasicSpeed,
		FieldBasicMove,
		FieldDodgeBonus,
		FieldParryBonus,
		FieldBlockBonus,
		FieldBasicLift,
		FieldOneHandedLift,
		FieldTwoHandedLift,
		FieldShoveAndKnockOver,
		FieldRunningShoveAndKnockOver,
		FieldCarryOnBack,
		FieldShiftSlightly,
		FieldThrust,
		FieldSwing,
		FieldHitPoints,
		FieldHitPointsDamage,
		FieldCurrentHitPoints,
		FieldReelingHitPoints,
		FieldUnconsciousChecks,
		FieldDeathCheck1,
		FieldDeathCheck2,
		FieldDeathCheck3,
		FieldDeathCheck4,
		FieldDead,
		FieldFatiguePoints,
		FieldFatiguePointsDamage,
		FieldCurrentFatiguePoints,
		FieldTiredFatiguePoints,
		FieldUnconsciousChecksFP,
		FieldUnconsciousFatigue,
	}
	for _, e := range rules.Encumbrances() {
		fields = append(fields, DodgeField(e), MoveField(e), MaximumCarryField(e))
	}
	for _, a := range costedAttributes {
		fields = append(fields, PointsField(a))
	}
	fields = append(fields,
		FieldCarriedWeight,
		FieldCarriedWealth,
		FieldNotCarriedWealth,
		FieldTotalPoints,
		FieldAttributePoints,
		FieldAdvantagePoints,
		FieldDisadvantagePoints,
		FieldQuirkPoints,
		FieldSkillPoints,
		FieldSpellPoints,
		FieldRacePoints,
		FieldUnspentPoints,
		FieldLastModified,
	)
	return fields
}

// AllFields returns every readable field in notification order. FieldLastModified is last.
func AllFields() []FieldID {
	out := make([]FieldID, len(registry))
	copy(out, registry)
	return out
}

// ParseFieldID returns the field named s, reporting whether it is known.
func ParseFieldID(s string) (FieldID, bool) {
	id := FieldID(strings.TrimSpace(s))
	_, ok := fieldSet[id]
	return id, ok
}

var fieldSet = func() map[FieldID]struct{} {
	m := make(map[FieldID]struct{}, len(registry))
	for _, id := range registry {
		m[id] = struct{}{}
	}
	return m
}()

// String returns the wire form of the ID.
func (f FieldID) String() string {
	return string(f)
}
