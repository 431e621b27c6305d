package character_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-sheet/internal/engine/character"
	charactermock "github.com/KirkDiggler/rpg-sheet/internal/engine/character/mock"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/undo"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/feature"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/rules"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/traits"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/units"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
)

// recordingNotifier keeps every notification in order.
type recordingNotifier struct {
	changes []character.Change
	onField func(id character.FieldID, value any)
}

func (r *recordingNotifier) FieldChanged(id character.FieldID, value any) {
	r.changes = append(r.changes, character.Change{Field: id, Value: value})
	if r.onField != nil {
		r.onField(id, value)
	}
}

func (r *recordingNotifier) count(id character.FieldID) int {
	n := 0
	for _, ch := range r.changes {
		if ch.Field == id {
			n++
		}
	}
	return n
}

func (r *recordingNotifier) value(id character.FieldID) (any, bool) {
	for _, ch := range r.changes {
		if ch.Field == id {
			return ch.Value, true
		}
	}
	return nil, false
}

func (r *recordingNotifier) fields() []character.FieldID {
	out := make([]character.FieldID, 0, len(r.changes))
	for _, ch := range r.changes {
		out = append(out, ch.Field)
	}
	return out
}

func (r *recordingNotifier) reset() {
	r.changes = nil
}

func lb(n float64) units.WeightValue {
	return units.NewWeight(units.FromFloat(n), units.LB)
}

type CharacterTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	clock    *clock.Manual
	notifier *recordingNotifier
	sheet    *character.Character
}

func TestCharacterTestSuite(t *testing.T) {
	suite.Run(t, new(CharacterTestSuite))
}

func (s *CharacterTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.clock = clock.NewManual(time.Date(2024, 5, 4, 10, 0, 0, 0, time.UTC))
	s.notifier = &recordingNotifier{}
	s.sheet = s.newSheet(rules.DefaultSettings())
}

func (s *CharacterTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CharacterTestSuite) newSheet(settings rules.Settings) *character.Character {
	c, err := character.New(&character.Config{
		Settings: settings,
		Clock:    s.clock,
		Notifier: s.notifier,
	})
	s.Require().NoError(err)
	return c
}

func (s *CharacterTestSuite) TestNew() {
	s.Run("defaults", func() {
		c := s.sheet
		s.Equal(10, c.Strength())
		s.Equal(10, c.Dexterity())
		s.Equal(10, c.Intelligence())
		s.Equal(10, c.Health())
		s.Equal(10, c.Will())
		s.Equal(10, c.Perception())
		s.Equal(5.0, c.BasicSpeed())
		s.Equal(5, c.BasicMove())
		s.Equal(10, c.HitPoints())
		s.Equal(10, c.FatiguePoints())
		s.Equal(lb(20), c.BasicLift())
		s.Equal("1d-2", c.Thrust().String())
		s.Equal("1d", c.Swing().String())
		s.Equal(8, c.Dodge(rules.EncumbranceNone))
		s.Equal(rules.EncumbranceNone, c.EncumbranceLevel())
		s.Equal(rules.DefaultInitialPoints, c.TotalPoints())
		s.Equal(rules.DefaultInitialPoints, c.UnspentPoints())
		s.Equal(0, c.AttributePoints())
		s.True(c.IncludePunch())
		s.True(c.IncludeKick())
		s.True(c.IncludeKickBoots())
		s.Equal(s.clock.Now(), c.CreatedOn())
		s.Equal(s.clock.Now(), c.LastModified())
		s.Empty(s.notifier.changes)
	})

	s.Run("nil config", func() {
		c, err := character.New(nil)
		s.Require().NoError(err)
		s.Equal(units.LB, c.Settings().WeightUnits)
	})

	s.Run("rejects unknown units", func() {
		_, err := character.New(&character.Config{Settings: rules.Settings{WeightUnits: "stone"}})
		s.Error(err)
	})
}

func (s *CharacterTestSuite) TestDamageDice() {
	testCases := []struct {
		strength int
		thrust   string
		swing    string
	}{
		{strength: 1, thrust: "1d-6", swing: "1d-5"},
		{strength: 10, thrust: "1d-2", swing: "1d"},
		{strength: 19, thrust: "2d-1", swing: "3d+1"},
		{strength: 28, thrust: "3d-1", swing: "5d+1"},
		{strength: 50, thrust: "5d+2", swing: "8d-1"},
		{strength: 80, thrust: "9d", swing: "11d"},
	}

	for _, tc := range testCases {
		s.Run(tc.thrust, func() {
			settings := rules.DefaultSettings()
			s.Equal(tc.thrust, character.Thrust(settings, tc.strength).String())
			s.Equal(tc.swing, character.Swing(settings, tc.strength).String())
		})
	}

	s.Run("follows ST and the striking bonus", func() {
		s.sheet.SetStrength(19)
		s.Equal("2d-1", s.sheet.Thrust().String())

		s.sheet.Advantages().Add(&traits.Advantage{
			Name:     "Striking ST",
			Features: []feature.Feature{feature.NewBonus(string(character.FieldStrikingStrength), 9)},
		})
		s.Equal(19, s.sheet.Strength())
		s.Equal("3d-1", s.sheet.Thrust().String())
		s.Equal("5d+1", s.sheet.Swing().String())
	})

	s.Run("optional thrust is swing less two", func() {
		settings := rules.DefaultSettings()
		settings.UseOptionalThrustDamage = true
		s.Equal("1d-2", character.Thrust(settings, 10).String())
		s.Equal("3d-1", character.Thrust(settings, 19).String())
	})
}

func (s *CharacterTestSuite) TestBasicLift() {
	s.Run("squares ST", func() {
		s.sheet.SetStrength(20)
		s.Equal(lb(80), s.sheet.BasicLift())
		s.Equal(lb(160), s.sheet.OneHandedLift())
		s.Equal(lb(640), s.sheet.TwoHandedLift())
		s.Equal(lb(960), s.sheet.ShoveAndKnockOver())
		s.Equal(lb(1920), s.sheet.RunningShoveAndKnockOver())
		s.Equal(lb(1200), s.sheet.CarryOnBack())
		s.Equal(lb(4000), s.sheet.ShiftSlightly())
	})

	s.Run("rounds once past ten", func() {
		s.sheet.SetStrength(14)
		s.Equal(lb(39), s.sheet.BasicLift())
		s.sheet.SetStrength(6)
		s.Equal(lb(7.2), s.sheet.BasicLift())
	})

	s.Run("lifting bonus does not change ST", func() {
		s.sheet.SetStrength(10)
		s.sheet.Advantages().Add(&traits.Advantage{
			Name:     "Lifting ST",
			Features: []feature.Feature{feature.NewBonus(string(character.FieldLiftingStrength), 10)},
		})
		s.Equal(10, s.sheet.Strength())
		s.Equal(lb(80), s.sheet.BasicLift())
	})

	s.Run("gurps metric computes in kilograms", func() {
		settings := rules.DefaultSettings()
		settings.UseGurpsMetric = true
		settings.WeightUnits = units.KG
		c := s.newSheet(settings)
		s.Equal(units.NewWeight(units.FromInt(10), units.KG), c.BasicLift())
	})

	s.Run("real metric converts pounds", func() {
		settings := rules.DefaultSettings()
		settings.WeightUnits = units.KG
		c := s.newSheet(settings)
		s.Equal(units.KG, c.BasicLift().Units)
		s.Equal("9.071845", c.BasicLift().Value.String())
	})
}

func (s *CharacterTestSuite) TestEncumbrance() {
	pack := equipment.New("Pack", 1, units.FromInt(100), lb(25))
	s.Require().NoError(s.sheet.AddEquipment(pack, equipment.LocationCarried, nil))

	s.Equal(lb(25), s.sheet.WeightCarried())
	s.Equal(units.FromInt(100), s.sheet.WealthCarried())
	s.Equal(rules.EncumbranceLight, s.sheet.EncumbranceLevel())
	s.Equal(lb(40), s.sheet.MaximumCarry(rules.EncumbranceLight))
	s.Equal(4, s.sheet.Move(rules.EncumbranceLight))
	s.Equal(7, s.sheet.Dodge(rules.EncumbranceLight))
	s.False(s.sheet.IsCarryingGreaterThanMaxLoad())

	s.Require().NoError(s.sheet.AddEquipment(equipment.New("Anvil", 1, units.Zero, lb(200)), equipment.LocationCarried, nil))
	s.Equal(rules.EncumbranceExtraHeavy, s.sheet.EncumbranceLevel())
	s.True(s.sheet.IsCarryingGreaterThanMaxLoad())
	s.Equal(1, s.sheet.Move(rules.EncumbranceExtraHeavy))
	s.Equal(4, s.sheet.Dodge(rules.EncumbranceExtraHeavy))
}

func (s *CharacterTestSuite) TestReelingHalvesMoveAndDodge() {
	s.sheet.SetHitPointsDamage(8)
	s.True(s.sheet.IsReeling())
	s.Equal(2, s.sheet.Move(rules.EncumbranceNone))
	s.Equal(5, s.sheet.Dodge(rules.EncumbranceNone))
}

func (s *CharacterTestSuite) TestAttributeCostGrid() {
	testCases := []struct {
		name      string
		delta     int
		reduction int
		expected  int
	}{
		{name: "lowered ignores reduction", delta: -5, reduction: 40, expected: -50},
		{name: "baseline", delta: 0, reduction: 80, expected: 0},
		{name: "one level", delta: 1, reduction: 0, expected: 10},
		{name: "one level at 40", delta: 1, reduction: 40, expected: 6},
		{name: "one level at 80", delta: 1, reduction: 80, expected: 2},
		{name: "reduction capped at 80", delta: 1, reduction: 95, expected: 2},
		{name: "five levels at 40", delta: 5, reduction: 40, expected: 30},
		{name: "five levels at 80", delta: 5, reduction: 80, expected: 10},
		{name: "twenty levels", delta: 20, reduction: 0, expected: 200},
		{name: "twenty levels at 40", delta: 20, reduction: 40, expected: 120},
		{name: "twenty levels at 95", delta: 20, reduction: 95, expected: 40},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c := s.newSheet(rules.DefaultSettings())
			if tc.reduction > 0 {
				c.Advantages().Add(&traits.Advantage{
					Name:     "Cheap Strength",
					Features: []feature.Feature{feature.NewCostReduction(string(character.FieldStrength), tc.reduction)},
				})
			}
			c.SetStrength(10 + tc.delta)
			s.Equal(tc.expected, c.StrengthPoints())
			s.Equal(tc.expected, c.AttributePoints())
		})
	}

	s.Run("dexterity at twenty per level", func() {
		c := s.newSheet(rules.DefaultSettings())
		c.Advantages().Add(&traits.Advantage{
			Name:     "Cheap Dexterity",
			Features: []feature.Feature{feature.NewCostReduction(string(character.FieldDexterity), 40)},
		})
		c.SetDexterity(15)
		s.Equal(60, c.DexterityPoints())
	})
}

func (s *CharacterTestSuite) TestSecondaryCosts() {
	c := s.sheet
	c.SetWill(12)
	c.SetPerception(9)
	c.SetBasicSpeed(5.5)
	c.SetBasicMove(6)
	c.SetFatiguePoints(13)

	s.Equal(10, c.WillPoints())
	s.Equal(-5, c.PerceptionPoints())
	s.Equal(10, c.BasicSpeedPoints())
	s.Equal(5, c.BasicMovePoints())
	s.Equal(9, c.FatiguePointPoints())
	s.Equal(29, c.AttributePoints())

	s.Run("speed cost truncates", func() {
		c.SetBasicSpeed(5.33)
		s.Equal(6, c.BasicSpeedPoints())
	})
}

func (s *CharacterTestSuite) TestSizeModifier() {
	s.sheet.SetStrength(20)
	s.Equal(100, s.sheet.StrengthPoints())

	s.sheet.SetSizeModifier(2)
	s.Equal(80, s.sheet.StrengthPoints())
	s.Equal(80, s.sheet.AttributePoints())

	s.sheet.SetHitPoints(25)
	s.Equal(8, s.sheet.HitPointPoints())

	settings := rules.DefaultSettings()
	settings.UseOptionalStrength = true
	s.Require().NoError(s.sheet.ApplySettings(settings))
	s.Equal(100, s.sheet.StrengthPoints())
	s.Equal(10, s.sheet.HitPointPoints())
	s.Equal(110, s.sheet.AttributePoints())
}

func (s *CharacterTestSuite) TestOptionalIQ() {
	s.sheet.SetIntelligence(14)
	s.Equal(14, s.sheet.Will())
	s.Equal(14, s.sheet.Perception())

	settings := rules.DefaultSettings()
	settings.UseOptionalIQ = true
	s.Require().NoError(s.sheet.ApplySettings(settings))
	s.Equal(10, s.sheet.Will())
	s.Equal(10, s.sheet.Perception())
	s.Equal(10, s.sheet.Vision())
}

func (s *CharacterTestSuite) TestFeatureBonuses() {
	fit := &traits.Advantage{
		Name: "Giant",
		Features: []feature.Feature{
			feature.NewBonus(string(character.FieldStrength), 2),
			{Kind: feature.KindBonus, Key: string(character.FieldBasicSpeed), Amount: units.FromFloat(0.25)},
		},
	}
	agile := &traits.Advantage{
		Name:   "Agile",
		Levels: 3,
		Features: []feature.Feature{
			{Kind: feature.KindBonus, Key: string(character.FieldDexterity), Amount: units.One, PerLevel: true},
		},
	}
	s.sheet.Advantages().Add(fit, agile)

	s.Equal(12, s.sheet.Strength())
	s.Equal(2, s.sheet.StrengthBonus())
	s.Equal(0, s.sheet.StrengthPoints())
	s.Equal(12, s.sheet.HitPoints())
	s.Equal(13, s.sheet.Dexterity())
	s.Equal(6.0, s.sheet.BasicSpeed())
	s.Contains(s.sheet.BonusToolTip(character.FieldStrength), "Giant [+2]")

	s.Run("setters target the effective value", func() {
		s.sheet.SetStrength(15)
		s.Equal(15, s.sheet.Strength())
		s.Equal(30, s.sheet.StrengthPoints())
	})

	s.Run("disabling a row drops its bonuses", func() {
		fit.Disabled = true
		s.sheet.MarkDirty(character.FeaturesChanged)
		s.Equal(13, s.sheet.Strength())
		s.Equal(30, s.sheet.StrengthPoints())
	})
}

func (s *CharacterTestSuite) TestSkillAndWeaponBonuses() {
	broadsword := &traits.Skill{Name: "Broadsword", Points: 4, RelativeLevel: 1}
	s.sheet.Skills().Add(broadsword, &traits.Skill{Name: "Broadsword", Points: 8, RelativeLevel: 2})
	s.sheet.Advantages().Add(&traits.Advantage{
		Name: "Weapon Master",
		Features: []feature.Feature{
			{Kind: feature.KindSkillBonus, NameCriteria: feature.Is("Broadsword"), Amount: units.FromInt(2)},
			{Kind: feature.KindWeaponBonus, NameCriteria: feature.Is("Broadsword"), Amount: units.FromInt(1)},
		},
	})

	s.Equal(2, s.sheet.SkillBonusFor(broadsword, nil))
	s.Equal(2, s.sheet.BestRelativeLevel("broadsword", ""))
	s.Len(s.sheet.WeaponBonusesFor("Broadsword", "", nil, nil), 1)
	s.Equal(12, s.sheet.SkillPoints())
}

func (s *CharacterTestSuite) TestPointTotals() {
	s.sheet.Advantages().Add(
		&traits.Advantage{Name: "Combat Reflexes", Points: 15},
		&traits.Advantage{Name: "Bad Temper", Points: -10},
		&traits.Advantage{Name: "Hums", Points: -1},
		&traits.Advantage{Name: "Chews Pencils", Points: -1},
		&traits.Advantage{Name: "Wealthy", Points: 20, Disabled: true},
		&traits.Advantage{
			Name:          "Dwarf",
			Container:     true,
			ContainerType: traits.ContainerRace,
			Children:      []*traits.Advantage{{Name: "Extended Lifespan", Points: 20}},
		},
		&traits.Advantage{
			Name:      "Perks",
			Container: true,
			Children:  []*traits.Advantage{{Name: "Fearlessness", Points: 5}},
		},
	)
	s.sheet.Skills().Add(
		&traits.Skill{Name: "Stealth", Points: 4},
		&traits.Skill{Name: "Outdoors", Container: true, Points: 99, Children: []*traits.Skill{{Name: "Survival", Points: 2}}},
	)
	s.sheet.Spells().Add(&traits.Spell{Name: "Light", Points: 1})

	s.Equal(20, s.sheet.AdvantagePoints())
	s.Equal(-10, s.sheet.DisadvantagePoints())
	s.Equal(-2, s.sheet.QuirkPoints())
	s.Equal(20, s.sheet.RacePoints())
	s.Equal(6, s.sheet.SkillPoints())
	s.Equal(1, s.sheet.SpellPoints())
	s.Equal(35, s.sheet.SpentPoints())
	s.Equal(65, s.sheet.UnspentPoints())

	s.sheet.SetUnspentPoints(10)
	s.Equal(45, s.sheet.TotalPoints())
	s.Equal(10, s.sheet.UnspentPoints())
}

func (s *CharacterTestSuite) TestBatchCoalescing() {
	s.Run("reverting inside a batch reports nothing", func() {
		s.sheet.StartBatch()
		s.sheet.SetStrength(12)
		s.sheet.SetStrength(11)
		s.sheet.SetStrength(10)
		s.sheet.EndBatch()
		s.Empty(s.notifier.changes)
		s.Empty(s.sheet.Changes())
	})

	s.Run("several edits report each field once", func() {
		s.sheet.StartBatch()
		s.sheet.SetStrength(11)
		s.sheet.SetStrength(12)
		s.Equal(0, s.sheet.AttributePoints(), "totals wait for the commit")
		s.Empty(s.notifier.changes)
		s.sheet.EndBatch()

		s.Equal(1, s.notifier.count(character.FieldStrength))
		v, ok := s.notifier.value(character.FieldStrength)
		s.True(ok)
		s.Equal(12, v)
		v, _ = s.notifier.value(character.FieldAttributePoints)
		s.Equal(20, v)
		v, _ = s.notifier.value(character.PointsField(character.FieldStrength))
		s.Equal(20, v)
		s.Equal(s.notifier.changes, s.sheet.Changes())
	})

	s.Run("unchanged fields are not reported", func() {
		s.notifier.reset()
		s.sheet.SetIncludePunch(false)
		s.Equal([]character.FieldID{character.FieldIncludePunch}, s.notifier.fields())
	})
}

func (s *CharacterTestSuite) TestLastModified() {
	later := s.clock.Advance(time.Minute)
	s.sheet.SetDexterity(11)

	fields := s.notifier.fields()
	s.Require().NotEmpty(fields)
	s.Equal(character.FieldLastModified, fields[len(fields)-1])
	s.Equal(1, s.notifier.count(character.FieldLastModified))
	s.Equal(later, s.sheet.LastModified())

	s.Run("not reported when time stands still", func() {
		s.notifier.reset()
		s.sheet.SetDexterity(12)
		s.Zero(s.notifier.count(character.FieldLastModified))
	})
}

func (s *CharacterTestSuite) TestNestedBatches() {
	s.sheet.StartBatch()
	s.sheet.StartBatch()
	s.sheet.SetDexterity(12)
	s.sheet.EndBatch()
	s.True(s.sheet.InBatch())
	s.Empty(s.notifier.changes)

	s.sheet.Batch(func() {
		s.sheet.SetHealth(12)
	})
	s.Empty(s.notifier.changes)

	s.sheet.EndBatch()
	s.False(s.sheet.InBatch())
	s.Equal(1, s.notifier.count(character.FieldDexterity))
	s.Equal(1, s.notifier.count(character.FieldHealth))
	s.Equal(1, s.notifier.count(character.FieldBasicSpeed))
}

func (s *CharacterTestSuite) TestUnbalancedEndBatch() {
	s.Run("ignored outside debug", func() {
		s.NotPanics(s.sheet.EndBatch)
		s.False(s.sheet.InBatch())
	})

	s.Run("panics in debug", func() {
		settings := rules.DefaultSettings()
		settings.Debug = true
		c := s.newSheet(settings)
		s.Panics(c.EndBatch)
	})
}

func (s *CharacterTestSuite) TestListenersMayEdit() {
	s.notifier.onField = func(id character.FieldID, _ any) {
		if id == character.FieldStrength {
			s.False(s.sheet.InBatch())
			s.sheet.SetIncludeKick(false)
		}
	}
	s.sheet.SetStrength(11)

	s.False(s.sheet.IncludeKick())
	s.Equal(1, s.notifier.count(character.FieldIncludeKick))
}

func (s *CharacterTestSuite) TestNotifierMock() {
	mockNotifier := charactermock.NewMockNotifier(s.ctrl)
	s.sheet.SetNotifier(mockNotifier)

	mockNotifier.EXPECT().FieldChanged(character.FieldIncludeBoots, false).Times(1)
	s.sheet.SetIncludeKickBoots(false)

	// no further calls are expected for a no-op
	s.sheet.SetIncludeKickBoots(false)
}

func (s *CharacterTestSuite) TestRecorderMock() {
	mockRecorder := charactermock.NewMockRecorder(s.ctrl)
	s.sheet.SetRecorder(mockRecorder)

	mockRecorder.EXPECT().InReplay().Return(false)
	mockRecorder.EXPECT().Record(gomock.Any()).Do(func(e undo.Edit) {
		edit, ok := e.(*undo.FieldEdit)
		s.Require().True(ok)
		s.Equal("Strength Change", edit.Name())
		s.Equal(string(character.FieldStrength), edit.Field)
		s.Equal(10, edit.Before)
		s.Equal(14, edit.After)
	})
	s.sheet.SetStrength(14)

	s.Run("not recorded during replay", func() {
		mockRecorder.EXPECT().InReplay().Return(true)
		s.sheet.SetStrength(15)
		s.Equal(15, s.sheet.Strength())
	})
}

func (s *CharacterTestSuite) TestUndoCascade() {
	manager, err := undo.New(nil)
	s.Require().NoError(err)
	s.sheet.SetRecorder(manager)

	s.sheet.SetStrength(14)
	forward := s.notifier.fields()
	s.Contains(forward, character.FieldBasicLift)
	s.Contains(forward, character.FieldHitPoints)
	s.Contains(forward, character.FieldAttributePoints)

	s.notifier.reset()
	name, err := manager.Undo(s.sheet)
	s.Require().NoError(err)
	s.Equal("Strength Change", name)
	s.Equal(10, s.sheet.Strength())
	s.Equal(lb(20), s.sheet.BasicLift())
	s.Equal(forward, s.notifier.fields())
	s.False(manager.CanUndo())
	s.True(manager.CanRedo())

	s.notifier.reset()
	_, err = manager.Redo(s.sheet)
	s.Require().NoError(err)
	s.Equal(14, s.sheet.Strength())
	s.Equal(forward, s.notifier.fields())
	s.True(manager.CanUndo())
	s.False(manager.CanRedo())
}

func (s *CharacterTestSuite) TestValues() {
	s.Run("reads every registered field", func() {
		for _, id := range character.AllFields() {
			_, ok := s.sheet.GetValueForID(id)
			s.True(ok, string(id))
		}
	})

	s.Run("reads tiers and point costs", func() {
		s.sheet.SetStrength(12)
		v, ok := s.sheet.GetValueForID(character.PointsField(character.FieldStrength))
		s.True(ok)
		s.Equal(20, v)

		v, ok = s.sheet.GetValueForID(character.DodgeField(rules.EncumbranceNone))
		s.True(ok)
		s.Equal(8, v)

		v, ok = s.sheet.GetValueForID(character.MaximumCarryField(rules.EncumbranceHeavy))
		s.True(ok)
		s.Equal(lb(174), v)

		_, ok = s.sheet.GetValueForID(character.FieldID(character.MovePrefix + "9"))
		s.False(ok)
	})

	s.Run("unknown fields", func() {
		_, ok := s.sheet.GetValueForID("gcs.nope")
		s.False(ok)

		err := s.sheet.SetValueForID("gcs.nope", 1)
		s.True(errors.IsInvalidArgument(err))
		s.Equal("gcs.nope", errors.FieldOf(err))
	})

	s.Run("read-only fields", func() {
		s.True(errors.IsInvalidArgument(s.sheet.SetValueForID(character.FieldBasicLift, 10)))
		s.True(errors.IsInvalidArgument(s.sheet.SetValueForID(character.PointsField(character.FieldStrength), 10)))
	})

	s.Run("wrong types leave the sheet alone", func() {
		s.True(errors.IsInvalidArgument(s.sheet.SetValueForID(character.FieldStrength, "abc")))
		s.True(errors.IsInvalidArgument(s.sheet.SetValueForID(character.FieldStrength, 12.5)))
		s.True(errors.IsInvalidArgument(s.sheet.SetValueForID(character.FieldIncludePunch, 1)))
		s.Equal(12, s.sheet.Strength())
	})

	s.Run("rejects non-finite and out of range numbers", func() {
		testCases := []struct {
			name  string
			field character.FieldID
			value any
		}{
			{name: "nan speed", field: character.FieldBasicSpeed, value: math.NaN()},
			{name: "infinite speed", field: character.FieldBasicSpeed, value: math.Inf(1)},
			{name: "huge speed", field: character.FieldBasicSpeed, value: 1e19},
			{name: "nan strength", field: character.FieldStrength, value: math.NaN()},
			{name: "huge float strength", field: character.FieldStrength, value: 1e19},
			{name: "negative huge strength", field: character.FieldStrength, value: -1e19},
			{name: "int64 beyond int32", field: character.FieldStrength, value: int64(math.MaxInt32) + 1},
			{name: "int beyond int32", field: character.FieldStrength, value: math.MinInt32},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				err := s.sheet.SetValueForID(tc.field, tc.value)
				s.True(errors.IsInvalidArgument(err))
				s.Equal(string(tc.field), errors.FieldOf(err))
			})
		}
		s.Equal(12, s.sheet.Strength())
		s.False(math.IsNaN(s.sheet.BasicSpeed()))

		s.notifier.reset()
		s.sheet.SetIncludePunch(!s.sheet.IncludePunch())
		s.NotContains(s.notifier.fields(), character.FieldBasicSpeed)
		s.Equal(1, s.notifier.count(character.FieldIncludePunch))
	})

	s.Run("accepts whole floats from decoded payloads", func() {
		s.Require().NoError(s.sheet.SetField(string(character.FieldStrength), float64(13)))
		s.Equal(13, s.sheet.Strength())
		s.Require().NoError(s.sheet.SetValueForID(character.FieldBasicSpeed, 6))
		s.Equal(6.0, s.sheet.BasicSpeed())
	})

	s.Run("current hit points are written as damage", func() {
		s.Require().NoError(s.sheet.SetValueForID(character.FieldCurrentHitPoints, 7))
		s.Equal(13, s.sheet.HitPoints())
		s.Equal(6, s.sheet.HitPointsDamage())

		s.Require().NoError(s.sheet.SetValueForID(character.FieldCurrentHitPoints, 20))
		s.Equal(0, s.sheet.HitPointsDamage())
	})

	s.Run("created on accepts dates", func() {
		s.Require().NoError(s.sheet.SetValueForID(character.FieldCreatedOn, "2023-01-02"))
		s.True(time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC).Equal(s.sheet.CreatedOn()))
		s.True(errors.IsInvalidArgument(s.sheet.SetValueForID(character.FieldCreatedOn, "yesterday")))
	})

	s.Run("field ids parse", func() {
		id, ok := character.ParseFieldID("gcs.ba.ST")
		s.True(ok)
		s.Equal(character.FieldStrength, id)
		_, ok = character.ParseFieldID("gcs.ba.NOPE")
		s.False(ok)
	})
}

func (s *CharacterTestSuite) TestEquipmentHelpers() {
	pack := equipment.New("Backpack", 1, units.FromInt(60), lb(3))
	pack.ID = "pack"
	coins := equipment.New("Coin", 10, units.One, lb(0.02))
	coins.ID = "coins"

	s.Require().NoError(s.sheet.AddEquipment(pack, equipment.LocationCarried, nil))
	s.Require().NoError(s.sheet.AddEquipment(coins, equipment.LocationCarried, pack))
	s.Equal(lb(3.2), s.sheet.WeightCarried())
	s.Equal(units.FromInt(70), s.sheet.WealthCarried())

	found, loc, ok := s.sheet.LocateEquipment("coins")
	s.True(ok)
	s.Same(coins, found)
	s.Equal(equipment.LocationCarried, loc)

	s.Run("row edits update totals", func() {
		s.notifier.reset()
		s.sheet.UpdateEquipment(coins, func(e *equipment.Equipment) { e.SetQuantity(20) })
		s.Equal(lb(3.4), s.sheet.WeightCarried())
		s.Equal(units.FromInt(80), s.sheet.WealthCarried())
		s.Equal(1, s.notifier.count(character.FieldCarriedWeight))
		s.Equal(1, s.notifier.count(character.FieldCarriedWealth))
	})

	s.Run("moving out of the carried forest", func() {
		s.Require().NoError(s.sheet.MoveEquipment(pack, equipment.LocationNotCarried))
		s.Equal(lb(0), s.sheet.WeightCarried())
		s.Equal(units.Zero, s.sheet.WealthCarried())
		s.Equal(units.FromInt(80), s.sheet.WealthNotCarried())
	})

	s.Run("removing nested rows", func() {
		s.Require().NoError(s.sheet.RemoveEquipment(coins))
		s.Equal(units.FromInt(60), s.sheet.WealthNotCarried())
		s.True(errors.IsNotFound(s.sheet.RemoveEquipment(coins)))
	})

	s.Run("rejects invalid rows", func() {
		s.True(errors.IsInvalidArgument(s.sheet.AddEquipment(nil, equipment.LocationCarried, nil)))
		s.True(errors.IsInvalidArgument(s.sheet.AddEquipment(&equipment.Equipment{}, equipment.LocationCarried, nil)))
		s.True(errors.IsInvalidArgument(s.sheet.AddEquipment(coins, "floor", nil)))
	})

	s.Run("rejects ids already on the sheet", func() {
		copyOfPack := equipment.New("Backpack", 1, units.Zero, lb(3))
		copyOfPack.ID = "pack"
		s.True(errors.IsAlreadyExists(s.sheet.AddEquipment(copyOfPack, equipment.LocationCarried, nil)))

		s.Require().NoError(s.sheet.AddEquipment(pack, equipment.LocationCarried, nil))
		found, loc, ok := s.sheet.LocateEquipment("pack")
		s.True(ok)
		s.Same(pack, found)
		s.Equal(equipment.LocationCarried, loc)
	})
}

func (s *CharacterTestSuite) TestApplySettingsUnits() {
	s.Require().NoError(s.sheet.AddEquipment(equipment.New("Sack", 1, units.Zero, lb(20)), equipment.LocationCarried, nil))

	settings := rules.DefaultSettings()
	settings.UseGurpsMetric = true
	settings.WeightUnits = units.KG
	s.notifier.reset()
	s.Require().NoError(s.sheet.ApplySettings(settings))

	s.Equal(units.NewWeight(units.FromInt(10), units.KG), s.sheet.WeightCarried())
	s.Equal(units.NewWeight(units.FromInt(10), units.KG), s.sheet.BasicLift())
	s.Equal(1, s.notifier.count(character.FieldBasicLift))

	s.Error(s.sheet.ApplySettings(rules.Settings{WeightUnits: "stone"}))
}
