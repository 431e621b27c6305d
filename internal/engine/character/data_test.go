package character_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-sheet/internal/engine/character"
	charactermock "github.com/KirkDiggler/rpg-sheet/internal/engine/character/mock"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/feature"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/rules"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/traits"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/units"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
)

type DataTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	clock        *clock.Manual
	mockNotifier *charactermock.MockNotifier
}

func TestDataTestSuite(t *testing.T) {
	suite.Run(t, new(DataTestSuite))
}

func (s *DataTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.clock = clock.NewManual(time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC))
	// loads must not notify, so the mock has no expectations
	s.mockNotifier = charactermock.NewMockNotifier(s.ctrl)
}

func (s *DataTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DataTestSuite) newSheet() *character.Character {
	c, err := character.New(&character.Config{Settings: rules.DefaultSettings(), Clock: s.clock})
	s.Require().NoError(err)
	return c
}

func intPtr(n int) *int {
	return &n
}

func (s *DataTestSuite) TestRoundTrip() {
	src := s.newSheet()
	src.SetStrength(14)
	src.SetDexterity(12)
	src.SetBasicSpeed(6.25)
	src.SetHitPointsDamage(3)
	src.SetIncludeKick(false)
	src.SetSizeModifier(1)
	src.Advantages().Add(&traits.Advantage{
		Name:     "Fit",
		Points:   5,
		Features: []feature.Feature{feature.NewBonus(string(character.FieldHealth), 1)},
	})
	src.Skills().Add(&traits.Skill{Name: "Climbing", Points: 2})
	pack := equipment.New("Backpack", 1, units.FromInt(60), lb(3))
	pack.ID = "pack"
	s.Require().NoError(src.AddEquipment(pack, equipment.LocationCarried, nil))
	s.Require().NoError(src.AddEquipment(equipment.New("Rope", 1, units.FromInt(5), lb(1.5)), equipment.LocationCarried, pack))
	s.Require().NoError(src.AddEquipment(equipment.New("Tent", 1, units.FromInt(80), lb(20)), equipment.LocationNotCarried, nil))

	raw, err := json.Marshal(src.Save())
	s.Require().NoError(err)

	var data character.Data
	s.Require().NoError(json.Unmarshal(raw, &data))

	s.clock.Advance(time.Hour)
	dst := s.newSheet()
	dst.SetNotifier(s.mockNotifier)
	s.Require().NoError(dst.Load(&data))

	s.Equal(src.Strength(), dst.Strength())
	s.Equal(src.Dexterity(), dst.Dexterity())
	s.Equal(11, dst.Health())
	s.Equal(src.BasicSpeed(), dst.BasicSpeed())
	s.Equal(src.HitPointsDamage(), dst.HitPointsDamage())
	s.Equal(src.SizeModifier(), dst.SizeModifier())
	s.False(dst.IncludeKick())
	s.Equal(src.AttributePoints(), dst.AttributePoints())
	s.Equal(5, dst.AdvantagePoints())
	s.Equal(2, dst.SkillPoints())
	s.Equal(src.UnspentPoints(), dst.UnspentPoints())
	s.Equal(lb(4.5), dst.WeightCarried())
	s.Equal(units.FromInt(65), dst.WealthCarried())
	s.Equal(units.FromInt(80), dst.WealthNotCarried())
	s.True(src.CreatedOn().Equal(dst.CreatedOn()))
	s.True(src.LastModified().Equal(dst.LastModified()))
	s.Empty(dst.Changes())

	s.Run("loaded containers stay linked", func() {
		loaded, loc, ok := dst.LocateEquipment("pack")
		s.Require().True(ok)
		s.Equal(equipment.LocationCarried, loc)
		s.Require().Len(loaded.Children, 1)
		s.Same(loaded, loaded.Children[0].Parent())
		s.Equal(lb(4.5), loaded.ExtendedWeight())
	})
}

func (s *DataTestSuite) TestDefaults() {
	c := s.newSheet()
	s.Require().NoError(c.Load(&character.Data{}))

	s.Equal(10, c.Strength())
	s.Equal(10, c.Intelligence())
	s.True(c.IncludePunch())
	s.Equal(100, c.TotalPoints())
	s.Equal(s.clock.Now(), c.CreatedOn())
}

func (s *DataTestSuite) TestUnspentOverridesTotal() {
	c := s.newSheet()
	s.Require().NoError(c.Load(&character.Data{
		Strength:      intPtr(12),
		UnspentPoints: 30,
	}))
	s.Equal(20, c.SpentPoints())
	s.Equal(50, c.TotalPoints())
	s.Equal(30, c.UnspentPoints())
}

func (s *DataTestSuite) TestLegacyCurrentValues() {
	c := s.newSheet()
	s.Require().NoError(c.Load(&character.Data{
		Strength:  intPtr(12),
		Health:    intPtr(11),
		CurrentHP: intPtr(7),
		CurrentFP: intPtr(14),
	}))
	s.Equal(5, c.HitPointsDamage())
	s.Equal(7, c.CurrentHitPoints())
	s.Equal(0, c.FatiguePointsDamage())
}

func (s *DataTestSuite) TestLoadErrors() {
	c := s.newSheet()

	s.Run("nil data", func() {
		s.True(errors.IsInvalidArgument(c.Load(nil)))
	})

	s.Run("inside a batch", func() {
		c.StartBatch()
		defer c.EndBatch()
		s.True(errors.IsFailedPrecondition(c.Load(&character.Data{})))
	})
}
