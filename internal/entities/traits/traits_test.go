package traits_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/feature"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/traits"
)

type TraitsTestSuite struct {
	suite.Suite
}

func TestTraitsTestSuite(t *testing.T) {
	suite.Run(t, new(TraitsTestSuite))
}

func (s *TraitsTestSuite) TestAdjustedPoints() {
	s.Run("levels", func() {
		a := &traits.Advantage{Name: "Striking ST", Points: 0, PointsPerLevel: 5, Levels: 3}
		s.Equal(15, a.AdjustedPoints())
	})

	s.Run("enhancement rounds up", func() {
		a := &traits.Advantage{Name: "Danger Sense", Points: 15, Modifiers: []traits.Modifier{
			{Name: "Extended", CostPercent: 10, Enabled: true},
		}}
		s.Equal(17, a.AdjustedPoints())
	})

	s.Run("round cost down", func() {
		a := &traits.Advantage{Name: "Danger Sense", Points: 15, RoundCostDown: true, Modifiers: []traits.Modifier{
			{Name: "Extended", CostPercent: 10, Enabled: true},
		}}
		s.Equal(16, a.AdjustedPoints())
	})

	s.Run("limitations floor at minus eighty percent", func() {
		a := &traits.Advantage{Name: "Flight", Points: 40, Modifiers: []traits.Modifier{
			{Name: "Winged", CostPercent: -25, Enabled: true},
			{Name: "Only in storms", CostPercent: -70, Enabled: true},
			{Name: "Disabled", CostPercent: 50, Enabled: false},
		}}
		s.Equal(8, a.AdjustedPoints())
	})

	s.Run("disadvantage rounds toward zero", func() {
		a := &traits.Advantage{Name: "Bad Temper", Points: -10, Modifiers: []traits.Modifier{
			{Name: "Mitigator", CostPercent: -35, Enabled: true},
		}}
		s.Equal(-6, a.AdjustedPoints())
	})

	s.Run("group sums children", func() {
		a := &traits.Advantage{Name: "Group", Container: true, Children: []*traits.Advantage{
			{Name: "A", Points: 10},
			{Name: "B", Points: -5},
			{Name: "C", Points: 20, Disabled: true},
		}}
		s.Equal(5, a.AdjustedPoints())
	})

	s.Run("alternative abilities", func() {
		a := &traits.Advantage{Name: "Alt", Container: true, ContainerType: traits.ContainerAlternative, Children: []*traits.Advantage{
			{Name: "A", Points: 12},
			{Name: "B", Points: 30},
			{Name: "C", Points: 21},
		}}
		s.Equal(30+3+5, a.AdjustedPoints())
	})
}

func (s *TraitsTestSuite) TestOwnFeatures() {
	bonus := feature.NewBonus("gcs.ba.HT", 1)
	a := &traits.Advantage{
		Name:     "Fit",
		Features: []feature.Feature{bonus},
		Modifiers: []traits.Modifier{
			{Name: "On", Enabled: true, Features: []feature.Feature{feature.NewBonus("gcs.ba.FP", 2)}},
			{Name: "Off", Enabled: false, Features: []feature.Feature{feature.NewBonus("gcs.ba.FP", 5)}},
		},
	}
	got := a.OwnFeatures()
	s.Len(got, 2)
	s.Equal("gcs.ba.FP", got[1].Key)
	s.Len(a.Features, 1, "must not grow the row's own slice")
}

func (s *TraitsTestSuite) TestValidate() {
	s.NoError((&traits.Advantage{Name: "Luck", Points: 15}).Validate())
	s.Error((&traits.Advantage{}).Validate())
	s.Error((&traits.Advantage{Name: "Box", Container: true, ContainerType: "crate"}).Validate())
	s.Error((&traits.Advantage{Name: "Parent", Container: true, Children: []*traits.Advantage{{}}}).Validate())
	s.Error((&traits.Skill{Name: "Stealth", Points: -1}).Validate())
	s.NoError((&traits.Spell{Name: "Fireball", Points: 1}).Validate())
}

func (s *TraitsTestSuite) TestSkillMatches() {
	skill := &traits.Skill{Name: "Guns", Specialization: "Pistol"}
	s.True(skill.Matches("guns", ""))
	s.True(skill.Matches("Guns", "pistol"))
	s.False(skill.Matches("Guns", "Rifle"))
	s.Equal("Guns (Pistol)", skill.DisplayName())
}

func (s *TraitsTestSuite) TestRemoveChild() {
	child := &traits.Skill{Name: "Child"}
	parent := &traits.Skill{Name: "Parent", Container: true}
	parent.AddChild(child)
	s.True(parent.RemoveChild(child))
	s.False(parent.RemoveChild(child))
	s.Empty(parent.Children)
}

func (s *TraitsTestSuite) TestJSON() {
	raw := `{"name":"Combat Reflexes","points":15,"features":[{"type":"bonus","key":"gcs.ba.DODGE","amount":"1"}]}`
	var a traits.Advantage
	s.Require().NoError(json.Unmarshal([]byte(raw), &a))
	s.Equal(15, a.AdjustedPoints())
	s.Require().Len(a.Features, 1)
	s.Equal(1, a.Features[0].IntegerAdjustedAmount())
}
