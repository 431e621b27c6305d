package dice_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dice"
)

type fixedRoller struct {
	rolls []int
	err   error
}

func (r *fixedRoller) Roll(_ int) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	return r.rolls[0], nil
}

func (r *fixedRoller) RollN(count, _ int) ([]int, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.rolls[:count], nil
}

type DiceTestSuite struct {
	suite.Suite
}

func TestDiceTestSuite(t *testing.T) {
	suite.Run(t, new(DiceTestSuite))
}

func (s *DiceTestSuite) TestString() {
	testCases := []struct {
		name     string
		dice     dice.Dice
		expected string
	}{
		{name: "negative modifier", dice: dice.New(1, -2), expected: "1d-2"},
		{name: "positive modifier", dice: dice.New(2, 1), expected: "2d+1"},
		{name: "no modifier", dice: dice.New(3, 0), expected: "3d"},
		{name: "other sides", dice: dice.Dice{Count: 2, Sides: 8, Multiplier: 1}, expected: "2d8"},
		{name: "multiplier", dice: dice.Dice{Count: 1, Sides: 6, Modifier: 1, Multiplier: 3}, expected: "1d+1x3"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, tc.dice.String())
		})
	}
}

func (s *DiceTestSuite) TestAdd() {
	d := dice.New(2, 1)
	s.Equal(dice.New(2, -1), d.Add(-2))
	s.Equal(dice.New(2, 1), d, "add must not mutate the receiver")
}

func (s *DiceTestSuite) TestParse() {
	s.Run("round trips notation", func() {
		for _, notation := range []string{"1d-6", "2d+1", "3d", "2d8x2"} {
			d, err := dice.Parse(notation)
			s.Require().NoError(err)
			s.Equal(notation, d.String())
		}
	})

	s.Run("implicit count", func() {
		d, err := dice.Parse("d+2")
		s.Require().NoError(err)
		s.Equal(dice.New(1, 2), d)
	})

	s.Run("rejects garbage", func() {
		_, err := dice.Parse("two dice")
		s.Error(err)
	})
}

func (s *DiceTestSuite) TestRoll() {
	s.Run("sums dice and modifier", func() {
		result, err := dice.New(2, 1).Roll(&fixedRoller{rolls: []int{3, 5}})
		s.Require().NoError(err)
		s.Equal(9, result.Total)
		s.Equal([]int{3, 5}, result.Rolls)
		s.Equal("2d+1", result.Notation)
	})

	s.Run("clamps at zero", func() {
		result, err := dice.New(1, -6).Roll(&fixedRoller{rolls: []int{2}})
		s.Require().NoError(err)
		s.Equal(0, result.Total)
	})

	s.Run("applies multiplier", func() {
		result, err := dice.Dice{Count: 1, Sides: 6, Modifier: 1, Multiplier: 2}.Roll(&fixedRoller{rolls: []int{4}})
		s.Require().NoError(err)
		s.Equal(10, result.Total)
	})

	s.Run("propagates roller errors", func() {
		_, err := dice.New(1, 0).Roll(&fixedRoller{err: errors.New("boom")})
		s.Error(err)
	})
}
