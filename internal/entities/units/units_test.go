package units_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/units"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

type UnitsTestSuite struct {
	suite.Suite
}

func TestUnitsTestSuite(t *testing.T) {
	suite.Run(t, new(UnitsTestSuite))
}

func (s *UnitsTestSuite) TestFixed6Arithmetic() {
	s.Run("multiplies and divides exactly", func() {
		a := units.FromInt(20)
		s.Equal(units.FromInt(4), a.Div(units.FromInt(5)))
		s.Equal(units.FromInt(160), a.Mul(units.FromInt(8)))
		s.Equal("6.666666", a.Div(units.FromInt(3)).String())
	})

	s.Run("rounds halves away from zero", func() {
		s.Equal(units.FromInt(3), units.FromFloat(2.5).Round())
		s.Equal(units.FromInt(-3), units.FromFloat(-2.5).Round())
		s.Equal(units.FromInt(2), units.FromFloat(2.499999).Round())
	})

	s.Run("truncates toward zero", func() {
		s.Equal(units.FromInt(19), units.FromFloat(19.99).Trunc())
		s.Equal(units.FromInt(-19), units.FromFloat(-19.99).Trunc())
	})

	s.Run("handles products beyond int64 intermediates", func() {
		big := units.FromInt(5_000_000)
		s.Equal(units.FromInt(250_000_000), big.Mul(units.FromInt(50)))
	})

	s.Run("division by zero yields zero", func() {
		s.Equal(units.Zero, units.One.Div(units.Zero))
	})

	s.Run("saturates instead of wrapping", func() {
		s.Equal(units.MaxFixed6, units.FromInt(10_000_000_000_000))
		s.Equal(units.MinFixed6, units.FromInt(-10_000_000_000_000))
		s.Equal(units.MaxFixed6, units.FromInt(5_000_000_000_000).MulInt(2))
		s.Equal(units.MinFixed6, units.FromInt(5_000_000_000_000).MulInt(-2))
		s.Equal(units.MaxFixed6, units.MaxFixed6.Add(units.One))
		s.Equal(units.MinFixed6, units.MinFixed6.Sub(units.One))
	})

	s.Run("non-finite floats", func() {
		s.Equal(units.Zero, units.FromFloat(math.NaN()))
		s.Equal(units.MaxFixed6, units.FromFloat(math.Inf(1)))
		s.Equal(units.MinFixed6, units.FromFloat(math.Inf(-1)))
		s.Equal(units.MaxFixed6, units.FromFloat(1e19))
	})
}

func (s *UnitsTestSuite) TestFixed6Text() {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "whole", input: "12", expected: "12"},
		{name: "fraction", input: "0.25", expected: "0.25"},
		{name: "negative", input: "-1.5", expected: "-1.5"},
		{name: "extra digits truncated", input: "1.23456789", expected: "1.234567"},
		{name: "leading dot", input: ".5", expected: "0.5"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			v, err := units.ParseFixed6(tc.input)
			s.Require().NoError(err)
			s.Equal(tc.expected, v.String())
		})
	}

	s.Run("rejects malformed and out of range input", func() {
		for _, input := range []string{"abc", "", "-", "1.-5", "2.+5", "1..5", "1.2.3", "9999999999999", "-9999999999999"} {
			_, err := units.ParseFixed6(input)
			s.True(errors.IsInvalidArgument(err), "input %q", input)
		}
	})

	s.Run("largest whole value parses", func() {
		v, err := units.ParseFixed6("9223372036854")
		s.Require().NoError(err)
		s.Equal("9223372036854", v.String())
	})

	s.Run("json accepts numbers and strings", func() {
		var v struct {
			A units.Fixed6 `json:"a"`
			B units.Fixed6 `json:"b"`
		}
		s.Require().NoError(json.Unmarshal([]byte(`{"a":"1.5","b":2}`), &v))
		s.Equal(units.FromFloat(1.5), v.A)
		s.Equal(units.FromInt(2), v.B)

		out, err := json.Marshal(v)
		s.Require().NoError(err)
		s.JSONEq(`{"a":"1.5","b":"2"}`, string(out))
	})
}

func (s *UnitsTestSuite) TestWeightConversion() {
	s.Run("imperial", func() {
		s.Equal(units.FromInt(2), units.LB.Convert(units.OZ, units.FromInt(32)))
		s.Equal(units.FromInt(4000), units.LB.Convert(units.TN, units.FromInt(2)))
	})

	s.Run("metric round trip stays close", func() {
		kg := units.KG.Convert(units.LB, units.FromInt(100))
		s.Equal("45.359229", kg.String())
		s.Equal(units.FromInt(1000), units.G.Convert(units.KG, units.One))
	})

	s.Run("add converts into receiver units", func() {
		w := units.NewWeight(units.FromInt(1), units.LB).Add(units.NewWeight(units.FromInt(8), units.OZ))
		s.Equal(units.NewWeight(units.FromFloat(1.5), units.LB), w)
	})

	s.Run("gurps metric uses the 2:1 table", func() {
		s.Equal(units.NewWeight(units.FromInt(10), units.KG), units.ToGurpsMetric(units.NewWeight(units.FromInt(20), units.LB)))
		s.Equal(units.NewWeight(units.FromInt(20), units.LB), units.FromGurpsMetric(units.NewWeight(units.FromInt(10), units.KG)))
		s.Equal(units.NewWeight(units.FromInt(60), units.G), units.ToGurpsMetric(units.NewWeight(units.FromInt(2), units.OZ)))
		s.Equal(units.NewWeight(units.FromInt(3), units.T), units.ToGurpsMetric(units.NewWeight(units.FromInt(3), units.TN)))
		s.Equal(units.NewWeight(units.FromInt(3), units.LB), units.FromGurpsMetric(units.NewWeight(units.FromInt(3), units.LB)))
	})
}

func (s *UnitsTestSuite) TestParseWeight() {
	testCases := []struct {
		input    string
		expected units.WeightValue
	}{
		{input: "20 lb", expected: units.NewWeight(units.FromInt(20), units.LB)},
		{input: "3.5kg", expected: units.NewWeight(units.FromFloat(3.5), units.KG)},
		{input: "500 g", expected: units.NewWeight(units.FromInt(500), units.G)},
		{input: "2 lt", expected: units.NewWeight(units.FromInt(2), units.LT)},
		{input: "1 t", expected: units.NewWeight(units.FromInt(1), units.T)},
		{input: "7", expected: units.NewWeight(units.FromInt(7), units.LB)},
	}

	for _, tc := range testCases {
		s.Run(tc.input, func() {
			w, err := units.ParseWeight(tc.input)
			s.Require().NoError(err)
			s.Equal(tc.expected, w)
		})
	}

	s.Run("unknown units", func() {
		_, err := units.ParseWeightUnits("stone")
		s.Error(err)
	})
}
