// Package dice models GURPS damage dice such as "2d+1".
package dice

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// DefaultSides is the die size used when a notation omits it.
const DefaultSides = 6

var notationRegex = regexp.MustCompile(`^(\d*)d(\d*)([+-]\d+)?(?:x(\d+))?$`)

// Dice is a count of dice with a flat modifier and an optional multiplier.
type Dice struct {
	Count      int `json:"count"`
	Sides      int `json:"sides"`
	Modifier   int `json:"modifier"`
	Multiplier int `json:"multiplier"`
}

// New returns count six-sided dice plus modifier.
func New(count, modifier int) Dice {
	return Dice{Count: count, Sides: DefaultSides, Modifier: modifier, Multiplier: 1}
}

// Add returns a copy of d with modifier added.
func (d Dice) Add(modifier int) Dice {
	d.Modifier += modifier
	return d
}

// String renders d in GURPS notation, omitting six sides and a unit multiplier.
func (d Dice) String() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(d.Count))
	b.WriteByte('d')
	if d.Sides != DefaultSides && d.Sides != 0 {
		b.WriteString(strconv.Itoa(d.Sides))
	}
	if d.Modifier > 0 {
		b.WriteByte('+')
	}
	if d.Modifier != 0 {
		b.WriteString(strconv.Itoa(d.Modifier))
	}
	if d.Multiplier > 1 {
		b.WriteByte('x')
		b.WriteString(strconv.Itoa(d.Multiplier))
	}
	return b.String()
}

// MarshalText implements encoding.TextMarshaler.
func (d Dice) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Dice) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Parse reads notation like "2d+1", "1d-3", "3d" or "2d8x2".
func Parse(notation string) (Dice, error) {
	matches := notationRegex.FindStringSubmatch(strings.ToLower(strings.ReplaceAll(notation, " ", "")))
	if matches == nil {
		return Dice{}, errors.InvalidArgumentf("invalid dice notation: %s", notation)
	}

	d := Dice{Count: 1, Sides: DefaultSides, Multiplier: 1}
	var err error
	if matches[1] != "" {
		if d.Count, err = strconv.Atoi(matches[1]); err != nil {
			return Dice{}, errors.InvalidArgumentf("invalid dice count in notation: %s", notation)
		}
	}
	if matches[2] != "" {
		if d.Sides, err = strconv.Atoi(matches[2]); err != nil || d.Sides <= 0 {
			return Dice{}, errors.InvalidArgumentf("invalid die size in notation: %s", notation)
		}
	}
	if matches[3] != "" {
		if d.Modifier, err = strconv.Atoi(matches[3]); err != nil {
			return Dice{}, errors.InvalidArgumentf("invalid modifier in notation: %s", notation)
		}
	}
	if matches[4] != "" {
		if d.Multiplier, err = strconv.Atoi(matches[4]); err != nil || d.Multiplier <= 0 {
			return Dice{}, errors.InvalidArgumentf("invalid multiplier in notation: %s", notation)
		}
	}
	return d, nil
}

// RollResult is the outcome of a single roll.
type RollResult struct {
	Notation string `json:"notation"`
	Rolls    []int  `json:"rolls"`
	Total    int    `json:"total"`
}

// Roll rolls d with roller. Totals below zero are clamped to zero.
func (d Dice) Roll(roller toolkitdice.Roller) (*RollResult, error) {
	if roller == nil {
		roller = toolkitdice.DefaultRoller
	}

	sides := d.Sides
	if sides == 0 {
		sides = DefaultSides
	}
	result := &RollResult{Notation: d.String()}
	if d.Count > 0 {
		rolls, err := roller.RollN(d.Count, sides)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll %s", d)
		}
		result.Rolls = rolls
	}

	total := d.Modifier
	for _, r := range result.Rolls {
		total += r
	}
	if d.Multiplier > 1 {
		total *= d.Multiplier
	}
	result.Total = max(total, 0)
	return result, nil
}

// GoString is used by %#v in test failures.
func (d Dice) GoString() string {
	return fmt.Sprintf("dice.Dice(%s)", d)
}
