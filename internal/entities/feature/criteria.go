package feature

import (
	"strings"
)

// StringCompare is the comparison a StringCriteria applies.
type StringCompare string

// String comparisons
const (
	StringAny              StringCompare = "any"
	StringIs               StringCompare = "is"
	StringIsNot            StringCompare = "is_not"
	StringContains         StringCompare = "contains"
	StringDoesNotContain   StringCompare = "does_not_contain"
	StringStartsWith       StringCompare = "starts_with"
	StringDoesNotStartWith StringCompare = "does_not_start_with"
	StringEndsWith         StringCompare = "ends_with"
	StringDoesNotEndWith   StringCompare = "does_not_end_with"
)

// StringCriteria matches a string case-insensitively. The zero value matches anything.
type StringCriteria struct {
	Compare   StringCompare `json:"compare,omitempty"`
	Qualifier string        `json:"qualifier,omitempty"`
}

// Is returns criteria matching exactly qualifier.
func Is(qualifier string) StringCriteria {
	return StringCriteria{Compare: StringIs, Qualifier: qualifier}
}

// IsAny reports whether c matches every value.
func (c StringCriteria) IsAny() bool {
	return c.Compare == "" || c.Compare == StringAny
}

// Matches reports whether value satisfies c.
func (c StringCriteria) Matches(value string) bool {
	v := strings.ToLower(value)
	q := strings.ToLower(c.Qualifier)
	switch c.Compare {
	case "", StringAny:
		return true
	case StringIs:
		return v == q
	case StringIsNot:
		return v != q
	case StringContains:
		return strings.Contains(v, q)
	case StringDoesNotContain:
		return !strings.Contains(v, q)
	case StringStartsWith:
		return strings.HasPrefix(v, q)
	case StringDoesNotStartWith:
		return !strings.HasPrefix(v, q)
	case StringEndsWith:
		return strings.HasSuffix(v, q)
	case StringDoesNotEndWith:
		return !strings.HasSuffix(v, q)
	default:
		return false
	}
}

// NumericCompare is the comparison a NumericCriteria applies.
type NumericCompare string

// Numeric comparisons
const (
	NumericAny     NumericCompare = "any"
	NumericIs      NumericCompare = "is"
	NumericAtLeast NumericCompare = "at_least"
	NumericAtMost  NumericCompare = "at_most"
)

// NumericCriteria matches an integer. The zero value matches anything.
type NumericCriteria struct {
	Compare   NumericCompare `json:"compare,omitempty"`
	Qualifier int            `json:"qualifier,omitempty"`
}

// Matches reports whether value satisfies c.
func (c NumericCriteria) Matches(value int) bool {
	switch c.Compare {
	case "", NumericAny:
		return true
	case NumericIs:
		return value == c.Qualifier
	case NumericAtLeast:
		return value >= c.Qualifier
	case NumericAtMost:
		return value <= c.Qualifier
	default:
		return false
	}
}
