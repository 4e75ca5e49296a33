package episodes

import (
	"strconv"
	"strings"
)

// Bound is an optional inclusive episode interval used to clip a RangeSet.
type Bound struct {
	Lower    int
	Upper    int
	HasLower bool
	HasUpper bool
}

// AtLeast returns a bound with only a lower limit.
func AtLeast(lower int) Bound {
	return Bound{Lower: lower, HasLower: true}
}

// AtMost returns a bound with only an upper limit.
func AtMost(upper int) Bound {
	return Bound{Upper: upper, HasUpper: true}
}

// Between returns a bound with both limits. lower must not exceed upper.
func Between(lower, upper int) (Bound, error) {
	b := Bound{Lower: lower, Upper: upper, HasLower: true, HasUpper: true}
	if err := b.Validate(); err != nil {
		return Bound{}, err
	}
	return b, nil
}

// ParseBound builds a bound from textual limits. An empty limit means no
// bound on that side.
func ParseBound(lower, upper string) (Bound, error) {
	var b Bound
	var err error
	if b.Lower, b.HasLower, err = parseLimit("lower", lower); err != nil {
		return Bound{}, err
	}
	if b.Upper, b.HasUpper, err = parseLimit("upper", upper); err != nil {
		return Bound{}, err
	}
	if err := b.Validate(); err != nil {
		return Bound{}, err
	}
	return b, nil
}

func parseLimit(side, value string) (int, bool, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, false, formatErrorf(value, "invalid %s bound", side)
	}
	if n < 0 {
		return 0, false, formatErrorf(value, "%s bound must not be negative", side)
	}
	return n, true, nil
}

// Validate rejects a bound whose lower limit exceeds its upper limit.
func (b Bound) Validate() error {
	if b.HasLower && b.HasUpper && b.Lower > b.Upper {
		return formatErrorf(b.String(), "lower bound %d greater than upper bound %d", b.Lower, b.Upper)
	}
	return nil
}

// IsZero reports whether the bound limits nothing.
func (b Bound) IsZero() bool {
	return !b.HasLower && !b.HasUpper
}

// String renders the bound in argument form, e.g. "3:8", "3:" or ":8".
func (b Bound) String() string {
	if b.IsZero() {
		return ""
	}
	var sb strings.Builder
	if b.HasLower {
		sb.WriteString(strconv.Itoa(b.Lower))
	}
	sb.WriteByte(':')
	if b.HasUpper {
		sb.WriteString(strconv.Itoa(b.Upper))
	}
	return sb.String()
}

// Label renders the bound for display, e.g. "3-8", "3+" or "1-8".
func (b Bound) Label() string {
	switch {
	case b.HasLower && b.HasUpper:
		return strconv.Itoa(b.Lower) + "-" + strconv.Itoa(b.Upper)
	case b.HasLower:
		return strconv.Itoa(b.Lower) + "+"
	case b.HasUpper:
		return "1-" + strconv.Itoa(b.Upper)
	default:
		return ""
	}
}
