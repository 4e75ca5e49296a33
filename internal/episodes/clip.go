package episodes

import "slices"

// ClipLower drops every episode below lower. Tokens are assumed to be in
// increasing order, so scanning stops at the first token that reaches lower.
func (s RangeSet) ClipLower(lower int) RangeSet {
	for i, t := range s {
		switch {
		case t.Last < lower:
			continue
		case t.First >= lower:
			return slices.Clone(s[i:])
		default:
			// The token straddles lower; when it ends exactly at lower this
			// leaves a single episode.
			out := make(RangeSet, 0, len(s)-i)
			out = append(out, Token{First: lower, Last: t.Last})
			return append(out, s[i+1:]...)
		}
	}
	return RangeSet{}
}

// ClipUpper drops every episode above upper. It is the mirror image of
// ClipLower: the set is reversed and negated, clipped from below at -upper,
// then mirrored back.
func (s RangeSet) ClipUpper(upper int) RangeSet {
	return s.mirror().ClipLower(-upper).mirror()
}

// Clip applies the lower limit of b and then its upper limit.
func (s RangeSet) Clip(b Bound) RangeSet {
	out := slices.Clone(s)
	if out == nil {
		out = RangeSet{}
	}
	if b.HasLower {
		out = out.ClipLower(b.Lower)
	}
	if b.HasUpper {
		out = out.ClipUpper(b.Upper)
	}
	return out
}

func (s RangeSet) mirror() RangeSet {
	out := make(RangeSet, len(s))
	for i, t := range s {
		out[len(s)-1-i] = Token{First: -t.Last, Last: -t.First}
	}
	return out
}
