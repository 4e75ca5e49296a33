// Package episodes parses and manipulates the compact episode list encoding
// used on show pages, e.g. "1-5, 7, 10-12".
//
// A RangeSet is an ordered list of tokens, each either a single episode or an
// inclusive range. The package validates the textual shape, counts the
// episodes a set represents, clips a set to an inclusive Bound, and renders a
// set back to its canonical text so that Parse(s.String()) reproduces s.
//
// RangeSet values are never modified in place; clipping always returns a
// fresh set.
package episodes
