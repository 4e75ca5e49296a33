package episodes

import (
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

const (
	chunkSeparator = ", "
	rangeSeparator = "-"
)

// wellFormedPattern matches `(group ", ")* group?` where a group is a bare
// integer or an integer pair joined by a dash.
var wellFormedPattern = regexp.MustCompile(`^(?:\d+(?:-\d+)?, )*(?:\d+(?:-\d+)?)?$`)

// Token is a single episode (First == Last) or an inclusive episode range.
type Token struct {
	First int
	Last  int
}

// Single returns the token for one episode.
func Single(episode int) Token {
	return Token{First: episode, Last: episode}
}

// IsSingle reports whether the token covers exactly one episode.
func (t Token) IsSingle() bool {
	return t.First == t.Last
}

// Count returns the number of episodes the token covers.
func (t Token) Count() int {
	return t.Last - t.First + 1
}

func (t Token) String() string {
	if t.IsSingle() {
		return strconv.Itoa(t.First)
	}
	return strconv.Itoa(t.First) + rangeSeparator + strconv.Itoa(t.Last)
}

// RangeSet is an ordered, non-overlapping sequence of tokens.
type RangeSet []Token

// IsWellFormed reports whether text matches the episode list grammar. Parse
// is more lenient than this check; callers decide whether a mismatch is fatal.
func IsWellFormed(text string) bool {
	return wellFormedPattern.MatchString(text)
}

// Parse converts episode list text into a RangeSet. Empty text yields an
// empty set and a trailing separator, with or without its space, is ignored.
// Tokens must be strictly increasing and must not overlap.
func Parse(text string) (RangeSet, error) {
	chunks := strings.Split(text, chunkSeparator)
	set := make(RangeSet, 0, len(chunks))
	for i, chunk := range chunks {
		chunk = strings.TrimSpace(chunk)
		if i == len(chunks)-1 {
			chunk = strings.TrimSpace(strings.TrimSuffix(chunk, ","))
		}
		if chunk == "" {
			continue
		}
		token, err := parseChunk(chunk)
		if err != nil {
			return nil, err
		}
		if n := len(set); n > 0 && token.First <= set[n-1].Last {
			return nil, formatErrorf(chunk, "episode %d does not follow %d", token.First, set[n-1].Last)
		}
		set = append(set, token)
	}
	return set, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(text string) RangeSet {
	set, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return set
}

func parseChunk(chunk string) (Token, error) {
	first, second, isRange := strings.Cut(chunk, rangeSeparator)
	start, err := parseEpisode(chunk, first)
	if err != nil {
		return Token{}, err
	}
	if !isRange {
		return Single(start), nil
	}
	end, err := parseEpisode(chunk, second)
	if err != nil {
		return Token{}, err
	}
	if end < start {
		return Token{}, formatErrorf(chunk, "second episode %d less than first %d", end, start)
	}
	return Token{First: start, Last: end}, nil
}

func parseEpisode(chunk, value string) (int, error) {
	value = strings.TrimSpace(value)
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, formatErrorf(chunk, "invalid episode number %q", value)
	}
	if n < 1 {
		return 0, formatErrorf(chunk, "episode number %d must be positive", n)
	}
	return n, nil
}

// Count returns the total number of episodes in the set.
// The sum saturates at math.MaxInt.
func (s RangeSet) Count() int {
	total := 0
	for _, t := range s {
		n := t.Count()
		if n > math.MaxInt-total {
			return math.MaxInt
		}
		total += n
	}
	return total
}

// String renders the canonical episode list text.
func (s RangeSet) String() string {
	parts := make([]string, len(s))
	for i, t := range s {
		parts[i] = t.String()
	}
	return strings.Join(parts, chunkSeparator)
}

// Equal reports whether both sets hold the same tokens in the same order.
func (s RangeSet) Equal(other RangeSet) bool {
	return slices.Equal(s, other)
}

// First returns the lowest episode in the set.
func (s RangeSet) First() (int, bool) {
	if len(s) == 0 {
		return 0, false
	}
	return s[0].First, true
}

// Last returns the highest episode in the set.
func (s RangeSet) Last() (int, bool) {
	if len(s) == 0 {
		return 0, false
	}
	return s[len(s)-1].Last, true
}
