// Package emoji classifies scalar values and scalar sequences as emoji
// graphemes. Classification is driven by a compiled-in sorted range table;
// joined sequences (ZWJ, variation selectors, skin tones, flag pairs) are
// grouped into a single span.
package emoji

import (
	"sort"

	"github.com/nejtool/nej/internal/decode"
)

const (
	// ZWJ glues pictographs into composite emoji (families, professions).
	ZWJ = 0x200D
	// VS16 requests emoji presentation for the preceding scalar.
	VS16 = 0xFE0F

	modifierLo = 0x1F3FB // skin tone modifiers
	modifierHi = 0x1F3FF
	regionalLo = 0x1F1E6 // regional indicator symbols
	regionalHi = 0x1F1FF
)

// IsEmoji reports whether r on its own is an emoji codepoint.
func IsEmoji(r rune) bool {
	i := sort.Search(len(blocks), func(i int) bool { return blocks[i].Hi >= r })
	return i < len(blocks) && blocks[i].Lo <= r
}

func isModifier(r rune) bool { return r >= modifierLo && r <= modifierHi }

func isRegional(r rune) bool { return r >= regionalLo && r <= regionalHi }

// Span returns the number of scalars in the longest emoji grapheme starting
// at toks[i], or 0 when no emoji starts there. Matching is greedy: a matched
// span is always extended as far as the joining rules allow and never
// backtracks into a shorter match.
func Span(toks []decode.Token, i int) int {
	if i < 0 || i >= len(toks) {
		return 0
	}
	first := toks[i]
	if first.Recovered || !IsEmoji(first.Scalar) {
		return 0
	}

	// Flag sequences pair two regional indicators.
	if isRegional(first.Scalar) {
		if i+1 < len(toks) && !toks[i+1].Recovered && isRegional(toks[i+1].Scalar) {
			return 2
		}
		return 1
	}

	n := 1
	for i+n < len(toks) {
		next := toks[i+n]
		if next.Recovered {
			break
		}
		switch {
		case next.Scalar == VS16 || isModifier(next.Scalar):
			n++
		case next.Scalar == ZWJ &&
			i+n+1 < len(toks) &&
			!toks[i+n+1].Recovered &&
			IsEmoji(toks[i+n+1].Scalar):
			n += 2
		default:
			return n
		}
	}
	return n
}
