// Package transform rewrites decoded text with emoji graphemes removed.
package transform

import (
	"bytes"

	runewidth "github.com/mattn/go-runewidth"

	"github.com/nejtool/nej/internal/decode"
	"github.com/nejtool/nej/internal/emoji"
)

// Options control how removed graphemes are written out.
type Options struct {
	// Pad replaces each removed grapheme with a run of spaces matching the
	// grapheme's display width instead of deleting it outright, preserving
	// column alignment in the surrounding text.
	Pad bool
}

// Strip returns data with every emoji grapheme elided and the number of
// graphemes removed. A joined sequence (ZWJ family, flag pair, skin tone)
// counts as a single removal. Strip is pure: it never mutates data and is
// deterministic for identical input.
//
// Recovered placeholders from malformed input are written as the decoder's
// placeholder byte, so for well-formed input with no emoji the output is
// byte-identical to the input.
func Strip(data []byte, opts Options) ([]byte, int) {
	if len(data) == 0 {
		return []byte{}, 0
	}

	toks := decode.New(data).All()
	var out bytes.Buffer
	out.Grow(len(data))

	removed := 0
	for i := 0; i < len(toks); {
		if n := emoji.Span(toks, i); n > 0 {
			removed++
			if opts.Pad {
				pad := spanWidth(toks[i])
				for ; pad > 0; pad-- {
					out.WriteByte(' ')
				}
			}
			i += n
			continue
		}
		tok := toks[i]
		if tok.Recovered {
			out.WriteByte(decode.Placeholder)
		} else {
			out.Write(data[tok.Start:tok.End])
		}
		i++
	}
	return out.Bytes(), removed
}

// spanWidth is the display width of a removed grapheme. A joined sequence
// renders as one glyph, so the base scalar's width stands for the whole span.
func spanWidth(base decode.Token) int {
	w := runewidth.RuneWidth(base.Scalar)
	if w <= 0 {
		w = 1
	}
	return w
}
