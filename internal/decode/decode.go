// Package decode turns raw bytes into a stream of Unicode scalar values.
// Malformed UTF-8 never stops the stream: bad sequences are replaced with a
// placeholder token and decoding continues at the next plausible boundary.
package decode

const (
	// Placeholder is the scalar substituted for malformed byte sequences.
	Placeholder = '?'

	maxScalar    = 0x10FFFF
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

// Token is one decoded scalar value together with the byte span it was
// decoded from. Recovered marks a placeholder emitted for malformed input;
// for recovered tokens Scalar is Placeholder and the span covers the bytes
// that were skipped.
type Token struct {
	Scalar    rune
	Start     int
	End       int
	Recovered bool
}

// Decoder iterates over a byte slice one scalar value at a time. It is
// forward-only and not safe for concurrent use.
type Decoder struct {
	src []byte
	pos int
}

// New returns a Decoder positioned at the start of src. The decoder does not
// copy src; callers must not mutate it while decoding.
func New(src []byte) *Decoder {
	return &Decoder{src: src}
}

// Next returns the next token and true, or a zero token and false once the
// input is exhausted. Next never fails: malformed sequences produce a
// recovered placeholder token.
func (d *Decoder) Next() (Token, bool) {
	if d.pos >= len(d.src) {
		return Token{}, false
	}
	start := d.pos
	b := d.src[start]

	if b < 0x80 {
		d.pos++
		return Token{Scalar: rune(b), Start: start, End: d.pos}, true
	}

	need, min := seqLen(b)
	if need == 0 {
		// Standalone continuation or invalid lead byte: skip exactly one
		// byte so a later valid sequence is not swallowed.
		d.pos++
		return recovered(start, d.pos), true
	}

	// Gather available continuation bytes.
	got := 0
	for got < need-1 && start+1+got < len(d.src) && isCont(d.src[start+1+got]) {
		got++
	}
	if got < need-1 {
		// Truncated sequence: consume the lead byte plus whatever
		// continuation bytes were present.
		d.pos = start + 1 + got
		return recovered(start, d.pos), true
	}

	r := rune(b & leadMask(need))
	for i := 1; i < need; i++ {
		r = r<<6 | rune(d.src[start+i]&0x3F)
	}
	d.pos = start + need
	if r < min || r > maxScalar || (r >= surrogateMin && r <= surrogateMax) {
		// Overlong encoding, surrogate, or out of range.
		return recovered(start, d.pos), true
	}
	return Token{Scalar: r, Start: start, End: d.pos}, true
}

// All decodes the remaining input eagerly. Convenient when the caller needs
// lookahead over the whole token stream.
func (d *Decoder) All() []Token {
	var toks []Token
	for {
		t, ok := d.Next()
		if !ok {
			return toks
		}
		toks = append(toks, t)
	}
}

func recovered(start, end int) Token {
	return Token{Scalar: Placeholder, Start: start, End: end, Recovered: true}
}

// seqLen maps a lead byte to its sequence length and the minimum scalar that
// length may encode (to reject overlong forms). A zero length marks an
// invalid lead byte.
func seqLen(b byte) (int, rune) {
	switch {
	case b&0xE0 == 0xC0:
		return 2, 0x80
	case b&0xF0 == 0xE0:
		return 3, 0x800
	case b&0xF8 == 0xF0:
		return 4, 0x10000
	default:
		return 0, 0
	}
}

func leadMask(need int) byte {
	switch need {
	case 2:
		return 0x1F
	case 3:
		return 0x0F
	default:
		return 0x07
	}
}

func isCont(b byte) bool {
	return b&0xC0 == 0x80
}
