package emoji

import (
	"testing"

	"github.com/nejtool/nej/internal/decode"
)

func toks(s string) []decode.Token {
	return decode.New([]byte(s)).All()
}

func TestTableSortedAndDisjoint(t *testing.T) {
	for i := 1; i < len(blocks); i++ {
		if blocks[i].Lo <= blocks[i-1].Hi {
			t.Fatalf("blocks %d and %d overlap or are unsorted: %+v %+v",
				i-1, i, blocks[i-1], blocks[i])
		}
	}
	for i, b := range blocks {
		if b.Lo > b.Hi {
			t.Fatalf("block %d inverted: %+v", i, b)
		}
	}
}

func TestIsEmoji(t *testing.T) {
	cases := []struct {
		r    rune
		want bool
	}{
		{0x1F44B, true}, // waving hand
		{0x1F600, true}, // grinning face
		{0x2764, true},  // heavy black heart (dingbats)
		{0x2B50, true},  // star
		{0x1F1EB, true}, // regional indicator F
		{'a', false},
		{'?', false},
		{0x200D, false}, // ZWJ alone is not an emoji
		{0xFE0F, false}, // VS16 alone is not an emoji
		{0x4E2D, false}, // CJK ideograph
	}
	for _, c := range cases {
		if got := IsEmoji(c.r); got != c.want {
			t.Errorf("IsEmoji(%U) = %v, want %v", c.r, got, c.want)
		}
	}
}

func TestSpanSingle(t *testing.T) {
	ts := toks("a\U0001F44Bb")
	if got := Span(ts, 0); got != 0 {
		t.Fatalf("Span at 'a' = %d, want 0", got)
	}
	if got := Span(ts, 1); got != 1 {
		t.Fatalf("Span at emoji = %d, want 1", got)
	}
	if got := Span(ts, 2); got != 0 {
		t.Fatalf("Span at 'b' = %d, want 0", got)
	}
}

func TestSpanVariationSelector(t *testing.T) {
	// Heart + VS16.
	ts := toks("❤️")
	if got := Span(ts, 0); got != 2 {
		t.Fatalf("Span = %d, want 2", got)
	}
}

func TestSpanSkinTone(t *testing.T) {
	// Waving hand + medium skin tone.
	ts := toks("\U0001F44B\U0001F3FD")
	if got := Span(ts, 0); got != 2 {
		t.Fatalf("Span = %d, want 2", got)
	}
}

func TestSpanZWJFamily(t *testing.T) {
	// Family: man ZWJ woman ZWJ girl ZWJ boy = 7 scalars, one grapheme.
	ts := toks("\U0001F468‍\U0001F469‍\U0001F467‍\U0001F466")
	if got := Span(ts, 0); got != 7 {
		t.Fatalf("Span = %d, want 7", got)
	}
}

func TestSpanFlagPair(t *testing.T) {
	// Regional indicators F + R.
	ts := toks("\U0001F1EB\U0001F1F7x")
	if got := Span(ts, 0); got != 2 {
		t.Fatalf("Span = %d, want 2", got)
	}
	// The second indicator begins its own span when addressed directly.
	if got := Span(ts, 1); got != 1 {
		t.Fatalf("Span at second indicator = %d, want 1", got)
	}
}

func TestSpanDanglingZWJ(t *testing.T) {
	// ZWJ at end of input must not extend past the base emoji.
	ts := toks("\U0001F469‍")
	if got := Span(ts, 0); got != 1 {
		t.Fatalf("Span = %d, want 1", got)
	}
	// ZWJ followed by non-emoji stops extension too.
	ts = toks("\U0001F469‍a")
	if got := Span(ts, 0); got != 1 {
		t.Fatalf("Span = %d, want 1", got)
	}
}

func TestSpanRecoveredTokenNeverMatches(t *testing.T) {
	ts := decode.New([]byte{0xFF}).All()
	if got := Span(ts, 0); got != 0 {
		t.Fatalf("Span on recovered token = %d, want 0", got)
	}
}

func TestSpanOutOfRange(t *testing.T) {
	ts := toks("x")
	if Span(ts, -1) != 0 || Span(ts, 5) != 0 {
		t.Fatal("out-of-range cursor must report no span")
	}
}
