package transform

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyInput(t *testing.T) {
	out, removed := Strip(nil, Options{})
	assert.Empty(t, out)
	assert.Equal(t, 0, removed)

	out, removed = Strip([]byte(""), Options{})
	assert.Equal(t, []byte{}, out)
	assert.Equal(t, 0, removed)
}

func TestNoEmojiIsByteIdentical(t *testing.T) {
	in := []byte("plain ascii, accents éèü, CJK 中文, punctuation!")
	out, removed := Strip(in, Options{})
	assert.Equal(t, 0, removed)
	assert.True(t, bytes.Equal(in, out), "output must equal input when nothing is removed")
}

func TestSingleEmojiRemoved(t *testing.T) {
	out, removed := Strip([]byte("Hello \U0001F44B World!"), Options{})
	assert.Equal(t, 1, removed)
	assert.Equal(t, "Hello  World!", string(out))
}

func TestPadReplacesWithBlankRun(t *testing.T) {
	out, removed := Strip([]byte("Hello \U0001F44B World!"), Options{Pad: true})
	assert.Equal(t, 1, removed)
	// The waving hand is two columns wide, so the pad run is two spaces.
	assert.Equal(t, "Hello    World!", string(out))
}

func TestFamilyCountsOnce(t *testing.T) {
	family := "\U0001F468‍\U0001F469‍\U0001F467‍\U0001F466"
	out, removed := Strip([]byte("a"+family+"b"), Options{})
	assert.Equal(t, 1, removed, "ZWJ sequence is one grapheme, not four")
	assert.Equal(t, "ab", string(out))
}

func TestFlagPairCountsOnce(t *testing.T) {
	out, removed := Strip([]byte("x\U0001F1EB\U0001F1F7y"), Options{})
	assert.Equal(t, 1, removed)
	assert.Equal(t, "xy", string(out))
}

func TestVariationSelectorConsumedWithBase(t *testing.T) {
	out, removed := Strip([]byte("love ❤️!"), Options{})
	assert.Equal(t, 1, removed)
	assert.Equal(t, "love !", string(out))
}

func TestIdempotent(t *testing.T) {
	in := []byte("mixed \U0001F600 text \U0001F1EB\U0001F1F7 here ⭐")
	once, n1 := Strip(in, Options{})
	require.Equal(t, 3, n1)
	twice, n2 := Strip(once, Options{})
	assert.Equal(t, 0, n2)
	assert.Equal(t, once, twice)
}

func TestMalformedInputNeverFails(t *testing.T) {
	// Truncated 4-byte lead at end of input.
	out, removed := Strip([]byte{'a', 0xF0, 0x9F}, Options{})
	assert.Equal(t, 0, removed)
	assert.Equal(t, "a?", string(out))
}

func TestMalformedMidStream(t *testing.T) {
	out, removed := Strip([]byte{0xFF, 'o', 'k', 0x80}, Options{})
	assert.Equal(t, 0, removed)
	assert.Equal(t, "?ok?", string(out))
}

func TestDeterministic(t *testing.T) {
	in := []byte("same \U0001F680 input")
	a, na := Strip(in, Options{})
	b, nb := Strip(in, Options{})
	assert.Equal(t, a, b)
	assert.Equal(t, na, nb)
}

func TestInputNotMutated(t *testing.T) {
	in := []byte("keep \U0001F44B intact")
	orig := append([]byte(nil), in...)
	_, _ = Strip(in, Options{})
	assert.Equal(t, orig, in)
}
