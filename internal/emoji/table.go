package emoji

// Block is a named, inclusive range of codepoints treated as emoji when they
// appear on their own. The table below is kept sorted by Lo and searched with
// binary search; it is read-only after process start.
type Block struct {
	Lo, Hi rune
	Name   string
}

// Derived from the Unicode emoji-data pictographic ranges, collapsed to whole
// blocks where the block is emoji-dominated. Sorted by Lo, non-overlapping.
var blocks = [...]Block{
	{0x00A9, 0x00A9, "copyright"},
	{0x00AE, 0x00AE, "registered"},
	{0x203C, 0x203C, "double exclamation"},
	{0x2049, 0x2049, "exclamation question"},
	{0x2122, 0x2122, "trade mark"},
	{0x2139, 0x2139, "information"},
	{0x2194, 0x2199, "arrows"},
	{0x21A9, 0x21AA, "hooked arrows"},
	{0x231A, 0x231B, "watch, hourglass"},
	{0x2328, 0x2328, "keyboard"},
	{0x23CF, 0x23CF, "eject"},
	{0x23E9, 0x23F3, "media controls"},
	{0x23F8, 0x23FA, "pause, stop, record"},
	{0x24C2, 0x24C2, "circled M"},
	{0x25AA, 0x25AB, "small squares"},
	{0x25B6, 0x25B6, "play"},
	{0x25C0, 0x25C0, "reverse"},
	{0x25FB, 0x25FE, "medium squares"},
	{0x2600, 0x26FF, "miscellaneous symbols"},
	{0x2700, 0x27BF, "dingbats"},
	{0x2934, 0x2935, "curved arrows"},
	{0x2B05, 0x2B07, "bold arrows"},
	{0x2B1B, 0x2B1C, "large squares"},
	{0x2B50, 0x2B50, "star"},
	{0x2B55, 0x2B55, "heavy circle"},
	{0x3030, 0x3030, "wavy dash"},
	{0x303D, 0x303D, "part alternation mark"},
	{0x3297, 0x3297, "circled congratulations"},
	{0x3299, 0x3299, "circled secret"},
	{0x1F004, 0x1F004, "mahjong red dragon"},
	{0x1F0CF, 0x1F0CF, "playing card joker"},
	{0x1F170, 0x1F171, "blood type A, B"},
	{0x1F17E, 0x1F17F, "blood type O, parking"},
	{0x1F18E, 0x1F18E, "blood type AB"},
	{0x1F191, 0x1F19A, "squared signs"},
	{0x1F1E6, 0x1F1FF, "regional indicators"},
	{0x1F201, 0x1F202, "squared katakana"},
	{0x1F21A, 0x1F21A, "squared CJK no"},
	{0x1F22F, 0x1F22F, "squared CJK reserved"},
	{0x1F232, 0x1F23A, "squared CJK ideographs"},
	{0x1F250, 0x1F251, "circled ideographs"},
	{0x1F300, 0x1F5FF, "miscellaneous symbols and pictographs"},
	{0x1F600, 0x1F64F, "emoticons"},
	{0x1F680, 0x1F6FF, "transport and map symbols"},
	{0x1F7E0, 0x1F7EB, "geometric shapes extended"},
	{0x1F90C, 0x1F93A, "supplemental symbols"},
	{0x1F93C, 0x1F945, "sport symbols"},
	{0x1F947, 0x1F9FF, "supplemental symbols and pictographs"},
	{0x1FA70, 0x1FAFF, "symbols and pictographs extended-A"},
}

// Blocks returns the compiled-in table, for listing and documentation.
func Blocks() []Block {
	out := make([]Block, len(blocks))
	copy(out, blocks[:])
	return out
}
