package ucd

import (
	"testing"
	"unicode"
)

func TestBuilderRoundTrip(t *testing.T) {
	b := NewBuilder(0)
	b.Set(0x41, 7)
	b.SetRange(0x100, 0x1FF, 3)
	// Straddle a page boundary.
	b.SetRange(0x2FE, 0x302, 9)
	tbl := b.Build()

	tests := []struct {
		r    rune
		want uint8
	}{
		{0x40, 0},
		{0x41, 7},
		{0x42, 0},
		{0xFF, 0},
		{0x100, 3},
		{0x1FF, 3},
		{0x200, 0},
		{0x2FD, 0},
		{0x2FE, 9},
		{0x2FF, 9},
		{0x300, 9},
		{0x302, 9},
		{0x303, 0},
		{unicode.MaxRune, 0},
	}
	for _, tt := range tests {
		if got := tbl.Lookup(tt.r); got != tt.want {
			t.Errorf("Lookup(%#U) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestBuilderDefaultValue(t *testing.T) {
	b := NewBuilder(42)
	b.Set(0x41, 7)
	tbl := b.Build()

	if got := tbl.Lookup(0x41); got != 7 {
		t.Errorf("Lookup(0x41) = %d, want 7", got)
	}
	if got := tbl.Lookup(0x10FFF0); got != 42 {
		t.Errorf("Lookup(unassigned) = %d, want the default 42", got)
	}
	if got := tbl.Lookup(-1); got != 42 {
		t.Errorf("Lookup(-1) = %d, want the default 42", got)
	}
	if got := tbl.Lookup(unicode.MaxRune + 1); got != 42 {
		t.Errorf("Lookup(MaxRune+1) = %d, want the default 42", got)
	}
}

func TestBuilderDeduplicatesPages(t *testing.T) {
	b := NewBuilder(0)
	// Two identical non-empty pages plus the shared empty page.
	b.SetRange(0x100, 0x1FF, 5)
	b.SetRange(0x900, 0x9FF, 5)
	tbl := b.Build()

	if got := tbl.PageCount(); got != 2 {
		t.Errorf("PageCount() = %d, want 2 (shared empty page + one data page)", got)
	}
}

func TestBuilderDeterministic(t *testing.T) {
	build := func() *Table {
		b := NewBuilder(0)
		for _, rr := range emojiPresentationRanges {
			b.OrRange(rr.Lo, rr.Hi, EmojiPresentation)
		}
		return b.Build()
	}
	a, c := build(), build()
	if a.index != c.index {
		t.Fatal("two builds produced different first-stage indexes")
	}
	if string(a.pages) != string(c.pages) {
		t.Fatal("two builds produced different page data")
	}
}

func TestEmojiTableStaysSmall(t *testing.T) {
	// The point of the two-stage layout: the emoji table (pages plus
	// first-stage index) must stay under 200KiB.
	pages := emojiTable.PageCount()
	if size := pages*pageSize + numPages*2; size > 200<<10 {
		t.Errorf("emoji table is %d bytes (%d pages), want under 200KiB", size, pages)
	}
}

func TestPropertiesSpotChecks(t *testing.T) {
	tests := []struct {
		r    rune
		want uint8
	}{
		{'A', 0},
		{'#', Emoji},
		{0x1F600, Emoji | EmojiPresentation | ExtendedPictographic},
		{0x270C, Emoji | EmojiModifierBase | ExtendedPictographic},
		{0x1F3FB, Emoji | EmojiPresentation | EmojiModifier},
		{0x2764, Emoji | ExtendedPictographic},
		{0x2388, ExtendedPictographic},
		{0xD800, 0},
	}
	for _, tt := range tests {
		if got := Properties(tt.r); got != tt.want {
			t.Errorf("Properties(%#U) = %#x, want %#x", tt.r, got, tt.want)
		}
	}
}

func TestRangesAreOrderedAndDisjoint(t *testing.T) {
	for name, ranges := range map[string][]RuneRange{
		"Emoji":                emojiRanges,
		"EmojiPresentation":    emojiPresentationRanges,
		"EmojiModifier":        emojiModifierRanges,
		"EmojiModifierBase":    emojiModifierBaseRanges,
		"ExtendedPictographic": extendedPictographicRanges,
	} {
		last := rune(-1)
		for i, rr := range ranges {
			if rr.Lo > rr.Hi {
				t.Errorf("%s[%d]: inverted range %#x..%#x", name, i, rr.Lo, rr.Hi)
			}
			if rr.Lo <= last {
				t.Errorf("%s[%d]: range %#x..%#x overlaps or is out of order", name, i, rr.Lo, rr.Hi)
			}
			last = rr.Hi
		}
	}
}

func TestPresentationImpliesEmoji(t *testing.T) {
	// Emoji_Presentation and Emoji_Modifier_Base are subsets of Emoji.
	for r := rune(0); r <= unicode.MaxRune; r++ {
		p := Properties(r)
		if p&(EmojiPresentation|EmojiModifierBase|EmojiModifier) != 0 && p&Emoji == 0 {
			t.Fatalf("%#U carries sequence properties (%#x) without Emoji", r, p)
		}
	}
}
