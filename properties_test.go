package libunicode

import "testing"

func TestEmojiProperties(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want Property
	}{
		{"latin letter", 'A', 0},
		{"digit", '3', PropertyEmoji},
		{"copyright", 0x00A9, PropertyEmoji | PropertyExtendedPictographic},
		{"grinning face", 0x1F600,
			PropertyEmoji | PropertyEmojiPresentation | PropertyExtendedPictographic},
		{"victory hand", 0x270C,
			PropertyEmoji | PropertyEmojiModifierBase | PropertyExtendedPictographic},
		{"raised fist", 0x270A,
			PropertyEmoji | PropertyEmojiPresentation | PropertyEmojiModifierBase | PropertyExtendedPictographic},
		{"skin tone modifier", 0x1F3FB,
			PropertyEmoji | PropertyEmojiPresentation | PropertyEmojiModifier},
		{"red heart", 0x2764, PropertyEmoji | PropertyExtendedPictographic},
		{"reserved pictographic", 0x1FC00, PropertyExtendedPictographic},
		{"surrogate", 0xD800, 0},
		{"beyond max rune", 0x110000, 0},
		{"negative rune", -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, p := range []Property{
				PropertyEmoji, PropertyEmojiPresentation, PropertyEmojiModifier,
				PropertyEmojiModifierBase, PropertyExtendedPictographic,
			} {
				want := tt.want&p != 0
				if got := HasProperty(tt.r, p); got != want {
					t.Errorf("HasProperty(%#U, %#x) = %v, want %v", tt.r, p, got, want)
				}
			}
		})
	}
}

func TestPropertyPredicates(t *testing.T) {
	if !IsEmoji(0x1F600) || IsEmoji('A') {
		t.Error("IsEmoji misclassifies")
	}
	if !IsEmojiPresentation(0x1F600) || IsEmojiPresentation(0x2764) {
		t.Error("IsEmojiPresentation misclassifies")
	}
	if !IsEmojiModifier(0x1F3FF) || IsEmojiModifier(0x1F600) {
		t.Error("IsEmojiModifier misclassifies")
	}
	if !IsEmojiModifierBase(0x1F469) || IsEmojiModifierBase(0x1F3FB) {
		t.Error("IsEmojiModifierBase misclassifies")
	}
	if !IsExtendedPictographic(0x2388) || IsExtendedPictographic('A') {
		t.Error("IsExtendedPictographic misclassifies")
	}
}

func TestHasPropertyMultipleBits(t *testing.T) {
	both := PropertyEmoji | PropertyEmojiPresentation
	if !HasProperty(0x1F600, both) {
		t.Error("grinning face should carry Emoji and Emoji_Presentation")
	}
	if HasProperty(0x2764, both) {
		t.Error("red heart lacks Emoji_Presentation, conjunction must fail")
	}
}

func TestUnicodeVersion(t *testing.T) {
	scripts, emoji := UnicodeVersion()
	if scripts == "" || emoji == "" {
		t.Errorf("UnicodeVersion() = (%q, %q), want non-empty versions", scripts, emoji)
	}
}
