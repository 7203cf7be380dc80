package libunicode

import "github.com/herrhotzenplotz/libunicode/internal/ucd"

// EmojiSegmentationCategory classifies a codepoint for the emoji
// presentation scanner. The numbering is part of the interop contract and
// must not change when the property tables are regenerated.
type EmojiSegmentationCategory int8

const (
	// CategoryInvalid marks codepoints that play no role in emoji
	// segmentation, including surrogates.
	CategoryInvalid EmojiSegmentationCategory = iota - 1

	CategoryEmoji
	CategoryEmojiTextPresentation
	CategoryEmojiEmojiPresentation
	CategoryEmojiModifierBase
	CategoryEmojiModifier
	CategoryEmojiVSBase
	CategoryRegionalIndicator
	CategoryKeyCapBase
	CategoryCombiningEnclosingKeyCap
	CategoryCombiningEnclosingCircleBackslash
	CategoryZWJ
	CategoryVS15
	CategoryVS16
	CategoryTagBase
	CategoryTagSequence
	CategoryTagTerm
)

var categoryNames = [...]string{
	CategoryEmoji:                             "Emoji",
	CategoryEmojiTextPresentation:             "EmojiTextPresentation",
	CategoryEmojiEmojiPresentation:            "EmojiEmojiPresentation",
	CategoryEmojiModifierBase:                 "EmojiModifierBase",
	CategoryEmojiModifier:                     "EmojiModifier",
	CategoryEmojiVSBase:                       "EmojiVSBase",
	CategoryRegionalIndicator:                 "RegionalIndicator",
	CategoryKeyCapBase:                        "KeyCapBase",
	CategoryCombiningEnclosingKeyCap:          "CombiningEnclosingKeyCap",
	CategoryCombiningEnclosingCircleBackslash: "CombiningEnclosingCircleBackslash",
	CategoryZWJ:                               "ZWJ",
	CategoryVS15:                              "VS15",
	CategoryVS16:                              "VS16",
	CategoryTagBase:                           "TagBase",
	CategoryTagSequence:                       "TagSequence",
	CategoryTagTerm:                           "TagTerm",
}

// String returns the stable name of the category.
func (c EmojiSegmentationCategory) String() string {
	if c >= CategoryEmoji && int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "Invalid"
}

// EmojiSegmentationCategoryOf classifies a codepoint for the emoji
// presentation scanner. Singleton codepoints (ZWJ, variation selectors,
// keycap and tag machinery) are classified first, then the emoji property
// bits decide between modifier, modifier base, emoji-default and
// text-default presentation. Codepoints outside [0, 0x10FFFF] classify as
// CategoryInvalid.
func EmojiSegmentationCategoryOf(r rune) EmojiSegmentationCategory {
	switch r {
	case 0x20E3:
		return CategoryCombiningEnclosingKeyCap
	case 0x20E0:
		return CategoryCombiningEnclosingCircleBackslash
	case 0x200D:
		return CategoryZWJ
	case 0xFE0E:
		return CategoryVS15
	case 0xFE0F:
		return CategoryVS16
	case 0x1F3F4:
		return CategoryTagBase
	case 0xE007F:
		return CategoryTagTerm
	}
	switch {
	case r >= 0xE0020 && r <= 0xE007E:
		return CategoryTagSequence
	case r >= 0x1F1E6 && r <= 0x1F1FF:
		return CategoryRegionalIndicator
	case r == '#' || r == '*' || (r >= '0' && r <= '9'):
		return CategoryKeyCapBase
	}
	props := emojiProps(r)
	switch {
	case props&ucd.EmojiModifier != 0:
		return CategoryEmojiModifier
	case props&ucd.EmojiModifierBase != 0:
		return CategoryEmojiModifierBase
	case props&ucd.EmojiPresentation != 0:
		return CategoryEmojiEmojiPresentation
	case props&ucd.Emoji != 0:
		return CategoryEmojiTextPresentation
	}
	return CategoryInvalid
}
