package libunicode

import (
	"sort"
	"unicode"

	"golang.org/x/text/unicode/rangetable"

	"github.com/herrhotzenplotz/libunicode/internal/ucd"
)

// UnicodeVersion reports the Unicode version of the compiled property
// tables: script data follows the standard library (unicode.Version), emoji
// data is compiled from emoji-data.txt of the named UCD release.
func UnicodeVersion() (scripts, emoji string) {
	return unicode.Version, ucd.Version
}

// Property is a bitmask of the boolean codepoint properties relevant to
// emoji segmentation.
type Property uint8

const (
	// PropertyEmoji is the UCD Emoji property.
	PropertyEmoji = Property(ucd.Emoji)
	// PropertyEmojiPresentation is the UCD Emoji_Presentation property.
	PropertyEmojiPresentation = Property(ucd.EmojiPresentation)
	// PropertyEmojiModifier is the UCD Emoji_Modifier property.
	PropertyEmojiModifier = Property(ucd.EmojiModifier)
	// PropertyEmojiModifierBase is the UCD Emoji_Modifier_Base property.
	PropertyEmojiModifierBase = Property(ucd.EmojiModifierBase)
	// PropertyExtendedPictographic is the UCD Extended_Pictographic
	// property.
	PropertyExtendedPictographic = Property(ucd.ExtendedPictographic)
)

// scriptTable maps every codepoint to a Script identifier. It is compiled
// once at startup from the standard library's unicode.Scripts range tables,
// visiting scripts in name order so the layout is deterministic.
var scriptTable = buildScriptTable()

func buildScriptTable() *ucd.Table {
	names := make([]string, 0, len(unicode.Scripts))
	for name := range unicode.Scripts {
		names = append(names, name)
	}
	sort.Strings(names)

	b := ucd.NewBuilder(uint8(ScriptUnknown))
	for _, name := range names {
		script := ParseScript(name)
		if script == ScriptUnknown {
			// A script added to the standard library after this
			// enumeration was closed; its codepoints stay Unknown.
			continue
		}
		v := uint8(script)
		rangetable.Visit(unicode.Scripts[name], func(r rune) {
			b.Set(r, v)
		})
	}
	return b.Build()
}

// ScriptOf returns the Script of a codepoint. Unassigned codepoints and
// surrogates report ScriptUnknown, as do runes outside [0, 0x10FFFF].
func ScriptOf(r rune) Script {
	return Script(scriptTable.Lookup(r))
}

// HasProperty reports whether r carries every property bit in p. Runes
// outside [0, 0x10FFFF] carry no properties.
func HasProperty(r rune, p Property) bool {
	return Property(emojiProps(r))&p == p
}

func emojiProps(r rune) uint8 {
	return ucd.Properties(r)
}

// IsEmoji reports the UCD Emoji property.
func IsEmoji(r rune) bool {
	return emojiProps(r)&ucd.Emoji != 0
}

// IsEmojiPresentation reports the UCD Emoji_Presentation property: the
// codepoint defaults to colored emoji display without a variation
// selector.
func IsEmojiPresentation(r rune) bool {
	return emojiProps(r)&ucd.EmojiPresentation != 0
}

// IsEmojiModifier reports the UCD Emoji_Modifier property (the Fitzpatrick
// skin tone modifiers U+1F3FB..U+1F3FF).
func IsEmojiModifier(r rune) bool {
	return emojiProps(r)&ucd.EmojiModifier != 0
}

// IsEmojiModifierBase reports the UCD Emoji_Modifier_Base property: a skin
// tone modifier can attach to this codepoint.
func IsEmojiModifierBase(r rune) bool {
	return emojiProps(r)&ucd.EmojiModifierBase != 0
}

// IsExtendedPictographic reports the UCD Extended_Pictographic property.
func IsExtendedPictographic(r rune) bool {
	return emojiProps(r)&ucd.ExtendedPictographic != 0
}
