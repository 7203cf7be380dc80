// Package libunicode segments Unicode text into runs for shaping.
//
// A run is a maximal contiguous range of codepoints that share the same
// writing script and the same presentation style (monochrome text or
// colored emoji). Run segmentation is the first pass of a text shaping
// pipeline: each run can be handed as-is to a font selection and shaping
// stage with uniform properties.
//
// The package provides three cooperating segmenters over an immutable
// buffer of codepoints:
//
//   - ScriptSegmenter splits on writing-script changes, resolving the
//     special Common and Inherited scripts to the surrounding run.
//   - EmojiSegmenter splits on presentation changes, keeping variation
//     selector, skin tone modifier, keycap, flag, tag and ZWJ sequences
//     glued to their base.
//   - RunSegmenter intersects both boundary streams into a single run
//     sequence.
//
// To segment text into runs:
//
//	seg := libunicode.NewRunSegmenter([]rune("AB😀CD"))
//	for {
//		run, ok := seg.Consume()
//		if !ok {
//			break
//		}
//		// run.Start, run.End, run.Script, run.Presentation
//	}
//
// Or use the one-shot helpers:
//
//	runs := libunicode.SegmentString("AB😀CD")
//
// Emoji presentation follows Unicode Technical Report #51:
// https://www.unicode.org/reports/tr51/
//
// Key concepts:
//   - Emoji_Presentation: characters that default to emoji display
//   - Variation selectors: U+FE0E (text) and U+FE0F (emoji)
//   - ZWJ sequences: multiple emoji joined by U+200D
//
// Codepoint properties are served by compiled lookup tables; see
// UnicodeVersion for the table provenance.
package libunicode
