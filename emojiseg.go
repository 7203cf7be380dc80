package libunicode

// EmojiSegmenter produces maximal presentation-homogeneous run boundaries
// over a borrowed buffer of codepoints: each run renders entirely as
// monochrome text or entirely as colored emoji.
//
// The segmenter scans one presentation unit at a time (a single codepoint,
// or a multi-codepoint cluster glued together by a variation selector, skin
// tone modifier, keycap, flag pair, tag sequence or ZWJ join) and merges
// consecutive units of equal presentation into one run.
//
// An EmojiSegmenter must not be shared between goroutines; independent
// instances over the same buffer are fine.
type EmojiSegmenter struct {
	buffer []rune
	offset int
}

// NewEmojiSegmenter returns a segmenter over buffer. The buffer is borrowed
// and must not be mutated while the segmenter is in use.
func NewEmojiSegmenter(buffer []rune) *EmojiSegmenter {
	return &EmojiSegmenter{buffer: buffer}
}

// Consume returns the end offset and presentation style of the next run, or
// ok=false when the buffer is exhausted. Runs are emitted left to right and
// cover the buffer exactly once.
func (s *EmojiSegmenter) Consume() (end int, style PresentationStyle, ok bool) {
	n := len(s.buffer)
	if s.offset >= n {
		return n, PresentationText, false
	}

	tokEnd, emoji := s.scan(s.offset)
	s.offset = tokEnd
	for s.offset < n {
		nextEnd, nextEmoji := s.scan(s.offset)
		if nextEmoji != emoji {
			break
		}
		s.offset = nextEnd
	}

	style = PresentationText
	if emoji {
		style = PresentationEmoji
	}
	return s.offset, style, true
}

// cat classifies the codepoint at index i, reporting CategoryInvalid past
// either end of the buffer so lookahead needs no bounds checks.
func (s *EmojiSegmenter) cat(i int) EmojiSegmentationCategory {
	if i < 0 || i >= len(s.buffer) {
		return CategoryInvalid
	}
	return EmojiSegmentationCategoryOf(s.buffer[i])
}

// scan returns the end of the next presentation unit starting at i and
// whether it renders as emoji. Alternatives are matched longest-first; on
// equal length a text-presentation sequence wins, mirroring the rule order
// of the scanner grammar.
func (s *EmojiSegmenter) scan(i int) (end int, emoji bool) {
	textLen := 0
	if isScannerEmoji(s.cat(i)) && s.cat(i+1) == CategoryVS15 {
		textLen = 2
	}
	emojiLen := s.emojiUnitLen(i)
	switch {
	case textLen >= emojiLen && textLen > 0:
		return i + textLen, false
	case emojiLen > 0:
		return i + emojiLen, true
	default:
		return i + 1, false
	}
}

// emojiUnitLen returns the length of the longest emoji-presentation unit
// starting at i, or 0 if the codepoint at i starts none.
func (s *EmojiSegmenter) emojiUnitLen(i int) int {
	best := 0
	c := s.cat(i)

	switch c {
	case CategoryKeyCapBase:
		// KeyCapBase VS16? CombiningEnclosingKeyCap
		j := i + 1
		if s.cat(j) == CategoryVS16 {
			j++
		}
		if s.cat(j) == CategoryCombiningEnclosingKeyCap {
			best = max(best, j+1-i)
		}
	case CategoryRegionalIndicator:
		// Two regional indicators pair into a flag; a lone indicator
		// stays text.
		if s.cat(i+1) == CategoryRegionalIndicator {
			best = max(best, 2)
		}
	case CategoryTagBase:
		// TagBase TagSequence+ TagTerm (subdivision flags). The base,
		// U+1F3F4, is emoji-presentation-default on its own, so an
		// unterminated sequence still yields an emoji base.
		j := i + 1
		for s.cat(j) == CategoryTagSequence {
			j++
		}
		if j > i+1 && s.cat(j) == CategoryTagTerm {
			best = max(best, j+1-i)
		}
		best = max(best, 1)
	case CategoryEmojiEmojiPresentation, CategoryEmojiModifierBase:
		// Emoji-default codepoints and modifier bases are emoji on
		// their own.
		best = max(best, 1)
	}

	if isScannerEmoji(c) && s.cat(i+1) == CategoryCombiningEnclosingCircleBackslash {
		best = max(best, 2)
	}

	// Variation/modifier sequences, optionally extended by ZWJ joins.
	// A join element is an emoji-presentation sequence (base + VS16), a
	// modifier sequence (base + skin tone), or any bare emoji codepoint.
	if el := s.joinElementLen(i); el > 0 {
		if el > 1 {
			best = max(best, el)
		}
		j := i + el
		for s.cat(j) == CategoryZWJ {
			next := s.joinElementLen(j + 1)
			if next == 0 {
				// Trailing lone ZWJ: it belongs to the next
				// run.
				break
			}
			j += 1 + next
		}
		if j > i+el {
			best = max(best, j-i)
		}
	}

	return best
}

// joinElementLen returns the length of the ZWJ-joinable element at i:
// 2 for a VS16 presentation sequence or a modifier sequence, 1 for a bare
// emoji codepoint, 0 otherwise.
func (s *EmojiSegmenter) joinElementLen(i int) int {
	c := s.cat(i)
	if !isScannerEmoji(c) {
		return 0
	}
	if s.cat(i+1) == CategoryVS16 {
		return 2
	}
	if c == CategoryEmojiModifierBase && s.cat(i+1) == CategoryEmojiModifier {
		return 2
	}
	return 1
}

// isScannerEmoji reports whether the category counts as a plain emoji
// codepoint for sequence rules (the grammar's any_emoji class).
func isScannerEmoji(c EmojiSegmentationCategory) bool {
	switch c {
	case CategoryEmoji, CategoryEmojiTextPresentation,
		CategoryEmojiEmojiPresentation, CategoryEmojiModifierBase,
		CategoryEmojiVSBase:
		return true
	default:
		return false
	}
}

