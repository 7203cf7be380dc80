package libunicode

// Segment partitions buffer into runs in one call. It is a convenience
// wrapper around RunSegmenter for callers that do not need lazy iteration.
// The result covers buffer exactly once; a nil or empty buffer yields nil.
func Segment(buffer []rune) []Run {
	if len(buffer) == 0 {
		return nil
	}
	runs := make([]Run, 0, 4)
	seg := NewRunSegmenter(buffer)
	for {
		run, ok := seg.Consume()
		if !ok {
			return runs
		}
		runs = append(runs, run)
	}
}

// SegmentString segments the codepoints of text. Run offsets index
// codepoints, not bytes; use []rune(text) to address the segmented
// content.
func SegmentString(text string) []Run {
	if text == "" {
		return nil
	}
	return Segment([]rune(text))
}
