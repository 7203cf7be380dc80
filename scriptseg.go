package libunicode

// ScriptSegmenter produces maximal script-homogeneous run boundaries over a
// borrowed buffer of codepoints.
//
// Codepoints of the Common and Inherited scripts never start or end a run:
// they are absorbed into the surrounding run, and the run's script is
// resolved to the first concrete script encountered. A run that contains
// only Common/Inherited codepoints resolves to ScriptCommon.
//
// A ScriptSegmenter must not be shared between goroutines; independent
// instances over the same buffer are fine.
type ScriptSegmenter struct {
	buffer []rune
	offset int
}

// NewScriptSegmenter returns a segmenter over buffer. The buffer is
// borrowed and must not be mutated while the segmenter is in use.
func NewScriptSegmenter(buffer []rune) *ScriptSegmenter {
	return &ScriptSegmenter{buffer: buffer}
}

// Consume returns the end offset and resolved script of the next run, or
// ok=false when the buffer is exhausted. Runs are emitted left to right and
// cover the buffer exactly once.
func (s *ScriptSegmenter) Consume() (end int, script Script, ok bool) {
	n := len(s.buffer)
	if s.offset >= n {
		return n, ScriptInvalid, false
	}

	resolved := ScriptCommon
	i := s.offset
	for ; i < n; i++ {
		sc := ScriptOf(s.buffer[i])
		if sc == ScriptCommon || sc == ScriptInherited {
			continue
		}
		if resolved == ScriptCommon {
			// Upgrade: the run's script applies retroactively to
			// the Common/Inherited codepoints already absorbed.
			resolved = sc
			continue
		}
		if sc != resolved {
			break
		}
	}
	s.offset = i
	return i, resolved, true
}
