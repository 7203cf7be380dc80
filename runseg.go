package libunicode

// Run is a maximal contiguous range of the input sharing one script and
// one presentation style. Start and End are codepoint indices into the
// segmented buffer, with Start < End for every emitted run. The zero Run
// reads ScriptInvalid and PresentationText.
type Run struct {
	Start        int
	End          int
	Script       Script
	Presentation PresentationStyle
}

// RunSegmenter intersects the script and emoji boundary streams over one
// buffer into a single sequence of runs. Successive runs are contiguous,
// cover the buffer exactly once, and are maximal: no two adjacent runs
// share the same (script, presentation) pair.
//
// Emoji runs keep the script observed at their first codepoint, so a
// cluster glued by the emoji segmenter is never split by a script change.
//
// A RunSegmenter must not be shared between goroutines; independent
// instances over the same buffer are fine.
type RunSegmenter struct {
	buffer []rune
	script ScriptSegmenter
	emoji  EmojiSegmenter

	lastSplit int
	scriptEnd int
	emojiEnd  int
	curScript Script
	curStyle  PresentationStyle
}

// NewRunSegmenter returns a segmenter over buffer. The buffer is borrowed
// and must not be mutated while the segmenter is in use.
func NewRunSegmenter(buffer []rune) *RunSegmenter {
	return &RunSegmenter{
		buffer: buffer,
		script: ScriptSegmenter{buffer: buffer},
		emoji:  EmojiSegmenter{buffer: buffer},
	}
}

// Consume yields the next run, or ok=false when the buffer is exhausted.
// Exhaustion is sticky: once Consume has reported false it keeps doing so.
func (r *RunSegmenter) Consume() (run Run, ok bool) {
	if r.lastSplit >= len(r.buffer) {
		return Run{}, false
	}
	run = r.nextCandidate()
	// Coalesce adjacent candidates with identical properties; reachable
	// only when the emoji absorption rule has defeated a script boundary.
	for r.lastSplit < len(r.buffer) {
		saved := *r
		next := r.nextCandidate()
		if next.Script != run.Script || next.Presentation != run.Presentation {
			*r = saved
			break
		}
		run.End = next.End
	}
	return run, true
}

// nextCandidate emits the next raw range: it ends at the nearer of the two
// sub-segmenter boundaries, except that a script boundary strictly inside
// an emoji run is deferred until the emoji run ends.
func (r *RunSegmenter) nextCandidate() Run {
	for r.scriptEnd <= r.lastSplit {
		end, script, ok := r.script.Consume()
		if !ok {
			break
		}
		r.scriptEnd, r.curScript = end, script
	}
	for r.emojiEnd <= r.lastSplit {
		end, style, ok := r.emoji.Consume()
		if !ok {
			break
		}
		r.emojiEnd, r.curStyle = end, style
	}

	end := min(r.scriptEnd, r.emojiEnd)
	if r.curStyle == PresentationEmoji && r.scriptEnd < r.emojiEnd {
		end = r.emojiEnd
	}

	run := Run{
		Start:        r.lastSplit,
		End:          end,
		Script:       r.curScript,
		Presentation: r.curStyle,
	}
	r.lastSplit = end
	return run
}
