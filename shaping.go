package libunicode

import (
	"errors"

	"github.com/go-text/typesetting/language"
)

// ErrNoScriptTag is returned when a Script value carries no ISO 15924 tag
// and therefore cannot be handed to the shaper.
var ErrNoScriptTag = errors.New("libunicode: script has no ISO 15924 tag")

// Shaping converts the script to its go-text/typesetting representation,
// for filling the Script field of a shaping.Input covering one run.
// ScriptInvalid returns ErrNoScriptTag; Common, Inherited and Unknown
// convert to their ISO 15924 placeholder tags (Zyyy, Zinh, Zzzz) and are
// normally resolved to a concrete script by run segmentation before
// shaping. Out-of-range values convert like ScriptUnknown, as Tag reports
// Zzzz for them.
func (s Script) Shaping() (language.Script, error) {
	tag := s.Tag()
	if tag == "" {
		return 0, ErrNoScriptTag
	}
	return language.ParseScript(tag)
}

// ShapingScript returns the go-text/typesetting script for the run,
// falling back to the shaper's Unknown script when the run carries no
// concrete script.
func (r Run) ShapingScript() language.Script {
	if sc, err := r.Script.Shaping(); err == nil {
		return sc
	}
	sc, _ := ScriptUnknown.Shaping()
	return sc
}
