package libunicode

import "testing"

var benchText = []rune(
	"The quick brown fox 😀 jumps over the lazy dog. " +
		"نص حكيم له سر قاطع وذو شأن عظيم. " +
		"百家姓ऋषियों🌱🌲🌳🌴百家姓🌱🌲 " +
		"👩‍👩‍👧‍👦 Flags: 🇺🇸🇩🇪 #️⃣")

func BenchmarkRunSegmenter(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		seg := NewRunSegmenter(benchText)
		for {
			if _, ok := seg.Consume(); !ok {
				break
			}
		}
	}
}

func BenchmarkScriptSegmenter(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		seg := NewScriptSegmenter(benchText)
		for {
			if _, _, ok := seg.Consume(); !ok {
				break
			}
		}
	}
}

func BenchmarkEmojiSegmenter(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		seg := NewEmojiSegmenter(benchText)
		for {
			if _, _, ok := seg.Consume(); !ok {
				break
			}
		}
	}
}

func BenchmarkScriptOf(b *testing.B) {
	for i := 0; i < b.N; i++ {
		for _, r := range benchText {
			_ = ScriptOf(r)
		}
	}
}
