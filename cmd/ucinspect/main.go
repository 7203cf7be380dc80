// Command ucinspect prints the run segmentation and codepoint properties
// of the given text. Text is taken from the command line arguments, or
// from stdin when none are given.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/text/unicode/runenames"

	"github.com/herrhotzenplotz/libunicode"
)

func main() {
	var (
		codepoints = flag.Bool("codepoints", false, "print one line per codepoint")
		versions   = flag.Bool("version", false, "print the Unicode table versions and exit")
	)
	flag.Parse()

	if *versions {
		scripts, emoji := libunicode.UnicodeVersion()
		fmt.Printf("scripts: Unicode %s (standard library)\nemoji:   Unicode %s\n", scripts, emoji)
		return
	}

	var text string
	if flag.NArg() > 0 {
		text = strings.Join(flag.Args(), " ")
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("Failed to read stdin: %v", err)
		}
		text = string(data)
	}

	runes := []rune(text)
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	for _, run := range libunicode.Segment(runes) {
		fmt.Fprintf(w, "[%3d..%3d) %-16s %-5s %q\n",
			run.Start, run.End, run.Script, run.Presentation,
			string(runes[run.Start:run.End]))
	}

	if *codepoints {
		fmt.Fprintln(w)
		for i, r := range runes {
			fmt.Fprintf(w, "%4d U+%04X %-16s %-26s %s\n",
				i, r,
				libunicode.ScriptOf(r),
				libunicode.EmojiSegmentationCategoryOf(r),
				runenames.Name(r))
		}
	}
}
