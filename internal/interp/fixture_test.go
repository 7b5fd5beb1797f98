package interp

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// Closures, atoms, and functions print with their heap address; mask it so
// transcripts stay stable across runs.
var addrPattern = regexp.MustCompile(`0x[0-9a-f]+`)

// TestFixtureScripts replays the scripts under testdata/fixtures through a
// fresh interpreter, one form per line, and snapshots the full transcript:
// anything the program printed followed by the printed result of each form.
func TestFixtureScripts(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "fixtures", "*.lisp"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no fixture scripts found")
	}
	sort.Strings(files)

	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			source, err := os.ReadFile(file)
			if err != nil {
				t.Fatal(err)
			}

			var buf bytes.Buffer
			ip := New(&buf)

			var transcript strings.Builder
			for _, line := range strings.Split(string(source), "\n") {
				trimmed := strings.TrimSpace(line)
				if trimmed == "" || strings.HasPrefix(trimmed, ";") {
					continue
				}

				buf.Reset()
				result := ip.Rep(trimmed)

				transcript.WriteString(";=> " + trimmed + "\n")
				if out := buf.String(); out != "" {
					transcript.WriteString(out)
				}
				transcript.WriteString(result + "\n")
			}

			snaps.MatchSnapshot(t, addrPattern.ReplaceAllString(transcript.String(), "0x?"))
		})
	}
}
