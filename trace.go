package inlinedhash

import (
	"fmt"
	"os"
)

// traceEnabled mirrors _examples/cockroachdb-swiss's map.go debug
// constant: flip it to true locally and recompile to get a line-by-line
// narration of probe decisions. It is deliberately not wired to a flag or
// environment variable, so the library carries no runtime configuration
// surface.
const traceEnabled = false

func trace(format string, args ...any) {
	if traceEnabled {
		fmt.Fprintf(os.Stderr, "inlinedhash: "+format+"\n", args...)
	}
}
