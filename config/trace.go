package config

import (
	"os"

	"github.com/fatih/color"
)

// Verbosity is the trace level for the current invocation, set by Resolve.
// Tracing never changes control flow.
var Verbosity int

var traceColor = color.New(color.FgHiBlack)

// Tracef writes a diagnostic line to stderr when the invocation's verbosity
// is at least level.
func Tracef(level int, format string, args ...any) {
	if Verbosity < level {
		return
	}
	traceColor.Fprintf(os.Stderr, "kpx: "+format+"\n", args...)
}
