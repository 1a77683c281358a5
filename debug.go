package lantern

import (
	"fmt"
	"io"
	"os"
)

var (
	debugEnabled bool
	debugOutput  io.Writer = os.Stderr
)

// SetDebugMode turns per-frame diagnostics on or off.
func SetDebugMode(enabled bool) {
	debugEnabled = enabled
}

// SetDebugOutput redirects diagnostics. A nil writer restores stderr.
func SetDebugOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	debugOutput = w
}

// debugf prints a prefixed diagnostic line when debug mode is on.
func debugf(format string, args ...any) {
	if !debugEnabled {
		return
	}
	_, _ = fmt.Fprintf(debugOutput, "[lantern] "+format+"\n", args...)
}
