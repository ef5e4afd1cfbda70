package radial

import (
	"fmt"
	"os"
)

// globalDebug enables stderr tracing of session and drag state transitions.
// Mutation happens only on the GUI thread.
var globalDebug bool

// SetDebugMode enables or disables debug tracing. When enabled, session
// starts, commits, and drag transitions are logged to stderr.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

func debugLogf(format string, args ...any) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[radial] "+format+"\n", args...)
}
