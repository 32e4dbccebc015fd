// Package cliutil provides output helpers for the oacontract commands.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// fallback receives write failures; tests replace it.
var fallback io.Writer = os.Stderr

// Writef writes formatted output to w. A failed write is reported on stderr
// instead of being returned, since command output has no caller to handle it.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(fallback, "write error: %v\n", err)
	}
}
