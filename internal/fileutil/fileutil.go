// Package fileutil holds file permission modes shared by the writers.
package fileutil

import "os"

// ReadableByAll is the file permission mode for generated modules, which are
// read by bundlers and type checkers running as other users.
const ReadableByAll os.FileMode = 0o644
