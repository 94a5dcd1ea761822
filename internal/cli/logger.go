package cli

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// newLogger returns the command logger. Verbose enables debug output and
// quiet silences everything; otherwise only warnings and errors are shown.
func newLogger(out io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Warn
	switch {
	case quiet:
		level = hclog.Off
	case verbose:
		level = hclog.Debug
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "shade",
		Output: out,
		Level:  level,
	})
}
