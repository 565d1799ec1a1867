package cli

import (
	"flag"
	"io"
)

// NewFlagSet returns a silent FlagSet with ContinueOnError. Callers point
// its output somewhere before calling Usage.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	return fs
}
