// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"iter"
	"sort"

	"eratos/internal/output"
)

// PrimeWriter serializes an ascending prime sequence to w.
type PrimeWriter func(w io.Writer, primes iter.Seq[uint]) error

// Writer registry (format → handler). Last registration wins.
var primeWriters = map[string]PrimeWriter{}

func Register(format string, fn PrimeWriter) { primeWriters[format] = fn }

func init() {
	Register(output.FormatText, output.WriteText)
	Register(output.FormatCSV, output.WriteCSV)
}

// Formats lists registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(primeWriters))
	for k := range primeWriters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Write dispatches to the writer registered for format.
func Write(format string, w io.Writer, primes iter.Seq[uint]) error {
	fn, ok := primeWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, primes)
}
