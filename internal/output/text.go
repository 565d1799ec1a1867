// internal/output/text.go
package output

import (
	"bufio"
	"io"
	"iter"
	"strconv"
)

// WriteText prints the primes on one line separated by single spaces.
func WriteText(w io.Writer, primes iter.Seq[uint]) error {
	return writeDelimited(w, primes, TextSep)
}

// WriteCSV writes the primes comma-separated with no trailing comma and
// exactly one trailing newline.
func WriteCSV(w io.Writer, primes iter.Seq[uint]) error {
	return writeDelimited(w, primes, CSVSep)
}

func writeDelimited(w io.Writer, primes iter.Seq[uint], sep byte) error {
	bw := bufio.NewWriter(w)
	var num [20]byte
	first := true
	for p := range primes {
		if !first {
			if err := bw.WriteByte(sep); err != nil {
				return err
			}
		}
		first = false
		if _, err := bw.Write(strconv.AppendUint(num[:0], uint64(p), 10)); err != nil {
			return err
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	return bw.Flush()
}
