package cmdutil

import (
	"context"
	"io"

	"eratos/internal/sieve"
	"eratos/internal/writers"
)

// RunSieve sieves up to limit and writes the primes in format to the writer
// returned by open. open is called only after marking succeeds, and a failed
// write discards the destination when it is a writers.Aborter, so neither
// failure leaves partial output behind. It returns the prime count.
func RunSieve(
	ctx context.Context,
	limit uint,
	maxBytes uint64,
	format string,
	open func() (io.WriteCloser, error),
) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	total := 0
	err := sieve.Run(limit, maxBytes, func(s *sieve.Sieve) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		w, err := open()
		if err != nil {
			return err
		}
		total = s.Count()
		err = writers.Write(format, w, s.Primes())
		if err == nil {
			err = w.Close()
		}
		if err != nil {
			discard(w)
		}
		return err
	})
	return total, err
}

func discard(w io.WriteCloser) {
	if a, ok := w.(writers.Aborter); ok {
		_ = a.Abort()
		return
	}
	_ = w.Close()
}
