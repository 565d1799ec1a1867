package cmdutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"syscall"
	"testing"

	"eratos/internal/sieve"
)

type bufCloser struct {
	bytes.Buffer
	closed bool
}

func (b *bufCloser) Close() error { b.closed = true; return nil }

func TestRunSieveWritesCSV(t *testing.T) {
	var bc bufCloser
	n, err := RunSieve(context.Background(), 10, 0, "csv", func() (io.WriteCloser, error) { return &bc, nil })
	if err != nil || n != 4 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	if bc.String() != "2,3,5,7\n" || !bc.closed {
		t.Fatalf("out=%q closed=%v", bc.String(), bc.closed)
	}
}

func TestRunSieveAllocationFailureOpensNothing(t *testing.T) {
	opened := false
	_, err := RunSieve(context.Background(), 1<<20, 16, "csv", func() (io.WriteCloser, error) {
		opened = true
		return &bufCloser{}, nil
	})
	if !errors.Is(err, sieve.ErrAllocation) || opened {
		t.Fatalf("err=%v opened=%v", err, opened)
	}
}

func TestRunSieveCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := RunSieve(ctx, 10, 0, "text", func() (io.WriteCloser, error) { return &bufCloser{}, nil })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v", err)
	}
}

func TestWarnfQuietAndPlain(t *testing.T) {
	var b bytes.Buffer
	Warnf(&b, true, "hidden %d", 1)
	if b.Len() != 0 {
		t.Fatalf("quiet wrote %q", b.String())
	}
	Warnf(&b, false, "name %s should end with .csv", "x.txt")
	if got := b.String(); got != "WARN: name x.txt should end with .csv\n" {
		t.Fatalf("got %q", got)
	}
	b.Reset()
	Errorf(&b, "boom: %v", errors.New("x"))
	if !strings.HasPrefix(b.String(), "error: boom: x") {
		t.Fatalf("got %q", b.String())
	}
}

// failAfter accepts n bytes and then fails every write.
type failAfter struct {
	n       int
	written bytes.Buffer
	aborted bool
	closed  bool
}

func (f *failAfter) Write(p []byte) (int, error) {
	if f.written.Len()+len(p) > f.n {
		return 0, errors.New("disk full")
	}
	return f.written.Write(p)
}
func (f *failAfter) Close() error { f.closed = true; return nil }
func (f *failAfter) Abort() error { f.aborted = true; return nil }

func TestRunSieveAbortsOnWriteFailure(t *testing.T) {
	// 1e6 primes overflow the formatter's buffer, so writes reach the sink
	sink := &failAfter{n: 4096}
	_, err := RunSieve(context.Background(), 1_000_000, 0, "csv", func() (io.WriteCloser, error) { return sink, nil })
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("err=%v", err)
	}
	if !sink.aborted {
		t.Fatal("failed destination was not aborted")
	}
}

func TestRunSieveClosesPlainWriterOnFailure(t *testing.T) {
	var bc bufCloser
	_, err := RunSieve(context.Background(), 10, 0, "nope", func() (io.WriteCloser, error) { return &bc, nil })
	if err == nil || !bc.closed {
		t.Fatalf("err=%v closed=%v", err, bc.closed)
	}
}

func TestExitCode(t *testing.T) {
	var errBuf bytes.Buffer
	if c := ExitCode(nil, &errBuf); c != 0 {
		t.Fatalf("nil: %d", c)
	}
	if c := ExitCode(fmt.Errorf("write: %w", syscall.EPIPE), &errBuf); c != 0 || errBuf.Len() != 0 {
		t.Fatalf("EPIPE: code=%d stderr=%q", c, errBuf.String())
	}
	if c := ExitCode(errors.New("disk full"), &errBuf); c != 3 || errBuf.String() != "error: disk full\n" {
		t.Fatalf("other: code=%d stderr=%q", c, errBuf.String())
	}
}

func TestHeaderfPlainOffTerminal(t *testing.T) {
	var b bytes.Buffer
	Headerf(&b, false, "Prime numbers up to %d:", 10)
	if b.String() != "Prime numbers up to 10:\n" {
		t.Fatalf("got %q", b.String())
	}
	b.Reset()
	Headerf(&b, true, "hidden")
	if b.Len() != 0 {
		t.Fatalf("quiet wrote %q", b.String())
	}
}
