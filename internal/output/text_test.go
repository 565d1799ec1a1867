package output

import (
	"bytes"
	"errors"
	"iter"
	"slices"
	"testing"
)

func seq(v ...uint) iter.Seq[uint] { return slices.Values(v) }

func TestWriteCSV_LimitTen(t *testing.T) {
	var b bytes.Buffer
	if err := WriteCSV(&b, seq(2, 3, 5, 7)); err != nil {
		t.Fatal(err)
	}
	if got := b.String(); got != "2,3,5,7\n" {
		t.Fatalf("got %q", got)
	}
}

func TestWriteText(t *testing.T) {
	var b bytes.Buffer
	if err := WriteText(&b, seq(2, 3, 5)); err != nil {
		t.Fatal(err)
	}
	if got := b.String(); got != "2 3 5\n" {
		t.Fatalf("got %q", got)
	}
}

func TestSingleAndEmpty(t *testing.T) {
	var b bytes.Buffer
	_ = WriteCSV(&b, seq(2))
	if b.String() != "2\n" {
		t.Fatalf("single: %q", b.String())
	}
	b.Reset()
	_ = WriteText(&b, seq())
	if b.String() != "\n" {
		t.Fatalf("empty: %q", b.String())
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteErrorPropagates(t *testing.T) {
	if err := WriteCSV(failWriter{}, seq(2, 3)); err == nil {
		t.Fatal("expected write error")
	}
}

func TestFormats_Stable(t *testing.T) {
	if FormatText != "text" || FormatCSV != "csv" {
		t.Fatalf("output format constants changed")
	}
}
