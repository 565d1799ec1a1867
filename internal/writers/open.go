package writers

import (
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// Aborter is implemented by destinations that can discard what was written.
type Aborter interface {
	Abort() error
}

// fileSink closes every closer in order when Close() is called. Abort closes
// and removes the file at path.
type fileSink struct {
	io.Writer
	closers []io.Closer
	path    string
}

func (m *fileSink) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

func (m *fileSink) Abort() error {
	_ = m.Close()
	if err := os.Remove(m.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// Create opens path for writing. "-" writes to stdout; a ".gz" suffix
// gzips the stream. Regular files implement Aborter.
func Create(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{stdout}, nil
	}
	fh, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		gw := gzip.NewWriter(fh)
		return &fileSink{Writer: gw, closers: []io.Closer{gw, fh}, path: path}, nil
	}
	return &fileSink{Writer: fh, closers: []io.Closer{fh}, path: path}, nil
}

// HasCSVName reports whether path looks like a CSV file (optionally gzipped).
func HasCSVName(path string) bool {
	p := strings.TrimSuffix(strings.ToLower(path), ".gz")
	return strings.HasSuffix(p, ".csv")
}
