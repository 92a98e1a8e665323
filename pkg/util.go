package pkg

import (
	"io"
	"os"
	"unsafe"

	"go.uber.org/multierr"
)

// BytesToString converts a byte slice to a string without copying.
// The caller must not mutate buf afterwards.
func BytesToString(buf []byte) string {
	return *(*string)(unsafe.Pointer(&buf))
}

// PathExists returns whether the given file or directory exists
func PathExists(path string, isDir bool) (bool, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if (isDir && stat.IsDir()) || (!isDir && !stat.IsDir()) {
		return true, nil
	}
	return false, err
}

type combinedWriter struct {
	writers []io.Writer
}

// NewCombinedWriter is used to combine multiple writers into one,
// e.g. write logs output to stdout and a rotated log file.
func NewCombinedWriter(writers ...io.Writer) io.Writer {
	return &combinedWriter{
		writers: writers,
	}
}

func (w *combinedWriter) Write(p []byte) (n int, err error) {
	for _, writer := range w.writers {
		written, werr := writer.Write(p)
		if werr != nil {
			err = multierr.Combine(err, werr)
			continue
		}
		n += written
	}
	return n, err
}
