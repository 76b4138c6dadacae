// Package csv writes the two-column classified word list, the primary
// deliverable of a classification run.
package csv

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"sync"

	"github.com/dhvani-labs/vartani/internal/model"
)

const defaultBufSize = 64 * 1024 // 64KB

// Header is the column header row of the report.
var Header = []string{"Unique Word", "Classification"}

// Output writes word results as CSV rows with buffered I/O.
type Output struct {
	mu   sync.Mutex
	f    *os.File
	buf  *bufio.Writer
	w    *csv.Writer
	path string
}

// New creates (truncating) the report file at path and writes the header row.
func New(path string) (*Output, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv output: create %s: %w", path, err)
	}

	buf := bufio.NewWriterSize(f, defaultBufSize)
	w := csv.NewWriter(buf)
	if err := w.Write(Header); err != nil {
		f.Close()
		return nil, fmt.Errorf("csv output: write header: %w", err)
	}

	return &Output{f: f, buf: buf, w: w, path: path}, nil
}

// Write appends one word row.
func (o *Output) Write(_ context.Context, result model.WordResult) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.w.Write([]string{result.Word, string(result.Label)}); err != nil {
		return fmt.Errorf("csv output: write %s: %w", o.path, err)
	}
	return nil
}

// Close flushes buffered rows and closes the file.
func (o *Output) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.w.Flush()
	if err := o.w.Error(); err != nil {
		o.f.Close()
		return fmt.Errorf("csv output: flush %s: %w", o.path, err)
	}
	if err := o.buf.Flush(); err != nil {
		o.f.Close()
		return fmt.Errorf("csv output: flush %s: %w", o.path, err)
	}
	return o.f.Close()
}
