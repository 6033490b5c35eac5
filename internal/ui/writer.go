package ui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/footprint-tools/stockline/internal/domain"
)

// Writer implements domain.OutputWriter on top of any io.Writer.
type Writer struct {
	out io.Writer
}

// NewWriter creates a Writer for stdout.
func NewWriter() *Writer {
	return &Writer{out: os.Stdout}
}

// NewWriterTo creates a Writer for out.
func NewWriterTo(out io.Writer) *Writer {
	return &Writer{out: out}
}

func (w *Writer) Write(p []byte) (n int, err error) {
	return w.out.Write(p)
}

func (w *Writer) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(w.out, format, args...)
}

func (w *Writer) Println(args ...any) (int, error) {
	return fmt.Fprintln(w.out, args...)
}

// IsTerminal reports whether the writer is an interactive terminal.
// Buffers and pipes are not.
func (w *Writer) IsTerminal() bool {
	return IsTerminal(w.out)
}

// IsTerminal reports whether v is an *os.File attached to a terminal.
func IsTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

var _ domain.OutputWriter = (*Writer)(nil)
