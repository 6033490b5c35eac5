package console

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/footprint-tools/stockline/internal/ui"
)

// LineReader yields input lines. ReadLine returns io.EOF when input ends.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// NewLineReader picks line editing for terminals and plain scanning otherwise.
func NewLineReader(in *os.File) LineReader {
	if ui.IsTerminal(in) && liner.TerminalSupported() {
		return newTerminalReader()
	}
	return NewScannerReader(in)
}

// terminalReader edits lines with liner. Entered lines are not kept in history.
type terminalReader struct {
	state *liner.State
}

func newTerminalReader() *terminalReader {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	return &terminalReader{state: state}
}

func (r *terminalReader) ReadLine(prompt string) (string, error) {
	line, err := r.state.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", io.EOF
	}
	return line, err
}

func (r *terminalReader) Close() error {
	return r.state.Close()
}

// ScannerReader reads newline-separated input without prompting.
type ScannerReader struct {
	scanner *bufio.Scanner
}

func NewScannerReader(in io.Reader) *ScannerReader {
	return &ScannerReader{scanner: bufio.NewScanner(in)}
}

func (r *ScannerReader) ReadLine(string) (string, error) {
	if r.scanner.Scan() {
		return strings.TrimSuffix(r.scanner.Text(), "\r"), nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (r *ScannerReader) Close() error {
	return nil
}
