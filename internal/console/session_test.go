package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/stockline/internal/dispatchers"
	"github.com/footprint-tools/stockline/internal/ui"
	"github.com/footprint-tools/stockline/internal/usage"
)

func echoController() dispatchers.Controller {
	return dispatchers.ControllerFunc(func() []dispatchers.CommandSpec {
		return []dispatchers.CommandSpec{
			dispatchers.Command("ECHO", "Echoes a positive number",
				func(args dispatchers.Args) (any, error) { return args.Int(0), nil },
				dispatchers.IntArg("n").Positive().Describe("a number"),
			),
		}
	})
}

// newLineSession wires a session and a dispatcher to one output buffer, the
// way the application does.
func newLineSession(t *testing.T, input string, opts ...Option) (*Session, *dispatchers.Dispatcher, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	s := NewSession(NewScannerReader(strings.NewReader(input)), ui.NewWriterTo(&out), opts...)
	d := dispatchers.New(
		dispatchers.WithOutput(&out),
		dispatchers.WithQuitHook(s.Stop),
	)
	require.NoError(t, d.Register(echoController()))
	return s, d, &out
}

func lines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

func TestSession_Run(t *testing.T) {
	s, d, out := newLineSession(t, "ECHO 5\nFOO\nECHO -1\nECHO 7\r\n")

	require.NoError(t, s.Run(d))
	require.Equal(t, []string{
		"? || - Prints this list",
		"Q || - To quit",
		"ECHO |n| - Echoes a positive number",
		"5",
		usage.UnknownCommandMessage,
		"n: must be greater than 0",
		"ERROR",
		"7",
	}, lines(out))
}

func TestSession_QuitStopsReading(t *testing.T) {
	s, d, out := newLineSession(t, "ECHO 1\nq\nECHO 2\n")

	require.NoError(t, s.Run(d))

	got := lines(out)
	require.Equal(t, []string{"1", dispatchers.QuitSentinel}, got[len(got)-2:])
	require.NotContains(t, got, "2")
	require.NotContains(t, got, "OK")
}

func TestSession_Echo(t *testing.T) {
	s, d, out := newLineSession(t, "ECHO 3\n", WithEcho(true))

	require.NoError(t, s.Run(d))

	got := lines(out)
	require.Equal(t, []string{"ECHO 3", "3"}, got[len(got)-2:])
}

func TestSession_EmptyInput(t *testing.T) {
	s, d, out := newLineSession(t, "")

	require.NoError(t, s.Run(d))
	require.Len(t, lines(out), 3, "only the listing is printed")
}

type failingReader struct {
	closed int
}

func (r *failingReader) ReadLine(string) (string, error) { return "", errors.New("tty gone") }
func (r *failingReader) Close() error                    { r.closed++; return nil }

func TestSession_ReadError(t *testing.T) {
	in := &failingReader{}
	s := NewSession(in, ui.NewWriterTo(io.Discard))
	d := dispatchers.New(dispatchers.WithOutput(io.Discard), dispatchers.WithQuitHook(s.Stop))

	require.ErrorContains(t, s.Run(d), "tty gone")
	require.Equal(t, 1, in.closed)
}

func TestSession_StopClosesOnce(t *testing.T) {
	in := &failingReader{}
	s := NewSession(in, ui.NewWriterTo(io.Discard))

	s.Stop()
	s.Stop()
	require.Equal(t, 1, in.closed)
}

func TestScannerReader(t *testing.T) {
	r := NewScannerReader(strings.NewReader("a\r\n\nb"))

	for _, want := range []string{"a", "", "b"} {
		got, err := r.ReadLine("> ")
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := r.ReadLine("> ")
	require.ErrorIs(t, err, io.EOF)
}

type tagStyler struct{}

func (tagStyler) Enabled() bool              { return true }
func (tagStyler) Success(text string) string { return "<ok>" + text }
func (tagStyler) Warning(text string) string { return "<warn>" + text }
func (tagStyler) Error(text string) string   { return "<err>" + text }
func (tagStyler) Info(text string) string    { return "<info>" + text }
func (tagStyler) Muted(text string) string   { return "<muted>" + text }
func (tagStyler) Header(text string) string  { return "<h>" + text }

func TestFormatResult(t *testing.T) {
	tests := []struct {
		result string
		want   string
	}{
		{"OK", "<ok>OK"},
		{"ERROR", "<err>ERROR"},
		{"7000", "7000"},
		{usage.UnknownCommandMessage, usage.UnknownCommandMessage},
	}

	for _, tt := range tests {
		t.Run(tt.result, func(t *testing.T) {
			require.Equal(t, tt.want, FormatResult(tagStyler{}, tt.result))
		})
	}
}
