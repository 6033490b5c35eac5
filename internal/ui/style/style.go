// Package style provides semantic terminal styling using lipgloss.
//
// This package is the only place where lipgloss styles for command output
// are built. Styling is semantic (Success, Warning, Error, ...) rather than
// visual. A disabled Styler returns its input unchanged, with no ANSI codes.
package style

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/footprint-tools/stockline/internal/domain"
)

// Palette holds one color per semantic role.
// Values are ANSI color numbers (0-255) or "bold".
type Palette struct {
	Success string
	Warning string
	Error   string
	Info    string
	Muted   string
	Header  string
}

// Dark uses bright colors for dark terminal backgrounds.
var Dark = Palette{
	Success: "10",
	Warning: "11",
	Error:   "9",
	Info:    "14",
	Muted:   "245",
	Header:  "bold",
}

// Light uses dark saturated colors for light backgrounds.
var Light = Palette{
	Success: "28",
	Warning: "130",
	Error:   "124",
	Info:    "27",
	Muted:   "242",
	Header:  "bold",
}

// DetectPalette picks Dark or Light from the terminal background.
func DetectPalette() Palette {
	if termenv.HasDarkBackground() {
		return Dark
	}
	return Light
}

// WithOverrides applies the color_* config keys on top of base.
// Empty values keep the base color.
func WithOverrides(base Palette, cfg map[string]string) Palette {
	p := base
	overrides := map[string]*string{
		"color_success": &p.Success,
		"color_warning": &p.Warning,
		"color_error":   &p.Error,
		"color_info":    &p.Info,
		"color_muted":   &p.Muted,
	}
	for key, target := range overrides {
		if v := strings.TrimSpace(cfg[key]); v != "" {
			*target = v
		}
	}
	return p
}

// Disabled reports whether the environment asks for plain output
// (NO_COLOR or STOCKLINE_NO_COLOR set to any non-empty value).
func Disabled() bool {
	return os.Getenv("NO_COLOR") != "" || os.Getenv("STOCKLINE_NO_COLOR") != ""
}

// Styler implements domain.Styler with lipgloss.
type Styler struct {
	enabled bool

	success lipgloss.Style
	warning lipgloss.Style
	err     lipgloss.Style
	info    lipgloss.Style
	muted   lipgloss.Style
	header  lipgloss.Style
}

// New creates a Styler. Styling stays off when enable is false or the
// environment disables color.
func New(enable bool, p Palette) *Styler {
	s := &Styler{enabled: enable && !Disabled()}
	if !s.enabled {
		return s
	}

	// ANSI256 covers both the basic 16 colors and the extended palette.
	lipgloss.SetColorProfile(termenv.ANSI256)

	s.success = makeStyle(p.Success)
	s.warning = makeStyle(p.Warning)
	s.err = makeStyle(p.Error)
	s.info = makeStyle(p.Info)
	s.muted = makeStyle(p.Muted)
	s.header = makeStyle(p.Header)
	return s
}

func makeStyle(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

func (s *Styler) render(st lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return st.Render(text)
}

func (s *Styler) Enabled() bool              { return s.enabled }
func (s *Styler) Success(text string) string { return s.render(s.success, text) }
func (s *Styler) Warning(text string) string { return s.render(s.warning, text) }
func (s *Styler) Error(text string) string   { return s.render(s.err, text) }
func (s *Styler) Info(text string) string    { return s.render(s.info, text) }
func (s *Styler) Muted(text string) string   { return s.render(s.muted, text) }
func (s *Styler) Header(text string) string  { return s.render(s.header, text) }

// NopStyler returns text unchanged.
type NopStyler struct{}

func (NopStyler) Enabled() bool              { return false }
func (NopStyler) Success(text string) string { return text }
func (NopStyler) Warning(text string) string { return text }
func (NopStyler) Error(text string) string   { return text }
func (NopStyler) Info(text string) string    { return text }
func (NopStyler) Muted(text string) string   { return text }
func (NopStyler) Header(text string) string  { return text }

var _ domain.Styler = (*Styler)(nil)
var _ domain.Styler = NopStyler{}
