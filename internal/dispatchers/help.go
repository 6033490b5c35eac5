package dispatchers

import (
	"fmt"
	"io"
	"strings"

	"github.com/footprint-tools/stockline/internal/domain"
)

// FormatCommand renders one listing line: NAME |arg1, arg2| - summary.
func FormatCommand(cmd CommandSpec) string {
	return formatCommand(cmd, nil)
}

func formatCommand(cmd CommandSpec, s domain.Styler) string {
	names := make([]string, len(cmd.Args))
	for i, a := range cmd.Args {
		names[i] = a.Name
	}

	name, summary := cmd.Name, cmd.Summary
	if s != nil {
		name, summary = s.Info(name), s.Muted(summary)
	}
	return fmt.Sprintf("%s |%s| - %s", name, strings.Join(names, ", "), summary)
}

// helpLines renders the listing for every registered command in
// registration order. s may be nil for plain text.
func helpLines(r *Registry, s domain.Styler) []string {
	cmds := r.Commands()
	lines := make([]string, len(cmds))
	for i, cmd := range cmds {
		lines[i] = formatCommand(cmd, s)
	}
	return lines
}

// WriteHelp writes the styled listing to w.
func (d *Dispatcher) WriteHelp(w io.Writer) {
	for _, line := range helpLines(d.registry, d.styler) {
		fmt.Fprintln(w, line)
	}
}
