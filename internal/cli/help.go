package cli

import (
	"fmt"
	"strings"
)

// Help renders the usage text of node.
func Help(node *Node) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\nUsage:\n  %s\n", node.Summary, node.Usage)

	if subs := node.Subcommands(); len(subs) > 0 {
		b.WriteString("\nCommands:\n")
		width := 0
		for _, s := range subs {
			width = max(width, len(s.Name))
		}
		for _, s := range subs {
			fmt.Fprintf(&b, "  %-*s  %s\n", width, s.Name, s.Summary)
		}
	}

	if len(node.Args) > 0 {
		b.WriteString("\nArguments:\n")
		for _, a := range node.Args {
			fmt.Fprintf(&b, "  %-10s %s\n", a.Name, a.Description)
		}
	}

	if len(node.Flags) > 0 {
		b.WriteString("\nFlags:\n")
		for _, f := range node.Flags {
			fmt.Fprintf(&b, "  %-22s %s\n", strings.Join(f.Names, ", ")+f.ValueHint, f.Description)
		}
	}

	return b.String()
}
