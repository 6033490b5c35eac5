// Package cli describes the stockline command line: the outer commands and
// flags accepted before an interactive session starts.
package cli

import (
	"github.com/footprint-tools/stockline/internal/dispatchers"
	"github.com/footprint-tools/stockline/internal/usage"
)

// Action runs a resolved command with its positional arguments and flags.
type Action func(args []string, flags *dispatchers.ParsedFlags) error

type FlagDescriptor struct {
	Names       []string
	ValueHint   string
	Description string
}

type ArgDescriptor struct {
	Name        string
	Description string
	Required    bool
}

// Node is one command of the outer command tree.
type Node struct {
	Name     string
	Parent   *Node
	Summary  string
	Usage    string
	Flags    []FlagDescriptor
	Args     []ArgDescriptor
	Action   Action
	Children map[string]*Node
	order    []string
}

func NewNode(name string, parent *Node, summary, usageLine string, flags []FlagDescriptor, args []ArgDescriptor, action Action) *Node {
	n := &Node{
		Name:     name,
		Parent:   parent,
		Summary:  summary,
		Usage:    usageLine,
		Flags:    flags,
		Args:     args,
		Action:   action,
		Children: make(map[string]*Node),
	}
	if parent != nil {
		parent.Children[name] = n
		parent.order = append(parent.order, name)
	}
	return n
}

// Path returns the command path from the root, e.g. "stockline config set".
func (n *Node) Path() string {
	if n.Parent == nil {
		return n.Name
	}
	return n.Parent.Path() + " " + n.Name
}

// Subcommands returns the children in declaration order.
func (n *Node) Subcommands() []*Node {
	out := make([]*Node, 0, len(n.order))
	for _, name := range n.order {
		out = append(out, n.Children[name])
	}
	return out
}

// Resolve walks commands down from root. The deepest matching node is
// returned with the remaining tokens as its arguments.
func Resolve(root *Node, commands []string) (*Node, []string, error) {
	node := root
	i := 0
	for ; i < len(commands); i++ {
		child, ok := node.Children[commands[i]]
		if !ok {
			break
		}
		node = child
	}
	rest := commands[i:]

	if len(rest) > 0 && len(node.Children) > 0 {
		return nil, nil, usage.UnknownSubcommand(node.Path(), rest[0])
	}
	if len(rest) == 0 {
		rest = nil
	}
	return node, rest, nil
}

// CheckFlags rejects flags that neither node nor the root declares.
func CheckFlags(node *Node, flags *dispatchers.ParsedFlags) error {
	root := node
	for root.Parent != nil {
		root = root.Parent
	}

	var valid []string
	for _, f := range root.Flags {
		valid = append(valid, f.Names...)
	}
	if node != root {
		for _, f := range node.Flags {
			valid = append(valid, f.Names...)
		}
	}
	if unknown := flags.Unknown(valid); len(unknown) > 0 {
		return usage.InvalidFlag(unknown[0])
	}
	return nil
}
