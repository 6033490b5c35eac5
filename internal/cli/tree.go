package cli

import (
	"github.com/footprint-tools/stockline/internal/actions"
	"github.com/footprint-tools/stockline/internal/actions/config"
)

// BuildTree returns the command line tree. run starts the interactive
// session and is the root's action.
func BuildTree(run Action) *Node {
	root := NewNode(
		"stockline",
		nil,
		"Line-oriented inventory ledger",
		"stockline [flags]",
		RootFlags,
		nil,
		run,
	)

	NewNode(
		"version",
		root,
		"Show stockline version",
		"stockline version",
		nil,
		nil,
		actions.ShowVersion,
	)

	cfg := NewNode(
		"config",
		root,
		"Manage configuration",
		"stockline config <command>",
		nil,
		nil,
		nil,
	)

	NewNode(
		"get",
		cfg,
		"Get a config value",
		"stockline config get <key>",
		nil,
		ConfigKeyArg,
		config.Get,
	)

	NewNode(
		"set",
		cfg,
		"Set a config value",
		"stockline config set <key> <value>",
		nil,
		ConfigKeyValueArgs,
		config.Set,
	)

	NewNode(
		"unset",
		cfg,
		"Remove a config value",
		"stockline config unset <key> | --all",
		ConfigUnsetFlags,
		ConfigKeyArg,
		config.Unset,
	)

	NewNode(
		"list",
		cfg,
		"List all config values",
		"stockline config list [--json]",
		ConfigListFlags,
		nil,
		config.List,
	)

	return root
}
