package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/footprint-tools/stockline/internal/actions"
	"github.com/footprint-tools/stockline/internal/app"
	"github.com/footprint-tools/stockline/internal/cli"
	"github.com/footprint-tools/stockline/internal/console"
	"github.com/footprint-tools/stockline/internal/dispatchers"
	"github.com/footprint-tools/stockline/internal/usage"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin *os.File, stdout, stderr io.Writer) int {
	flags := dispatchers.NewParsedFlags(extractFlags(args))
	commands := extractCommands(args)

	root := cli.BuildTree(func(_ []string, f *dispatchers.ParsedFlags) error {
		return startSession(f, stdin, stdout)
	})

	node, rest, err := cli.Resolve(root, commands)
	if err == nil {
		err = cli.CheckFlags(node, flags)
	}
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return exitCode(err)
	}

	switch {
	case flags.Has("--help") || flags.Has("-h") || node.Action == nil:
		fmt.Fprint(stdout, cli.Help(node))
		return 0
	case node == root && (flags.Has("--version") || flags.Has("-v")):
		err = actions.ShowVersion(nil, flags)
	default:
		err = node.Action(rest, flags)
	}

	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return exitCode(err)
	}
	return 0
}

func startSession(flags *dispatchers.ParsedFlags, stdin *os.File, stdout io.Writer) error {
	opts, err := app.DefaultOptions()
	if err != nil {
		return err
	}
	applyFlags(&opts, flags)

	tui := flags.Has("--tui")
	transcript := &console.Transcript{}
	opts.Output = stdout
	if tui {
		opts.Output = transcript
	}

	application, err := app.New(opts)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close(application) }()

	settings := opts.Settings
	if tui {
		var t *console.TUI
		d, err := app.NewDispatcher(application, app.DispatchOptions{
			Strict: settings.StrictArguments,
			Quit:   func() { t.Stop() },
		})
		if err != nil {
			return err
		}
		t = console.NewTUI(transcript, settings.Prompt,
			console.WithCommands(d.Registry()),
			console.WithTUIStyler(application.Styler),
			console.WithTUILogger(application.Logger),
		)
		return t.Run(d)
	}

	session := console.NewSession(console.NewLineReader(stdin), application.Output,
		console.WithPrompt(settings.Prompt),
		console.WithEcho(settings.EchoInput),
		console.WithStyler(application.Styler),
		console.WithLogger(application.Logger),
	)
	d, err := app.NewDispatcher(application, app.DispatchOptions{
		Strict: settings.StrictArguments,
		Quit:   session.Stop,
	})
	if err != nil {
		return err
	}
	return session.Run(d)
}

// applyFlags lets command-line flags override config and environment.
func applyFlags(opts *app.Options, flags *dispatchers.ParsedFlags) {
	if flags.Has("--no-color") {
		opts.StyleEnabled = false
	}
	if flags.Has("--echo") {
		opts.Settings.EchoInput = true
	}
	if flags.Has("--strict") {
		opts.Settings.StrictArguments = true
	}
	if level := flags.String("--log-level", ""); level != "" {
		opts.Settings.LogLevel = level
		opts.Settings.EnableLog = true
	}
}

func exitCode(err error) int {
	var ue *usage.Error
	if errors.As(err, &ue) {
		return ue.GetExitCode()
	}
	return 1
}

func extractFlags(args []string) []string {
	flags := []string{}
	for _, a := range args {
		if len(a) > 0 && a[0] == '-' {
			flags = append(flags, a)
		}
	}
	return flags
}

func extractCommands(args []string) []string {
	cmds := []string{}
	for _, a := range args {
		if len(a) > 0 && a[0] != '-' {
			cmds = append(cmds, a)
		}
	}
	return cmds
}
