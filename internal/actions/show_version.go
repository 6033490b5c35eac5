package actions

import "github.com/footprint-tools/stockline/internal/dispatchers"

// ShowVersion prints the build version and target platform.
func ShowVersion(args []string, flags *dispatchers.ParsedFlags) error {
	return showVersion(args, flags, defaultDeps())
}

func showVersion(_ []string, _ *dispatchers.ParsedFlags, deps actionDependencies) error {
	_, err := deps.Printf("stockline %s (%s)\n", deps.Version(), deps.Platform())
	return err
}
