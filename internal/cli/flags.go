package cli

var (
	RootFlags = []FlagDescriptor{
		{
			Names:       []string{"--help", "-h"},
			Description: "Show help",
		},
		{
			Names:       []string{"--version", "-v"},
			Description: "Show version",
		},
		{
			Names:       []string{"--no-color"},
			Description: "Disable colored output",
		},
		{
			Names:       []string{"--tui"},
			Description: "Run the session in a full-screen terminal UI",
		},
		{
			Names:       []string{"--echo"},
			Description: "Echo every input line before its result",
		},
		{
			Names:       []string{"--strict"},
			Description: "Reject tokens past a command's declared arguments",
		},
		{
			Names:       []string{"--log-level"},
			ValueHint:   "=<level>",
			Description: "Log level for this session (debug, info, warn, error)",
		},
	}

	ConfigUnsetFlags = []FlagDescriptor{
		{
			Names:       []string{"--all"},
			Description: "Delete all the config key=value pairs",
		},
	}

	ConfigListFlags = []FlagDescriptor{
		{
			Names:       []string{"--json"},
			Description: "Output as JSON",
		},
	}
)

var (
	ConfigKeyArg = []ArgDescriptor{
		{
			Name:        "key",
			Description: "Configuration key",
			Required:    true,
		},
	}

	ConfigKeyValueArgs = []ArgDescriptor{
		{
			Name:        "key",
			Description: "Configuration key",
			Required:    true,
		},
		{
			Name:        "value",
			Description: "Value to assign",
			Required:    true,
		},
	}
)
