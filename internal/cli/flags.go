package cli

import "github.com/footprint-tools/fanout/internal/dispatchers"

var RootFlags = []dispatchers.FlagDescriptor{
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
		Names:       []string{"--as"},
		ValueHint:   "<player>",
		Description: "Run as a roster player, with its grants as permissions",
	},
	{
		Names:       []string{"--completions"},
		ValueHint:   "<shell>",
		Description: "Print the completion script for bash, zsh or fish",
	},
	{
		Names:       []string{"--interactive", "-i"},
		Description: "Open the interactive console",
	},
}
