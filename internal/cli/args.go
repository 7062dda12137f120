package cli

import "github.com/footprint-tools/fanout/internal/dispatchers"

var (
	PlayerArg = dispatchers.ArgSpec{
		Name:        "player",
		Description: "Roster player name, a {..} pattern or *",
		Required:    true,
	}

	OptionalPageArg = []dispatchers.ArgSpec{
		{
			Name:        "page",
			Description: "Help page number",
			Required:    false,
		},
	}

	MessageArgs = []dispatchers.ArgSpec{
		PlayerArg,
		{
			Name:        "message",
			Description: "Message text, \\n starts a new line",
			Required:    true,
		},
	}

	TitleArgs = []dispatchers.ArgSpec{
		PlayerArg,
		{
			Name:        "title",
			Description: "Title text, :: or \\n separates the subtitle",
			Required:    true,
		},
	}

	InboxArgs = []dispatchers.ArgSpec{
		PlayerArg,
		{
			Name:        "count",
			Description: "Number of deliveries to show",
			Required:    false,
		},
	}

	JoinArgs = []dispatchers.ArgSpec{
		{
			Name:        "name",
			Description: "Player name (up to 16 letters, digits or _)",
			Required:    true,
		},
	}

	LeaveArgs = []dispatchers.ArgSpec{PlayerArg}

	GrantArgs = []dispatchers.ArgSpec{
		PlayerArg,
		{
			Name:        "permission",
			Description: "Permission string, e.g. fanout.msg",
			Required:    true,
		},
	}

	ExecArgs = []dispatchers.ArgSpec{
		{
			Name:        "command",
			Description: "Command line to expand and run",
			Required:    true,
		},
	}

	ExecPlayerArgs = []dispatchers.ArgSpec{
		{
			Name:        "player",
			Description: "Roster player the lines run as",
			Required:    true,
		},
		{
			Name:        "command",
			Description: "Command line to expand and run",
			Required:    true,
		},
	}

	OptionalCountArg = []dispatchers.ArgSpec{
		{
			Name:        "count",
			Description: "Number of entries to show",
			Required:    false,
		},
	}

	OptionalLogsArg = []dispatchers.ArgSpec{
		{
			Name:        "count",
			Description: "Number of lines to show, or clear",
			Required:    false,
		},
	}

	ConfigArgs = []dispatchers.ArgSpec{
		{
			Name:        "operation",
			Description: "get, set, unset or list",
			Required:    true,
		},
		{
			Name:        "key",
			Description: "Configuration key",
			Required:    false,
		},
		{
			Name:        "value",
			Description: "Value to assign",
			Required:    false,
		},
	}
)
