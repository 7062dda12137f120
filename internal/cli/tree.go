package cli

import (
	"errors"

	"github.com/footprint-tools/fanout/internal/actions"
	configactions "github.com/footprint-tools/fanout/internal/actions/config"
	"github.com/footprint-tools/fanout/internal/actions/exec"
	"github.com/footprint-tools/fanout/internal/actions/history"
	"github.com/footprint-tools/fanout/internal/actions/logs"
	"github.com/footprint-tools/fanout/internal/actions/messaging"
	"github.com/footprint-tools/fanout/internal/actions/roster"
	"github.com/footprint-tools/fanout/internal/config"
	"github.com/footprint-tools/fanout/internal/dispatchers"
	"github.com/footprint-tools/fanout/internal/domain"
)

const (
	RootName       = "fanout"
	RootPermission = "fanout"
)

// BuildManager registers every subcommand of the fanout root against the
// application's store and config. Registration problems are returned
// together and are fatal.
func BuildManager(app *domain.Application, settings config.Settings) (*dispatchers.Manager, error) {
	m, err := dispatchers.NewManager(dispatchers.RootSpec{
		Name:                    RootName,
		DisplayName:             settings.DisplayName,
		Permission:              RootPermission,
		Summary:                 "Expand one command line into many",
		MaxEnumerations:         settings.MaxEnumerations,
		MaxWildcardEnumerations: settings.MaxWildcardEnumerations,
	})
	if err != nil {
		return nil, err
	}

	usageLine := func(rest string) string {
		return "/" + m.DisplayName() + " " + rest
	}

	messages := messaging.DefaultDeps(app.Store)
	players := roster.DefaultDeps(app.Store)
	audit := history.DefaultDeps(app.Store)
	execDeps := exec.DefaultDeps(m, app.Store)

	specs := []dispatchers.CommandSpec{
		{
			Name:     "help",
			Summary:  "Opens this help menu",
			Usage:    usageLine("help [page]"),
			Category: dispatchers.CategoryUtility,
			Args:     OptionalPageArg,
			Action: dispatchers.HelpAction(m, dispatchers.HelpOptions{
				PerPage: settings.HelpPerPage,
				Width:   settings.HelpWidth,
			}),
		},
		{
			Name:     "version",
			Summary:  "Show fo version",
			Usage:    usageLine("version"),
			Category: dispatchers.CategoryUtility,
			Action:   actions.ShowVersion,
		},
		{
			Name:       "msg",
			Summary:    "Send a message to a player",
			Usage:      usageLine("msg <player> <message...>"),
			Permission: m.Permission("msg"),
			Category:   dispatchers.CategoryMessaging,
			Capabilities: dispatchers.Capabilities{
				TemplateExpandable: true,
				WildcardExpandable: true,
			},
			Args:     MessageArgs,
			Action:   messaging.Message(messages),
			Wildcard: roster.OnlinePlayers(players),
			Complete: roster.CompletePlayers(players, true),
		},
		{
			Name:       "title",
			Summary:    "Show a title to a player",
			Usage:      usageLine("title <player> <title>[::subtitle]"),
			Permission: m.Permission("title"),
			Category:   dispatchers.CategoryMessaging,
			Capabilities: dispatchers.Capabilities{
				TemplateExpandable: true,
				WildcardExpandable: true,
			},
			Args:     TitleArgs,
			Action:   messaging.Title(messages),
			Wildcard: roster.OnlinePlayers(players),
			Complete: roster.CompletePlayers(players, true),
		},
		{
			Name:       "inbox",
			Summary:    "Show what a player has been sent",
			Usage:      usageLine("inbox <player> [count]"),
			Permission: m.Permission("inbox"),
			Category:   dispatchers.CategoryMessaging,
			Capabilities: dispatchers.Capabilities{
				TemplateExpandable: true,
			},
			Args:     InboxArgs,
			Action:   messaging.Inbox(messages),
			Complete: roster.CompletePlayers(players, false),
		},
		{
			Name:       "join",
			Summary:    "Add a player or bring them online",
			Usage:      usageLine("join <name>"),
			Permission: m.Permission("join"),
			Category:   dispatchers.CategoryRoster,
			Capabilities: dispatchers.Capabilities{
				TemplateExpandable: true,
			},
			Args:   JoinArgs,
			Action: roster.Join(players),
		},
		{
			Name:       "leave",
			Summary:    "Take a player offline",
			Usage:      usageLine("leave <player>"),
			Permission: m.Permission("leave"),
			Category:   dispatchers.CategoryRoster,
			Capabilities: dispatchers.Capabilities{
				TemplateExpandable: true,
				WildcardExpandable: true,
			},
			Args:     LeaveArgs,
			Action:   roster.Leave(players),
			Wildcard: roster.OnlinePlayers(players),
			Complete: roster.CompletePlayers(players, true),
		},
		{
			Name:       "players",
			Summary:    "List the roster",
			Usage:      usageLine("players"),
			Permission: m.Permission("players"),
			Category:   dispatchers.CategoryRoster,
			Action:     roster.List(players),
		},
		{
			Name:       "grant",
			Summary:    "Give a player a permission",
			Usage:      usageLine("grant <player> <permission>"),
			Permission: m.Permission("grant"),
			Category:   dispatchers.CategoryPermissions,
			Capabilities: dispatchers.Capabilities{
				TemplateExpandable: true,
				WildcardExpandable: true,
			},
			Args:     GrantArgs,
			Action:   roster.Grant(players),
			Wildcard: roster.AllPlayers(players, m.Permissions),
			Complete: roster.CompleteGrant(players, m.Permissions),
		},
		{
			Name:       "revoke",
			Summary:    "Take a permission from a player",
			Usage:      usageLine("revoke <player> <permission>"),
			Permission: m.Permission("revoke"),
			Category:   dispatchers.CategoryPermissions,
			Capabilities: dispatchers.Capabilities{
				TemplateExpandable: true,
				WildcardExpandable: true,
			},
			Args:     GrantArgs,
			Action:   roster.Revoke(players),
			Wildcard: roster.AllPlayers(players, m.Permissions),
			Complete: roster.CompleteGrant(players, m.Permissions),
		},
		{
			Name:       "exec",
			Summary:    "Expand a whole command line and run every result",
			Usage:      usageLine("exec <command> [args...]"),
			Permission: m.Permission("exec"),
			Category:   dispatchers.CategoryUtility,
			Args:       ExecArgs,
			Action:     exec.Exec(execDeps),
		},
		{
			Name:       "execc",
			Summary:    "Like exec, but every result runs as the console",
			Usage:      usageLine("execc <command> [args...]"),
			Permission: m.Permission("execc"),
			Category:   dispatchers.CategoryUtility,
			Args:       ExecArgs,
			Action:     exec.ExecConsole(execDeps),
		},
		{
			Name:       "execp",
			Summary:    "Like exec, but every result runs as a player",
			Usage:      usageLine("execp <player> <command> [args...]"),
			Permission: m.Permission("execp"),
			Category:   dispatchers.CategoryUtility,
			Args:       ExecPlayerArgs,
			Action:     exec.ExecPlayer(execDeps),
			Complete:   roster.CompletePlayers(players, false),
		},
		{
			Name:       "history",
			Summary:    "Show recently dispatched lines",
			Usage:      usageLine("history [count]"),
			Permission: m.Permission("history"),
			Category:   dispatchers.CategoryUtility,
			Args:       OptionalCountArg,
			Action:     history.Show(audit),
		},
		{
			Name:       "logs",
			Summary:    "Show or clear the fo log file",
			Usage:      usageLine("logs [count|clear]"),
			Permission: m.Permission("logs"),
			Category:   dispatchers.CategoryUtility,
			Args:       OptionalLogsArg,
			Action:     logs.View(logs.DefaultDeps()),
		},
		{
			Name:       "config",
			Summary:    "Read or change configuration",
			Usage:      usageLine("config <get|set|unset|list> [key] [value]"),
			Permission: m.Permission("config"),
			Category:   dispatchers.CategoryUtility,
			Args:       ConfigArgs,
			Action:     configactions.Config(configactions.DefaultDeps(app.Config)),
			Complete:   configactions.Complete,
		},
	}

	var errs []error
	for _, spec := range specs {
		if _, err := m.Register(spec); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	m.SetRecorder(history.NewRecorder(audit))
	return m, nil
}
