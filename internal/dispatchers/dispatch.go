package dispatchers

import (
	"errors"
	"strings"

	"github.com/footprint-tools/fanout/internal/expansion"
	"github.com/footprint-tools/fanout/internal/log"
	"github.com/footprint-tools/fanout/internal/usage"
	"github.com/footprint-tools/fanout/internal/wildcard"
)

const defaultSuggestionsCount = 3

const internalErrorMessage = "&cAn internal error occurred while running this command"

// Resolve takes a line from NoArgs through lookup and the permission check
// to a ready batch. Nothing runs here.
func (m *Manager) Resolve(sender Sender, args []string) (Resolution, error) {
	if len(args) == 0 {
		return Resolution{}, usage.NoSubcommand(m.root.DisplayName)
	}

	node, ok := m.Lookup(args[0])
	if !ok {
		suggestions := FindSimilarCommands(args[0], m.names, defaultSuggestionsCount)
		log.Debug("dispatch: unknown subcommand %q (suggestions: %v)", args[0], suggestions)
		return Resolution{}, usage.InvalidSubcommand(suggestions...)
	}

	if node.Permission != "" && !sender.HasPermission(node.Permission) {
		log.Debug("dispatch: %s lacks %s", sender.Name(), node.Permission)
		return Resolution{Node: node}, usage.InsufficientPermission()
	}

	route := routeFor(node, args)
	res := Resolution{Node: node, Route: route}

	var err error
	switch route {
	case RouteWildcard:
		res.Batch, err = wildcard.Expand(args, node.Wildcard, m.root.MaxWildcardEnumerations)
	case RouteTemplate:
		res.Batch, err = expansion.Expand(args, m.root.MaxEnumerations)
	default:
		res.Batch = [][]string{args}
	}
	if err != nil {
		return res, err
	}

	log.Debug("dispatch: %s route=%s batch=%d", node.Name, route, len(res.Batch))
	return res, nil
}

// routeFor picks the expansion path from the node's capabilities. A
// wildcard-capable command without a '*' in its arguments still gets
// template expansion.
func routeFor(node *DispatchNode, args []string) Route {
	caps := node.Capabilities
	switch {
	case caps.WildcardExpandable && strings.Contains(strings.Join(args[1:], " "), "*"):
		return RouteWildcard
	case caps.WildcardExpandable, caps.TemplateExpandable:
		return RouteTemplate
	default:
		return RouteDirect
	}
}

// Run invokes the node once per batch entry, in order. A failing invocation
// is reported to the sender and the rest of the batch still runs.
func (m *Manager) Run(sender Sender, res Resolution) Report {
	report := Report{
		Command:     res.Node.Name,
		Route:       res.Route,
		Invocations: len(res.Batch),
	}

	for _, args := range res.Batch {
		if err := invoke(res.Node, sender, args); err != nil {
			report.Failures++
			log.Warn("dispatch: %s %q failed: %v", res.Node.Name, strings.Join(args, " "), err)
			sendError(sender, err)
		}
	}

	return report
}

// Dispatch resolves and runs one line. User errors are sent to the sender;
// nothing is returned as an error.
func (m *Manager) Dispatch(sender Sender, args []string) Report {
	var report Report

	res, err := m.Resolve(sender, args)
	if err != nil {
		report.Err = err
		report.Route = res.Route
		if res.Node != nil {
			report.Command = res.Node.Name
		}
		sendError(sender, err)
	} else {
		report = m.Run(sender, res)
	}

	if m.recorder != nil {
		m.recorder.Record(sender, args, report)
	}
	return report
}

// Complete suggests the next token. With one argument it offers registered
// names with that prefix; after that it defers to the subcommand.
func (m *Manager) Complete(sender Sender, args []string) []string {
	switch {
	case len(args) == 0:
		return nil
	case len(args) == 1:
		return m.prefixMatches(args[0])
	}

	node, ok := m.Lookup(args[0])
	if !ok || node.Complete == nil {
		return nil
	}
	return node.Complete(sender, args)
}

func invoke(node *DispatchNode, sender Sender, args []string) error {
	if err := validateArgs(node, args); err != nil {
		return err
	}
	return node.Action(sender, args)
}

// validateArgs counts arguments after the subcommand name.
func validateArgs(node *DispatchNode, args []string) error {
	required := 0
	for _, a := range node.Args {
		if a.Required {
			required++
		}
	}

	if len(args)-1 < required {
		return usage.MissingArgument(node.Usage)
	}
	return nil
}

func sendError(sender Sender, err error) {
	var ue *usage.Error
	if errors.As(err, &ue) {
		SendLines(sender, ue.Chat()...)
		return
	}

	log.Error("dispatch: %v", err)
	sender.SendMessage(internalErrorMessage)
}
