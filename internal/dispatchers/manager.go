package dispatchers

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/footprint-tools/fanout/internal/usage"
)

// Recorder is told about every dispatched line, accepted or not.
type Recorder interface {
	Record(sender Sender, args []string, report Report)
}

// Manager owns the subcommands of one root command. It is filled at startup
// and only read afterwards.
type Manager struct {
	root     RootSpec
	nodes    map[string]*DispatchNode // keyed by folded name
	names    []string                 // registered names, sorted
	recorder Recorder
}

// NewManager validates the root spec. A root without a permission is a
// configuration error.
func NewManager(spec RootSpec) (*Manager, error) {
	if strings.TrimSpace(spec.Name) == "" {
		return nil, usage.Configuration("root command has no name")
	}
	if strings.TrimSpace(spec.Permission) == "" {
		return nil, usage.Configuration("command '%s' does not have a permission. All commands must have a permission", spec.Name)
	}

	if spec.DisplayName == "" {
		spec.DisplayName = spec.Name
	}
	if spec.MaxEnumerations <= 0 {
		spec.MaxEnumerations = DefaultMaxEnumerations
	}
	if spec.MaxWildcardEnumerations <= 0 {
		spec.MaxWildcardEnumerations = DefaultMaxWildcardEnumerations
	}

	return &Manager{
		root:  spec,
		nodes: make(map[string]*DispatchNode),
	}, nil
}

// Register adds a subcommand. Empty or duplicate names, a missing action and
// a wildcard-capable command without a candidate source are configuration
// errors.
func (m *Manager) Register(spec CommandSpec) (*DispatchNode, error) {
	name := strings.TrimSpace(spec.Name)
	if name == "" || strings.ContainsAny(name, " \t\n") {
		return nil, usage.Configuration("invalid subcommand name %q under '%s'", spec.Name, m.root.Name)
	}
	if spec.Action == nil {
		return nil, usage.Configuration("subcommand '%s' has no action", name)
	}
	if spec.Capabilities.WildcardExpandable && spec.Wildcard == nil {
		return nil, usage.Configuration("subcommand '%s' is wildcard capable but has no candidate source", name)
	}

	key := fold(name)
	if _, exists := m.nodes[key]; exists {
		return nil, usage.Configuration("duplicate subcommand '%s' under '%s'", name, m.root.Name)
	}

	node := &DispatchNode{
		Name:         name,
		Summary:      spec.Summary,
		Usage:        spec.Usage,
		Permission:   spec.Permission,
		Category:     spec.Category,
		Capabilities: spec.Capabilities,
		Args:         spec.Args,
		Action:       spec.Action,
		Wildcard:     spec.Wildcard,
		Complete:     spec.Complete,
	}
	if node.Usage == "" {
		node.Usage = "/" + m.root.DisplayName + " " + name
	}

	m.nodes[key] = node
	m.names = append(m.names, name)
	sort.Strings(m.names)

	return node, nil
}

// SetRecorder installs the recorder notified after each Dispatch.
func (m *Manager) SetRecorder(r Recorder) {
	m.recorder = r
}

// Name returns the root command name.
func (m *Manager) Name() string { return m.root.Name }

// DisplayName returns the name used in messages such as the help hint.
func (m *Manager) DisplayName() string { return m.root.DisplayName }

// Summary returns the root command summary.
func (m *Manager) Summary() string { return m.root.Summary }

// Permission returns the permission conventionally guarding subcommand name:
// the root permission followed by the lower-cased name.
func (m *Manager) Permission(name string) string {
	return m.root.Permission + "." + strings.ToLower(name)
}

// RootPermission returns the permission of the root command itself.
func (m *Manager) RootPermission() string { return m.root.Permission }

// Limits returns the template and wildcard enumeration caps.
func (m *Manager) Limits() (maxEnumerations, maxWildcardEnumerations int) {
	return m.root.MaxEnumerations, m.root.MaxWildcardEnumerations
}

// Commands returns every registered subcommand sorted by name.
func (m *Manager) Commands() []*DispatchNode {
	out := make([]*DispatchNode, 0, len(m.names))
	for _, name := range m.names {
		out = append(out, m.nodes[fold(name)])
	}
	return out
}

// Permissions returns the root permission and every subcommand permission,
// sorted and without duplicates.
func (m *Manager) Permissions() []string {
	seen := map[string]bool{m.root.Permission: true}
	out := []string{m.root.Permission}
	for _, node := range m.nodes {
		if node.Permission != "" && !seen[node.Permission] {
			seen[node.Permission] = true
			out = append(out, node.Permission)
		}
	}
	sort.Strings(out)
	return out
}

// Len returns the number of registered subcommands.
func (m *Manager) Len() int { return len(m.names) }

// Lookup finds a subcommand by exact case-insensitive name, falling back to
// a prefix that matches exactly one registered name.
func (m *Manager) Lookup(name string) (*DispatchNode, bool) {
	key := fold(name)
	if node, ok := m.nodes[key]; ok {
		return node, true
	}

	matches := m.prefixMatches(name)
	if len(matches) != 1 {
		return nil, false
	}
	return m.nodes[fold(matches[0])], true
}

// prefixMatches returns the registered names starting with prefix, ignoring
// case, in sorted order.
func (m *Manager) prefixMatches(prefix string) []string {
	p := fold(prefix)

	var out []string
	for _, name := range m.names {
		if strings.HasPrefix(fold(name), p) {
			out = append(out, name)
		}
	}
	return out
}

func fold(s string) string {
	return cases.Fold().String(s)
}
