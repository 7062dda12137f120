package dispatchers

import "github.com/footprint-tools/fanout/internal/wildcard"

// CommandFunc runs one invocation. args[0] is the subcommand name as typed.
type CommandFunc func(sender Sender, args []string) error

// CompleteFunc suggests values for the last element of args.
type CompleteFunc func(sender Sender, args []string) []string

// Capabilities declares which expansion paths a subcommand accepts.
type Capabilities struct {
	TemplateExpandable bool
	WildcardExpandable bool
}

type ArgSpec struct {
	Name        string
	Description string
	Required    bool
}

type DispatchNode struct {
	Name         string
	Summary      string
	Usage        string
	Permission   string
	Category     CommandCategory
	Capabilities Capabilities
	Args         []ArgSpec
	Action       CommandFunc
	Wildcard     wildcard.Source
	Complete     CompleteFunc
}

// Route is the path a resolved line takes through the dispatcher.
type Route int

const (
	RouteDirect Route = iota
	RouteTemplate
	RouteWildcard
)

func (r Route) String() string {
	switch r {
	case RouteTemplate:
		return "template"
	case RouteWildcard:
		return "wildcard"
	default:
		return "direct"
	}
}

// Resolution is a line that passed lookup, permission and expansion: the
// batch is ready to run.
type Resolution struct {
	Node  *DispatchNode
	Route Route
	Batch [][]string
}

// Report summarises one Dispatch call.
type Report struct {
	Command     string
	Route       Route
	Invocations int
	Failures    int
	Err         error // set when the line was rejected before running
}
