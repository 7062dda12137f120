package dispatchers

import "github.com/footprint-tools/fanout/internal/wildcard"

const (
	DefaultMaxEnumerations         = 100
	DefaultMaxWildcardEnumerations = 500
)

// RootSpec describes the root command every subcommand hangs off.
// Permission is mandatory.
type RootSpec struct {
	Name        string
	DisplayName string // shown in messages, defaults to Name
	Permission  string
	Summary     string

	MaxEnumerations         int
	MaxWildcardEnumerations int
}

type CommandSpec struct {
	Name         string
	Summary      string
	Usage        string
	Permission   string // empty means every sender may run it
	Category     CommandCategory
	Capabilities Capabilities
	Args         []ArgSpec
	Action       CommandFunc
	Wildcard     wildcard.Source // required when Capabilities.WildcardExpandable
	Complete     CompleteFunc
}
