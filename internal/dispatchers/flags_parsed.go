package dispatchers

import (
	"strings"

	"github.com/footprint-tools/fanout/internal/usage"
)

// ParsedFlags provides typed access to command-line flags.
type ParsedFlags struct {
	raw []string
}

// NewParsedFlags creates a ParsedFlags from a slice of flag strings.
func NewParsedFlags(flags []string) *ParsedFlags {
	return &ParsedFlags{raw: flags}
}

// SplitLeadingFlags separates the flags in front of a command line from the
// line itself. Flags stop at the first argument not starting with '-' or at
// "--", which is dropped. Flags appearing later belong to the line: "msg
// alice -hi" keeps "-hi" as a message word.
func SplitLeadingFlags(args []string) (*ParsedFlags, []string) {
	i := 0
	for i < len(args) {
		arg := args[i]
		if arg == "--" {
			i++
			break
		}
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			break
		}
		i++
	}

	flags := make([]string, 0, i)
	for _, f := range args[:i] {
		if f != "--" {
			flags = append(flags, f)
		}
	}
	return NewParsedFlags(flags), args[i:]
}

// Raw returns the underlying flag strings.
func (f *ParsedFlags) Raw() []string {
	return f.raw
}

// Has returns true if the flag is present (for boolean flags).
func (f *ParsedFlags) Has(name string) bool {
	for _, flag := range f.raw {
		if flag == name {
			return true
		}
	}
	return false
}

// HasAny reports whether any of the names is present.
func (f *ParsedFlags) HasAny(names ...string) bool {
	for _, name := range names {
		if f.Has(name) {
			return true
		}
	}
	return false
}

// String returns the value of a --flag=value flag, or defaultVal if not present.
func (f *ParsedFlags) String(name, defaultVal string) string {
	prefix := name + "="
	for _, flag := range f.raw {
		if strings.HasPrefix(flag, prefix) {
			return strings.TrimPrefix(flag, prefix)
		}
	}
	return defaultVal
}

// Validate rejects flags outside valid. Values after '=' are ignored.
func (f *ParsedFlags) Validate(valid []FlagDescriptor) error {
	known := make(map[string]bool)
	for _, d := range valid {
		for _, name := range d.Names {
			known[name] = true
		}
	}

	for _, flag := range f.raw {
		name := flag
		if idx := strings.Index(flag, "="); idx != -1 {
			name = flag[:idx]
		}
		if !known[name] {
			return usage.InvalidFlag(flag)
		}
	}
	return nil
}

// FlagDescriptor documents one global flag of the fo binary.
type FlagDescriptor struct {
	Names       []string
	ValueHint   string
	Description string
}
