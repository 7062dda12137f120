package completions

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// CompleteCommand is the hidden line the generated scripts run to ask fo
// for suggestions: "fo __complete <words...>".
const CompleteCommand = "__complete"

type Shell string

const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// DetectShell guesses the user's shell from $SHELL.
func DetectShell() Shell {
	return Shell(filepath.Base(os.Getenv("SHELL")))
}

// PrintScript writes the completion script for shell to w. bin is the
// command name the script registers completions for.
func PrintScript(w io.Writer, shell Shell, bin string) error {
	script, err := Script(shell, bin)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, script)
	return err
}

func Script(shell Shell, bin string) (string, error) {
	var tmpl string
	switch shell {
	case ShellBash:
		tmpl = bashScript
	case ShellZsh:
		tmpl = zshScript
	case ShellFish:
		tmpl = fishScript
	default:
		return "", fmt.Errorf("unsupported shell: %q (use bash, zsh, or fish)", shell)
	}

	fn := "_" + strings.NewReplacer("-", "_", ".", "_").Replace(bin) + "_complete"
	r := strings.NewReplacer("{{bin}}", bin, "{{fn}}", fn, "{{cmd}}", CompleteCommand)
	return r.Replace(tmpl), nil
}

const bashScript = `# bash completion for {{bin}}
{{fn}}() {
    local IFS=$'\n'
    COMPREPLY=($({{bin}} {{cmd}} "${COMP_WORDS[@]:1:COMP_CWORD}" 2>/dev/null))
}
complete -o default -F {{fn}} {{bin}}
`

const zshScript = `#compdef {{bin}}
{{fn}}() {
    local -a suggestions
    suggestions=("${(@f)$({{bin}} {{cmd}} "${words[@]:1:$((CURRENT-1))}" 2>/dev/null)}")
    compadd -a suggestions
}
compdef {{fn}} {{bin}}
`

const fishScript = `# fish completion for {{bin}}
function {{fn}}
    set -l tokens (commandline -opc) (commandline -ct)
    {{bin}} {{cmd}} $tokens[2..-1] 2>/dev/null
end
complete -c {{bin}} -f -a '({{fn}})'
`
