package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/footprint-tools/fanout/internal/app"
	"github.com/footprint-tools/fanout/internal/cli"
	"github.com/footprint-tools/fanout/internal/completions"
	"github.com/footprint-tools/fanout/internal/dispatchers"
	"github.com/footprint-tools/fanout/internal/senders"
	"github.com/footprint-tools/fanout/internal/ui/console"
	"github.com/footprint-tools/fanout/internal/ui/style"
	"github.com/footprint-tools/fanout/internal/usage"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags, line := dispatchers.SplitLeadingFlags(args)
	if err := flags.Validate(cli.RootFlags); err != nil {
		return fail(stderr, err)
	}

	if flags.HasAny("--version", "-v") {
		_, _ = fmt.Fprintf(stdout, "fo version %s\n", app.Version)
		return 0
	}
	if flags.Has("--completions") || flags.String("--completions", "") != "" {
		shell := completions.Shell(flags.String("--completions", ""))
		if shell == "" {
			shell = completions.DetectShell()
		}
		if err := completions.PrintScript(stdout, shell, completions.BinaryName()); err != nil {
			return fail(stderr, err)
		}
		return 0
	}
	if flags.HasAny("--help", "-h") {
		line = append([]string{"help"}, line...)
	}

	opts, err := app.DefaultOptions()
	if err != nil {
		return fail(stderr, err)
	}
	opts.StyleEnabled = isTerminal(stdout) && !flags.Has("--no-color")

	application, err := app.New(opts)
	if err != nil {
		return fail(stderr, err)
	}
	defer func() { _ = app.Close(application) }()

	m, err := cli.BuildManager(application, opts.Settings)
	if err != nil {
		return fail(stderr, err)
	}

	as := flags.String("--as", "")
	newSender := func(out io.Writer) (dispatchers.Sender, error) {
		if as == "" {
			return senders.NewConsole(out), nil
		}
		return senders.AsPlayer(application.Store, as, out)
	}

	if len(line) > 0 && line[0] == completions.CompleteCommand {
		sender, err := newSender(io.Discard)
		if err != nil {
			return 1
		}
		for _, s := range cli.Complete(m, sender, line[1:]) {
			_, _ = fmt.Fprintln(stdout, s)
		}
		return 0
	}

	if flags.HasAny("--interactive", "-i") {
		if !term.IsTerminal(int(os.Stdin.Fd())) || !isTerminal(stdout) {
			return fail(stderr, errors.New("interactive console requires a terminal"))
		}
		err := console.Run(console.Options{
			Title: m.DisplayName() + " console",
			Run: func(out io.Writer, args []string) {
				sender, err := newSender(out)
				if err != nil {
					_ = fail(out, err)
					return
				}
				cli.Execute(m, sender, args)
			},
			Complete: func(args []string) []string {
				sender, err := newSender(io.Discard)
				if err != nil {
					return nil
				}
				return cli.Complete(m, sender, args)
			},
		})
		if err != nil {
			return fail(stderr, err)
		}
		return 0
	}

	sender, err := newSender(stdout)
	if err != nil {
		return fail(stderr, err)
	}
	return cli.Execute(m, sender, line)
}

// fail prints err and returns its exit code.
func fail(w io.Writer, err error) int {
	var ue *usage.Error
	if errors.As(err, &ue) {
		for _, l := range ue.Chat() {
			_, _ = fmt.Fprintln(w, style.Colorize(l))
		}
		return ue.GetExitCode()
	}

	_, _ = fmt.Fprintln(w, "fo: "+err.Error())
	return 1
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
