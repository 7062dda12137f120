package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/fanout/internal/log"
)

func setupEnv(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, ".config"))
	t.Setenv("FANOUT_DB", filepath.Join(dir, "fanout.db"))
	t.Cleanup(func() { log.SetDefault(nil) })
}

func runFo(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Version(t *testing.T) {
	code, out, _ := runFo(t, "--version")
	require.Equal(t, 0, code)
	require.Equal(t, "fo version dev\n", out)
}

func TestRun_InvalidFlag(t *testing.T) {
	code, _, errOut := runFo(t, "--nope", "players")
	require.Equal(t, 2, code)
	require.Equal(t, "fo: invalid flag '--nope'\n", errOut)
}

func TestRun_Dispatch(t *testing.T) {
	setupEnv(t)

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  string
	}{
		{
			name:     "no subcommand",
			args:     nil,
			wantCode: 2,
			wantOut:  "No subcommand provided. Use '/fanout help' to see a list of valid commands\n",
		},
		{
			name:     "join with a pattern",
			args:     []string{"join", "{Steve,Alex}"},
			wantCode: 0,
			wantOut:  "Steve joined for the first time\nAlex joined for the first time\n",
		},
		{
			name:     "join again",
			args:     []string{"join", "Steve"},
			wantCode: 0,
			wantOut:  "Steve is now online\n",
		},
		{
			name:     "flags after the subcommand belong to the line",
			args:     []string{"--no-color", "msg", "Steve", "-hi"},
			wantCode: 0,
			wantOut:  "Message sent to Steve\n",
		},
		{
			name:     "player without grants",
			args:     []string{"--as=Steve", "players"},
			wantCode: 3,
			wantOut:  "Insufficient Permission\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, _ := runFo(t, tt.args...)
			require.Equal(t, tt.wantCode, code)
			require.Equal(t, tt.wantOut, out)
		})
	}
}

func TestRun_AsGrantedPlayer(t *testing.T) {
	setupEnv(t)

	code, _, _ := runFo(t, "join", "Steve")
	require.Equal(t, 0, code)
	code, _, _ = runFo(t, "grant", "Steve", "fanout")
	require.Equal(t, 0, code)
	code, _, _ = runFo(t, "grant", "Steve", "fanout.msg")
	require.Equal(t, 0, code)

	code, out, _ := runFo(t, "--as=Steve", "msg", "Steve", "hello")
	require.Equal(t, 0, code)
	require.Equal(t, "Message sent to Steve\n", out)

	code, _, _ = runFo(t, "inbox", "Steve")
	require.Equal(t, 0, code)
}

func TestRun_AsUnknownPlayer(t *testing.T) {
	setupEnv(t)

	code, _, errOut := runFo(t, "--as=Nobody", "players")
	require.Equal(t, 2, code)
	require.Equal(t, "Invalid player: Nobody\n", errOut)
}

func TestRun_CompletionScript(t *testing.T) {
	code, out, _ := runFo(t, "--completions=bash")
	require.Equal(t, 0, code)
	require.Contains(t, out, "__complete")

	code, _, errOut := runFo(t, "--completions=tcsh")
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "unsupported shell")
}

func TestRun_Complete(t *testing.T) {
	setupEnv(t)

	code, out, _ := runFo(t, "__complete", "he")
	require.Equal(t, 0, code)
	require.Equal(t, "help\n", out)

	code, _, _ = runFo(t, "join", "Steve")
	require.Equal(t, 0, code)

	code, out, _ = runFo(t, "__complete", "msg", "St")
	require.Equal(t, 0, code)
	require.Equal(t, "Steve\n", out)

	// Steve holds no root permission, so nothing is listed
	code, out, _ = runFo(t, "--as=Steve", "__complete", "msg", "St")
	require.Equal(t, 0, code)
	require.Empty(t, out)
}
