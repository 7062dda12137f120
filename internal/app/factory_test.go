package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/fanout/internal/config"
	"github.com/footprint-tools/fanout/internal/log"
)

func setupHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, ".config"))
	return dir
}

func TestDefaultOptions(t *testing.T) {
	setupHome(t)
	t.Setenv("FANOUT_MAX_ENUMERATIONS", "7")

	opts, err := DefaultOptions()
	require.NoError(t, err)

	require.True(t, opts.StyleEnabled)
	require.Equal(t, 7, opts.Settings.MaxEnumerations)
	require.Equal(t, 500, opts.Settings.MaxWildcardEnumerations)
	require.Equal(t, "default", opts.StyleConfig["theme"])
}

func TestDefaultOptions_BadEnv(t *testing.T) {
	setupHome(t)
	t.Setenv("FANOUT_MAX_ENUMERATIONS", "many")

	_, err := DefaultOptions()
	require.Error(t, err)
}

func TestNewForTesting(t *testing.T) {
	app := NewForTesting()

	require.NotNil(t, app.Store)
	require.NotNil(t, app.Config)
	require.NotNil(t, app.Logger)
	require.NotNil(t, app.Styler)
}

func TestClose_NilComponents(t *testing.T) {
	app := NewForTesting()
	app.Store = nil
	app.Logger = nil

	// Should not panic
	require.NoError(t, Close(app))
}

func TestNew_UsesDatabasePathOverride(t *testing.T) {
	dir := setupHome(t)
	dbPath := filepath.Join(dir, "custom.db")

	app, err := New(Options{
		Settings: config.Settings{DatabasePath: dbPath},
	})
	require.NoError(t, err)
	defer func() { _ = Close(app) }()

	_, err = os.Stat(dbPath)
	require.NoError(t, err)
	require.IsType(t, log.NopLogger{}, app.Logger)
}

func TestNew_WithLogEnabled(t *testing.T) {
	dir := setupHome(t)
	defer log.SetDefault(nil)

	app, err := New(Options{
		Settings: config.Settings{
			EnableLog:    true,
			LogLevel:     "debug",
			DatabasePath: filepath.Join(dir, "fanout.db"),
		},
	})
	require.NoError(t, err)
	defer func() { _ = Close(app) }()

	require.IsType(t, &log.Logger{}, app.Logger)
	require.Same(t, app.Logger, log.GetLogger())
}
