package style

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func clearColorEnv(t *testing.T) {
	t.Helper()
	t.Setenv("NO_COLOR", "")
	t.Setenv("FANOUT_NO_COLOR", "")
}

var semantic = []struct {
	name string
	fn   func(string) string
}{
	{"Success", Success},
	{"Warning", Warning},
	{"Error", Error},
	{"Info", Info},
	{"Header", Header},
	{"Muted", Muted},
}

func TestDisabledReturnsPlainText(t *testing.T) {
	clearColorEnv(t)
	Init(false, nil)

	for _, tt := range semantic {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.fn("test message")
			require.Equal(t, "test message", output)
			require.NotContains(t, output, "\x1b[")
		})
	}
}

func TestEnabledReturnsStyledText(t *testing.T) {
	clearColorEnv(t)
	Init(true, nil)
	t.Cleanup(func() { Init(false, nil) })

	for _, tt := range semantic {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.fn("test message")
			require.Contains(t, output, "test message")
			require.Contains(t, output, "\x1b[")
		})
	}
}

func TestNoColorEnvDisablesStyling(t *testing.T) {
	for _, key := range []string{"NO_COLOR", "FANOUT_NO_COLOR"} {
		t.Run(key, func(t *testing.T) {
			clearColorEnv(t)
			t.Setenv(key, "1")

			Init(true, nil)

			require.False(t, Enabled())
			require.Equal(t, "test", Success("test"))
			require.Equal(t, "red", Colorize("&cred"))
		})
	}
}

func TestEnabledReturnsCorrectState(t *testing.T) {
	clearColorEnv(t)

	Init(false, nil)
	require.False(t, Enabled())

	Init(true, nil)
	require.True(t, Enabled())

	Init(false, nil)
}

func TestLoadColorConfig(t *testing.T) {
	t.Setenv("FANOUT_THEME", "")
	t.Setenv("FANOUT_COLOR_ERROR", "")
	t.Setenv("FANOUT_COLOR_INFO", "")

	cfg := LoadColorConfig(map[string]string{"theme": "ocean-light"})
	require.Equal(t, Themes["ocean-light"], cfg)

	cfg = LoadColorConfig(map[string]string{"theme": "contrast-dark", "color_info": "99"})
	require.Equal(t, "99", cfg.Info)
	require.Equal(t, Themes["contrast-dark"].Error, cfg.Error)

	t.Setenv("FANOUT_COLOR_INFO", "42")
	cfg = LoadColorConfig(map[string]string{"theme": "contrast-dark", "color_info": "99"})
	require.Equal(t, "42", cfg.Info, "environment wins over the config file")

	cfg = LoadColorConfig(map[string]string{"theme": "nope-dark"})
	require.Equal(t, Themes["default-dark"], cfg)
}

func TestThemesAreComplete(t *testing.T) {
	require.Len(t, Themes, len(ThemeNames))
	for _, name := range ThemeNames {
		theme, ok := Themes[name]
		require.True(t, ok, name)
		require.NotEmpty(t, theme.Success, name)
		require.NotEmpty(t, theme.Error, name)
		require.NotEmpty(t, theme.Header, name)
	}
	for _, base := range BaseThemeNames {
		require.Contains(t, ThemeNames, base+"-dark")
		require.Contains(t, ThemeNames, base+"-light")
	}
}

func TestResolveThemeName_KeepsSuffix(t *testing.T) {
	require.Equal(t, "mono-light", ResolveThemeName("mono-light"))
	require.Equal(t, "ocean-dark", ResolveThemeName("ocean-dark"))

	resolved := ResolveThemeName("mono")
	require.True(t, strings.HasPrefix(resolved, "mono-"))
}
