package style

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// codePattern matches one '&' color or format code, either case.
var codePattern = regexp.MustCompile(`(?i)&[0-9a-fk-or]`)

// legacyColors maps '&' color codes to the 16 basic ANSI colors.
var legacyColors = map[byte]string{
	'0': "0",  // black
	'1': "4",  // dark blue
	'2': "2",  // dark green
	'3': "6",  // dark aqua
	'4': "1",  // dark red
	'5': "5",  // dark purple
	'6': "3",  // gold
	'7': "7",  // gray
	'8': "8",  // dark gray
	'9': "12", // blue
	'a': "10", // green
	'b': "14", // aqua
	'c': "9",  // red
	'd': "13", // light purple
	'e': "11", // yellow
	'f': "15", // white
}

// Strip removes every '&' code from text.
func Strip(text string) string {
	return codePattern.ReplaceAllString(text, "")
}

// Colorize renders '&' codes as terminal styling. A color code clears any
// active formatting, format codes (&l bold, &m strikethrough, &n underline,
// &o italic, &k blink) stack, and &r resets everything. With styling
// disabled the codes are stripped.
func Colorize(text string) string {
	if !enabled {
		return Strip(text)
	}

	var b strings.Builder
	current := emptyStyle()
	last := 0

	for _, loc := range codePattern.FindAllStringIndex(text, -1) {
		b.WriteString(render(current, text[last:loc[0]]))
		current = applyCode(current, text[loc[0]+1])
		last = loc[1]
	}
	b.WriteString(render(current, text[last:]))

	return b.String()
}

func applyCode(s lipgloss.Style, code byte) lipgloss.Style {
	code = lower(code)

	if color, ok := legacyColors[code]; ok {
		return emptyStyle().Foreground(lipgloss.Color(color))
	}

	switch code {
	case 'l':
		return s.Bold(true)
	case 'm':
		return s.Strikethrough(true)
	case 'n':
		return s.Underline(true)
	case 'o':
		return s.Italic(true)
	case 'k':
		return s.Blink(true)
	default: // 'r'
		return emptyStyle()
	}
}

func emptyStyle() lipgloss.Style {
	return lipgloss.NewStyle()
}

func render(s lipgloss.Style, text string) string {
	if text == "" {
		return ""
	}
	return s.Render(text)
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
