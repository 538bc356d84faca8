package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette. Never use inline lipgloss.Color literals elsewhere.
var (
	// ColorCyan is used for identifiable nouns: application names, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorYellow is used for values that came from a default.
	ColorYellow = lipgloss.Color("220")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleHeading styles section headings in table output.
	StyleHeading = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (separators, sources, indexes).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleDefault marks values taken from a built-in default.
	StyleDefault = lipgloss.NewStyle().Foreground(ColorYellow)
)

// minKeyColumnWidth aligns the value column of key/value lines.
const minKeyColumnWidth = 14

// FormatField renders "key  value  (source)" with the key padded to a
// fixed column. An empty source omits the suffix.
func FormatField(key, value, source string) string {
	padding := minKeyColumnWidth - len(key)
	if padding < 2 {
		padding = 2
	}

	line := StyleDim.Render(key) + strings.Repeat(" ", padding) + StyleNoun.Render(value)
	switch source {
	case "":
	case "default":
		line += "  " + StyleDefault.Render("("+source+")")
	default:
		line += "  " + StyleDim.Render("("+source+")")
	}
	return line
}

// FormatIndexed renders an ordered list entry, e.g. classpath element i.
func FormatIndexed(i int, value string) string {
	return StyleDim.Render(fmt.Sprintf("  %2d ", i)) + value
}

// ColorEnabled reports whether w is a terminal that should get ANSI styling.
func ColorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
