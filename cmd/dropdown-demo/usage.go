package main

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
)

const usageWidth = 60

const usageMarkdown = `# dropdown-demo

Type to filter the suggestions. The list opens whenever the text changes.

| Key | Action |
|-----|--------|
| ↑ / ↓, ctrl+p / ctrl+n | Move through suggestions |
| enter | Commit the highlighted item, an exact match, the only suggestion, or the typed text |
| esc | Close the list; again to quit without a value |
| ctrl+y | Copy the committed value |
| ctrl+t | Next theme |
| f1 | Toggle this panel |

Clicking the input toggles the list; clicking an item commits it.
Pressing **enter** while the list is closed submits the value and exits.

Options are read from ` + "`--options`" + `: one per line in a text file,
an ` + "`options`" + ` array in TOML, or the ` + "`value`" + ` column of a SQLite table.
`

// buildMarkdownRenderer returns a markdown renderer for the given style.
// "plain" and renderer failures fall back to word wrapping.
func buildMarkdownRenderer(format string, width int) func(string) string {
	fallback := func(input string) string {
		return wordwrap.String(input, width)
	}

	style := strings.ToLower(strings.TrimSpace(format))
	if style == "" || style == "rich" {
		style = "dark"
	}
	if style == "plain" {
		return fallback
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fallback
	}
	return func(input string) string {
		out, err := renderer.Render(input)
		if err != nil {
			return fallback(input)
		}
		return strings.TrimSpace(out)
	}
}
