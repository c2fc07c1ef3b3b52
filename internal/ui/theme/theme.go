// Package theme provides the semantic color palettes used by the dropdown widget.
package theme

import "github.com/charmbracelet/lipgloss"

// Palette defines the semantic colors the widget renders with.
// Every color is adaptive so light and dark terminals both stay readable.
type Palette struct {
	Accent        lipgloss.AdaptiveColor // Active item marker and label
	Match         lipgloss.AdaptiveColor // Emphasized substring inside a label
	Text          lipgloss.AdaptiveColor // Regular option labels, typed text
	TextMuted     lipgloss.AdaptiveColor // Hints and scroll indicators
	Disabled      lipgloss.AdaptiveColor // Disabled option labels
	Selection     lipgloss.AdaptiveColor // Background behind the active item
	BorderNormal  lipgloss.AdaptiveColor
	BorderFocused lipgloss.AdaptiveColor
}

var tokyoNight = Palette{
	Accent:        lipgloss.AdaptiveColor{Dark: "#c099ff", Light: "#9854f1"},
	Match:         lipgloss.AdaptiveColor{Dark: "#ffc777", Light: "#8c6c3e"},
	Text:          lipgloss.AdaptiveColor{Dark: "#c8d3f5", Light: "#3760bf"},
	TextMuted:     lipgloss.AdaptiveColor{Dark: "#636da6", Light: "#848cb5"},
	Disabled:      lipgloss.AdaptiveColor{Dark: "#3b4261", Light: "#a8aecb"},
	Selection:     lipgloss.AdaptiveColor{Dark: "#2f334d", Light: "#c8c9ce"},
	BorderNormal:  lipgloss.AdaptiveColor{Dark: "#292e42", Light: "#c8c9ce"},
	BorderFocused: lipgloss.AdaptiveColor{Dark: "#82aaff", Light: "#2e7de9"},
}

var dracula = Palette{
	Accent:        lipgloss.AdaptiveColor{Dark: "#bd93f9", Light: "#7e57c2"},
	Match:         lipgloss.AdaptiveColor{Dark: "#f1fa8c", Light: "#f9a825"},
	Text:          lipgloss.AdaptiveColor{Dark: "#f8f8f2", Light: "#212121"},
	TextMuted:     lipgloss.AdaptiveColor{Dark: "#6272a4", Light: "#757575"},
	Disabled:      lipgloss.AdaptiveColor{Dark: "#44475a", Light: "#bdbdbd"},
	Selection:     lipgloss.AdaptiveColor{Dark: "#44475a", Light: "#e0e0e0"},
	BorderNormal:  lipgloss.AdaptiveColor{Dark: "#44475a", Light: "#e0e0e0"},
	BorderFocused: lipgloss.AdaptiveColor{Dark: "#bd93f9", Light: "#7e57c2"},
}

var nord = Palette{
	Accent:        lipgloss.AdaptiveColor{Dark: "#88c0d0", Light: "#5e81ac"},
	Match:         lipgloss.AdaptiveColor{Dark: "#ebcb8b", Light: "#d08770"},
	Text:          lipgloss.AdaptiveColor{Dark: "#eceff4", Light: "#2e3440"},
	TextMuted:     lipgloss.AdaptiveColor{Dark: "#8b95a7", Light: "#3b4252"},
	Disabled:      lipgloss.AdaptiveColor{Dark: "#4c566a", Light: "#d8dee9"},
	Selection:     lipgloss.AdaptiveColor{Dark: "#3b4252", Light: "#e5e9f0"},
	BorderNormal:  lipgloss.AdaptiveColor{Dark: "#434c5e", Light: "#d8dee9"},
	BorderFocused: lipgloss.AdaptiveColor{Dark: "#88c0d0", Light: "#5e81ac"},
}

var gruvbox = Palette{
	Accent:        lipgloss.AdaptiveColor{Dark: "#d3869b", Light: "#8f3f71"},
	Match:         lipgloss.AdaptiveColor{Dark: "#fabd2f", Light: "#b57614"},
	Text:          lipgloss.AdaptiveColor{Dark: "#ebdbb2", Light: "#3c3836"},
	TextMuted:     lipgloss.AdaptiveColor{Dark: "#a89984", Light: "#7c6f64"},
	Disabled:      lipgloss.AdaptiveColor{Dark: "#504945", Light: "#bdae93"},
	Selection:     lipgloss.AdaptiveColor{Dark: "#3c3836", Light: "#ebdbb2"},
	BorderNormal:  lipgloss.AdaptiveColor{Dark: "#3c3836", Light: "#d5c4a1"},
	BorderFocused: lipgloss.AdaptiveColor{Dark: "#83a598", Light: "#076678"},
}

func init() {
	// tokyonight registers first so it is the default.
	RegisterTheme("tokyonight", tokyoNight)
	RegisterTheme("dracula", dracula)
	RegisterTheme("gruvbox", gruvbox)
	RegisterTheme("nord", nord)
}
