package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dropdown/internal/config"
	"dropdown/internal/debug"
	"dropdown/internal/ui"
	"dropdown/internal/ui/theme"
)

const (
	originX = 2
	// title, blank line, label
	originY = 3
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

type demoKeys struct {
	Quit  key.Binding
	Copy  key.Binding
	Theme key.Binding
	Usage key.Binding
}

var keys = demoKeys{
	Quit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "Quit")),
	Copy:  key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "Copy value")),
	Theme: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "Next theme")),
	Usage: key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "Usage")),
}

type model struct {
	dropdown  ui.DropdownInput
	help      help.Model
	usage     string
	showUsage bool
	committed string
	status    string
	quitting  bool
}

// newModel focuses the dropdown and renders the usage panel once with the
// given style (dark, light, plain).
func newModel(cfg ui.Config, usageStyle string) model {
	d := ui.NewDropdownInput(cfg)
	d.SetOrigin(originX, originY)
	d.Focus()
	return model{
		dropdown: d,
		help:     help.New(),
		usage:    buildMarkdownRenderer(usageStyle, usageWidth)(usageMarkdown),
	}
}

func (m model) Init() tea.Cmd {
	return m.dropdown.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.Copy):
			return m.copyValue(), nil
		case key.Matches(msg, keys.Theme):
			name := theme.CycleTheme()
			if err := config.SaveTheme(name); err != nil {
				debug.Log("save theme failed", "theme", name, "err", err)
			}
			m.status = "Theme: " + name
			return m, nil
		case key.Matches(msg, keys.Usage):
			m.showUsage = !m.showUsage
			return m, nil
		}

	case ui.SelectedMsg:
		m.committed = msg.Value
		if msg.Submit {
			m.quitting = true
			return m, tea.Quit
		}
		m.status = fmt.Sprintf("Selected %q", msg.Value)
		return m, nil

	case ui.DismissedMsg:
		// Esc on a closed list cancels the demo without printing a value
		m.committed = ""
		m.quitting = true
		return m, tea.Quit

	case ui.ChangedMsg:
		return m, nil
	}

	var cmd tea.Cmd
	m.dropdown, cmd = m.dropdown.Update(msg)
	return m, cmd
}

func (m model) copyValue() model {
	value := m.committed
	if value == "" {
		value = m.dropdown.Value()
	}
	if value == "" {
		return m
	}
	if err := writeClipboard(value); err != nil {
		m.status = "Copy failed: " + err.Error()
		return m
	}
	m.status = fmt.Sprintf("Copied %q to clipboard.", value)
	return m
}

func (m model) View() string {
	if m.quitting {
		return ""
	}
	p := theme.Current()
	title := lipgloss.NewStyle().Bold(true).Foreground(p.Accent).Render("Dropdown Demo")
	label := lipgloss.NewStyle().Foreground(p.TextMuted).Render("Value:")
	body := lipgloss.NewStyle().MarginLeft(originX).Render(m.dropdown.View())

	s := title + "\n\n" + label + "\n" + body + "\n"
	if m.status != "" {
		s += "\n" + lipgloss.NewStyle().Foreground(p.Match).Render(m.status) + "\n"
	}
	if m.showUsage {
		s += "\n" + m.usage + "\n"
	}
	return s + "\n" + m.help.ShortHelpView(append(m.dropdown.KeyMap().ShortHelp(), keys.Copy, keys.Theme, keys.Usage, keys.Quit))
}
