package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dropdown/internal/ui/theme"
)

const (
	activeMarker   = "▸ "
	inactiveMarker = "  "
	hintMoreAbove  = "  ▲ more above"
	hintMoreBelow  = "  ▼ more below"
)

// menuLayout describes where the menu sits relative to the widget origin.
type menuLayout struct {
	visible  bool
	top      int // first row of the menu
	left     int
	width    int
	first    int // first filtered index shown
	end      int // one past the last filtered index shown
	hasAbove bool
	hasBelow bool
}

func (m menuLayout) height() int {
	if !m.visible {
		return 0
	}
	h := m.end - m.first
	if m.hasAbove {
		h++
	}
	if m.hasBelow {
		h++
	}
	return h
}

// itemsTop is the row of the first item, below the "more above" hint.
func (m menuLayout) itemsTop() int {
	if m.hasAbove {
		return m.top + 1
	}
	return m.top
}

// layout computes the input position and menu geometry for n filtered items.
func (d DropdownInput) layout(n int, inputHeight int) (inputTop int, menu menuLayout) {
	if !d.open || n == 0 {
		return 0, menu
	}
	menu.visible = true
	menu.width = d.menuWidth()
	if d.cfg.PullRight && menu.width < d.cfg.Width {
		menu.left = d.cfg.Width - menu.width
	}
	menu.first = clampOffset(d.scrollOffset, n, d.cfg.MaxHeight)
	menu.end = min(menu.first+d.cfg.MaxHeight, n)
	menu.hasAbove = menu.first > 0
	menu.hasBelow = menu.end < n

	if d.cfg.Dropup {
		return menu.height(), menu
	}
	menu.top = inputHeight
	return 0, menu
}

func (d DropdownInput) menuWidth() int {
	if d.cfg.ListWidth > 0 {
		return d.cfg.ListWidth
	}
	return d.cfg.Width
}

// View implements tea.Model.
func (d DropdownInput) View() string {
	input := d.renderInput()
	items := d.filtered()
	_, menu := d.layout(len(items), lipgloss.Height(input))
	if !menu.visible {
		return input
	}

	rendered := d.renderMenu(items, menu)
	if menu.left > 0 {
		rendered = indentLines(rendered, menu.left)
	}
	if d.cfg.Dropup {
		return lipgloss.JoinVertical(lipgloss.Left, rendered, input)
	}
	return lipgloss.JoinVertical(lipgloss.Left, input, rendered)
}

func (d DropdownInput) renderInput() string {
	// Width is the visual width including the 2 border columns
	style := styleDropdownInput(d.focused).Width(d.cfg.Width - 2)
	if d.cfg.InputStyle != nil {
		style = d.cfg.InputStyle(style)
	}
	return style.Render(d.input.View())
}

func (d DropdownInput) renderMenu(items []Item, menu menuLayout) string {
	rows := make([]string, 0, menu.height())
	if menu.hasAbove {
		rows = append(rows, styleDropdownHint().Render(hintMoreAbove))
	}
	text := d.input.Value()
	for i := menu.first; i < menu.end; i++ {
		rows = append(rows, d.renderItem(items[i], i == d.activeIndex, text, menu.width))
	}
	if menu.hasBelow {
		rows = append(rows, styleDropdownHint().Render(hintMoreBelow))
	}

	style := styleDropdownMenu().Width(menu.width)
	if d.cfg.MenuStyle != nil {
		style = d.cfg.MenuStyle(style)
	}
	return style.Render(strings.Join(rows, "\n"))
}

// renderItem draws one option with the typed text emphasized. Disabled
// options render as a single muted segment.
func (d DropdownInput) renderItem(item Item, active bool, text string, width int) string {
	marker := inactiveMarker
	base := styleDropdownOption()
	if active {
		marker = activeMarker
		base = styleDropdownActive()
	}

	seg := itemSegments(item, text)
	label := styleDropdownDisabled().Render(seg.Before)
	if !item.Disabled {
		label = base.Render(seg.Before) + styleDropdownMatch(active).Render(seg.Match) + base.Render(seg.After)
	}

	return truncateLine(base.Render(marker)+label, width)
}

// itemSegments never splits a disabled label.
func itemSegments(item Item, text string) Segments {
	if item.Disabled {
		return Segments{Before: item.Value}
	}
	return Highlight(item.Value, text)
}

// Dropdown styles

func styleDropdownInput(focused bool) lipgloss.Style {
	border := theme.Current().BorderNormal
	if focused {
		border = theme.Current().BorderFocused
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}

func styleDropdownMenu() lipgloss.Style {
	return lipgloss.NewStyle()
}

func styleDropdownOption() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Text)
}

func styleDropdownActive() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Accent).
		Background(theme.Current().Selection).
		Bold(true)
}

func styleDropdownMatch(active bool) lipgloss.Style {
	s := lipgloss.NewStyle().
		Foreground(theme.Current().Match).
		Bold(true).
		Underline(true)
	if active {
		s = s.Background(theme.Current().Selection)
	}
	return s
}

func styleDropdownDisabled() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Disabled).
		Italic(true)
}

func styleDropdownHint() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().TextMuted)
}
