package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type hitZone int

const (
	hitNone hitZone = iota
	hitInput
	hitItem
)

// hitTest maps a point relative to the widget origin to the input box or to
// a filtered item index, using the same layout View renders with.
func (d DropdownInput) hitTest(x, y int) (hitZone, int) {
	inputHeight := lipgloss.Height(d.renderInput())
	items := d.filtered()
	inputTop, menu := d.layout(len(items), inputHeight)

	if y >= inputTop && y < inputTop+inputHeight && x >= 0 && x < d.cfg.Width {
		return hitInput, -1
	}
	if !menu.visible || x < menu.left || x >= menu.left+menu.width {
		return hitNone, -1
	}
	row := y - menu.itemsTop()
	if row < 0 || row >= menu.end-menu.first {
		return hitNone, -1
	}
	return hitItem, menu.first + row
}

func (d DropdownInput) handleMouse(msg tea.MouseMsg) (DropdownInput, tea.Cmd) {
	zone, index := d.hitTest(msg.X-d.originX, msg.Y-d.originY)

	switch msg.Action {
	case tea.MouseActionMotion:
		if zone == hitItem {
			d.HoverOption(index)
		}
		return d, nil

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return d, nil
		}
		switch zone {
		case hitInput:
			cmd := d.ClickInput()
			return d, cmd
		case hitItem:
			return d.SelectOption(index)
		}
		// A press anywhere else moves focus away, as it would in a form.
		if d.focused {
			d.Blur()
		}
	}
	return d, nil
}
