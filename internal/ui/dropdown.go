package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dropdown/internal/debug"
)

const (
	defaultWidth     = 40
	defaultMaxHeight = 5
	minWidth         = 10
	// inputChrome is the border, padding, prompt and cursor around the text.
	inputChrome = 7
)

// Config is the full configuration surface of a DropdownInput.
// Only Options is required.
type Config struct {
	// ID tags ChangedMsg and SelectedMsg so hosts can tell widgets apart.
	ID string

	Options      Collection
	DefaultValue string
	Placeholder  string

	// Filter decides which options are listed for the typed text.
	// Nil means DefaultFilter.
	Filter FilterFunc
	// Disabled marks options that are listed but can never become active
	// or be selected. index is the position in the full collection.
	Disabled func(value string, index int) bool

	OnChange func(ChangeEvent)
	OnSelect func(SelectEvent)

	Width     int // input box width including border; default 40
	MaxHeight int // option rows before the menu scrolls; default 5
	ListWidth int // menu width; 0 follows Width
	PullRight bool
	Dropup    bool

	// InputStyle and MenuStyle receive the built-in style and return the
	// one to render with. Mouse hit-testing assumes the menu keeps one row
	// per item, so MenuStyle should not add borders or vertical padding.
	InputStyle func(lipgloss.Style) lipgloss.Style
	MenuStyle  func(lipgloss.Style) lipgloss.Style

	// KeyMap overrides DefaultKeyMap when non-nil.
	KeyMap *KeyMap
}

// DropdownInput is a text input with a filterable suggestion list.
//
// State is the typed text, the active (highlighted) position within the
// current filtered view, and whether the list is open. activeIndex is -1
// or a valid index into the filtered view; it resets on every text change
// and every commit.
type DropdownInput struct {
	cfg  Config
	keys KeyMap

	input        textinput.Model
	activeIndex  int
	open         bool
	focused      bool
	scrollOffset int

	originX, originY int
}

// NewDropdownInput creates a closed, unfocused DropdownInput.
func NewDropdownInput(cfg Config) DropdownInput {
	if cfg.Options == nil {
		cfg.Options = Strings(nil)
	}
	if cfg.Width <= 0 {
		cfg.Width = defaultWidth
	}
	if cfg.Width < minWidth {
		cfg.Width = minWidth
	}
	if cfg.MaxHeight <= 0 {
		cfg.MaxHeight = defaultMaxHeight
	}
	if cfg.ListWidth < 0 {
		cfg.ListWidth = 0
	}
	keys := DefaultKeyMap()
	if cfg.KeyMap != nil {
		keys = *cfg.KeyMap
	}

	ti := textinput.New()
	ti.Placeholder = cfg.Placeholder
	ti.Width = cfg.Width - inputChrome
	ti.SetValue(cfg.DefaultValue)
	ti.CursorEnd()

	return DropdownInput{
		cfg:         cfg,
		keys:        keys,
		input:       ti,
		activeIndex: -1,
	}
}

// Init implements tea.Model.
func (d DropdownInput) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (d DropdownInput) Update(msg tea.Msg) (DropdownInput, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.FocusMsg:
		cmd := d.Focus()
		return d, cmd
	case tea.BlurMsg:
		d.Blur()
		return d, nil
	case tea.MouseMsg:
		return d.handleMouse(msg)
	case tea.KeyMsg:
		if !d.focused {
			return d, nil
		}
		return d.handleKey(msg)
	}

	// Cursor blink, paste results and friends
	return d.updateInput(msg)
}

func (d DropdownInput) handleKey(msg tea.KeyMsg) (DropdownInput, tea.Cmd) {
	switch {
	case key.Matches(msg, d.keys.Up):
		d.moveActive(-1)
		return d, nil
	case key.Matches(msg, d.keys.Down):
		d.moveActive(1)
		return d, nil
	case key.Matches(msg, d.keys.Enter):
		return d.commitEnter()
	case key.Matches(msg, d.keys.Escape):
		if !d.open {
			return d, dismissedCmd(d.cfg.ID)
		}
		d.setOpen(false)
		return d, nil
	}

	return d.updateInput(msg)
}

// updateInput forwards msg to the text input and reports a text change
// if the value moved.
func (d DropdownInput) updateInput(msg tea.Msg) (DropdownInput, tea.Cmd) {
	before := d.input.Value()
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	if after := d.input.Value(); after != before {
		changed := d.textChanged(after)
		return d, tea.Batch(cmd, changed)
	}
	return d, cmd
}

// textChanged opens the list and drops the highlight, since it pointed
// into a filtered view that no longer exists.
func (d *DropdownInput) textChanged(text string) tea.Cmd {
	d.activeIndex = -1
	d.scrollOffset = 0
	d.setOpen(true)
	if d.cfg.OnChange != nil {
		d.cfg.OnChange(ChangeEvent{Value: text})
	}
	return changedCmd(d.cfg.ID, text)
}

// moveActive steps the highlight circularly, skipping disabled items.
// Down from no highlight lands on the first item; up lands on the last.
func (d *DropdownInput) moveActive(step int) {
	items := d.filtered()
	n := len(items)
	if n == 0 {
		return
	}
	i := d.activeIndex
	for range n {
		if step > 0 {
			i = (i + 1) % n
		} else if i <= 0 {
			i = n - 1
		} else {
			i--
		}
		if !items[i].Disabled {
			d.activeIndex = i
			d.adjustScrollOffset(n)
			return
		}
	}
}

// commitEnter resolves what Enter selects, in priority order: the
// highlighted item, an option equal to the typed text, the only suggestion
// of an open list, the typed text. A closed list never rewrites the text
// unless it equals an option.
func (d DropdownInput) commitEnter() (DropdownInput, tea.Cmd) {
	items := d.filtered()
	wasOpen := d.open
	text := d.input.Value()

	var value string
	var index int
	if d.activeIndex >= 0 && d.activeIndex < len(items) {
		value, index = items[d.activeIndex].Value, d.activeIndex
		d.setOpen(false)
	} else if exact := indexOfFold(d.cfg.Options, text); d.activeIndex == -1 && exact >= 0 {
		value, index = d.cfg.Options.At(exact), exact
		d.setOpen(false)
	} else if wasOpen && d.activeIndex == -1 && text != "" && len(items) == 1 && !items[0].Disabled {
		// Sole visible suggestion; index is its filtered position, as for a highlight
		value, index = items[0].Value, 0
		d.setOpen(false)
	} else {
		value, index = text, d.activeIndex
	}
	cmd := d.commit(value, index, !wasOpen)
	return d, cmd
}

// HoverOption makes the item at position i of the filtered view active.
// Disabled and out-of-range items are ignored.
func (d *DropdownInput) HoverOption(i int) {
	items := d.filtered()
	if i < 0 || i >= len(items) || items[i].Disabled {
		return
	}
	d.activeIndex = i
}

// SelectOption commits the item at position i of the filtered view, as a
// click on it would.
func (d DropdownInput) SelectOption(i int) (DropdownInput, tea.Cmd) {
	items := d.filtered()
	if i < 0 || i >= len(items) || items[i].Disabled {
		return d, nil
	}
	d.setOpen(false)
	cmd := d.commit(items[i].Value, i, false)
	return d, cmd
}

// ClickInput handles a click on the input box: an unfocused input takes
// focus (which opens the list), a focused one toggles the list.
func (d *DropdownInput) ClickInput() tea.Cmd {
	if !d.focused {
		return d.Focus()
	}
	d.setOpen(!d.open)
	return nil
}

func (d *DropdownInput) commit(value string, index int, submit bool) tea.Cmd {
	d.input.SetValue(value)
	d.input.CursorEnd()
	d.activeIndex = -1
	d.scrollOffset = 0

	debug.Log("dropdown commit", "id", d.cfg.ID, "value", value, "index", index, "submit", submit)

	if d.cfg.OnSelect != nil {
		d.cfg.OnSelect(SelectEvent{Value: value, Index: index})
	}
	if d.cfg.OnChange != nil {
		d.cfg.OnChange(ChangeEvent{Value: value})
	}
	return tea.Sequence(
		selectedCmd(d.cfg.ID, value, index, submit),
		changedCmd(d.cfg.ID, value),
	)
}

func (d *DropdownInput) setOpen(open bool) {
	if d.open == open {
		return
	}
	d.open = open
	debug.Log("dropdown toggled", "id", d.cfg.ID, "open", open)
}

// adjustScrollOffset keeps the active item inside the visible window.
func (d *DropdownInput) adjustScrollOffset(n int) {
	if d.activeIndex < 0 {
		return
	}
	if d.activeIndex < d.scrollOffset {
		d.scrollOffset = d.activeIndex
	}
	if d.activeIndex >= d.scrollOffset+d.cfg.MaxHeight {
		d.scrollOffset = d.activeIndex - d.cfg.MaxHeight + 1
	}
	d.scrollOffset = clampOffset(d.scrollOffset, n, d.cfg.MaxHeight)
}

func clampOffset(offset, n, visible int) int {
	maxOffset := n - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// filtered recomputes the filtered view for the current text.
func (d DropdownInput) filtered() []Item {
	return Filtered(d.cfg.Options, d.input.Value(), d.cfg.Filter, d.cfg.Disabled)
}

// Focus focuses the input and opens the list. Returns the cursor blink command.
func (d *DropdownInput) Focus() tea.Cmd {
	d.focused = true
	d.setOpen(true)
	return d.input.Focus()
}

// Blur removes focus and closes the list.
func (d *DropdownInput) Blur() {
	d.focused = false
	d.setOpen(false)
	d.input.Blur()
}

// Focused returns whether the input has focus.
func (d DropdownInput) Focused() bool {
	return d.focused
}

// IsDropdownOpen returns whether the list is open. An open list with no
// matching options still renders nothing.
func (d DropdownInput) IsDropdownOpen() bool {
	return d.open
}

// Value returns the current text.
func (d DropdownInput) Value() string {
	return d.input.Value()
}

// SetValue replaces the text without firing callbacks.
func (d *DropdownInput) SetValue(v string) {
	d.input.SetValue(v)
	d.input.CursorEnd()
	d.activeIndex = -1
	d.scrollOffset = 0
}

// SetOptions replaces the option collection. A PrefixIndex filter built for
// the old collection must be rebuilt by the caller.
func (d *DropdownInput) SetOptions(c Collection) {
	if c == nil {
		c = Strings(nil)
	}
	d.cfg.Options = c
	d.activeIndex = -1
	d.scrollOffset = 0
}

// Options returns the option collection.
func (d DropdownInput) Options() Collection {
	return d.cfg.Options
}

// ActiveIndex returns the highlighted position in the filtered view, or -1.
func (d DropdownInput) ActiveIndex() int {
	return d.activeIndex
}

// FilteredOptions returns the filtered view for the current text.
func (d DropdownInput) FilteredOptions() []Item {
	return d.filtered()
}

// KeyMap returns the active key bindings, e.g. for a help bar.
func (d DropdownInput) KeyMap() KeyMap {
	return d.keys
}

// SetOrigin records where the widget's top-left corner is drawn on screen.
// Mouse coordinates are interpreted relative to it.
func (d *DropdownInput) SetOrigin(x, y int) {
	d.originX, d.originY = x, y
}
