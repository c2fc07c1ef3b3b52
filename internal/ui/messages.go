package ui

import tea "github.com/charmbracelet/bubbletea"

// ChangeEvent is passed to Config.OnChange whenever the displayed text changes.
type ChangeEvent struct {
	Value string
}

// SelectEvent is passed to Config.OnSelect when a selection is committed.
// Index is the position in the filtered view for highlighted or clicked
// items, the position in the full collection for an exact typed match, and
// -1 for free text.
type SelectEvent struct {
	Value string
	Index int
}

// ChangedMsg mirrors ChangeEvent for parent models.
type ChangedMsg struct {
	ID    string
	Value string
}

// SelectedMsg mirrors SelectEvent for parent models.
// Submit is false when Enter was consumed by an open dropdown, so hosts
// should not treat that key press as a form submission.
type SelectedMsg struct {
	ID     string
	Value  string
	Index  int
	Submit bool
}

// DismissedMsg is emitted when Esc is pressed while the list is already
// closed. An open list consumes Esc to close itself.
type DismissedMsg struct {
	ID string
}

func dismissedCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return DismissedMsg{ID: id}
	}
}

func changedCmd(id, value string) tea.Cmd {
	return func() tea.Msg {
		return ChangedMsg{ID: id, Value: value}
	}
}

func selectedCmd(id, value string, index int, submit bool) tea.Cmd {
	return func() tea.Msg {
		return SelectedMsg{ID: id, Value: value, Index: index, Submit: submit}
	}
}
