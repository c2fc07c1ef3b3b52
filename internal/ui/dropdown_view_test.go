package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func viewLines(d DropdownInput) []string {
	return strings.Split(stripANSI(d.View()), "\n")
}

func TestViewClosedShowsOnlyInput(t *testing.T) {
	asciiProfile(t)
	d := NewDropdownInput(Config{Options: fruit, Width: 20, DefaultValue: "Apple"})

	lines := viewLines(d)
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "╭"))
	assert.Contains(t, lines[1], "Apple")
	assert.Equal(t, 20, lipgloss.Width(lines[0]))
}

func TestViewOpenListsFilteredOptions(t *testing.T) {
	asciiProfile(t)
	d, _ := newFocused(t, Config{Options: fruit, Width: 20})
	d, _ = press(d, tea.KeyDown)
	d, _ = press(d, tea.KeyDown)

	lines := viewLines(d)
	require.Len(t, lines, 6)
	assert.Equal(t, "  Apple", strings.TrimRight(lines[3], " "))
	assert.Equal(t, "▸ Banana", strings.TrimRight(lines[4], " "))
	assert.Equal(t, "  Cherry", strings.TrimRight(lines[5], " "))
	for _, l := range lines[3:] {
		assert.Equal(t, 20, lipgloss.Width(l))
	}
}

func TestViewHidesEmptyList(t *testing.T) {
	asciiProfile(t)
	d, _ := newFocused(t, Config{Options: fruit, Width: 20})
	d = typeText(d, "zzz")
	require.True(t, d.IsDropdownOpen())

	assert.Len(t, viewLines(d), 3)
}

func TestViewDropup(t *testing.T) {
	asciiProfile(t)
	d, _ := newFocused(t, Config{Options: fruit, Width: 20, Dropup: true})

	lines := viewLines(d)
	require.Len(t, lines, 6)
	assert.Contains(t, lines[0], "Apple")
	assert.Contains(t, lines[2], "Cherry")
	assert.True(t, strings.HasPrefix(lines[3], "╭"))
	assert.True(t, strings.HasPrefix(lines[5], "╰"))
}

func TestViewPullRight(t *testing.T) {
	asciiProfile(t)
	d, _ := newFocused(t, Config{Options: fruit, Width: 20, ListWidth: 12, PullRight: true})

	lines := viewLines(d)
	require.Len(t, lines, 6)
	for _, l := range lines[3:] {
		assert.True(t, strings.HasPrefix(l, strings.Repeat(" ", 8)), "menu is right-aligned: %q", l)
		assert.Equal(t, 20, lipgloss.Width(l))
	}

	t.Run("LeftAlignedByDefault", func(t *testing.T) {
		d, _ := newFocused(t, Config{Options: fruit, Width: 20, ListWidth: 12})
		lines := viewLines(d)
		assert.True(t, strings.HasPrefix(lines[3], "  Apple"))
	})
}

func TestViewScrollHints(t *testing.T) {
	asciiProfile(t)
	opts := Strings{"a1", "a2", "a3", "a4", "a5", "a6"}
	d, _ := newFocused(t, Config{Options: opts, Width: 20, MaxHeight: 3})

	plain := stripANSI(d.View())
	assert.Contains(t, plain, "a3")
	assert.NotContains(t, plain, "a4")
	assert.NotContains(t, plain, "more above")
	assert.Contains(t, plain, "more below")

	d = pressN(d, tea.KeyDown, 6)
	plain = stripANSI(d.View())
	assert.Contains(t, plain, "more above")
	assert.NotContains(t, plain, "more below")
	assert.Contains(t, plain, "▸ a6")
	assert.NotContains(t, plain, "a3")
}

func TestViewTruncatesLongOptions(t *testing.T) {
	asciiProfile(t)
	d, _ := newFocused(t, Config{Options: Strings{"Supercalifragilisticexpialidocious"}, Width: 20, ListWidth: 12})

	lines := viewLines(d)
	require.Len(t, lines, 4)
	assert.Equal(t, "  Supercali…", strings.TrimRight(lines[3], " "))
}

func TestViewStyleHooks(t *testing.T) {
	asciiProfile(t)
	d, _ := newFocused(t, Config{
		Options:    fruit,
		Width:      20,
		InputStyle: func(s lipgloss.Style) lipgloss.Style { return s.BorderStyle(lipgloss.NormalBorder()) },
		MenuStyle:  func(s lipgloss.Style) lipgloss.Style { return s.PaddingLeft(1) },
	})

	lines := viewLines(d)
	assert.True(t, strings.HasPrefix(lines[0], "┌"))
	assert.True(t, strings.HasPrefix(lines[3], "   Apple"))
}
