package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

// asciiProfile renders without colors for the duration of t.
func asciiProfile(t *testing.T) {
	t.Helper()
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
}

func stripANSI(s string) string {
	return ansi.Strip(s)
}

func TestTruncateLine(t *testing.T) {
	assert.Equal(t, "short", truncateLine("short", 10))
	assert.Equal(t, "Superca…", truncateLine("Supercalifragilistic", 8))
	assert.Equal(t, "anything", truncateLine("anything", 0))

	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
	styled := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render("Supercalifragilistic")
	got := truncateLine(styled, 8)
	assert.Equal(t, 8, ansi.StringWidth(got))
	assert.Equal(t, "Superca…", stripANSI(got))
}

func TestIndentLines(t *testing.T) {
	assert.Equal(t, "  a\n  b", indentLines("a\nb", 2))
	assert.Equal(t, "a\nb", indentLines("a\nb", 0))
}
