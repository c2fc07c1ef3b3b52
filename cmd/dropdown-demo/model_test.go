package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dropdown/internal/config"
	"dropdown/internal/debug"
	"dropdown/internal/ui"
	"dropdown/internal/ui/theme"
)

func newTestModel() model {
	return newModel(ui.Config{ID: "demo", Options: sampleOptions}, "plain")
}

func update(m model, msg tea.Msg) (model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(model), cmd
}

func TestSelectedMsg(t *testing.T) {
	t.Run("ListSelectionKeepsRunning", func(t *testing.T) {
		m, cmd := update(newTestModel(), ui.SelectedMsg{ID: "demo", Value: "Fig", Index: 0})
		assert.Nil(t, cmd)
		assert.Equal(t, "Fig", m.committed)
		assert.False(t, m.quitting)
		assert.Contains(t, m.status, "Fig")
	})

	t.Run("SubmitQuits", func(t *testing.T) {
		m, cmd := update(newTestModel(), ui.SelectedMsg{ID: "demo", Value: "Kiwi", Index: -1, Submit: true})
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.True(t, m.quitting)
		assert.Equal(t, "Kiwi", m.committed)
		assert.Empty(t, m.View())
	})
}

func TestDismissedMsgQuitsWithoutValue(t *testing.T) {
	m, _ := update(newTestModel(), ui.SelectedMsg{ID: "demo", Value: "Fig", Index: 0})

	m, cmd := update(m, ui.DismissedMsg{ID: "demo"})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.quitting)
	assert.Empty(t, m.committed)
}

func TestEscapeTwiceCancels(t *testing.T) {
	m := newTestModel()
	m, cmd := update(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	require.False(t, m.dropdown.IsDropdownOpen())

	m, cmd = update(m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	m, cmd = update(m, cmd())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.quitting)
}

func TestStartDebugReportsLogPath(t *testing.T) {
	t.Cleanup(config.ResetForTesting(t))
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Cleanup(func() {
		debug.Close()
		_ = debug.Init(false)
	})

	var out bytes.Buffer
	startDebug(&out)

	require.True(t, debug.Enabled())
	logPath := filepath.Join(home, debug.LogDirName, debug.LogFileName)
	assert.Equal(t, "Debug log: "+logPath+"\n", out.String())

	_, err := widgetConfig(context.Background())
	require.NoError(t, err)
	debug.Close()
	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "loaded 20 options")
}

func TestWidgetConfig(t *testing.T) {
	t.Cleanup(config.ResetForTesting(t))

	t.Run("SampleOptions", func(t *testing.T) {
		cfg, err := widgetConfig(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "demo", cfg.ID)
		assert.Equal(t, sampleOptions.Len(), cfg.Options.Len())
		assert.Equal(t, config.DefaultWidth, cfg.Width)
		assert.Equal(t, config.DefaultMaxHeight, cfg.MaxHeight)
		assert.NotNil(t, cfg.Filter)
	})

	t.Run("OptionsFileAndOverrides", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "fruit.txt")
		require.NoError(t, os.WriteFile(path, []byte("Plum\nPear\n"), 0o600))
		require.NoError(t, config.ApplyOverrides(map[string]any{
			config.KeyOptionsPath: path,
			config.KeyFilter:      "prefix",
			config.KeyDropup:      true,
			config.KeyListWidth:   25,
		}))

		cfg, err := widgetConfig(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, cfg.Options.Len())
		assert.Equal(t, "Pear", cfg.Options.At(1))
		assert.True(t, cfg.Dropup)
		assert.Equal(t, 25, cfg.ListWidth)
	})

	t.Run("UnknownFilter", func(t *testing.T) {
		require.NoError(t, config.ApplyOverrides(map[string]any{config.KeyFilter: "regex"}))
		_, err := widgetConfig(context.Background())
		assert.Error(t, err)
	})
}

func TestCopyValue(t *testing.T) {
	var copied string
	prev := writeClipboard
	writeClipboard = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { writeClipboard = prev })

	m := newTestModel()
	m, _ = update(m, ui.SelectedMsg{Value: "Mango"})
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyCtrlY})

	assert.Equal(t, "Mango", copied)
	assert.Contains(t, m.status, "Copied")

	t.Run("Failure", func(t *testing.T) {
		writeClipboard = func(string) error { return errors.New("no clipboard") }
		m, _ := update(m, tea.KeyMsg{Type: tea.KeyCtrlY})
		assert.Equal(t, "Copy failed: no clipboard", m.status)
	})
}

func TestThemeKeyCyclesAndSaves(t *testing.T) {
	t.Cleanup(config.ResetForTesting(t))
	start := theme.CurrentName()
	t.Cleanup(func() { theme.SetTheme(start) })

	m, _ := update(newTestModel(), tea.KeyMsg{Type: tea.KeyCtrlT})

	assert.NotEqual(t, start, theme.CurrentName())
	assert.Equal(t, theme.CurrentName(), config.GetString(config.KeyTheme))
	assert.Equal(t, "Theme: "+theme.CurrentName(), m.status)
}

func TestKeysReachDropdown(t *testing.T) {
	m := newTestModel()
	require.True(t, m.dropdown.IsDropdownOpen())

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, m.dropdown.ActiveIndex())

	m, cmd := update(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "Apple", m.dropdown.Value())
	require.NotNil(t, cmd)
}

func TestMouseUsesScreenOrigin(t *testing.T) {
	m := newTestModel()
	// Input box rows are originY..originY+2; the first option follows.
	m, _ = update(m, tea.MouseMsg{X: originX + 3, Y: originY + 4, Action: tea.MouseActionMotion})
	assert.Equal(t, 1, m.dropdown.ActiveIndex())
}

func TestChangedOverrides(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--dropup", "--width", "30", "--filter", "fuzzy"}))

	got := changedOverrides(cmd)
	assert.Equal(t, map[string]any{
		config.KeyDropup: true,
		config.KeyWidth:  30,
		config.KeyFilter: "fuzzy",
	}, got)

	assert.Empty(t, changedOverrides(&cobra.Command{}))
}

func TestVersionFlag(t *testing.T) {
	cmd := newRootCmd()
	var out strings.Builder
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "dropdown-demo version dev")
	assert.Contains(t, out.String(), "Go version:")
}

func TestUsagePanel(t *testing.T) {
	m := newTestModel()
	assert.NotContains(t, m.View(), "Toggle this panel")

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyF1})
	assert.True(t, m.showUsage)
	assert.Contains(t, m.View(), "Toggle this panel")

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyF1})
	assert.False(t, m.showUsage)
}

func TestBuildMarkdownRenderer(t *testing.T) {
	plain := buildMarkdownRenderer("plain", 20)
	out := plain("one two three four five six seven")
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len(line), 20)
	}

	rich := buildMarkdownRenderer("", 40)
	assert.Contains(t, ansi.Strip(rich("# Title")), "Title")
}
