// Command dropdown-demo runs a DropdownInput against an option source.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"dropdown/internal/config"
	"dropdown/internal/debug"
	"dropdown/internal/source"
	"dropdown/internal/ui"
	"dropdown/internal/ui/theme"
)

var sampleOptions = ui.Strings{
	"Apple", "Apricot", "Avocado", "Banana", "Blackberry", "Blueberry",
	"Cherry", "Coconut", "Cranberry", "Date", "Dragonfruit", "Elderberry",
	"Fig", "Grape", "Grapefruit", "Guava", "Kiwi", "Lemon", "Lime", "Mango",
}

// flagKeys maps command-line flags to the config keys they override.
var flagKeys = map[string]string{
	"theme":       config.KeyTheme,
	"debug":       config.KeyDebug,
	"filter":      config.KeyFilter,
	"width":       config.KeyWidth,
	"max-height":  config.KeyMaxHeight,
	"list-width":  config.KeyListWidth,
	"pull-right":  config.KeyPullRight,
	"dropup":      config.KeyDropup,
	"placeholder": config.KeyPlaceholder,
	"options":     config.KeyOptionsPath,
	"table":       config.KeyOptionsTable,
	"help-style":  config.KeyHelpStyle,
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dropdown-demo",
		Version: Version,
		Short:   "Pick a value from a filterable dropdown.",
		Long: "dropdown-demo shows a text input with a filterable suggestion list.\n" +
			"Options come from a text, TOML or SQLite file, or a built-in fruit list.",
		Example:       "dropdown-demo --options fruit.txt --filter prefix --dropup",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Initialize(config.Paths{}); err != nil {
				return fmt.Errorf("initialize config: %w", err)
			}
			if err := config.ApplyOverrides(changedOverrides(cmd)); err != nil {
				return err
			}
			return run(cmd.Context(), cmd)
		},
	}

	cmd.SetVersionTemplate(versionString())

	f := cmd.Flags()
	f.String("theme", "", "Color theme ("+strings.Join(theme.Available(), ", ")+")")
	f.Bool("debug", false, "Write a debug log to ~/.dropdown/debug.log")
	f.String("filter", ui.FilterSubstring, "Filter mode (substring, prefix, fuzzy)")
	f.Int("width", config.DefaultWidth, "Input width in columns")
	f.Int("max-height", config.DefaultMaxHeight, "Option rows shown before the list scrolls")
	f.Int("list-width", 0, "List width in columns (0 follows --width)")
	f.Bool("pull-right", false, "Align the list with the right edge of the input")
	f.Bool("dropup", false, "Open the list above the input")
	f.String("placeholder", "", "Placeholder text")
	f.String("options", "", "Option source (.txt, .toml, .db)")
	f.String("table", source.DefaultTable, "SQLite table holding the options")
	f.String("help-style", "dark", "Usage panel style (dark, light, plain)")
	return cmd
}

// changedOverrides returns only the flags set on the command line, so
// config files and environment keep precedence over flag defaults.
func changedOverrides(cmd *cobra.Command) map[string]any {
	overrides := map[string]any{}
	f := cmd.Flags()
	for name, key := range flagKeys {
		if !f.Changed(name) {
			continue
		}
		switch name {
		case "debug", "pull-right", "dropup":
			v, _ := f.GetBool(name)
			overrides[key] = v
		case "width", "max-height", "list-width":
			v, _ := f.GetInt(name)
			overrides[key] = v
		default:
			v, _ := f.GetString(name)
			overrides[key] = v
		}
	}
	return overrides
}

func run(ctx context.Context, cmd *cobra.Command) error {
	if config.GetBool(config.KeyDebug) {
		startDebug(cmd.ErrOrStderr())
		defer debug.Close()
	}

	if name := config.GetString(config.KeyTheme); name != "" && !theme.SetTheme(name) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: unknown theme %q, using %s\n", name, theme.CurrentName())
	}

	cfg, err := widgetConfig(ctx)
	if err != nil {
		return err
	}
	m := newModel(cfg, config.GetString(config.KeyHelpStyle))

	prog := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)
	final, err := prog.Run()
	if err != nil {
		return fmt.Errorf("run UI: %w", err)
	}
	if fm, ok := final.(model); ok && fm.committed != "" {
		fmt.Fprintln(cmd.OutOrStdout(), fm.committed)
	}
	return nil
}

// startDebug opens the debug log and tells the user where it is.
func startDebug(w io.Writer) {
	if err := debug.Init(true); err != nil {
		fmt.Fprintf(w, "Warning: debug log disabled: %v\n", err)
		return
	}
	if !debug.Enabled() {
		return
	}
	if path, err := debug.GetLogPath(); err == nil {
		fmt.Fprintf(w, "Debug log: %s\n", path)
	}
}

// widgetConfig builds the dropdown from the dropdown.* and options.* settings.
// Without an options path the built-in fruit list is used.
func widgetConfig(ctx context.Context) (ui.Config, error) {
	settings := config.DropdownSettings()
	path, table := config.OptionSource()

	var options ui.Collection = sampleOptions
	if path != "" {
		loaded, err := source.Load(ctx, path, table)
		if err != nil {
			return ui.Config{}, err
		}
		options = loaded
	}
	debug.Logf("loaded %d options from %q (filter %s)", options.Len(), path, settings.Filter)

	filter, err := ui.FilterByName(settings.Filter, options)
	if err != nil {
		return ui.Config{}, err
	}

	return ui.Config{
		ID:          "demo",
		Options:     options,
		Placeholder: settings.Placeholder,
		Filter:      filter,
		Width:       settings.Width,
		MaxHeight:   settings.MaxHeight,
		ListWidth:   settings.ListWidth,
		PullRight:   settings.PullRight,
		Dropup:      settings.Dropup,
	}, nil
}
