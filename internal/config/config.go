// Package config loads dropdown settings with viper. Sources are merged in
// the order defaults < user file < project file < DROPDOWN_* environment <
// overrides (command-line flags).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	apperrors "dropdown/internal/errors"
)

const (
	KeyTheme = "theme"
	KeyDebug = "debug"

	KeyFilter      = "dropdown.filter"
	KeyWidth       = "dropdown.width"
	KeyMaxHeight   = "dropdown.max-height"
	KeyListWidth   = "dropdown.list-width"
	KeyPullRight   = "dropdown.pull-right"
	KeyDropup      = "dropdown.dropup"
	KeyPlaceholder = "dropdown.placeholder"

	KeyOptionsPath  = "options.path"
	KeyOptionsTable = "options.table"

	// KeyHelpStyle selects the usage panel renderer (dark, light, plain).
	KeyHelpStyle = "demo.help-style"
)

const (
	// DefaultMaxHeight is the number of option rows shown before the menu scrolls.
	DefaultMaxHeight = 5
	// DefaultWidth is the input box width in columns, border included.
	DefaultWidth = 40
	// MinWidth is the narrowest input box that still leaves room for text.
	MinWidth = 10

	configDirName  = ".dropdown"
	configFileName = "config.yaml"
	envPrefix      = "DROPDOWN"
)

var defaults = map[string]any{
	KeyTheme:        "tokyonight",
	KeyDebug:        false,
	KeyFilter:       "substring",
	KeyWidth:        DefaultWidth,
	KeyMaxHeight:    DefaultMaxHeight,
	KeyListWidth:    0,
	KeyPullRight:    false,
	KeyDropup:       false,
	KeyPlaceholder:  "",
	KeyOptionsPath:  "",
	KeyOptionsTable: "options",
	KeyHelpStyle:    "dark",
}

// Paths locates the files merged by Initialize. Empty fields are discovered:
// User is ~/.dropdown/config.yaml, Project is the nearest
// .dropdown/config.yaml at or above WorkingDir (the process working
// directory when empty).
type Paths struct {
	WorkingDir string
	User       string
	Project    string
}

var (
	mu      sync.RWMutex
	once    sync.Once
	inst    *viper.Viper
	loaded  Paths
	initErr error
)

// Initialize loads the configuration once. Later calls return the first
// result; getters call it with zero Paths on demand.
func Initialize(p Paths) error {
	once.Do(func() {
		initErr = load(p)
	})
	return initErr
}

func load(p Paths) error {
	resolved, err := p.resolve()
	if err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	for _, path := range []string{resolved.User, resolved.Project} {
		if err := mergeFile(v, path); err != nil {
			return err
		}
	}
	if err := validate(v); err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	inst, loaded = v, resolved
	return nil
}

func (p Paths) resolve() (Paths, error) {
	if p.WorkingDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return p, fmt.Errorf("determine working directory: %w", err)
		}
		p.WorkingDir = wd
	}
	if p.User == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return p, fmt.Errorf("determine user home: %w", err)
		}
		p.User = filepath.Join(home, configDirName, configFileName)
	}
	if p.Project == "" {
		found, err := findProjectConfig(p.WorkingDir)
		if err != nil {
			return p, err
		}
		p.Project = found
	}
	return p, nil
}

// mergeFile merges path into v. Missing files are skipped.
func mergeFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return apperrors.New(apperrors.CodeConfigurationError,
			fmt.Sprintf("config path %s is a directory", path), nil)
	}
	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil {
		return apperrors.New(apperrors.CodeConfigurationError, "parse "+path, err)
	}
	return nil
}

// findProjectConfig walks up from dir and returns "" when nothing is found.
func findProjectConfig(dir string) (string, error) {
	for {
		candidate := filepath.Join(dir, configDirName, configFileName)
		info, err := os.Stat(candidate)
		switch {
		case err == nil && !info.IsDir():
			return candidate, nil
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			return "", fmt.Errorf("stat %s: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// validate rejects sizing values the widget cannot lay out.
func validate(v *viper.Viper) error {
	if h := v.GetInt(KeyMaxHeight); h < 1 {
		return apperrors.New(apperrors.CodeConfigurationError,
			fmt.Sprintf("%s must be at least 1, got %d", KeyMaxHeight, h), nil)
	}
	if w := v.GetInt(KeyWidth); w < MinWidth {
		return apperrors.New(apperrors.CodeConfigurationError,
			fmt.Sprintf("%s must be at least %d, got %d", KeyWidth, MinWidth, w), nil)
	}
	if w := v.GetInt(KeyListWidth); w < 0 {
		return apperrors.New(apperrors.CodeConfigurationError,
			fmt.Sprintf("%s must not be negative, got %d", KeyListWidth, w), nil)
	}
	return nil
}

// ApplyOverrides injects values coming from command-line flags. The merged
// result is validated; an invalid override leaves the previous values in place.
func ApplyOverrides(overrides map[string]any) error {
	if len(overrides) == 0 {
		return nil
	}
	if err := Initialize(Paths{}); err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	previous := make(map[string]any, len(overrides))
	for k, val := range overrides {
		previous[k] = inst.Get(k)
		inst.Set(k, val)
	}
	if err := validate(inst); err != nil {
		for k, val := range previous {
			inst.Set(k, val)
		}
		return err
	}
	return nil
}

func get[T any](key string, read func(*viper.Viper, string) T) T {
	var zero T
	if err := Initialize(Paths{}); err != nil {
		return zero
	}
	mu.RLock()
	defer mu.RUnlock()
	return read(inst, key)
}

// GetString returns a string setting, or "" when configuration failed to load.
func GetString(key string) string { return get(key, (*viper.Viper).GetString) }

// GetBool returns a bool setting.
func GetBool(key string) bool { return get(key, (*viper.Viper).GetBool) }

// GetInt returns an int setting.
func GetInt(key string) int { return get(key, (*viper.Viper).GetInt) }

// Dropdown is the widget section of the configuration.
type Dropdown struct {
	Filter      string
	Placeholder string
	Width       int
	MaxHeight   int
	ListWidth   int
	PullRight   bool
	Dropup      bool
}

// DropdownSettings reads the dropdown.* keys.
func DropdownSettings() Dropdown {
	return Dropdown{
		Filter:      GetString(KeyFilter),
		Placeholder: GetString(KeyPlaceholder),
		Width:       GetInt(KeyWidth),
		MaxHeight:   GetInt(KeyMaxHeight),
		ListWidth:   GetInt(KeyListWidth),
		PullRight:   GetBool(KeyPullRight),
		Dropup:      GetBool(KeyDropup),
	}
}

// OptionSource reads the options.* keys: the source file and SQLite table.
func OptionSource() (path, table string) {
	return GetString(KeyOptionsPath), GetString(KeyOptionsTable)
}

// SaveTheme records the theme in the project config when one was loaded,
// otherwise in the user config, keeping the file's other settings. The
// running configuration is updated as well.
func SaveTheme(name string) error {
	if err := Initialize(Paths{}); err != nil {
		return err
	}
	mu.RLock()
	target := loaded.Project
	if target == "" {
		target = loaded.User
	}
	mu.RUnlock()

	file := viper.New()
	file.SetConfigFile(target)
	if _, err := os.Stat(target); err == nil {
		if err := file.ReadInConfig(); err != nil {
			return apperrors.New(apperrors.CodeConfigurationError, "parse "+target, err)
		}
	}
	file.Set(KeyTheme, name)

	//nolint:gosec // G301: User config directory needs standard permissions
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := file.WriteConfigAs(target); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	inst.Set(KeyTheme, name)
	return nil
}

func reset() {
	mu.Lock()
	defer mu.Unlock()
	inst, loaded, initErr = nil, Paths{}, nil
	once = sync.Once{}
}

// ResetForTesting loads defaults with every config file under a temp
// directory, so tests in other packages never touch the real home. Returns
// the cleanup function.
func ResetForTesting(t interface{ TempDir() string }) func() {
	reset()
	tmp := t.TempDir()
	_ = Initialize(Paths{WorkingDir: tmp, User: filepath.Join(tmp, configFileName)})
	return reset
}
