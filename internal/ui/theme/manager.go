package theme

import (
	"sort"
	"sync"
)

var globalManager = &manager{
	themes: make(map[string]Palette),
}

type manager struct {
	mu          sync.RWMutex
	themes      map[string]Palette
	currentName string
	current     Palette
}

// RegisterTheme adds a palette to the registry.
// The first registered palette becomes the default.
func RegisterTheme(name string, p Palette) {
	globalManager.mu.Lock()
	defer globalManager.mu.Unlock()
	globalManager.themes[name] = p
	if globalManager.currentName == "" {
		globalManager.currentName = name
		globalManager.current = p
	}
}

// SetTheme switches to a registered palette by name.
// Returns true if the palette was found and set.
func SetTheme(name string) bool {
	globalManager.mu.Lock()
	defer globalManager.mu.Unlock()
	if p, ok := globalManager.themes[name]; ok {
		globalManager.currentName = name
		globalManager.current = p
		return true
	}
	return false
}

// Current returns the active palette.
func Current() Palette {
	globalManager.mu.RLock()
	defer globalManager.mu.RUnlock()
	return globalManager.current
}

// CurrentName returns the name of the active palette.
func CurrentName() string {
	globalManager.mu.RLock()
	defer globalManager.mu.RUnlock()
	return globalManager.currentName
}

// Available returns all registered palette names in sorted order.
func Available() []string {
	globalManager.mu.RLock()
	defer globalManager.mu.RUnlock()
	return globalManager.sortedNames()
}

// CycleTheme switches to the next palette in sorted order and returns its name.
func CycleTheme() string {
	globalManager.mu.Lock()
	defer globalManager.mu.Unlock()

	names := globalManager.sortedNames()
	if len(names) == 0 {
		return ""
	}

	next := 0
	for i, name := range names {
		if name == globalManager.currentName {
			next = (i + 1) % len(names)
			break
		}
	}
	globalManager.currentName = names[next]
	globalManager.current = globalManager.themes[names[next]]
	return names[next]
}

// sortedNames must be called with mu held.
func (m *manager) sortedNames() []string {
	names := make([]string, 0, len(m.themes))
	for name := range m.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
