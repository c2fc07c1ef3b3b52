package ui

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/tchap/go-patricia/v2/patricia"

	apperrors "dropdown/internal/errors"
)

// FilterFunc reports whether the option value at index (its position in the
// full collection) should be shown for the typed text.
type FilterFunc func(text, value string, index int) bool

// Filter names accepted by FilterByName.
const (
	FilterSubstring = "substring"
	FilterPrefix    = "prefix"
	FilterFuzzy     = "fuzzy"
)

// DefaultFilter matches options containing text, ignoring case.
func DefaultFilter(text, value string, _ int) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(text))
}

// FuzzyFilter matches options containing the characters of text in order,
// ignoring case.
func FuzzyFilter(text, value string, _ int) bool {
	if text == "" {
		return true
	}
	return len(fuzzy.Find(strings.ToLower(text), []string{strings.ToLower(value)})) > 0
}

// FilterByName resolves a configured filter name. Prefix filtering needs the
// collection up front to build its index.
func FilterByName(name string, c Collection) (FilterFunc, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", FilterSubstring:
		return DefaultFilter, nil
	case FilterPrefix:
		return NewPrefixIndex(c).Filter, nil
	case FilterFuzzy:
		return FuzzyFilter, nil
	}
	return nil, apperrors.New(apperrors.CodeUnknownFilter,
		fmt.Sprintf("unknown filter %q (want %s, %s or %s)", name, FilterSubstring, FilterPrefix, FilterFuzzy), nil)
}

// PrefixIndex matches options whose lowercased value starts with the typed
// text. Options are indexed once in a patricia trie; the match set of the
// last query is cached since the filter is asked once per option.
type PrefixIndex struct {
	trie *patricia.Trie

	lastText string
	lastHits map[int]struct{}
	cached   bool
}

// NewPrefixIndex indexes every option of c.
func NewPrefixIndex(c Collection) *PrefixIndex {
	trie := patricia.NewTrie()
	if c != nil {
		for i := 0; i < c.Len(); i++ {
			key := patricia.Prefix(strings.ToLower(c.At(i)))
			if existing := trie.Get(key); existing != nil {
				trie.Set(key, append(existing.([]int), i))
				continue
			}
			trie.Insert(key, []int{i})
		}
	}
	return &PrefixIndex{trie: trie}
}

// Filter implements FilterFunc.
func (p *PrefixIndex) Filter(text, _ string, index int) bool {
	if text == "" {
		return true
	}
	hits := p.lookup(strings.ToLower(text))
	_, ok := hits[index]
	return ok
}

func (p *PrefixIndex) lookup(prefix string) map[int]struct{} {
	if p.cached && p.lastText == prefix {
		return p.lastHits
	}
	hits := make(map[int]struct{})
	_ = p.trie.VisitSubtree(patricia.Prefix(prefix), func(_ patricia.Prefix, item patricia.Item) error {
		for _, i := range item.([]int) {
			hits[i] = struct{}{}
		}
		return nil
	})
	p.lastText, p.lastHits, p.cached = prefix, hits, true
	return hits
}

// Item is one entry of the filtered view.
type Item struct {
	Value    string
	Index    int // position in the full collection
	Disabled bool
}

// Filtered returns the options of c accepted by filter for text, in
// collection order. A nil filter means DefaultFilter.
func Filtered(c Collection, text string, filter FilterFunc, disabled func(value string, index int) bool) []Item {
	if c == nil {
		return nil
	}
	if filter == nil {
		filter = DefaultFilter
	}
	var items []Item
	for i := 0; i < c.Len(); i++ {
		v := c.At(i)
		if !filter(text, v, i) {
			continue
		}
		items = append(items, Item{
			Value:    v,
			Index:    i,
			Disabled: disabled != nil && disabled(v, i),
		})
	}
	return items
}
