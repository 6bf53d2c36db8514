// Package trie implements a word-occurrence prefix tree that renders through
// the generic tree model. Each node owns a fragment, the number of times the
// fragment occurred as a whole word, and the number of times the fragment or
// any extension of it occurred.
package trie

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/olivercalder/simple-tree/internal/tree"
)

// SortOption selects the order in which a node returns its children.
type SortOption string

const (
	// SortValue orders children lexicographically by fragment.
	SortValue SortOption = "value"
	// SortValueReversed orders children lexicographically by fragment, reversed.
	SortValueReversed SortOption = "value-desc"
	// SortCountAscending orders children by direct occurrence count, least first.
	SortCountAscending SortOption = "count"
	// SortCountDescending orders children by direct occurrence count, greatest first.
	SortCountDescending SortOption = "count-desc"
	// SortTotalAscending orders children by total occurrence count, least first.
	SortTotalAscending SortOption = "total"
	// SortTotalDescending orders children by total occurrence count, greatest first.
	SortTotalDescending SortOption = "total-desc"
)

// DisplayData selects the figure appended to a fragment label.
type DisplayData string

const (
	// DisplayNone appends nothing to the fragment.
	DisplayNone DisplayData = "none"
	// DisplayCount appends the direct occurrence count.
	DisplayCount DisplayData = "count"
	// DisplayTotal appends the total occurrence count.
	DisplayTotal DisplayData = "total"
)

const (
	incompatiblePrefixMessage = "cannot add word to node with incompatible prefix"

	invalidSortOptionFormat  = "invalid sort option '%s'"
	invalidDisplayDataFormat = "invalid display value '%s'"

	labelDataFormat = "%s\t%d"
)

// ParseSortOption validates a sort option name supplied by a user.
func ParseSortOption(value string) (SortOption, error) {
	switch SortOption(value) {
	case SortValue, SortValueReversed, SortCountAscending, SortCountDescending, SortTotalAscending, SortTotalDescending:
		return SortOption(value), nil
	}
	return "", fmt.Errorf(invalidSortOptionFormat, value)
}

// ParseDisplayData validates a display data name supplied by a user.
func ParseDisplayData(value string) (DisplayData, error) {
	switch DisplayData(value) {
	case DisplayNone, DisplayCount, DisplayTotal:
		return DisplayData(value), nil
	}
	return "", fmt.Errorf(invalidDisplayDataFormat, value)
}

// Trie is one node of a word-occurrence prefix tree. The root carries an
// empty fragment; construct roots with New, NewWithOptions, or FromWords.
type Trie struct {
	fragment    string
	count       int
	totalCount  int
	children    map[rune]*Trie
	sortOption  SortOption
	displayData DisplayData
}

var _ tree.Node = (*Trie)(nil)

// New returns an empty root that sorts children by fragment and displays
// direct occurrence counts.
func New() *Trie {
	return NewWithOptions(SortValue, DisplayCount)
}

// NewWithOptions returns an empty root with the given sort option and display data.
func NewWithOptions(sortOption SortOption, displayData DisplayData) *Trie {
	return newWithFragment("", sortOption, displayData)
}

// FromWords returns a root populated with the given words using the default
// sort option and display data.
func FromWords(words []string) *Trie {
	return FromWordsWithOptions(words, SortValue, DisplayCount)
}

// FromWordsWithOptions returns a root populated with the given words using
// the given sort option and display data.
func FromWordsWithOptions(words []string, sortOption SortOption, displayData DisplayData) *Trie {
	root := NewWithOptions(sortOption, displayData)
	for _, word := range words {
		root.add([]rune(word), 0)
	}
	return root
}

func newWithFragment(fragment string, sortOption SortOption, displayData DisplayData) *Trie {
	return &Trie{
		fragment:    fragment,
		children:    map[rune]*Trie{},
		sortOption:  sortOption,
		displayData: displayData,
	}
}

// Add records one occurrence of the given word and returns the number of
// times it now occurs. Adding fails when the word does not extend this
// node's fragment.
func (trieNode *Trie) Add(word string) (int, error) {
	if !strings.HasPrefix(word, trieNode.fragment) {
		return 0, errors.New(incompatiblePrefixMessage)
	}
	return trieNode.add([]rune(word), utf8.RuneCountInString(trieNode.fragment)), nil
}

// add walks the word's runes from the given depth, creating intermediate
// nodes as needed, and bumps the total count of every node on the path.
func (trieNode *Trie) add(wordRunes []rune, depth int) int {
	trieNode.totalCount++
	if depth >= len(wordRunes) {
		trieNode.count++
		return trieNode.count
	}
	nextRune := wordRunes[depth]
	child, exists := trieNode.children[nextRune]
	if !exists {
		child = newWithFragment(string(wordRunes[:depth+1]), trieNode.sortOption, trieNode.displayData)
		trieNode.children[nextRune] = child
	}
	return child.add(wordRunes, depth+1)
}

// Occurrences returns the number of times the given word was added below
// this node. The word is interpreted relative to this node's fragment.
func (trieNode *Trie) Occurrences(word string) int {
	node := trieNode.find([]rune(word))
	if node == nil {
		return 0
	}
	return node.count
}

// TotalOccurrences returns the number of times this node's fragment or any
// extension of it was added.
func (trieNode *Trie) TotalOccurrences() int {
	return trieNode.totalCount
}

func (trieNode *Trie) find(remaining []rune) *Trie {
	if len(remaining) == 0 {
		return trieNode
	}
	child, exists := trieNode.children[remaining[0]]
	if !exists {
		return nil
	}
	return child.find(remaining[1:])
}

// SetSortOption applies the sort option to this node and every descendant.
func (trieNode *Trie) SetSortOption(sortOption SortOption) {
	trieNode.sortOption = sortOption
	for _, child := range trieNode.children {
		child.SetSortOption(sortOption)
	}
}

// SetDisplayData applies the display data to this node and every descendant.
func (trieNode *Trie) SetDisplayData(displayData DisplayData) {
	trieNode.displayData = displayData
	for _, child := range trieNode.children {
		child.SetDisplayData(displayData)
	}
}

// Label returns the fragment with the configured supplementary figure
// attached. The root fragment is empty and always yields an empty label.
func (trieNode *Trie) Label() string {
	if trieNode.fragment == "" {
		return ""
	}
	switch trieNode.displayData {
	case DisplayNone:
		return trieNode.fragment
	case DisplayTotal:
		return fmt.Sprintf(labelDataFormat, trieNode.fragment, trieNode.totalCount)
	default:
		return fmt.Sprintf(labelDataFormat, trieNode.fragment, trieNode.count)
	}
}

// Children returns child nodes ordered by the configured sort option. The
// count orderings are stable over the lexicographic base order, so ties keep
// their fragment order.
func (trieNode *Trie) Children() []tree.Node {
	ordered := trieNode.sortedChildren()
	nodes := make([]tree.Node, 0, len(ordered))
	for _, child := range ordered {
		nodes = append(nodes, child)
	}
	return nodes
}

func (trieNode *Trie) sortedChildren() []*Trie {
	keys := make([]rune, 0, len(trieNode.children))
	for key := range trieNode.children {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(first, second int) bool { return keys[first] < keys[second] })
	ordered := make([]*Trie, 0, len(keys))
	for _, key := range keys {
		ordered = append(ordered, trieNode.children[key])
	}
	switch trieNode.sortOption {
	case SortValueReversed:
		sort.SliceStable(ordered, func(first, second int) bool { return ordered[first].fragment > ordered[second].fragment })
	case SortCountAscending:
		sort.SliceStable(ordered, func(first, second int) bool { return ordered[first].count < ordered[second].count })
	case SortCountDescending:
		sort.SliceStable(ordered, func(first, second int) bool { return ordered[first].count > ordered[second].count })
	case SortTotalAscending:
		sort.SliceStable(ordered, func(first, second int) bool { return ordered[first].totalCount < ordered[second].totalCount })
	case SortTotalDescending:
		sort.SliceStable(ordered, func(first, second int) bool { return ordered[first].totalCount > ordered[second].totalCount })
	}
	return ordered
}
