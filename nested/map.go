// Package nested holds the output model of query extraction: a recursive,
// insertion-ordered mapping replicating the semantics of PHP associative
// arrays close enough for the bracket-grammar folding to be faithful.
package nested

import (
	"iter"
	"strconv"

	json "github.com/json-iterator/go"
)

// Node is either a scalar (string) or a *Map. No other types ever appear
// inside a Map produced by extraction
type Node = any

// Map is a string-keyed mapping that remembers the order in which its keys
// were first touched. Integer-looking keys additionally drive the append
// position, the same way PHP arrays track their next free index
type Map struct {
	keys   []string
	values map[string]Node
	next   int
}

func New() *Map {
	return &Map{
		values: make(map[string]Node),
	}
}

// Set stores the node under the key, keeping the key's original position if
// it was already present
func (m *Map) Set(key string, node Node) *Map {
	if _, occupied := m.values[key]; !occupied {
		m.keys = append(m.keys, key)
	}

	m.values[key] = node

	if index, ok := canonicalIndex(key); ok && index >= m.next {
		m.next = index + 1
	}

	return m
}

// canonicalIndex parses the key as an integer one: only canonical decimal
// forms count, so "05" and "+5" remain plain string keys
func canonicalIndex(key string) (int, bool) {
	if key == "" || (len(key) > 1 && key[0] == '0') || key[0] < '0' || key[0] > '9' {
		return 0, false
	}

	index, err := strconv.Atoi(key)

	return index, err == nil
}

// Append stores the node under the next free non-negative integer key. The
// next key is the highest integer key ever set, plus one, or zero if no
// integer key was ever used
func (m *Map) Append(node Node) *Map {
	return m.Set(strconv.Itoa(m.next), node)
}

func (m *Map) Get(key string) (Node, bool) {
	node, found := m.values[key]
	return node, found
}

// Value returns the scalar under the key, or an empty string if the key is
// missing or holds a nested map
func (m *Map) Value(key string) string {
	scalar, _ := m.values[key].(string)
	return scalar
}

// Sub returns the nested map under the key, or nil if the key is missing or
// holds a scalar
func (m *Map) Sub(key string) *Map {
	sub, _ := m.values[key].(*Map)
	return sub
}

func (m *Map) Has(key string) bool {
	_, found := m.values[key]
	return found
}

func (m *Map) Len() int {
	return len(m.keys)
}

func (m *Map) Empty() bool {
	return len(m.keys) == 0
}

// Keys returns the keys in their first-touched order. The returned slice is
// the underlying one, so it must not be modified
func (m *Map) Keys() []string {
	return m.keys
}

// Iter returns an iterator over key/node entries in their first-touched order
func (m *Map) Iter() iter.Seq2[string, Node] {
	return func(yield func(string, Node) bool) {
		for _, key := range m.keys {
			if !yield(key, m.values[key]) {
				break
			}
		}
	}
}

// MarshalJSON renders the mapping as a JSON object, preserving the key
// order. Nested maps are rendered recursively
func (m *Map) MarshalJSON() ([]byte, error) {
	buff := make([]byte, 0, 2+16*len(m.keys))
	buff = append(buff, '{')

	for i, key := range m.keys {
		if i > 0 {
			buff = append(buff, ',')
		}

		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}

		value, err := json.Marshal(m.values[key])
		if err != nil {
			return nil, err
		}

		buff = append(buff, name...)
		buff = append(buff, ':')
		buff = append(buff, value...)
	}

	return append(buff, '}'), nil
}

// String renders the mapping as ordered JSON, mostly for tests and debugging
func (m *Map) String() string {
	rendered, err := m.MarshalJSON()
	if err != nil {
		return "<unrenderable>"
	}

	return string(rendered)
}
