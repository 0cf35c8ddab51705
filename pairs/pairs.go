package pairs

import "iter"

// Pair is a single key/value unit of a query string. A nil Value marks an
// absent value (no equality sign was present in the segment), which is not
// the same thing as an empty string. On the build side Value may also hold
// any scalar: strings, booleans, integers and floats
type Pair struct {
	Key   string
	Value any
}

// HasValue tells whether the value is present at all
func (p Pair) HasValue() bool {
	return p.Value != nil
}

// List is an ordered, duplicate-preserving sequence of pairs. It is the sole
// interchange type between parsing, building and extraction. Unlike header
// storages, lookups are case-sensitive, as query keys are
type List struct {
	pairs      []Pair
	valuesBuff []any
	uniqueBuff []string
}

// NewPreAlloc returns a List with pre-allocated underlying storage
func NewPreAlloc(n int) *List {
	return &List{
		pairs: make([]Pair, 0, n),
	}
}

func New() *List {
	return NewPreAlloc(0)
}

// FromMap returns a List filled from the given map. Note: as maps are
// unordered, the resulting pair order is unspecified as well
func FromMap(m map[string][]string) *List {
	list := NewPreAlloc(len(m))

	for key, values := range m {
		for _, value := range values {
			list.Add(key, value)
		}
	}

	return list
}

// Add appends a new pair. Duplicates are never merged
func (l *List) Add(key string, value any) *List {
	l.pairs = append(l.pairs, Pair{
		Key:   key,
		Value: value,
	})
	return l
}

// AddPair appends an already assembled pair
func (l *List) AddPair(pair Pair) *List {
	l.pairs = append(l.pairs, pair)
	return l
}

// Get returns the first value corresponding to the key and a bool telling
// whether the key exists at all
func (l *List) Get(key string) (any, bool) {
	for _, pair := range l.pairs {
		if pair.Key == key {
			return pair.Value, true
		}
	}

	return nil, false
}

// Value returns the first value by the key, or an empty string. Absent
// values are indistinguishable from empty ones here, use Get if the
// difference matters
func (l *List) Value(key string) string {
	value, found := l.Get(key)
	if !found || value == nil {
		return ""
	}

	str, ok := value.(string)
	if !ok {
		return ""
	}

	return str
}

// Values returns all values by the key in their order of appearance.
// Returns nil if the key doesn't exist.
//
// WARNING: calling it twice will override values, returned by the first
// call. Consider copying the returned slice for safe use
func (l *List) Values(key string) []any {
	l.valuesBuff = l.valuesBuff[:0]

	for _, pair := range l.pairs {
		if pair.Key == key {
			l.valuesBuff = append(l.valuesBuff, pair.Value)
		}
	}

	if len(l.valuesBuff) == 0 {
		return nil
	}

	return l.valuesBuff
}

// Keys returns all unique presented keys.
//
// WARNING: calling it twice will override values, returned by the first
// call. Consider copying the returned slice for safe use
func (l *List) Keys() []string {
	l.uniqueBuff = l.uniqueBuff[:0]

	for _, pair := range l.pairs {
		if contains(l.uniqueBuff, pair.Key) {
			continue
		}

		l.uniqueBuff = append(l.uniqueBuff, pair.Key)
	}

	return l.uniqueBuff
}

// Has indicates whether there's an entry of the key
func (l *List) Has(key string) bool {
	_, found := l.Get(key)
	return found
}

func (l *List) Len() int {
	return len(l.pairs)
}

func (l *List) Empty() bool {
	return len(l.pairs) == 0
}

// At returns the pair at the position it was added
func (l *List) At(index int) Pair {
	return l.pairs[index]
}

// Iter returns an iterator over the pairs in their original order
func (l *List) Iter() iter.Seq[Pair] {
	return func(yield func(Pair) bool) {
		for _, pair := range l.pairs {
			if !yield(pair) {
				break
			}
		}
	}
}

// Expose returns the underlying pairs slice
func (l *List) Expose() []Pair {
	return l.pairs
}

// Clear all the entries. The underlying storage is retained for reuse
func (l *List) Clear() *List {
	l.pairs = l.pairs[:0]
	return l
}

func contains(collection []string, key string) bool {
	for _, element := range collection {
		if element == key {
			return true
		}
	}

	return false
}
