package bmfont

import "iter"

// Table is a map that remembers insertion order. Keys are unique: putting an
// existing key replaces its value and keeps its original position.
//
// All read methods accept a nil receiver and behave as on an empty table, so
// callers can look up IDs in a block that is absent from the document.
type Table[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// NewTable returns an empty table.
func NewTable[K comparable, V any]() *Table[K, V] {
	return &Table[K, V]{values: make(map[K]V)}
}

// Put stores v under k. It reports whether k was new.
func (t *Table[K, V]) Put(k K, v V) bool {
	if t.values == nil {
		t.values = make(map[K]V)
	}
	_, exists := t.values[k]
	if !exists {
		t.keys = append(t.keys, k)
	}
	t.values[k] = v
	return !exists
}

// Get returns the value stored under k.
func (t *Table[K, V]) Get(k K) (V, bool) {
	if t == nil {
		var zero V
		return zero, false
	}
	v, ok := t.values[k]
	return v, ok
}

// Len returns the number of entries.
func (t *Table[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}

// Keys returns the keys in insertion order.
func (t *Table[K, V]) Keys() []K {
	if t == nil {
		return nil
	}
	return append([]K(nil), t.keys...)
}

// All iterates over the entries in insertion order.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t == nil {
			return
		}
		for _, k := range t.keys {
			if !yield(k, t.values[k]) {
				return
			}
		}
	}
}
