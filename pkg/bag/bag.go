package bag

import (
	"maps"
	"slices"
)

// Bag is an insertion-ordered mapping from string keys to values.
type Bag struct {
	values map[string]any
	keys   []string
}

// New creates a bag pre-populated with a copy of values.
// A nil map yields an empty bag.
func New(values map[string]any) *Bag {
	b := &Bag{
		values: make(map[string]any, len(values)),
		keys:   make([]string, 0, len(values)),
	}

	// Map iteration order is random, sort to keep Keys stable for decoded payloads.
	for _, k := range slices.Sorted(maps.Keys(values)) {
		b.Set(k, values[k])
	}

	return b
}

// Has reports whether key is present.
func (b *Bag) Has(key string) bool {
	_, ok := b.values[key]
	return ok
}

// Get returns the value stored under key or def if the key is absent.
func (b *Bag) Get(key string, def any) any {
	if v, ok := b.values[key]; ok {
		return v
	}
	return def
}

// Set stores value under key, overwriting any previous value.
func (b *Bag) Set(key string, value any) *Bag {
	if _, ok := b.values[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.values[key] = value
	return b
}

// Remove deletes key. Removing a missing key is a no-op.
func (b *Bag) Remove(key string) *Bag {
	if _, ok := b.values[key]; !ok {
		return b
	}
	delete(b.values, key)
	b.keys = slices.DeleteFunc(b.keys, func(k string) bool { return k == key })
	return b
}

// Clear removes every key.
func (b *Bag) Clear() *Bag {
	clear(b.values)
	b.keys = b.keys[:0]
	return b
}

// All returns a snapshot of every key/value pair.
// The returned map is a shallow copy; changing it does not affect the bag.
func (b *Bag) All() map[string]any {
	return maps.Clone(b.values)
}

// Keys returns the keys in insertion order.
func (b *Bag) Keys() []string {
	return slices.Clone(b.keys)
}

// Len returns the number of stored keys.
func (b *Bag) Len() int {
	return len(b.values)
}

// Value returns the value under key asserted to T.
// def is returned when the key is missing or holds a value of another type.
func Value[T any](b *Bag, key string, def T) T {
	v, ok := b.values[key]
	if !ok {
		return def
	}
	typed, ok := v.(T)
	if !ok {
		return def
	}
	return typed
}
