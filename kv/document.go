package kv

import (
	"iter"
	"log/slog"
	"slices"

	"github.com/ardnew/pcomb/parse"
)

// ErrKeyNotFound is returned by [Document.Get] for a key with no entry.
var ErrKeyNotFound = parse.NewError("key not found")

// Document is an ordered list of entries. A key may appear more than once;
// lookups use the last entry with that key.
type Document []KeyValue

// Lookup returns the value of the last entry with the given key.
func (d Document) Lookup(key string) (int, bool) {
	for _, kv := range slices.Backward(d) {
		if kv.Key == key {
			return kv.Value, true
		}
	}

	return 0, false
}

// Get is like [Document.Lookup] but reports a missing key as
// [ErrKeyNotFound].
func (d Document) Get(key string) (int, error) {
	v, ok := d.Lookup(key)
	if !ok {
		return 0, ErrKeyNotFound.With(slog.String("key", key))
	}

	return v, nil
}

// Keys returns the distinct keys of d in order of first appearance.
func (d Document) Keys() []string {
	keys := make([]string, 0, len(d))
	seen := make(map[string]struct{}, len(d))

	for _, kv := range d {
		if _, ok := seen[kv.Key]; ok {
			continue
		}

		seen[kv.Key] = struct{}{}
		keys = append(keys, kv.Key)
	}

	return keys
}

// All returns an iterator over the distinct keys of d in order of first
// appearance, each paired with its effective value.
func (d Document) All() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for _, key := range d.Keys() {
			v, _ := d.Lookup(key)
			if !yield(key, v) {
				return
			}
		}
	}
}

// ToMap converts d to a map from key to effective value.
func (d Document) ToMap() map[string]any {
	m := make(map[string]any, len(d))
	for _, kv := range d {
		m[kv.Key] = kv.Value
	}

	return m
}
