// Package orderedmap provides a map which remembers insertion order
package orderedmap

import "iter"

// OrderedMap stores key-value pairs and iterates them in the order keys were first set
type OrderedMap[K comparable, V any] struct {
	index map[K]int
	keys  []K
	vals  []V
}

// NewOrderedMap creates an empty OrderedMap
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{index: map[K]int{}}
}

// Set stores val under key. Overwriting a key keeps its original position.
func (o *OrderedMap[K, V]) Set(key K, val V) {
	if i, exists := o.index[key]; exists {
		o.vals[i] = val
		return
	}
	o.index[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.vals = append(o.vals, val)
}

// Get returns the value stored under key and whether it exists
func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	i, exists := o.index[key]
	if !exists {
		return *new(V), false
	}

	return o.vals[i], true
}

// Update replaces the value under key with fn applied to the current value (the zero value when
// the key is new)
func (o *OrderedMap[K, V]) Update(key K, fn func(V) V) {
	current, _ := o.Get(key)
	o.Set(key, fn(current))
}

// Count returns the number of keys
func (o *OrderedMap[K, V]) Count() int {
	return len(o.keys)
}

// All iterates key-value pairs in insertion order
func (o *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i, key := range o.keys {
			if !yield(key, o.vals[i]) {
				return
			}
		}
	}
}
