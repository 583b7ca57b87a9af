package dupidx

import (
	"fmt"
	"iter"
	"strings"
)

// KeyedIndexer interns values of any type, using a caller-supplied function
// to derive a comparable lookup key from each value. The key acts as a
// non-owning view of the value for hashing and equality; two values are
// considered equal exactly when their derived keys are equal.
//
// KeyedIndexer covers value types that Go cannot use as map keys directly,
// such as slices or structs containing slices.
type KeyedIndexer[K comparable, T any] struct {
	key      func(T) K
	values   []T
	lookup   map[K]int
	consumed bool
}

// NewKeyed creates an empty KeyedIndexer using key to derive lookup keys.
func NewKeyed[K comparable, T any](key func(T) K) *KeyedIndexer[K, T] {
	return &KeyedIndexer[K, T]{
		key:    key,
		lookup: make(map[K]int),
	}
}

// NewKeyedWithCapacity creates an empty KeyedIndexer preallocated for at
// least n distinct entries.
func NewKeyedWithCapacity[K comparable, T any](key func(T) K, n int) *KeyedIndexer[K, T] {
	return &KeyedIndexer[K, T]{
		key:    key,
		values: make([]T, 0, n),
		lookup: make(map[K]int, n),
	}
}

// Insert adds v to the indexer if a value with an equal key is not already
// present and returns its identifier.
//
// Insert panics if the indexer has been consumed by Export or Drain.
func (ix *KeyedIndexer[K, T]) Insert(v T) int {
	if ix.consumed {
		panic("dupidx: Insert on consumed KeyedIndexer")
	}
	k := ix.key(v)
	if id, ok := ix.lookup[k]; ok {
		return id
	}
	id := len(ix.values)
	ix.lookup[k] = id
	ix.values = append(ix.values, v)
	return id
}

// InsertKey probes the indexer with a key alone and returns the existing
// identifier on a hit. Only on a genuine miss is materialize called to
// produce the value to store, which keeps the hit path free of value
// construction for callers that can derive keys from borrowed data.
func (ix *KeyedIndexer[K, T]) InsertKey(k K, materialize func() T) int {
	if ix.consumed {
		panic("dupidx: InsertKey on consumed KeyedIndexer")
	}
	if id, ok := ix.lookup[k]; ok {
		return id
	}
	id := len(ix.values)
	ix.lookup[k] = id
	ix.values = append(ix.values, materialize())
	return id
}

// Len returns the number of distinct values interned so far.
func (ix *KeyedIndexer[K, T]) Len() int {
	return len(ix.values)
}

// IsEmpty reports whether no values have been interned.
func (ix *KeyedIndexer[K, T]) IsEmpty() bool {
	return len(ix.values) == 0
}

// Cap returns the number of entries the store can hold before it must grow.
func (ix *KeyedIndexer[K, T]) Cap() int {
	return cap(ix.values)
}

// At returns the value stored under the given identifier. It panics if id is
// not an identifier previously returned by Insert.
func (ix *KeyedIndexer[K, T]) At(id int) T {
	return ix.values[id]
}

// Values returns the stored values in identifier order. The returned slice is
// a view into the indexer's store and must not be modified by the caller.
func (ix *KeyedIndexer[K, T]) Values() []T {
	return ix.values
}

// All iterates over identifier and value pairs in identifier order without
// consuming the indexer.
func (ix *KeyedIndexer[K, T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for id, v := range ix.values {
			if !yield(id, v) {
				return
			}
		}
	}
}

// Export consumes the indexer and returns the distinct values in first-seen
// order. No further insertions are possible afterwards.
func (ix *KeyedIndexer[K, T]) Export() []T {
	values := ix.values
	ix.values = nil
	ix.lookup = nil
	ix.consumed = true
	return values
}

// Drain consumes the indexer and returns an iterator yielding the distinct
// values once, in identifier order.
func (ix *KeyedIndexer[K, T]) Drain() iter.Seq[T] {
	values := ix.Export()
	return func(yield func(T) bool) {
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}

// String renders the identifier to value mapping for diagnostics.
func (ix *KeyedIndexer[K, T]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for id, v := range ix.values {
		if id > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d: %v", id, v)
	}
	b.WriteByte('}')
	return b.String()
}
