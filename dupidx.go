// Package dupidx implements append-only value-interning indexes.
//
// An indexer assigns each distinct value a dense, zero-based integer
// identifier in first-seen order. Inserting an equal value again returns the
// identifier assigned the first time, and the whole set of distinct values can
// finally be recovered as an ordered slice. The structure is useful wherever
// repeated values should collapse into a compact table of unique entries, for
// example when building string tables or columnar dictionaries.
//
// For string values the lookup map key copies only the string header; the
// backing bytes are shared with the stored element, so interning never
// duplicates value content.
//
// Indexers are not safe for concurrent use. Callers needing concurrent
// interning must wrap an indexer behind their own mutex.
package dupidx

import (
	"fmt"
	"iter"
	"strings"
)

// Indexer interns values of any comparable type, assigning each distinct
// value a stable identifier equal to its rank of first appearance.
//
// The zero value is an empty indexer ready for use.
type Indexer[T comparable] struct {
	values   []T
	lookup   map[T]int
	consumed bool
}

// New creates an empty Indexer with no preallocated capacity.
func New[T comparable]() *Indexer[T] {
	return &Indexer[T]{
		lookup: make(map[T]int),
	}
}

// NewWithCapacity creates an empty Indexer preallocated for at least n
// distinct entries. The capacity is a performance hint only; it changes no
// observable behavior.
func NewWithCapacity[T comparable](n int) *Indexer[T] {
	return &Indexer[T]{
		values: make([]T, 0, n),
		lookup: make(map[T]int, n),
	}
}

// Insert adds v to the indexer if an equal value is not already present and
// returns its identifier. Equal values always map to the identifier assigned
// on first insertion; distinct values receive consecutive identifiers
// starting at 0.
//
// Insert panics if the indexer has been consumed by Export or Drain.
func (ix *Indexer[T]) Insert(v T) int {
	if ix.consumed {
		panic("dupidx: Insert on consumed Indexer")
	}
	if id, ok := ix.lookup[v]; ok {
		return id
	}
	if ix.lookup == nil {
		ix.lookup = make(map[T]int)
	}
	id := len(ix.values)
	ix.lookup[v] = id
	ix.values = append(ix.values, v)
	return id
}

// Len returns the number of distinct values interned so far.
func (ix *Indexer[T]) Len() int {
	return len(ix.values)
}

// IsEmpty reports whether no values have been interned.
func (ix *Indexer[T]) IsEmpty() bool {
	return len(ix.values) == 0
}

// Cap returns the number of entries the store can hold before it must grow.
func (ix *Indexer[T]) Cap() int {
	return cap(ix.values)
}

// At returns the value stored under the given identifier. It panics if id is
// not an identifier previously returned by Insert.
func (ix *Indexer[T]) At(id int) T {
	return ix.values[id]
}

// Values returns the stored values in identifier order. The returned slice is
// a view into the indexer's store and must not be modified by the caller.
func (ix *Indexer[T]) Values() []T {
	return ix.values
}

// All iterates over identifier and value pairs in identifier order without
// consuming the indexer.
func (ix *Indexer[T]) All() iter.Seq2[int, T] {
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
func (ix *Indexer[T]) Export() []T {
	values := ix.values
	ix.values = nil
	ix.lookup = nil
	ix.consumed = true
	return values
}

// Drain consumes the indexer and returns an iterator yielding the distinct
// values once, in identifier order.
func (ix *Indexer[T]) Drain() iter.Seq[T] {
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
func (ix *Indexer[T]) String() string {
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
