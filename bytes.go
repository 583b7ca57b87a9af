package dupidx

import (
	"bytes"
	"fmt"
	"iter"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// BytesIndexer interns byte slices without copying their content for lookup
// keys. The lookup index maps an XXHash-64 digest of the content to the
// identifiers sharing that digest; candidates are verified against the store
// with bytes.Equal, so hash collisions cannot conflate distinct values.
//
// The indexer takes ownership of inserted slices. Callers must not mutate a
// slice after inserting it.
//
// The zero value is an empty indexer ready for use.
type BytesIndexer struct {
	values   [][]byte
	lookup   map[uint64][]int
	consumed bool
}

// NewBytes creates an empty BytesIndexer.
func NewBytes() *BytesIndexer {
	return &BytesIndexer{
		lookup: make(map[uint64][]int),
	}
}

// NewBytesWithCapacity creates an empty BytesIndexer preallocated for at
// least n distinct entries.
func NewBytesWithCapacity(n int) *BytesIndexer {
	return &BytesIndexer{
		values: make([][]byte, 0, n),
		lookup: make(map[uint64][]int, n),
	}
}

// Insert adds b to the indexer if equal content is not already present and
// returns its identifier.
//
// Insert panics if the indexer has been consumed by Export or Drain.
func (ix *BytesIndexer) Insert(b []byte) int {
	if ix.consumed {
		panic("dupidx: Insert on consumed BytesIndexer")
	}
	sum := xxhash.Sum64(b)
	for _, id := range ix.lookup[sum] {
		if bytes.Equal(ix.values[id], b) {
			return id
		}
	}
	if ix.lookup == nil {
		ix.lookup = make(map[uint64][]int)
	}
	id := len(ix.values)
	ix.lookup[sum] = append(ix.lookup[sum], id)
	ix.values = append(ix.values, b)
	return id
}

// Len returns the number of distinct values interned so far.
func (ix *BytesIndexer) Len() int {
	return len(ix.values)
}

// IsEmpty reports whether no values have been interned.
func (ix *BytesIndexer) IsEmpty() bool {
	return len(ix.values) == 0
}

// Cap returns the number of entries the store can hold before it must grow.
func (ix *BytesIndexer) Cap() int {
	return cap(ix.values)
}

// At returns the slice stored under the given identifier. It panics if id is
// not an identifier previously returned by Insert.
func (ix *BytesIndexer) At(id int) []byte {
	return ix.values[id]
}

// Values returns the stored slices in identifier order. The returned slice is
// a view into the indexer's store and must not be modified by the caller.
func (ix *BytesIndexer) Values() [][]byte {
	return ix.values
}

// All iterates over identifier and value pairs in identifier order without
// consuming the indexer.
func (ix *BytesIndexer) All() iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		for id, v := range ix.values {
			if !yield(id, v) {
				return
			}
		}
	}
}

// Export consumes the indexer and returns the distinct slices in first-seen
// order. No further insertions are possible afterwards.
func (ix *BytesIndexer) Export() [][]byte {
	values := ix.values
	ix.values = nil
	ix.lookup = nil
	ix.consumed = true
	return values
}

// Drain consumes the indexer and returns an iterator yielding the distinct
// slices once, in identifier order.
func (ix *BytesIndexer) Drain() iter.Seq[[]byte] {
	values := ix.Export()
	return func(yield func([]byte) bool) {
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}

// String renders the identifier to value mapping for diagnostics.
func (ix *BytesIndexer) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for id, v := range ix.values {
		if id > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d: %q", id, v)
	}
	b.WriteByte('}')
	return b.String()
}
