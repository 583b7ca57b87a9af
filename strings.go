package dupidx

// StringIndexer interns strings. It behaves exactly like Indexer[string] and
// additionally supports probing with a byte slice, which avoids constructing
// a throwaway string on the hit path entirely.
//
// The zero value is an empty indexer ready for use.
type StringIndexer struct {
	Indexer[string]
}

// NewStrings creates an empty StringIndexer.
func NewStrings() *StringIndexer {
	return &StringIndexer{*New[string]()}
}

// NewStringsWithCapacity creates an empty StringIndexer preallocated for at
// least n distinct entries.
func NewStringsWithCapacity(n int) *StringIndexer {
	return &StringIndexer{*NewWithCapacity[string](n)}
}

// InsertBytes interns the string represented by b and returns its identifier.
// The lookup probe does not allocate; an owned string is materialized only
// when b has not been seen before.
//
// InsertBytes panics if the indexer has been consumed by Export or Drain.
func (ix *StringIndexer) InsertBytes(b []byte) int {
	if ix.consumed {
		panic("dupidx: InsertBytes on consumed StringIndexer")
	}
	// The compiler recognizes the map[string(b)] form and performs the lookup
	// without copying b.
	if id, ok := ix.lookup[string(b)]; ok {
		return id
	}
	return ix.Insert(string(b))
}
