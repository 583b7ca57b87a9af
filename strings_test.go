package dupidx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/dupidx"
)

func TestStringIndexer_InsertBytes(t *testing.T) {
	t.Run("byte probe matches string insertions", func(t *testing.T) {
		ix := dupidx.NewStrings()

		assert.Equal(t, 0, ix.Insert("foo"))
		assert.Equal(t, 1, ix.InsertBytes([]byte("bar")))
		assert.Equal(t, 0, ix.InsertBytes([]byte("foo")))
		assert.Equal(t, 1, ix.Insert("bar"))

		assert.Equal(t, []string{"foo", "bar"}, ix.Export())
	})

	t.Run("miss materializes an owned string", func(t *testing.T) {
		ix := dupidx.NewStrings()

		buf := []byte("hello")
		id := ix.InsertBytes(buf)

		// Mutating the probe buffer afterwards must not affect the store.
		buf[0] = 'x'
		assert.Equal(t, "hello", ix.At(id))
	})

	t.Run("hit path does not allocate", func(t *testing.T) {
		ix := dupidx.NewStrings()
		ix.Insert("warm")
		probe := []byte("warm")

		allocs := testing.AllocsPerRun(100, func() {
			ix.InsertBytes(probe)
		})
		assert.Zero(t, allocs)
	})

	t.Run("panics after export", func(t *testing.T) {
		ix := dupidx.NewStringsWithCapacity(4)
		ix.Insert("foo")
		_ = ix.Export()

		assert.Panics(t, func() { ix.InsertBytes([]byte("bar")) })
		assert.Panics(t, func() { ix.Insert("bar") })
	})
}

func TestStringIndexer_ZeroValue(t *testing.T) {
	var ix dupidx.StringIndexer

	assert.Equal(t, 0, ix.InsertBytes([]byte("foo")))
	assert.Equal(t, 1, ix.Insert("bar"))
	assert.Equal(t, 0, ix.Insert("foo"))
	assert.Equal(t, []string{"foo", "bar"}, ix.Export())
}

func TestStringIndexer_ConstructorsAgree(t *testing.T) {
	// Both constructors must produce indexers with identical behavior; the
	// capacity hint changes no observable result.
	plain := dupidx.NewStrings()
	sized := dupidx.NewStringsWithCapacity(8)

	for _, v := range []string{"a", "b", "a", "c"} {
		assert.Equal(t, plain.Insert(v), sized.Insert(v))
	}
	assert.GreaterOrEqual(t, sized.Cap(), 8)
	assert.Equal(t, plain.Export(), sized.Export())
}

func TestStringIndexer_InheritsIndexer(t *testing.T) {
	ix := dupidx.NewStringsWithCapacity(2)

	assert.True(t, ix.IsEmpty())
	assert.GreaterOrEqual(t, ix.Cap(), 2)

	ix.InsertBytes([]byte("a"))
	ix.Insert("b")

	assert.Equal(t, 2, ix.Len())
	assert.Equal(t, "a", ix.At(0))
	assert.Equal(t, []string{"a", "b"}, ix.Values())
	assert.Equal(t, "{0: a, 1: b}", ix.String())
}
