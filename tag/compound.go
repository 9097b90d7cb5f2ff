package tag

import (
	"iter"

	"github.com/zydeco/nbtkit/format"
	"github.com/zydeco/nbtkit/internal/hash"
)

type compoundEntry struct {
	name  string
	value Value
}

// Compound represents the NBT Compound tag type: a keyed, insertion-
// ordered collection of named values, terminated on the wire by an End
// tag. Iteration order is always insertion order, so re-encoding a
// decoded Compound reproduces the same byte sequence.
//
// Lookup is accelerated by an xxHash64-keyed index over entry names.
// Because distinct names can share a hash bucket, each bucket holds
// candidate slice indices and Get/Put disambiguate with an exact
// string compare.
type Compound struct {
	entries []compoundEntry
	index   map[uint64][]int
}

func (*Compound) Type() format.TagType { return format.Compound }
func (*Compound) isValue()             {}

// NewCompound creates an empty Compound.
func NewCompound() *Compound {
	return &Compound{index: make(map[uint64][]int)}
}

// Len returns the number of entries in the compound.
func (c *Compound) Len() int {
	return len(c.entries)
}

func (c *Compound) findIndex(name string) (int, bool) {
	h := hash.ID(name)
	for _, i := range c.index[h] {
		if c.entries[i].name == name {
			return i, true
		}
	}

	return 0, false
}

// Get returns the value stored under name, and whether it was present.
func (c *Compound) Get(name string) (Value, bool) {
	i, ok := c.findIndex(name)
	if !ok {
		return nil, false
	}

	return c.entries[i].value, true
}

// Put inserts or overwrites the value stored under name. If name is
// already present, its value is replaced in place (insertion order is
// preserved — Put does not move an existing key to the end). This
// mirrors the decoder's duplicate-key rule: the last occurrence on the
// wire wins.
func (c *Compound) Put(name string, v Value) {
	if i, ok := c.findIndex(name); ok {
		c.entries[i].value = v
		return
	}

	h := hash.ID(name)
	c.index[h] = append(c.index[h], len(c.entries))
	c.entries = append(c.entries, compoundEntry{name: name, value: v})
}

// Delete removes name from the compound, reporting whether it was
// present.
func (c *Compound) Delete(name string) bool {
	i, ok := c.findIndex(name)
	if !ok {
		return false
	}

	c.entries = append(c.entries[:i], c.entries[i+1:]...)
	c.rebuildIndex()

	return true
}

func (c *Compound) rebuildIndex() {
	for k := range c.index {
		delete(c.index, k)
	}
	for i, e := range c.entries {
		h := hash.ID(e.name)
		c.index[h] = append(c.index[h], i)
	}
}

// Keys returns the entry names in insertion order.
func (c *Compound) Keys() []string {
	keys := make([]string, len(c.entries))
	for i, e := range c.entries {
		keys[i] = e.name
	}

	return keys
}

// All returns an iterator over the compound's (name, value) pairs in
// insertion order.
func (c *Compound) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, e := range c.entries {
			if !yield(e.name, e.value) {
				return
			}
		}
	}
}

// Equal reports whether c and other contain the same entries in the
// same order, with numeric leaves compared by both value and NBT kind.
func (c *Compound) Equal(other *Compound) bool {
	if other == nil || len(c.entries) != len(other.entries) {
		return false
	}
	for i, e := range c.entries {
		oe := other.entries[i]
		if e.name != oe.name || !ValuesEqual(e.value, oe.value) {
			return false
		}
	}

	return true
}
