package directive

import (
	"iter"
	"maps"

	"github.com/abonite/mcasm/internal"
)

// Registry maps setting names to their values.
type Registry map[string]Value

// Clone makes a shallow copy. The clone of a nil registry is empty.
func (reg Registry) Clone() Registry {
	if reg == nil {
		return Registry{}
	}
	return maps.Clone(reg)
}

// Get returns a setting.
func (reg Registry) Get(name string) (value Value, ok bool) {
	value, ok = reg[name]
	return
}

// All iterates over the settings, ordered by name.
func (reg Registry) All() iter.Seq2[string, Value] {
	return internal.SortedSeq2(reg)
}
