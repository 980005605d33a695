// Package entry holds per-entry storage: the field table and the entry
// variable arrays.
package entry

import (
	"github.com/chazu/bibsym/arena"
	"github.com/chazu/bibsym/symtab"
)

const DefaultMaxFields = 17250

// Fields tracks field names declared by a style and the field values of
// every cited entry, laid out as numFields slots per entry.
type Fields struct {
	increment        int
	info             *arena.Arena[symtab.StrNumber]
	numFields        int
	preDefinedFields int
	crossrefNum      int
}

// NewFields allocates a field table that grows by increment slots.
func NewFields(increment int) *Fields {
	return &Fields{
		increment: increment,
		info:      arena.New[symtab.StrNumber](increment),
	}
}

// NumFields returns the number of declared fields.
func (f *Fields) NumFields() int { return f.numFields }

// SetNumFields sets the number of declared fields.
func (f *Fields) SetNumFields(n int) { f.numFields = n }

// PreDefinedFields returns how many fields were declared before the style was read.
func (f *Fields) PreDefinedFields() int { return f.preDefinedFields }

// SetPreDefinedFields records the number of predefined fields.
func (f *Fields) SetPreDefinedFields(n int) { f.preDefinedFields = n }

// CrossrefNum returns the field index of crossref.
func (f *Fields) CrossrefNum() int { return f.crossrefNum }

// SetCrossrefNum records the field index of crossref.
func (f *Fields) SetCrossrefNum(n int) { f.crossrefNum = n }

// Capacity returns the number of field slots currently allocated.
func (f *Fields) Capacity() int { return f.info.Len() }

// CheckOverflow grows the field slots until index needed is addressable.
func (f *Fields) CheckOverflow(needed int) {
	for needed >= f.info.Len() {
		f.info.Grow(f.increment)
	}
}

// Info returns the value stored in field slot pos.
func (f *Fields) Info(pos int) symtab.StrNumber { return f.info.At(pos) }

// SetInfo stores a value in field slot pos.
func (f *Fields) SetInfo(pos int, s symtab.StrNumber) { f.info.Set(pos, s) }

// Reserve allocates the next field index and returns it.
func (f *Fields) Reserve() int {
	n := f.numFields
	f.numFields++
	return n
}
