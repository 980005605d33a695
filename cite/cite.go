// Package cite stores the citation list built while reading auxiliary and
// database files.
package cite

import (
	"slices"

	"github.com/chazu/bibsym/arena"
	"github.com/chazu/bibsym/entry"
	"github.com/chazu/bibsym/symtab"
)

const DefaultMaxCites = 750

// List holds parallel per-citation arrays that always grow together.
type List struct {
	increment int

	cites  *arena.Arena[symtab.StrNumber]
	info   *arena.Arena[symtab.StrNumber]
	types  *arena.Arena[symtab.HashPointer]
	exists *arena.Arena[bool]

	ptr         int
	entryPtr    int
	numCites    int
	oldNumCites int
	allMarker   int
}

// NewList allocates a list with room for increment citations.
func NewList(increment int) *List {
	return &List{
		increment: increment,
		cites:     arena.New[symtab.StrNumber](increment),
		info:      arena.New[symtab.StrNumber](increment),
		types:     arena.New[symtab.HashPointer](increment),
		exists:    arena.New[bool](increment),
	}
}

func (l *List) grow() {
	l.cites.Grow(l.increment)
	l.info.Grow(l.increment)
	l.types.Grow(l.increment)
	l.exists.Grow(l.increment)
}

// Capacity returns the number of citations the arrays can hold.
func (l *List) Capacity() int { return l.cites.Len() }

// CheckOverflow grows the arrays when last is one past the end.
func (l *List) CheckOverflow(last int) {
	if last == l.cites.Len() {
		l.grow()
	}
}

// Cite returns the key of citation i.
func (l *List) Cite(i int) symtab.StrNumber { return l.cites.At(i) }

// SetCite stores the key of citation i.
func (l *List) SetCite(i int, s symtab.StrNumber) { l.cites.Set(i, s) }

// Info returns the auxiliary string of citation i.
func (l *List) Info(i int) symtab.StrNumber { return l.info.At(i) }

// SetInfo stores the auxiliary string of citation i.
func (l *List) SetInfo(i int, s symtab.StrNumber) { l.info.Set(i, s) }

// Type returns the entry-type slot of citation i.
func (l *List) Type(i int) symtab.HashPointer { return l.types.At(i) }

// SetType stores the entry-type slot of citation i.
func (l *List) SetType(i int, p symtab.HashPointer) { l.types.Set(i, p) }

// Exists reports whether citation i has a database entry.
func (l *List) Exists(i int) bool { return l.exists.At(i) }

// SetExists records whether citation i has a database entry.
func (l *List) SetExists(i int, ok bool) { l.exists.Set(i, ok) }

// Ptr returns the current citation pointer.
func (l *List) Ptr() int { return l.ptr }

// SetPtr moves the current citation pointer.
func (l *List) SetPtr(n int) { l.ptr = n }

// EntryPtr returns the citation whose entry is being read.
func (l *List) EntryPtr() int { return l.entryPtr }

// SetEntryPtr moves the entry pointer.
func (l *List) SetEntryPtr(n int) { l.entryPtr = n }

// NumCites returns the number of citations.
func (l *List) NumCites() int { return l.numCites }

// SetNumCites sets the number of citations.
func (l *List) SetNumCites(n int) { l.numCites = n }

// OldNumCites returns the citation count before cross-references were added.
func (l *List) OldNumCites() int { return l.oldNumCites }

// SetOldNumCites records the citation count before cross-references were added.
func (l *List) SetOldNumCites(n int) { l.oldNumCites = n }

// AllMarker returns the citation index where \nocite{*} took effect.
func (l *List) AllMarker() int { return l.allMarker }

// SetAllMarker records where \nocite{*} took effect.
func (l *List) SetAllMarker(n int) { l.allMarker = n }

// SortInfo sorts the info entries in [lo, hi).
func (l *List) SortInfo(lo, hi int) {
	slices.Sort(l.info.Slice(lo, hi))
}

// AddDatabaseCite appends a citation that was found only in a database
// file. citeLoc is the slot of the key under IlkCite and lcCiteLoc the slot
// of its lowercase form. The returned value is the next free citation.
func (l *List) AddDatabaseCite(newCite int, citeLoc, lcCiteLoc symtab.HashPointer, h *symtab.HashTable, fields *entry.Fields) int {
	l.CheckOverflow(newCite)
	fields.CheckOverflow(fields.NumFields() * (newCite + 1))

	l.SetCite(newCite, h.Text(citeLoc))
	h.SetInfo(citeLoc, int32(newCite))
	h.SetInfo(lcCiteLoc, int32(citeLoc))
	return newCite + 1
}

// Locs is the result of FindLocs.
type Locs struct {
	CiteLoc   symtab.HashPointer
	CiteFound bool
	LcLoc     symtab.HashPointer
	LcFound   bool
}

// FindLocs looks up the key citeStr as typed and in lowercase.
func FindLocs(p *symtab.StringPool, h *symtab.HashTable, citeStr symtab.StrNumber) Locs {
	key := p.Get(citeStr)
	c := p.Lookup(h, key, symtab.IlkCite)
	lc := p.Lookup(h, LowerASCII(key), symtab.IlkLcCite)
	return Locs{
		CiteLoc:   c.Loc,
		CiteFound: c.Exists,
		LcLoc:     lc.Loc,
		LcFound:   lc.Exists,
	}
}

// LowerASCII returns a copy of b with A-Z folded to a-z. Other bytes,
// including non-ASCII ones, are left alone.
func LowerASCII(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return out
}
