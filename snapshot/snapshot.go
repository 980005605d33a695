// Package snapshot exports the contents of a run's symbol table for
// inspection. Snapshots are never loaded back into a run.
package snapshot

import (
	"bytes"

	"github.com/chazu/bibsym/engine"
	"github.com/chazu/bibsym/symtab"
)

// Slot is one occupied hash slot.
type Slot struct {
	Loc   int    `cbor:"1,keyasint"`
	Str   int    `cbor:"2,keyasint"`
	Text  []byte `cbor:"3,keyasint"`
	Ilk   uint8  `cbor:"4,keyasint"`
	Class uint8  `cbor:"5,keyasint"`
	Info  int32  `cbor:"6,keyasint"`
	Next  int    `cbor:"7,keyasint,omitempty"`
}

// Snapshot is the table contents plus the counters needed to read it.
type Snapshot struct {
	HashSize int    `cbor:"1,keyasint"`
	Prime    int    `cbor:"2,keyasint"`
	Used     int    `cbor:"3,keyasint"`
	StrPtr   int    `cbor:"4,keyasint"`
	PoolPtr  int    `cbor:"5,keyasint"`
	Slots    []Slot `cbor:"6,keyasint"`
}

// Take copies every occupied slot of c in slot order.
func Take(c *engine.Context) *Snapshot {
	h := c.Hash
	s := &Snapshot{
		HashSize: h.Size(),
		Prime:    h.Prime(),
		Used:     int(h.Used()),
		StrPtr:   int(c.Pool.StrPtr()),
		PoolPtr:  c.Pool.PoolPtr(),
	}
	for _, p := range h.Occupied() {
		text := h.Text(p)
		s.Slots = append(s.Slots, Slot{
			Loc:   int(p),
			Str:   int(text),
			Text:  bytes.Clone(c.Pool.Get(text)),
			Ilk:   uint8(h.Ilk(p)),
			Class: uint8(h.Class(p)),
			Info:  h.Info(p),
			Next:  int(h.Next(p)),
		})
	}
	return s
}

// IlkOf returns the slot's ilk.
func (s Slot) IlkOf() symtab.StrIlk { return symtab.StrIlk(s.Ilk) }

// ClassOf returns the slot's function class.
func (s Slot) ClassOf() symtab.FnClass { return symtab.FnClass(s.Class) }

// Find returns the slot holding text under ilk.
func (s *Snapshot) Find(text string, ilk symtab.StrIlk) (Slot, bool) {
	for _, sl := range s.Slots {
		if sl.IlkOf() == ilk && string(sl.Text) == text {
			return sl, true
		}
	}
	return Slot{}, false
}
