package symtab

import (
	"bytes"
	"fmt"

	"github.com/chazu/bibsym/arena"
	"github.com/chazu/bibsym/diag"
)

// offsetChunk is the growth increment of the offset arena.
const offsetChunk = 4096

// StringPool stores interned bytes back to back. String s spans
// offsets[s] up to offsets[s+1]; numbering starts at 1.
type StringPool struct {
	limits Limits
	sink   diag.Sink

	strings *arena.Arena[byte]
	offsets *arena.Arena[int]
	poolPtr int
	strPtr  StrNumber
}

// NewStringPool allocates an empty pool. A nil sink discards reports.
func NewStringPool(limits Limits, sink diag.Sink) *StringPool {
	if sink == nil {
		sink = diag.Discard{}
	}
	p := &StringPool{limits: limits, sink: sink}
	p.Reset()
	return p
}

// Reset drops every string and reallocates the arenas at their initial
// capacity.
func (p *StringPool) Reset() {
	p.strings = arena.New[byte](p.limits.PoolSize)
	p.offsets = arena.New[int](min(p.limits.MaxStrings+1, offsetChunk))
	p.poolPtr = 0
	p.strPtr = 1
}

// Limits returns the capacities the pool was built with.
func (p *StringPool) Limits() Limits { return p.limits }

// StrPtr returns the number the next new string will receive.
func (p *StringPool) StrPtr() StrNumber { return p.strPtr }

// PoolPtr returns the number of bytes in use.
func (p *StringPool) PoolPtr() int { return p.poolPtr }

// Capacity returns the current byte arena size.
func (p *StringPool) Capacity() int { return p.strings.Len() }

// Len returns the number of strings created.
func (p *StringPool) Len() int { return int(p.strPtr) - 1 }

// Grow extends the byte arena by one PoolSize increment.
func (p *StringPool) Grow() {
	p.strings.Grow(p.limits.PoolSize)
}

func (p *StringPool) offset(i StrNumber) int {
	if int(i) >= p.offsets.Len() {
		return 0
	}
	return p.offsets.At(int(i))
}

// TryGet returns the bytes of string s. It fails with ErrDoesntExist when s
// is zero or at least StrPtr()+Slack, and with ErrInvalid when s is at or
// past MaxStrings. Numbers inside the slack window resolve to the string
// under construction (s == StrPtr()) or to nothing.
func (p *StringPool) TryGet(s StrNumber) ([]byte, error) {
	if s <= 0 || int(s) >= int(p.strPtr)+p.limits.Slack {
		return nil, fmt.Errorf("%w: %d", ErrDoesntExist, s)
	}
	if int(s) >= p.limits.MaxStrings {
		return nil, fmt.Errorf("%w: %d", ErrInvalid, s)
	}
	start, end := p.offset(s), p.offset(s+1)
	switch {
	case s == p.strPtr:
		end = p.poolPtr
	case s > p.strPtr:
		return []byte{}, nil
	}
	return p.strings.Slice(start, end), nil
}

// Get is TryGet for callers holding a number the pool issued. A bad number
// is a programming error and panics.
func (p *StringPool) Get(s StrNumber) []byte {
	str, err := p.TryGet(s)
	if err != nil {
		panic(err)
	}
	return str
}

// Equal reports whether two strings hold identical bytes.
func (p *StringPool) Equal(s1, s2 StrNumber) bool {
	return bytes.Equal(p.Get(s1), p.Get(s2))
}

// ---------------------------------------------------------------------------
// Lookup
// ---------------------------------------------------------------------------

func (p *StringPool) holds(s StrNumber, str []byte) bool {
	got, err := p.TryGet(s)
	return err == nil && bytes.Equal(got, str)
}

// Lookup searches for str under ilk without changing anything.
func (p *StringPool) Lookup(h *HashTable, str []byte, ilk StrIlk) LookupResult {
	loc := h.head(str)
	for {
		if existing := h.Text(loc); existing > 0 && h.Ilk(loc) == ilk && p.holds(existing, str) {
			return LookupResult{Loc: loc, Exists: true}
		}
		if h.Next(loc) == 0 {
			return LookupResult{Loc: loc}
		}
		loc = h.Next(loc)
	}
}

// LookupOrInsert finds str under ilk, inserting it when missing. When the
// same bytes already exist under another ilk the new slot reuses their
// string number instead of copying the bytes again.
//
// The only errors are ErrStringOverflow and ErrHashOverflow, both reported
// to the sink first. A failed insert adds no string and no slot.
func (p *StringPool) LookupOrInsert(h *HashTable, str []byte, ilk StrIlk) (LookupResult, error) {
	loc := h.head(str)
	var shared StrNumber
	for {
		existing := h.Text(loc)
		if existing > 0 && p.holds(existing, str) {
			if h.Ilk(loc) == ilk {
				return LookupResult{Loc: loc, Exists: true}, nil
			}
			shared = existing
		}
		if h.Next(loc) == 0 {
			break
		}
		loc = h.Next(loc)
	}

	if shared == 0 && int(p.strPtr) == p.limits.MaxStrings {
		p.sink.ReportOverflow("number of strings", p.limits.MaxStrings)
		return LookupResult{}, ErrStringOverflow
	}

	if h.Text(loc) > 0 {
		free, ok := h.allocOverflow()
		if !ok {
			p.sink.ReportOverflow("hash size", h.Size())
			return LookupResult{}, ErrHashOverflow
		}
		h.link(loc, free)
		loc = free
	}

	if shared == 0 {
		shared = p.add(str)
	}
	h.SetText(loc, shared)
	h.setIlk(loc, ilk)
	return LookupResult{Loc: loc}, nil
}

// add appends str and closes it off as a new string. The caller has
// already checked the string count.
func (p *StringPool) add(str []byte) StrNumber {
	for p.poolPtr+len(str) > p.strings.Len() {
		p.Grow()
	}
	p.strings.Copy(p.poolPtr, str)
	p.poolPtr += len(str)
	return p.makeString()
}

func (p *StringPool) makeString() StrNumber {
	p.strPtr++
	for int(p.strPtr) >= p.offsets.Len() {
		p.offsets.Grow(offsetChunk)
	}
	p.offsets.Set(int(p.strPtr), p.poolPtr)
	return p.strPtr - 1
}
