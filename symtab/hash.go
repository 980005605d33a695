package symtab

import "github.com/chazu/bibsym/arena"

// HashTable maps hashed strings to slots holding a string number, an ilk,
// a chain link and the interpreter metadata for that symbol.
//
// Chain heads live in [HashBase, HashBase+prime). Collisions are resolved
// by linking in the highest unoccupied slot below used; used only moves
// down, and the table is exhausted once it reaches HashBase.
type HashTable struct {
	size  int
	prime int
	used  HashPointer

	next  *arena.Arena[HashPointer]
	text  *arena.Arena[StrNumber]
	ilk   *arena.Arena[StrIlk]
	class *arena.Arena[FnClass]
	info  *arena.Arena[int32]
}

// NewHashTable allocates an empty table with size usable slots.
func NewHashTable(size int) *HashTable {
	h := &HashTable{size: size, prime: HashPrime(size)}
	h.Reset()
	return h
}

// Reset empties every slot and rewinds the overflow counter.
func (h *HashTable) Reset() {
	n := h.max() + 1
	h.next = arena.New[HashPointer](n)
	h.text = arena.New[StrNumber](n)
	h.ilk = arena.New[StrIlk](n)
	h.class = arena.New[FnClass](n)
	h.info = arena.New[int32](n)
	h.used = HashPointer(n)
}

func (h *HashTable) max() int { return h.size + HashBase - 1 }

// Size returns the number of usable slots.
func (h *HashTable) Size() int { return h.size }

// Prime returns the modulus of the string hash.
func (h *HashTable) Prime() int { return h.prime }

// Used returns the overflow high-water mark.
func (h *HashTable) Used() HashPointer { return h.used }

// Max returns the highest valid slot.
func (h *HashTable) Max() HashPointer { return HashPointer(h.max()) }

// Text returns the string number stored in slot p, 0 if empty.
func (h *HashTable) Text(p HashPointer) StrNumber { return h.text.At(int(p)) }

// Ilk returns the ilk of slot p.
func (h *HashTable) Ilk(p HashPointer) StrIlk { return h.ilk.At(int(p)) }

// Next returns the chain link of slot p, 0 at the end of a chain.
func (h *HashTable) Next(p HashPointer) HashPointer { return h.next.At(int(p)) }

// Class returns the function class of slot p.
func (h *HashTable) Class(p HashPointer) FnClass { return h.class.At(int(p)) }

// Info returns the auxiliary integer of slot p.
func (h *HashTable) Info(p HashPointer) int32 { return h.info.At(int(p)) }

// SetText stores string number s in slot p.
func (h *HashTable) SetText(p HashPointer, s StrNumber) { h.text.Set(int(p), s) }

// SetClass tags slot p with function class c.
func (h *HashTable) SetClass(p HashPointer, c FnClass) { h.class.Set(int(p), c) }

// SetInfo stores the auxiliary integer of slot p.
func (h *HashTable) SetInfo(p HashPointer, v int32) { h.info.Set(int(p), v) }

// Occupied returns every slot holding a string, in slot order.
func (h *HashTable) Occupied() []HashPointer {
	var out []HashPointer
	for p := HashPointer(HashBase); p <= h.Max(); p++ {
		if h.Text(p) != 0 {
			out = append(out, p)
		}
	}
	return out
}

// hashBytes is the rolling hash acc = (2*acc + c) mod prime.
func (h *HashTable) hashBytes(str []byte) int {
	acc := 0
	for _, c := range str {
		acc = (2*acc + int(c)) % h.prime
	}
	return acc
}

// head returns the chain head slot for str.
func (h *HashTable) head(str []byte) HashPointer {
	return HashPointer(h.hashBytes(str) + HashBase)
}

// allocOverflow takes the next empty slot below used. It returns false once
// used has reached HashBase.
func (h *HashTable) allocOverflow() (HashPointer, bool) {
	for {
		if h.used == HashBase {
			return 0, false
		}
		h.used--
		if h.Text(h.used) == 0 {
			return h.used, true
		}
	}
}

func (h *HashTable) link(from, to HashPointer) { h.next.Set(int(from), to) }

func (h *HashTable) setIlk(p HashPointer, ilk StrIlk) { h.ilk.Set(int(p), ilk) }
