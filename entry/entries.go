package entry

import (
	"github.com/chazu/bibsym/arena"
)

const (
	DefaultEntStrSize  = 250
	DefaultGlobStrSize = 20000

	// EndOfString terminates a value in the entry string buffers.
	EndOfString byte = 127
)

// Entries holds the integer and string entry variables of every cited
// entry. The arrays are sized once the number of citations is known.
type Entries struct {
	strSize    int
	numInts    int
	numStrs    int
	sortKeyNum int

	ints *arena.Arena[int32]
	strs *arena.Arena[byte]
}

// NewEntries returns an empty table whose string variables hold at most
// strSize bytes each.
func NewEntries(strSize int) *Entries {
	return &Entries{strSize: strSize}
}

// StrSize returns the maximum length of a string variable.
func (e *Entries) StrSize() int { return e.strSize }

// NumEntInts returns the number of integer entry variables.
func (e *Entries) NumEntInts() int { return e.numInts }

// SetNumEntInts sets the number of integer entry variables.
func (e *Entries) SetNumEntInts(n int) { e.numInts = n }

// NumEntStrs returns the number of string entry variables.
func (e *Entries) NumEntStrs() int { return e.numStrs }

// SetNumEntStrs sets the number of string entry variables.
func (e *Entries) SetNumEntStrs(n int) { e.numStrs = n }

// SortKeyNum returns the string-variable slot of sort.key$.
func (e *Entries) SortKeyNum() int { return e.sortKeyNum }

// SetSortKeyNum records the string-variable slot of sort.key$.
func (e *Entries) SetSortKeyNum(n int) { e.sortKeyNum = n }

// ReserveStr allocates the next string-variable slot and returns it.
func (e *Entries) ReserveStr() int {
	n := e.numStrs
	e.numStrs++
	return n
}

// InitInts sizes the integer variables for numCites entries.
func (e *Entries) InitInts(numCites int) {
	e.ints = arena.New[int32]((e.numInts + 1) * (numCites + 1))
}

// InitStrs sizes the string variables for numCites entries, each value
// starting out terminated.
func (e *Entries) InitStrs(numCites int) {
	e.strs = arena.New[byte]((e.numStrs + 1) * (numCites + 1) * (e.strSize + 1))
	e.strs.Fill(EndOfString)
}

// Int returns an integer variable value. It panics if InitInts has not run.
func (e *Entries) Int(pos int) int32 { return e.ints.At(pos) }

// SetInt stores an integer variable value.
func (e *Entries) SetInt(pos int, v int32) { e.ints.Set(pos, v) }

// Str returns one byte of the string variable buffers. It panics if InitStrs
// has not run.
func (e *Entries) Str(pos int) byte { return e.strs.At(pos) }

// SetStr stores one byte of the string variable buffers.
func (e *Entries) SetStr(pos int, c byte) { e.strs.Set(pos, c) }

// StrValue returns string variable slot of entry cite, up to its
// terminator.
func (e *Entries) StrValue(cite, slot int) []byte {
	base := (cite*e.numStrs + slot) * (e.strSize + 1)
	buf := e.strs.Slice(base, base+e.strSize+1)
	for i, c := range buf {
		if c == EndOfString {
			return buf[:i]
		}
	}
	return buf
}

// SetStrValue stores v, truncated to StrSize, into string variable slot of
// entry cite.
func (e *Entries) SetStrValue(cite, slot int, v []byte) {
	if len(v) > e.strSize {
		v = v[:e.strSize]
	}
	base := (cite*e.numStrs + slot) * (e.strSize + 1)
	e.strs.Copy(base, v)
	e.strs.Set(base+len(v), EndOfString)
}
