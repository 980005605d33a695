// Package builtin seeds the symbol table with every name the style
// interpreter knows before it reads any input.
package builtin

import (
	"fmt"

	"github.com/chazu/bibsym/entry"
	"github.com/chazu/bibsym/symtab"
)

// Globals are the strings and slots the rest of a run refers to directly.
type Globals struct {
	SAuxExtension symtab.StrNumber
	SNull         symtab.StrNumber
	SDefault      symtab.StrNumber
	// BDefault is the slot of skip$, the function run for unknown entry
	// types.
	BDefault symtab.HashPointer
}

// Registrar holds what PreDefine writes into.
type Registrar struct {
	Pool        *symtab.StringPool
	Hash        *symtab.HashTable
	Fields      *entry.Fields
	Entries     *entry.Entries
	GlobStrSize int
}

type registrar struct {
	*Registrar
	err error
}

// insert interns name under ilk and tags its slot. After the first failure
// it does nothing, so a sequence of calls can be checked once at the end.
func (r *registrar) insert(name string, ilk symtab.StrIlk, class symtab.FnClass, info int32) symtab.HashPointer {
	if r.err != nil {
		return 0
	}
	res, err := r.Pool.LookupOrInsert(r.Hash, []byte(name), ilk)
	if err != nil {
		r.err = fmt.Errorf("predefine %q: %w", name, err)
		return 0
	}
	if class != symtab.FnUnset {
		r.Hash.SetClass(res.Loc, class)
	}
	r.Hash.SetInfo(res.Loc, info)
	return res.Loc
}

func (r *registrar) insertAll(names []Named, ilk symtab.StrIlk) {
	for _, n := range names {
		r.insert(n.Name, ilk, symtab.FnUnset, n.Ordinal)
	}
}

// PreDefine registers every predefined name. It must run once on an empty
// table; any failure leaves the run unusable.
func (reg *Registrar) PreDefine() (Globals, error) {
	r := &registrar{Registrar: reg}
	var g Globals

	aux := r.insert(AuxExtension, symtab.IlkFileExt, symtab.FnUnset, 0)
	r.insertAll(AuxCommands, symtab.IlkAuxCommand)
	r.insertAll(BstCommands, symtab.IlkBstCommand)
	r.insertAll(BibCommands, symtab.IlkBibCommand)

	for op := Op(0); op < NumOps; op++ {
		loc := r.insert(Ops[op], symtab.IlkBstFn, symtab.FnBuiltin, int32(op))
		if op == OpSkip {
			g.BDefault = loc
		}
	}

	null := r.insert(NullString, symtab.IlkText, symtab.FnStrLit, 0)
	def := r.insert(DefaultType, symtab.IlkText, symtab.FnStrLit, 0)

	r.insertAll(ControlSeqs, symtab.IlkControlSeq)

	if r.err == nil {
		field := reg.Fields.NumFields()
		r.insert(Crossref, symtab.IlkBstFn, symtab.FnField, int32(field))
		if r.err == nil {
			reg.Fields.SetCrossrefNum(reg.Fields.Reserve())
			reg.Fields.SetPreDefinedFields(reg.Fields.NumFields())
		}
	}

	if r.err == nil {
		slot := reg.Entries.NumEntStrs()
		r.insert(SortKey, symtab.IlkBstFn, symtab.FnStrEntryVar, int32(slot))
		if r.err == nil {
			reg.Entries.SetSortKeyNum(reg.Entries.ReserveStr())
		}
	}

	r.insert(EntryMax, symtab.IlkBstFn, symtab.FnIntGlblVar, int32(reg.Entries.StrSize()))
	r.insert(GlobalMax, symtab.IlkBstFn, symtab.FnIntGlblVar, int32(reg.GlobStrSize))

	if r.err != nil {
		return Globals{}, r.err
	}
	g.SAuxExtension = reg.Hash.Text(aux)
	g.SNull = reg.Hash.Text(null)
	g.SDefault = reg.Hash.Text(def)
	return g, nil
}
