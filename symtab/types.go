package symtab

import "fmt"

// StrNumber identifies one interned string. Zero means "no string".
type StrNumber int

// HashPointer indexes a slot in the HashTable.
type HashPointer int

// StrIlk tags the intended use of an interned string.
type StrIlk uint8

const (
	IlkText StrIlk = iota
	IlkInteger
	IlkAuxCommand
	IlkAuxFile
	IlkBstCommand
	IlkBstFile
	IlkBibFile
	IlkFileExt
	IlkFileArea
	IlkCite
	IlkLcCite
	IlkBstFn
	IlkBibCommand
	IlkMacro
	IlkControlSeq
)

var ilkNames = [...]string{
	IlkText:       "text",
	IlkInteger:    "integer",
	IlkAuxCommand: "aux-command",
	IlkAuxFile:    "aux-file",
	IlkBstCommand: "bst-command",
	IlkBstFile:    "bst-file",
	IlkBibFile:    "bib-file",
	IlkFileExt:    "file-ext",
	IlkFileArea:   "file-area",
	IlkCite:       "cite",
	IlkLcCite:     "lc-cite",
	IlkBstFn:      "bst-fn",
	IlkBibCommand: "bib-command",
	IlkMacro:      "macro",
	IlkControlSeq: "control-seq",
}

func (i StrIlk) String() string {
	if int(i) < len(ilkNames) {
		return ilkNames[i]
	}
	return fmt.Sprintf("ilk(%d)", uint8(i))
}

// ParseIlk maps a name produced by StrIlk.String back to the ilk.
func ParseIlk(name string) (StrIlk, error) {
	for i, n := range ilkNames {
		if n == name {
			return StrIlk(i), nil
		}
	}
	return 0, fmt.Errorf("unknown ilk %q", name)
}

// FnClass marks the interpreter role of a hash slot. It is independent of
// the slot's StrIlk.
type FnClass uint8

const (
	FnUnset FnClass = iota
	FnBuiltin
	FnWizard
	FnIntLit
	FnStrLit
	FnField
	FnIntEntryVar
	FnStrEntryVar
	FnIntGlblVar
	FnStrGlblVar
)

var fnClassNames = [...]string{
	FnUnset:       "",
	FnBuiltin:     "builtin",
	FnWizard:      "wizard",
	FnIntLit:      "int-literal",
	FnStrLit:      "str-literal",
	FnField:       "field",
	FnIntEntryVar: "int-entry-var",
	FnStrEntryVar: "str-entry-var",
	FnIntGlblVar:  "int-global-var",
	FnStrGlblVar:  "str-global-var",
}

func (c FnClass) String() string {
	if int(c) < len(fnClassNames) {
		return fnClassNames[c]
	}
	return fmt.Sprintf("class(%d)", uint8(c))
}

// LookupResult is the outcome of a pool search. Loc is the matching slot
// when Exists is true, otherwise the slot an insert would use or extend.
type LookupResult struct {
	Loc    HashPointer
	Exists bool
}
