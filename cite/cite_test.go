package cite

import (
	"testing"

	"github.com/chazu/bibsym/entry"
	"github.com/chazu/bibsym/symtab"
)

func TestListGrowsTogether(t *testing.T) {
	l := NewList(2)
	l.SetCite(1, 10)
	l.SetInfo(1, 11)
	l.SetType(1, 12)
	l.SetExists(1, true)

	l.CheckOverflow(1)
	if l.Capacity() != 2 {
		t.Fatalf("CheckOverflow(1) grew to %d", l.Capacity())
	}
	l.CheckOverflow(2)
	if l.Capacity() != 4 {
		t.Fatalf("CheckOverflow(2): capacity %d, want 4", l.Capacity())
	}

	l.SetCite(3, 1)
	l.SetInfo(3, 1)
	l.SetType(3, 1)
	l.SetExists(3, true)

	if l.Cite(1) != 10 || l.Info(1) != 11 || l.Type(1) != 12 || !l.Exists(1) {
		t.Error("values before grow were lost")
	}
}

func TestSortInfo(t *testing.T) {
	l := NewList(5)
	for i, v := range []symtab.StrNumber{9, 4, 7, 1, 3} {
		l.SetInfo(i, v)
	}
	l.SortInfo(1, 4)
	want := []symtab.StrNumber{9, 1, 4, 7, 3}
	for i, w := range want {
		if l.Info(i) != w {
			t.Errorf("Info(%d): got %d, want %d", i, l.Info(i), w)
		}
	}
}

func TestLowerASCII(t *testing.T) {
	in := []byte("Knuth:1984\xC9")
	got := LowerASCII(in)
	if string(got) != "knuth:1984\xC9" {
		t.Errorf("LowerASCII: got %q", got)
	}
	if string(in) != "Knuth:1984\xC9" {
		t.Error("input was modified")
	}
}

func TestFindLocsAndAddDatabaseCite(t *testing.T) {
	p := symtab.NewStringPool(symtab.DefaultLimits(), nil)
	h := symtab.NewHashTable(symtab.DefaultLimits().HashSize)

	key, err := p.LookupOrInsert(h, []byte("Knuth84"), symtab.IlkCite)
	if err != nil {
		t.Fatal(err)
	}
	keyStr := h.Text(key.Loc)

	locs := FindLocs(p, h, keyStr)
	if !locs.CiteFound || locs.CiteLoc != key.Loc {
		t.Errorf("cite loc: %+v, want found at %d", locs, key.Loc)
	}
	if locs.LcFound {
		t.Error("lowercase key was never inserted")
	}

	lc, err := p.LookupOrInsert(h, []byte("knuth84"), symtab.IlkLcCite)
	if err != nil {
		t.Fatal(err)
	}
	locs = FindLocs(p, h, keyStr)
	if !locs.LcFound || locs.LcLoc != lc.Loc {
		t.Errorf("lc loc: %+v, want found at %d", locs, lc.Loc)
	}

	l := NewList(1)
	fields := entry.NewFields(2)
	fields.SetNumFields(3)

	next := l.AddDatabaseCite(1, key.Loc, lc.Loc, h, fields)
	if next != 2 {
		t.Errorf("next cite: got %d, want 2", next)
	}
	if l.Capacity() != 2 {
		t.Errorf("list capacity: got %d, want 2", l.Capacity())
	}
	if fields.Capacity() <= 6 {
		t.Errorf("fields capacity %d cannot address slot 6", fields.Capacity())
	}
	if l.Cite(1) != keyStr {
		t.Errorf("Cite(1): got %d, want %d", l.Cite(1), keyStr)
	}
	if h.Info(key.Loc) != 1 {
		t.Errorf("cite slot info: got %d, want 1", h.Info(key.Loc))
	}
	if h.Info(lc.Loc) != int32(key.Loc) {
		t.Errorf("lc slot info: got %d, want %d", h.Info(lc.Loc), key.Loc)
	}
}
