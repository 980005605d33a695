package snapshot

import (
	"bytes"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/chazu/bibsym/diag"
	"github.com/chazu/bibsym/engine"
	"github.com/chazu/bibsym/symtab"
)

func bootstrapped(t *testing.T) *engine.Context {
	t.Helper()
	c, err := engine.New(nil, diag.Discard{})
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Bootstrap(); err != nil {
		t.Fatal(err)
	}
	return c
}

func TestTake(t *testing.T) {
	c := bootstrapped(t)
	s := Take(c)

	if len(s.Slots) != c.Stats().Slots {
		t.Errorf("slots: got %d, want %d", len(s.Slots), c.Stats().Slots)
	}
	sl, ok := s.Find("while$", symtab.IlkBstFn)
	if !ok {
		t.Fatal("while$ missing from snapshot")
	}
	if sl.ClassOf() != symtab.FnBuiltin || sl.Info != 34 {
		t.Errorf("while$: class %v info %d", sl.ClassOf(), sl.Info)
	}
	if _, ok := s.Find("while$", symtab.IlkText); ok {
		t.Error("while$ should not exist as text")
	}
}

func TestWireIsCanonical(t *testing.T) {
	s := Take(bootstrapped(t))

	a, err := Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Marshal(Take(bootstrapped(t)))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("identical runs should encode identically")
	}

	back, err := Unmarshal(a)
	if err != nil {
		t.Fatal(err)
	}
	if back.Prime != s.Prime || len(back.Slots) != len(s.Slots) {
		t.Errorf("decoded header: prime %d slots %d", back.Prime, len(back.Slots))
	}
	if _, err := Unmarshal([]byte{0xff}); err == nil {
		t.Error("expected error for garbage input")
	}
}

func TestWriteSQLite(t *testing.T) {
	s := Take(bootstrapped(t))
	path := filepath.Join(t.TempDir(), "symbols.db")

	if err := WriteSQLite(path, s); err != nil {
		t.Fatalf("WriteSQLite: %v", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM symbols`).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != len(s.Slots) {
		t.Errorf("rows: got %d, want %d", n, len(s.Slots))
	}

	var class string
	var info int
	err = db.QueryRow(`SELECT class, info FROM symbols WHERE ilk = 'control-seq' AND text = ?`, []byte("ss")).Scan(&class, &info)
	if err != nil {
		t.Fatal(err)
	}
	if info != 12 {
		t.Errorf("ss ordinal: got %d, want 12", info)
	}
}
