// Package engine ties the string pool, hash table and entry storage of one
// processing run together.
package engine

import (
	"fmt"

	"github.com/chazu/bibsym/builtin"
	"github.com/chazu/bibsym/cite"
	"github.com/chazu/bibsym/config"
	"github.com/chazu/bibsym/diag"
	"github.com/chazu/bibsym/entry"
	"github.com/chazu/bibsym/symtab"
)

// Context owns all state of a single run. It is not safe for concurrent
// use; give each concurrent run its own Context.
type Context struct {
	cfg  *config.Config
	sink diag.Sink

	Pool    *symtab.StringPool
	Hash    *symtab.HashTable
	Cites   *cite.List
	Entries *entry.Entries
	Fields  *entry.Fields

	builtin.Globals
	bootstrapped bool
}

// New creates an empty context. A nil cfg means the defaults and a nil
// sink logs overflow reports through commonlog.
func New(cfg *config.Config, sink diag.Sink) (*Context, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	if sink == nil {
		sink = diag.NewLogSink()
	}
	c := &Context{cfg: cfg, sink: sink}
	c.Reset()
	return c, nil
}

// Config returns the configuration the context was built from.
func (c *Context) Config() *config.Config { return c.cfg }

// Reset discards everything and returns the context to its freshly
// created, not yet bootstrapped state.
func (c *Context) Reset() {
	l := c.cfg.Limits()
	c.Pool = symtab.NewStringPool(l, c.sink)
	c.Hash = symtab.NewHashTable(l.HashSize)
	c.Cites = cite.NewList(c.cfg.Cites.MaxCites)
	c.Entries = entry.NewEntries(c.cfg.Entries.EntStrSize)
	c.Fields = entry.NewFields(c.cfg.Entries.MaxFields)
	c.Globals = builtin.Globals{}
	c.bootstrapped = false
}

// Bootstrap registers the predefined names. It runs at most once per
// Reset.
func (c *Context) Bootstrap() error {
	if c.bootstrapped {
		return nil
	}
	reg := &builtin.Registrar{
		Pool:        c.Pool,
		Hash:        c.Hash,
		Fields:      c.Fields,
		Entries:     c.Entries,
		GlobStrSize: c.cfg.Entries.GlobStrSize,
	}
	g, err := reg.PreDefine()
	if err != nil {
		return fmt.Errorf("engine: bootstrap: %w", err)
	}
	c.Globals = g
	c.bootstrapped = true
	return nil
}

// Bootstrapped reports whether Bootstrap has succeeded since the last
// Reset.
func (c *Context) Bootstrapped() bool { return c.bootstrapped }

// StrLookup searches buf[ptr:ptr+n] under ilk, inserting it when insert is
// set. Errors only come from inserting.
func (c *Context) StrLookup(buf []byte, ptr, n int, ilk symtab.StrIlk, insert bool) (symtab.LookupResult, error) {
	str := buf[ptr : ptr+n]
	if !insert {
		return c.Pool.Lookup(c.Hash, str, ilk), nil
	}
	return c.Pool.LookupOrInsert(c.Hash, str, ilk)
}

// Intern inserts str under ilk and returns its string number.
func (c *Context) Intern(str []byte, ilk symtab.StrIlk) (symtab.StrNumber, error) {
	res, err := c.Pool.LookupOrInsert(c.Hash, str, ilk)
	if err != nil {
		return 0, err
	}
	return c.Hash.Text(res.Loc), nil
}

// Str returns the bytes of s.
func (c *Context) Str(s symtab.StrNumber) []byte { return c.Pool.Get(s) }

// Stats reports pool and table occupancy.
func (c *Context) Stats() symtab.Stats { return symtab.CollectStats(c.Pool, c.Hash) }

// FindCiteLocs looks up a citation key and its lowercase form.
func (c *Context) FindCiteLocs(citeStr symtab.StrNumber) cite.Locs {
	return cite.FindLocs(c.Pool, c.Hash, citeStr)
}

// AddDatabaseCite records a citation found only in a database file.
func (c *Context) AddDatabaseCite(newCite int, citeLoc, lcCiteLoc symtab.HashPointer) int {
	return c.Cites.AddDatabaseCite(newCite, citeLoc, lcCiteLoc, c.Hash, c.Fields)
}
