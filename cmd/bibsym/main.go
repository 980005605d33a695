// bibsym interns words into a bootstrapped symbol table and reports on it.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/tliron/commonlog"

	"github.com/chazu/bibsym/config"
	"github.com/chazu/bibsym/diag"
	"github.com/chazu/bibsym/engine"
	"github.com/chazu/bibsym/snapshot"
	"github.com/chazu/bibsym/symtab"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	verbose  int
	confDir  string
	ilk      string
	list     bool
	lookups  stringList
	dumpPath string
	dbPath   string
}

type stringList []string

func (s *stringList) String() string     { return fmt.Sprint(*s) }
func (s *stringList) Set(v string) error { *s = append(*s, v); return nil }

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	fs := flag.NewFlagSet("bibsym", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&opts.verbose, "v", 0, "Log verbosity")
	fs.StringVar(&opts.confDir, "config", "", "Directory holding bibsym.toml (default: search upward from .)")
	fs.StringVar(&opts.ilk, "ilk", "text", "Ilk to intern input words under")
	fs.BoolVar(&opts.list, "list", false, "List every occupied hash slot")
	fs.Var(&opts.lookups, "lookup", "Look up a word under -ilk without inserting (repeatable)")
	fs.StringVar(&opts.dumpPath, "dump", "", "Write a CBOR snapshot of the table to this file")
	fs.StringVar(&opts.dbPath, "db", "", "Write the table to this SQLite database")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: bibsym [options] [files...]\n\n")
		fmt.Fprintf(stderr, "Bootstraps the predefined symbols, then interns every whitespace-separated\n")
		fmt.Fprintf(stderr, "word of the given files (or stdin with -) and prints table statistics.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  bibsym -list                      # Show the bootstrapped table\n")
		fmt.Fprintf(stderr, "  bibsym -ilk cite keys.txt         # Intern citation keys\n")
		fmt.Fprintf(stderr, "  bibsym -ilk bst-fn -lookup if$    # Check a name\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	commonlog.Configure(opts.verbose, nil)

	if err := execute(opts, fs.Args(), stdin, stdout); err != nil {
		fmt.Fprintf(stderr, "bibsym: %v\n", err)
		return 1
	}
	return 0
}

func execute(opts options, files []string, stdin io.Reader, stdout io.Writer) error {
	ilk, err := symtab.ParseIlk(opts.ilk)
	if err != nil {
		return err
	}

	var cfg *config.Config
	if opts.confDir != "" {
		cfg, err = config.Load(opts.confDir)
	} else {
		cfg, err = config.FindAndLoad(".")
	}
	if err != nil {
		return err
	}

	ctx, err := engine.New(cfg, diag.NewLogSink())
	if err != nil {
		return err
	}
	if opts.verbose > 0 {
		path := ctx.Config().Path
		if path == "" {
			path = "(defaults)"
		}
		fmt.Fprintf(stdout, "config: %s\n", path)
	}
	if err := ctx.Bootstrap(); err != nil {
		return err
	}

	added := 0
	for _, name := range files {
		n, err := internFile(ctx, name, stdin, ilk)
		added += n
		if err != nil {
			return err
		}
	}

	for _, word := range opts.lookups {
		res := ctx.Pool.Lookup(ctx.Hash, []byte(word), ilk)
		if res.Exists {
			fmt.Fprintf(stdout, "%s: found at slot %d (%s, info %d)\n",
				word, res.Loc, ctx.Hash.Class(res.Loc), ctx.Hash.Info(res.Loc))
		} else {
			fmt.Fprintf(stdout, "%s: not found\n", word)
		}
	}

	snap := snapshot.Take(ctx)
	if opts.list {
		listSlots(stdout, snap)
	}
	if opts.dumpPath != "" {
		data, err := snapshot.Marshal(snap)
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.dumpPath, data, 0644); err != nil {
			return err
		}
	}
	if opts.dbPath != "" {
		if err := snapshot.WriteSQLite(opts.dbPath, snap); err != nil {
			return err
		}
	}

	fmt.Fprintf(stdout, "interned %s new words; %s\n", humanize.Comma(int64(added)), ctx.Stats())
	return nil
}

// internFile interns every word of the named file ("-" is stdin) and
// returns how many were new.
func internFile(ctx *engine.Context, name string, stdin io.Reader, ilk symtab.StrIlk) (int, error) {
	r := stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return 0, err
		}
		defer f.Close()
		r = f
	}

	added := 0
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		res, err := ctx.Pool.LookupOrInsert(ctx.Hash, sc.Bytes(), ilk)
		if err != nil {
			return added, fmt.Errorf("%s: %w", name, err)
		}
		if !res.Exists {
			added++
		}
	}
	return added, sc.Err()
}

func listSlots(w io.Writer, s *snapshot.Snapshot) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Slot", "Str", "Text", "Ilk", "Class", "Info", "Next"})
	for _, sl := range s.Slots {
		next := ""
		if sl.Next != 0 {
			next = fmt.Sprint(sl.Next)
		}
		t.AppendRow(table.Row{sl.Loc, sl.Str, fmt.Sprintf("%q", sl.Text), sl.IlkOf(), sl.ClassOf(), sl.Info, next})
	}
	t.Render()
}
