package builtin

// Op is the dispatch ordinal of a built-in style function.
type Op int32

const (
	OpEq Op = iota
	OpGt
	OpLt
	OpPlus
	OpMinus
	OpConcat
	OpGets
	OpAddPeriod
	OpCallType
	OpChangeCase
	OpChrToInt
	OpCite
	OpDuplicate
	OpEmpty
	OpFormatName
	OpIf
	OpIntToChr
	OpIntToStr
	OpMissing
	OpNewline
	OpNumNames
	OpPop
	OpPreamble
	OpPurify
	OpQuote
	OpSkip
	OpStack
	OpSubstring
	OpSwap
	OpTextLength
	OpTextPrefix
	OpTop
	OpType
	OpWarning
	OpWhile
	OpWidth
	OpWrite

	NumOps
)

// Ops lists every built-in in registration order; Ops[op] names op.
var Ops = [NumOps]string{
	OpEq:         "=",
	OpGt:         ">",
	OpLt:         "<",
	OpPlus:       "+",
	OpMinus:      "-",
	OpConcat:     "*",
	OpGets:       ":=",
	OpAddPeriod:  "add.period$",
	OpCallType:   "call.type$",
	OpChangeCase: "change.case$",
	OpChrToInt:   "chr.to.int$",
	OpCite:       "cite$",
	OpDuplicate:  "duplicate$",
	OpEmpty:      "empty$",
	OpFormatName: "format.name$",
	OpIf:         "if$",
	OpIntToChr:   "int.to.chr$",
	OpIntToStr:   "int.to.str$",
	OpMissing:    "missing$",
	OpNewline:    "newline$",
	OpNumNames:   "num.names$",
	OpPop:        "pop$",
	OpPreamble:   "preamble$",
	OpPurify:     "purify$",
	OpQuote:      "quote$",
	OpSkip:       "skip$",
	OpStack:      "stack$",
	OpSubstring:  "substring$",
	OpSwap:       "swap$",
	OpTextLength: "text.length$",
	OpTextPrefix: "text.prefix$",
	OpTop:        "top$",
	OpType:       "type$",
	OpWarning:    "warning$",
	OpWhile:      "while$",
	OpWidth:      "width$",
	OpWrite:      "write$",
}

func (o Op) String() string {
	if o >= 0 && o < NumOps {
		return Ops[o]
	}
	return "?"
}

// Named pairs a predefined name with the ordinal stored in its slot.
type Named struct {
	Name    string
	Ordinal int32
}

// Auxiliary-file commands, in registration order.
var AuxCommands = []Named{
	{`\citation`, 2},
	{`\bibdata`, 0},
	{`\bibstyle`, 1},
	{`\@input`, 3},
}

// Style-file commands.
var BstCommands = []Named{
	{"entry", 0},
	{"execute", 1},
	{"function", 2},
	{"integers", 3},
	{"iterate", 4},
	{"macro", 5},
	{"read", 6},
	{"reverse", 7},
	{"sort", 8},
	{"strings", 9},
}

// Database-file commands.
var BibCommands = []Named{
	{"comment", 0},
	{"preamble", 1},
	{"string", 2},
}

// Control sequences for foreign letters, as in \oe or \ss.
var ControlSeqs = []Named{
	{"i", 0},
	{"j", 1},
	{"oe", 2},
	{"OE", 3},
	{"ae", 4},
	{"AE", 5},
	{"aa", 6},
	{"AA", 7},
	{"o", 8},
	{"O", 9},
	{"l", 10},
	{"L", 11},
	{"ss", 12},
}

const (
	AuxExtension = ".aux"
	NullString   = ""
	DefaultType  = "default.type"
	Crossref     = "crossref"
	SortKey      = "sort.key$"
	EntryMax     = "entry.max$"
	GlobalMax    = "global.max$"
)
