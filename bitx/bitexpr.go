package bitx

import "github.com/gmofishsauce/wut4/format"

// BitExpr is a width-indexed DAG node denoting a combinational or
// sequential signal. Nodes are value-like in intent (equal primitive +
// equal input references denote the same signal) but, as in the
// source's use of observable sharing, the Go encoding of that is
// reference identity: build a node once, hand the same *BitExpr to
// every consumer, and the flattener (netlist.Flatten) will emit it as
// a single net no matter how many times it is referenced. Building two
// separate BitExpr values with identical shape does NOT automatically
// collapse them to one net; only constant folding does that
// automatically, for every combinational primitive whose inputs are
// all Const (a division or remainder by a zero Const is left unfolded).
type BitExpr struct {
	Prim  Prim
	Width int
	Ins   []*BitExpr
	Hints NameHints

	// Const / DontCare
	ConstVal uint64

	// Mul
	Signed    bool
	FullWidth bool

	// SelectBits
	Hi, Lo int

	// Concat: width of the high (first) operand; Ins[0].Width == HiWidth,
	// Ins[1].Width == Width-HiWidth.
	HiWidth int

	// Mux: width of the selector input, Ins[len(Ins)-1]. Ins[:len(Ins)-1]
	// are the 2^SelWidth data inputs, each of width Width.
	SelWidth int

	// MergeWrites: N enable/value pairs, Ins[2*i] is the enable (width 1)
	// of pair i and Ins[2*i+1] is its value (width Width).
	MergeStrategy MergeStrategy

	// Register / RegisterEn: Ins[0] is next-value (RegisterEn: Ins[1] is
	// enable, width 1). Init may be nil (no reset value emitted).
	Init *BitExpr

	// Input / Output / Custom
	Name string

	// BRAM / RegFileMake
	InitFile   string
	AddrWidth  int
	DataWidth  int
	ByteEnable bool
	RAMKind    RAMKind

	// RegFileMake identity; RegFileRead / RegFileWrite reference the
	// RegFileMake node they target via RegFile.
	RegFileID int
	RegFile   *BitExpr

	// Display
	FormatItems []format.Item

	// Assert
	AssertMsg string

	// TestPlusArgs
	PlusArgName string

	// Custom: Ins[i] are CustomInstance's real data inputs. A
	// multi-output Custom builds one PrimCustomInstance node (this
	// field set) plus one PrimCustom "tap" node per output, each
	// taking the instance as its sole input and recording which
	// output port it names - the same instance-plus-projection shape
	// RegFileMake/RegFileRead use for multi-consumer state. CustomOutNodes
	// is only populated on the instance node, so the flattener can
	// force every output tap into the netlist even if some are
	// otherwise unread (PrimCustomInstance's case in netlist/flatten.go).
	CustomIns      []string
	CustomOuts     []string
	CustomOutNodes []*BitExpr
	CustomOutIndex int
	CustomParams   map[string]string
	Clocked        bool
	Resetable      bool
}

// NameHints accumulates the prefix/root/suffix hints that flow from a
// variable declaration to the net the flattener materializes for it;
// see netlist/mangle.go.
type NameHints struct {
	Prefix []string
	Root   []string
	Suffix []string
}

// WithHint returns a copy of b carrying an additional root name hint.
// rtl.Builder does not call it: FreshReg and FreshWire take no name.
func (b *BitExpr) WithHint(root string) *BitExpr {
	cp := *b
	cp.Hints.Root = append(append([]string{}, b.Hints.Root...), root)
	return &cp
}

func newNode(p Prim, width int, ins ...*BitExpr) *BitExpr {
	return &BitExpr{Prim: p, Width: width, Ins: ins}
}

// IsConst reports whether b folds to a known constant value.
func (b *BitExpr) IsConst() bool {
	return b.Prim == PrimConst
}
