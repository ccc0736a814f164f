// Package netlist flattens a bitx.BitExpr DAG into a dense, numbered
// array of Nets - the form the verilog package prints from. The
// flattener plays the same role sim/tsp/gen.go's getTypes/getInstances
// pass plays over a KiCad S-expression tree: walk once, assign a
// stable id to each distinct thing, and record how they connect.
package netlist

import "github.com/gmofishsauce/wut4/bitx"

// Net is the flattened form of one BitExpr node: a unique id, its
// primitive (read off Src, which also carries every primitive-specific
// parameter - ConstVal, SelectBits range, format items, and so on -
// that isn't itself a sub-expression), and its resolved connectivity.
type Net struct {
	ID    int
	Src   *bitx.BitExpr
	Ins   []int // net ids of Src.Ins, in order
	Hints bitx.NameHints

	// InitNet is the net id of a Register/RegisterEn's init value, or
	// -1 if the register has no reset value.
	InitNet int

	// RegFileNet is the net id of the RegFileMake a RegFileRead or
	// RegFileWrite targets, or -1 if Src is not one of those.
	RegFileNet int
}

func (n *Net) Prim() bitx.Prim { return n.Src.Prim }
func (n *Net) Width() int      { return n.Src.Width }

// Netlist is the dense, creation-ordered array of all materialized
// nets plus the boundary/always-block side tables the backend needs.
type Netlist struct {
	Nets []*Net

	// Boundary holds Input/Output nets in first-occurrence-by-name
	// order, the order the backend emits module ports in.
	Boundary []*Net

	// Sequential holds every net that contributes always-block content:
	// registers, register files, displays, finishes, and asserts.
	Sequential []*Net
}

// Get returns the net with the given id.
func (nl *Netlist) Get(id int) *Net { return nl.Nets[id] }
