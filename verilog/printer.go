// Package verilog lowers a flattened netlist.Netlist to synthesizable
// Verilog-2005 text: one `assign` or instance per combinational net, a
// single `always @(posedge clock)` block for every register, register
// file, display, finish, and assert, and a module port list taken from
// the netlist's boundary table. It plays the emission role
// lang/ygen/emit.go plays for assembly text - a thin Emitter wrapping a
// *bufio.Writer, one method per syntactic shape.
package verilog

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gmofishsauce/wut4/bitx"
	"github.com/gmofishsauce/wut4/netlist"
)

// Emitter accumulates the Verilog-legal identifier for every net and
// writes module text to out.
type Emitter struct {
	out    *bufio.Writer
	nl     *netlist.Netlist
	module string
	names  []string // names[netID]
	netOf  map[*bitx.BitExpr]int
	err    error
}

// fail records the first error a lowering stage hits and aborts that
// stage's pass over e.nl.Nets; Emit checks err after the assigns stage
// (the only stage that calls fail) and reports it instead of finishing
// the module text.
func (e *Emitter) fail(err error) {
	if e.err == nil {
		e.err = err
	}
}

// NewEmitter prepares an Emitter for nl, mangling every net's name up
// front so declarations, assigns, and the always block can all refer
// to nets by name without re-deriving it.
func NewEmitter(w io.Writer, module string, nl *netlist.Netlist) *Emitter {
	e := &Emitter{out: bufio.NewWriter(w), nl: nl, module: module}
	e.names = make([]string, len(nl.Nets))
	e.netOf = make(map[*bitx.BitExpr]int, len(nl.Nets))
	for i, n := range nl.Nets {
		if n.Prim() == bitx.PrimInput || n.Prim() == bitx.PrimOutput {
			e.names[i] = n.Src.Name
		} else {
			e.names[i] = netlist.Mangle(n)
		}
		e.netOf[n.Src] = i
	}
	return e
}

// tapName returns the mangled wire name of one of a PrimCustomInstance
// node's output taps, by its original *bitx.BitExpr identity - used to
// bind each output port of a Custom instance to its own net even
// though the tap and the instance are different nets.
func (e *Emitter) tapName(tap *bitx.BitExpr) (string, bool) {
	id, ok := e.netOf[tap]
	if !ok {
		return "", false
	}
	return e.name(id), true
}

func (e *Emitter) name(netID int) string { return e.names[netID] }

// Emit writes the complete module to the Emitter's writer and flushes.
func Emit(w io.Writer, module string, nl *netlist.Netlist) error {
	e := NewEmitter(w, module, nl)
	e.header()
	e.declarations()
	e.assigns()
	if e.err != nil {
		return e.err
	}
	e.alwaysBlock()
	fmt.Fprintf(e.out, "endmodule\n")
	return e.out.Flush()
}
