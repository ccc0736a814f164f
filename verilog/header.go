package verilog

import (
	"fmt"

	"github.com/gmofishsauce/wut4/bitx"
)

// header emits the module line and its port list, taken from the
// netlist's boundary table in first-occurrence order, plus the
// implicit clock and reset ports every module carries since the core
// only emits synchronous designs.
func (e *Emitter) header() {
	fmt.Fprintf(e.out, "module %s(\n", e.module)
	fmt.Fprintf(e.out, "    input clock,\n")
	fmt.Fprintf(e.out, "    input reset")
	for _, n := range e.nl.Boundary {
		dir := "input"
		if n.Prim() == bitx.PrimOutput {
			dir = "output"
		}
		fmt.Fprintf(e.out, ",\n    %s %s %s", dir, widthSpec(n.Width()), n.Src.Name)
	}
	fmt.Fprintf(e.out, "\n);\n\n")
}

// widthSpec renders the "[hi:0]" range prefix (with no trailing space)
// for a multi-bit port or declaration, or "" for a single-bit one.
func widthSpec(width int) string {
	if width <= 1 {
		return ""
	}
	return fmt.Sprintf("[%d:0]", width-1)
}
