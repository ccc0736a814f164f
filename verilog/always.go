package verilog

import (
	"fmt"

	"github.com/gmofishsauce/wut4/bitx"
	"github.com/gmofishsauce/wut4/netlist"
)

// alwaysBlock emits the module's single sequential block: an
// if(reset)/else split gated on posedge clock. Reset sets every
// register that has an initial value (register-file slots are not
// reset); otherwise every register latches its resolved
// next-value (already conditioned on enable for RegisterEn at the net
// level, through the enable term below), and displays/finishes/asserts/
// register-file writes fire under their own guard.
func (e *Emitter) alwaysBlock() {
	fmt.Fprintf(e.out, "always @(posedge clock) begin\n")
	fmt.Fprintf(e.out, "  if (reset) begin\n")
	e.resetBody()
	fmt.Fprintf(e.out, "  end else begin\n")
	e.sequentialBody()
	fmt.Fprintf(e.out, "  end\nend\n\n")
}

func (e *Emitter) resetBody() {
	for _, n := range e.nl.Sequential {
		switch n.Prim() {
		case bitx.PrimRegister, bitx.PrimRegisterEn:
			if n.InitNet >= 0 {
				fmt.Fprintf(e.out, "    %s <= %s;\n", e.name(n.ID), e.name(n.InitNet))
			}
		}
	}
}

func (e *Emitter) sequentialBody() {
	for _, n := range e.nl.Sequential {
		switch n.Prim() {
		case bitx.PrimRegister:
			fmt.Fprintf(e.out, "    %s <= %s;\n", e.name(n.ID), e.name(n.Ins[0]))
		case bitx.PrimRegisterEn:
			next, en := e.name(n.Ins[0]), e.name(n.Ins[1])
			fmt.Fprintf(e.out, "    if (%s) %s <= %s;\n", en, e.name(n.ID), next)
		case bitx.PrimDisplay:
			e.displayStmt(n)
		case bitx.PrimFinish:
			fmt.Fprintf(e.out, "    if (%s) $finish;\n", e.name(n.Ins[0]))
		case bitx.PrimAssert:
			en, pred := e.name(n.Ins[0]), e.name(n.Ins[1])
			fmt.Fprintf(e.out, "    if (%s == 1) if (%s == 0) begin $write(\"%s\"); $finish; end\n", en, pred, n.Src.AssertMsg)
		case bitx.PrimRegFileWrite:
			e.regFileWriteStmt(n)
		}
	}
}

// regFileWriteStmt emits a guarded array-element write. RegFileWrite's
// inputs are [enable, addr, data] and RegFileNet identifies the
// declared array.
func (e *Emitter) regFileWriteStmt(n *netlist.Net) {
	en, addr, data := e.name(n.Ins[0]), e.name(n.Ins[1]), e.name(n.Ins[2])
	arr := e.name(n.RegFileNet)
	fmt.Fprintf(e.out, "    if (%s) %s[%s] <= %s;\n", en, arr, addr, data)
}
