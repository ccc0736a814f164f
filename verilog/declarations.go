package verilog

import (
	"fmt"
	"strings"

	"github.com/gmofishsauce/wut4/bitx"
	"github.com/gmofishsauce/wut4/netlist"
)

// declarations emits one declaration per net. Input/Output nets are
// skipped - they were already declared as ports by header.
func (e *Emitter) declarations() {
	for _, n := range e.nl.Nets {
		switch n.Prim() {
		case bitx.PrimInput, bitx.PrimOutput,
			bitx.PrimDisplay, bitx.PrimFinish, bitx.PrimAssert,
			bitx.PrimRegFileWrite, bitx.PrimCustomInstance:
			continue
		case bitx.PrimConst:
			fmt.Fprintf(e.out, "wire %s%s = %d'h%x;\n", widthSpec(n.Width()), e.name(n.ID), n.Width(), n.Src.ConstVal)
		case bitx.PrimDontCare:
			fmt.Fprintf(e.out, "wire %s%s = %d'b%s;\n", widthSpec(n.Width()), e.name(n.ID), n.Width(), strings.Repeat("x", n.Width()))
		case bitx.PrimRegister, bitx.PrimRegisterEn:
			fmt.Fprintf(e.out, "reg %s%s;\n", widthSpec(n.Width()), e.name(n.ID))
		case bitx.PrimMux:
			e.muxDecl(n)
		case bitx.PrimBRAM:
			e.bramDecl(n)
		case bitx.PrimRegFileMake:
			e.regFileDecl(n)
		case bitx.PrimRegFileRead:
			fmt.Fprintf(e.out, "wire %s%s;\n", widthSpec(n.Width()), e.name(n.ID))
		case bitx.PrimCustom:
			fmt.Fprintf(e.out, "wire %s%s;\n", widthSpec(n.Width()), e.name(n.ID))
		default:
			fmt.Fprintf(e.out, "wire %s%s;\n", widthSpec(n.Width()), e.name(n.ID))
		}
	}
	fmt.Fprintln(e.out)
}

// muxDecl emits a Mux as a declaration plus, for a multi-way select
// (SelWidth > 1), a case-statement function body rather than a ternary
// continuous assign - assigns.go handles the two-input (SelWidth == 1)
// case with a plain ternary instead.
func (e *Emitter) muxDecl(n *netlist.Net) {
	if n.Src.SelWidth <= 1 {
		fmt.Fprintf(e.out, "wire %s%s;\n", widthSpec(n.Width()), e.name(n.ID))
		return
	}
	fname := e.name(n.ID) + "_f"
	fmt.Fprintf(e.out, "function %s%s;\n", widthSpec(n.Width()), fname)
	fmt.Fprintf(e.out, "  input %s sel;\n", widthSpec(n.Src.SelWidth))
	numData := len(n.Ins) - 1
	for i := 0; i < numData; i++ {
		fmt.Fprintf(e.out, "  input %sd%d;\n", widthSpec(n.Width()), i)
	}
	fmt.Fprintf(e.out, "  begin\n    case(sel)\n")
	for i := 0; i < numData; i++ {
		fmt.Fprintf(e.out, "      %d: %s = d%d;\n", i, fname, i)
	}
	fmt.Fprintf(e.out, "      default: %s = %d'b%s;\n", fname, n.Width(), strings.Repeat("x", n.Width()))
	fmt.Fprintf(e.out, "    endcase\n  end\nendfunction\n")
	fmt.Fprintf(e.out, "wire %s%s;\n", widthSpec(n.Width()), e.name(n.ID))
}

func (e *Emitter) bramDecl(n *netlist.Net) {
	if n.Src.RAMKind == bitx.RAMSinglePort {
		// The single DO output is this net's own value - iface.BlockRAM's
		// Out() hands out the BRAM node itself, so any expression that
		// reads it references e.name(n.ID) directly, not a suffixed
		// port wire. Declaring a second, differently-named wire here
		// (as the dual-port branch below does) would leave that
		// reference pointing at an undeclared - and, by Verilog's
		// implicit-net rule, silently 1-bit - signal.
		fmt.Fprintf(e.out, "wire %s%s;\n", widthSpec(n.Src.DataWidth), e.name(n.ID))
		return
	}
	for _, port := range bitx.BRAMOutputs(n.Src) {
		fmt.Fprintf(e.out, "wire %s%s_%s;\n", widthSpec(n.Src.DataWidth), e.name(n.ID), port)
	}
}

func (e *Emitter) regFileDecl(n *netlist.Net) {
	fmt.Fprintf(e.out, "reg %s%s [0:%d];\n", widthSpec(n.Src.DataWidth), e.name(n.ID), (1<<uint(n.Src.AddrWidth))-1)
	if n.Src.InitFile != "" {
		fmt.Fprintf(e.out, "initial $readmemh(\"%s\", %s);\n", n.Src.InitFile, e.name(n.ID))
	}
}
