package verilog

import (
	"fmt"
	"strings"

	"github.com/gmofishsauce/wut4/bitx"
	"github.com/gmofishsauce/wut4/netlist"
)

// assigns emits one continuous assign (or instance) per combinational
// net. Registers, displays, finishes, and asserts are handled by the
// always block instead.
func (e *Emitter) assigns() {
	for _, n := range e.nl.Nets {
		switch n.Prim() {
		case bitx.PrimConst, bitx.PrimDontCare,
			bitx.PrimRegister, bitx.PrimRegisterEn,
			bitx.PrimDisplay, bitx.PrimFinish, bitx.PrimAssert,
			bitx.PrimInput:
			// Input nets are mangled to the port name itself (see
			// NewEmitter), so every reference already resolves
			// straight to the port - no separate wire or assign
			// needed.
			continue
		case bitx.PrimCustom:
			// An output tap's wire is driven by its instance's named
			// port connection (see the PrimCustomInstance case below),
			// not by a separate continuous assign.
			continue
		case bitx.PrimRegFileMake, bitx.PrimRegFileWrite:
			// A register file is a `reg [..] arr [0:k]` memory
			// (declarations.go's regFileDecl), which Verilog-2005
			// forbids driving with a continuous assign; writes
			// happen through the guarded always-block statement
			// always.go's regFileWriteStmt emits instead.
			continue
		case bitx.PrimOutput:
			fmt.Fprintf(e.out, "assign %s = %s;\n", n.Src.Name, e.in(n, 0))
		case bitx.PrimBRAM:
			e.bramInstance(n)
		case bitx.PrimCustomInstance:
			e.customInstance(n)
		case bitx.PrimRegFileRead:
			fmt.Fprintf(e.out, "assign %s = %s[%s];\n", e.name(n.ID), e.name(n.RegFileNet), e.in(n, 0))
		default:
			expr, err := e.expr(n)
			if err != nil {
				e.fail(err)
				return
			}
			fmt.Fprintf(e.out, "assign %s = %s;\n", e.name(n.ID), expr)
		}
	}
	fmt.Fprintln(e.out)
}

// in returns the mangled name of n's i'th input net.
func (e *Emitter) in(n *netlist.Net, i int) string {
	return e.name(n.Ins[i])
}

// expr renders the right-hand side of a combinational net's assign,
// using the exact Verilog operator syntax for each primitive.
// It returns bitx.UnsupportedPrim if n.Prim() has no lowering here,
// rather than emitting placeholder text for a backend gap.
func (e *Emitter) expr(n *netlist.Net) (string, error) {
	a := func(i int) string { return e.in(n, i) }
	switch n.Prim() {
	case bitx.PrimAdd:
		return fmt.Sprintf("%s + %s", a(0), a(1)), nil
	case bitx.PrimSub:
		return fmt.Sprintf("%s - %s", a(0), a(1)), nil
	case bitx.PrimMul:
		if n.Src.Signed {
			return fmt.Sprintf("$signed(%s) * $signed(%s)", a(0), a(1)), nil
		}
		return fmt.Sprintf("%s * %s", a(0), a(1)), nil
	case bitx.PrimDiv:
		return fmt.Sprintf("%s / %s", a(0), a(1)), nil
	case bitx.PrimMod:
		return fmt.Sprintf("%s %% %s", a(0), a(1)), nil
	case bitx.PrimAnd:
		return fmt.Sprintf("%s & %s", a(0), a(1)), nil
	case bitx.PrimOr:
		return fmt.Sprintf("%s | %s", a(0), a(1)), nil
	case bitx.PrimXor:
		return fmt.Sprintf("%s ^ %s", a(0), a(1)), nil
	case bitx.PrimNot:
		return fmt.Sprintf("~%s", a(0)), nil
	case bitx.PrimShiftLeft:
		return fmt.Sprintf("%s << %s", a(0), a(1)), nil
	case bitx.PrimShiftRight:
		return fmt.Sprintf("%s >> %s", a(0), a(1)), nil
	case bitx.PrimArithShiftRight:
		return fmt.Sprintf("$signed(%s) >>> %s", a(0), a(1)), nil
	case bitx.PrimEqual:
		return fmt.Sprintf("%s == %s", a(0), a(1)), nil
	case bitx.PrimNotEqual:
		return fmt.Sprintf("%s != %s", a(0), a(1)), nil
	case bitx.PrimLessThan:
		return fmt.Sprintf("%s < %s", a(0), a(1)), nil
	case bitx.PrimLessThanEq:
		return fmt.Sprintf("%s <= %s", a(0), a(1)), nil
	case bitx.PrimReplicateBit:
		return fmt.Sprintf("{%d{%s}}", n.Width(), a(0)), nil
	case bitx.PrimZeroExtend:
		pad := n.Width() - n.Src.Ins[0].Width
		return fmt.Sprintf("{{%d{1'b0}}, %s}", pad, a(0)), nil
	case bitx.PrimSignExtend:
		inWidth := n.Src.Ins[0].Width
		pad := n.Width() - inWidth
		return fmt.Sprintf("{{%d{%s[%d]}}, %s}", pad, a(0), inWidth-1, a(0)), nil
	case bitx.PrimSelectBits:
		return fmt.Sprintf("%s[%d:%d]", a(0), n.Src.Hi, n.Src.Lo), nil
	case bitx.PrimConcat:
		return fmt.Sprintf("{%s, %s}", a(0), a(1)), nil
	case bitx.PrimIdentity:
		return a(0), nil
	case bitx.PrimMux:
		return e.muxExpr(n), nil
	case bitx.PrimMergeWrites:
		return e.mergeExpr(n), nil
	case bitx.PrimTestPlusArgs:
		return fmt.Sprintf("$test$plusargs(\"%s\") == 0 ? 0 : 1", n.Src.PlusArgName), nil
	default:
		return "", &bitx.UnsupportedPrim{Prim: n.Prim()}
	}
}

// muxExpr emits sel ? in1 : in0 for a two-input Mux (SelWidth == 1),
// and a call to the case-statement function declarations.go emitted
// for wider ones.
func (e *Emitter) muxExpr(n *netlist.Net) string {
	numData := len(n.Ins) - 1
	sel := e.name(n.Ins[numData])
	if n.Src.SelWidth <= 1 {
		return fmt.Sprintf("%s ? %s : %s", sel, e.name(n.Ins[1]), e.name(n.Ins[0]))
	}
	args := make([]string, 0, numData+1)
	args = append(args, sel)
	for i := 0; i < numData; i++ {
		args = append(args, e.name(n.Ins[i]))
	}
	return fmt.Sprintf("%s_f(%s)", e.name(n.ID), strings.Join(args, ", "))
}

// mergeExpr ORs together every (enable, value) pair masked by its
// enable, the continuous-assign form of MergeWrites' Or strategy.
func (e *Emitter) mergeExpr(n *netlist.Net) string {
	terms := make([]string, 0, len(n.Ins)/2)
	for i := 0; i < len(n.Ins); i += 2 {
		en, val := e.name(n.Ins[i]), e.name(n.Ins[i+1])
		terms = append(terms, fmt.Sprintf("({%d{%s}} & %s)", n.Width(), en, val))
	}
	return strings.Join(terms, " | ")
}

func (e *Emitter) bramInstance(n *netlist.Net) {
	ports := bitx.BRAMOutputs(n.Src)
	fmt.Fprintf(e.out, "bram_%s #(.ADDR_WIDTH(%d), .DATA_WIDTH(%d)) %s_inst (\n",
		n.Src.RAMKind, n.Src.AddrWidth, n.Src.DataWidth, e.name(n.ID))
	fmt.Fprintf(e.out, "    .clock(clock)")
	for i, portIn := range n.Ins {
		fmt.Fprintf(e.out, ",\n    .IN%d(%s)", i, e.name(portIn))
	}
	for _, port := range ports {
		wire := e.name(n.ID) + "_" + port
		if n.Src.RAMKind == bitx.RAMSinglePort {
			wire = e.name(n.ID) // see declarations.go's bramDecl
		}
		fmt.Fprintf(e.out, ",\n    .%s(%s)", port, wire)
	}
	fmt.Fprintf(e.out, "\n);\n")
}

// customInstance emits the one Verilog instance for a black-box
// module: n is the shared PrimCustomInstance node, and each declared
// output port is bound to its own tap node's net (not to n's own id -
// n has no net-visible width of its own).
func (e *Emitter) customInstance(n *netlist.Net) {
	fmt.Fprintf(e.out, "%s %s_inst (\n", n.Src.Name, e.name(n.ID))
	first := true
	writeArg := func(port, wire string) {
		if !first {
			fmt.Fprintf(e.out, ",\n")
		}
		fmt.Fprintf(e.out, "    .%s(%s)", port, wire)
		first = false
	}
	if n.Src.Clocked {
		writeArg("clock", "clock")
	}
	if n.Src.Resetable {
		writeArg("reset", "reset")
	}
	for i, portName := range n.Src.CustomIns {
		if i < len(n.Ins) {
			writeArg(portName, e.name(n.Ins[i]))
		}
	}
	for i, portName := range n.Src.CustomOuts {
		if i < len(n.Src.CustomOutNodes) {
			if wire, ok := e.tapName(n.Src.CustomOutNodes[i]); ok {
				writeArg(portName, wire)
			}
		}
	}
	fmt.Fprintf(e.out, "\n);\n")
}
