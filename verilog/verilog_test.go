package verilog

import (
	"strings"
	"testing"

	"github.com/gmofishsauce/wut4/bitx"
	"github.com/gmofishsauce/wut4/netlist"
)

func TestEmitTwoInputMux(t *testing.T) {
	a := bitx.Input(8, "a")
	b := bitx.Input(8, "b")
	sel := bitx.Input(1, "sel")
	out := bitx.Mux(sel, a, b)
	o := bitx.Output(8, "y", out)

	nl := netlist.Flatten([]*bitx.BitExpr{a, b, sel, o})

	var sb strings.Builder
	if err := Emit(&sb, "mux2", nl); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	got := sb.String()

	for _, want := range []string{
		"module mux2(",
		"input clock",
		"input reset",
		"input [7:0] a",
		"output [7:0] y",
		"assign y =",
		"? ",
		" : ",
		"endmodule",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q; full output:\n%s", want, got)
		}
	}
}

func TestEmitRegisterWithReset(t *testing.T) {
	// Built directly through bitx since this test exercises only the
	// printer, not the elaborator.
	next := bitx.Const(4, 5)
	reg := bitx.RegisterEn(bitx.Const(4, 0), 4, bitx.Const(1, 1), next)
	o := bitx.Output(4, "q", reg)

	nl := netlist.Flatten([]*bitx.BitExpr{o})
	var sb strings.Builder
	if err := Emit(&sb, "counter", nl); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	got := sb.String()

	if !strings.Contains(got, "reg [3:0]") {
		t.Errorf("want a reg declaration, got:\n%s", got)
	}
	if !strings.Contains(got, "if (reset) begin") {
		t.Errorf("want reset block, got:\n%s", got)
	}
	if !strings.Contains(got, "<=") {
		t.Errorf("want a non-blocking assign in the always block, got:\n%s", got)
	}
}

// TestEmitSinglePortBRAMUsesBareOutputName checks that a single-port
// BRAM's DO port is bound to the net's own bare name, matching how
// iface.BlockRAM.Out() hands out the BRAM node directly rather than a
// suffixed port wire (see declarations.go's bramDecl).
func TestEmitSinglePortBRAMUsesBareOutputName(t *testing.T) {
	addr := bitx.Input(4, "addr")
	data := bitx.Input(8, "data")
	we := bitx.Input(1, "we")
	ram := bitx.BRAM(bitx.RAMSinglePort, "", 4, 8, false, addr, data, we)
	o := bitx.Output(8, "q", ram)

	nl := netlist.Flatten([]*bitx.BitExpr{addr, data, we, o})
	var sb strings.Builder
	if err := Emit(&sb, "ramwrap", nl); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	got := sb.String()

	if strings.Contains(got, "_DO(") {
		t.Errorf("single-port BRAM should bind DO to a bare wire name, not a suffixed one:\n%s", got)
	}
	if !strings.Contains(got, ".DO(") {
		t.Errorf("want a .DO(...) port binding, got:\n%s", got)
	}
}

// TestEmitCustomMultiOutputSharesOneInstance checks that a black-box
// Custom primitive with more than one output produces exactly one
// Verilog instance with every output port bound to its own net,
// rather than one duplicate instance per output (see bitx.Custom's
// doc comment on the instance/tap split).
func TestEmitCustomMultiOutputSharesOneInstance(t *testing.T) {
	a := bitx.Input(8, "a")
	outs := bitx.Custom("fifo16", []*bitx.BitExpr{a}, []int{1, 1}, []string{"full", "empty"}, nil, true, true)
	oFull := bitx.Output(1, "full", outs[0])
	oEmpty := bitx.Output(1, "empty", outs[1])

	nl := netlist.Flatten([]*bitx.BitExpr{a, oFull, oEmpty})
	var sb strings.Builder
	if err := Emit(&sb, "wrap", nl); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	got := sb.String()

	if n := strings.Count(got, "fifo16 "); n != 1 {
		t.Errorf("want exactly one fifo16 instance, found %d in:\n%s", n, got)
	}
	if !strings.Contains(got, ".full(") || !strings.Contains(got, ".empty(") {
		t.Errorf("want both output ports bound in:\n%s", got)
	}
	if !strings.Contains(got, ".clock(clock)") || !strings.Contains(got, ".reset(reset)") {
		t.Errorf("want clock/reset wired for a clocked+resetable instance, got:\n%s", got)
	}
}

