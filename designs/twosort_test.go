package designs

import (
	"strings"
	"testing"

	"github.com/gmofishsauce/wut4/bitx"
	"github.com/gmofishsauce/wut4/verilog"
)

func TestTwoSortEmitsValidModule(t *testing.T) {
	nl := TwoSort()
	var sb strings.Builder
	if err := verilog.Emit(&sb, "twosort", nl); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	got := sb.String()
	for _, want := range []string{"input [7:0] a", "input [7:0] b", "output [7:0] low", "output [7:0] high"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

// TestTwoSortLogic checks the mux construction directly: feeding
// (1,2) and (2,1) must both produce (low,high) = (1,2). Since this
// core doesn't simulate, the check walks the constant-folded
// structure instead of running the emitted Verilog.
func TestTwoSortLogic(t *testing.T) {
	cases := []struct {
		a, b           uint64
		wantLo, wantHi uint64
	}{
		{1, 2, 1, 2},
		{2, 1, 1, 2},
	}
	for _, c := range cases {
		low, high := twoSortConst(c.a, c.b)
		if low != c.wantLo || high != c.wantHi {
			t.Errorf("twoSort(%d,%d) = (%d,%d), want (%d,%d)", c.a, c.b, low, high, c.wantLo, c.wantHi)
		}
	}
}

// twoSortConst rebuilds TwoSort's LessThan and Mux arrangement over
// Const operands and reads back the folded results.
func twoSortConst(a, b uint64) (low, high uint64) {
	ca, cb := bitx.Const(8, a), bitx.Const(8, b)
	lt := ca.LessThan(cb)
	return bitx.Mux(lt, cb, ca).ConstVal, bitx.Mux(lt, ca, cb).ConstVal
}
