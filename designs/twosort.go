package designs

import (
	"github.com/gmofishsauce/wut4/bitx"
	"github.com/gmofishsauce/wut4/netlist"
)

// TwoSort elaborates twoSort(a, b) = (a < b) ? (a, b) : (b, a),
// over Bit 8 operands.
func TwoSort() *netlist.Netlist {
	a := bitx.Input(8, "a")
	b := bitx.Input(8, "b")
	lt := a.LessThan(b)

	// low is a when a<b (lt=1), else b; high is the other operand.
	low := bitx.Mux(lt, b, a)
	high := bitx.Mux(lt, a, b)

	oLow := bitx.Output(8, "low", low)
	oHigh := bitx.Output(8, "high", high)

	return netlist.Flatten([]*bitx.BitExpr{a, b, oLow, oHigh})
}
