package designs

import (
	"github.com/gmofishsauce/wut4/bitx"
	"github.com/gmofishsauce/wut4/format"
	"github.com/gmofishsauce/wut4/netlist"
	"github.com/gmofishsauce/wut4/rtl"
)

// Factorial elaborates a factorial computation by hand, as an
// explicit two-register state machine rather than a general Recipe
// DSL: n counts down from 10 to 0, acc accumulates the running
// product, and the module prints acc and halts once n reaches 0.
// fact(10) = 3628800.
func Factorial() *netlist.Netlist {
	b := rtl.NewBuilder()
	n := b.FreshReg(8, bitx.Const(8, 10))
	acc := b.FreshReg(32, bitx.Const(32, 1))

	running := n.Read().NotEqual(bitx.Const(8, 0))
	b.When(running, func() {
		acc.Assign(acc.Read().Mul(bitx.ZeroExtend(32, n.Read()), false, false))
		n.Assign(n.Read().Sub(bitx.Const(8, 1)))
	})
	b.When(running.Not(), func() {
		b.Display([]format.Item{
			format.Str("fact(10) = "),
			format.Fmt(0, format.Dec, 0, false),
		}, acc.Read())
		b.Finish()
	})

	m := b.Elaborate()
	return netlist.Flatten(m.Roots)
}
