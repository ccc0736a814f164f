package designs

import (
	"github.com/gmofishsauce/wut4/bitx"
	"github.com/gmofishsauce/wut4/format"
	"github.com/gmofishsauce/wut4/netlist"
	"github.com/gmofishsauce/wut4/rtl"
)

// Counter elaborates a 4-bit register initialized to 0, incrementing
// every cycle, printing the count and finishing once it reaches 10.
func Counter() *netlist.Netlist {
	b := rtl.NewBuilder()
	count := b.FreshReg(4, bitx.Const(4, 0))

	done := count.Read().Equal(bitx.Const(4, 10))
	count.Assign(count.Read().Add(bitx.Const(4, 1)))

	b.Display([]format.Item{
		format.Str("count="),
		format.Fmt(0, format.Dec, 0, false),
	}, count.Read())
	b.When(done, func() { b.Finish() })

	m := b.Elaborate()
	return netlist.Flatten(m.Roots)
}
