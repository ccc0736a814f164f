package designs

import (
	"github.com/gmofishsauce/wut4/bitx"
	"github.com/gmofishsauce/wut4/format"
	"github.com/gmofishsauce/wut4/iface"
	"github.com/gmofishsauce/wut4/netlist"
	"github.com/gmofishsauce/wut4/rtl"
)

const queueCycleLimit = 100

// Queue elaborates a 1-slot Bit 8 queue with a producer writing an
// incrementing count and a consumer reading it back. Because the
// depth-1 queue's NotFull and CanDeq are complements of the same
// valid bit, enqueue and dequeue can never both fire the same cycle
// - they strictly alternate, giving an "every Enqueued k immediately
// followed by Dequeued k" trace.
func Queue() *netlist.Netlist {
	b := rtl.NewBuilder()
	q := iface.NewQueue(b, 8)

	seq := b.FreshReg(8, bitx.Const(8, 0))
	cycle := b.FreshReg(8, bitx.Const(8, 0))

	b.When(q.NotFull(), func() {
		v := seq.Read()
		q.Enq(v)
		seq.Assign(v.Add(bitx.Const(8, 1)))
		b.Display([]format.Item{format.Str("Enqueued "), format.Fmt(0, format.Dec, 0, false)}, v)
	})

	b.When(q.CanDeq(), func() {
		v := q.First()
		q.Deq()
		b.Display([]format.Item{format.Str("Dequeued "), format.Fmt(0, format.Dec, 0, false)}, v)
	})

	cycle.Assign(cycle.Read().Add(bitx.Const(8, 1)))
	b.When(cycle.Read().Equal(bitx.Const(8, queueCycleLimit)), func() { b.Finish() })

	m := b.Elaborate()
	return netlist.Flatten(m.Roots)
}
