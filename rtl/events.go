package rtl

import (
	"github.com/gmofishsauce/wut4/bitx"
	"github.com/gmofishsauce/wut4/format"
)

// Display records a guarded $display-style side effect, active only
// when the Builder's current guard holds. items describes the
// literal/format/conditional structure; vals supplies the value
// expressions the Spec items index into by position, appended after
// the guard in the resulting node's inputs (see format.Item's doc
// comment on the Display node's "non-guard inputs").
func (b *Builder) Display(items []format.Item, vals ...*bitx.BitExpr) {
	b.checkLive()
	n := bitx.Display(b.guard, items...)
	n.Ins = append(n.Ins, vals...)
	b.events = append(b.events, n)
}

// Finish records a guarded $finish.
func (b *Builder) Finish() {
	b.checkLive()
	b.events = append(b.events, bitx.Finish(b.guard))
}

// Assert records a guarded assertion: when active and pred is false,
// msg is printed and the simulation halts.
func (b *Builder) Assert(pred *bitx.BitExpr, msg string) {
	b.checkLive()
	b.events = append(b.events, bitx.Assert(b.guard, pred, msg))
}

// RegFileWrite records a write to rf at addr under the Builder's
// current guard. Unlike register/wire Assign, register file writes
// are not multi-site-resolved against each other - any number of
// concurrent reads and writes per cycle is permitted, so each
// RegFileWrite call becomes its own independent guarded event, the way
// Display and Finish already do.
func (b *Builder) RegFileWrite(rf, addr, data *bitx.BitExpr) {
	b.checkLive()
	b.events = append(b.events, bitx.RegFileWrite(rf, b.guard, addr, data))
}
