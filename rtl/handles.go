package rtl

import "github.com/gmofishsauce/wut4/bitx"

// Reg is a handle to a register declared with FreshReg. It is valid
// only for the lifetime of the Builder that created it.
type Reg struct {
	b  *Builder
	id int
}

// Wire is a handle to a combinational wire declared with FreshWire.
type Wire struct {
	b  *Builder
	id int
}

// FreshReg declares a new clocked register of the given width and
// reset value (nil for no reset). Its value starting out and whenever
// no guarded Assign fires this cycle is its own previous value - a
// register that's never assigned just holds init forever.
func (b *Builder) FreshReg(width int, init *bitx.BitExpr) *Reg {
	vd := b.alloc(kindReg, width, init, nil)
	return &Reg{b: b, id: vd.id}
}

// FreshWire declares a new combinational wire of the given width and
// default value, used whenever no guarded Assign to it is active in
// the current cycle.
func (b *Builder) FreshWire(width int, def *bitx.BitExpr) *Wire {
	vd := b.alloc(kindWire, width, nil, def)
	return &Wire{b: b, id: vd.id}
}

// Read returns the expression denoting this register's current value.
// Every call returns the same node, so reading a register twice shares
// one signal downstream exactly as reading any other BitExpr twice does.
func (r *Reg) Read() *bitx.BitExpr {
	return r.b.lookup(r.id).placeholder
}

// Assign records a guarded write: expr drives r whenever the Builder's
// current guard (the AND of every enclosing When/IfThenElse condition)
// is true. Multiple guarded assigns to the same register across a
// cycle resolve per resolve.go's priority-mux construction.
func (r *Reg) Assign(expr *bitx.BitExpr) {
	r.b.assign(r.id, expr)
}

// Read returns the expression denoting this wire's current value.
func (w *Wire) Read() *bitx.BitExpr {
	return w.b.lookup(w.id).placeholder
}

// Assign records a guarded write to a wire; see resolve.go for how
// simultaneous wire writes are OR-merged.
func (w *Wire) Assign(expr *bitx.BitExpr) {
	w.b.assign(w.id, expr)
}

func (b *Builder) assign(id int, expr *bitx.BitExpr) {
	b.checkLive()
	vd := b.lookup(id)
	bitx.CheckWidth(bitx.PrimIdentity, "assign", vd.width, expr.Width)
	vd.sites = append(vd.sites, site{guard: b.guard, expr: expr})
}
