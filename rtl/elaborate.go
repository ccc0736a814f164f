package rtl

import "github.com/gmofishsauce/wut4/bitx"

// Input declares a module input port and returns the expression
// denoting its value.
func (b *Builder) Input(width int, name string) *bitx.BitExpr {
	b.checkLive()
	n := bitx.Input(width, name)
	b.inputs = append(b.inputs, n)
	return n
}

// Output declares a module output port driven by expr.
func (b *Builder) Output(width int, name string, expr *bitx.BitExpr) {
	b.checkLive()
	b.outputs = append(b.outputs, bitx.Output(width, name, expr))
}

// Module is the result of Elaborate: every BitExpr root the netlist
// flattener needs to reach the whole design, with register/wire
// placeholders already rewritten to their resolved drivers.
type Module struct {
	Roots []*bitx.BitExpr
}

// Elaborate resolves every declared register and wire's collected
// assignment sites into a single driver expression, rewrites each
// variable's placeholder node in place to alias that driver (so every
// prior Read() call - which handed out the placeholder pointer itself -
// now observes the resolved value with no further bookkeeping), and
// returns the root set for netlist.Flatten. The Builder may not be used
// again afterward.
func (b *Builder) Elaborate() *Module {
	b.checkLive()
	b.done = true

	for _, vd := range b.vars {
		driver := vd.resolve()
		// Overwrite the placeholder's fields in place, preserving its
		// address (every earlier Read() handed out this *BitExpr), so
		// it becomes the driver node itself rather than an extra
		// Identity hop pointing at it. This matters for registers: the
		// flattener's cycle-breaking rule (netlist/flatten.go) keys off
		// Prim == Register/RegisterEn to pre-allocate before recursing,
		// and that rule has to see the register's own net, not a
		// wrapper one level removed from it.
		*vd.placeholder = *driver
	}

	var roots []*bitx.BitExpr
	roots = append(roots, b.inputs...)
	roots = append(roots, b.outputs...)
	roots = append(roots, b.events...)
	for _, vd := range b.vars {
		roots = append(roots, vd.placeholder)
	}
	return &Module{Roots: roots}
}
