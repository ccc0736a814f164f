// Package rtl implements the elaboration monad: a Builder that turns
// guarded, possibly-multi-site assignments to registers and wires into
// a resolved bitx.BitExpr netlist. It plays the role lang/yld/linker.go
// plays for object files - collect references in one pass (here,
// (guard, expr) tuples per variable instead of relocation records),
// then resolve them all at once into final values.
package rtl

import "github.com/gmofishsauce/wut4/bitx"

// varKind distinguishes a freshReg from a freshWire; both share the
// same guarded-assignment bookkeeping, but resolve into different
// bitx constructs (see resolve.go).
type varKind uint8

const (
	kindReg varKind = iota
	kindWire
)

type site struct {
	guard *bitx.BitExpr
	expr  *bitx.BitExpr
}

type varDecl struct {
	id    int
	kind  varKind
	width int
	init  *bitx.BitExpr // reg only
	def   *bitx.BitExpr // wire only

	placeholder *bitx.BitExpr // what Read() returns; rewritten in place by Elaborate
	sites       []site
}

// Builder accumulates register/wire declarations, their guarded
// assignments, and display/finish/assert events over the course of one
// elaboration. It is not safe for concurrent use - like the RTL monad
// it models, a Builder thread's a single sequential elaboration.
type Builder struct {
	nextID int
	vars   []*varDecl // creation order; also the resolution order
	byID   map[int]*varDecl

	guard *bitx.BitExpr // AND of every enclosing when/ifThenElse condition

	events []*bitx.BitExpr // Display/Finish/Assert roots, in issue order

	inputs  []*bitx.BitExpr
	outputs []*bitx.BitExpr

	done bool // true once Elaborate has run; further use is an error
}

// NewBuilder returns an empty elaboration context with the guard stack
// at its base (unconditionally true).
func NewBuilder() *Builder {
	return &Builder{
		byID:  make(map[int]*varDecl),
		guard: bitx.Const(1, 1),
	}
}

func (b *Builder) checkLive() {
	if b.done {
		panic(&UseAfterElaborateError{})
	}
}

func (b *Builder) alloc(kind varKind, width int, init, def *bitx.BitExpr) *varDecl {
	b.checkLive()
	id := b.nextID
	b.nextID++
	placeholder := &bitx.BitExpr{Prim: bitx.PrimIdentity, Width: width}
	vd := &varDecl{id: id, kind: kind, width: width, init: init, def: def, placeholder: placeholder}
	b.vars = append(b.vars, vd)
	b.byID[id] = vd
	return vd
}

func (b *Builder) lookup(id int) *varDecl {
	vd, ok := b.byID[id]
	if !ok {
		panic(&DanglingVarError{VarID: id})
	}
	return vd
}
