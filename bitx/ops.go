package bitx

import "github.com/gmofishsauce/wut4/format"

// Const builds a width-w constant. Width must be non-zero; value is
// truncated to width bits.
func Const(width int, value uint64) *BitExpr {
	checkPositive(PrimConst, width)
	return &BitExpr{Prim: PrimConst, Width: width, ConstVal: truncate(value, width)}
}

// DontCare builds a width-w don't-care value, emitted as Verilog 'bx.
func DontCare(width int) *BitExpr {
	checkPositive(PrimDontCare, width)
	return &BitExpr{Prim: PrimDontCare, Width: width}
}

func binop(p Prim, name string, a, b *BitExpr) *BitExpr {
	checkWidth(p, name, a.Width, b.Width)
	if folded := foldBinary(p, a.Width, a, b, false); folded != nil {
		return folded
	}
	return newNode(p, a.Width, a, b)
}

// Add builds a.Width-wide two's-complement addition, wrapping at 2^w.
func (a *BitExpr) Add(b *BitExpr) *BitExpr { return binop(PrimAdd, "Add", a, b) }

// Sub builds wrapping subtraction.
func (a *BitExpr) Sub(b *BitExpr) *BitExpr { return binop(PrimSub, "Sub", a, b) }

// Mul builds multiplication. When fullWidth is true the result is
// 2*a.Width wide and exact; otherwise it is a.Width wide and wraps.
func (a *BitExpr) Mul(b *BitExpr, signed, fullWidth bool) *BitExpr {
	checkWidth(PrimMul, "Mul", a.Width, b.Width)
	outWidth := a.Width
	if fullWidth {
		outWidth = 2 * a.Width
	}
	if folded := foldBinary(PrimMul, outWidth, a, b, signed); folded != nil {
		return folded
	}
	n := newNode(PrimMul, outWidth, a, b)
	n.Signed, n.FullWidth = signed, fullWidth
	return n
}

// Div builds unsigned division.
func (a *BitExpr) Div(b *BitExpr) *BitExpr { return binop(PrimDiv, "Div", a, b) }

// Mod builds unsigned remainder.
func (a *BitExpr) Mod(b *BitExpr) *BitExpr { return binop(PrimMod, "Mod", a, b) }

// And builds bitwise AND.
func (a *BitExpr) And(b *BitExpr) *BitExpr { return binop(PrimAnd, "And", a, b) }

// Or builds bitwise OR.
func (a *BitExpr) Or(b *BitExpr) *BitExpr { return binop(PrimOr, "Or", a, b) }

// Xor builds bitwise XOR.
func (a *BitExpr) Xor(b *BitExpr) *BitExpr { return binop(PrimXor, "Xor", a, b) }

// Not builds bitwise complement.
func (a *BitExpr) Not() *BitExpr {
	if folded := foldUnary(PrimNot, a.Width, a); folded != nil {
		return folded
	}
	return newNode(PrimNot, a.Width, a)
}

// ShiftLeft shifts a left by n (same width as a), n interpreted
// unsigned modulo 2^width(n).
func (a *BitExpr) ShiftLeft(n *BitExpr) *BitExpr { return binop(PrimShiftLeft, "ShiftLeft", a, n) }

// ShiftRight shifts a right logically.
func (a *BitExpr) ShiftRight(n *BitExpr) *BitExpr { return binop(PrimShiftRight, "ShiftRight", a, n) }

// ArithShiftRight shifts a right, treating a as signed two's complement.
func (a *BitExpr) ArithShiftRight(n *BitExpr) *BitExpr {
	if a.Width != n.Width {
		panic(&WidthMismatchError{Prim: PrimArithShiftRight, Op: "ArithShiftRight", Want: a.Width, Got: n.Width})
	}
	if folded := foldBinary(PrimArithShiftRight, a.Width, a, n, true); folded != nil {
		return folded
	}
	return newNode(PrimArithShiftRight, a.Width, a, n)
}

func cmpop(p Prim, name string, a, b *BitExpr) *BitExpr {
	checkWidth(p, name, a.Width, b.Width)
	if folded := foldBinary(p, 1, a, b, false); folded != nil {
		return folded
	}
	return newNode(p, 1, a, b)
}

// Equal builds a 1-bit unsigned equality comparison.
func (a *BitExpr) Equal(b *BitExpr) *BitExpr { return cmpop(PrimEqual, "Equal", a, b) }

// NotEqual builds a 1-bit unsigned inequality comparison.
func (a *BitExpr) NotEqual(b *BitExpr) *BitExpr { return cmpop(PrimNotEqual, "NotEqual", a, b) }

// LessThan builds a 1-bit unsigned less-than comparison.
func (a *BitExpr) LessThan(b *BitExpr) *BitExpr { return cmpop(PrimLessThan, "LessThan", a, b) }

// LessThanEq builds a 1-bit unsigned less-than-or-equal comparison.
func (a *BitExpr) LessThanEq(b *BitExpr) *BitExpr { return cmpop(PrimLessThanEq, "LessThanEq", a, b) }

// ReplicateBit replicates a 1-bit input w times.
func ReplicateBit(w int, a *BitExpr) *BitExpr {
	checkWidth(PrimReplicateBit, "ReplicateBit", 1, a.Width)
	if folded := foldUnary(PrimReplicateBit, w, a); folded != nil {
		return folded
	}
	return newNode(PrimReplicateBit, w, a)
}

// ZeroExtend widens a to wout bits, zero-filling the high bits. wout
// must exceed a.Width.
func ZeroExtend(wout int, a *BitExpr) *BitExpr {
	if wout <= a.Width {
		panic(&WidthMismatchError{Prim: PrimZeroExtend, Op: "ZeroExtend", Want: a.Width + 1, Got: wout})
	}
	if folded := foldUnary(PrimZeroExtend, wout, a); folded != nil {
		return folded
	}
	return newNode(PrimZeroExtend, wout, a)
}

// SignExtend widens a to wout bits, replicating its sign bit. wout
// must exceed a.Width.
func SignExtend(wout int, a *BitExpr) *BitExpr {
	if wout <= a.Width {
		panic(&WidthMismatchError{Prim: PrimSignExtend, Op: "SignExtend", Want: a.Width + 1, Got: wout})
	}
	if folded := foldUnary(PrimSignExtend, wout, a); folded != nil {
		return folded
	}
	return newNode(PrimSignExtend, wout, a)
}

// SelectBits extracts bits [hi:lo] of a, 0 <= lo <= hi < a.Width.
func SelectBits(hi, lo int, a *BitExpr) *BitExpr {
	if lo < 0 || hi < lo || hi >= a.Width {
		panic(&OutOfRangeError{Prim: PrimSelectBits, Hi: hi, Lo: lo, Width: a.Width})
	}
	width := hi - lo + 1
	if folded := foldSelectBits(width, hi, lo, a); folded != nil {
		return folded
	}
	n := newNode(PrimSelectBits, width, a)
	n.Hi, n.Lo = hi, lo
	return n
}

// Concat joins a (high) and b (low); output width is the sum of the
// operand widths.
func Concat(a, b *BitExpr) *BitExpr {
	width := a.Width + b.Width
	if folded := foldConcat(width, a.Width, a, b); folded != nil {
		return folded
	}
	n := newNode(PrimConcat, width, a, b)
	n.HiWidth = a.Width
	return n
}

// Identity passes a through unchanged; used by the elaborator to give
// a driven-but-otherwise-bare wire a net of its own.
func Identity(a *BitExpr) *BitExpr {
	if folded := foldUnary(PrimIdentity, a.Width, a); folded != nil {
		return folded
	}
	return newNode(PrimIdentity, a.Width, a)
}

// Mux builds a generic sel-wide multiplexer over 2^width(sel) data
// inputs, all of the same width. len(ins) need not be a full power of
// two: a short input list is padded with a don't-care default branch
// here at construction time, so the flattener always sees a canonical
// 2^SelWidth-wide Mux.
func Mux(sel *BitExpr, ins ...*BitExpr) *BitExpr {
	if len(ins) == 0 {
		panic(&WidthMismatchError{Prim: PrimMux, Op: "Mux", Want: 1, Got: 0})
	}
	width := ins[0].Width
	for _, in := range ins {
		checkWidth(PrimMux, "Mux data", width, in.Width)
	}
	want := 1 << uint(sel.Width)
	padded := ins
	if len(ins) < want {
		padded = make([]*BitExpr, want)
		copy(padded, ins)
		for i := len(ins); i < want; i++ {
			padded[i] = DontCare(width)
		}
	} else if len(ins) > want {
		panic(&WidthMismatchError{Prim: PrimMux, Op: "Mux selector", Want: want, Got: len(ins)})
	}

	if sel.IsConst() && allConst(padded) {
		idx := sel.ConstVal
		if int(idx) < len(padded) && padded[idx].IsConst() {
			return Const(width, padded[idx].ConstVal)
		}
	}
	// The node stays generic; the Verilog backend lowers a two-way
	// select (SelWidth 1) to cond ? a : b.
	all := append(append([]*BitExpr{}, padded...), sel)
	n := newNode(PrimMux, width, all...)
	n.SelWidth = sel.Width
	return n
}

func allConst(ins []*BitExpr) bool {
	for _, in := range ins {
		if !in.IsConst() {
			return false
		}
	}
	return true
}

// MergeWrites combines n enable/value pairs under strategy. With the
// only defined strategy, Or, each pair drives value when its enable is
// 1, else 0; the results are ORed together. A zero-pair merge is
// don't-care; a merge whose enables and values are all Const folds to
// a Const.
func MergeWrites(strategy MergeStrategy, width int, pairs ...[2]*BitExpr) *BitExpr {
	if len(pairs) == 0 {
		return DontCare(width)
	}
	ins := make([]*BitExpr, 0, 2*len(pairs))
	for _, p := range pairs {
		checkWidth(PrimMergeWrites, "MergeWrites enable", 1, p[0].Width)
		checkWidth(PrimMergeWrites, "MergeWrites value", width, p[1].Width)
		ins = append(ins, p[0], p[1])
	}
	if allConst(ins) {
		var v uint64
		for _, p := range pairs {
			if p[0].ConstVal&1 == 1 {
				v |= p[1].ConstVal
			}
		}
		return Const(width, v)
	}
	n := newNode(PrimMergeWrites, width, ins...)
	n.MergeStrategy = strategy
	return n
}

// Register builds a clocked register primitive; init may be nil for no
// reset value. next is the unconditional next-state expression; the
// elaborator's RTL builder normally constructs this itself from the
// collected assignment set rather than calling Register directly.
func Register(init *BitExpr, width int, next *BitExpr) *BitExpr {
	checkWidth(PrimRegister, "Register", width, next.Width)
	n := newNode(PrimRegister, width, next)
	n.Init = init
	return n
}

// RegisterEn builds an enabled register: next is only latched when en
// is 1.
func RegisterEn(init *BitExpr, width int, en, next *BitExpr) *BitExpr {
	checkWidth(PrimRegisterEn, "RegisterEn enable", 1, en.Width)
	checkWidth(PrimRegisterEn, "RegisterEn", width, next.Width)
	n := newNode(PrimRegisterEn, width, next, en)
	n.Init = init
	return n
}

// Input declares a module input boundary port.
func Input(width int, name string) *BitExpr {
	n := newNode(PrimInput, width)
	n.Name = name
	return n
}

// Output declares a module output boundary port driven by expr.
func Output(width int, name string, expr *BitExpr) *BitExpr {
	checkWidth(PrimOutput, "Output", width, expr.Width)
	n := newNode(PrimOutput, width, expr)
	n.Name = name
	return n
}

// Display appends a side-effecting $write under guard en.
func Display(en *BitExpr, items ...format.Item) *BitExpr {
	checkWidth(PrimDisplay, "Display", 1, en.Width)
	n := newNode(PrimDisplay, 0, en)
	n.FormatItems = items
	return n
}

// Finish appends a side-effecting $finish under guard en.
func Finish(en *BitExpr) *BitExpr {
	checkWidth(PrimFinish, "Finish", 1, en.Width)
	return newNode(PrimFinish, 0, en)
}

// Assert appends a side-effecting assertion: when en is 1 and pred is
// 0, msg is printed and the simulation finishes.
func Assert(en, pred *BitExpr, msg string) *BitExpr {
	checkWidth(PrimAssert, "Assert enable", 1, en.Width)
	checkWidth(PrimAssert, "Assert predicate", 1, pred.Width)
	n := newNode(PrimAssert, 0, en, pred)
	n.AssertMsg = msg
	return n
}

// TestPlusArgs builds a 1-bit signal reflecting whether a Verilog
// $test$plusargs("name") plus-arg was supplied.
func TestPlusArgs(name string) *BitExpr {
	n := newNode(PrimTestPlusArgs, 1)
	n.PlusArgName = name
	return n
}

// Custom instantiates an opaque black-box module by name, returning
// one output tap per outWidths/outNames entry. All taps share a single
// PrimCustomInstance node (the real module instance, carrying ins and
// the instance-level metadata); each tap is a PrimCustom node whose
// sole input is that shared instance, so the flattener visits and
// names the instance exactly once no matter how many outputs are read
// (see netlist/flatten.go's PrimCustomInstance case and
// verilog/assigns.go's customInstance, which binds every output port
// to its tap's own net).
func Custom(name string, ins []*BitExpr, outWidths []int, outNames []string, params map[string]string, clocked, resetable bool) []*BitExpr {
	inNames := make([]string, len(ins))
	for i := range inNames {
		inNames[i] = "in"
	}
	inst := newNode(PrimCustomInstance, 0, ins...)
	inst.Name = name
	inst.CustomIns = inNames
	inst.CustomOuts = outNames
	inst.CustomParams = params
	inst.Clocked, inst.Resetable = clocked, resetable

	outs := make([]*BitExpr, len(outWidths))
	for i, w := range outWidths {
		n := newNode(PrimCustom, w, inst)
		n.Name = outNames[i]
		n.CustomOutIndex = i
		outs[i] = n
	}
	inst.CustomOutNodes = outs
	return outs
}
