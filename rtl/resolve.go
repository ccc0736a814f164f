package rtl

import "github.com/gmofishsauce/wut4/bitx"

// resolve folds a variable's collected (guard, expr) sites into the
// single driver expression its placeholder is rewritten to point at.
// Registers and wires resolve differently:
//
//   - A register's enable is the OR of every site's guard (it holds
//     its value when nothing fires), and its next value is a
//     priority chain over the sites in declaration order - later
//     Assigns to the same register override earlier ones when both
//     guards are active simultaneously, which the monad leaves
//     otherwise unspecified.
//   - A wire has no notion of "holding" a prior value across sites
//     within one cycle, so its sites combine with bitx.MergeWrites'
//     Or strategy, plus one extra pair - NOT of every guard OR'd
//     together, paired with the wire's default - covering the case
//     where nothing fires at all.
func (vd *varDecl) resolve() *bitx.BitExpr {
	switch vd.kind {
	case kindReg:
		return vd.resolveReg()
	default:
		return vd.resolveWire()
	}
}

func (vd *varDecl) resolveReg() *bitx.BitExpr {
	if len(vd.sites) == 0 {
		// Never assigned: still a register, just one that always
		// holds init (or garbage, with no reset).
		return bitx.RegisterEn(vd.init, vd.width, bitx.Const(1, 0), bitx.DontCare(vd.width))
	}

	enable := vd.sites[0].guard
	for _, s := range vd.sites[1:] {
		enable = enable.Or(s.guard)
	}

	next := vd.sites[0].expr
	for i := 1; i < len(vd.sites); i++ {
		s := vd.sites[i]
		next = bitx.Mux(s.guard, next, s.expr)
	}

	return bitx.RegisterEn(vd.init, vd.width, enable, next)
}

func (vd *varDecl) resolveWire() *bitx.BitExpr {
	if len(vd.sites) == 0 {
		return bitx.Identity(vd.def)
	}

	pairs := make([][2]*bitx.BitExpr, 0, len(vd.sites)+1)
	noneActive := vd.sites[0].guard
	pairs = append(pairs, [2]*bitx.BitExpr{vd.sites[0].guard, vd.sites[0].expr})
	for _, s := range vd.sites[1:] {
		noneActive = noneActive.Or(s.guard)
		pairs = append(pairs, [2]*bitx.BitExpr{s.guard, s.expr})
	}
	pairs = append(pairs, [2]*bitx.BitExpr{noneActive.Not(), vd.def})

	return bitx.Identity(bitx.MergeWrites(bitx.MergeOr, vd.width, pairs...))
}
