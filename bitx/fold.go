package bitx

// foldUnary evaluates a single-input primitive over a Const operand and
// returns the resulting Const node, or nil if a is not a Const (the
// caller then falls back to building a real node). Every single-input
// primitive that can appear with a constant operand is handled here;
// together with the other fold helpers below and the folds in Mux and
// MergeWrites, constant-only subtrees collapse into a single Const
// node equal in value to the tree's evaluation.
func foldUnary(p Prim, width int, a *BitExpr) *BitExpr {
	if !a.IsConst() {
		return nil
	}
	av := a.ConstVal
	switch p {
	case PrimNot:
		return Const(width, truncate(^av, width))
	case PrimIdentity:
		return Const(width, truncate(av, width))
	case PrimReplicateBit:
		if av&1 == 0 {
			return Const(width, 0)
		}
		return Const(width, mask64(width))
	case PrimZeroExtend:
		return Const(width, truncate(av, width))
	case PrimSignExtend:
		return Const(width, uint64(signExtend64(av, a.Width))&mask64(width))
	default:
		return nil
	}
}

// foldSelectBits folds SelectBits over a Const operand.
func foldSelectBits(width, hi, lo int, a *BitExpr) *BitExpr {
	if !a.IsConst() {
		return nil
	}
	return Const(width, (a.ConstVal>>uint(lo))&mask64(width))
}

// foldConcat folds Concat over two Const operands.
func foldConcat(width, hiWidth int, a, b *BitExpr) *BitExpr {
	if !a.IsConst() || !b.IsConst() {
		return nil
	}
	loWidth := width - hiWidth
	v := (truncate(a.ConstVal, hiWidth) << uint(loWidth)) | truncate(b.ConstVal, loWidth)
	return Const(width, v)
}

// foldBinary evaluates a two-input arithmetic/logic/comparison/shift
// primitive over Const operands.
func foldBinary(p Prim, width int, a, b *BitExpr, signed bool) *BitExpr {
	if !a.IsConst() || !b.IsConst() {
		return nil
	}
	av, bv := a.ConstVal, b.ConstVal
	switch p {
	case PrimAdd:
		return Const(width, truncate(av+bv, width))
	case PrimSub:
		return Const(width, truncate(av-bv, width))
	case PrimMul:
		outWidth := width
		if signed {
			prod := uint64(signExtend64(av, a.Width) * signExtend64(bv, b.Width))
			return Const(outWidth, truncate(prod, outWidth))
		}
		return Const(outWidth, truncate(av*bv, outWidth))
	case PrimDiv:
		if bv == 0 {
			return nil // leave division by zero to the emitted hardware / simulator
		}
		return Const(width, truncate(av/bv, width))
	case PrimMod:
		if bv == 0 {
			return nil
		}
		return Const(width, truncate(av%bv, width))
	case PrimAnd:
		return Const(width, truncate(av&bv, width))
	case PrimOr:
		return Const(width, truncate(av|bv, width))
	case PrimXor:
		return Const(width, truncate(av^bv, width))
	case PrimShiftLeft:
		if bv >= 64 {
			return Const(width, 0)
		}
		return Const(width, truncate(av<<uint(bv), width))
	case PrimShiftRight:
		if bv >= 64 {
			return Const(width, 0)
		}
		return Const(width, truncate(av>>uint(bv), width))
	case PrimArithShiftRight:
		sv := signExtend64(av, a.Width)
		if bv >= 64 {
			if sv < 0 {
				return Const(width, mask64(width))
			}
			return Const(width, 0)
		}
		return Const(width, uint64(sv>>uint(bv))&mask64(width))
	case PrimEqual:
		return boolConst(av == bv)
	case PrimNotEqual:
		return boolConst(av != bv)
	case PrimLessThan:
		return boolConst(av < bv)
	case PrimLessThanEq:
		return boolConst(av <= bv)
	default:
		return nil
	}
}

func boolConst(v bool) *BitExpr {
	if v {
		return Const(1, 1)
	}
	return Const(1, 0)
}
