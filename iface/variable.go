// Package iface implements the interfaces exposed to external
// collaborators: a generic Variable handle, a Queue, a Stream
// projected from a Queue, a block-RAM wrapper, and a register-file
// wrapper. Each is a thin convenience over rtl.Builder registers/wires
// and bitx RAM/register file primitives, with no general sub-language
// (Recipe, BitPat, and similar matchers) behind it.
package iface

import "github.com/gmofishsauce/wut4/bitx"

// Variable is the shape every guarded handle in this package (and
// rtl.Reg/rtl.Wire themselves) exposes: read the current value,
// assign a new one under whatever guard is active when Assign is
// called.
type Variable interface {
	Read() *bitx.BitExpr
	Assign(*bitx.BitExpr)
}
