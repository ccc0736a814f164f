// Package bitx implements the bit-vector expression IR: width-tracked,
// structurally-shared DAG nodes (BitExpr) over a closed set of
// combinational and sequential primitives.
//
// A BitExpr is built by ordinary Go calls (Add, Mux, SelectBits, ...)
// the same way a wut4 assembly routine is built instruction by
// instruction in lang/ygen/emit.go; the tree is handed to the rtl
// elaborator, which resolves it into a netlist.
package bitx

// Prim is the closed tag set of circuit primitives, grouped into
// families: arithmetic/logic, comparison, bit munging, muxing, merge,
// state, RAM, register files, boundary, constants, side effects, and
// opaque custom instances.
type Prim uint8

const (
	PrimConst Prim = iota
	PrimDontCare

	PrimAdd
	PrimSub
	PrimMul
	PrimDiv
	PrimMod
	PrimAnd
	PrimOr
	PrimXor
	PrimNot
	PrimShiftLeft
	PrimShiftRight
	PrimArithShiftRight

	PrimEqual
	PrimNotEqual
	PrimLessThan
	PrimLessThanEq

	PrimReplicateBit
	PrimZeroExtend
	PrimSignExtend
	PrimSelectBits
	PrimConcat
	PrimIdentity

	PrimMux
	PrimMergeWrites

	PrimRegister
	PrimRegisterEn

	PrimBRAM
	PrimRegFileMake
	PrimRegFileRead
	PrimRegFileWrite

	PrimInput
	PrimOutput

	PrimDisplay
	PrimFinish
	PrimAssert
	PrimTestPlusArgs

	PrimCustomInstance
	PrimCustom
)

// String names each primitive for error messages and the mangler's
// default-hint fallback. Kept in sync with the const block above.
var primNames = [...]string{
	PrimConst:           "Const",
	PrimDontCare:        "DontCare",
	PrimAdd:             "Add",
	PrimSub:             "Sub",
	PrimMul:             "Mul",
	PrimDiv:             "Div",
	PrimMod:             "Mod",
	PrimAnd:             "And",
	PrimOr:              "Or",
	PrimXor:             "Xor",
	PrimNot:             "Not",
	PrimShiftLeft:       "ShiftLeft",
	PrimShiftRight:      "ShiftRight",
	PrimArithShiftRight: "ArithShiftRight",
	PrimEqual:           "Equal",
	PrimNotEqual:        "NotEqual",
	PrimLessThan:        "LessThan",
	PrimLessThanEq:      "LessThanEq",
	PrimReplicateBit:    "ReplicateBit",
	PrimZeroExtend:      "ZeroExtend",
	PrimSignExtend:      "SignExtend",
	PrimSelectBits:      "SelectBits",
	PrimConcat:          "Concat",
	PrimIdentity:        "Identity",
	PrimMux:             "Mux",
	PrimMergeWrites:     "MergeWrites",
	PrimRegister:        "Register",
	PrimRegisterEn:      "RegisterEn",
	PrimBRAM:            "BRAM",
	PrimRegFileMake:     "RegFileMake",
	PrimRegFileRead:     "RegFileRead",
	PrimRegFileWrite:    "RegFileWrite",
	PrimInput:           "Input",
	PrimOutput:          "Output",
	PrimDisplay:         "Display",
	PrimFinish:          "Finish",
	PrimAssert:          "Assert",
	PrimTestPlusArgs:    "TestPlusArgs",
	PrimCustomInstance:  "CustomInstance",
	PrimCustom:          "Custom",
}

func (p Prim) String() string {
	if int(p) < len(primNames) && primNames[p] != "" {
		return primNames[p]
	}
	return "???"
}

// MergeStrategy selects how MergeWrites combines its enable/value pairs.
// Or is the only strategy defined: each pair drives value when enable
// is 1 else 0, ORed together.
type MergeStrategy uint8

const (
	MergeOr MergeStrategy = iota
)

// RAMKind distinguishes the three BRAM port shapes.
type RAMKind uint8

const (
	RAMSinglePort RAMKind = iota
	RAMDualPort
	RAMTrueDualPort
)

func (k RAMKind) String() string {
	switch k {
	case RAMSinglePort:
		return "SinglePort"
	case RAMDualPort:
		return "DualPort"
	case RAMTrueDualPort:
		return "TrueDualPort"
	default:
		return "???"
	}
}
