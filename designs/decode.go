package designs

import (
	"github.com/gmofishsauce/wut4/bitx"
	"github.com/gmofishsauce/wut4/netlist"
)

// Decode elaborates a RISC-V instruction decoder for add/addi/sw
// built directly from SelectBits/Concat/Equal rather than a general
// BitPat/BitScan pattern compiler. It exposes one-hot match
// outputs plus the decoded register fields and the two immediate
// encodings (I-type and S-type, reassembled from their scattered bits
// and sign-extended).
func Decode() *netlist.Netlist {
	inst := bitx.Input(32, "inst")

	opcode := bitx.SelectBits(6, 0, inst)
	funct3 := bitx.SelectBits(14, 12, inst)
	rs1 := bitx.SelectBits(19, 15, inst)
	rs2 := bitx.SelectBits(24, 20, inst)

	immIHi := bitx.SelectBits(31, 20, inst)
	immI := bitx.SignExtend(32, immIHi)

	immSHi := bitx.SelectBits(31, 25, inst)
	immSLo := bitx.SelectBits(11, 7, inst)
	immS := bitx.SignExtend(32, bitx.Concat(immSHi, immSLo))

	isAdd := opcode.Equal(bitx.Const(7, 0b0110011)).And(funct3.Equal(bitx.Const(3, 0b000)))
	isAddi := opcode.Equal(bitx.Const(7, 0b0010011)).And(funct3.Equal(bitx.Const(3, 0b000)))
	isSw := opcode.Equal(bitx.Const(7, 0b0100011)).And(funct3.Equal(bitx.Const(3, 0b010)))

	oAdd := bitx.Output(1, "is_add", isAdd)
	oAddi := bitx.Output(1, "is_addi", isAddi)
	oSw := bitx.Output(1, "is_sw", isSw)
	oRs1 := bitx.Output(5, "rs1", rs1)
	oRs2 := bitx.Output(5, "rs2", rs2)
	oImmI := bitx.Output(32, "imm_i", immI)
	oImmS := bitx.Output(32, "imm_s", immS)

	return netlist.Flatten([]*bitx.BitExpr{inst, oAdd, oAddi, oSw, oRs1, oRs2, oImmI, oImmS})
}
