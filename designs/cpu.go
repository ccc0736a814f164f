package designs

import (
	"github.com/gmofishsauce/wut4/bitx"
	"github.com/gmofishsauce/wut4/format"
	"github.com/gmofishsauce/wut4/iface"
	"github.com/gmofishsauce/wut4/netlist"
	"github.com/gmofishsauce/wut4/rtl"
)

// cpuProgram is the fixed 8-word ROM image this scenario executes,
// indexed directly by the low 3 bits of the program counter: load
// r0:=1 and r1:=3, add r1 into r0 four times, check r3 (always zero)
// for a branch that isn't taken, then halt with r0 = 1 + 4*3 = 13.
var cpuProgram = [8]uint64{
	0x01, // LDI r0, 1
	0x13, // LDI r1, 3
	0x41, // ADD r0, r0, r1
	0x41, // ADD r0, r0, r1
	0x41, // ADD r0, r0, r1
	0x41, // ADD r0, r0, r1
	0x87, // BNZ +1, r3   (r3 is always 0: not taken)
	0xC0, // HALT
}

// CPU elaborates an 8-bit CPU with four registers, decoding the
// opcode classes 00ZZNNNN
// (LDI Z,NNNN), 01ZZXXYY (ADD Z,X,Y), 10NNNNYY (BNZ offset,Y) and
// 11NNNNNN (HALT). The program ROM is a small combinational Mux over
// the program counter rather than a loaded memory image, since the
// scenario's program is fixed.
func CPU() *netlist.Netlist {
	b := rtl.NewBuilder()

	pc := b.FreshReg(8, bitx.Const(8, 0))
	halted := b.FreshReg(1, bitx.Const(1, 0))
	regs := iface.NewRegisterFile(0, "", 2, 8)

	romSel := bitx.SelectBits(2, 0, pc.Read())
	romWords := make([]*bitx.BitExpr, len(cpuProgram))
	for i, w := range cpuProgram {
		romWords[i] = bitx.Const(8, w)
	}
	instr := bitx.Mux(romSel, romWords...)

	op := bitx.SelectBits(7, 6, instr)
	isLDI := op.Equal(bitx.Const(2, 0b00))
	isADD := op.Equal(bitx.Const(2, 0b01))
	isBNZ := op.Equal(bitx.Const(2, 0b10))
	isHLT := op.Equal(bitx.Const(2, 0b11))

	ldiZ := bitx.SelectBits(5, 4, instr)
	ldiImm := bitx.ZeroExtend(8, bitx.SelectBits(3, 0, instr))

	addZ := bitx.SelectBits(5, 4, instr)
	addX := bitx.SelectBits(3, 2, instr)
	addY := bitx.SelectBits(1, 0, instr)

	bnzImm := bitx.SelectBits(5, 2, instr)
	bnzY := bitx.SelectBits(1, 0, instr)

	rx := regs.Read(addX)
	ry := regs.Read(addY)
	sum := rx.Add(ry)

	running := halted.Read().Not()
	b.When(running.And(isLDI), func() { regs.Update(b, ldiZ, ldiImm) })
	b.When(running.And(isADD), func() { regs.Update(b, addZ, sum) })
	b.When(running.And(isHLT), func() { halted.Assign(bitx.Const(1, 1)) })

	condReg := regs.Read(bnzY)
	branchTaken := isBNZ.And(condReg.NotEqual(bitx.Const(8, 0)))
	pcNext := pc.Read().Add(bitx.Const(8, 1))
	pcBranch := pc.Read().Add(bitx.SignExtend(8, bnzImm))
	b.When(running, func() {
		pc.Assign(bitx.Mux(branchTaken, pcNext, pcBranch))
	})

	b.Display([]format.Item{
		format.Str("pc="), format.Fmt(0, format.Dec, 0, false),
		format.Str(" r0="), format.Fmt(1, format.Dec, 0, false),
	}, pc.Read(), regs.Read(bitx.Const(2, 0)))
	b.When(halted.Read(), func() { b.Finish() })

	m := b.Elaborate()
	return netlist.Flatten(m.Roots)
}
