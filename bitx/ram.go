package bitx

// BRAM builds a block-RAM primitive. For SinglePort it takes one
// address, one write-data, and one write-enable input and has a single
// DO output; DualPort/TrueDualPort take the doubled set of inputs and
// produce DO_A/DO_B outputs. BRAMOutputs below returns the names of
// those output ports.
func BRAM(kind RAMKind, initFile string, addrWidth, dataWidth int, byteEnable bool, ins ...*BitExpr) *BitExpr {
	n := newNode(PrimBRAM, dataWidth, ins...)
	n.RAMKind = kind
	n.InitFile = initFile
	n.AddrWidth, n.DataWidth = addrWidth, dataWidth
	n.ByteEnable = byteEnable
	return n
}

// BRAMOutputs returns the named output ports of a BRAM node ("DO" for
// SinglePort, "DO_A"/"DO_B" otherwise).
func BRAMOutputs(ram *BitExpr) []string {
	if ram.RAMKind == RAMSinglePort {
		return []string{"DO"}
	}
	return []string{"DO_A", "DO_B"}
}

// RegFileMake declares a register file of 2^addrWidth entries, each
// dataWidth bits, optionally preloaded from initFile via $readmemh.
func RegFileMake(id int, initFile string, addrWidth, dataWidth int) *BitExpr {
	n := newNode(PrimRegFileMake, 0)
	n.RegFileID = id
	n.InitFile = initFile
	n.AddrWidth, n.DataWidth = addrWidth, dataWidth
	return n
}

// RegFileRead reads dataWidth bits combinationally at addr from rf.
func RegFileRead(rf *BitExpr, addr *BitExpr) *BitExpr {
	checkWidth(PrimRegFileRead, "RegFileRead address", rf.AddrWidth, addr.Width)
	n := newNode(PrimRegFileRead, rf.DataWidth, addr)
	n.RegFile = rf
	return n
}

// RegFileWrite writes data to addr in rf under guard en; it is a
// zero-width side-effect node consumed by the always block.
func RegFileWrite(rf *BitExpr, en, addr, data *BitExpr) *BitExpr {
	checkWidth(PrimRegFileWrite, "RegFileWrite enable", 1, en.Width)
	checkWidth(PrimRegFileWrite, "RegFileWrite address", rf.AddrWidth, addr.Width)
	checkWidth(PrimRegFileWrite, "RegFileWrite data", rf.DataWidth, data.Width)
	n := newNode(PrimRegFileWrite, 0, en, addr, data)
	n.RegFile = rf
	return n
}
