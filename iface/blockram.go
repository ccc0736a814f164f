// Copyright © 2024 Jeff Berkowitz (pdxjjb@gmail.com)
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.

package iface

import (
	"github.com/gmofishsauce/wut4/rtl"
	"github.com/gmofishsauce/wut4/bitx"
)

// BlockRAM wraps a single-port bitx.BRAM instance behind a
// {load(a), store(a, d), out: d} shape. Address, data, and
// write-enable are ordinary guarded wires, the way emul/memory.go's
// single read/write port is driven by decoded address and control
// signals each cycle; loading and storing the same RAM the same cycle
// is undefined.
type BlockRAM struct {
	addr *rtl.Wire
	data *rtl.Wire
	we   *rtl.Wire
	ram  *bitx.BitExpr
}

// NewBlockRAM declares a 2^addrWidth x dataWidth single-port RAM in b,
// optionally preloaded from initFile.
func NewBlockRAM(b *rtl.Builder, initFile string, addrWidth, dataWidth int) *BlockRAM {
	addr := b.FreshWire(addrWidth, bitx.Const(addrWidth, 0))
	data := b.FreshWire(dataWidth, bitx.Const(dataWidth, 0))
	we := b.FreshWire(1, bitx.Const(1, 0))
	ram := bitx.BRAM(bitx.RAMSinglePort, initFile, addrWidth, dataWidth, false,
		addr.Read(), data.Read(), we.Read())
	return &BlockRAM{addr: addr, data: data, we: we, ram: ram}
}

// Load presents addr for a combinational/registered read, per the
// underlying BRAM primitive's timing; Out reflects the result.
func (r *BlockRAM) Load(addr *bitx.BitExpr) {
	r.addr.Assign(addr)
}

// Store writes data to addr this cycle.
func (r *BlockRAM) Store(addr, data *bitx.BitExpr) {
	r.addr.Assign(addr)
	r.data.Assign(data)
	r.we.Assign(bitx.Const(1, 1))
}

// Out is the RAM's data output.
func (r *BlockRAM) Out() *bitx.BitExpr { return r.ram }
