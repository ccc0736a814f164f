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

// RegisterFile wraps bitx's RegFileMake/Read/Write behind a
// {read(a) -> d, update(a, d)} shape. Reads are combinational and
// unconditional; any number of concurrent reads and writes per cycle
// is permitted, so Update is independent of any other register file
// or register state the designer also touches this cycle.
type RegisterFile struct {
	rf *bitx.BitExpr
}

// NewRegisterFile declares a 2^addrWidth x dataWidth register file,
// optionally preloaded from initFile.
func NewRegisterFile(id int, initFile string, addrWidth, dataWidth int) *RegisterFile {
	return &RegisterFile{rf: bitx.RegFileMake(id, initFile, addrWidth, dataWidth)}
}

// Read returns the combinational value stored at addr.
func (r *RegisterFile) Read(addr *bitx.BitExpr) *bitx.BitExpr {
	return bitx.RegFileRead(r.rf, addr)
}

// Update writes data to addr under b's current guard.
func (r *RegisterFile) Update(b *rtl.Builder, addr, data *bitx.BitExpr) {
	b.RegFileWrite(r.rf, addr, data)
}
