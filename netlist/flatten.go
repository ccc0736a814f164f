package netlist

import "github.com/gmofishsauce/wut4/bitx"

// flattener walks a BitExpr DAG, memoizing each distinct node (by
// reference identity - see bitx.BitExpr's doc comment on sharing) to
// exactly one Net. It mirrors lang/yld/linker.go's two-pass symbol
// table: allocate an id, then resolve references against it.
type flattener struct {
	memo map[*bitx.BitExpr]int
	nl   *Netlist
}

// Flatten materializes every BitExpr reachable from roots into a
// Netlist, in creation order. roots should include every Output node,
// every declared Input node (even unused ones - they are still module
// ports), and every side-effect event (Display/Finish/Assert/
// RegFileWrite), each carrying its guard as an ordinary input so it
// flattens like any other node.
func Flatten(roots []*bitx.BitExpr) *Netlist {
	f := &flattener{
		memo: make(map[*bitx.BitExpr]int),
		nl:   &Netlist{},
	}
	for _, r := range roots {
		f.visit(r)
	}
	f.buildTables()
	return f.nl
}

func (f *flattener) alloc(n *bitx.BitExpr) int {
	id := len(f.nl.Nets)
	net := &Net{ID: id, Src: n, Hints: n.Hints, InitNet: -1, RegFileNet: -1}
	f.nl.Nets = append(f.nl.Nets, net)
	f.memo[n] = id
	return id
}

// visit returns the net id for n, flattening it (and, transitively,
// whatever it depends on) if this is the first time n is reached.
// Registers and register files are pre-allocated before their inputs
// are visited, because a register's next-value expression is allowed
// to read the register's own current value - the one place the
// netlist is permitted to contain a cycle; every other primitive's
// inputs form a strict DAG. Custom output taps are pre-allocated for the same
// reason: their shared instance force-visits every sibling tap, which
// can reach back to the tap currently being visited.
func (f *flattener) visit(n *bitx.BitExpr) int {
	if id, ok := f.memo[n]; ok {
		return id
	}

	switch n.Prim {
	case bitx.PrimRegister, bitx.PrimRegisterEn, bitx.PrimRegFileMake:
		id := f.alloc(n)
		net := f.nl.Nets[id]
		net.Ins = f.visitAll(n.Ins)
		if n.Init != nil {
			net.InitNet = f.visit(n.Init)
		}
		return id
	case bitx.PrimCustom:
		// An output tap's sole input is its shared PrimCustomInstance,
		// which force-visits every sibling tap (including this one) to
		// materialize outputs nothing else reads - so a tap reached
		// for the first time via its instance, from within this very
		// call's recursion into n.Ins, must already have a net id to
		// return instead of recursing forever. Pre-allocate before
		// descending, the same cycle-breaking move the Register case
		// makes for its own feedback input.
		id := f.alloc(n)
		f.nl.Nets[id].Ins = f.visitAll(n.Ins)
		return id
	case bitx.PrimCustomInstance:
		id := f.alloc(n)
		f.nl.Nets[id].Ins = f.visitAll(n.Ins)
		// Every declared output must appear in the netlist as a
		// module port binding even if nothing downstream reads it,
		// the same way an unused Input net still needs a port.
		for _, tap := range n.CustomOutNodes {
			f.visit(tap)
		}
		return id
	default:
		ins := f.visitAll(n.Ins)
		id := f.alloc(n)
		net := f.nl.Nets[id]
		net.Ins = ins
		if n.RegFile != nil {
			net.RegFileNet = f.visit(n.RegFile)
		}
		return id
	}
}

func (f *flattener) visitAll(ins []*bitx.BitExpr) []int {
	if len(ins) == 0 {
		return nil
	}
	ids := make([]int, len(ins))
	for i, in := range ins {
		ids[i] = f.visit(in)
	}
	return ids
}

func (f *flattener) buildTables() {
	seenNames := make(map[string]bool)
	for _, net := range f.nl.Nets {
		switch net.Prim() {
		case bitx.PrimInput, bitx.PrimOutput:
			if !seenNames[net.Src.Name] {
				seenNames[net.Src.Name] = true
				f.nl.Boundary = append(f.nl.Boundary, net)
			}
		case bitx.PrimRegister, bitx.PrimRegisterEn, bitx.PrimRegFileWrite,
			bitx.PrimDisplay, bitx.PrimFinish, bitx.PrimAssert:
			f.nl.Sequential = append(f.nl.Sequential, net)
		}
	}
}
