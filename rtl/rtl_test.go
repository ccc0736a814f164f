package rtl

import (
	"testing"

	"github.com/gmofishsauce/wut4/bitx"
)

func TestRegisterHoldsInitWhenNeverAssigned(t *testing.T) {
	b := NewBuilder()
	r := b.FreshReg(8, bitx.Const(8, 3))
	m := b.Elaborate()

	got := r.Read()
	if got.Prim != bitx.PrimRegisterEn {
		t.Fatalf("want RegisterEn, got %s", got.Prim)
	}
	en := got.Ins[1]
	if !en.IsConst() || en.ConstVal != 0 {
		t.Errorf("never-assigned register should have enable const 0, got %+v", en)
	}
	if len(m.Roots) == 0 {
		t.Errorf("expected at least one root")
	}
}

func TestRegisterLaterSiteOverridesEarlierOnSimultaneousGuard(t *testing.T) {
	b := NewBuilder()
	r := b.FreshReg(8, nil)
	cond := bitx.Input(1, "cond")

	// One unconditional site at the top level and a later one under
	// When(cond): when cond is true both guards are active, and the later
	// Assign should win in the priority chain.
	r.Assign(bitx.Const(8, 1))
	b.When(cond, func() {
		r.Assign(bitx.Const(8, 2))
	})
	b.Elaborate()

	driver := r.Read()
	if driver.Prim != bitx.PrimRegisterEn {
		t.Fatalf("want RegisterEn, got %s", driver.Prim)
	}
	next := driver.Ins[0]
	if next.Prim != bitx.PrimMux {
		t.Fatalf("want a priority Mux over the two sites, got %s", next.Prim)
	}
	// Mux(sel=cond, ins = [whenFalse, whenTrue]); whenFalse should be
	// the first (unconditional) site's 1, whenTrue the second site's 2.
	if !next.Ins[0].IsConst() || next.Ins[0].ConstVal != 1 {
		t.Errorf("false branch: want const 1, got %+v", next.Ins[0])
	}
	if !next.Ins[1].IsConst() || next.Ins[1].ConstVal != 2 {
		t.Errorf("true branch: want const 2, got %+v", next.Ins[1])
	}
}

func TestWireMergesWritesAndFallsBackToDefault(t *testing.T) {
	b := NewBuilder()
	w := b.FreshWire(4, bitx.Const(4, 9))
	cond := bitx.Input(1, "cond")
	b.When(cond, func() {
		w.Assign(bitx.Const(4, 5))
	})
	b.Elaborate()

	driver := w.Read()
	if driver.Prim != bitx.PrimIdentity {
		t.Fatalf("want Identity wrapping MergeWrites, got %s", driver.Prim)
	}
	mw := driver.Ins[0]
	if mw.Prim != bitx.PrimMergeWrites {
		t.Fatalf("want MergeWrites, got %s", mw.Prim)
	}
	if len(mw.Ins) != 4 { // one (cond, 5) pair plus one (!cond, 9) fallback pair
		t.Fatalf("want 2 enable/value pairs (4 ins), got %d", len(mw.Ins))
	}
}

// TestIfThenElseCorrectedSemantics exercises the section 9 correction:
// the else branch must elaborate under guard AND NOT cond, not under
// the same guard AND cond the then branch uses. A naive transliteration
// of the original combinator reuses cond for both arms, which would
// make this test's wire latch the then-branch value even when cond is
// false.
func TestIfThenElseCorrectedSemantics(t *testing.T) {
	b := NewBuilder()
	cond := bitx.Input(1, "cond")
	w := b.FreshWire(8, bitx.Const(8, 0))

	b.IfThenElse(cond,
		func() { w.Assign(bitx.Const(8, 0xAA)) },
		func() { w.Assign(bitx.Const(8, 0x55)) },
	)
	b.Elaborate()

	mw := w.Read().Ins[0]
	if mw.Prim != bitx.PrimMergeWrites {
		t.Fatalf("want MergeWrites, got %s", mw.Prim)
	}
	// Two guarded sites (then, else) plus the none-active fallback: 6 ins.
	if len(mw.Ins) != 6 {
		t.Fatalf("want 3 enable/value pairs (6 ins), got %d", len(mw.Ins))
	}
	thenGuard, thenVal := mw.Ins[0], mw.Ins[1]
	elseGuard, elseVal := mw.Ins[2], mw.Ins[3]

	// Each guard is (top-level guard AND <condition>); the top-level
	// guard here is the unconditional Const(1,1), so Ins[1] of the AND
	// is the condition that actually matters for this test.
	if thenGuard.Prim != bitx.PrimAnd || thenGuard.Ins[1] != cond {
		t.Errorf("then branch guard should be (true AND cond), got %s", thenGuard.Prim)
	}
	if !thenVal.IsConst() || thenVal.ConstVal != 0xAA {
		t.Errorf("then branch value: want 0xAA, got %+v", thenVal)
	}
	if elseGuard.Prim != bitx.PrimAnd {
		t.Fatalf("else branch guard should be (true AND Not(cond)), got %s", elseGuard.Prim)
	}
	notCond := elseGuard.Ins[1]
	if notCond.Prim != bitx.PrimNot || notCond.Ins[0] != cond {
		t.Errorf("else branch guard's condition should be Not(cond), got %s", notCond.Prim)
	}
	if !elseVal.IsConst() || elseVal.ConstVal != 0x55 {
		t.Errorf("else branch value: want 0x55, got %+v", elseVal)
	}
}

func TestAssignAfterElaboratePanics(t *testing.T) {
	b := NewBuilder()
	r := b.FreshReg(1, nil)
	b.Elaborate()

	defer func() {
		if recover() == nil {
			t.Errorf("expected panic assigning after Elaborate")
		}
	}()
	r.Assign(bitx.Const(1, 1))
}

func TestDanglingVarPanics(t *testing.T) {
	b1 := NewBuilder()
	r := b1.FreshReg(1, nil)

	b2 := NewBuilder()
	defer func() {
		if recover() == nil {
			t.Errorf("expected DanglingVarError using b1's handle against b2")
		}
	}()
	b2.lookup(r.id)
}
