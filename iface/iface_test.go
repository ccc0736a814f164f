package iface

import (
	"testing"

	"github.com/gmofishsauce/wut4/rtl"
	"github.com/gmofishsauce/wut4/bitx"
)

func TestQueueEnqDeqRoundTrip(t *testing.T) {
	b := rtl.NewBuilder()
	q := NewQueue(b, 8)
	push := bitx.Input(1, "push")
	pop := bitx.Input(1, "pop")
	datain := bitx.Input(8, "datain")

	b.When(push.And(q.NotFull()), func() { q.Enq(datain) })
	b.When(pop.And(q.CanDeq()), func() { q.Deq() })

	b.Output(8, "dataout", q.First())
	b.Output(1, "empty", q.NotEmpty().Not())
	m := b.Elaborate()

	if len(m.Roots) == 0 {
		t.Fatalf("expected roots after elaboration")
	}
}

func TestStreamProjectsQueue(t *testing.T) {
	b := rtl.NewBuilder()
	q := NewQueue(b, 4)
	s := NewStreamFromQueue(q)

	if s.Value() != q.First() {
		t.Errorf("Stream.Value should alias Queue.First")
	}
	if s.CanGet() != q.CanDeq() {
		t.Errorf("Stream.CanGet should alias Queue.CanDeq")
	}
}

func TestRegisterFileReadAfterUpdate(t *testing.T) {
	b := rtl.NewBuilder()
	rf := NewRegisterFile(0, "", 4, 8)
	addr := bitx.Input(4, "addr")
	data := bitx.Input(8, "data")
	we := bitx.Input(1, "we")

	b.When(we, func() { rf.Update(b, addr, data) })
	b.Output(8, "rdata", rf.Read(addr))
	b.Elaborate()
}

func TestBlockRAMLoadStore(t *testing.T) {
	b := rtl.NewBuilder()
	ram := NewBlockRAM(b, "", 10, 16)
	addr := bitx.Input(10, "addr")
	data := bitx.Input(16, "data")
	we := bitx.Input(1, "we")

	b.When(we, func() { ram.Store(addr, data) })
	b.When(we.Not(), func() { ram.Load(addr) })
	b.Output(16, "dout", ram.Out())
	b.Elaborate()

	if ram.Out().Prim != bitx.PrimBRAM {
		t.Errorf("Out() should be the BRAM node itself, got %s", ram.Out().Prim)
	}
}
