package iface

import (
	"github.com/gmofishsauce/wut4/rtl"
	"github.com/gmofishsauce/wut4/bitx"
)

// Queue is a single-slot FIFO: one valid bit plus one data register.
// enq/deq preconditions (don't enqueue when full, don't dequeue when
// empty) are the designer's responsibility - NotFull/CanDeq exist
// precisely so the designer can check them.
type Queue struct {
	width int
	valid *rtl.Reg
	data  *rtl.Reg
}

// NewQueue declares a width-bit, depth-1 queue's state in b.
func NewQueue(b *rtl.Builder, width int) *Queue {
	return &Queue{
		width: width,
		valid: b.FreshReg(1, bitx.Const(1, 0)),
		data:  b.FreshReg(width, nil),
	}
}

// NotFull reports whether Enq may fire this cycle.
func (q *Queue) NotFull() *bitx.BitExpr { return q.valid.Read().Not() }

// NotEmpty reports whether the queue holds a value.
func (q *Queue) NotEmpty() *bitx.BitExpr { return q.valid.Read() }

// CanDeq is an alias for NotEmpty.
func (q *Queue) CanDeq() *bitx.BitExpr { return q.NotEmpty() }

// First is the value Deq would remove.
func (q *Queue) First() *bitx.BitExpr { return q.data.Read() }

// Enq stores a and marks the queue full.
func (q *Queue) Enq(a *bitx.BitExpr) {
	q.data.Assign(a)
	q.valid.Assign(bitx.Const(1, 1))
}

// Deq marks the queue empty; the stored value is left in place (First
// is undefined until the next Enq) but no longer visible through
// CanDeq/NotEmpty.
func (q *Queue) Deq() {
	q.valid.Assign(bitx.Const(1, 0))
}

// Stream is a Queue projected down to its consumer-facing half: get a
// value, ask whether one is available, read it - identical shape,
// derived from a queue by projection rather than its own state.
type Stream struct {
	q *Queue
}

// NewStreamFromQueue projects q's consumer side into a Stream.
func NewStreamFromQueue(q *Queue) *Stream { return &Stream{q: q} }

// Get dequeues the current value.
func (s *Stream) Get() { s.q.Deq() }

// CanGet reports whether Value is valid this cycle.
func (s *Stream) CanGet() *bitx.BitExpr { return s.q.CanDeq() }

// Value is the stream's current element.
func (s *Stream) Value() *bitx.BitExpr { return s.q.First() }
