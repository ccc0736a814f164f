package rtl

import "github.com/gmofishsauce/wut4/bitx"

// When runs body with the current guard narrowed to guard AND cond,
// so every Assign inside body only fires when cond holds (and every
// enclosing condition also held). Nested Whens AND their conditions
// together, the monad's guard-stacking discipline.
func (b *Builder) When(cond *bitx.BitExpr, body func()) {
	b.checkLive()
	saved := b.guard
	b.guard = saved.And(cond)
	body()
	b.guard = saved
}

// IfThenElse elaborates then under guard AND cond and els under guard
// AND NOT cond. Reusing guard AND cond for both arms - rather than
// negating cond for the else arm - silently drops every Assign inside
// els whenever cond is true. Here, els genuinely only fires when cond
// is false.
func (b *Builder) IfThenElse(cond *bitx.BitExpr, then, els func()) {
	b.checkLive()
	saved := b.guard
	b.guard = saved.And(cond)
	then()
	b.guard = saved.And(cond.Not())
	els()
	b.guard = saved
}
