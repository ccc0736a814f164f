// Package format defines the structured printf-like items carried
// through the netlist for Display primitives. An Item is either a
// literal string, a bit-width-aware value specifier, or a
// conditional-block marker that the Verilog backend turns into a
// nested `if`.
package format

import "strconv"

// Radix selects the numeric base a Spec formats its value in.
type Radix uint8

const (
	Bin Radix = iota
	Dec
	Hex
)

func (r Radix) String() string {
	switch r {
	case Bin:
		return "b"
	case Dec:
		return "d"
	case Hex:
		return "h"
	default:
		return "?"
	}
}

// Kind distinguishes the three shapes an Item can take.
type Kind uint8

const (
	Literal Kind = iota
	Spec
	BeginCond
	EndCond
)

// Item is one element of a Display argument list. ValueIndex indexes
// into the Display node's non-guard inputs for Spec items; CondIndex
// does the same for BeginCond items.
type Item struct {
	Kind Kind

	// Literal
	Text string

	// Spec
	ValueIndex int
	Radix      Radix
	Pad        int // 0 = no explicit width
	ZeroPad    bool

	// BeginCond
	CondIndex int
}

// Str builds a literal text item.
func Str(s string) Item { return Item{Kind: Literal, Text: s} }

// Fmt builds a value specifier item referencing the value at
// valueIndex, formatted in radix with an optional zero-padded width.
func Fmt(valueIndex int, radix Radix, pad int, zeroPad bool) Item {
	return Item{Kind: Spec, ValueIndex: valueIndex, Radix: radix, Pad: pad, ZeroPad: zeroPad}
}

// BeginCondItem opens a conditional block gated on the value at
// condIndex; every item up to the matching EndCondItem is only
// reachable (and only formatted) when that value is 1.
func BeginCondItem(condIndex int) Item { return Item{Kind: BeginCond, CondIndex: condIndex} }

// EndCondItem closes the innermost open conditional block.
func EndCondItem() Item { return Item{Kind: EndCond} }

// Verilog renders the `%<pad><radix>` specifier text for a Spec item,
// e.g. "%04h" for Fmt(i, Hex, 4, true).
func (it Item) Verilog() string {
	if it.Kind != Spec {
		return ""
	}
	pad := ""
	if it.Pad > 0 {
		pad = strconv.Itoa(it.Pad)
		if it.ZeroPad {
			pad = "0" + pad
		}
	}
	return "%" + pad + it.Radix.String()
}
