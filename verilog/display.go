package verilog

import (
	"fmt"
	"strings"

	"github.com/gmofishsauce/wut4/format"
	"github.com/gmofishsauce/wut4/netlist"
)

// displayStmt lowers one Display net's format items to nested
// $write/if statements, guarded by the Display's own enable:
// BeginCond/EndCond become `if (cond == 1) begin ... end` wrapping
// the $write calls for the items between them.
func (e *Emitter) displayStmt(n *netlist.Net) {
	en := e.name(n.Ins[0])
	vals := n.Ins[1:]
	fmt.Fprintf(e.out, "    if (%s) begin\n", en)
	d := &displayWriter{e: e, vals: vals, indent: "      "}
	d.run(n.Src.FormatItems)
	fmt.Fprintf(e.out, "    end\n")
}

type displayWriter struct {
	e      *Emitter
	vals   []int
	indent string
}

// run emits $write statements for a flat run of Literal/Spec items,
// opening a nested if block whenever it meets a BeginCond and
// returning to the caller at the matching EndCond.
func (d *displayWriter) run(items []format.Item) []format.Item {
	var fmtStr strings.Builder
	var args []string

	flush := func() {
		if fmtStr.Len() == 0 {
			return
		}
		if len(args) == 0 {
			fmt.Fprintf(d.e.out, "%s$write(\"%s\");\n", d.indent, fmtStr.String())
		} else {
			fmt.Fprintf(d.e.out, "%s$write(\"%s\", %s);\n", d.indent, fmtStr.String(), strings.Join(args, ", "))
		}
		fmtStr.Reset()
		args = nil
	}

	for len(items) > 0 {
		it := items[0]
		switch it.Kind {
		case format.Literal:
			fmtStr.WriteString(it.Text)
			items = items[1:]
		case format.Spec:
			fmtStr.WriteString(it.Verilog())
			args = append(args, d.e.name(d.vals[it.ValueIndex]))
			items = items[1:]
		case format.BeginCond:
			flush()
			condName := d.e.name(d.vals[it.CondIndex])
			fmt.Fprintf(d.e.out, "%sif (%s == 1) begin\n", d.indent, condName)
			inner := &displayWriter{e: d.e, vals: d.vals, indent: d.indent + "  "}
			items = inner.run(items[1:])
			fmt.Fprintf(d.e.out, "%send\n", d.indent)
		case format.EndCond:
			flush()
			return items[1:]
		}
	}
	flush()
	return items
}
