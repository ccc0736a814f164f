// Package designs holds end-to-end example hardware designs as
// ordinary Go functions returning a flattened netlist, which the
// cmd/hdlc frontend elaborates by name through Registry.
package designs

import "github.com/gmofishsauce/wut4/netlist"

// Builder elaborates one named design into a flattened netlist.
type Builder func() *netlist.Netlist

// Registry lists every built-in design cmd/hdlc can elaborate.
var Registry = map[string]Builder{
	"twosort":   TwoSort,
	"counter":   Counter,
	"queue":     Queue,
	"factorial": Factorial,
	"decode":    Decode,
	"cpu":       CPU,
}

// Names returns the registry's keys in a fixed presentation order.
func Names() []string {
	return []string{"twosort", "counter", "queue", "factorial", "decode", "cpu"}
}
