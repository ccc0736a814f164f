// Command hdlc is the general-purpose frontend for the wut4 hardware
// description core: it elaborates any of the built-in example designs
// and writes Verilog (and, optionally, a Verilator harness) for it.
// Subcommands cover listing the available designs,
// elaborating one to Verilog, and reporting the tool's version.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	cfg := loadConfig()

	root := &cobra.Command{
		Use:   "hdlc",
		Short: "Elaborate wut4 hardware designs to Verilog",
	}

	root.AddCommand(newVerilogCmd(cfg))
	root.AddCommand(newListCmd())
	root.AddCommand(newVersionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "hdlc: %v\n", err)
		os.Exit(1)
	}
}
