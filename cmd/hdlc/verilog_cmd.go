package main

import (
	"fmt"

	"github.com/gmofishsauce/wut4/designs"
	"github.com/gmofishsauce/wut4/verilog"
	"github.com/spf13/cobra"
)

// newVerilogCmd builds the "hdlc verilog <design>" subcommand: look up
// a built-in design by name, elaborate it, and write its Verilog (and,
// if requested, a Verilator harness) to the output directory.
func newVerilogCmd(cfg config) *cobra.Command {
	var outDir string
	var harness bool

	cmd := &cobra.Command{
		Use:   "verilog <design>",
		Short: "Elaborate a built-in design and write its Verilog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			build, ok := designs.Registry[name]
			if !ok {
				return fmt.Errorf("unknown design %q (see `hdlc list`)", name)
			}

			nl := build()
			if err := verilog.EmitTop(name, nl, verilog.TopConfig{Dir: outDir, Harness: harness}); err != nil {
				return fmt.Errorf("elaborating %s: %w", name, err)
			}
			fmt.Printf("wrote %s/%s.v\n", outDir, name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", cfg.OutDir, "output directory")
	cmd.Flags().BoolVar(&harness, "harness", cfg.EmitHarness, "also write a Verilator C++ harness and Makefile")
	return cmd
}
