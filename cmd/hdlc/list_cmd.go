package main

import (
	"fmt"
	"os"

	"github.com/gmofishsauce/wut4/designs"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// newListCmd builds the "hdlc list" subcommand, printing the built-in
// design names. When stdout is a terminal it aligns the names into a
// single padded column instead of one bare name per line - the same
// term.IsTerminal guard emul/main.go uses before touching raw mode,
// repurposed here to decide on cosmetic formatting rather than input
// handling.
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in designs",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := designs.Names()

			if !term.IsTerminal(int(os.Stdout.Fd())) {
				for _, n := range names {
					fmt.Println(n)
				}
				return nil
			}

			width := 0
			for _, n := range names {
				if len(n) > width {
					width = len(n)
				}
			}
			for _, n := range names {
				fmt.Printf("  %-*s  (hdlc verilog %s)\n", width, n, n)
			}
			return nil
		},
	}
}
