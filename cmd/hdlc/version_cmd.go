package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the hdlc version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("hdlc v%s\n", version)
			return nil
		},
	}
}
