package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bjaus/bibfmt"
)

var formattersCmd = &cobra.Command{
	Use:   "formatters",
	Short: "List registered formatter variants",
	RunE:  runFormatters,
}

func runFormatters(cmd *cobra.Command, _ []string) error {
	for _, name := range bibfmt.DefaultRegistry().Names() {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
