package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bjaus/bibfmt"
)

var keyCmd = &cobra.Command{
	Use:   "key <info.yaml>...",
	Short: "Generate citation keys for documents",
	Long:  `Generate the deterministic citation key (author + year + title words) for each document`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runKey,
}

func runKey(cmd *cobra.Command, args []string) error {
	for _, path := range args {
		doc, err := bibfmt.ReadDocumentFile(path)
		if err != nil {
			return err
		}
		key, err := bibfmt.CitationKey(doc)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), key)
	}
	return nil
}
