package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bjaus/bibfmt"
)

var exportCmd = &cobra.Command{
	Use:   "export [flags] <info.yaml>...",
	Short: "Export documents in a bibliography format",
	Long:  `Export documents as yaml, json, bibtex entries, or one citation key per line (ref)`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringP("format", "f", "bibtex", "export format (yaml|json|bibtex|ref)")
}

func runExport(cmd *cobra.Command, args []string) error {
	formatStr, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format, err := bibfmt.ParseExportFormat(formatStr)
	if err != nil {
		return err
	}

	docs := make([]bibfmt.Document, 0, len(args))
	for _, path := range args {
		doc, err := bibfmt.ReadDocumentFile(path)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}
	return bibfmt.Export(cmd.OutOrStdout(), format, docs...)
}
