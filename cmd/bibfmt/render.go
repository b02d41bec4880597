package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bjaus/bibfmt"
)

var renderCmd = &cobra.Command{
	Use:   "render [flags] <info.yaml>",
	Short: "Render a template against a document",
	Long:  `Render a template string against one document using the configured formatter variant`,
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringP("template", "t", "", "template string to render (required)")
	renderCmd.Flags().String("doc-key", "", "binding name for the document inside the template")
	renderCmd.Flags().String("formater", "", "formatter variant override (template|sandbox|custom)")
	_ = renderCmd.MarkFlagRequired("template")
}

func runRender(cmd *cobra.Command, args []string) error {
	tmpl, err := cmd.Flags().GetString("template")
	if err != nil {
		return fmt.Errorf("failed to get template flag: %w", err)
	}
	docKey, err := cmd.Flags().GetString("doc-key")
	if err != nil {
		return fmt.Errorf("failed to get doc-key flag: %w", err)
	}
	variant, err := cmd.Flags().GetString("formater")
	if err != nil {
		return fmt.Errorf("failed to get formater flag: %w", err)
	}

	cfg, err := loadConfig(cmd, map[string]string{bibfmt.OptionFormatter: variant})
	if err != nil {
		return err
	}
	doc, err := bibfmt.ReadDocumentFile(args[0])
	if err != nil {
		return err
	}

	eng, err := bibfmt.New(cfg)
	if err != nil {
		return err
	}
	out, err := eng.Format(tmpl, doc, docKey, nil)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
