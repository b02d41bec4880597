package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bibfmt",
	Short: "Render bibliographic records through configurable templates",
	Long: `bibfmt renders bibliographic records (YAML info files) into citation
keys, file names, and bibliography entries using a configurable formatter
variant.`,
}

func main() {
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(keyCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(formattersCmd)
	rootCmd.AddCommand(arxivCmd)

	rootCmd.PersistentFlags().String("config", "", "path to a TOML config file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
