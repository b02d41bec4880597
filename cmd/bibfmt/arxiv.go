package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bjaus/bibfmt"
)

var arxivCmd = &cobra.Command{
	Use:   "arxiv [flags]",
	Short: "Search arXiv and import matching records",
	Long: `Query the arXiv API and print matching records in an export format,
ready to be saved as document info files`,
	RunE: runArxiv,
}

func init() {
	arxivCmd.Flags().StringP("query", "q", "", "search all fields")
	arxivCmd.Flags().StringP("author", "a", "", "search by author")
	arxivCmd.Flags().StringP("title", "t", "", "search by title")
	arxivCmd.Flags().String("abstract", "", "search by abstract")
	arxivCmd.Flags().String("category", "", "search by subject category")
	arxivCmd.Flags().String("journal", "", "search by journal reference")
	arxivCmd.Flags().String("id-list", "", "comma-separated arXiv identifiers")
	arxivCmd.Flags().Int("page", 0, "result offset")
	arxivCmd.Flags().IntP("max", "m", 20, "maximum number of results")
	arxivCmd.Flags().StringP("format", "f", "yaml", "export format (yaml|json|bibtex|ref)")
}

func runArxiv(cmd *cobra.Command, _ []string) error {
	var (
		query bibfmt.ArxivQuery
		err   error
	)
	for flag, dest := range map[string]*string{
		"query":    &query.All,
		"author":   &query.Author,
		"title":    &query.Title,
		"abstract": &query.Abstract,
		"category": &query.Category,
		"journal":  &query.Journal,
		"id-list":  &query.IDList,
	} {
		if *dest, err = cmd.Flags().GetString(flag); err != nil {
			return fmt.Errorf("failed to get %s flag: %w", flag, err)
		}
	}
	if query.Page, err = cmd.Flags().GetInt("page"); err != nil {
		return fmt.Errorf("failed to get page flag: %w", err)
	}
	if query.MaxResults, err = cmd.Flags().GetInt("max"); err != nil {
		return fmt.Errorf("failed to get max flag: %w", err)
	}
	formatStr, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format, err := bibfmt.ParseExportFormat(formatStr)
	if err != nil {
		return err
	}

	docs, err := bibfmt.NewArxivClient().Search(cmd.Context(), query)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "no documents found")
		return nil
	}
	return bibfmt.Export(cmd.OutOrStdout(), format, docs...)
}
