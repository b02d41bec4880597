package bibfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ExportFormat represents a document export format.
type ExportFormat string

const (
	ExportYAML   ExportFormat = "yaml"
	ExportJSON   ExportFormat = "json"
	ExportBibTeX ExportFormat = "bibtex"
	ExportRef    ExportFormat = "ref"
)

var exportFormats = []ExportFormat{ExportYAML, ExportJSON, ExportBibTeX, ExportRef}

// String returns the format name.
func (f ExportFormat) String() string { return string(f) }

// ExportFormats returns all supported export format names.
func ExportFormats() []ExportFormat {
	out := make([]ExportFormat, len(exportFormats))
	copy(out, exportFormats)
	return out
}

// ParseExportFormat parses an export format string.
func ParseExportFormat(s string) (ExportFormat, error) {
	for _, f := range exportFormats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedExport, s)
}

// Export writes docs to w in the given format. BibTeX and Ref derive
// entry keys with CitationKey and report its ErrMissingField errors.
func Export(w io.Writer, f ExportFormat, docs ...Document) error {
	switch f {
	case ExportYAML:
		return exportYAML(w, docs)
	case ExportJSON:
		return exportJSON(w, docs)
	case ExportBibTeX:
		return exportBibTeX(w, docs)
	case ExportRef:
		return exportRef(w, docs)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedExport, f)
	}
}

func exportYAML(w io.Writer, docs []Document) error {
	enc := yaml.NewEncoder(w)
	if len(docs) == 1 {
		if err := enc.Encode(docs[0]); err != nil {
			return err
		}
	} else {
		if err := enc.Encode(docs); err != nil {
			return err
		}
	}
	return enc.Close()
}

func exportJSON(w io.Writer, docs []Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if len(docs) == 1 {
		return enc.Encode(docs[0])
	}
	return enc.Encode(docs)
}

// bibtexFields are emitted in this order when present on the document.
var bibtexFields = []string{"author", "title", "journal", "volume", "pages", "year", "doi", "url"}

func exportBibTeX(w io.Writer, docs []Document) error {
	for i, doc := range docs {
		key, err := CitationKey(doc)
		if err != nil {
			return err
		}
		entryType, ok := doc.GetString("type")
		if !ok || entryType == "" {
			entryType = "article"
		}
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "@%s{%s,\n", entryType, key); err != nil {
			return err
		}
		for _, field := range bibtexFields {
			v, ok := doc.GetString(field)
			if !ok || v == "" {
				continue
			}
			if _, err := fmt.Fprintf(w, "  %s = {%s},\n", field, v); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "}"); err != nil {
			return err
		}
	}
	return nil
}

func exportRef(w io.Writer, docs []Document) error {
	for _, doc := range docs {
		key, err := CitationKey(doc)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, key); err != nil {
			return err
		}
	}
	return nil
}
