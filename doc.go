// Package bibfmt renders bibliographic records into user-defined
// textual templates: citation keys, file names, and bibliography
// entries.
//
// A [Document] is a read-only field map (author_list, year, title, and
// whatever else the record carries). A [Formatter] evaluates a template
// string against one document; three variants ship with the package:
//
//   - [Template] — basic key-path substitution via text/template
//   - [Sandbox] — conditionals and loops via pongo2
//   - [Custom] — citation keys for the [RefTemplate] sentinel,
//     Template behavior otherwise
//
// # Selection
//
// Variants are registered by name in a [Registry]; [New] reads the
// "formater" option from a [Config] and resolves the variant once,
// failing fast with [ErrInvalidFormatter] when the name is unknown:
//
//	eng, err := bibfmt.New(bibfmt.ConfigMap{"formater": "sandbox"})
//	out, err := eng.Format("{{ doc.title }}", doc, "", nil)
//
// The package-level [Format] keeps a process-wide engine resolved on
// first use; [SetDefaultConfig] and [ResetDefault] give tests and
// embedders explicit control over it.
//
// # Fail-soft rendering
//
// [Engine.Render] reports template failures as errors. [Engine.Format]
// applies the display contract: render failures become their message
// string so interactive callers always get text back. Usage errors
// ([ErrMissingField] on the citation-key path, [ErrInvalidFormatter])
// are never converted.
//
// # Citation keys
//
// [CitationKey] derives a deterministic key from the first author's
// family name, the year, and up to four non-stopword title words:
//
//	family "Knuth", year "1977", title "The Art of Computer Programming"
//	→ knuth77_ArtComputerProgramming
//
// # Export
//
// [Export] writes documents as YAML, JSON, BibTeX entries, or one
// citation key per line. [ParseExportFormat] converts a CLI flag string
// into an [ExportFormat].
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidFormatter] — unknown variant name
//   - [ErrMissingField] — citation-key field absent from the document
//   - [ErrInvalidTemplate] — template parse or execute failure
//   - [ErrBackendUnavailable] — sandbox backend broken at construction
//   - [ErrUnsupportedExport] — unknown export format string
package bibfmt
