package bibfmt

import (
	"fmt"
	"regexp"
	"strings"
)

// CustomKeyFormatter generates citation keys for the RefTemplate
// sentinel and delegates every other template to the basic variant.
type CustomKeyFormatter struct {
	delegate *TemplateFormatter
}

// NewCustomKeyFormatter builds the citation-key variant.
func NewCustomKeyFormatter(cfg Config) (*CustomKeyFormatter, error) {
	tf, err := NewTemplateFormatter(cfg)
	if err != nil {
		return nil, err
	}
	return &CustomKeyFormatter{delegate: tf}, nil
}

// Render generates a citation key when tmpl is RefTemplate; any other
// template renders exactly as TemplateFormatter would.
func (f *CustomKeyFormatter) Render(tmpl string, doc Document, docKey string, additional Bindings) (string, error) {
	if tmpl == RefTemplate {
		return CitationKey(doc)
	}
	return f.delegate.Render(tmpl, doc, docKey, additional)
}

var (
	notLower      = regexp.MustCompile(`[^a-z]+`)
	notLowerDigit = regexp.MustCompile(`[^0-9a-z ]+`)
)

const maxTitleWords = 4

// CitationKey derives the deterministic key
// <author><year>_<TitleWords> from a document: the first author's
// family name lowercased and stripped to [a-z], the last two characters
// of the year, and up to four capitalized title words with stopwords
// removed. Absent author_list, year, or title is a usage error reported
// as ErrMissingField.
func CitationKey(doc Document) (string, error) {
	family, err := firstAuthorFamily(doc)
	if err != nil {
		return "", err
	}
	year, err := doc.require("year")
	if err != nil {
		return "", err
	}
	title, err := doc.require("title")
	if err != nil {
		return "", err
	}

	author := notLower.ReplaceAllString(strings.ToLower(family), "")
	if runes := []rune(year); len(runes) > 2 {
		year = string(runes[len(runes)-2:])
	}
	return author + year + "_" + strings.Join(titleWords(title), ""), nil
}

func firstAuthorFamily(doc Document) (string, error) {
	if _, ok := doc["author_list"]; !ok {
		return "", fmt.Errorf("%w: author_list", ErrMissingField)
	}
	authors := doc.AuthorList()
	if len(authors) == 0 {
		return "", fmt.Errorf("%w: author_list", ErrMissingField)
	}
	family, ok := authors[0].GetString("family")
	if !ok {
		return "", fmt.Errorf("%w: author_list[0].family", ErrMissingField)
	}
	return family, nil
}

// titleWords lowercases the title, treats hyphens as spaces, strips
// characters outside [0-9a-z ], splits on whitespace, drops empty and
// stopword tokens, capitalizes the rest, and keeps the first four.
func titleWords(title string) []string {
	t := strings.ToLower(title)
	t = strings.ReplaceAll(t, "-", " ")
	t = notLowerDigit.ReplaceAllString(t, "")
	var words []string
	for _, tok := range strings.Fields(t) {
		if isSkipWord(tok) {
			continue
		}
		words = append(words, capitalize(tok))
		if len(words) == maxTitleWords {
			break
		}
	}
	return words
}

// capitalize upper-cases the first character. Tokens here are ASCII
// [0-9a-z] by construction.
func capitalize(tok string) string {
	if tok == "" {
		return tok
	}
	return strings.ToUpper(tok[:1]) + tok[1:]
}
