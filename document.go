package bibfmt

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is one bibliographic record: a mapping from field names to
// values. Formatting only reads it; ownership stays with the caller.
// The citation-key path uses author_list (sequence of mappings with a
// "family" key), year, and title.
type Document map[string]any

// GetString returns the field as a string. Non-string scalars (YAML
// years often decode as ints) are stringified. Absent or nil fields
// report ok=false.
func (d Document) GetString(key string) (string, bool) {
	v, ok := d[key]
	if !ok || v == nil {
		return "", false
	}
	if s, ok := v.(string); ok {
		return s, true
	}
	return fmt.Sprint(v), true
}

// require returns the field as a string or an ErrMissingField error.
func (d Document) require(key string) (string, error) {
	s, ok := d.GetString(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingField, key)
	}
	return s, nil
}

// AuthorList returns the author_list entries as Documents. Entries of
// any map shape are accepted; non-map entries are skipped.
func (d Document) AuthorList() []Document {
	raw, ok := d["author_list"]
	if !ok {
		return nil
	}
	switch list := raw.(type) {
	case []Document:
		return list
	case []map[string]any:
		out := make([]Document, len(list))
		for i, m := range list {
			out[i] = Document(m)
		}
		return out
	case []any:
		out := make([]Document, 0, len(list))
		for _, e := range list {
			switch m := e.(type) {
			case Document:
				out = append(out, m)
			case map[string]any:
				out = append(out, Document(m))
			}
		}
		return out
	default:
		return nil
	}
}

// LoadDocument decodes one YAML record from r.
func LoadDocument(r io.Reader) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return doc, nil
}

// ReadDocumentFile reads one YAML record from path.
func ReadDocumentFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadDocument(f)
}
