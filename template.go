package bibfmt

import (
	"fmt"
	"strings"
	"text/template"
)

// TemplateFormatter renders with Go text/template key-path
// substitution: the document is addressable as {{.doc.title}} (for the
// default binding name). Missing keys are evaluation errors, not empty
// output.
type TemplateFormatter struct {
	docName string
}

// NewTemplateFormatter builds the basic variant. The binding name comes
// from OptionDocName, defaulting to DefaultDocName.
func NewTemplateFormatter(cfg Config) (*TemplateFormatter, error) {
	return &TemplateFormatter{docName: docNameFromConfig(cfg)}, nil
}

// Render evaluates tmpl against doc. Parse and execute failures wrap
// ErrInvalidTemplate.
func (f *TemplateFormatter) Render(tmpl string, doc Document, docKey string, additional Bindings) (string, error) {
	t, err := template.New("bibfmt").Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	var buf strings.Builder
	if err := t.Execute(&buf, bindContext(f.docName, doc, docKey, additional)); err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	return buf.String(), nil
}

func docNameFromConfig(cfg Config) string {
	if cfg != nil {
		if name := cfg.GetString(OptionDocName); name != "" {
			return name
		}
	}
	return DefaultDocName
}

// bindContext builds one call's evaluation context: additional bindings
// first, then the document under docKey (or the configured name), so
// the document binding wins on collision.
func bindContext(docName string, doc Document, docKey string, additional Bindings) map[string]any {
	name := docKey
	if name == "" {
		name = docName
	}
	ctx := make(map[string]any, len(additional)+1)
	for k, v := range additional {
		ctx[k] = v
	}
	ctx[name] = doc
	return ctx
}
