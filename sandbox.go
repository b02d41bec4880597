package bibfmt

import (
	"fmt"

	"github.com/flosch/pongo2/v6"
)

// SandboxFormatter renders with pongo2, a Django-style engine with
// conditionals and loops: {% if doc.year %}{{ doc.year }}{% endif %}.
type SandboxFormatter struct {
	docName string
}

// NewSandboxFormatter builds the expressive variant. Backend
// availability is a construction-time precondition: a probe template is
// compiled so a broken backend fails here as ErrBackendUnavailable
// instead of on first render.
func NewSandboxFormatter(cfg Config) (*SandboxFormatter, error) {
	if _, err := pongo2.FromString("{{ probe }}"); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBackendUnavailable, err)
	}
	return &SandboxFormatter{docName: docNameFromConfig(cfg)}, nil
}

// Render evaluates tmpl against doc. Templates are compiled per call;
// compile and execute failures wrap ErrInvalidTemplate.
func (f *SandboxFormatter) Render(tmpl string, doc Document, docKey string, additional Bindings) (string, error) {
	t, err := pongo2.FromString(tmpl)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	out, err := t.Execute(pongo2.Context(bindContext(f.docName, doc, docKey, additional)))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	return out, nil
}
