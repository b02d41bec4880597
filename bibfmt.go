package bibfmt

import (
	"errors"
	"sync"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidFormatter   = errors.New("invalid formatter")
	ErrMissingField       = errors.New("missing document field")
	ErrInvalidTemplate    = errors.New("invalid template")
	ErrBackendUnavailable = errors.New("template backend unavailable")
	ErrUnsupportedExport  = errors.New("unsupported export format")
)

// Variant names a formatter implementation.
type Variant string

const (
	// Template renders with basic key-path substitution.
	Template Variant = "template"
	// Sandbox renders with the expressive backend (conditionals, loops).
	Sandbox Variant = "sandbox"
	// Custom generates citation keys for the RefTemplate sentinel and
	// otherwise behaves like Template.
	Custom Variant = "custom"
)

// String returns the variant name.
func (v Variant) String() string { return string(v) }

// RefTemplate is the sentinel template that triggers citation-key
// generation in the Custom variant.
const RefTemplate = "custom_ref"

// Configuration option keys read by the engine and formatters.
const (
	// OptionFormatter selects the variant. The historical spelling is kept
	// so existing config files stay valid.
	OptionFormatter = "formater"
	// OptionDocName sets the name the document is bound under inside a
	// template's evaluation context.
	OptionDocName = "format-doc-name"
)

// DefaultDocName is the document binding name when neither the docKey
// argument nor OptionDocName provides one.
const DefaultDocName = "doc"

// Bindings holds additional named values merged into a template's
// evaluation context for the duration of one call. The document binding
// wins on collision.
type Bindings map[string]any

// Formatter converts a template string and a document into an output
// string. Render reports evaluation failures as errors; converting them
// to display text is the caller's decision (see [Engine.Format]).
type Formatter interface {
	Render(tmpl string, doc Document, docKey string, additional Bindings) (string, error)
}

// Config supplies string options to the engine and formatters. An empty
// string means the option is unset and defaults apply.
type Config interface {
	GetString(key string) string
}

// ConfigMap is a map-backed Config, convenient for library users and
// tests. The nil map is a valid, all-defaults Config.
type ConfigMap map[string]string

// GetString returns the configured value, or "" when unset.
func (c ConfigMap) GetString(key string) string { return c[key] }

var (
	defaultMu     sync.Mutex
	defaultCfg    Config
	defaultEngine *Engine
)

// Default returns the process-wide engine, resolving the configured
// variant on first use. Subsequent calls return the same engine. The
// guard makes concurrent first calls resolve exactly once.
func Default() (*Engine, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultEngine == nil {
		eng, err := New(defaultCfg)
		if err != nil {
			return nil, err
		}
		defaultEngine = eng
	}
	return defaultEngine, nil
}

// SetDefault replaces the process-wide engine.
func SetDefault(eng *Engine) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultEngine = eng
}

// SetDefaultConfig sets the Config used to build the process-wide engine
// and discards any engine already resolved, so the next call resolves
// against cfg.
func SetDefaultConfig(cfg Config) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultCfg = cfg
	defaultEngine = nil
}

// ResetDefault clears the process-wide engine and its config. Tests use
// this to return the package to its initial state.
func ResetDefault() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultCfg = nil
	defaultEngine = nil
}

// Format renders tmpl against doc using the process-wide engine. Render
// failures become their message string; [ErrMissingField] and
// [ErrInvalidFormatter] surface as errors.
func Format(tmpl string, doc Document, docKey string, additional Bindings) (string, error) {
	eng, err := Default()
	if err != nil {
		return "", err
	}
	return eng.Format(tmpl, doc, docKey, additional)
}

// Render renders tmpl against doc using the process-wide engine,
// reporting evaluation failures as errors.
func Render(tmpl string, doc Document, docKey string, additional Bindings) (string, error) {
	eng, err := Default()
	if err != nil {
		return "", err
	}
	return eng.Render(tmpl, doc, docKey, additional)
}
