package bibfmt

import "errors"

// Engine binds a resolved formatter to the configuration it was built
// from. Resolution happens once, in the constructor; a bad variant name
// fails there rather than on first render. Engines are safe for
// concurrent use.
type Engine struct {
	cfg       Config
	variant   Variant
	formatter Formatter
}

// New resolves the configured variant from the default registry. A nil
// cfg selects defaults (the Custom variant, "doc" binding name).
func New(cfg Config) (*Engine, error) {
	return NewWithRegistry(cfg, DefaultRegistry())
}

// NewWithRegistry resolves the configured variant from reg. The
// OptionFormatter value selects the variant; unset selects Custom.
// Unknown names return ErrInvalidFormatter listing the registered
// alternatives.
func NewWithRegistry(cfg Config, reg *Registry) (*Engine, error) {
	if cfg == nil {
		cfg = ConfigMap(nil)
	}
	name := Variant(cfg.GetString(OptionFormatter))
	if name == "" {
		name = Custom
	}
	ctor, err := reg.Get(name)
	if err != nil {
		return nil, err
	}
	f, err := ctor(cfg)
	if err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg, variant: name, formatter: f}, nil
}

// Variant returns the resolved variant name.
func (e *Engine) Variant() Variant { return e.variant }

// Formatter returns the resolved formatter.
func (e *Engine) Formatter() Formatter { return e.formatter }

// Render evaluates tmpl against doc, reporting evaluation failures as
// errors.
func (e *Engine) Render(tmpl string, doc Document, docKey string, additional Bindings) (string, error) {
	return e.formatter.Render(tmpl, doc, docKey, additional)
}

// Format evaluates tmpl against doc with the fail-soft display
// contract: a render failure becomes its message string so interactive
// callers always get something to show. ErrMissingField is a usage
// error, not a render failure, and surfaces as an error.
func (e *Engine) Format(tmpl string, doc Document, docKey string, additional Bindings) (string, error) {
	out, err := e.Render(tmpl, doc, docKey, additional)
	if err != nil {
		if errors.Is(err, ErrMissingField) {
			return "", err
		}
		return err.Error(), nil
	}
	return out, nil
}
