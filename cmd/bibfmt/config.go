package main

import (
	"fmt"

	"github.com/lixenwraith/config"
	"github.com/spf13/cobra"

	"github.com/bjaus/bibfmt"
)

// tomlConfig adapts a lixenwraith config to the bibfmt.Config seam.
// Unset or unreadable options report empty so library defaults apply.
type tomlConfig struct {
	cfg       *config.Config
	overrides map[string]string
}

func (c *tomlConfig) GetString(key string) string {
	if v, ok := c.overrides[key]; ok && v != "" {
		return v
	}
	v, ok := c.cfg.Get(key)
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}

// loadConfig builds the formatter configuration from the --config TOML
// file, if given. Flag overrides (e.g. --formater on render) win over
// file values.
func loadConfig(cmd *cobra.Command, overrides map[string]string) (bibfmt.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	cfg := config.New()
	if err := cfg.Register(bibfmt.OptionFormatter, string(bibfmt.Custom)); err != nil {
		return nil, err
	}
	if err := cfg.Register(bibfmt.OptionDocName, bibfmt.DefaultDocName); err != nil {
		return nil, err
	}
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	}
	return &tomlConfig{cfg: cfg, overrides: overrides}, nil
}
